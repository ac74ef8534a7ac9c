package repositories

import (
	"context"

	"navims-backend/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetRowByID(ctx context.Context, id uint) (*models.UserRow, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context, offset, limit int) ([]*models.UserRow, int64, error)
	ListByCommandDetail(ctx context.Context, commandSetupDetailID uint) ([]*models.UserRow, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// UnitRepository defines unit tree repository interface
type UnitRepository interface {
	Create(ctx context.Context, unit *models.Unit) error
	GetByID(ctx context.Context, id uint) (*models.UnitRow, error)
	GetModelByID(ctx context.Context, id uint) (*models.Unit, error)
	GetByCode(ctx context.Context, code string) (*models.Unit, error)
	ListActive(ctx context.Context) ([]*models.UnitRow, error)
	ListByParent(ctx context.Context, parentID uint) ([]*models.UnitRow, error)
	ListByCompany(ctx context.Context, companyID int) ([]*models.UnitRow, error)
	ListCommands(ctx context.Context) ([]*models.Unit, error)
	ListByCommand(ctx context.Context, commandID uint) ([]*models.UnitRow, error)
	Update(ctx context.Context, unit *models.Unit) error
	SoftDelete(ctx context.Context, id uint) (int64, error)
}
