package repositories

import (
	"context"

	"navims-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// userSelect joins the command classification names onto user rows
const userSelect = `users.user_id, users.username, users.full_name, users.role,
	users.command_setup_detail_id, users.created_at, users.updated_at,
	sd.setup_detail_name AS command_name, s.setup_name AS setup_name`

// userRepository implements UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.User{}).
		Select(userSelect).
		Joins("LEFT JOIN setup_details sd ON users.command_setup_detail_id = sd.setup_detail_id").
		Joins("LEFT JOIN setups s ON sd.sms_id = s.sms_id")
}

// Create creates a new user
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetByID gets a user by ID (base columns, password included)
func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetRowByID gets a user by ID with command names joined
func (r *userRepository) GetRowByID(ctx context.Context, id uint) (*models.UserRow, error) {
	var row models.UserRow
	err := r.joined(ctx).Where("users.user_id = ?", id).Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// GetByUsername gets a user by exact username match
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List lists users with pagination, ordered by username
func (r *userRepository) List(ctx context.Context, offset, limit int) ([]*models.UserRow, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []*models.UserRow
	err := r.joined(ctx).
		Order("users.username").
		Offset(offset).Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// ListByCommandDetail lists users attached to a command classification
func (r *userRepository) ListByCommandDetail(ctx context.Context, commandSetupDetailID uint) ([]*models.UserRow, error) {
	var rows []*models.UserRow
	err := r.joined(ctx).
		Where("users.command_setup_detail_id = ?", commandSetupDetailID).
		Order("users.username").
		Scan(&rows).Error
	return rows, err
}

// Update updates a user
func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// Delete hard deletes a user by id
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ExistsByUsername checks if username exists
func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}
