package repositories

import (
	"context"

	"navims-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// unitSelect annotates each unit with its parent's display name
const unitSelect = `units.unit_id, units.unit_code, units.unit_name,
	units.parent_unit_id, units.company_id, units.is_active, units.remarks,
	units.created_at, units.updated_at, parent.unit_name AS parent_unit_name`

// unitRepository implements UnitRepository interface
type unitRepository struct {
	db *gorm.DB
}

// NewUnitRepository creates a new unit repository
func NewUnitRepository(db *gorm.DB) UnitRepository {
	return &unitRepository{db: db}
}

func (r *unitRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Unit{}).
		Select(unitSelect).
		Joins("LEFT JOIN units parent ON units.parent_unit_id = parent.unit_id")
}

// Create creates a new unit
func (r *unitRepository) Create(ctx context.Context, unit *models.Unit) error {
	return r.db.WithContext(ctx).Create(unit).Error
}

// GetByID gets a unit by ID regardless of active state
func (r *unitRepository) GetByID(ctx context.Context, id uint) (*models.UnitRow, error) {
	var row models.UnitRow
	err := r.joined(ctx).Where("units.unit_id = ?", id).Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// GetModelByID gets the bare unit record for updates
func (r *unitRepository) GetModelByID(ctx context.Context, id uint) (*models.Unit, error) {
	var unit models.Unit
	err := r.db.WithContext(ctx).First(&unit, id).Error
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

// GetByCode gets a unit by its unique code regardless of active state
func (r *unitRepository) GetByCode(ctx context.Context, code string) (*models.Unit, error) {
	var unit models.Unit
	err := r.db.WithContext(ctx).Where("unit_code = ?", code).First(&unit).Error
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

// ListActive lists all active units ordered by name
func (r *unitRepository) ListActive(ctx context.Context) ([]*models.UnitRow, error) {
	var rows []*models.UnitRow
	err := r.joined(ctx).
		Where("units.is_active = ?", true).
		Order("units.unit_name").
		Scan(&rows).Error
	return rows, err
}

// ListByParent lists active units directly under a parent unit
func (r *unitRepository) ListByParent(ctx context.Context, parentID uint) ([]*models.UnitRow, error) {
	var rows []*models.UnitRow
	err := r.joined(ctx).
		Where("units.parent_unit_id = ? AND units.is_active = ?", parentID, true).
		Order("units.unit_name").
		Scan(&rows).Error
	return rows, err
}

// ListByCompany lists active units by company discriminator
func (r *unitRepository) ListByCompany(ctx context.Context, companyID int) ([]*models.UnitRow, error) {
	var rows []*models.UnitRow
	err := r.joined(ctx).
		Where("units.company_id = ? AND units.is_active = ?", companyID, true).
		Order("units.unit_name").
		Scan(&rows).Error
	return rows, err
}

// ListCommands lists active command units (CompanyID = 1)
func (r *unitRepository) ListCommands(ctx context.Context) ([]*models.Unit, error) {
	var units []*models.Unit
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND is_active = ?", models.CommandCompanyID, true).
		Order("unit_name").
		Find(&units).Error
	return units, err
}

// ListByCommand lists the active units of a command. The command node
// includes itself in its own unit listing; downstream aggregation
// depends on that.
func (r *unitRepository) ListByCommand(ctx context.Context, commandID uint) ([]*models.UnitRow, error) {
	var rows []*models.UnitRow
	err := r.joined(ctx).
		Where("(units.parent_unit_id = ? OR units.unit_id = ?) AND units.is_active = ?",
			commandID, commandID, true).
		Order("units.unit_name").
		Scan(&rows).Error
	return rows, err
}

// Update updates a unit, including reparenting
func (r *unitRepository) Update(ctx context.Context, unit *models.Unit) error {
	return r.db.WithContext(ctx).Save(unit).Error
}

// SoftDelete flips the active flag off. Returns the number of rows
// touched; zero means the unit is missing or already inactive.
func (r *unitRepository) SoftDelete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Unit{}).
		Where("unit_id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}
