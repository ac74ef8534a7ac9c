package repositories

import (
	"context"
	"time"

	"navims-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// equipmentSelect joins type, setup and creator names onto equipment rows
const equipmentSelect = `equipments.*,
	sd.setup_detail_name AS equipment_type_name,
	s.setup_name AS setup_name,
	u.username AS created_by_username,
	u.full_name AS created_by_full_name`

// EquipmentRepository handles equipment data access
type EquipmentRepository struct {
	db *gorm.DB
}

// NewEquipmentRepository creates a new equipment repository
func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

func (r *EquipmentRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Equipment{}).
		Select(equipmentSelect).
		Joins("LEFT JOIN setup_details sd ON equipments.equipment_type_setup_detail_id = sd.setup_detail_id").
		Joins("LEFT JOIN setups s ON sd.sms_id = s.sms_id").
		Joins("LEFT JOIN users u ON equipments.created_by = u.user_id")
}

// Create creates a new equipment record
func (r *EquipmentRepository) Create(ctx context.Context, equipment *models.Equipment) error {
	return r.db.WithContext(ctx).Create(equipment).Error
}

// GetByID gets an equipment record with joined names
func (r *EquipmentRepository) GetByID(ctx context.Context, id uint) (*models.EquipmentRow, error) {
	var row models.EquipmentRow
	err := r.joined(ctx).Where("equipments.equipment_id = ?", id).Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// GetModelByID gets the bare equipment record for updates
func (r *EquipmentRepository) GetModelByID(ctx context.Context, id uint) (*models.Equipment, error) {
	var equipment models.Equipment
	err := r.db.WithContext(ctx).First(&equipment, id).Error
	if err != nil {
		return nil, err
	}
	return &equipment, nil
}

// GetBySerialNo gets an equipment record by serial number
func (r *EquipmentRepository) GetBySerialNo(ctx context.Context, serialNo string) (*models.EquipmentRow, error) {
	var row models.EquipmentRow
	err := r.joined(ctx).Where("equipments.serial_no = ?", serialNo).Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List lists equipment with pagination, newest first
func (r *EquipmentRepository) List(ctx context.Context, offset, limit int) ([]*models.EquipmentRow, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Equipment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []*models.EquipmentRow
	err := r.joined(ctx).
		Order("equipments.created_at DESC").
		Offset(offset).Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// ListByType lists equipment of one equipment type
func (r *EquipmentRepository) ListByType(ctx context.Context, typeSetupDetailID uint) ([]*models.EquipmentRow, error) {
	var rows []*models.EquipmentRow
	err := r.joined(ctx).
		Where("equipments.equipment_type_setup_detail_id = ?", typeSetupDetailID).
		Order("equipments.equipment").
		Scan(&rows).Error
	return rows, err
}

// Search matches equipment name, serial no, make/model or type name
func (r *EquipmentRepository) Search(ctx context.Context, term string) ([]*models.EquipmentRow, error) {
	pattern := "%" + term + "%"
	var rows []*models.EquipmentRow
	err := r.joined(ctx).
		Where(`equipments.equipment LIKE ? OR equipments.serial_no LIKE ?
			OR equipments.make_model LIKE ? OR sd.setup_detail_name LIKE ?`,
			pattern, pattern, pattern, pattern).
		Order("equipments.equipment").
		Scan(&rows).Error
	return rows, err
}

// Update updates an equipment record
func (r *EquipmentRepository) Update(ctx context.Context, equipment *models.Equipment) error {
	return r.db.WithContext(ctx).Save(equipment).Error
}

// Delete hard deletes an equipment record
func (r *EquipmentRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Equipment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountWarrantyExpired counts active equipment whose warranty lapsed
func (r *EquipmentRepository) CountWarrantyExpired(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Equipment{}).
		Where("is_active = ? AND warranty_expiry_date IS NOT NULL AND warranty_expiry_date < ?", true, now).
		Count(&count).Error
	return count, err
}

// CountWarrantyExpiring counts active equipment whose warranty lapses
// within the horizon
func (r *EquipmentRepository) CountWarrantyExpiring(ctx context.Context, now time.Time, horizon time.Duration) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Equipment{}).
		Where("is_active = ? AND warranty_expiry_date BETWEEN ? AND ?", true, now, now.Add(horizon)).
		Count(&count).Error
	return count, err
}
