package repositories

import (
	"context"

	"navims-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// SetupRepository handles setup taxonomy data access
type SetupRepository struct {
	db *gorm.DB
}

// NewSetupRepository creates a new setup repository
func NewSetupRepository(db *gorm.DB) *SetupRepository {
	return &SetupRepository{db: db}
}

// Create creates a new setup
func (r *SetupRepository) Create(ctx context.Context, setup *models.Setup) error {
	return r.db.WithContext(ctx).Create(setup).Error
}

// GetByID gets a setup by ID
func (r *SetupRepository) GetByID(ctx context.Context, smsID uint) (*models.Setup, error) {
	var setup models.Setup
	err := r.db.WithContext(ctx).First(&setup, "sms_id = ?", smsID).Error
	if err != nil {
		return nil, err
	}
	return &setup, nil
}

// GetByName gets a setup by its unique name
func (r *SetupRepository) GetByName(ctx context.Context, name string) (*models.Setup, error) {
	var setup models.Setup
	err := r.db.WithContext(ctx).Where("setup_name = ?", name).First(&setup).Error
	if err != nil {
		return nil, err
	}
	return &setup, nil
}

// List lists all setups ordered by name
func (r *SetupRepository) List(ctx context.Context) ([]*models.Setup, error) {
	var setups []*models.Setup
	err := r.db.WithContext(ctx).Order("setup_name").Find(&setups).Error
	return setups, err
}

// Update updates a setup
func (r *SetupRepository) Update(ctx context.Context, setup *models.Setup) error {
	return r.db.WithContext(ctx).Save(setup).Error
}

// Delete hard deletes a setup; details cascade at the DB layer
func (r *SetupRepository) Delete(ctx context.Context, smsID uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Setup{}, "sms_id = ?", smsID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetupDetailRepository handles setup detail data access
type SetupDetailRepository struct {
	db *gorm.DB
}

// NewSetupDetailRepository creates a new setup detail repository
func NewSetupDetailRepository(db *gorm.DB) *SetupDetailRepository {
	return &SetupDetailRepository{db: db}
}

// detailSelect joins the parent setup name onto detail rows
const detailSelect = `setup_details.setup_detail_id, setup_details.sms_id,
	setup_details.setup_detail_name, setup_details.created_at,
	setup_details.updated_at, s.setup_name AS setup_name`

func (r *SetupDetailRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.SetupDetail{}).
		Select(detailSelect).
		Joins("LEFT JOIN setups s ON setup_details.sms_id = s.sms_id")
}

// Create creates a new setup detail
func (r *SetupDetailRepository) Create(ctx context.Context, detail *models.SetupDetail) error {
	return r.db.WithContext(ctx).Create(detail).Error
}

// GetByID gets a setup detail by ID with the setup name joined
func (r *SetupDetailRepository) GetByID(ctx context.Context, id uint) (*models.SetupDetailRow, error) {
	var row models.SetupDetailRow
	err := r.joined(ctx).Where("setup_details.setup_detail_id = ?", id).Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// GetModelByID gets the bare detail record for updates
func (r *SetupDetailRepository) GetModelByID(ctx context.Context, id uint) (*models.SetupDetail, error) {
	var detail models.SetupDetail
	err := r.db.WithContext(ctx).First(&detail, id).Error
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// List lists all setup details ordered by setup then detail name
func (r *SetupDetailRepository) List(ctx context.Context) ([]*models.SetupDetailRow, error) {
	var rows []*models.SetupDetailRow
	err := r.joined(ctx).
		Order("s.setup_name, setup_details.setup_detail_name").
		Scan(&rows).Error
	return rows, err
}

// ListBySMSID lists the details under one setup
func (r *SetupDetailRepository) ListBySMSID(ctx context.Context, smsID uint) ([]*models.SetupDetailRow, error) {
	var rows []*models.SetupDetailRow
	err := r.joined(ctx).
		Where("setup_details.sms_id = ?", smsID).
		Order("setup_details.setup_detail_name").
		Scan(&rows).Error
	return rows, err
}

// Update updates a setup detail
func (r *SetupDetailRepository) Update(ctx context.Context, detail *models.SetupDetail) error {
	return r.db.WithContext(ctx).Save(detail).Error
}

// Delete hard deletes a setup detail
func (r *SetupDetailRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.SetupDetail{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
