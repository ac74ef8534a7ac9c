package services

import (
	"context"

	"navims-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// DashboardService runs the aggregate inventory reports
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// Stats holds the per-status equipment totals, zero-filled
type Stats struct {
	TotalEquipments int64 `json:"totalEquipments"`
	Ops             int64 `json:"ops"`
	NonOps          int64 `json:"nonOps"`
	UnderRepair     int64 `json:"underRepair"`
	BER             int64 `json:"ber"`
}

// TypeCount is one equipment-by-type report row
type TypeCount struct {
	Type  *string `gorm:"column:type" json:"Type"`
	Count int64   `gorm:"column:count" json:"Count"`
}

// StatusCount is one equipment-by-status report row
type StatusCount struct {
	Status *string `gorm:"column:status" json:"Status"`
	Count  int64   `gorm:"column:count" json:"Count"`
}

// CommandCount is one equipment-by-command report row
type CommandCount struct {
	UnitID      uint   `gorm:"column:unit_id" json:"UnitID"`
	CommandName string `gorm:"column:command_name" json:"CommandName"`
	CompanyID   *int   `gorm:"column:company_id" json:"CompanyID"`
	Count       int64  `gorm:"column:count" json:"Count"`
}

// UnitCount is one per-unit report row within a command
type UnitCount struct {
	UnitID   uint   `gorm:"column:unit_id" json:"UnitID"`
	UnitName string `gorm:"column:unit_name" json:"UnitName"`
	Count    int64  `gorm:"column:count" json:"Count"`
}

// GetStats returns active equipment totals by status
func (s *DashboardService) GetStats(ctx context.Context) (*Stats, error) {
	var stats Stats
	err := s.db.WithContext(ctx).Model(&models.Equipment{}).
		Select(`COUNT(*) AS total_equipments,
			COALESCE(SUM(CASE WHEN status = 'OPS' THEN 1 ELSE 0 END), 0) AS ops,
			COALESCE(SUM(CASE WHEN status = 'NON-OPS' THEN 1 ELSE 0 END), 0) AS non_ops,
			COALESCE(SUM(CASE WHEN status = 'UNDER-REPAIR' THEN 1 ELSE 0 END), 0) AS under_repair,
			COALESCE(SUM(CASE WHEN status = 'BER' THEN 1 ELSE 0 END), 0) AS ber`).
		Where("is_active = ?", true).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetEquipmentByType counts active equipment per type name
func (s *DashboardService) GetEquipmentByType(ctx context.Context) ([]*TypeCount, error) {
	var rows []*TypeCount
	err := s.db.WithContext(ctx).Model(&models.Equipment{}).
		Select("sd.setup_detail_name AS type, COUNT(*) AS count").
		Joins("LEFT JOIN setup_details sd ON equipments.equipment_type_setup_detail_id = sd.setup_detail_id").
		Where("equipments.is_active = ?", true).
		Group("sd.setup_detail_name").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

// GetEquipmentByStatus counts active equipment per status
func (s *DashboardService) GetEquipmentByStatus(ctx context.Context) ([]*StatusCount, error) {
	var rows []*StatusCount
	err := s.db.WithContext(ctx).Model(&models.Equipment{}).
		Select("status, COUNT(*) AS count").
		Where("is_active = ?", true).
		Group("status").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

// GetEquipmentByCommand counts active equipment per command unit. A
// command's pool is itself plus its direct active children. Commands
// with no matching equipment are dropped, not zero-filled. Tie order
// between equal counts is unspecified.
func (s *DashboardService) GetEquipmentByCommand(ctx context.Context) ([]*CommandCount, error) {
	var rows []*CommandCount
	err := s.db.WithContext(ctx).Table("units AS cmd").
		Select("cmd.unit_id, cmd.unit_name AS command_name, cmd.company_id, COUNT(e.equipment_id) AS count").
		Joins(`LEFT JOIN units child
			ON (child.parent_unit_id = cmd.unit_id OR child.unit_id = cmd.unit_id)
			AND child.is_active = ?`, true).
		Joins("LEFT JOIN equipments e ON e.unit_id = child.unit_id AND e.is_active = ?", true).
		Where("cmd.company_id = ? AND cmd.is_active = ?", models.CommandCompanyID, true).
		Group("cmd.unit_id, cmd.unit_name, cmd.company_id").
		Having("COUNT(e.equipment_id) > 0").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

// GetEquipmentByUnitsInCommand counts active equipment per unit inside
// one command's self-inclusive unit set, dropping zero-count units
func (s *DashboardService) GetEquipmentByUnitsInCommand(ctx context.Context, commandID uint) ([]*UnitCount, error) {
	var rows []*UnitCount
	err := s.db.WithContext(ctx).Table("units AS un").
		Select("un.unit_id, un.unit_name, COUNT(e.equipment_id) AS count").
		Joins("LEFT JOIN equipments e ON e.unit_id = un.unit_id AND e.is_active = ?", true).
		Where("(un.parent_unit_id = ? OR un.unit_id = ?) AND un.is_active = ?",
			commandID, commandID, true).
		Group("un.unit_id, un.unit_name").
		Having("COUNT(e.equipment_id) > 0").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}
