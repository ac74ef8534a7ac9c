package services

import (
	"context"
	"errors"

	"navims-backend/internal/adapters/persistence/models"
	"navims-backend/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Unit errors
var (
	ErrUnitNotFound      = errors.New("unit not found")
	ErrDuplicateUnitCode = errors.New("unit code already exists")
)

// UnitService handles the organizational unit tree
type UnitService struct {
	unitRepo repositories.UnitRepository
}

// NewUnitService creates a new unit service
func NewUnitService(unitRepo repositories.UnitRepository) *UnitService {
	return &UnitService{unitRepo: unitRepo}
}

// UnitInput represents unit create/update input
type UnitInput struct {
	UnitCode     string  `json:"unitCode"`
	UnitName     string  `json:"unitName"`
	ParentUnit   *uint   `json:"parentUnit"`
	CompanyID    *int    `json:"companyId"`
	IsActive     *bool   `json:"isActive"`
	Remarks      *string `json:"remarks"`
}

// Create creates a unit after pre-checking code uniqueness
func (s *UnitService) Create(ctx context.Context, input *UnitInput) (*models.Unit, error) {
	if _, err := s.unitRepo.GetByCode(ctx, input.UnitCode); err == nil {
		return nil, ErrDuplicateUnitCode
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// New units always start active; IsActive on input only matters
	// for updates
	unit := &models.Unit{
		UnitCode:     input.UnitCode,
		UnitName:     input.UnitName,
		ParentUnitID: input.ParentUnit,
		CompanyID:    input.CompanyID,
		IsActive:     true,
		Remarks:      input.Remarks,
	}

	if err := s.unitRepo.Create(ctx, unit); err != nil {
		return nil, err
	}
	return unit, nil
}

// Update updates a unit, including reparenting. The tree is only ever
// traversed one level down, so no cycle check is performed here.
func (s *UnitService) Update(ctx context.Context, id uint, input *UnitInput) (*models.Unit, error) {
	unit, err := s.unitRepo.GetModelByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnitNotFound
		}
		return nil, err
	}

	// Reject a code held by a different unit
	if input.UnitCode != unit.UnitCode {
		existing, err := s.unitRepo.GetByCode(ctx, input.UnitCode)
		if err == nil && existing.UnitID != id {
			return nil, ErrDuplicateUnitCode
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	unit.UnitCode = input.UnitCode
	unit.UnitName = input.UnitName
	unit.ParentUnitID = input.ParentUnit
	unit.CompanyID = input.CompanyID
	unit.Remarks = input.Remarks
	if input.IsActive != nil {
		unit.IsActive = *input.IsActive
	}

	if err := s.unitRepo.Update(ctx, unit); err != nil {
		return nil, err
	}
	return unit, nil
}

// SoftDelete deactivates a unit. Missing or already-inactive units
// both report not found.
func (s *UnitService) SoftDelete(ctx context.Context, id uint) error {
	affected, err := s.unitRepo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUnitNotFound
	}
	return nil
}

// GetByID gets a unit in any state, parent name annotated
func (s *UnitService) GetByID(ctx context.Context, id uint) (*models.UnitRow, error) {
	row, err := s.unitRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnitNotFound
		}
		return nil, err
	}
	return row, nil
}

// ListAll lists all active units
func (s *UnitService) ListAll(ctx context.Context) ([]*models.UnitRow, error) {
	return s.unitRepo.ListActive(ctx)
}

// ListByParent lists active units directly under a parent
func (s *UnitService) ListByParent(ctx context.Context, parentID uint) ([]*models.UnitRow, error) {
	return s.unitRepo.ListByParent(ctx, parentID)
}

// ListByCompany lists active units by company discriminator
func (s *UnitService) ListByCompany(ctx context.Context, companyID int) ([]*models.UnitRow, error) {
	return s.unitRepo.ListByCompany(ctx, companyID)
}

// ListCommands lists the active command units
func (s *UnitService) ListCommands(ctx context.Context) ([]*models.Unit, error) {
	return s.unitRepo.ListCommands(ctx)
}

// ListByCommand lists a command's units, the command itself included
func (s *UnitService) ListByCommand(ctx context.Context, commandID uint) ([]*models.UnitRow, error) {
	return s.unitRepo.ListByCommand(ctx, commandID)
}
