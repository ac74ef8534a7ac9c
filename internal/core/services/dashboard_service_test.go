package services

import (
	"context"
	"testing"

	"navims-backend/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedTaxonomy(t *testing.T, db *gorm.DB) uint {
	t.Helper()

	setup := &models.Setup{SetupName: "Equipment Type"}
	require.NoError(t, db.Create(setup).Error)

	detail := &models.SetupDetail{SMSID: setup.SMSID, SetupDetailName: "Server"}
	require.NoError(t, db.Create(detail).Error)
	return detail.SetupDetailID
}

func seedEquipment(t *testing.T, db *gorm.DB, typeID uint, unitID *uint, status string, active bool) {
	t.Helper()
	equipment := &models.Equipment{
		UnitID:                     unitID,
		EquipmentTypeSetupDetailID: typeID,
		Equipment:                  "Test Equipment",
		Status:                     strPtr(status),
		IsActive:                   true,
	}
	require.NoError(t, db.Create(equipment).Error)
	if !active {
		// Create skips false over the column default; flip explicitly
		require.NoError(t, db.Model(equipment).Update("is_active", false).Error)
	}
}

func seedUnit(t *testing.T, db *gorm.DB, code, name string, parent *uint, companyID *int, active bool) uint {
	t.Helper()
	unit := &models.Unit{
		UnitCode:     code,
		UnitName:     name,
		ParentUnitID: parent,
		CompanyID:    companyID,
		IsActive:     true,
	}
	require.NoError(t, db.Create(unit).Error)
	if !active {
		require.NoError(t, db.Model(unit).Update("is_active", false).Error)
	}
	return unit.UnitID
}

func TestDashboardStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)
	typeID := seedTaxonomy(t, db)

	seedEquipment(t, db, typeID, nil, models.StatusOps, true)
	seedEquipment(t, db, typeID, nil, models.StatusOps, true)
	seedEquipment(t, db, typeID, nil, models.StatusNonOps, true)
	seedEquipment(t, db, typeID, nil, models.StatusUnderRepair, true)
	seedEquipment(t, db, typeID, nil, models.StatusBER, true)
	// Inactive records never count
	seedEquipment(t, db, typeID, nil, models.StatusOps, false)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(5), stats.TotalEquipments)
	assert.Equal(t, int64(2), stats.Ops)
	assert.Equal(t, int64(1), stats.NonOps)
	assert.Equal(t, int64(1), stats.UnderRepair)
	assert.Equal(t, int64(1), stats.BER)
}

func TestDashboardStatsEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	// Zero-filled, never null
	assert.Equal(t, int64(0), stats.TotalEquipments)
	assert.Equal(t, int64(0), stats.Ops)
	assert.Equal(t, int64(0), stats.NonOps)
	assert.Equal(t, int64(0), stats.UnderRepair)
	assert.Equal(t, int64(0), stats.BER)
}

func TestDashboardEquipmentByStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)
	typeID := seedTaxonomy(t, db)

	seedEquipment(t, db, typeID, nil, models.StatusOps, true)
	seedEquipment(t, db, typeID, nil, models.StatusOps, true)
	seedEquipment(t, db, typeID, nil, models.StatusBER, true)

	rows, err := svc.GetEquipmentByStatus(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Largest bucket first
	require.NotNil(t, rows[0].Status)
	assert.Equal(t, models.StatusOps, *rows[0].Status)
	assert.Equal(t, int64(2), rows[0].Count)
	require.NotNil(t, rows[1].Status)
	assert.Equal(t, models.StatusBER, *rows[1].Status)
	assert.Equal(t, int64(1), rows[1].Count)
}

func TestDashboardEquipmentByType(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)

	setup := &models.Setup{SetupName: "Equipment Type"}
	require.NoError(t, db.Create(setup).Error)
	server := &models.SetupDetail{SMSID: setup.SMSID, SetupDetailName: "Server"}
	require.NoError(t, db.Create(server).Error)
	printer := &models.SetupDetail{SMSID: setup.SMSID, SetupDetailName: "Printer"}
	require.NoError(t, db.Create(printer).Error)

	seedEquipment(t, db, server.SetupDetailID, nil, models.StatusOps, true)
	seedEquipment(t, db, server.SetupDetailID, nil, models.StatusOps, true)
	seedEquipment(t, db, printer.SetupDetailID, nil, models.StatusOps, true)

	rows, err := svc.GetEquipmentByType(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.NotNil(t, rows[0].Type)
	assert.Equal(t, "Server", *rows[0].Type)
	assert.Equal(t, int64(2), rows[0].Count)
	require.NotNil(t, rows[1].Type)
	assert.Equal(t, "Printer", *rows[1].Type)
	assert.Equal(t, int64(1), rows[1].Count)
}

// A command with no parent of its own still reports the equipment held
// by itself and its direct children.
func TestDashboardEquipmentByCommand(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)
	typeID := seedTaxonomy(t, db)

	hq := seedUnit(t, db, "HQ", "Naval HQ", nil, intPtr(models.CommandCompanyID), true)
	baseOne := seedUnit(t, db, "NB-1", "Naval Base One", uintPtr(hq), nil, true)
	seedUnit(t, db, "NB-2", "Naval Base Two", uintPtr(hq), nil, true)

	// A second command with nothing attached
	emptyCmd := seedUnit(t, db, "EC", "Eastern Command", nil, intPtr(models.CommandCompanyID), true)

	seedEquipment(t, db, typeID, uintPtr(baseOne), models.StatusOps, true)
	seedEquipment(t, db, typeID, uintPtr(baseOne), models.StatusOps, true)
	// Equipment held by the command itself counts too
	seedEquipment(t, db, typeID, uintPtr(hq), models.StatusNonOps, true)
	// Inactive equipment stays out
	seedEquipment(t, db, typeID, uintPtr(baseOne), models.StatusOps, false)

	rows, err := svc.GetEquipmentByCommand(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1, "zero-count commands are dropped")

	assert.Equal(t, hq, rows[0].UnitID)
	assert.Equal(t, "Naval HQ", rows[0].CommandName)
	assert.Equal(t, int64(3), rows[0].Count)
	assert.NotEqual(t, emptyCmd, rows[0].UnitID)
}

func TestDashboardEquipmentByCommandSkipsInactive(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)
	typeID := seedTaxonomy(t, db)

	hq := seedUnit(t, db, "HQ", "Naval HQ", nil, intPtr(models.CommandCompanyID), true)
	deadBase := seedUnit(t, db, "NB-1", "Naval Base One", uintPtr(hq), nil, false)

	// Equipment under a deactivated unit no longer rolls up
	seedEquipment(t, db, typeID, uintPtr(deadBase), models.StatusOps, true)

	rows, err := svc.GetEquipmentByCommand(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDashboardEquipmentByUnitsInCommand(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)
	typeID := seedTaxonomy(t, db)

	hq := seedUnit(t, db, "HQ", "Naval HQ", nil, intPtr(models.CommandCompanyID), true)
	baseOne := seedUnit(t, db, "NB-1", "Naval Base One", uintPtr(hq), nil, true)
	seedUnit(t, db, "NB-2", "Naval Base Two", uintPtr(hq), nil, true)

	seedEquipment(t, db, typeID, uintPtr(baseOne), models.StatusOps, true)
	seedEquipment(t, db, typeID, uintPtr(baseOne), models.StatusOps, true)
	seedEquipment(t, db, typeID, uintPtr(hq), models.StatusOps, true)

	rows, err := svc.GetEquipmentByUnitsInCommand(context.Background(), hq)
	require.NoError(t, err)
	require.Len(t, rows, 2, "empty units are dropped")

	assert.Equal(t, baseOne, rows[0].UnitID)
	assert.Equal(t, int64(2), rows[0].Count)
	assert.Equal(t, hq, rows[1].UnitID)
	assert.Equal(t, int64(1), rows[1].Count)
}
