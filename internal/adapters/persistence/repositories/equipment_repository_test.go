package repositories

import (
	"context"
	"testing"
	"time"

	"navims-backend/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	return db
}

func strPtr(v string) *string { return &v }

func timePtr(v time.Time) *time.Time { return &v }

type equipmentFixture struct {
	repo     *EquipmentRepository
	typeID   uint
	typeName string
}

func newEquipmentFixture(t *testing.T) (*gorm.DB, *equipmentFixture) {
	t.Helper()

	db := newTestDB(t)
	setup := &models.Setup{SetupName: "Equipment Type"}
	require.NoError(t, db.Create(setup).Error)
	detail := &models.SetupDetail{SMSID: setup.SMSID, SetupDetailName: "Rack Server"}
	require.NoError(t, db.Create(detail).Error)

	return db, &equipmentFixture{
		repo:     NewEquipmentRepository(db),
		typeID:   detail.SetupDetailID,
		typeName: detail.SetupDetailName,
	}
}

func TestEquipmentJoinedReads(t *testing.T) {
	db, f := newEquipmentFixture(t)
	ctx := context.Background()

	creator := &models.User{Username: "jdoe", Password: "x", FullName: "John Doe", Role: "user"}
	require.NoError(t, db.Create(creator).Error)

	equipment := &models.Equipment{
		EquipmentTypeSetupDetailID: f.typeID,
		Equipment:                  "Dell PowerEdge R740",
		SerialNo:                   strPtr("SN-001"),
		IsActive:                   true,
		CreatedBy:                  &creator.UserID,
	}
	require.NoError(t, f.repo.Create(ctx, equipment))

	row, err := f.repo.GetByID(ctx, equipment.EquipmentID)
	require.NoError(t, err)
	require.NotNil(t, row.EquipmentTypeName)
	assert.Equal(t, f.typeName, *row.EquipmentTypeName)
	require.NotNil(t, row.SetupName)
	assert.Equal(t, "Equipment Type", *row.SetupName)
	require.NotNil(t, row.CreatedByUsername)
	assert.Equal(t, "jdoe", *row.CreatedByUsername)

	bySerial, err := f.repo.GetBySerialNo(ctx, "SN-001")
	require.NoError(t, err)
	assert.Equal(t, equipment.EquipmentID, bySerial.EquipmentID)

	_, err = f.repo.GetBySerialNo(ctx, "SN-404")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestEquipmentSearch(t *testing.T) {
	_, f := newEquipmentFixture(t)
	ctx := context.Background()

	require.NoError(t, f.repo.Create(ctx, &models.Equipment{
		EquipmentTypeSetupDetailID: f.typeID,
		Equipment:                  "Dell PowerEdge R740",
		SerialNo:                   strPtr("SN-001"),
		MakeModel:                  strPtr("Dell R740"),
		IsActive:                   true,
	}))
	require.NoError(t, f.repo.Create(ctx, &models.Equipment{
		EquipmentTypeSetupDetailID: f.typeID,
		Equipment:                  "HP LaserJet",
		SerialNo:                   strPtr("SN-002"),
		IsActive:                   true,
	}))

	tests := []struct {
		name string
		term string
		want int
	}{
		{"by equipment name", "PowerEdge", 1},
		{"by serial no", "SN-002", 1},
		{"by make/model", "R740", 1},
		{"by type name", "Rack Server", 2},
		{"no match", "submarine", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := f.repo.Search(ctx, tt.term)
			require.NoError(t, err)
			assert.Len(t, rows, tt.want)
		})
	}
}

func TestEquipmentWarrantyCounts(t *testing.T) {
	_, f := newEquipmentFixture(t)
	ctx := context.Background()
	now := time.Now()

	add := func(expiry *time.Time, active bool) {
		equipment := &models.Equipment{
			EquipmentTypeSetupDetailID: f.typeID,
			Equipment:                  "Test Equipment",
			WarrantyExpiryDate:         expiry,
			IsActive:                   true,
		}
		require.NoError(t, f.repo.Create(ctx, equipment))
		if !active {
			// Create skips false over the column default; flip explicitly
			equipment.IsActive = false
			require.NoError(t, f.repo.Update(ctx, equipment))
		}
	}

	add(timePtr(now.Add(-48*time.Hour)), true)  // lapsed
	add(timePtr(now.Add(10*24*time.Hour)), true) // lapsing within 30 days
	add(timePtr(now.Add(90*24*time.Hour)), true) // well inside warranty
	add(timePtr(now.Add(-48*time.Hour)), false)  // lapsed but inactive
	add(nil, true)                               // no warranty recorded

	expired, err := f.repo.CountWarrantyExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), expired)

	expiring, err := f.repo.CountWarrantyExpiring(ctx, now, 30*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), expiring)
}

func TestEquipmentListPagination(t *testing.T) {
	_, f := newEquipmentFixture(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, f.repo.Create(ctx, &models.Equipment{
			EquipmentTypeSetupDetailID: f.typeID,
			Equipment:                  "Test Equipment",
			IsActive:                   true,
		}))
	}

	rows, total, err := f.repo.List(ctx, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, rows, 2)

	rows, total, err = f.repo.List(ctx, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, rows, 1)
}
