package models

import (
	"time"

	"gorm.io/gorm"
)

// JSON field names follow the legacy NAVIMS wire format (PascalCase)
// so existing clients keep working against this backend.

// ============================================================
// Reference data: Setup / SetupDetails
// ============================================================

// Setup represents the setups table (two-level taxonomy root)
type Setup struct {
	SMSID     uint      `gorm:"column:sms_id;primaryKey" json:"SMSID"`
	SetupName string    `gorm:"size:100;uniqueIndex;not null" json:"SetupName"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"CreatedAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"UpdatedAt"`
}

func (Setup) TableName() string {
	return "setups"
}

// SetupDetail represents the setup_details table (named values under a setup)
type SetupDetail struct {
	SetupDetailID   uint      `gorm:"primaryKey" json:"SetupDetailID"`
	SMSID           uint      `gorm:"column:sms_id;index;not null" json:"SMSID"`
	SetupDetailName string    `gorm:"size:200;not null" json:"SetupDetailName"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"CreatedAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"UpdatedAt"`

	Setup *Setup `gorm:"foreignKey:SMSID;references:SMSID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SetupDetail) TableName() string {
	return "setup_details"
}

// SetupDetailRow is a read shape joining the parent setup name
type SetupDetailRow struct {
	SetupDetailID   uint      `gorm:"column:setup_detail_id" json:"SetupDetailID"`
	SMSID           uint      `gorm:"column:sms_id" json:"SMSID"`
	SetupDetailName string    `gorm:"column:setup_detail_name" json:"SetupDetailName"`
	SetupName       *string   `gorm:"column:setup_name" json:"SetupName"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"CreatedAt"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"UpdatedAt"`
}

// ============================================================
// Users
// ============================================================

// User represents the users table
type User struct {
	UserID               uint      `gorm:"primaryKey" json:"UserID"`
	Username             string    `gorm:"size:50;uniqueIndex;not null" json:"Username"`
	Password             string    `gorm:"size:255;not null" json:"-"`
	FullName             string    `gorm:"size:100;not null" json:"FullName"`
	Role                 string    `gorm:"size:50;not null;default:'user'" json:"Role"`
	CommandSetupDetailID *uint     `gorm:"index" json:"CommandSetupDetailID"`
	CreatedAt            time.Time `gorm:"autoCreateTime" json:"CreatedAt"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime" json:"UpdatedAt"`
}

func (User) TableName() string {
	return "users"
}

// UserRow is a read shape joining the command classification names
type UserRow struct {
	UserID               uint      `gorm:"column:user_id" json:"UserID"`
	Username             string    `gorm:"column:username" json:"Username"`
	FullName             string    `gorm:"column:full_name" json:"FullName"`
	Role                 string    `gorm:"column:role" json:"Role"`
	CommandSetupDetailID *uint     `gorm:"column:command_setup_detail_id" json:"CommandSetupDetailID"`
	CommandName          *string   `gorm:"column:command_name" json:"CommandName"`
	SetupName            *string   `gorm:"column:setup_name" json:"SetupName"`
	CreatedAt            time.Time `gorm:"column:created_at" json:"CreatedAt"`
	UpdatedAt            time.Time `gorm:"column:updated_at" json:"UpdatedAt"`
}

// ToRow strips the password and carries the base columns; join names
// stay nil when the user was loaded without the setup join
func (u *User) ToRow() *UserRow {
	return &UserRow{
		UserID:               u.UserID,
		Username:             u.Username,
		FullName:             u.FullName,
		Role:                 u.Role,
		CommandSetupDetailID: u.CommandSetupDetailID,
		CreatedAt:            u.CreatedAt,
		UpdatedAt:            u.UpdatedAt,
	}
}

// ============================================================
// Organizational unit tree
// ============================================================

// Unit represents the units table. A unit whose CompanyID equals
// CommandCompanyID is a "command" (top-tier grouping); all other
// units hang under some command via ParentUnitID. Rows are never
// removed: delete flips IsActive and every listing and aggregation
// filters on it. There is no operation that flips IsActive back.
type Unit struct {
	UnitID       uint      `gorm:"primaryKey" json:"UnitID"`
	UnitCode     string    `gorm:"size:50;uniqueIndex;not null" json:"UnitCode"`
	UnitName     string    `gorm:"size:100;not null" json:"UnitName"`
	ParentUnitID *uint     `gorm:"index" json:"ParentUnit"`
	CompanyID    *int      `gorm:"index" json:"CompanyID"`
	IsActive     bool      `gorm:"not null;default:true" json:"IsActive"`
	Remarks      *string   `gorm:"size:1000" json:"Remarks"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"CreatedAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"UpdatedAt"`
}

func (Unit) TableName() string {
	return "units"
}

// CommandCompanyID marks a unit as a top-level command
const CommandCompanyID = 1

// UnitRow is a read shape annotated with the parent unit's name
type UnitRow struct {
	UnitID         uint      `gorm:"column:unit_id" json:"UnitID"`
	UnitCode       string    `gorm:"column:unit_code" json:"UnitCode"`
	UnitName       string    `gorm:"column:unit_name" json:"UnitName"`
	ParentUnitID   *uint     `gorm:"column:parent_unit_id" json:"ParentUnit"`
	CompanyID      *int      `gorm:"column:company_id" json:"CompanyID"`
	IsActive       bool      `gorm:"column:is_active" json:"IsActive"`
	Remarks        *string   `gorm:"column:remarks" json:"Remarks"`
	ParentUnitName *string   `gorm:"column:parent_unit_name" json:"ParentUnitName"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"CreatedAt"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"UpdatedAt"`
}

// ============================================================
// Equipment
// ============================================================

// Equipment statuses
const (
	StatusOps         = "OPS"
	StatusNonOps      = "NON-OPS"
	StatusUnderRepair = "UNDER-REPAIR"
	StatusBER         = "BER"
)

// Equipment represents the equipments table. UnitID is a nullable
// integer foreign key into units (the legacy system stored it as
// free text and coerced at query time).
type Equipment struct {
	EquipmentID                uint       `gorm:"primaryKey" json:"EquipmentID"`
	SNO                        *string    `gorm:"column:sno;size:50" json:"SNO"`
	UnitID                     *uint      `gorm:"index" json:"UnitID"`
	EquipmentTypeSetupDetailID uint       `gorm:"index;not null" json:"EquipmentTypeSetupDetailID"`
	Equipment                  string     `gorm:"size:200;not null" json:"Equipment"`
	SerialNo                   *string    `gorm:"size:100;index" json:"SerialNo"`
	MakeModel                  *string    `gorm:"size:200" json:"MakeModel"`
	Processor                  *string    `gorm:"size:200" json:"Processor"`
	RAM                        *string    `gorm:"column:ram;size:100" json:"RAM"`
	Storage                    *string    `gorm:"size:200" json:"Storage"`
	OpticalDrive               *string    `gorm:"size:100" json:"OpticalDrive"`
	NIC                        *string    `gorm:"column:nic;size:200" json:"NIC"`
	PowerSupply                *string    `gorm:"size:100" json:"PowerSupply"`
	DateOfPurchase             *time.Time `gorm:"type:date" json:"DateOfPurchase"`
	SourceOfProcurement        *string    `gorm:"size:200" json:"SourceOfProcurement"`
	ContractLPONoDate          *string    `gorm:"column:contract_lpo_no_date;size:200" json:"ContractLPONoDate"`
	Cost                       *float64   `gorm:"type:decimal(18,2)" json:"Cost"`
	OEMInfo                    *string    `gorm:"column:oem_info;size:500" json:"OEMInfo"`
	LocalOEMRep                *string    `gorm:"column:local_oem_rep;size:200" json:"LocalOEMRep"`
	WarrantyExpiryDate         *time.Time `gorm:"type:date" json:"WarrantyExpiryDate"`
	SLARecDMDetails            *string    `gorm:"column:sla_rec_dm_details;size:500" json:"SLARecDMDetails"`
	Status                     *string    `gorm:"size:50;index" json:"Status"`
	Remarks                    *string    `gorm:"size:1000" json:"Remarks"`
	ReferenceNo                *string    `gorm:"size:100" json:"ReferenceNo"`
	IsActive                   bool       `gorm:"not null;default:true" json:"IsActive"`
	CreatedBy                  *uint      `json:"CreatedBy"`
	CreatedAt                  time.Time  `gorm:"autoCreateTime" json:"CreatedAt"`
	UpdatedAt                  time.Time  `gorm:"autoUpdateTime" json:"UpdatedAt"`

	Creator *User `gorm:"foreignKey:CreatedBy;constraint:OnDelete:SET NULL" json:"-"`
}

func (Equipment) TableName() string {
	return "equipments"
}

// EquipmentRow is a read shape joining type, setup and creator names
type EquipmentRow struct {
	Equipment
	EquipmentTypeName *string `gorm:"column:equipment_type_name" json:"EquipmentTypeName"`
	SetupName         *string `gorm:"column:setup_name" json:"SetupName"`
	CreatedByUsername *string `gorm:"column:created_by_username" json:"CreatedByUsername"`
	CreatedByFullName *string `gorm:"column:created_by_full_name" json:"CreatedByFullName"`
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate creates the schema for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Setup{},
		&SetupDetail{},
		&User{},
		&Unit{},
		&Equipment{},
	)
}
