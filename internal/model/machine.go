package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Machine represents a soundbox device assigned to a store. MachineID is the
// human-facing device label printed on the unit, distinct from the row ID.
type Machine struct {
	ID              uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	AssignedStoreID uuid.UUID      `json:"assigned_store_id" gorm:"type:char(36);not null;index"`
	MachineID       string         `json:"machine_id" gorm:"size:50;not null;index"`
	SerialNumber    string         `json:"serial_number" gorm:"size:100;not null"`
	Brand           string         `json:"brand" gorm:"size:100;not null"`
	Model           string         `json:"model" gorm:"size:100;not null"`
	FirmwareVersion string         `json:"firmware_version" gorm:"size:50;not null"`
	HardwareVersion string         `json:"hardware_version" gorm:"size:50;not null"`
	QRCodeURL       string         `json:"qr_code_url" gorm:"size:512;not null"`
	UpiID           string         `json:"upi_id" gorm:"size:100;not null"`
	MerchantName    string         `json:"merchant_name" gorm:"size:255;not null"`
	SimNumber       string         `json:"sim_number" gorm:"size:10;not null"`
	SimOperator     string         `json:"sim_operator" gorm:"size:50;not null"`
	VolumeLevel     int            `json:"volume_level" gorm:"not null;default:5"`
	Language        string         `json:"language" gorm:"size:50;not null"`
	Remarks         string         `json:"remarks" gorm:"size:512"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Store Store `json:"-" gorm:"foreignKey:AssignedStoreID"`
}

// BeforeCreate sets UUID before creating the record.
func (m *Machine) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
