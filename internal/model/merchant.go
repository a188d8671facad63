package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Merchant represents a business onboarded by an agent. Stores hang off a
// merchant; soundbox machines hang off stores.
type Merchant struct {
	ID                     uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Name                   string         `json:"name" gorm:"size:255;not null;index"`
	Email                  string         `json:"email" gorm:"uniqueIndex;size:255;not null"`
	MobileNumber           string         `json:"mobile_number" gorm:"size:10;not null;index"`
	CompanyName            string         `json:"company_name" gorm:"size:255;not null"`
	Address                string         `json:"address" gorm:"size:512;not null"`
	City                   string         `json:"city" gorm:"size:100;not null"`
	State                  string         `json:"state" gorm:"size:100;not null"`
	Country                string         `json:"country" gorm:"size:100;not null"`
	ZipCode                string         `json:"zip_code" gorm:"size:6;not null"`
	PanNumber              string         `json:"pan_number" gorm:"size:20;not null"`
	GstNumber              string         `json:"gst_number" gorm:"size:20;not null"`
	TemporaryAccountNumber string         `json:"temporary_account_number" gorm:"size:30;not null"`
	CreatedAt              time.Time      `json:"created_at"`
	UpdatedAt              time.Time      `json:"updated_at"`
	DeletedAt              gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Stores []Store `json:"stores,omitempty" gorm:"foreignKey:MerchantID"`
}

// BeforeCreate sets UUID before creating the record.
func (m *Merchant) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
