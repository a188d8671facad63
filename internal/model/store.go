package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store represents a merchant's physical outlet. A store carries the id of
// the merchant it belongs to; nothing beyond that is enforced client-side.
type Store struct {
	ID          uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	MerchantID  uuid.UUID      `json:"merchant_id" gorm:"type:char(36);not null;index"`
	StoreName   string         `json:"store_name" gorm:"size:255;not null"`
	StoreCode   string         `json:"store_code" gorm:"size:50;not null"`
	OwnerName   string         `json:"owner_name" gorm:"size:255;not null"`
	OwnerMobile string         `json:"owner_mobile" gorm:"size:10;not null"`
	Address     string         `json:"address" gorm:"size:512;not null"`
	City        string         `json:"city" gorm:"size:100;not null"`
	State       string         `json:"state" gorm:"size:100;not null"`
	Pincode     string         `json:"pincode" gorm:"size:6;not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Merchant Merchant  `json:"-" gorm:"foreignKey:MerchantID"`
	Machines []Machine `json:"machines,omitempty" gorm:"foreignKey:AssignedStoreID"`
}

// BeforeCreate sets UUID before creating the record.
func (s *Store) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
