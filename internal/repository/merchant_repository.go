package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hitenSisghSoft/soundbox/internal/model"
)

// MerchantRepository defines merchant persistence operations.
type MerchantRepository interface {
	Create(ctx context.Context, merchant *model.Merchant) error
	Update(ctx context.Context, merchant *model.Merchant) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Merchant, error)
	FindByMobile(ctx context.Context, mobile string) ([]model.Merchant, error)
	List(ctx context.Context) ([]model.Merchant, error)
}

type merchantRepository struct {
	db *gorm.DB
}

// NewMerchantRepository creates a new merchant repository.
func NewMerchantRepository(db *gorm.DB) MerchantRepository {
	return &merchantRepository{db: db}
}

// Create creates a new merchant.
func (r *merchantRepository) Create(ctx context.Context, merchant *model.Merchant) error {
	return r.db.WithContext(ctx).Create(merchant).Error
}

// Update updates an existing merchant.
func (r *merchantRepository) Update(ctx context.Context, merchant *model.Merchant) error {
	return r.db.WithContext(ctx).Save(merchant).Error
}

// Delete soft-deletes a merchant by ID.
func (r *merchantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Merchant{}, "id = ?", id).Error
}

// FindByID finds a merchant by ID.
func (r *merchantRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Merchant, error) {
	var merchant model.Merchant
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&merchant).Error; err != nil {
		return nil, err
	}
	return &merchant, nil
}

// FindByMobile returns merchants exactly matching a mobile number. An empty
// slice is the "not found" outcome; it is never an error.
func (r *merchantRepository) FindByMobile(ctx context.Context, mobile string) ([]model.Merchant, error) {
	var merchants []model.Merchant
	if err := r.db.WithContext(ctx).Where("mobile_number = ?", mobile).Find(&merchants).Error; err != nil {
		return nil, err
	}
	return merchants, nil
}

// List returns all merchants ordered by creation time.
func (r *merchantRepository) List(ctx context.Context) ([]model.Merchant, error) {
	var merchants []model.Merchant
	if err := r.db.WithContext(ctx).Order("created_at").Find(&merchants).Error; err != nil {
		return nil, err
	}
	return merchants, nil
}
