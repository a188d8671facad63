package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hitenSisghSoft/soundbox/internal/model"
)

// StoreRepository defines store persistence operations.
type StoreRepository interface {
	Create(ctx context.Context, store *model.Store) error
	Update(ctx context.Context, store *model.Store) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Store, error)
	ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]model.Store, error)
}

type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository creates a new store repository.
func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

// Create creates a new store.
func (r *storeRepository) Create(ctx context.Context, store *model.Store) error {
	return r.db.WithContext(ctx).Create(store).Error
}

// Update updates an existing store.
func (r *storeRepository) Update(ctx context.Context, store *model.Store) error {
	return r.db.WithContext(ctx).Save(store).Error
}

// Delete soft-deletes a store by ID.
func (r *storeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Store{}, "id = ?", id).Error
}

// FindByID finds a store by ID.
func (r *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Store, error) {
	var store model.Store
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&store).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

// ListByMerchant returns a merchant's stores ordered by creation time.
func (r *storeRepository) ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]model.Store, error) {
	var stores []model.Store
	if err := r.db.WithContext(ctx).Where("merchant_id = ?", merchantID).Order("created_at").Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}
