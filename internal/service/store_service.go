package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domerr "github.com/hitenSisghSoft/soundbox/internal/errors"
	"github.com/hitenSisghSoft/soundbox/internal/model"
	"github.com/hitenSisghSoft/soundbox/internal/repository"
)

// StoreService handles merchant store operations.
type StoreService interface {
	CreateStore(ctx context.Context, store *model.Store) (*model.Store, error)
	UpdateStore(ctx context.Context, id uuid.UUID, store *model.Store) (*model.Store, error)
	DeleteStore(ctx context.Context, id uuid.UUID) error
	ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]model.Store, error)
}

type storeService struct {
	repo         repository.StoreRepository
	merchantRepo repository.MerchantRepository
}

// NewStoreService creates a new store service.
func NewStoreService(repo repository.StoreRepository, merchantRepo repository.MerchantRepository) StoreService {
	return &storeService{repo: repo, merchantRepo: merchantRepo}
}

// CreateStore creates a store under a merchant. The parent merchant must
// exist; beyond that no referential integrity is enforced.
func (s *storeService) CreateStore(ctx context.Context, store *model.Store) (*model.Store, error) {
	if _, err := s.merchantRepo.FindByID(ctx, store.MerchantID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domerr.ErrMerchantNotFound
		}
		return nil, err
	}
	if err := s.repo.Create(ctx, store); err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}
	return store, nil
}

func (s *storeService) UpdateStore(ctx context.Context, id uuid.UUID, in *model.Store) (*model.Store, error) {
	store, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domerr.ErrStoreNotFound
		}
		return nil, err
	}

	store.StoreName = in.StoreName
	store.StoreCode = in.StoreCode
	store.OwnerName = in.OwnerName
	store.OwnerMobile = in.OwnerMobile
	store.Address = in.Address
	store.City = in.City
	store.State = in.State
	store.Pincode = in.Pincode

	if err := s.repo.Update(ctx, store); err != nil {
		return nil, fmt.Errorf("update store: %w", err)
	}
	return store, nil
}

func (s *storeService) DeleteStore(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return domerr.ErrStoreNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete store: %w", err)
	}
	return nil
}

func (s *storeService) ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]model.Store, error) {
	return s.repo.ListByMerchant(ctx, merchantID)
}
