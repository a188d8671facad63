package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hitenSisghSoft/soundbox/internal/cache"
	domerr "github.com/hitenSisghSoft/soundbox/internal/errors"
	"github.com/hitenSisghSoft/soundbox/internal/model"
	"github.com/hitenSisghSoft/soundbox/internal/repository"
)

const merchantSearchCacheTTL = 5 * time.Minute

// MerchantService handles merchant operations.
type MerchantService interface {
	CreateMerchant(ctx context.Context, merchant *model.Merchant) (*model.Merchant, error)
	UpdateMerchant(ctx context.Context, id uuid.UUID, merchant *model.Merchant) (*model.Merchant, error)
	DeleteMerchant(ctx context.Context, id uuid.UUID) error
	GetMerchant(ctx context.Context, id uuid.UUID) (*model.Merchant, error)
	SearchByMobile(ctx context.Context, mobile string) ([]model.Merchant, error)
	ListMerchants(ctx context.Context) ([]model.Merchant, error)
}

type merchantService struct {
	repo  repository.MerchantRepository
	cache *cache.Client
}

// NewMerchantService creates a new merchant service.
func NewMerchantService(repo repository.MerchantRepository, cache *cache.Client) MerchantService {
	return &merchantService{repo: repo, cache: cache}
}

func (s *merchantService) searchKey(mobile string) string {
	return fmt.Sprintf("merchant:mobile:%s", mobile)
}

func (s *merchantService) CreateMerchant(ctx context.Context, merchant *model.Merchant) (*model.Merchant, error) {
	if err := s.repo.Create(ctx, merchant); err != nil {
		return nil, fmt.Errorf("create merchant: %w", err)
	}
	_ = s.cache.Delete(ctx, s.searchKey(merchant.MobileNumber))
	return merchant, nil
}

// UpdateMerchant applies form fields onto the stored record. Both the old and
// new mobile number cache entries are invalidated so a stale search cannot
// resurrect the previous number.
func (s *merchantService) UpdateMerchant(ctx context.Context, id uuid.UUID, in *model.Merchant) (*model.Merchant, error) {
	merchant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domerr.ErrMerchantNotFound
		}
		return nil, err
	}

	oldMobile := merchant.MobileNumber
	merchant.Name = in.Name
	merchant.Email = in.Email
	merchant.MobileNumber = in.MobileNumber
	merchant.CompanyName = in.CompanyName
	merchant.Address = in.Address
	merchant.City = in.City
	merchant.State = in.State
	merchant.Country = in.Country
	merchant.ZipCode = in.ZipCode
	merchant.PanNumber = in.PanNumber
	merchant.GstNumber = in.GstNumber
	merchant.TemporaryAccountNumber = in.TemporaryAccountNumber

	if err := s.repo.Update(ctx, merchant); err != nil {
		return nil, fmt.Errorf("update merchant: %w", err)
	}
	_ = s.cache.Delete(ctx, s.searchKey(oldMobile))
	_ = s.cache.Delete(ctx, s.searchKey(merchant.MobileNumber))
	return merchant, nil
}

func (s *merchantService) DeleteMerchant(ctx context.Context, id uuid.UUID) error {
	merchant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return domerr.ErrMerchantNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete merchant: %w", err)
	}
	_ = s.cache.Delete(ctx, s.searchKey(merchant.MobileNumber))
	return nil
}

func (s *merchantService) GetMerchant(ctx context.Context, id uuid.UUID) (*model.Merchant, error) {
	merchant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domerr.ErrMerchantNotFound
		}
		return nil, err
	}
	return merchant, nil
}

// SearchByMobile returns merchants exactly matching a mobile number, with a
// Redis read-through. "No match" is an empty slice, never an error: the
// dashboard treats 200-with-empty and 404 as the same not-found outcome.
func (s *merchantService) SearchByMobile(ctx context.Context, mobile string) ([]model.Merchant, error) {
	var cached []model.Merchant
	if s.cache.GetJSON(ctx, s.searchKey(mobile), &cached) {
		return cached, nil
	}

	merchants, err := s.repo.FindByMobile(ctx, mobile)
	if err != nil {
		return nil, fmt.Errorf("search merchant by mobile: %w", err)
	}

	s.cache.SetJSON(ctx, s.searchKey(mobile), merchants, merchantSearchCacheTTL)
	return merchants, nil
}

func (s *merchantService) ListMerchants(ctx context.Context) ([]model.Merchant, error) {
	return s.repo.List(ctx)
}
