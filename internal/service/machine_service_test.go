package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	domerr "github.com/hitenSisghSoft/soundbox/internal/errors"
	"github.com/hitenSisghSoft/soundbox/internal/model"
)

// MockStoreRepository is a mock implementation of StoreRepository.
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) Create(ctx context.Context, store *model.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

func (m *MockStoreRepository) Update(ctx context.Context, store *model.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

func (m *MockStoreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Store), args.Error(1)
}

func (m *MockStoreRepository) ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]model.Store, error) {
	args := m.Called(ctx, merchantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Store), args.Error(1)
}

// MockMachineRepository is a mock implementation of MachineRepository.
type MockMachineRepository struct {
	mock.Mock
}

func (m *MockMachineRepository) Create(ctx context.Context, machine *model.Machine) error {
	args := m.Called(ctx, machine)
	return args.Error(0)
}

func (m *MockMachineRepository) Update(ctx context.Context, machine *model.Machine) error {
	args := m.Called(ctx, machine)
	return args.Error(0)
}

func (m *MockMachineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMachineRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Machine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Machine), args.Error(1)
}

func (m *MockMachineRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]model.Machine, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Machine), args.Error(1)
}

func (m *MockMachineRepository) List(ctx context.Context) ([]model.Machine, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Machine), args.Error(1)
}

func TestMachineService_CreateMachine(t *testing.T) {
	storeID := uuid.New()

	t.Run("clamps volume into firmware range", func(t *testing.T) {
		mockStores := new(MockStoreRepository)
		mockStores.On("FindByID", mock.Anything, storeID).Return(&model.Store{ID: storeID}, nil)

		mockMachines := new(MockMachineRepository)
		mockMachines.On("Create", mock.Anything, mock.MatchedBy(func(m *model.Machine) bool {
			return m.VolumeLevel == MaxVolumeLevel
		})).Return(nil)

		service := NewMachineService(mockMachines, mockStores)
		machine, err := service.CreateMachine(context.Background(), &model.Machine{
			AssignedStoreID: storeID,
			VolumeLevel:     42,
		})
		assert.NoError(t, err)
		assert.Equal(t, MaxVolumeLevel, machine.VolumeLevel)
		mockMachines.AssertExpectations(t)
	})

	t.Run("missing store", func(t *testing.T) {
		mockStores := new(MockStoreRepository)
		mockStores.On("FindByID", mock.Anything, storeID).Return(nil, gorm.ErrRecordNotFound)

		service := NewMachineService(new(MockMachineRepository), mockStores)
		_, err := service.CreateMachine(context.Background(), &model.Machine{AssignedStoreID: storeID})
		assert.Equal(t, domerr.ErrStoreNotFound, err)
	})
}

func TestMachineService_UpdateMachine(t *testing.T) {
	id := uuid.New()

	t.Run("applies fields and clamps volume", func(t *testing.T) {
		mockMachines := new(MockMachineRepository)
		mockMachines.On("FindByID", mock.Anything, id).Return(&model.Machine{ID: id, VolumeLevel: 5}, nil)
		mockMachines.On("Update", mock.Anything, mock.MatchedBy(func(m *model.Machine) bool {
			return m.VolumeLevel == MinVolumeLevel && m.Brand == "SoundWave"
		})).Return(nil)

		service := NewMachineService(mockMachines, new(MockStoreRepository))
		machine, err := service.UpdateMachine(context.Background(), id, &model.Machine{
			Brand:       "SoundWave",
			VolumeLevel: -3,
		})
		assert.NoError(t, err)
		assert.Equal(t, MinVolumeLevel, machine.VolumeLevel)
	})

	t.Run("missing machine", func(t *testing.T) {
		mockMachines := new(MockMachineRepository)
		mockMachines.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		service := NewMachineService(mockMachines, new(MockStoreRepository))
		_, err := service.UpdateMachine(context.Background(), id, &model.Machine{})
		assert.Equal(t, domerr.ErrMachineNotFound, err)
	})
}

func TestStoreService_CreateStore(t *testing.T) {
	merchantID := uuid.New()

	t.Run("requires existing parent merchant", func(t *testing.T) {
		mockMerchants := new(MockMerchantRepository)
		mockMerchants.On("FindByID", mock.Anything, merchantID).Return(nil, gorm.ErrRecordNotFound)

		service := NewStoreService(new(MockStoreRepository), mockMerchants)
		_, err := service.CreateStore(context.Background(), &model.Store{MerchantID: merchantID})
		assert.Equal(t, domerr.ErrMerchantNotFound, err)
	})

	t.Run("creates under existing merchant", func(t *testing.T) {
		mockMerchants := new(MockMerchantRepository)
		mockMerchants.On("FindByID", mock.Anything, merchantID).Return(&model.Merchant{ID: merchantID}, nil)

		mockStores := new(MockStoreRepository)
		mockStores.On("Create", mock.Anything, mock.AnythingOfType("*model.Store")).Return(nil)

		service := NewStoreService(mockStores, mockMerchants)
		store, err := service.CreateStore(context.Background(), &model.Store{
			MerchantID: merchantID,
			StoreName:  "MG Road",
		})
		assert.NoError(t, err)
		assert.Equal(t, "MG Road", store.StoreName)
		mockStores.AssertExpectations(t)
	})
}
