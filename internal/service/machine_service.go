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

// Volume levels supported by the soundbox firmware.
const (
	MinVolumeLevel = 0
	MaxVolumeLevel = 10
)

// MachineService handles soundbox machine operations.
type MachineService interface {
	CreateMachine(ctx context.Context, machine *model.Machine) (*model.Machine, error)
	UpdateMachine(ctx context.Context, id uuid.UUID, machine *model.Machine) (*model.Machine, error)
	DeleteMachine(ctx context.Context, id uuid.UUID) error
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]model.Machine, error)
	ListMachines(ctx context.Context) ([]model.Machine, error)
}

type machineService struct {
	repo      repository.MachineRepository
	storeRepo repository.StoreRepository
}

// NewMachineService creates a new machine service.
func NewMachineService(repo repository.MachineRepository, storeRepo repository.StoreRepository) MachineService {
	return &machineService{repo: repo, storeRepo: storeRepo}
}

func clampVolume(level int) int {
	if level < MinVolumeLevel {
		return MinVolumeLevel
	}
	if level > MaxVolumeLevel {
		return MaxVolumeLevel
	}
	return level
}

// CreateMachine registers a machine under a store. The assigned store must
// exist.
func (s *machineService) CreateMachine(ctx context.Context, machine *model.Machine) (*model.Machine, error) {
	if _, err := s.storeRepo.FindByID(ctx, machine.AssignedStoreID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domerr.ErrStoreNotFound
		}
		return nil, err
	}
	machine.VolumeLevel = clampVolume(machine.VolumeLevel)
	if err := s.repo.Create(ctx, machine); err != nil {
		return nil, fmt.Errorf("create machine: %w", err)
	}
	return machine, nil
}

func (s *machineService) UpdateMachine(ctx context.Context, id uuid.UUID, in *model.Machine) (*model.Machine, error) {
	machine, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domerr.ErrMachineNotFound
		}
		return nil, err
	}

	machine.MachineID = in.MachineID
	machine.SerialNumber = in.SerialNumber
	machine.Brand = in.Brand
	machine.Model = in.Model
	machine.FirmwareVersion = in.FirmwareVersion
	machine.HardwareVersion = in.HardwareVersion
	machine.QRCodeURL = in.QRCodeURL
	machine.UpiID = in.UpiID
	machine.MerchantName = in.MerchantName
	machine.SimNumber = in.SimNumber
	machine.SimOperator = in.SimOperator
	machine.VolumeLevel = clampVolume(in.VolumeLevel)
	machine.Language = in.Language
	machine.Remarks = in.Remarks

	if err := s.repo.Update(ctx, machine); err != nil {
		return nil, fmt.Errorf("update machine: %w", err)
	}
	return machine, nil
}

func (s *machineService) DeleteMachine(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return domerr.ErrMachineNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete machine: %w", err)
	}
	return nil
}

func (s *machineService) ListByStore(ctx context.Context, storeID uuid.UUID) ([]model.Machine, error) {
	return s.repo.ListByStore(ctx, storeID)
}

func (s *machineService) ListMachines(ctx context.Context) ([]model.Machine, error) {
	return s.repo.List(ctx)
}
