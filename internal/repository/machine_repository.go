package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hitenSisghSoft/soundbox/internal/model"
)

// MachineRepository defines soundbox machine persistence operations.
type MachineRepository interface {
	Create(ctx context.Context, machine *model.Machine) error
	Update(ctx context.Context, machine *model.Machine) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Machine, error)
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]model.Machine, error)
	List(ctx context.Context) ([]model.Machine, error)
}

type machineRepository struct {
	db *gorm.DB
}

// NewMachineRepository creates a new machine repository.
func NewMachineRepository(db *gorm.DB) MachineRepository {
	return &machineRepository{db: db}
}

// Create creates a new machine.
func (r *machineRepository) Create(ctx context.Context, machine *model.Machine) error {
	return r.db.WithContext(ctx).Create(machine).Error
}

// Update updates an existing machine.
func (r *machineRepository) Update(ctx context.Context, machine *model.Machine) error {
	return r.db.WithContext(ctx).Save(machine).Error
}

// Delete soft-deletes a machine by ID.
func (r *machineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Machine{}, "id = ?", id).Error
}

// FindByID finds a machine by ID.
func (r *machineRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Machine, error) {
	var machine model.Machine
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&machine).Error; err != nil {
		return nil, err
	}
	return &machine, nil
}

// ListByStore returns machines assigned to a store.
func (r *machineRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]model.Machine, error) {
	var machines []model.Machine
	if err := r.db.WithContext(ctx).Where("assigned_store_id = ?", storeID).Order("created_at").Find(&machines).Error; err != nil {
		return nil, err
	}
	return machines, nil
}

// List returns all machines ordered by creation time.
func (r *machineRepository) List(ctx context.Context) ([]model.Machine, error) {
	var machines []model.Machine
	if err := r.db.WithContext(ctx).Order("created_at").Find(&machines).Error; err != nil {
		return nil, err
	}
	return machines, nil
}
