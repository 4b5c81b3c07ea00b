// Package persistence provides ScheduleRepository implementations.
package persistence

import (
	"context"
	"sync"

	"github.com/felixgeelhaar/freebusy/internal/availability/domain"
	"github.com/google/uuid"
)

// MemoryScheduleRepository keeps schedules in process memory, keyed by
// resource. It backs the reference CLI and the tests; durable storage is the
// consuming service's concern.
type MemoryScheduleRepository struct {
	mu         sync.RWMutex
	byResource map[uuid.UUID]*domain.ResourceSchedule
}

// NewMemoryScheduleRepository creates an empty repository.
func NewMemoryScheduleRepository() *MemoryScheduleRepository {
	return &MemoryScheduleRepository{
		byResource: make(map[uuid.UUID]*domain.ResourceSchedule),
	}
}

// Save stores the schedule, replacing any schedule already held for the
// same resource.
func (r *MemoryScheduleRepository) Save(_ context.Context, schedule *domain.ResourceSchedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byResource[schedule.ResourceID()] = schedule
	return nil
}

// FindByResource returns the schedule for the resource, or
// domain.ErrScheduleNotFound.
func (r *MemoryScheduleRepository) FindByResource(_ context.Context, resourceID uuid.UUID) (*domain.ResourceSchedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	schedule, ok := r.byResource[resourceID]
	if !ok {
		return nil, domain.ErrScheduleNotFound
	}
	return schedule, nil
}

// Delete removes the resource's schedule. Deleting an absent schedule
// returns domain.ErrScheduleNotFound.
func (r *MemoryScheduleRepository) Delete(_ context.Context, resourceID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byResource[resourceID]; !ok {
		return domain.ErrScheduleNotFound
	}
	delete(r.byResource, resourceID)
	return nil
}
