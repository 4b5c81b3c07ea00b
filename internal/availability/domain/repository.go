package domain

import (
	"context"

	"github.com/google/uuid"
)

// ScheduleRepository is the persistence port for resource schedules. Durable
// implementations belong to the consuming service; this module ships an
// in-memory one for tests and the reference CLI.
type ScheduleRepository interface {
	Save(ctx context.Context, schedule *ResourceSchedule) error
	FindByResource(ctx context.Context, resourceID uuid.UUID) (*ResourceSchedule, error)
	Delete(ctx context.Context, resourceID uuid.UUID) error
}
