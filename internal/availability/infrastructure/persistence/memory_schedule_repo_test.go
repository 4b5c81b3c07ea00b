package persistence

import (
	"context"
	"sync"
	"testing"

	"github.com/felixgeelhaar/freebusy/internal/availability/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryScheduleRepository_SaveAndFind(t *testing.T) {
	repo := NewMemoryScheduleRepository()
	ctx := context.Background()

	resourceID := uuid.New()
	schedule := domain.NewResourceSchedule(resourceID)
	require.NoError(t, repo.Save(ctx, schedule))

	found, err := repo.FindByResource(ctx, resourceID)
	require.NoError(t, err)
	assert.Same(t, schedule, found)
}

func TestMemoryScheduleRepository_SaveReplacesSameResource(t *testing.T) {
	repo := NewMemoryScheduleRepository()
	ctx := context.Background()

	resourceID := uuid.New()
	first := domain.NewResourceSchedule(resourceID)
	second := domain.NewResourceSchedule(resourceID)
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	found, err := repo.FindByResource(ctx, resourceID)
	require.NoError(t, err)
	assert.Same(t, second, found)
}

func TestMemoryScheduleRepository_FindMissing(t *testing.T) {
	repo := NewMemoryScheduleRepository()

	_, err := repo.FindByResource(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrScheduleNotFound)
}

func TestMemoryScheduleRepository_Delete(t *testing.T) {
	repo := NewMemoryScheduleRepository()
	ctx := context.Background()

	resourceID := uuid.New()
	require.NoError(t, repo.Save(ctx, domain.NewResourceSchedule(resourceID)))

	require.NoError(t, repo.Delete(ctx, resourceID))

	_, err := repo.FindByResource(ctx, resourceID)
	assert.ErrorIs(t, err, domain.ErrScheduleNotFound)

	err = repo.Delete(ctx, resourceID)
	assert.ErrorIs(t, err, domain.ErrScheduleNotFound)
}

func TestMemoryScheduleRepository_ConcurrentAccess(t *testing.T) {
	repo := NewMemoryScheduleRepository()
	ctx := context.Background()

	resourceID := uuid.New()
	require.NoError(t, repo.Save(ctx, domain.NewResourceSchedule(resourceID)))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = repo.Save(ctx, domain.NewResourceSchedule(uuid.New()))
		}()
		go func() {
			defer wg.Done()
			_, _ = repo.FindByResource(ctx, resourceID)
		}()
	}
	wg.Wait()

	_, err := repo.FindByResource(ctx, resourceID)
	assert.NoError(t, err)
}
