package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitflow/habitflow-api/internal/domain/entity"
	"github.com/habitflow/habitflow-api/internal/domain/repository"
)

func newHabitService(habits repository.HabitRepository) *HabitService {
	return NewHabitService(habits, nil, nil, 5*time.Minute)
}

// midday keeps same-day assertions stable regardless of when the test runs.
var midday = time.Date(2025, 5, 10, 12, 0, 0, 0, time.Local)

func TestCreateHabit(t *testing.T) {
	svc := newHabitService(newMemHabitRepo())

	h, err := svc.Create(context.Background(), "owner-1", "Morning run")
	require.NoError(t, err)
	assert.NotEmpty(t, h.ID)
	assert.Equal(t, "owner-1", h.UserID)
	assert.Equal(t, "Morning run", h.Name)
	assert.Empty(t, h.Completions)
}

func TestCreateHabitRequiresName(t *testing.T) {
	svc := newHabitService(newMemHabitRepo())

	_, err := svc.Create(context.Background(), "owner-1", "")
	assert.ErrorIs(t, err, ErrHabitNameRequired)

	_, err = svc.Create(context.Background(), "owner-1", "   ")
	assert.ErrorIs(t, err, ErrHabitNameRequired)
}

func TestListIsOwnerScopedAndNewestFirst(t *testing.T) {
	svc := newHabitService(newMemHabitRepo())
	ctx := context.Background()

	h1, err := svc.Create(ctx, "owner-a", "First")
	require.NoError(t, err)
	h2, err := svc.Create(ctx, "owner-a", "Second")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "owner-b", "Other")
	require.NoError(t, err)

	habits, err := svc.List(ctx, "owner-a")
	require.NoError(t, err)
	require.Len(t, habits, 2)
	assert.Equal(t, h2.ID, habits[0].ID)
	assert.Equal(t, h1.ID, habits[1].ID)
}

func TestCompleteAppendsInstant(t *testing.T) {
	svc := newHabitService(newMemHabitRepo())
	ctx := context.Background()

	h, err := svc.Create(ctx, "owner-1", "Stretch")
	require.NoError(t, err)

	now := midday
	updated, err := svc.Complete(ctx, h.ID, "owner-1", now)
	require.NoError(t, err)
	require.Len(t, updated.Completions, 1)
	// the full instant is stored, not the truncated day
	assert.True(t, updated.Completions[0].Equal(now))
}

func TestCompleteTwiceSameDayConflicts(t *testing.T) {
	repo := newMemHabitRepo()
	svc := newHabitService(repo)
	ctx := context.Background()

	h, err := svc.Create(ctx, "owner-1", "Stretch")
	require.NoError(t, err)

	now := midday
	_, err = svc.Complete(ctx, h.ID, "owner-1", now)
	require.NoError(t, err)

	_, err = svc.Complete(ctx, h.ID, "owner-1", now.Add(time.Minute))
	assert.ErrorIs(t, err, ErrAlreadyCompletedToday)

	stored, err := repo.GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Completions, 1)
}

func TestCompleteNextDaySucceeds(t *testing.T) {
	svc := newHabitService(newMemHabitRepo())
	ctx := context.Background()

	h, err := svc.Create(ctx, "owner-1", "Stretch")
	require.NoError(t, err)

	now := midday
	_, err = svc.Complete(ctx, h.ID, "owner-1", now)
	require.NoError(t, err)

	updated, err := svc.Complete(ctx, h.ID, "owner-1", now.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Len(t, updated.Completions, 2)
}

func TestCompleteUnknownHabit(t *testing.T) {
	svc := newHabitService(newMemHabitRepo())

	_, err := svc.Complete(context.Background(), "missing", "owner-1", time.Now())
	assert.ErrorIs(t, err, ErrHabitNotFound)
}

func TestCompleteByNonOwnerForbidden(t *testing.T) {
	repo := newMemHabitRepo()
	svc := newHabitService(repo)
	ctx := context.Background()

	h, err := svc.Create(ctx, "owner-1", "Stretch")
	require.NoError(t, err)

	_, err = svc.Complete(ctx, h.ID, "intruder", time.Now())
	assert.ErrorIs(t, err, ErrNotHabitOwner)

	stored, err := repo.GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Completions)
}

// staleHabitRepo simulates the race where a concurrent request completed the
// habit between this request's read and its append: the read misses the
// completion but the storage-level uniqueness still rejects the insert.
type staleHabitRepo struct {
	*memHabitRepo
}

func (r *staleHabitRepo) GetByID(ctx context.Context, id string) (*entity.Habit, error) {
	h, err := r.memHabitRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	h.Completions = nil
	return h, nil
}

func TestCompleteRaceLosesToUniqueConstraint(t *testing.T) {
	mem := newMemHabitRepo()
	svc := newHabitService(&staleHabitRepo{mem})
	ctx := context.Background()

	h, err := svc.Create(ctx, "owner-1", "Stretch")
	require.NoError(t, err)

	now := midday
	require.NoError(t, mem.AddCompletion(ctx, h.ID, now, entity.DayKey(now)))

	_, err = svc.Complete(ctx, h.ID, "owner-1", now.Add(time.Minute))
	assert.ErrorIs(t, err, ErrAlreadyCompletedToday)

	stored, err := mem.GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Completions, 1)
}
