package repository

import (
	"context"
	"errors"
	"time"

	"github.com/habitflow/habitflow-api/internal/domain/entity"
)

// ErrDuplicateCompletion is returned by AddCompletion when the habit already
// has a completion stored for the given day.
var ErrDuplicateCompletion = errors.New("completion already recorded for day")

// HabitRepository defines persistence for habits and their completions.
type HabitRepository interface {
	Create(ctx context.Context, h *entity.Habit) error
	GetByID(ctx context.Context, id string) (*entity.Habit, error)
	// ListByOwner returns the owner's habits ordered by creation time
	// descending with id as tiebreaker, completions included.
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Habit, error)
	// AddCompletion appends the full instant at and its day key. The storage
	// layer enforces at most one completion per (habit, day).
	AddCompletion(ctx context.Context, habitID string, at time.Time, day string) error
}
