package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/habitflow/habitflow-api/internal/domain/entity"
	"github.com/habitflow/habitflow-api/internal/domain/repository"
	"github.com/habitflow/habitflow-api/pkg/helpers"
)

var (
	ErrHabitNameRequired     = errors.New("habit name is required")
	ErrHabitNotFound         = errors.New("habit not found")
	ErrNotHabitOwner         = errors.New("not the habit owner")
	ErrAlreadyCompletedToday = errors.New("habit already completed today")
)

// HabitService implements habit creation, per-owner listing, and idempotent
// per-day completion tracking.
type HabitService struct {
	Habits   repository.HabitRepository
	Redis    *redis.Client
	Logger   *logrus.Logger
	CacheTTL time.Duration
}

func NewHabitService(habits repository.HabitRepository, rdb *redis.Client, logger *logrus.Logger, cacheTTL time.Duration) *HabitService {
	return &HabitService{Habits: habits, Redis: rdb, Logger: logger, CacheTTL: cacheTTL}
}

func habitsKey(ownerID string) string {
	return "habits:user:" + ownerID
}

// Create starts a new habit for ownerID with an empty completion sequence.
func (s *HabitService) Create(ctx context.Context, ownerID, name string) (*entity.Habit, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrHabitNameRequired
	}
	h := &entity.Habit{UserID: ownerID, Name: name, Completions: []time.Time{}}
	if err := s.Habits.Create(ctx, h); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx, ownerID)
	return h, nil
}

// List returns the owner's habits, newest-created first.
func (s *HabitService) List(ctx context.Context, ownerID string) ([]*entity.Habit, error) {
	if s.Redis != nil {
		var cached []*entity.Habit
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, habitsKey(ownerID), &cached); err == nil && ok {
			return cached, nil
		}
	}

	habits, err := s.Habits.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, habitsKey(ownerID), habits, s.CacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", ownerID).Warn("habit cache write failed")
		}
	}
	return habits, nil
}

// Complete records the habit as done now, at most once per calendar day.
// Only the owner may complete a habit. The same-day check runs against the
// loaded completions first; the unique (habit, day) constraint in storage
// backstops the race between two concurrent requests, so a duplicate insert
// surfaces as the same conflict.
func (s *HabitService) Complete(ctx context.Context, habitID, requesterID string, now time.Time) (*entity.Habit, error) {
	h, err := s.Habits.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, err
	}
	if h.UserID != requesterID {
		return nil, ErrNotHabitOwner
	}

	day := entity.DayKey(now)
	if h.CompletedOn(day) {
		return nil, ErrAlreadyCompletedToday
	}

	if err := s.Habits.AddCompletion(ctx, habitID, now, day); err != nil {
		if errors.Is(err, repository.ErrDuplicateCompletion) {
			return nil, ErrAlreadyCompletedToday
		}
		return nil, err
	}
	s.invalidateCache(ctx, h.UserID)

	h.Completions = append(h.Completions, now)
	return h, nil
}

func (s *HabitService) invalidateCache(ctx context.Context, ownerID string) {
	if s.Redis == nil {
		return
	}
	if err := helpers.RedisDel(ctx, s.Redis, habitsKey(ownerID)); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", ownerID).Warn("habit cache invalidation failed")
	}
}
