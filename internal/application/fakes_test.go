package application

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/habitflow-api/internal/domain/entity"
	"github.com/habitflow/habitflow-api/internal/domain/repository"
)

// In-memory repositories for exercising the services without a database.
// Reads return copies, like a real storage round-trip would.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User // keyed by id
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func copyUser(u *entity.User) *entity.User {
	cp := *u
	if u.VerificationCode != nil {
		code := *u.VerificationCode
		cp.VerificationCode = &code
	}
	if u.VerificationCodeExpiresAt != nil {
		exp := *u.VerificationCodeExpiresAt
		cp.VerificationCodeExpiresAt = &exp
	}
	return &cp
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.users[u.ID] = copyUser(u)
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return copyUser(u), nil
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	u.UpdatedAt = time.Now()
	r.users[u.ID] = copyUser(u)
	return nil
}

func (r *memUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

type memHabitRepo struct {
	mu     sync.Mutex
	order  []string // insertion order of habit ids
	habits map[string]*entity.Habit
}

func newMemHabitRepo() *memHabitRepo {
	return &memHabitRepo{habits: make(map[string]*entity.Habit)}
}

func copyHabit(h *entity.Habit) *entity.Habit {
	cp := *h
	cp.Completions = append([]time.Time(nil), h.Completions...)
	return &cp
}

func (r *memHabitRepo) Create(_ context.Context, h *entity.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	h.ID = uuid.NewString()
	h.CreatedAt = time.Now()
	h.UpdatedAt = h.CreatedAt
	r.habits[h.ID] = copyHabit(h)
	r.order = append(r.order, h.ID)
	return nil
}

func (r *memHabitRepo) GetByID(_ context.Context, id string) (*entity.Habit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if h, ok := r.habits[id]; ok {
		return copyHabit(h), nil
	}
	return nil, repository.ErrNotFound
}

// ListByOwner returns the owner's habits newest-created first, mirroring the
// ORDER BY created_at DESC of the postgres repository.
func (r *memHabitRepo) ListByOwner(_ context.Context, ownerID string) ([]*entity.Habit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Habit, 0)
	for i := len(r.order) - 1; i >= 0; i-- {
		h := r.habits[r.order[i]]
		if h.UserID == ownerID {
			out = append(out, copyHabit(h))
		}
	}
	return out, nil
}

func (r *memHabitRepo) AddCompletion(_ context.Context, habitID string, at time.Time, day string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.habits[habitID]
	if !ok {
		return repository.ErrNotFound
	}
	for _, c := range h.Completions {
		if entity.DayKey(c) == day {
			return repository.ErrDuplicateCompletion
		}
	}
	h.Completions = append(h.Completions, at)
	return nil
}

var (
	_ repository.UserRepository  = (*memUserRepo)(nil)
	_ repository.HabitRepository = (*memHabitRepo)(nil)
)
