package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/habitflow/habitflow-api/internal/domain/entity"
	"github.com/habitflow/habitflow-api/internal/domain/repository"
)

// pgUniqueViolation is the SQLSTATE for unique constraint violations.
const pgUniqueViolation = "23505"

type HabitRepository struct {
	pool *pgxpool.Pool
}

func NewHabitRepository(pool *pgxpool.Pool) *HabitRepository {
	return &HabitRepository{pool: pool}
}

func (r *HabitRepository) Create(ctx context.Context, h *entity.Habit) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO habits (user_id, name)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, h.UserID, h.Name)

	return row.Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
}

func (r *HabitRepository) GetByID(ctx context.Context, id string) (*entity.Habit, error) {
	h := &entity.Habit{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name, created_at, updated_at
		FROM habits
		WHERE id = $1
	`, id)

	if err := row.Scan(&h.ID, &h.UserID, &h.Name, &h.CreatedAt, &h.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	completions, err := r.completionsFor(ctx, []string{h.ID})
	if err != nil {
		return nil, err
	}
	h.Completions = completions[h.ID]

	return h, nil
}

func (r *HabitRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Habit, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, name, created_at, updated_at
		FROM habits
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	habits := make([]*entity.Habit, 0)
	ids := make([]string, 0)
	for rows.Next() {
		h := &entity.Habit{}
		if err := rows.Scan(&h.ID, &h.UserID, &h.Name, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		habits = append(habits, h)
		ids = append(ids, h.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(habits) == 0 {
		return habits, nil
	}

	completions, err := r.completionsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, h := range habits {
		h.Completions = completions[h.ID]
	}

	return habits, nil
}

func (r *HabitRepository) AddCompletion(ctx context.Context, habitID string, at time.Time, day string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO habit_completions (habit_id, completed_at, completed_on)
		VALUES ($1, $2, $3)
	`, habitID, at, day)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return repository.ErrDuplicateCompletion
		}
		return err
	}
	return nil
}

// completionsFor loads completion instants for the given habit ids, ordered
// by completion time, grouped per habit.
func (r *HabitRepository) completionsFor(ctx context.Context, habitIDs []string) (map[string][]time.Time, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT habit_id, completed_at
		FROM habit_completions
		WHERE habit_id = ANY($1)
		ORDER BY completed_at
	`, habitIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]time.Time, len(habitIDs))
	for rows.Next() {
		var habitID string
		var at time.Time
		if err := rows.Scan(&habitID, &at); err != nil {
			return nil, err
		}
		out[habitID] = append(out[habitID], at)
	}
	return out, rows.Err()
}

var _ repository.HabitRepository = (*HabitRepository)(nil)
