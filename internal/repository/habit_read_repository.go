package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	goredis "github.com/redis/go-redis/v9"

	"github.com/LPF-24/growly-habit-service/internal/httperr"
	"github.com/LPF-24/growly-habit-service/internal/models"
	redisx "github.com/LPF-24/growly-habit-service/internal/redis"
)

const habitViewKeyPrefix = "habit:view:"

// HabitReadRepository handles all read operations for habits. Redis holds
// id-keyed view projections; PostgreSQL is the transparent fallback, warming
// the cache on every cold read.
type HabitReadRepository struct {
	db    *sql.DB
	cache *redisx.ViewCache[models.HabitView]
}

func NewHabitReadRepository(db *sql.DB, redisClient *goredis.Client) *HabitReadRepository {
	return &HabitReadRepository{
		db:    db,
		cache: redisx.NewViewCache[models.HabitView](redisClient, 0),
	}
}

func habitViewKey(id int64) string {
	return habitViewKeyPrefix + strconv.FormatInt(id, 10)
}

// GetByID returns a HabitView, trying Redis first then PostgreSQL.
func (r *HabitReadRepository) GetByID(ctx context.Context, id int64) (*models.HabitView, error) {
	if view, ok := r.cache.Get(ctx, habitViewKey(id)); ok {
		return view, nil
	}

	query := `
		SELECT id, name, description, created_at, active, person_id
		FROM habits
		WHERE id = $1
	`
	var view models.HabitView
	err := r.db.QueryRow(query, id).Scan(
		&view.ID, &view.Name, &view.Description,
		&view.CreatedAt, &view.Active, &view.PersonID,
	)
	if err == sql.ErrNoRows {
		return nil, &httperr.NotFoundError{HabitID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get habit view: %w", err)
	}

	r.cache.Set(ctx, habitViewKey(id), &view)
	return &view, nil
}

// ListByPersonID reads straight from PostgreSQL; owner-scoped listings are
// not cached, only individual views are.
func (r *HabitReadRepository) ListByPersonID(ctx context.Context, personID int64) ([]models.HabitView, error) {
	query := `
		SELECT id, name, description, created_at, active, person_id
		FROM habits
		WHERE person_id = $1
		ORDER BY id
	`
	rows, err := r.db.Query(query, personID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habit views: %w", err)
	}
	defer rows.Close()

	views := []models.HabitView{}
	for rows.Next() {
		var view models.HabitView
		if err := rows.Scan(
			&view.ID, &view.Name, &view.Description,
			&view.CreatedAt, &view.Active, &view.PersonID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan habit view: %w", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate habit views: %w", err)
	}
	return views, nil
}

// CacheHabitView writes a projection after a successful mutation.
func (r *HabitReadRepository) CacheHabitView(ctx context.Context, view *models.HabitView) {
	r.cache.Set(ctx, habitViewKey(view.ID), view)
}

// InvalidateHabitView drops a projection after a delete.
func (r *HabitReadRepository) InvalidateHabitView(ctx context.Context, id int64) {
	r.cache.Delete(ctx, habitViewKey(id))
}
