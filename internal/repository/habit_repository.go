package repository

import (
	"database/sql"
	"fmt"

	"github.com/LPF-24/growly-habit-service/internal/httperr"
	"github.com/LPF-24/growly-habit-service/internal/models"
)

// HabitRepository handles all state-mutating operations for habits against
// the PostgreSQL write store (source of truth).
type HabitRepository struct {
	db *sql.DB
}

func NewHabitRepository(db *sql.DB) *HabitRepository {
	return &HabitRepository{db: db}
}

func (r *HabitRepository) Create(habit *models.Habit) error {
	query := `
		INSERT INTO habits (name, description, created_at, active, person_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(query,
		habit.Name, habit.Description, habit.CreatedAt, habit.Active, habit.PersonID,
	).Scan(&habit.ID)
	if err != nil {
		return fmt.Errorf("failed to create habit: %w", err)
	}
	return nil
}

func (r *HabitRepository) GetByID(id int64) (*models.Habit, error) {
	query := `
		SELECT id, name, description, created_at, active, person_id
		FROM habits
		WHERE id = $1
	`
	var habit models.Habit
	err := r.db.QueryRow(query, id).Scan(
		&habit.ID, &habit.Name, &habit.Description,
		&habit.CreatedAt, &habit.Active, &habit.PersonID,
	)
	if err == sql.ErrNoRows {
		return nil, &httperr.NotFoundError{HabitID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get habit: %w", err)
	}
	return &habit, nil
}

// GetOwnerID fetches only the owner column; the ownership guard runs on
// every id-scoped request, so it should not drag the full row along.
func (r *HabitRepository) GetOwnerID(id int64) (int64, error) {
	var ownerID int64
	err := r.db.QueryRow(`SELECT person_id FROM habits WHERE id = $1`, id).Scan(&ownerID)
	if err == sql.ErrNoRows {
		return 0, &httperr.NotFoundError{HabitID: id}
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get habit owner: %w", err)
	}
	return ownerID, nil
}

// Update writes the mutable columns. person_id is deliberately absent from
// the statement: the owner of a habit never changes.
func (r *HabitRepository) Update(habit *models.Habit) error {
	query := `
		UPDATE habits
		SET name = $2, description = $3, active = $4
		WHERE id = $1
	`
	result, err := r.db.Exec(query, habit.ID, habit.Name, habit.Description, habit.Active)
	if err != nil {
		return fmt.Errorf("failed to update habit: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return &httperr.NotFoundError{HabitID: habit.ID}
	}
	return nil
}

func (r *HabitRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM habits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return &httperr.NotFoundError{HabitID: id}
	}
	return nil
}

func (r *HabitRepository) ListByPersonID(personID int64) ([]models.Habit, error) {
	query := `
		SELECT id, name, description, created_at, active, person_id
		FROM habits
		WHERE person_id = $1
		ORDER BY id
	`
	rows, err := r.db.Query(query, personID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}
	defer rows.Close()

	habits := []models.Habit{}
	for rows.Next() {
		var habit models.Habit
		if err := rows.Scan(
			&habit.ID, &habit.Name, &habit.Description,
			&habit.CreatedAt, &habit.Active, &habit.PersonID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		habits = append(habits, habit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate habits: %w", err)
	}
	return habits, nil
}

// DeleteAllByPersonID removes every habit owned by personID and reports how
// many rows went away. Zero matches is a normal outcome, not an error, which
// makes redelivered account-deletion events harmless.
func (r *HabitRepository) DeleteAllByPersonID(personID int64) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM habits WHERE person_id = $1`, personID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete habits for person %d: %w", personID, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}
	return rows, nil
}
