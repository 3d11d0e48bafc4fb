package cqrs

import "github.com/LPF-24/growly-habit-service/internal/models"

// GetHabitQuery fetches a single habit by ID, subject to ownership check.
type GetHabitQuery struct {
	HabitID   int64
	Principal *models.Principal
}

// ListHabitsQuery fetches all habits belonging to one person.
type ListHabitsQuery struct {
	PersonID int64
}
