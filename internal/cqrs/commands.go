package cqrs

import "github.com/LPF-24/growly-habit-service/internal/models"

type CreateHabitCommand struct {
	PersonID    int64
	Name        string
	Description string
	Active      bool
}

// UpdateHabitCommand carries a partial update. Nil fields are left untouched.
// PersonID counts as "something to update" for request validation but is
// never applied: the owner of a habit is fixed at creation.
type UpdateHabitCommand struct {
	HabitID     int64
	Principal   *models.Principal
	Name        *string
	Description *string
	Active      *bool
	PersonID    *int64
}

type DeleteHabitCommand struct {
	HabitID   int64
	Principal *models.Principal
}
