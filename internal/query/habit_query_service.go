package query

import (
	"context"

	"github.com/LPF-24/growly-habit-service/internal/cqrs"
	"github.com/LPF-24/growly-habit-service/internal/httperr"
	"github.com/LPF-24/growly-habit-service/internal/models"
	"github.com/LPF-24/growly-habit-service/internal/security"
)

// HabitReadStore is the read-side persistence used by HabitQueryService.
type HabitReadStore interface {
	GetByID(ctx context.Context, id int64) (*models.HabitView, error)
	ListByPersonID(ctx context.Context, personID int64) ([]models.HabitView, error)
}

type HabitQueryService struct {
	readRepo HabitReadStore
	guard    *security.OwnershipGuard
}

func NewHabitQueryService(readRepo HabitReadStore, guard *security.OwnershipGuard) *HabitQueryService {
	return &HabitQueryService{readRepo: readRepo, guard: guard}
}

// GetHabit fetches a single habit view and enforces ownership.
func (s *HabitQueryService) GetHabit(q cqrs.GetHabitQuery) (*models.HabitView, error) {
	if !s.guard.IsOwner(q.Principal, q.HabitID) {
		return nil, httperr.ErrForbidden
	}
	return s.readRepo.GetByID(context.Background(), q.HabitID)
}

// ListHabits returns every habit owned by the person. No ownership guard is
// needed: the result set is scoped to the principal's own id by construction.
func (s *HabitQueryService) ListHabits(q cqrs.ListHabitsQuery) ([]models.HabitView, error) {
	return s.readRepo.ListByPersonID(context.Background(), q.PersonID)
}
