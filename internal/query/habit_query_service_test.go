package query

import (
	"context"
	"errors"
	"testing"

	"github.com/LPF-24/growly-habit-service/internal/cqrs"
	"github.com/LPF-24/growly-habit-service/internal/httperr"
	"github.com/LPF-24/growly-habit-service/internal/models"
	"github.com/LPF-24/growly-habit-service/internal/security"
)

type fakeReadStore struct {
	views map[int64]*models.HabitView
}

func (f *fakeReadStore) GetByID(_ context.Context, id int64) (*models.HabitView, error) {
	view, ok := f.views[id]
	if !ok {
		return nil, &httperr.NotFoundError{HabitID: id}
	}
	return view, nil
}

func (f *fakeReadStore) ListByPersonID(_ context.Context, personID int64) ([]models.HabitView, error) {
	views := []models.HabitView{}
	for _, view := range f.views {
		if view.PersonID == personID {
			views = append(views, *view)
		}
	}
	return views, nil
}

// fakeReadStore doubles as the owner lookup backing the guard.
func (f *fakeReadStore) GetOwnerID(habitID int64) (int64, error) {
	view, ok := f.views[habitID]
	if !ok {
		return 0, &httperr.NotFoundError{HabitID: habitID}
	}
	return view.PersonID, nil
}

func newTestQueryService() (*HabitQueryService, *fakeReadStore) {
	store := &fakeReadStore{views: map[int64]*models.HabitView{
		5: {ID: 5, Name: "Drink water", PersonID: 1, Active: true},
		6: {ID: 6, Name: "Run", PersonID: 2, Active: true},
	}}
	return NewHabitQueryService(store, security.NewOwnershipGuard(store)), store
}

func TestGetHabit(t *testing.T) {
	owner := &models.Principal{ID: 1, Username: "kate", Role: "ROLE_USER"}

	tests := []struct {
		name      string
		principal *models.Principal
		habitID   int64
		wantErr   error
	}{
		{"success - own habit", owner, 5, nil},
		{"forbidden - someone else's habit", owner, 6, httperr.ErrForbidden},
		{"forbidden - nonexistent habit fails closed", owner, 99, httperr.ErrForbidden},
		{"forbidden - no principal", nil, 5, httperr.ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestQueryService()
			view, err := svc.GetHabit(cqrs.GetHabitQuery{HabitID: tt.habitID, Principal: tt.principal})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("[%s] expected %v, got %v", tt.name, tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("[%s] GetHabit failed: %v", tt.name, err)
			}
			if view.ID != tt.habitID {
				t.Errorf("[%s] expected habit %d, got %d", tt.name, tt.habitID, view.ID)
			}
		})
	}
}

func TestListHabitsScopedToPerson(t *testing.T) {
	svc, _ := newTestQueryService()

	views, err := svc.ListHabits(cqrs.ListHabitsQuery{PersonID: 1})
	if err != nil {
		t.Fatalf("ListHabits failed: %v", err)
	}
	if len(views) != 1 || views[0].PersonID != 1 {
		t.Errorf("expected only person 1's habits, got %+v", views)
	}

	empty, err := svc.ListHabits(cqrs.ListHabitsQuery{PersonID: 7})
	if err != nil {
		t.Fatalf("ListHabits failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected an empty collection for person 7, got %+v", empty)
	}
}
