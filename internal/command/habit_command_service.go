package command

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/LPF-24/growly-habit-service/internal/cqrs"
	"github.com/LPF-24/growly-habit-service/internal/events"
	"github.com/LPF-24/growly-habit-service/internal/httperr"
	"github.com/LPF-24/growly-habit-service/internal/models"
	"github.com/LPF-24/growly-habit-service/internal/security"
)

// HabitWriteStore is the write-side persistence used by HabitCommandService.
type HabitWriteStore interface {
	Create(habit *models.Habit) error
	GetByID(id int64) (*models.Habit, error)
	Update(habit *models.Habit) error
	Delete(id int64) error
	ListByPersonID(personID int64) ([]models.Habit, error)
	DeleteAllByPersonID(personID int64) (int64, error)
}

// HabitViewStore maintains the cached read model alongside writes.
type HabitViewStore interface {
	CacheHabitView(ctx context.Context, view *models.HabitView)
	InvalidateHabitView(ctx context.Context, id int64)
}

// LifecyclePublisher emits best-effort lifecycle notifications.
type LifecyclePublisher interface {
	Publish(kind events.LifecycleKind, habitID int64)
}

// HabitCommandService writes habit state, keeps the read model in sync and
// publishes lifecycle events after each committed mutation.
type HabitCommandService struct {
	writeRepo HabitWriteStore
	readRepo  HabitViewStore
	publisher LifecyclePublisher
	guard     *security.OwnershipGuard
}

func NewHabitCommandService(
	writeRepo HabitWriteStore,
	readRepo HabitViewStore,
	publisher LifecyclePublisher,
	guard *security.OwnershipGuard,
) *HabitCommandService {
	return &HabitCommandService{
		writeRepo: writeRepo,
		readRepo:  readRepo,
		publisher: publisher,
		guard:     guard,
	}
}

// CreateHabit stores a new habit owned by the requesting principal.
func (s *HabitCommandService) CreateHabit(cmd cqrs.CreateHabitCommand) (*models.HabitView, error) {
	habit := &models.Habit{
		Name:        cmd.Name,
		Description: cmd.Description,
		CreatedAt:   models.Today(),
		Active:      cmd.Active,
		PersonID:    cmd.PersonID,
	}
	if err := s.writeRepo.Create(habit); err != nil {
		return nil, err
	}

	view := habitToView(habit)
	s.readRepo.CacheHabitView(context.Background(), view)
	s.publisher.Publish(events.HabitCreated, habit.ID)
	return view, nil
}

// UpdateHabit applies a partial update after the ownership check. A request
// with every field absent is rejected. A supplied personId satisfies the
// something-to-update rule but is never written: the owner is fixed at
// creation.
func (s *HabitCommandService) UpdateHabit(cmd cqrs.UpdateHabitCommand) (*models.HabitView, error) {
	if !s.guard.IsOwner(cmd.Principal, cmd.HabitID) {
		return nil, httperr.ErrForbidden
	}

	habit, err := s.writeRepo.GetByID(cmd.HabitID)
	if err != nil {
		return nil, err
	}

	if cmd.Name == nil && cmd.Description == nil && cmd.Active == nil && cmd.PersonID == nil {
		return nil, httperr.ErrNothingToUpdate
	}

	if cmd.Name != nil {
		habit.Name = *cmd.Name
	}
	if cmd.Description != nil {
		habit.Description = *cmd.Description
	}
	if cmd.Active != nil {
		habit.Active = *cmd.Active
	}

	if err := s.writeRepo.Update(habit); err != nil {
		return nil, err
	}

	view := habitToView(habit)
	s.readRepo.CacheHabitView(context.Background(), view)
	s.publisher.Publish(events.HabitUpdated, habit.ID)
	return view, nil
}

// DeleteHabit removes a single habit after the ownership check.
func (s *HabitCommandService) DeleteHabit(cmd cqrs.DeleteHabitCommand) error {
	if !s.guard.IsOwner(cmd.Principal, cmd.HabitID) {
		return httperr.ErrForbidden
	}

	if err := s.writeRepo.Delete(cmd.HabitID); err != nil {
		return err
	}

	s.readRepo.InvalidateHabitView(context.Background(), cmd.HabitID)
	s.publisher.Publish(events.HabitDeleted, cmd.HabitID)
	return nil
}

// HandleUserDeleted consumes an account-deletion notification and removes
// every habit the deleted account owned. Idempotent by construction: a
// redelivered event matches zero rows and changes nothing, so the handler
// never errors on duplicates.
func (s *HabitCommandService) HandleUserDeleted(ctx context.Context, payload []byte) error {
	var event events.UserDeletedEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("failed to unmarshal user-deleted event: %w", err)
	}

	log.Printf("Received user-deleted event for person %d", event.PersonID)

	// List first so stale cached views can be dropped after the bulk delete.
	habits, err := s.writeRepo.ListByPersonID(event.PersonID)
	if err != nil {
		return fmt.Errorf("failed to list habits for person %d: %w", event.PersonID, err)
	}

	deleted, err := s.writeRepo.DeleteAllByPersonID(event.PersonID)
	if err != nil {
		return err
	}

	for _, habit := range habits {
		s.readRepo.InvalidateHabitView(ctx, habit.ID)
	}

	log.Printf("Cascade deletion for person %d: removed %d habits", event.PersonID, deleted)
	return nil
}

func habitToView(h *models.Habit) *models.HabitView {
	return &models.HabitView{
		ID:          h.ID,
		Name:        h.Name,
		Description: h.Description,
		CreatedAt:   h.CreatedAt,
		Active:      h.Active,
		PersonID:    h.PersonID,
	}
}
