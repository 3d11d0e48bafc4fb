package events

import "fmt"

// Stream names shared with the rest of the system.
const (
	// HabitEventsStream carries one free-text message per habit lifecycle
	// transition, e.g. "Habit deleted: 5".
	HabitEventsStream = "habit-events"

	// UserDeletedStream carries account-deletion notifications produced by
	// the identity service.
	UserDeletedStream = "user-deleted"

	// ConsumerGroup is this service's dedicated group on UserDeletedStream.
	ConsumerGroup = "habit-group"
)

// LifecycleKind is a habit lifecycle transition.
type LifecycleKind string

const (
	HabitCreated LifecycleKind = "created"
	HabitUpdated LifecycleKind = "updated"
	HabitDeleted LifecycleKind = "deleted"
)

// LifecycleMessage renders the wire form of a lifecycle notification.
func LifecycleMessage(kind LifecycleKind, habitID int64) string {
	return fmt.Sprintf("Habit %s: %d", kind, habitID)
}

// UserDeletedEvent is the payload consumed from UserDeletedStream.
type UserDeletedEvent struct {
	PersonID int64 `json:"personId"`
}
