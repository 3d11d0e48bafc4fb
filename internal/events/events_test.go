package events

import (
	"encoding/json"
	"testing"
)

func TestLifecycleMessage(t *testing.T) {
	tests := []struct {
		kind    LifecycleKind
		habitID int64
		want    string
	}{
		{HabitCreated, 1, "Habit created: 1"},
		{HabitUpdated, 42, "Habit updated: 42"},
		{HabitDeleted, 5, "Habit deleted: 5"},
	}
	for _, tt := range tests {
		if got := LifecycleMessage(tt.kind, tt.habitID); got != tt.want {
			t.Errorf("LifecycleMessage(%s, %d) = %q, want %q", tt.kind, tt.habitID, got, tt.want)
		}
	}
}

func TestUserDeletedEventDecode(t *testing.T) {
	var event UserDeletedEvent
	if err := json.Unmarshal([]byte(`{"personId":7}`), &event); err != nil {
		t.Fatalf("failed to decode event: %v", err)
	}
	if event.PersonID != 7 {
		t.Errorf("expected personId 7, got %d", event.PersonID)
	}
}
