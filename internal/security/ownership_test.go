package security

import (
	"fmt"
	"testing"

	"github.com/LPF-24/growly-habit-service/internal/models"
)

type fakeOwnerLookup struct {
	owners map[int64]int64
	err    error
}

func (f *fakeOwnerLookup) GetOwnerID(habitID int64) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	ownerID, ok := f.owners[habitID]
	if !ok {
		return 0, fmt.Errorf("habit not found")
	}
	return ownerID, nil
}

func TestIsOwner(t *testing.T) {
	lookup := &fakeOwnerLookup{owners: map[int64]int64{10: 1, 11: 2}}
	guard := NewOwnershipGuard(lookup)
	owner := &models.Principal{ID: 1, Username: "kate", Role: "ROLE_USER"}

	tests := []struct {
		name      string
		principal *models.Principal
		habitID   int64
		want      bool
	}{
		{"owner matches", owner, 10, true},
		{"different owner", owner, 11, false},
		{"habit does not exist", owner, 99, false},
		{"no principal", nil, 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := guard.IsOwner(tt.principal, tt.habitID); got != tt.want {
				t.Errorf("[%s] IsOwner = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestIsOwnerLookupFailure(t *testing.T) {
	guard := NewOwnershipGuard(&fakeOwnerLookup{err: fmt.Errorf("db down")})
	principal := &models.Principal{ID: 1}
	if guard.IsOwner(principal, 10) {
		t.Error("expected not-owner when the lookup fails")
	}
}
