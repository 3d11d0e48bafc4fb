package security

import "github.com/LPF-24/growly-habit-service/internal/models"

// OwnerLookup resolves the owner of a habit. Satisfied by the write repository.
type OwnerLookup interface {
	GetOwnerID(habitID int64) (int64, error)
}

// OwnershipGuard decides whether a principal may act on a habit.
type OwnershipGuard struct {
	habits OwnerLookup
}

func NewOwnershipGuard(habits OwnerLookup) *OwnershipGuard {
	return &OwnershipGuard{habits: habits}
}

// IsOwner reports whether principal owns the habit with the given ID.
// An absent principal, a missing habit and a failed lookup all evaluate to
// not-owner; the guard never errors, callers turn false into a 403.
func (g *OwnershipGuard) IsOwner(principal *models.Principal, habitID int64) bool {
	if principal == nil {
		return false
	}
	ownerID, err := g.habits.GetOwnerID(habitID)
	if err != nil {
		return false
	}
	return ownerID == principal.ID
}
