package models

// Principal is the authenticated identity derived from a request's token.
// It lives only for the duration of one request and is never persisted.
type Principal struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Habit is the write model, one row in the habits table.
// PersonID is assigned from the principal at creation and never changes;
// no update path writes it.
type Habit struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   Date   `json:"createdAt"`
	Active      bool   `json:"active"`
	PersonID    int64  `json:"personId"`
}

// HabitView is the read model projection served to clients and cached in Redis.
type HabitView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   Date   `json:"createdAt"`
	Active      bool   `json:"active"`
	PersonID    int64  `json:"personId"`
}
