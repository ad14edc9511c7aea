package auth

import "time"

// User is a back-office account. Only admins operate the ledgers; the
// "is_admin" flag exists so read-only accounts can be added later.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	DisplayName  string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Actor identifies who performed a ledger mutation, stamped into audit
// fields. Services take it as an explicit parameter; nothing reads it from
// ambient state.
type Actor struct {
	ID          string
	DisplayName string
}

// SystemActor is the fallback identity used when a request carries no
// usable session claims.
func SystemActor() Actor {
	return Actor{ID: "system", DisplayName: "Admin"}
}
