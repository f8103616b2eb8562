package domain

import (
	"time"
)

// User represents a registered account.
// The password hash is never serialized.
type User struct {
	ID             int64     `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	DateOfBirth    time.Time `json:"dateOfBirth"`
	Country        string    `json:"country"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Validate checks the invariants a user must satisfy before it is stored.
// Field-level payload rules live in the request schemas; this only guards
// against persisting a user without credentials.
func (u *User) Validate() error {
	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}
	return nil
}

// UserPatch carries the fields of a partial profile update.
// Nil means "leave unchanged". The password cannot be changed through a patch.
type UserPatch struct {
	FirstName   *string
	LastName    *string
	DateOfBirth *time.Time
	Country     *string
	Email       *string
}

// Apply merges the patch onto the user in place.
func (u *User) Apply(p UserPatch) {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.DateOfBirth != nil {
		u.DateOfBirth = *p.DateOfBirth
	}
	if p.Country != nil {
		u.Country = *p.Country
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
}

// Public returns the user's JSON-facing representation as a map so that
// response shaping can drop individual keys (for example "id").
// The password hash is never included.
func (u *User) Public() map[string]any {
	return map[string]any{
		"id":          u.ID,
		"firstName":   u.FirstName,
		"lastName":    u.LastName,
		"dateOfBirth": u.DateOfBirth,
		"country":     u.Country,
		"email":       u.Email,
		"createdAt":   u.CreatedAt,
		"updatedAt":   u.UpdatedAt,
	}
}
