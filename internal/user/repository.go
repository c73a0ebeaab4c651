package user

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound means no user matched the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrEmailTaken means the email collided with an existing account.
	ErrEmailTaken = errors.New("email already in use")
)

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
	Number    *string
	Birthday  *time.Time
	Avatar    *string
}

// Repository is the credential store. Email uniqueness is enforced by the
// store itself, so concurrent registrations with the same email cannot
// both succeed.
type Repository interface {
	Create(ctx context.Context, u *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, id string, p Patch) (*User, error)
}
