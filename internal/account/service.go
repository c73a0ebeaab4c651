package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sudo-init-do/accounthub/internal/auth"
	"github.com/sudo-init-do/accounthub/internal/user"
)

var (
	// ErrInvalidInput means a required field was missing.
	ErrInvalidInput = errors.New("missing required fields")
	// ErrWrongPassword means the supplied password did not match the
	// stored hash.
	ErrWrongPassword = errors.New("incorrect password")
)

// Service orchestrates registration, login, profile and password
// operations on top of the credential store, the password hasher and the
// token issuer.
type Service struct {
	repo   user.Repository
	tokens *auth.Tokens
}

func NewService(repo user.Repository, tokens *auth.Tokens) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// RegisterInput carries the registration form. Birthday may be zero.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Number    string
	Birthday  time.Time
}

// Register hashes the password and inserts a new user. A duplicate email
// surfaces as user.ErrEmailTaken; the store's unique constraint decides,
// so concurrent registrations cannot both win.
func (s *Service) Register(ctx context.Context, in RegisterInput) error {
	if in.FirstName == "" || in.LastName == "" || in.Email == "" || in.Password == "" {
		return ErrInvalidInput
	}

	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = s.repo.Create(ctx, &user.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  hashed,
		Number:    in.Number,
		Birthday:  in.Birthday,
	})
	return err
}

// Login verifies credentials and mints a session token. Unknown emails
// return user.ErrNotFound, a password mismatch ErrWrongPassword.
func (s *Service) Login(ctx context.Context, email, password string) (*user.User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrInvalidInput
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	if !auth.CheckPassword(password, u.Password) {
		return nil, "", ErrWrongPassword
	}

	token, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return u, token, nil
}

// GetSelf reloads the caller's own record.
func (s *Service) GetSelf(ctx context.Context, userID string) (*user.User, error) {
	return s.repo.GetByID(ctx, userID)
}

// UpdateProfile applies a partial update. Nil patch fields are left
// untouched, never nulled.
func (s *Service) UpdateProfile(ctx context.Context, userID string, p user.Patch) (*user.User, error) {
	// Password changes go through ChangePassword, which re-verifies the
	// current one first.
	p.Password = nil
	return s.repo.Update(ctx, userID, p)
}

// ChangePassword re-verifies the current password, then stores a hash of
// the new one. Tokens issued before the change stay valid until they
// expire.
func (s *Service) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return ErrInvalidInput
	}

	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(currentPassword, u.Password) {
		return ErrWrongPassword
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = s.repo.Update(ctx, userID, user.Patch{Password: &hashed})
	return err
}
