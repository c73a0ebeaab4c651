package account

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudo-init-do/accounthub/internal/auth"
	"github.com/sudo-init-do/accounthub/internal/user"
)

// memRepo is an in-memory user.Repository for tests.
type memRepo struct {
	mu   sync.Mutex
	byID map[string]*user.User
}

func newMemRepo() *memRepo {
	return &memRepo{byID: make(map[string]*user.User)}
}

func (m *memRepo) Create(_ context.Context, u *user.User) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.byID {
		if existing.Email == u.Email {
			return nil, user.ErrEmailTaken
		}
	}
	stored := *u
	if stored.ID == "" {
		stored.ID = uuid.New().String()
	}
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	m.byID[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (m *memRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, user.ErrNotFound
}

func (m *memRepo) GetByID(_ context.Context, id string) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	out := *u
	return &out, nil
}

func (m *memRepo) Update(_ context.Context, id string, p user.Patch) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	if p.Email != nil {
		for otherID, other := range m.byID {
			if otherID != id && other.Email == *p.Email {
				return nil, user.ErrEmailTaken
			}
		}
		u.Email = *p.Email
	}
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.Number != nil {
		u.Number = *p.Number
	}
	if p.Birthday != nil {
		u.Birthday = *p.Birthday
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	u.UpdatedAt = time.Now()
	out := *u
	return &out, nil
}

func newTestService(repo user.Repository) *Service {
	return NewService(repo, auth.NewTokens([]byte("test-secret"), 24*time.Hour))
}

func validRegistration() RegisterInput {
	return RegisterInput{
		FirstName: "A",
		LastName:  "B",
		Email:     "a@x.com",
		Password:  "secret123",
		Number:    "555",
		Birthday:  time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestService_Register(t *testing.T) {
	t.Parallel()

	repo := newMemRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, validRegistration()))

	stored, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.True(t, auth.CheckPassword("secret123", stored.Password))
	assert.NotEmpty(t, stored.ID)
}

func TestService_RegisterMissingFields(t *testing.T) {
	t.Parallel()

	svc := newTestService(newMemRepo())
	ctx := context.Background()

	for _, mutate := range []func(*RegisterInput){
		func(in *RegisterInput) { in.FirstName = "" },
		func(in *RegisterInput) { in.LastName = "" },
		func(in *RegisterInput) { in.Email = "" },
		func(in *RegisterInput) { in.Password = "" },
	} {
		in := validRegistration()
		mutate(&in)
		assert.ErrorIs(t, svc.Register(ctx, in), ErrInvalidInput)
	}
}

func TestService_RegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := newTestService(newMemRepo())
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, validRegistration()))

	dup := validRegistration()
	dup.FirstName = "C"
	require.ErrorIs(t, svc.Register(ctx, dup), user.ErrEmailTaken)
}

func TestService_Login(t *testing.T) {
	t.Parallel()

	repo := newMemRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, validRegistration()))

	u, token, err := svc.Login(ctx, "a@x.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", u.Email)
	assert.NotEmpty(t, token)

	// The minted token verifies and carries the user identity.
	claims, err := auth.NewTokens([]byte("test-secret"), 24*time.Hour).Verify(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestService_LoginFailures(t *testing.T) {
	t.Parallel()

	svc := newTestService(newMemRepo())
	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, validRegistration()))

	_, _, err := svc.Login(ctx, "", "secret123")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = svc.Login(ctx, "a@x.com", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = svc.Login(ctx, "nobody@x.com", "secret123")
	assert.ErrorIs(t, err, user.ErrNotFound)

	_, _, err = svc.Login(ctx, "a@x.com", "wrong-password")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestService_UpdateProfilePartial(t *testing.T) {
	t.Parallel()

	repo := newMemRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, validRegistration()))
	before, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)

	lastName := "X"
	updated, err := svc.UpdateProfile(ctx, before.ID, user.Patch{LastName: &lastName})
	require.NoError(t, err)

	assert.Equal(t, "X", updated.LastName)
	assert.Equal(t, before.FirstName, updated.FirstName)
	assert.Equal(t, before.Email, updated.Email)
	assert.Equal(t, before.Number, updated.Number)
	assert.Equal(t, before.Birthday, updated.Birthday)
}

func TestService_UpdateProfileIgnoresPassword(t *testing.T) {
	t.Parallel()

	repo := newMemRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, validRegistration()))
	before, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)

	sneaky := "plaintext-overwrite"
	_, err = svc.UpdateProfile(ctx, before.ID, user.Patch{Password: &sneaky})
	require.NoError(t, err)

	after, err := repo.GetByID(ctx, before.ID)
	require.NoError(t, err)
	assert.Equal(t, before.Password, after.Password)
}

func TestService_UpdateProfileMissingUser(t *testing.T) {
	t.Parallel()

	svc := newTestService(newMemRepo())
	firstName := "A"
	_, err := svc.UpdateProfile(context.Background(), "missing-id", user.Patch{FirstName: &firstName})
	require.ErrorIs(t, err, user.ErrNotFound)
}

func TestService_ChangePassword(t *testing.T) {
	t.Parallel()

	repo := newMemRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, validRegistration()))
	u, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)

	require.NoError(t, svc.ChangePassword(ctx, u.ID, "secret123", "newsecret456"))

	// New password logs in, old one no longer does.
	_, _, err = svc.Login(ctx, "a@x.com", "newsecret456")
	require.NoError(t, err)
	_, _, err = svc.Login(ctx, "a@x.com", "secret123")
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestService_ChangePasswordFailures(t *testing.T) {
	t.Parallel()

	repo := newMemRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, validRegistration()))
	u, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.ChangePassword(ctx, u.ID, "", "newsecret"), ErrInvalidInput)
	assert.ErrorIs(t, svc.ChangePassword(ctx, u.ID, "secret123", ""), ErrInvalidInput)
	assert.ErrorIs(t, svc.ChangePassword(ctx, u.ID, "wrong", "newsecret"), ErrWrongPassword)
	assert.ErrorIs(t, svc.ChangePassword(ctx, "missing-id", "secret123", "newsecret"), user.ErrNotFound)
}

func TestService_GetSelfMissing(t *testing.T) {
	t.Parallel()

	svc := newTestService(newMemRepo())
	_, err := svc.GetSelf(context.Background(), "missing-id")
	require.ErrorIs(t, err, user.ErrNotFound)
}
