package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the slice of pgxpool.Pool the repository needs. Kept narrow so
// tests can substitute a mock pool.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository stores users in Postgres. The unique index on email
// makes registration check-and-insert atomic.
type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, first_name, last_name, email, password, number, birthday, avatar, created_at, updated_at`

func (r *PostgresRepository) Create(ctx context.Context, u *User) (*User, error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	var birthday *time.Time
	if !u.Birthday.IsZero() {
		birthday = &u.Birthday
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO users (id, first_name, last_name, email, password, number, birthday)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+userColumns,
		u.ID, u.FirstName, u.LastName, u.Email, u.Password, u.Number, birthday)

	created, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return created, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *PostgresRepository) Update(ctx context.Context, id string, p Patch) (*User, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE users
		SET first_name = COALESCE($1, first_name),
		    last_name  = COALESCE($2, last_name),
		    email      = COALESCE($3, email),
		    password   = COALESCE($4, password),
		    number     = COALESCE($5, number),
		    birthday   = COALESCE($6, birthday),
		    avatar     = COALESCE($7, avatar),
		    updated_at = NOW()
		WHERE id = $8
		RETURNING `+userColumns,
		p.FirstName, p.LastName, p.Email, p.Password, p.Number, p.Birthday, p.Avatar, id)

	updated, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return updated, nil
}

func scanUser(row pgx.Row) (*User, error) {
	u := &User{}
	var birthday *time.Time
	err := row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Password,
		&u.Number, &birthday, &u.Avatar, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if birthday != nil {
		u.Birthday = *birthday
	}
	return u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
