package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ockidea/ockidea-server/internal/domain/entity"
	"github.com/ockidea/ockidea-server/internal/domain/repository"
)

const userColumns = `id, email, nickname, birth_date, gender, profile_image, bio, is_admin, created_at`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Create inserts u and fills in the storage-assigned id and createdAt.
// Unique-index violations are translated to the duplicate sentinels so
// a race lost between pre-check and insert still reports the right
// conflict.
func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, nickname, birth_date, gender, profile_image, bio)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, is_admin, created_at
	`, u.Email, u.PasswordHash, u.Nickname, u.BirthDate, u.Gender, nullIfEmpty(u.ProfileImage), u.Bio)

	if err := row.Scan(&u.ID, &u.IsAdmin, &u.CreatedAt); err != nil {
		return mapUniqueViolation(err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.scanOne(r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.scanOne(r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1
	`, email))
}

// GetByEmailWithPassword is the only read that surfaces the hash; it
// exists for login verification and nothing else.
func (r *UserRepository) GetByEmailWithPassword(ctx context.Context, email string) (*entity.User, error) {
	u := &entity.User{}
	var img *string
	row := r.pool.QueryRow(ctx, `
		SELECT id, email, password_hash, nickname, birth_date, gender, profile_image, bio, is_admin, created_at
		FROM users
		WHERE email = $1
	`, email)
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Nickname, &u.BirthDate,
		&u.Gender, &img, &u.Bio, &u.IsAdmin, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if img != nil {
		u.ProfileImage = *img
	}
	return u, nil
}

func (r *UserRepository) GetByNickname(ctx context.Context, nickname string) (*entity.User, error) {
	return r.scanOne(r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE nickname = $1
	`, nickname))
}

func (r *UserRepository) IsEmailTaken(ctx context.Context, email string) (bool, error) {
	var taken bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&taken)
	return taken, err
}

func (r *UserRepository) IsNicknameTaken(ctx context.Context, nickname string) (bool, error) {
	var taken bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE nickname = $1)`, nickname).Scan(&taken)
	return taken, err
}

// Update persists the mutable profile fields. Email, birth date and the
// admin flag are immutable through this path.
func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET nickname = $1, bio = $2, gender = $3, profile_image = $4
		WHERE id = $5
	`, u.Nickname, u.Bio, u.Gender, nullIfEmpty(u.ProfileImage), u.ID)
	if err != nil {
		return mapUniqueViolation(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.pool.Exec(ctx, `DELETE FROM users`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

func (r *UserRepository) scanOne(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	var img *string
	if err := row.Scan(&u.ID, &u.Email, &u.Nickname, &u.BirthDate,
		&u.Gender, &img, &u.Bio, &u.IsAdmin, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if img != nil {
		u.ProfileImage = *img
	}
	return u, nil
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "users_email_key":
			return repository.ErrDuplicateEmail
		case "users_nickname_key":
			return repository.ErrDuplicateNickname
		}
	}
	return err
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

var _ repository.UserRepository = (*UserRepository)(nil)
