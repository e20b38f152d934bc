package repository

import (
	"context"
	"errors"

	"github.com/ockidea/ockidea-server/internal/domain/entity"
)

// Storage-level failures the service layer reacts to. The unique
// constraints in storage are the final authority for the duplicate
// errors; service-level pre-checks are only an optimization.
var (
	ErrNotFound          = errors.New("user not found")
	ErrDuplicateEmail    = errors.New("email already taken")
	ErrDuplicateNickname = errors.New("nickname already taken")
)

// UserRepository defines the persistence boundary for users. Reads
// leave PasswordHash empty except GetByEmailWithPassword, which exists
// solely for credential verification.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByEmailWithPassword(ctx context.Context, email string) (*entity.User, error)
	GetByNickname(ctx context.Context, nickname string) (*entity.User, error)
	IsEmailTaken(ctx context.Context, email string) (bool, error)
	IsNicknameTaken(ctx context.Context, nickname string) (bool, error)
	Update(ctx context.Context, u *entity.User) error
	DeleteAll(ctx context.Context) (int64, error)
}
