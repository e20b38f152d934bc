// Package memory provides a mutex-guarded in-memory UserRepository.
// It enforces the same uniqueness invariants as the Postgres schema,
// which makes it usable both as a test double and for running the
// server without a database.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ockidea/ockidea-server/internal/domain/entity"
	"github.com/ockidea/ockidea-server/internal/domain/repository"
)

type UserRepository struct {
	mu    sync.Mutex
	users map[string]*entity.User // keyed by id

	// Now stands in for the storage clock assigning created_at;
	// swappable so tests can pin it.
	Now func() time.Time
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*entity.User), Now: time.Now}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
		if existing.Nickname == u.Nickname {
			return repository.ErrDuplicateNickname
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = r.Now()
	stored := *u
	r.users[u.ID] = &stored
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return withoutPassword(u), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := r.findByEmail(email)
	if err != nil {
		return nil, err
	}
	return withoutPassword(u), nil
}

func (r *UserRepository) GetByEmailWithPassword(ctx context.Context, email string) (*entity.User, error) {
	u, err := r.findByEmail(email)
	if err != nil {
		return nil, err
	}
	copied := *u
	return &copied, nil
}

func (r *UserRepository) GetByNickname(ctx context.Context, nickname string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Nickname == nickname {
			return withoutPassword(u), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) IsEmailTaken(ctx context.Context, email string) (bool, error) {
	_, err := r.findByEmail(email)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (r *UserRepository) IsNicknameTaken(ctx context.Context, nickname string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Nickname == nickname {
			return true, nil
		}
	}
	return false, nil
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.users[u.ID]
	if !ok {
		return repository.ErrNotFound
	}
	for id, other := range r.users {
		if id != u.ID && other.Nickname == u.Nickname {
			return repository.ErrDuplicateNickname
		}
	}
	current.Nickname = u.Nickname
	current.Bio = u.Bio
	current.Gender = u.Gender
	current.ProfileImage = u.ProfileImage
	return nil
}

func (r *UserRepository) DeleteAll(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := int64(len(r.users))
	r.users = make(map[string]*entity.User)
	return n, nil
}

func (r *UserRepository) findByEmail(email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func withoutPassword(u *entity.User) *entity.User {
	copied := *u
	copied.PasswordHash = ""
	return &copied
}

var _ repository.UserRepository = (*UserRepository)(nil)
