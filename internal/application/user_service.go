package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/ockidea/ockidea-server/internal/domain/entity"
	repo "github.com/ockidea/ockidea-server/internal/domain/repository"
	"github.com/ockidea/ockidea-server/internal/domain/validation"
	"github.com/ockidea/ockidea-server/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already in use")
	ErrNicknameTaken      = errors.New("nickname already in use")
)

// ValidationError aggregates every violated field on a single input so
// a registration failure can report all of them at once.
type ValidationError struct {
	Violations []validation.Violation
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		fields = append(fields, v.Field)
	}
	return "validation failed: " + strings.Join(fields, ", ")
}

// Details returns a field -> message map for the error envelope.
func (e *ValidationError) Details() map[string]string {
	out := make(map[string]string, len(e.Violations))
	for _, v := range e.Violations {
		if _, seen := out[v.Field]; !seen {
			out[v.Field] = v.Message
		}
	}
	return out
}

// Service orchestrates registration, login and profile maintenance.
// Redis is optional; when present, profile views are cached
// read-through and invalidated on writes.
type Service struct {
	Repo            repo.UserRepository
	Redis           *redis.Client
	Logger          *logrus.Logger
	ProfileCacheTTL time.Duration

	// now is swappable so derived-attribute behavior is testable
	// against a fixed clock.
	now func() time.Time
}

func NewService(r repo.UserRepository, rdb *redis.Client, logger *logrus.Logger, cacheTTL time.Duration) *Service {
	return &Service{
		Repo:            r,
		Redis:           rdb,
		Logger:          logger,
		ProfileCacheTTL: cacheTTL,
		now:             time.Now,
	}
}

func profileCacheKey(userID string) string {
	return "user:profile:" + userID
}

func normalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// RegisterInput carries raw registration fields as received from the
// client; no normalization has happened yet.
type RegisterInput struct {
	Email        string
	Password     string
	Nickname     string
	BirthDate    string
	Gender       string
	ProfileImage string
	Bio          string
}

func (in *RegisterInput) violations(now time.Time) []validation.Violation {
	var out []validation.Violation
	checks := []*validation.Violation{
		validation.Email(in.Email),
		validation.Password(in.Password),
		validation.Nickname(in.Nickname),
		validation.BirthDate(in.BirthDate, now),
		validation.Gender(in.Gender),
		validation.ProfileImage(in.ProfileImage),
		validation.Bio(in.Bio),
	}
	for _, v := range checks {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}

// Register validates the whole input, checks uniqueness, hashes the
// password and persists the account. Email is checked before nickname
// on purpose: when both collide the response names the email conflict.
// A duplicate error surfaced by storage (a race lost against a
// concurrent registration) maps to the same taken errors as the
// pre-check.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*entity.ProfileView, error) {
	now := s.now()
	if violations := in.violations(now); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	email := normalizeEmail(in.Email)
	nickname := strings.TrimSpace(in.Nickname)

	if taken, err := s.Repo.IsEmailTaken(ctx, email); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrEmailTaken
	}
	if taken, err := s.Repo.IsNicknameTaken(ctx, nickname); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrNicknameTaken
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	gender := in.Gender
	if gender == "" {
		gender = entity.GenderNone
	}
	u := &entity.User{
		Email:        email,
		PasswordHash: hash,
		Nickname:     nickname,
		BirthDate:    strings.TrimSpace(in.BirthDate),
		Gender:       gender,
		ProfileImage: strings.TrimSpace(in.ProfileImage),
		Bio:          strings.TrimSpace(in.Bio),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		switch {
		case errors.Is(err, repo.ErrDuplicateEmail):
			return nil, ErrEmailTaken
		case errors.Is(err, repo.ErrDuplicateNickname):
			return nil, ErrNicknameTaken
		}
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "nickname": u.Nickname}).Info("user registered")
	}
	view := entity.NewProfileView(u, now)
	return &view, nil
}

// Login verifies credentials and returns the profile view. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*entity.ProfileView, error) {
	u, err := s.Repo.GetByEmailWithPassword(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !helpers.CheckPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	view := entity.NewProfileView(u, s.now())
	return &view, nil
}

// GetProfile reads through the cache when Redis is configured; cache
// errors fall back to storage.
func (s *Service) GetProfile(ctx context.Context, userID string) (*entity.ProfileView, error) {
	if s.Redis != nil {
		var cached entity.User
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, profileCacheKey(userID), &cached); err == nil && ok {
			view := entity.NewProfileView(&cached, s.now())
			return &view, nil
		}
	}

	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, profileCacheKey(userID), u, s.ProfileCacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Warn("profile cache write failed")
		}
	}
	view := entity.NewProfileView(u, s.now())
	return &view, nil
}

// UpdateProfileInput uses pointers so "field absent" and "field set to
// empty" stay distinguishable, matching the forgiving PUT contract.
type UpdateProfileInput struct {
	Nickname *string
	Bio      *string
	Gender   *string
}

// UpdateProfile changes nickname, bio and gender only. Everything else
// a client sends is ignored upstream; email, birthDate and the admin
// flag are immutable here.
func (s *Service) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*entity.ProfileView, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var violations []validation.Violation
	if in.Nickname != nil && strings.TrimSpace(*in.Nickname) != "" {
		nickname := strings.TrimSpace(*in.Nickname)
		if v := validation.Nickname(nickname); v != nil {
			violations = append(violations, *v)
		} else if nickname != u.Nickname {
			if taken, err := s.Repo.IsNicknameTaken(ctx, nickname); err != nil {
				return nil, err
			} else if taken {
				return nil, ErrNicknameTaken
			}
			u.Nickname = nickname
		}
	}
	if in.Bio != nil {
		if v := validation.Bio(*in.Bio); v != nil {
			violations = append(violations, *v)
		} else {
			u.Bio = strings.TrimSpace(*in.Bio)
		}
	}
	if in.Gender != nil && *in.Gender != "" {
		if v := validation.Gender(*in.Gender); v != nil {
			violations = append(violations, *v)
		} else {
			u.Gender = *in.Gender
		}
	}
	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	if err := s.Repo.Update(ctx, u); err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, repo.ErrDuplicateNickname):
			return nil, ErrNicknameTaken
		}
		return nil, err
	}

	if s.Redis != nil {
		if err := helpers.RedisDel(ctx, s.Redis, profileCacheKey(userID)); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Warn("profile cache invalidation failed")
		}
	}
	view := entity.NewProfileView(u, s.now())
	return &view, nil
}

// CheckEmail reports whether an email is still available.
func (s *Service) CheckEmail(ctx context.Context, email string) (bool, error) {
	if v := validation.Email(email); v != nil {
		return false, &ValidationError{Violations: []validation.Violation{*v}}
	}
	taken, err := s.Repo.IsEmailTaken(ctx, normalizeEmail(email))
	return !taken, err
}

// CheckNickname reports whether a nickname is still available.
func (s *Service) CheckNickname(ctx context.Context, nickname string) (bool, error) {
	if v := validation.Nickname(nickname); v != nil {
		return false, &ValidationError{Violations: []validation.Violation{*v}}
	}
	taken, err := s.Repo.IsNicknameTaken(ctx, strings.TrimSpace(nickname))
	return !taken, err
}

// DeleteAllUsers is the administrative bulk clear. It returns the
// number of removed records and flushes any cached profiles.
func (s *Service) DeleteAllUsers(ctx context.Context) (int64, error) {
	n, err := s.Repo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	if s.Redis != nil {
		iter := s.Redis.Scan(ctx, 0, profileCacheKey("*"), 0).Iterator()
		for iter.Next(ctx) {
			_ = s.Redis.Del(ctx, iter.Val()).Err()
		}
	}
	if s.Logger != nil {
		s.Logger.WithField("removed", n).Warn("all users deleted")
	}
	return n, nil
}
