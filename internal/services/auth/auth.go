// Package auth содержит логику учётных записей: вход, регистрацию,
// проверку и перевыпуск токена, профиль пользователя.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cobusiness02/forgefyt/internal/collection"
	"github.com/cobusiness02/forgefyt/internal/lib/jwt"
	"github.com/cobusiness02/forgefyt/internal/lib/password"
	"github.com/cobusiness02/forgefyt/internal/lib/sl"
	"github.com/cobusiness02/forgefyt/internal/models"
)

var (
	// ErrUserExists адрес уже зарегистрирован.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials неизвестный адрес, неверный пароль или отключённая учётная запись.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Collection коллекция учётных записей.
type Collection = collection.Collection[models.User, *models.User]

// CoachProvisioner создаёт профиль тренера для новой учётной записи.
type CoachProvisioner interface {
	Provision(ctx context.Context, user models.User) error
}

// Schema описание учётной записи. Владелец записи сам пользователь.
func Schema() collection.Schema[models.User] {
	return collection.Schema[models.User]{
		Name: "users",
		Fields: map[string]func(*models.User) []string{
			"email": func(u *models.User) []string { return []string{u.Email} },
		},
		Status:     func(u *models.User) string { return u.Status() },
		Terminal:   "inactive",
		SoftDelete: func(u *models.User) { u.IsActive = false },
		Constraints: []collection.Constraint[models.User]{{
			Name:  "email",
			Scope: collection.Global,
			Key:   func(u *models.User) (string, bool) { return u.Email, u.Email != "" },
			Err:   ErrUserExists,
		}},
		Defaults: func(u *models.User, _ time.Time) {
			u.OwnerID = u.ID
			u.IsActive = true
			u.LastLogin = nil
			if u.Role == "" {
				u.Role = models.RoleCoach
			}
			if u.Profile == nil {
				u.Profile = map[string]any{}
			}
		},
	}
}

// Session выданный токен вместе с учётной записью.
type Session struct {
	Token     string
	ExpiresIn string
	User      *models.User
}

// Service сервис учётных записей.
type Service struct {
	log     *slog.Logger
	users   *Collection
	tokens  jwt.Maker
	coaches CoachProvisioner
}

// New создаёт сервис учётных записей. coaches может быть nil,
// тогда профиль тренера при регистрации не создаётся.
func New(log *slog.Logger, users *Collection, tokens jwt.Maker, coaches CoachProvisioner) *Service {
	return &Service{log: log, users: users, tokens: tokens, coaches: coaches}
}

// Login проверяет пароль и выдаёт токен. Время входа сохраняется.
func (s *Service) Login(ctx context.Context, email, rawPassword string) (*Session, error) {
	const op = "auth.Login"

	found, err := s.users.Lookup(ctx, collection.Filter{
		Predicates: []collection.Predicate{collection.Eq("email", models.NormalizeEmail(email))},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}
	user := found[0]
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.users.Update(ctx, user.ID, user.ID, models.LoginPatch{At: s.users.Now()})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.issue(op, updated)
}

// Register создаёт учётную запись и выдаёт токен. Для роли coach
// создаётся профиль тренера, при неудаче учётная запись удаляется.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (*Session, error) {
	const op = "auth.Register"

	hashed, err := password.GetHash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user, err := s.users.Create(ctx, "", models.User{
		Email:        models.NormalizeEmail(req.Email),
		PasswordHash: hashed,
		Role:         req.Role,
		Name:         req.Name,
		Profile:      req.Profile,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.coaches != nil {
		if err := s.coaches.Provision(ctx, *user); err != nil {
			if rmErr := s.users.Remove(ctx, user.ID, user.ID); rmErr != nil {
				s.log.Error("failed to roll back user", slog.String("user_id", user.ID), sl.Err(rmErr))
			}
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	s.log.Info("user registered", slog.String("user_id", user.ID), slog.String("role", string(user.Role)))
	return s.issue(op, user)
}

// Verify возвращает активную учётную запись владельца токена.
func (s *Service) Verify(ctx context.Context, userID string) (*models.User, error) {
	const op = "auth.Verify"
	user, err := s.users.Get(ctx, userID, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%s: %w", op, collection.ErrNotFound)
	}
	return user, nil
}

// Refresh выпускает новый токен с теми же данными пользователя.
func (s *Service) Refresh(_ context.Context, claims jwt.Claims) (*Session, error) {
	const op = "auth.Refresh"
	token, err := s.tokens.GenerateToken(claims)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Session{Token: token, ExpiresIn: FormatTTL(s.tokens.TTL())}, nil
}

// Profile возвращает учётную запись пользователя.
func (s *Service) Profile(ctx context.Context, userID string) (*models.User, error) {
	const op = "auth.Profile"
	user, err := s.users.Get(ctx, userID, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

// UpdateProfile меняет имя и дополняет профиль пользователя.
func (s *Service) UpdateProfile(ctx context.Context, userID string, patch models.ProfilePatch) (*models.User, error) {
	const op = "auth.UpdateProfile"
	user, err := s.users.Update(ctx, userID, userID, patch)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

func (s *Service) issue(op string, user *models.User) (*Session, error) {
	token, err := s.tokens.GenerateToken(ClaimsOf(user))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Session{Token: token, ExpiresIn: FormatTTL(s.tokens.TTL()), User: user}, nil
}

// ClaimsOf данные пользователя для токена.
func ClaimsOf(user *models.User) jwt.Claims {
	return jwt.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
		Name:   user.Name,
	}
}

// FormatTTL записывает срок жизни токена в коротком виде: 7d, 24h, 90m.
func FormatTTL(d time.Duration) string {
	switch {
	case d > 0 && d%(24*time.Hour) == 0:
		return fmt.Sprintf("%dd", d/(24*time.Hour))
	case d > 0 && d%time.Hour == 0:
		return fmt.Sprintf("%dh", d/time.Hour)
	case d > 0 && d%time.Minute == 0:
		return fmt.Sprintf("%dm", d/time.Minute)
	default:
		return d.String()
	}
}
