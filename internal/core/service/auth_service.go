package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/99minutos/blog-system/internal/core/domain"
	"github.com/99minutos/blog-system/internal/core/ports"
)

// PasswordCost is the bcrypt work factor used for every stored hash.
const PasswordCost = 10

// DemoAccount is a credential seeded at startup when absent.
type DemoAccount struct {
	Username string
	Password string
	Role     string
}

// DemoAccounts are the accounts created by EnsureDemoUsers.
var DemoAccounts = []DemoAccount{
	{Username: "admin", Password: "admin123", Role: domain.RoleAdmin},
	{Username: "user", Password: "user123", Role: domain.RoleUser},
}

// dummyHash is compared against when the username is unknown so that both
// failure paths perform one bcrypt comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), PasswordCost)

// AuthService implements registration, login and demo-account seeding.
type AuthService struct {
	repo ports.UserRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewAuthService(repo ports.UserRepository, log zerolog.Logger) *AuthService {
	return &AuthService{
		repo: repo,
		log:  log,
		now:  func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

func (s *AuthService) Register(ctx context.Context, username, password, role string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidUser
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrDuplicateUsername
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return nil, err
	}

	user, err := domain.NewUser(username, string(hash), role, s.now())
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Str("role", created.Role).Msg("user registered")
	return created, nil
}

// Authenticate checks the password of username and returns the identity to
// store in the session. Unknown users and wrong passwords both yield
// domain.ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.Identity, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	identity := domain.IdentityOf(user)
	return &identity, nil
}

// EnsureDemoUsers creates every DemoAccount whose username is not taken yet.
// Running it again is a no-op.
func (s *AuthService) EnsureDemoUsers(ctx context.Context) error {
	for _, acct := range DemoAccounts {
		_, err := s.repo.FindByUsername(ctx, acct.Username)
		if err == nil {
			s.log.Debug().Str("username", acct.Username).Msg("demo user already present")
			continue
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			return err
		}

		if _, err := s.Register(ctx, acct.Username, acct.Password, acct.Role); err != nil {
			// Another instance seeded it between the lookup and the insert.
			if errors.Is(err, domain.ErrDuplicateUsername) {
				continue
			}
			return err
		}
		s.log.Info().Str("username", acct.Username).Str("role", acct.Role).Msg("demo user created")
	}
	return nil
}
