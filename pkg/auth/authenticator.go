package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"recipehub/domain"
	"recipehub/entities"
	"recipehub/pkg/jwt"
	"recipehub/pkg/user"
	"strings"
)

// errNotApplicable tells the authenticator to try the next strategy.
var errNotApplicable = errors.New("strategy not applicable")

type (
	// Strategy resolves an Authorization header into a principal.
	Strategy interface {
		Name() string
		Authenticate(ctx context.Context, authorization string) (domain.Principal, error)
	}

	Authenticator struct {
		strategies []Strategy
	}

	bearerStrategy struct {
		jwtService     jwt.JWTService
		userRepository user.UserRepository
	}

	basicStrategy struct {
		userRepository user.UserRepository
	}
)

// NewAuthenticator tries strategies in the given order.
func NewAuthenticator(strategies ...Strategy) *Authenticator {
	return &Authenticator{strategies: strategies}
}

// NewDefaultAuthenticator accepts a Bearer JWT first and HTTP Basic second.
func NewDefaultAuthenticator(jwtService jwt.JWTService, userRepository user.UserRepository) *Authenticator {
	return NewAuthenticator(
		NewBearerStrategy(jwtService, userRepository),
		NewBasicStrategy(userRepository),
	)
}

func (a *Authenticator) Authenticate(ctx context.Context, authorization string) (domain.Principal, error) {
	if strings.TrimSpace(authorization) == "" {
		return domain.Principal{}, domain.ErrMissingCredentials
	}

	for _, strategy := range a.strategies {
		principal, err := strategy.Authenticate(ctx, authorization)
		if errors.Is(err, errNotApplicable) {
			continue
		}
		return principal, err
	}
	return domain.Principal{}, domain.ErrMissingCredentials
}

// OptionalAuthenticate never fails; ok is false when no valid credentials were sent.
func (a *Authenticator) OptionalAuthenticate(ctx context.Context, authorization string) (domain.Principal, bool) {
	principal, err := a.Authenticate(ctx, authorization)
	if err != nil {
		return domain.Principal{}, false
	}
	return principal, true
}

func NewBearerStrategy(jwtService jwt.JWTService, userRepository user.UserRepository) Strategy {
	return &bearerStrategy{jwtService: jwtService, userRepository: userRepository}
}

func (s *bearerStrategy) Name() string { return "bearer" }

func (s *bearerStrategy) Authenticate(ctx context.Context, authorization string) (domain.Principal, error) {
	token, ok := cutScheme(authorization, "Bearer")
	if !ok {
		return domain.Principal{}, errNotApplicable
	}

	userID, _, err := s.jwtService.GetUserIDByToken(token)
	if err != nil {
		return domain.Principal{}, err
	}

	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.Principal{}, domain.ErrTokenInvalid
		}
		return domain.Principal{}, err
	}
	return toPrincipal(u), nil
}

func NewBasicStrategy(userRepository user.UserRepository) Strategy {
	return &basicStrategy{userRepository: userRepository}
}

func (s *basicStrategy) Name() string { return "basic" }

func (s *basicStrategy) Authenticate(ctx context.Context, authorization string) (domain.Principal, error) {
	encoded, ok := cutScheme(authorization, "Basic")
	if !ok {
		return domain.Principal{}, errNotApplicable
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return domain.Principal{}, domain.ErrInvalidCredentials
	}
	email, password, ok := strings.Cut(string(raw), ":")
	if !ok || email == "" {
		return domain.Principal{}, domain.ErrInvalidCredentials
	}

	u, err := s.userRepository.GetUserByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.Principal{}, domain.ErrInvalidCredentials
		}
		return domain.Principal{}, err
	}
	if err := user.ComparePassword(u.PasswordHash, password); err != nil {
		return domain.Principal{}, domain.ErrInvalidCredentials
	}
	return toPrincipal(u), nil
}

func cutScheme(authorization, scheme string) (string, bool) {
	prefix, rest, ok := strings.Cut(strings.TrimSpace(authorization), " ")
	if !ok || !strings.EqualFold(prefix, scheme) {
		return "", false
	}
	rest = strings.TrimSpace(rest)
	return rest, rest != ""
}

func toPrincipal(u *entities.User) domain.Principal {
	return domain.Principal{ID: u.ID, Email: u.Email, DisplayName: u.DisplayName}
}
