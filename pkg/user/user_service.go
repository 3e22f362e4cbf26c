package user

import (
	"context"
	"errors"
	"fmt"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"recipehub/domain"
	"recipehub/entities"
	"recipehub/internal/utils/mailing"
	"recipehub/pkg/jwt"
	"strings"
	"time"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
		RefreshToken(ctx context.Context, req domain.RefreshTokenRequest) (domain.TokenResponse, error)
		CreateUser(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error)
		GetUsers(ctx context.Context) ([]domain.UserResponse, error)
		GetUserByEmail(ctx context.Context, email string) (domain.UserResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		SweepExpiredTokens(ctx context.Context) (int64, error)
	}

	userService struct {
		userRepository         UserRepository
		refreshTokenRepository RefreshTokenRepository
		jwtService             jwt.JWTService
		mailer                 mailing.Mailer
		refreshTTL             time.Duration
		now                    func() time.Time
	}
)

func NewUserService(
	userRepository UserRepository,
	refreshTokenRepository RefreshTokenRepository,
	jwtService jwt.JWTService,
	mailer mailing.Mailer,
	refreshTTL time.Duration,
) UserService {
	if mailer == nil {
		mailer = mailing.NoopMailer{}
	}
	return &userService{
		userRepository:         userRepository,
		refreshTokenRepository: refreshTokenRepository,
		jwtService:             jwtService,
		mailer:                 mailer,
		refreshTTL:             refreshTTL,
		now:                    time.Now,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	user, err := s.createUser(ctx, req)
	if err != nil {
		return domain.AuthResponse{}, err
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return domain.AuthResponse{}, err
	}

	go func(email, name string) {
		if err := s.mailer.SendWelcome(email, name); err != nil {
			log.Errorf("send welcome mail to %s: %v", email, err)
		}
	}(user.Email, user.DisplayName)

	return domain.AuthResponse{TokenResponse: tokens, User: toUserResponse(user)}, nil
}

func (s *userService) CreateUser(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error) {
	user, err := s.createUser(ctx, req)
	if err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) createUser(ctx context.Context, req domain.RegisterRequest) (*entities.User, error) {
	if req.Password != req.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := s.userRepository.CheckEmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entities.User{
		Email:        email,
		PasswordHash: hash,
		DisplayName:  strings.TrimSpace(req.DisplayName),
	}
	// the unique index still catches a concurrent registration of the same email
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.AuthResponse{}, domain.ErrInvalidCredentials
		}
		return domain.AuthResponse{}, err
	}

	if err := ComparePassword(user.PasswordHash, req.Password); err != nil {
		return domain.AuthResponse{}, domain.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return domain.AuthResponse{}, err
	}
	return domain.AuthResponse{TokenResponse: tokens, User: toUserResponse(user)}, nil
}

// RefreshToken exchanges a refresh token for a new pair. The presented token
// is consumed, so a second exchange with it fails.
func (s *userService) RefreshToken(ctx context.Context, req domain.RefreshTokenRequest) (domain.TokenResponse, error) {
	stored, err := s.refreshTokenRepository.FindByToken(ctx, req.RefreshToken)
	if err != nil {
		return domain.TokenResponse{}, err
	}

	if stored.IsExpired(s.now()) {
		if err := s.refreshTokenRepository.DeleteByToken(ctx, stored.Token); err != nil {
			log.Warnf("delete expired refresh token: %v", err)
		}
		return domain.TokenResponse{}, domain.ErrRefreshTokenExpired
	}

	user, err := s.userRepository.GetUserByID(ctx, stored.UserID.String())
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.TokenResponse{}, domain.ErrRefreshTokenInvalid
		}
		return domain.TokenResponse{}, err
	}

	accessToken, err := s.jwtService.GenerateTokenUser(user.ID.String(), user.Email)
	if err != nil {
		return domain.TokenResponse{}, err
	}

	next := s.newRefreshToken(user.ID)
	if err := s.refreshTokenRepository.Rotate(ctx, stored.Token, next); err != nil {
		return domain.TokenResponse{}, err
	}

	return domain.TokenResponse{AccessToken: accessToken, RefreshToken: next.Token}, nil
}

func (s *userService) GetUsers(ctx context.Context) ([]domain.UserResponse, error) {
	users, err := s.userRepository.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.UserResponse, 0, len(users))
	for _, u := range users {
		res = append(res, toUserResponse(u))
	}
	return res, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) SweepExpiredTokens(ctx context.Context) (int64, error) {
	return s.refreshTokenRepository.DeleteExpired(ctx, s.now())
}

func (s *userService) issueTokens(ctx context.Context, user *entities.User) (domain.TokenResponse, error) {
	accessToken, err := s.jwtService.GenerateTokenUser(user.ID.String(), user.Email)
	if err != nil {
		return domain.TokenResponse{}, err
	}

	refresh := s.newRefreshToken(user.ID)
	if err := s.refreshTokenRepository.Create(ctx, refresh); err != nil {
		return domain.TokenResponse{}, err
	}

	return domain.TokenResponse{AccessToken: accessToken, RefreshToken: refresh.Token}, nil
}

func (s *userService) newRefreshToken(userID uuid.UUID) *entities.RefreshToken {
	return &entities.RefreshToken{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: s.now().Add(s.refreshTTL),
	}
}

func toUserResponse(u *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:          u.ID.String(),
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}
