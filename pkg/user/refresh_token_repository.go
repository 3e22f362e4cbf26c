package user

import (
	"context"
	"errors"
	"fmt"
	"gorm.io/gorm"
	"recipehub/domain"
	"recipehub/entities"
	"time"
)

type (
	RefreshTokenRepository interface {
		Create(ctx context.Context, token *entities.RefreshToken) error
		FindByToken(ctx context.Context, token string) (*entities.RefreshToken, error)
		DeleteByToken(ctx context.Context, token string) error
		// Rotate consumes oldToken and stores next atomically. It fails with
		// domain.ErrRefreshTokenInvalid when oldToken was already consumed.
		Rotate(ctx context.Context, oldToken string, next *entities.RefreshToken) error
		DeleteExpired(ctx context.Context, now time.Time) (int64, error)
	}

	refreshTokenRepository struct {
		db *gorm.DB
	}
)

func NewRefreshTokenRepository(db *gorm.DB) RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

func (r *refreshTokenRepository) Create(ctx context.Context, token *entities.RefreshToken) error {
	if err := r.db.WithContext(ctx).Create(token).Error; err != nil {
		return fmt.Errorf("create refresh token: %w", err)
	}
	return nil
}

func (r *refreshTokenRepository) FindByToken(ctx context.Context, token string) (*entities.RefreshToken, error) {
	var refreshToken entities.RefreshToken
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&refreshToken).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRefreshTokenInvalid
		}
		return nil, fmt.Errorf("find refresh token: %w", err)
	}
	return &refreshToken, nil
}

func (r *refreshTokenRepository) DeleteByToken(ctx context.Context, token string) error {
	if err := r.db.WithContext(ctx).Where("token = ?", token).Delete(&entities.RefreshToken{}).Error; err != nil {
		return fmt.Errorf("delete refresh token: %w", err)
	}
	return nil
}

func (r *refreshTokenRepository) Rotate(ctx context.Context, oldToken string, next *entities.RefreshToken) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("token = ?", oldToken).Delete(&entities.RefreshToken{})
		if res.Error != nil {
			return fmt.Errorf("delete refresh token: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrRefreshTokenInvalid
		}
		if err := tx.Create(next).Error; err != nil {
			return fmt.Errorf("create refresh token: %w", err)
		}
		return nil
	})
}

func (r *refreshTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&entities.RefreshToken{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete expired refresh tokens: %w", res.Error)
	}
	return res.RowsAffected, nil
}
