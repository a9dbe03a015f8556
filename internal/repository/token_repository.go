package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"authapi/internal/model"
)

// TokenRepository defines persistence operations over issued sessions.
// FindByToken returns (nil, nil) when no row matches.
type TokenRepository interface {
	Create(ctx context.Context, token *model.UserToken) error
	FindByToken(ctx context.Context, token string) (*model.UserToken, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
}

type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository builds a GORM-backed repository.
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Create(ctx context.Context, token *model.UserToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

// FindByToken prefers the row with the latest expiry, so a stale duplicate
// never shadows a fresher session with the same token string.
func (r *tokenRepository) FindByToken(ctx context.Context, token string) (*model.UserToken, error) {
	var row model.UserToken
	err := r.db.WithContext(ctx).
		Where("token = ?", token).
		Order("expires_at DESC").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *tokenRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.UserToken{}).Where("id = ?", id).Updates(fields).Error
}
