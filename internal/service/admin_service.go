package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"authapi/internal/apperror"
	"authapi/internal/auth"
	"authapi/internal/cache"
	"authapi/internal/model"
	"authapi/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// AdminService exposes administrative CRUD over user records.
type AdminService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	UpdateUser(ctx context.Context, id uint, email, password *string, isAdmin *bool) error
	DeleteUser(ctx context.Context, id uint) error
}

type adminService struct {
	users  repository.UserRepository
	cipher *auth.Cipher
	cache  *cache.Client
}

// NewAdminService creates an admin service. Single-user reads go through
// the cache; writes invalidate it. The authorization middleware never reads
// this cache, so admin-flag revocation is effective on the next request.
func NewAdminService(users repository.UserRepository, cipher *auth.Cipher, cache *cache.Client) AdminService {
	return &adminService{users: users, cipher: cipher, cache: cache}
}

func (s *adminService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// ListUsers returns every user with only id, email, and the admin flag set.
func (s *adminService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// GetUser returns one user, failing when the record does not exist.
func (s *adminService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, s.notFound(id)
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

// UpdateUser changes any of email, password, and the admin flag. Field
// checks run in order: uniqueness, then existence, then the write.
func (s *adminService) UpdateUser(ctx context.Context, id uint, email, password *string, isAdmin *bool) error {
	if email != nil {
		if err := checkEmailAvailable(ctx, s.users, *email); err != nil {
			return err
		}
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return s.notFound(id)
	}

	fields := map[string]interface{}{}
	if email != nil {
		fields["email"] = *email
	}
	if isAdmin != nil {
		fields["is_admin"] = *isAdmin
	}
	if password != nil {
		hash, err := s.cipher.Hash(*password)
		if err != nil {
			return err
		}
		fields["password"] = hash
	}

	if err := s.users.Update(ctx, user.ID, fields); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(user.ID))
	return nil
}

// DeleteUser removes a user, failing when the record does not exist.
func (s *adminService) DeleteUser(ctx context.Context, id uint) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return s.notFound(id)
	}

	if err := s.users.Delete(ctx, user.ID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(user.ID))
	return nil
}

func (s *adminService) notFound(id uint) *apperror.Error {
	return apperror.NewNotFound(
		apperror.CodeUserNotFound,
		fmt.Sprintf("User with ID %d was not found in the database.", id),
		"User not found.",
	)
}
