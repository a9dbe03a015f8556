package service

import (
	"context"
	"fmt"

	"authapi/internal/apperror"
	"authapi/internal/auth"
	"authapi/internal/repository"
)

// UserService exposes self-service operations on the authenticated user.
type UserService interface {
	Update(ctx context.Context, id uint, email, password *string) error
	Delete(ctx context.Context, id uint) error
}

type userService struct {
	users  repository.UserRepository
	cipher *auth.Cipher
}

// NewUserService creates a user service.
func NewUserService(users repository.UserRepository, cipher *auth.Cipher) UserService {
	return &userService{users: users, cipher: cipher}
}

// Update changes the user's email and/or password. Nil fields are left
// untouched. The email-uniqueness check runs before any write.
func (s *userService) Update(ctx context.Context, id uint, email, password *string) error {
	fields := map[string]interface{}{}

	if email != nil {
		if err := checkEmailAvailable(ctx, s.users, *email); err != nil {
			return err
		}
		fields["email"] = *email
	}

	if password != nil {
		hash, err := s.cipher.Hash(*password)
		if err != nil {
			return err
		}
		fields["password"] = hash
	}

	if err := s.users.Update(ctx, id, fields); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete removes the user's own record.
func (s *userService) Delete(ctx context.Context, id uint) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// checkEmailAvailable fails with a conflict when email is already
// registered, shared by the self-service and admin update paths.
func checkEmailAvailable(ctx context.Context, users repository.UserRepository, email string) error {
	existing, err := users.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return apperror.NewConflict(
			apperror.CodeUserExists,
			fmt.Sprintf("Email address %s is already registered!", email),
			"Email already registered.",
		)
	}
	return nil
}
