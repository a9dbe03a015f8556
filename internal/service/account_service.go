package service

import (
	"context"
	"fmt"
	"time"

	"authapi/internal/apperror"
	"authapi/internal/auth"
	"authapi/internal/model"
	"authapi/internal/repository"
)

// AccountService handles registration and the session lifecycle.
type AccountService interface {
	Register(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) (token string, err error)
	Logout(ctx context.Context, token string) error
}

type accountService struct {
	users  repository.UserRepository
	tokens repository.TokenRepository
	cipher *auth.Cipher
	jwt    *auth.JWTService
}

// NewAccountService creates an account service.
func NewAccountService(users repository.UserRepository, tokens repository.TokenRepository, cipher *auth.Cipher, jwtService *auth.JWTService) AccountService {
	return &accountService{
		users:  users,
		tokens: tokens,
		cipher: cipher,
		jwt:    jwtService,
	}
}

// Register creates a regular (non-admin) user with a hashed password.
func (s *accountService) Register(ctx context.Context, email, password string) error {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("check user existence: %w", err)
	}
	if existing != nil {
		return apperror.NewConflict(
			apperror.CodeUserExists,
			fmt.Sprintf("User with email %s already exists.", email),
			"User already exists!",
		)
	}

	hash, err := s.cipher.Hash(password)
	if err != nil {
		return err
	}

	if err := s.users.Create(ctx, &model.User{
		Email:    email,
		Password: hash,
		IsAdmin:  false,
	}); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Login verifies credentials and issues a session. The returned token
// carries the Bearer prefix and is stored verbatim as the session row key.
// An unknown email and a wrong password produce the same error.
func (s *accountService) Login(ctx context.Context, email, password string) (string, error) {
	invalidCredentials := apperror.NewUnauthorized(
		apperror.CodeInvalidCredentials,
		"An user with the provided email or password does not exist.",
		"Authentication failed.",
	)

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return "", invalidCredentials
	}

	matches, err := s.cipher.Compare(password, user.Password)
	if err != nil {
		return "", err
	}
	if !matches {
		return "", invalidCredentials
	}

	signed, err := s.jwt.Sign(user.ID)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	token := "Bearer " + signed

	if err := s.tokens.Create(ctx, &model.UserToken{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.jwt.Expiry()),
	}); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}

	return token, nil
}

// Logout revokes the session behind token by aging its row out. Idempotent:
// revoking an already-expired or unknown session is not an error.
func (s *accountService) Logout(ctx context.Context, token string) error {
	row, err := s.tokens.FindByToken(ctx, token)
	if err != nil {
		return fmt.Errorf("find session: %w", err)
	}
	if row == nil {
		return nil
	}

	if err := s.tokens.Update(ctx, row.ID, map[string]interface{}{
		"expires_at": time.Now(),
	}); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}
