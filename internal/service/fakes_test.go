package service

import (
	"context"
	"sync"
	"time"

	"authapi/internal/model"
)

// In-memory repository fakes backing the service tests.

type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[uint]*model.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*model.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user.ID = f.nextID
	f.nextID++
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uint) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	users := make([]model.User, 0, len(f.users))
	for _, user := range f.users {
		users = append(users, model.User{ID: user.ID, Email: user.Email, IsAdmin: user.IsAdmin})
	}
	return users, nil
}

func (f *fakeUserRepo) Update(_ context.Context, id uint, fields map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil
	}
	if email, ok := fields["email"].(string); ok {
		user.Email = email
	}
	if password, ok := fields["password"].(string); ok {
		user.Password = password
	}
	if isAdmin, ok := fields["is_admin"].(bool); ok {
		user.IsAdmin = isAdmin
	}
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
	return nil
}

type fakeTokenRepo struct {
	mu     sync.Mutex
	rows   map[uint]*model.UserToken
	nextID uint
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{rows: map[uint]*model.UserToken{}, nextID: 1}
}

func (f *fakeTokenRepo) Create(_ context.Context, token *model.UserToken) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	token.ID = f.nextID
	f.nextID++
	stored := *token
	f.rows[token.ID] = &stored
	return nil
}

// FindByToken mirrors the store's latest-expiry-first tie-break.
func (f *fakeTokenRepo) FindByToken(_ context.Context, token string) (*model.UserToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var best *model.UserToken
	for _, row := range f.rows {
		if row.Token != token {
			continue
		}
		if best == nil || row.ExpiresAt.After(best.ExpiresAt) {
			best = row
		}
	}
	if best == nil {
		return nil, nil
	}
	copied := *best
	return &copied, nil
}

func (f *fakeTokenRepo) Update(_ context.Context, id uint, fields map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return nil
	}
	if expiresAt, ok := fields["expires_at"].(time.Time); ok {
		row.ExpiresAt = expiresAt
	}
	return nil
}
