// Package auth implements the analyst login workflow. It is the only
// component that writes the persisted token store; the API client and every
// other service just read the current token through the store.
package auth

import (
	"context"
	"fmt"

	"amlsentinel/internal/apiclient"
	"amlsentinel/internal/domain/entity"
)

// TokenStore is the persistence surface the auth workflow writes to.
// Implemented by *tokenstore.Store.
type TokenStore interface {
	Save(token string) error
	Clear() error
}

// Service wraps the auth endpoints and token persistence.
type Service struct {
	client *apiclient.Client
	store  TokenStore
}

// NewService creates an auth service over the given client and token store.
func NewService(client *apiclient.Client, store TokenStore) *Service {
	return &Service{client: client, store: store}
}

// loginResponse mirrors the backend's login payload.
type loginResponse struct {
	Token   string             `json:"token"`
	Analyst entity.AnalystInfo `json:"analyst"`
}

// Login authenticates the analyst and persists the issued token. On success
// the analyst profile is returned; any backend rejection (e.g. "Invalid
// username or password") surfaces verbatim.
func (s *Service) Login(ctx context.Context, username, password string) (*entity.AnalystInfo, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required")
	}

	body := map[string]string{"username": username, "password": password}
	var resp loginResponse
	if err := s.client.Post(ctx, "/auth/login", body, &resp); err != nil {
		return nil, err
	}

	if err := s.store.Save(resp.Token); err != nil {
		return nil, fmt.Errorf("persist token: %w", err)
	}
	return &resp.Analyst, nil
}

// Logout revokes the current token server-side and clears the local store.
// The local store is cleared even when the backend call fails, so a dead
// backend cannot leave a revocable credential behind.
func (s *Service) Logout(ctx context.Context) error {
	callErr := s.client.Post(ctx, "/auth/logout", nil, nil)
	if err := s.store.Clear(); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return callErr
}

// Me returns the profile of the currently authenticated analyst.
func (s *Service) Me(ctx context.Context) (*entity.AnalystInfo, error) {
	var analyst entity.AnalystInfo
	if err := s.client.Get(ctx, "/auth/me", &analyst); err != nil {
		return nil, err
	}
	return &analyst, nil
}
