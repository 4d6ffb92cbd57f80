// Package tokenstore persists the analyst's auth token in a local JSON file
// under the fixed "auth_token" key.
//
// The store is owned by the auth workflow: login writes it, logout clears
// it. The API client only ever reads it, through the TokenProvider shape of
// the Token method, so the client stays free of hidden global state.
package tokenstore

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"amlsentinel/pkg/config"
)

// tokenKey is the fixed key the token is stored under.
const tokenKey = "auth_token"

// Store reads and writes the persisted auth token.
type Store struct {
	path string
	mu   sync.Mutex
}

// New creates a Store backed by the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the token file location: AML_TOKEN_FILE if set,
// otherwise <user config dir>/amlsentinel/token.json.
func DefaultPath() (string, error) {
	if path := config.GetEnvString("AML_TOKEN_FILE", ""); path != "" {
		return path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "amlsentinel", "token.json"), nil
}

// Token returns the persisted token, or an empty string when no token is
// stored or the file cannot be read. It satisfies the API client's
// TokenProvider interface, so requests made without a prior login simply go
// out unauthenticated.
//
// If the stored token is a JWT whose expiry has passed, a warning is logged
// but the token is still returned; the backend is the authority on token
// validity.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}

	var payload map[string]string
	if err := json.Unmarshal(data, &payload); err != nil {
		slog.Warn("token file is corrupt, ignoring",
			slog.String("path", s.path),
			slog.Any("error", err))
		return ""
	}

	token := payload[tokenKey]
	if token == "" {
		return ""
	}

	warnIfExpired(token)
	return token
}

// Save persists the token, creating the parent directory if needed. The
// file is written with mode 0600 since it carries a credential.
func (s *Store) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}

	data, err := json.Marshal(map[string]string{tokenKey: token})
	if err != nil {
		return fmt.Errorf("marshal token payload: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

// Clear removes the persisted token. Clearing an already-empty store is not
// an error.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}

// warnIfExpired inspects a JWT's exp claim without verifying the signature;
// verification is the backend's job.
func warnIfExpired(token string) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		// Not a JWT; nothing to inspect.
		return
	}
	expiry, err := parsed.Claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return
	}
	if time.Now().After(expiry.Time) {
		slog.Warn("stored auth token is expired, log in again",
			slog.Time("expired_at", expiry.Time))
	}
}
