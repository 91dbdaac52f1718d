package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"food-admin/admin-console/internal/storage"

	"github.com/golang-jwt/jwt/v5"
)

var ErrEmptyToken = errors.New("login response did not include a token")

// Store is the persisted client state behind a session.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

// Session owns the admin's token and display name. Writes go through to the
// store before the in-memory copy changes.
type Session struct {
	mu    sync.RWMutex
	store Store
	token string
	name  string
}

func New(store Store) *Session {
	return &Session{store: store}
}

// Init loads any session persisted by a previous run.
func (s *Session) Init(ctx context.Context) error {
	token, err := lookup(ctx, s.store, storage.KeyToken)
	if err != nil {
		return fmt.Errorf("load session token: %w", err)
	}
	name, err := lookup(ctx, s.store, storage.KeyName)
	if err != nil {
		return fmt.Errorf("load session name: %w", err)
	}

	s.mu.Lock()
	s.token, s.name = token, name
	s.mu.Unlock()
	return nil
}

func (s *Session) Begin(ctx context.Context, token, name string) error {
	if token == "" {
		return ErrEmptyToken
	}
	if err := s.store.Set(ctx, storage.KeyToken, token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	if name != "" {
		if err := s.store.Set(ctx, storage.KeyName, name); err != nil {
			return fmt.Errorf("persist name: %w", err)
		}
	} else if err := s.store.Delete(ctx, storage.KeyName); err != nil {
		return fmt.Errorf("clear stale name: %w", err)
	}

	s.mu.Lock()
	s.token, s.name = token, name
	s.mu.Unlock()
	return nil
}

func (s *Session) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, storage.KeyToken, storage.KeyName); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.mu.Lock()
	s.token, s.name = "", ""
	s.mu.Unlock()
	return nil
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// Expiry reads the exp claim without verifying the signature; the console
// never holds the signing key. ok is false for opaque tokens.
func (s *Session) Expiry() (time.Time, bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func lookup(ctx context.Context, store Store, key string) (string, error) {
	value, err := store.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return "", nil
	}
	return value, err
}
