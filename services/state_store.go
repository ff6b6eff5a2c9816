package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/alexchen-dev/portfolio-backend/config"
	"github.com/alexchen-dev/portfolio-backend/models"
)

// ErrSessionNotFound is returned when no state exists for a session id.
var ErrSessionNotFound = errors.New("session state not found")

// sessionTTL is how long an idle anonymous session survives.
const sessionTTL = 7 * 24 * time.Hour

// StateStore persists per-session state. The Redis implementation backs
// production; the memory implementation backs tests. All writers go
// through SessionService, which serializes writes per session.
type StateStore interface {
	Get(ctx context.Context, sessionID string) (models.SessionState, error)
	Save(ctx context.Context, sessionID string, state models.SessionState) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisStateStore stores each session as one JSON value.
type RedisStateStore struct {
	client *redis.Client
}

// NewRedisStateStore builds a store over the shared Redis client.
func NewRedisStateStore() *RedisStateStore {
	return &RedisStateStore{client: config.RedisClient}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func (s *RedisStateStore) Get(ctx context.Context, sessionID string) (models.SessionState, error) {
	var state models.SessionState
	raw, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return state, ErrSessionNotFound
	}
	if err != nil {
		return state, err
	}
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return state, err
	}
	return state, nil
}

func (s *RedisStateStore) Save(ctx context.Context, sessionID string, state models.SessionState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(sessionID), raw, sessionTTL).Err()
}

func (s *RedisStateStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKey(sessionID)).Err()
}

// MemoryStateStore is an in-process StateStore for tests.
type MemoryStateStore struct {
	mu     sync.RWMutex
	states map[string]models.SessionState
}

func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{states: make(map[string]models.SessionState)}
}

func (s *MemoryStateStore) Get(_ context.Context, sessionID string) (models.SessionState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.states[sessionID]
	if !ok {
		return models.SessionState{}, ErrSessionNotFound
	}
	return state, nil
}

func (s *MemoryStateStore) Save(_ context.Context, sessionID string, state models.SessionState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[sessionID] = state
	return nil
}

func (s *MemoryStateStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, sessionID)
	return nil
}
