package services

import (
	"context"
	"errors"
	"sync"

	"github.com/alexchen-dev/portfolio-backend/models"
	"github.com/alexchen-dev/portfolio-backend/reveal"
)

// SessionService is the single writer for session state. Every mutation
// goes through Update, which holds a per-session lock across the
// read-modify-write, so concurrent requests from one browser cannot
// interleave partial states.
type SessionService struct {
	store StateStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewSessionService creates a session service over the given store.
func NewSessionService(store StateStore) *SessionService {
	return &SessionService{
		store: store,
		locks: make(map[string]*sync.Mutex),
	}
}

func (s *SessionService) lockFor(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[sessionID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[sessionID] = l
	}
	return l
}

// defaultState is what a brand new session looks like.
func defaultState() models.SessionState {
	return models.SessionState{
		Platform: models.PlatformShopify,
		Visible:  reveal.DefaultPageSize,
		Wizard:   models.NewWizardState(),
	}
}

// Load returns the session's state, or the default state when the
// session is new or expired.
func (s *SessionService) Load(ctx context.Context, sessionID string) (models.SessionState, error) {
	state, err := s.store.Get(ctx, sessionID)
	if errors.Is(err, ErrSessionNotFound) {
		return defaultState(), nil
	}
	if err != nil {
		return models.SessionState{}, err
	}
	return state, nil
}

// Update applies fn to the session's state under the session lock and
// persists the result. fn returning an error aborts without saving.
func (s *SessionService) Update(ctx context.Context, sessionID string, fn func(*models.SessionState) error) (models.SessionState, error) {
	l := s.lockFor(sessionID)
	l.Lock()
	defer l.Unlock()

	state, err := s.Load(ctx, sessionID)
	if err != nil {
		return models.SessionState{}, err
	}
	if err := fn(&state); err != nil {
		return models.SessionState{}, err
	}
	if err := s.store.Save(ctx, sessionID, state); err != nil {
		return models.SessionState{}, err
	}
	return state, nil
}
