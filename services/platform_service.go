package services

import (
	"context"
	"log"
	"time"

	"github.com/alexchen-dev/portfolio-backend/models"
	"github.com/alexchen-dev/portfolio-backend/reveal"
)

// PlatformSubscriber reacts to a committed platform change by mutating
// the session state it receives. Subscribers run inside the session
// lock, after the platform field has already been updated.
type PlatformSubscriber func(state *models.SessionState)

// PlatformService resolves and switches the session's platform persona.
// Resolution precedence: explicit URL query, then the stored session
// value, then the Shopify default. Invalid values are skipped silently
// at each stage.
type PlatformService struct {
	sessions    *SessionService
	subscribers []PlatformSubscriber
}

// NewPlatformService creates a platform service with the default reset
// subscribers wired: reveal window, filter identity, and the intake
// wizard all reset when the persona changes.
func NewPlatformService(sessions *SessionService) *PlatformService {
	s := &PlatformService{sessions: sessions}
	s.Subscribe(resetReveal)
	s.Subscribe(resetWizard)
	return s
}

// Subscribe registers a reset hook. Hooks run in registration order on
// every committed platform change, never on a no-op switch.
func (s *PlatformService) Subscribe(fn PlatformSubscriber) {
	s.subscribers = append(s.subscribers, fn)
}

func resetReveal(state *models.SessionState) {
	state.FilterKey = ""
	state.Visible = reveal.DefaultPageSize
	state.LastGrowAt = time.Time{}
}

func resetWizard(state *models.SessionState) {
	state.Wizard = models.NewWizardState()
}

// Resolve determines the effective platform for a request.
// urlValue is the raw ?platform= query value, empty when absent. When
// the query names a valid platform that differs from the stored one,
// the switch is committed to the session.
func (s *PlatformService) Resolve(ctx context.Context, sessionID, urlValue string) (models.Platform, error) {
	if p, ok := models.ParsePlatform(urlValue); ok {
		state, err := s.Set(ctx, sessionID, p)
		if err != nil {
			return "", err
		}
		return state.Platform, nil
	}

	state, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if state.Platform != models.PlatformShopify && state.Platform != models.PlatformWordPress {
		return models.PlatformShopify, nil
	}
	return state.Platform, nil
}

// Set switches the session to the given platform. Setting the platform
// the session already has is a no-op: no save, no subscriber runs.
func (s *PlatformService) Set(ctx context.Context, sessionID string, platform models.Platform) (models.SessionState, error) {
	current, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return models.SessionState{}, err
	}
	if current.Platform == platform {
		return current, nil
	}

	state, err := s.sessions.Update(ctx, sessionID, func(st *models.SessionState) error {
		if st.Platform == platform {
			return nil
		}
		st.Platform = platform
		for _, fn := range s.subscribers {
			fn(st)
		}
		return nil
	})
	if err != nil {
		return models.SessionState{}, err
	}
	log.Printf("[platform] session %s switched to %s", sessionID, platform)
	return state, nil
}

// Toggle switches the session to the other platform and returns the
// resulting state.
func (s *PlatformService) Toggle(ctx context.Context, sessionID string) (models.SessionState, error) {
	current, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return models.SessionState{}, err
	}
	return s.Set(ctx, sessionID, current.Platform.Other())
}
