package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexchen-dev/portfolio-backend/models"
)

func newPlatformFixture() (*PlatformService, *SessionService) {
	sessions := NewSessionService(NewMemoryStateStore())
	return NewPlatformService(sessions), sessions
}

func TestPlatformResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to shopify for a new session", func(t *testing.T) {
		svc, _ := newPlatformFixture()
		p, err := svc.Resolve(ctx, "sid-1", "")
		require.NoError(t, err)
		assert.Equal(t, models.PlatformShopify, p)
	})

	t.Run("url value wins over the stored session", func(t *testing.T) {
		svc, _ := newPlatformFixture()
		_, err := svc.Set(ctx, "sid-1", models.PlatformWordPress)
		require.NoError(t, err)

		p, err := svc.Resolve(ctx, "sid-1", "shopify")
		require.NoError(t, err)
		assert.Equal(t, models.PlatformShopify, p)

		// And the switch is committed
		p, err = svc.Resolve(ctx, "sid-1", "")
		require.NoError(t, err)
		assert.Equal(t, models.PlatformShopify, p)
	})

	t.Run("invalid url values are silently skipped", func(t *testing.T) {
		svc, _ := newPlatformFixture()
		_, err := svc.Set(ctx, "sid-1", models.PlatformWordPress)
		require.NoError(t, err)

		for _, raw := range []string{"wix", "all", "SHOPIFY!", " "} {
			p, err := svc.Resolve(ctx, "sid-1", raw)
			require.NoError(t, err)
			assert.Equal(t, models.PlatformWordPress, p, "raw value %q", raw)
		}
	})

	t.Run("parse accepts case and whitespace variants", func(t *testing.T) {
		svc, _ := newPlatformFixture()
		p, err := svc.Resolve(ctx, "sid-1", "  WordPress ")
		require.NoError(t, err)
		assert.Equal(t, models.PlatformWordPress, p)
	})
}

func TestPlatformSet(t *testing.T) {
	ctx := context.Background()

	t.Run("setting the current platform is a no-op", func(t *testing.T) {
		svc, sessions := newPlatformFixture()

		// Build up some session state to observe
		_, err := sessions.Update(ctx, "sid-1", func(st *models.SessionState) error {
			st.Visible = 12
			st.FilterKey = "shopify|q=liquid|c=|i=|s="
			return nil
		})
		require.NoError(t, err)

		state, err := svc.Set(ctx, "sid-1", models.PlatformShopify)
		require.NoError(t, err)
		assert.Equal(t, 12, state.Visible)
		assert.Equal(t, "shopify|q=liquid|c=|i=|s=", state.FilterKey)
	})

	t.Run("a real switch resets window, filters, and wizard", func(t *testing.T) {
		svc, sessions := newPlatformFixture()

		_, err := sessions.Update(ctx, "sid-1", func(st *models.SessionState) error {
			st.Visible = 15
			st.LastGrowAt = time.Now()
			st.FilterKey = "shopify|q=liquid|c=|i=|s="
			st.Wizard.Step = models.StepDetails
			st.Wizard.Draft.Name = "Jordan Lee"
			return nil
		})
		require.NoError(t, err)

		state, err := svc.Set(ctx, "sid-1", models.PlatformWordPress)
		require.NoError(t, err)
		assert.Equal(t, models.PlatformWordPress, state.Platform)
		assert.Equal(t, 6, state.Visible)
		assert.True(t, state.LastGrowAt.IsZero())
		assert.Empty(t, state.FilterKey)
		assert.Equal(t, models.StepProjectType, state.Wizard.Step)
		assert.Empty(t, state.Wizard.Draft.Name)
	})

	t.Run("toggle flips between the two personas", func(t *testing.T) {
		svc, _ := newPlatformFixture()

		state, err := svc.Toggle(ctx, "sid-1")
		require.NoError(t, err)
		assert.Equal(t, models.PlatformWordPress, state.Platform)

		state, err = svc.Toggle(ctx, "sid-1")
		require.NoError(t, err)
		assert.Equal(t, models.PlatformShopify, state.Platform)
	})

	t.Run("custom subscribers run on commit only", func(t *testing.T) {
		svc, _ := newPlatformFixture()
		var fired int
		svc.Subscribe(func(st *models.SessionState) { fired++ })

		_, err := svc.Set(ctx, "sid-1", models.PlatformShopify)
		require.NoError(t, err)
		assert.Zero(t, fired)

		_, err = svc.Set(ctx, "sid-1", models.PlatformWordPress)
		require.NoError(t, err)
		assert.Equal(t, 1, fired)
	})

	t.Run("sessions are isolated from each other", func(t *testing.T) {
		svc, _ := newPlatformFixture()

		_, err := svc.Set(ctx, "sid-1", models.PlatformWordPress)
		require.NoError(t, err)

		p, err := svc.Resolve(ctx, "sid-2", "")
		require.NoError(t, err)
		assert.Equal(t, models.PlatformShopify, p)
	})
}
