package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexchen-dev/portfolio-backend/models"
)

type fakeSender struct {
	err   error
	calls int
	last  interface{}
}

func (f *fakeSender) Send(_ context.Context, params interface{}) error {
	f.calls++
	f.last = params
	return f.err
}

func newWizardFixture(sender *fakeSender) (*InquiryService, *SessionService) {
	sessions := NewSessionService(NewMemoryStateStore())
	return NewInquiryService(sessions, sender, nil), sessions
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// walkToFinalStep fills the draft and advances to Step 3.
func walkToFinalStep(t *testing.T, svc *InquiryService, sid string) {
	t.Helper()
	ctx := context.Background()

	_, err := svc.SaveDraft(ctx, sid, DraftPatch{ProjectType: strPtr("theme")})
	require.NoError(t, err)
	_, err = svc.Next(ctx, sid)
	require.NoError(t, err)
	_, err = svc.Next(ctx, sid)
	require.NoError(t, err)
	_, err = svc.SaveDraft(ctx, sid, DraftPatch{
		Name:    strPtr("Jordan Lee"),
		Email:   strPtr("jordan@example.com"),
		Message: strPtr("Need a storefront refresh."),
	})
	require.NoError(t, err)
}

func TestWizardStepGating(t *testing.T) {
	ctx := context.Background()

	t.Run("new session starts on step one with default budget", func(t *testing.T) {
		svc, _ := newWizardFixture(&fakeSender{})
		w, err := svc.Get(ctx, "sid-1")
		require.NoError(t, err)
		assert.Equal(t, models.StepProjectType, w.Step)
		assert.Equal(t, models.StatusDraft, w.Status)
		assert.Equal(t, models.BudgetDefault, w.Draft.Budget)
	})

	t.Run("step one requires a valid project type", func(t *testing.T) {
		svc, _ := newWizardFixture(&fakeSender{})
		_, err := svc.Next(ctx, "sid-1")
		assert.ErrorIs(t, err, ErrProjectTypeRequired)

		// An id from the other persona's list does not count
		_, err = svc.SaveDraft(ctx, "sid-1", DraftPatch{ProjectType: strPtr("wp-theme")})
		require.NoError(t, err)
		_, err = svc.Next(ctx, "sid-1")
		assert.ErrorIs(t, err, ErrProjectTypeRequired)

		_, err = svc.SaveDraft(ctx, "sid-1", DraftPatch{ProjectType: strPtr("theme")})
		require.NoError(t, err)
		w, err := svc.Next(ctx, "sid-1")
		require.NoError(t, err)
		assert.Equal(t, models.StepContact, w.Step)
	})

	t.Run("step two advances unconditionally", func(t *testing.T) {
		svc, _ := newWizardFixture(&fakeSender{})
		_, err := svc.SaveDraft(ctx, "sid-1", DraftPatch{ProjectType: strPtr("builder")})
		require.NoError(t, err)
		_, err = svc.Next(ctx, "sid-1")
		require.NoError(t, err)
		w, err := svc.Next(ctx, "sid-1")
		require.NoError(t, err)
		assert.Equal(t, models.StepDetails, w.Step)
	})

	t.Run("next on the final step is a no-op", func(t *testing.T) {
		svc, _ := newWizardFixture(&fakeSender{})
		walkToFinalStep(t, svc, "sid-1")
		w, err := svc.Next(ctx, "sid-1")
		require.NoError(t, err)
		assert.Equal(t, models.StepDetails, w.Step)
	})

	t.Run("back keeps the draft", func(t *testing.T) {
		svc, _ := newWizardFixture(&fakeSender{})
		walkToFinalStep(t, svc, "sid-1")

		w, err := svc.Back(ctx, "sid-1")
		require.NoError(t, err)
		assert.Equal(t, models.StepContact, w.Step)
		assert.Equal(t, "Jordan Lee", w.Draft.Name)

		// Back on step one stays put
		_, err = svc.Back(ctx, "sid-1")
		require.NoError(t, err)
		w, err = svc.Back(ctx, "sid-1")
		require.NoError(t, err)
		assert.Equal(t, models.StepProjectType, w.Step)
	})
}

func TestBudgetClamping(t *testing.T) {
	ctx := context.Background()
	svc, _ := newWizardFixture(&fakeSender{})

	w, err := svc.SaveDraft(ctx, "sid-1", DraftPatch{Budget: intPtr(50)})
	require.NoError(t, err)
	assert.Equal(t, models.BudgetMin, w.Draft.Budget)

	w, err = svc.SaveDraft(ctx, "sid-1", DraftPatch{Budget: intPtr(90000)})
	require.NoError(t, err)
	assert.Equal(t, models.BudgetMax, w.Draft.Budget)

	w, err = svc.SaveDraft(ctx, "sid-1", DraftPatch{Budget: intPtr(7500)})
	require.NoError(t, err)
	assert.Equal(t, 7500, w.Draft.Budget)
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("success clears the draft", func(t *testing.T) {
		sender := &fakeSender{}
		svc, _ := newWizardFixture(sender)
		walkToFinalStep(t, svc, "sid-1")

		w, err := svc.Submit(ctx, "sid-1")
		require.NoError(t, err)
		assert.Equal(t, models.StatusSubmitted, w.Status)
		assert.Empty(t, w.Draft.Name)
		assert.Empty(t, w.Draft.Message)
		assert.Equal(t, 1, sender.calls)
	})

	t.Run("payload carries the flat template keys", func(t *testing.T) {
		sender := &fakeSender{}
		svc, _ := newWizardFixture(sender)
		walkToFinalStep(t, svc, "sid-1")
		_, err := svc.SaveDraft(ctx, "sid-1", DraftPatch{
			Features: &[]string{"speed", "seo"},
			Timeline: strPtr("asap"),
		})
		require.NoError(t, err)

		_, err = svc.Submit(ctx, "sid-1")
		require.NoError(t, err)

		payload, ok := sender.last.(models.LeadPayload)
		require.True(t, ok)
		assert.Equal(t, "Jordan Lee", payload.FromName)
		assert.Equal(t, "jordan@example.com", payload.ReplyTo)
		assert.Equal(t, "Shopify", payload.Platform)
		assert.Equal(t, "theme", payload.ProjectTypeKey)
		assert.Equal(t, "Theme Build / Customization", payload.ProjectType)
		assert.Equal(t, "speed, seo", payload.Features)
	})

	t.Run("failure returns to step one and keeps the draft", func(t *testing.T) {
		sender := &fakeSender{err: errors.New("upstream 500")}
		svc, _ := newWizardFixture(sender)
		walkToFinalStep(t, svc, "sid-1")

		w, err := svc.Submit(ctx, "sid-1")
		require.NoError(t, err)
		assert.Equal(t, models.StatusFailed, w.Status)
		assert.Equal(t, models.StepProjectType, w.Step)
		assert.Equal(t, "Jordan Lee", w.Draft.Name)
		assert.Equal(t, "Need a storefront refresh.", w.Draft.Message)
		assert.NotEmpty(t, w.FailReason)
	})

	t.Run("missing credentials fail before any send", func(t *testing.T) {
		sender := &fakeSender{err: ErrEmailJSNotConfigured}
		svc, _ := newWizardFixture(sender)
		walkToFinalStep(t, svc, "sid-1")

		w, err := svc.Submit(ctx, "sid-1")
		require.NoError(t, err)
		assert.Equal(t, models.StatusFailed, w.Status)
		assert.Equal(t, "lead delivery is not configured", w.FailReason)
		assert.Equal(t, "Jordan Lee", w.Draft.Name)
	})

	t.Run("submit off the final step is rejected", func(t *testing.T) {
		sender := &fakeSender{}
		svc, _ := newWizardFixture(sender)
		_, err := svc.Submit(ctx, "sid-1")
		assert.ErrorIs(t, err, ErrNotOnFinalStep)
		assert.Zero(t, sender.calls)
	})

	t.Run("missing contact fields are rejected", func(t *testing.T) {
		sender := &fakeSender{}
		svc, _ := newWizardFixture(sender)
		walkToFinalStep(t, svc, "sid-1")
		_, err := svc.SaveDraft(ctx, "sid-1", DraftPatch{Email: strPtr("  ")})
		require.NoError(t, err)

		_, err = svc.Submit(ctx, "sid-1")
		assert.ErrorIs(t, err, ErrContactRequired)
		assert.Zero(t, sender.calls)
	})

	t.Run("only one submission can be in flight", func(t *testing.T) {
		sender := &fakeSender{}
		svc, sessions := newWizardFixture(sender)
		walkToFinalStep(t, svc, "sid-1")

		_, err := sessions.Update(ctx, "sid-1", func(st *models.SessionState) error {
			st.Wizard.Status = models.StatusSubmitting
			return nil
		})
		require.NoError(t, err)

		_, err = svc.Submit(ctx, "sid-1")
		assert.ErrorIs(t, err, ErrSubmitInFlight)
		_, err = svc.SaveDraft(ctx, "sid-1", DraftPatch{Name: strPtr("x")})
		assert.ErrorIs(t, err, ErrSubmitInFlight)
		assert.Zero(t, sender.calls)
	})
}
