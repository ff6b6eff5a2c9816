package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/alexchen-dev/portfolio-backend/content"
	"github.com/alexchen-dev/portfolio-backend/models"
)

// Wizard transition errors surfaced to the controller as 4xx responses.
var (
	ErrProjectTypeRequired = errors.New("select a project type before continuing")
	ErrContactRequired     = errors.New("name, email, and message are required")
	ErrSubmitInFlight      = errors.New("a submission is already in progress")
	ErrNotOnFinalStep      = errors.New("complete all steps before submitting")
)

// LeadSender delivers a finished lead payload. EmailJSClient is the
// production implementation.
type LeadSender interface {
	Send(ctx context.Context, params interface{}) error
}

// InquiryService runs the three-step intake wizard for each session:
// draft accumulation, step gating, and the submit lifecycle with
// at most one in-flight delivery per session.
type InquiryService struct {
	sessions *SessionService
	sender   LeadSender
	db       *gorm.DB
}

// NewInquiryService wires the wizard over session storage, a lead
// sender, and an optional persistence handle. A nil db skips lead
// persistence, which tests use.
func NewInquiryService(sessions *SessionService, sender LeadSender, db *gorm.DB) *InquiryService {
	return &InquiryService{sessions: sessions, sender: sender, db: db}
}

// Get returns the session's wizard state.
func (s *InquiryService) Get(ctx context.Context, sessionID string) (models.WizardState, error) {
	state, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return models.WizardState{}, err
	}
	return state.Wizard, nil
}

// DraftPatch is a partial draft update. Nil fields are left untouched,
// so clients can save one step's inputs without resending the rest.
type DraftPatch struct {
	ProjectType  *string   `json:"project_type"`
	Name         *string   `json:"name"`
	Email        *string   `json:"email"`
	Company      *string   `json:"company"`
	Timeline     *string   `json:"timeline"`
	Budget       *int      `json:"budget"`
	ProjectTitle *string   `json:"project_title"`
	Message      *string   `json:"message"`
	Features     *[]string `json:"features"`
}

// SaveDraft merges a patch into the session's draft. Budget values are
// clamped into range rather than rejected. Draft edits are refused only
// while a submission is in flight.
func (s *InquiryService) SaveDraft(ctx context.Context, sessionID string, patch DraftPatch) (models.WizardState, error) {
	state, err := s.sessions.Update(ctx, sessionID, func(st *models.SessionState) error {
		if st.Wizard.Status == models.StatusSubmitting {
			return ErrSubmitInFlight
		}
		d := &st.Wizard.Draft
		if patch.ProjectType != nil {
			d.ProjectType = *patch.ProjectType
		}
		if patch.Name != nil {
			d.Name = strings.TrimSpace(*patch.Name)
		}
		if patch.Email != nil {
			d.Email = strings.TrimSpace(*patch.Email)
		}
		if patch.Company != nil {
			d.Company = strings.TrimSpace(*patch.Company)
		}
		if patch.Timeline != nil {
			d.Timeline = *patch.Timeline
		}
		if patch.Budget != nil {
			d.Budget = models.ClampBudget(*patch.Budget)
		}
		if patch.ProjectTitle != nil {
			d.ProjectTitle = strings.TrimSpace(*patch.ProjectTitle)
		}
		if patch.Message != nil {
			d.Message = *patch.Message
		}
		if patch.Features != nil {
			d.Features = *patch.Features
		}
		return nil
	})
	if err != nil {
		return models.WizardState{}, err
	}
	return state.Wizard, nil
}

// Next advances the wizard one step. Step 1 requires a project type
// that exists in the current platform's option list; Step 2 advances
// unconditionally. Calling Next on the final step is a no-op.
func (s *InquiryService) Next(ctx context.Context, sessionID string) (models.WizardState, error) {
	state, err := s.sessions.Update(ctx, sessionID, func(st *models.SessionState) error {
		w := &st.Wizard
		if w.Status == models.StatusSubmitting {
			return ErrSubmitInFlight
		}
		switch w.Step {
		case models.StepProjectType:
			if _, ok := content.ProjectOption(st.Platform, w.Draft.ProjectType); !ok {
				return ErrProjectTypeRequired
			}
			w.Step = models.StepContact
		case models.StepContact:
			w.Step = models.StepDetails
		}
		return nil
	})
	if err != nil {
		return models.WizardState{}, err
	}
	return state.Wizard, nil
}

// Back moves the wizard one step toward Step 1, keeping the draft.
func (s *InquiryService) Back(ctx context.Context, sessionID string) (models.WizardState, error) {
	state, err := s.sessions.Update(ctx, sessionID, func(st *models.SessionState) error {
		if st.Wizard.Status == models.StatusSubmitting {
			return ErrSubmitInFlight
		}
		if st.Wizard.Step > models.StepProjectType {
			st.Wizard.Step--
		}
		return nil
	})
	if err != nil {
		return models.WizardState{}, err
	}
	return state.Wizard, nil
}

// Submit validates the final step, marks the wizard submitting, and
// delivers the lead. A successful delivery clears the draft; a failed
// one returns the wizard to Step 1 with the draft intact so nothing
// typed is lost.
func (s *InquiryService) Submit(ctx context.Context, sessionID string) (models.WizardState, error) {
	// Phase 1: validate and claim the in-flight slot under the
	// session lock. Only one submission can hold it at a time.
	claimed, err := s.sessions.Update(ctx, sessionID, func(st *models.SessionState) error {
		w := &st.Wizard
		if w.Status == models.StatusSubmitting {
			return ErrSubmitInFlight
		}
		if w.Step != models.StepDetails {
			return ErrNotOnFinalStep
		}
		d := w.Draft
		if strings.TrimSpace(d.Name) == "" || strings.TrimSpace(d.Email) == "" || strings.TrimSpace(d.Message) == "" {
			return ErrContactRequired
		}
		w.Status = models.StatusSubmitting
		w.FailReason = ""
		return nil
	})
	if err != nil {
		return models.WizardState{}, err
	}

	platform := claimed.Platform
	draft := claimed.Wizard.Draft
	payload := buildLeadPayload(platform, draft)

	sendErr := s.sender.Send(ctx, payload)
	s.persistLead(ctx, payload, sendErr)

	// Phase 2: record the outcome.
	state, err := s.sessions.Update(ctx, sessionID, func(st *models.SessionState) error {
		w := &st.Wizard
		if sendErr != nil {
			w.Status = models.StatusFailed
			w.Step = models.StepProjectType
			w.FailReason = failReason(sendErr)
			return nil
		}
		*w = models.NewWizardState()
		w.Status = models.StatusSubmitted
		return nil
	})
	if err != nil {
		return models.WizardState{}, err
	}
	return state.Wizard, nil
}

func failReason(err error) string {
	if errors.Is(err, ErrEmailJSNotConfigured) {
		return "lead delivery is not configured"
	}
	return "delivery failed, please try again"
}

// buildLeadPayload flattens the draft into the delivery template
// parameters. The project type key is resolved to its display label
// from the platform's option list.
func buildLeadPayload(platform models.Platform, d models.InquiryDraft) models.LeadPayload {
	label := d.ProjectType
	if opt, ok := content.ProjectOption(platform, d.ProjectType); ok {
		label = opt.Title
	}
	return models.LeadPayload{
		FromName:       d.Name,
		FromEmail:      d.Email,
		ReplyTo:        d.Email,
		Platform:       platform.Label(),
		ProjectType:    label,
		ProjectTypeKey: d.ProjectType,
		Company:        d.Company,
		Timeline:       d.Timeline,
		Budget:         models.ClampBudget(d.Budget),
		ProjectTitle:   d.ProjectTitle,
		Message:        d.Message,
		Features:       strings.Join(d.Features, ", "),
	}
}

// persistLead records the lead row regardless of delivery outcome, so
// failed deliveries are still recoverable from the admin surface.
func (s *InquiryService) persistLead(ctx context.Context, p models.LeadPayload, sendErr error) {
	if s.db == nil {
		return
	}
	features, _ := json.Marshal(strings.Split(p.Features, ", "))
	if p.Features == "" {
		features = []byte("[]")
	}
	row := models.Inquiry{
		Name:             p.FromName,
		Email:            p.FromEmail,
		Company:          p.Company,
		Platform:         strings.ToLower(p.Platform),
		ProjectType:      p.ProjectTypeKey,
		ProjectTypeLabel: p.ProjectType,
		Timeline:         p.Timeline,
		Budget:           p.Budget,
		ProjectTitle:     p.ProjectTitle,
		Message:          p.Message,
		Features:         datatypes.JSON(features),
		Delivered:        sendErr == nil,
	}
	if sendErr != nil {
		row.DeliveryError = sendErr.Error()
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		log.Printf("[inquiry] failed to persist lead: %v", err)
	}
}
