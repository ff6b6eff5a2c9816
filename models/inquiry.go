package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Budget bounds for the Step 2 slider. Values outside the range are
// clamped, never rejected.
const (
	BudgetMin     = 200
	BudgetMax     = 15000
	BudgetDefault = 5000
)

// Wizard steps. The step only advances when the current step's
// required fields are present.
const (
	StepProjectType = 1
	StepContact     = 2
	StepDetails     = 3
)

// InquiryStatus is the lifecycle state of the session's intake wizard.
type InquiryStatus string

const (
	StatusDraft      InquiryStatus = "draft"
	StatusSubmitting InquiryStatus = "submitting"
	StatusSubmitted  InquiryStatus = "submitted"
	StatusFailed     InquiryStatus = "failed"
)

// InquiryDraft accumulates across the three wizard steps.
type InquiryDraft struct {
	ProjectType  string   `json:"project_type"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Company      string   `json:"company"`
	Timeline     string   `json:"timeline"`
	Budget       int      `json:"budget"`
	ProjectTitle string   `json:"project_title"`
	Message      string   `json:"message"`
	Features     []string `json:"features"`
}

// NewInquiryDraft returns an empty draft with the default budget.
func NewInquiryDraft() InquiryDraft {
	return InquiryDraft{Budget: BudgetDefault, Features: []string{}}
}

// ClampBudget forces the budget into [BudgetMin, BudgetMax].
func ClampBudget(budget int) int {
	if budget < BudgetMin {
		return BudgetMin
	}
	if budget > BudgetMax {
		return BudgetMax
	}
	return budget
}

// WizardState is the session-scoped wizard position. FailReason is set
// only while Status is StatusFailed.
type WizardState struct {
	Step       int           `json:"step"`
	Status     InquiryStatus `json:"status"`
	Draft      InquiryDraft  `json:"draft"`
	FailReason string        `json:"fail_reason,omitempty"`
}

// NewWizardState returns the initial wizard state: Step 1, empty draft.
func NewWizardState() WizardState {
	return WizardState{Step: StepProjectType, Status: StatusDraft, Draft: NewInquiryDraft()}
}

// LeadPayload is the flat key/value body sent to the delivery API and
// mirrored into the persisted inquiry row.
type LeadPayload struct {
	FromName       string `json:"from_name"`
	FromEmail      string `json:"from_email"`
	ReplyTo        string `json:"reply_to"`
	Platform       string `json:"platform"`
	ProjectType    string `json:"project_type"`
	ProjectTypeKey string `json:"project_type_key"`
	Company        string `json:"company"`
	Timeline       string `json:"timeline"`
	Budget         int    `json:"budget"`
	ProjectTitle   string `json:"project_title"`
	Message        string `json:"message"`
	Features       string `json:"features"`
}

// SendResult is the outcome of one delivery attempt.
type SendResult struct {
	Delivered bool   `json:"delivered"`
	Reason    string `json:"reason,omitempty"`
}

func DeliveredResult() SendResult           { return SendResult{Delivered: true} }
func FailedResult(reason string) SendResult { return SendResult{Reason: reason} }

// Inquiry is the persisted lead record (GORM).
type Inquiry struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name             string         `gorm:"not null" json:"name"`
	Email            string         `gorm:"not null;index" json:"email"`
	Company          string         `json:"company"`
	Platform         string         `gorm:"not null;index" json:"platform"`
	ProjectType      string         `gorm:"not null" json:"project_type"`
	ProjectTypeLabel string         `json:"project_type_label"`
	Timeline         string         `json:"timeline"`
	Budget           int            `json:"budget"`
	ProjectTitle     string         `json:"project_title"`
	Message          string         `gorm:"type:text;not null" json:"message"`
	Features         datatypes.JSON `json:"features"`
	Delivered        bool           `gorm:"index" json:"delivered"`
	DeliveryError    string         `json:"delivery_error,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
}

func (Inquiry) TableName() string {
	return "inquiries"
}

func (i *Inquiry) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// InquiryStats aggregates stored leads for the admin dashboard.
type InquiryStats struct {
	Total     int64 `json:"total"`
	Delivered int64 `json:"delivered"`
	Failed    int64 `json:"failed"`
	Shopify   int64 `json:"shopify"`
	WordPress int64 `json:"wordpress"`
	Last30d   int64 `json:"last_30d"`
}
