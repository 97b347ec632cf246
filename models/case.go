package models

import (
	"database/sql/driver"
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CaseStepStatus represents the state of a single case milestone
type CaseStepStatus string

const (
	StepCompleted CaseStepStatus = "completed"
	StepActive    CaseStepStatus = "active"
	StepPending   CaseStepStatus = "pending"
)

// CaseStep represents a milestone in a case's progress tracker
type CaseStep struct {
	ID     string         `json:"id"`
	Label  string         `json:"label"`
	Status CaseStepStatus `json:"status"`
}

// CaseSteps represents the ordered milestones of a case
type CaseSteps []CaseStep

// Value implements driver.Valuer for JSONB
func (s CaseSteps) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner for JSONB
func (s *CaseSteps) Scan(value interface{}) error {
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		*s = make(CaseSteps, 0)
		return nil
	}

	if len(bytes) == 0 {
		*s = make(CaseSteps, 0)
		return nil
	}

	return json.Unmarshal(bytes, s)
}

// CaseUpdateType represents the kind of activity recorded on a case
type CaseUpdateType string

const (
	UpdateHearing  CaseUpdateType = "hearing"
	UpdateDocument CaseUpdateType = "document"
	UpdateClosure  CaseUpdateType = "closure"
	UpdateGeneral  CaseUpdateType = "update"
)

// LegalCase represents a tracked legal case
type LegalCase struct {
	ID         int64     `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	LawyerID   *int64    `json:"lawyer_id,omitempty"`
	Title      string    `json:"title"`
	CaseNumber string    `json:"case_number"`
	LawyerName string    `json:"lawyer"`
	Status     string    `json:"status"`
	Steps      CaseSteps `json:"steps"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"last_update"`
}

// IsCompleted reports whether the case status reads "completed"
func (c *LegalCase) IsCompleted() bool {
	return strings.EqualFold(strings.TrimSpace(c.Status), "completed")
}

// CompletionPercent returns the rounded share of completed steps.
// A case without steps is 0% complete.
func (c *LegalCase) CompletionPercent() int {
	if len(c.Steps) == 0 {
		return 0
	}
	completed := 0
	for _, step := range c.Steps {
		if step.Status == StepCompleted {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(c.Steps)) * 100))
}

// ActiveStep returns the step currently in progress, if any
func (c *LegalCase) ActiveStep() *CaseStep {
	for i := range c.Steps {
		if c.Steps[i].Status == StepActive {
			return &c.Steps[i]
		}
	}
	return nil
}

// CaseUpdate represents an activity entry on a case timeline
type CaseUpdate struct {
	ID          int64          `json:"id"`
	CaseID      int64          `json:"case_id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Type        CaseUpdateType `json:"type"`
	CreatedAt   time.Time      `json:"date"`
}
