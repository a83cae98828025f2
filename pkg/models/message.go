// Package models defines shared domain types passed between the control
// plane, the message bus, and the step handlers.
package models

import (
	"fmt"
	"time"
)

// Step identifies one of the three independently scheduled report steps.
type Step string

// Report pipeline steps.
const (
	StepOverview Step = "overview"
	StepAnalysis Step = "analysis"
	StepIdea     Step = "idea"
)

// Valid reports whether s is a known step.
func (s Step) Valid() bool {
	switch s {
	case StepOverview, StepAnalysis, StepIdea:
		return true
	}
	return false
}

// StepMessage is the wire record published once per step when a report is
// created. Timestamp is set by the producer at enqueue.
type StepMessage struct {
	TaskID            int       `json:"task_id"`
	ReportID          int       `json:"report_id"`
	Step              Step      `json:"step"`
	GoogleAccessToken string    `json:"google_access_token,omitempty"`
	SkipVectorSave    bool      `json:"skip_vector_save,omitempty"`
	Timestamp         time.Time `json:"timestamp"`
}

// Validate checks the message shape before it is handed to a step handler.
// A message failing validation is an invariant violation: it is logged and
// dropped, never retried.
func (m StepMessage) Validate() error {
	if m.TaskID <= 0 {
		return fmt.Errorf("step message missing task_id")
	}
	if m.ReportID <= 0 {
		return fmt.Errorf("step message missing report_id")
	}
	if !m.Step.Valid() {
		return fmt.Errorf("step message has unknown step %q", m.Step)
	}
	return nil
}
