package workflow

import (
	"errors"
	"fmt"
)

// Path is the route the workflow builder is served on.
const Path = "/workflows"

// Status is the run state of an automated follow-up sequence.
type Status string

const (
	StatusActive Status = "Active"
	StatusPaused Status = "Paused"
	StatusDraft  Status = "Draft"
)

// Toggled returns the status after flipping the on/off switch. Only Active
// and Paused flip; every other status is returned unchanged.
func (s Status) Toggled() Status {
	switch s {
	case StatusActive:
		return StatusPaused
	case StatusPaused:
		return StatusActive
	default:
		return s
	}
}

// Step is one message in a sequence: the channel it goes out on and how long
// after the trigger.
type Step struct {
	Channel string `yaml:"channel" json:"channel"`
	Delay   string `yaml:"delay" json:"delay"`
}

// Label is the step as shown in the builder, e.g. "SMS (Immediate)".
func (s Step) Label() string {
	if s.Delay == "" {
		return s.Channel
	}
	return s.Channel + " (" + s.Delay + ")"
}

// Definition is an automated follow-up sequence.
type Definition struct {
	ID           int    `yaml:"id" json:"id"`
	Name         string `yaml:"name" json:"name"`
	Description  string `yaml:"description" json:"description"`
	Status       Status `yaml:"status" json:"status"`
	Trigger      string `yaml:"trigger" json:"trigger"`
	Steps        []Step `yaml:"steps" json:"steps"`
	Patients     int    `yaml:"patients" json:"patients"`
	ResponseRate int    `yaml:"response_rate" json:"response_rate"`
}

// Template is a quick-start sequence offered above the workflow list.
type Template struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// Data is the fixed dataset behind the workflow builder.
type Data struct {
	Workflows []Definition `yaml:"workflows" json:"workflows"`
	Templates []Template   `yaml:"templates" json:"templates"`
}

// Validate checks id uniqueness and the numeric ranges of each workflow.
func (d Data) Validate() error {
	var errs []error
	seen := make(map[int]bool, len(d.Workflows))
	for i, w := range d.Workflows {
		if seen[w.ID] {
			errs = append(errs, fmt.Errorf("workflows[%d]: duplicate id %d", i, w.ID))
		}
		seen[w.ID] = true
		if w.Patients < 0 {
			errs = append(errs, fmt.Errorf("workflows[%d]: patients must be >= 0, got %d", i, w.Patients))
		}
		if w.ResponseRate < 0 || w.ResponseRate > 100 {
			errs = append(errs, fmt.Errorf("workflows[%d]: response_rate must be 0-100, got %d", i, w.ResponseRate))
		}
	}
	return errors.Join(errs...)
}
