package compliance

import (
	"errors"
	"fmt"
	"time"
)

// Path is the route the compliance dashboard is served on.
const Path = "/compliance"

// AuditTimeLayout is the timestamp format of audit trail entries.
const AuditTimeLayout = "2006-01-02 15:04:05"

// Status is the overall standing of a compliance category.
type Status string

const (
	StatusCompliant    Status = "Compliant"
	StatusWarning      Status = "Warning"
	StatusNonCompliant Status = "Non-Compliant"
)

// CheckStatus is the result of a single control check.
type CheckStatus string

const (
	CheckPass    CheckStatus = "Pass"
	CheckWarning CheckStatus = "Warning"
	CheckFail    CheckStatus = "Fail"
)

// Check is one control inside a category.
type Check struct {
	Item        string      `yaml:"item" json:"item"`
	Status      CheckStatus `yaml:"status" json:"status"`
	Description string      `yaml:"description" json:"description"`
}

// Category groups related checks. Score is reported as given and is not
// derived from the check results.
type Category struct {
	Name   string  `yaml:"category" json:"category"`
	Status Status  `yaml:"status" json:"status"`
	Score  int     `yaml:"score" json:"score"`
	Checks []Check `yaml:"checks" json:"checks"`
}

// AuditEntry is one line of the audit trail. IPHash is an opaque digest or
// the literal "system" for automated events.
type AuditEntry struct {
	Timestamp string `yaml:"timestamp" json:"timestamp"`
	User      string `yaml:"user" json:"user"`
	Action    string `yaml:"action" json:"action"`
	Status    string `yaml:"status" json:"status"`
	IPHash    string `yaml:"ip_hash" json:"ip_hash"`
}

// Summary is one tile of the overall compliance status card.
type Summary struct {
	Label      string `yaml:"label" json:"label"`
	Value      string `yaml:"value" json:"value"`
	Badge      string `yaml:"badge" json:"badge"`
	ValueClass string `yaml:"value_class" json:"value_class"`
	BadgeClass string `yaml:"badge_class" json:"badge_class"`
}

// ProtectionCard is one of the data protection summary cards.
type ProtectionCard struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Icon        string `yaml:"icon" json:"icon"`
	Tone        string `yaml:"tone" json:"tone"`
}

// Data is the fixed dataset behind the compliance dashboard.
type Data struct {
	Summary     []Summary        `yaml:"summary" json:"summary"`
	Categories  []Category       `yaml:"categories" json:"categories"`
	AuditLog    []AuditEntry     `yaml:"audit_log" json:"audit_log"`
	Protections []ProtectionCard `yaml:"protections" json:"protections"`
}

// Validate checks score ranges and that the audit trail is newest first.
func (d Data) Validate() error {
	var errs []error
	for i, c := range d.Categories {
		if c.Score < 0 || c.Score > 100 {
			errs = append(errs, fmt.Errorf("categories[%d]: score must be 0-100, got %d", i, c.Score))
		}
	}

	var prev time.Time
	for i, e := range d.AuditLog {
		ts, err := time.Parse(AuditTimeLayout, e.Timestamp)
		if err != nil {
			errs = append(errs, fmt.Errorf("audit_log[%d]: timestamp: %w", i, err))
			continue
		}
		if i > 0 && !prev.IsZero() && ts.After(prev) {
			errs = append(errs, fmt.Errorf("audit_log[%d]: entries must be newest first", i))
		}
		prev = ts
	}
	return errors.Join(errs...)
}
