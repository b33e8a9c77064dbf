package patient

import (
	"errors"
	"fmt"
)

// Path is the route the patient list is served on.
const Path = "/patients"

// Status is where a patient sits in the follow-up loop.
type Status string

const (
	StatusResponded  Status = "Responded"
	StatusPending    Status = "Pending"
	StatusScheduled  Status = "Scheduled"
	StatusNoResponse Status = "No Response"
)

// Priority ranks a patient in the follow-up queue.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Channel is the contact channel last used for a patient.
type Channel string

const (
	ChannelSMS      Channel = "SMS"
	ChannelEmail    Channel = "Email"
	ChannelWhatsApp Channel = "WhatsApp"
	ChannelPhone    Channel = "Phone"
)

// Record is one row of the follow-up queue. Contact details are stored
// already masked.
type Record struct {
	ID           string   `yaml:"id" json:"id"`
	Name         string   `yaml:"name" json:"name"`
	Phone        string   `yaml:"phone" json:"phone"`
	Email        string   `yaml:"email" json:"email"`
	LastContact  string   `yaml:"last_contact" json:"last_contact"`
	Status       Status   `yaml:"status" json:"status"`
	NextFollowup string   `yaml:"next_followup" json:"next_followup"`
	Channel      Channel  `yaml:"channel" json:"channel"`
	Priority     Priority `yaml:"priority" json:"priority"`
}

// QuickStat is one of the summary tiles under the queue.
type QuickStat struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
	Tone  string `yaml:"tone" json:"tone"`
}

// Data is the fixed dataset behind the patient list.
type Data struct {
	Patients   []Record    `yaml:"patients" json:"patients"`
	QuickStats []QuickStat `yaml:"quick_stats" json:"quick_stats"`
}

// Validate checks that patient ids are present and unique.
func (d Data) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(d.Patients))
	for i, p := range d.Patients {
		if p.ID == "" {
			errs = append(errs, fmt.Errorf("patients[%d]: id is required", i))
			continue
		}
		if seen[p.ID] {
			errs = append(errs, fmt.Errorf("patients[%d]: duplicate id %q", i, p.ID))
		}
		seen[p.ID] = true
	}
	return errors.Join(errs...)
}
