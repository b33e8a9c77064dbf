package dashboard

import (
	"errors"
	"fmt"
)

// Path is the route the overview dashboard is served on.
const Path = "/"

// Trend is the direction of a stat card's change.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// ActivityStatus is the outcome of a recent patient interaction.
type ActivityStatus string

const (
	ActivitySuccess ActivityStatus = "success"
	ActivityWarning ActivityStatus = "warning"
	ActivityPending ActivityStatus = "pending"
)

// StatCard is one of the key metric cards.
type StatCard struct {
	Title  string `yaml:"title" json:"title"`
	Value  string `yaml:"value" json:"value"`
	Change string `yaml:"change" json:"change"`
	Trend  Trend  `yaml:"trend" json:"trend"`
	Icon   string `yaml:"icon" json:"icon"`
	Accent string `yaml:"accent" json:"accent"`
}

// Activity is a recent patient interaction or system event.
type Activity struct {
	Patient string         `yaml:"patient" json:"patient"`
	Action  string         `yaml:"action" json:"action"`
	Time    string         `yaml:"time" json:"time"`
	Status  ActivityStatus `yaml:"status" json:"status"`
}

// ChannelMetric is the response performance of one channel. Rate is shown as
// given; it is not recomputed from Responded and Sent.
type ChannelMetric struct {
	Channel   string `yaml:"channel" json:"channel"`
	Sent      int    `yaml:"sent" json:"sent"`
	Responded int    `yaml:"responded" json:"responded"`
	Rate      int    `yaml:"rate" json:"rate"`
}

// QuickAction is an inert shortcut tile.
type QuickAction struct {
	Label string `yaml:"label" json:"label"`
	Icon  string `yaml:"icon" json:"icon"`
}

// Data is the fixed dataset behind the dashboard.
type Data struct {
	Stats        []StatCard      `yaml:"stats" json:"stats"`
	Channels     []ChannelMetric `yaml:"channels" json:"channels"`
	Activities   []Activity      `yaml:"activities" json:"activities"`
	QuickActions []QuickAction   `yaml:"quick_actions" json:"quick_actions"`
}

// Validate checks channel rates are percentages and counts are not negative.
func (d Data) Validate() error {
	var errs []error
	for i, c := range d.Channels {
		if c.Rate < 0 || c.Rate > 100 {
			errs = append(errs, fmt.Errorf("channels[%d]: rate must be 0-100, got %d", i, c.Rate))
		}
		if c.Sent < 0 || c.Responded < 0 {
			errs = append(errs, fmt.Errorf("channels[%d]: counts must be >= 0", i))
		}
	}
	return errors.Join(errs...)
}
