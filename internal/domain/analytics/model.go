package analytics

import (
	"errors"
	"fmt"
)

// Path is the route the analytics dashboard is served on.
const Path = "/analytics"

// Line colours of the response-rate chart, one per channel.
const (
	ColorSMS      = "#10B981"
	ColorEmail    = "#3B82F6"
	ColorWhatsApp = "#22C55E"
	ColorPhone    = "#F59E0B"
)

// KeyMetric is one headline figure of the overview tab.
type KeyMetric struct {
	Label  string `yaml:"label" json:"label"`
	Value  string `yaml:"value" json:"value"`
	Change string `yaml:"change" json:"change"`
	Trend  string `yaml:"trend" json:"trend"`
}

// ResponsePoint is one day of per-channel response rates.
type ResponsePoint struct {
	Date     string  `yaml:"date" json:"date"`
	SMS      float64 `yaml:"sms" json:"sms"`
	Email    float64 `yaml:"email" json:"email"`
	WhatsApp float64 `yaml:"whatsapp" json:"whatsapp"`
	Phone    float64 `yaml:"phone" json:"phone"`
}

// ChannelShare is a channel's share of all communications, in percent.
type ChannelShare struct {
	Name  string  `yaml:"name" json:"name"`
	Value float64 `yaml:"value" json:"value"`
	Color string  `yaml:"color" json:"color"`
}

type HourlyConversion struct {
	Hour        string `yaml:"hour" json:"hour"`
	Conversions int    `yaml:"conversions" json:"conversions"`
}

type ChannelPerformance struct {
	Channel string `yaml:"channel" json:"channel"`
	Rate    int    `yaml:"rate" json:"rate"`
	Volume  int    `yaml:"volume" json:"volume"`
	Trend   string `yaml:"trend" json:"trend"`
}

// FunnelStage is one step from first contact to a booked appointment.
type FunnelStage struct {
	Stage      string `yaml:"stage" json:"stage"`
	Count      int    `yaml:"count" json:"count"`
	Percentage int    `yaml:"percentage" json:"percentage"`
}

type ResponseCategory struct {
	Category string `yaml:"category" json:"category"`
	Count    int    `yaml:"count" json:"count"`
	Color    string `yaml:"color" json:"color"`
}

// Score is one block of the simplified view. Tone is a tailwind colour name.
type Score struct {
	Value    int    `yaml:"value" json:"value"`
	Label    string `yaml:"label" json:"label"`
	Subtitle string `yaml:"subtitle" json:"subtitle"`
	Tone     string `yaml:"tone" json:"tone"`
}

type Insight struct {
	Text string `yaml:"text" json:"text"`
	Tone string `yaml:"tone" json:"tone"`
}

type FocusArea struct {
	Area    string `yaml:"area" json:"area"`
	Badge   string `yaml:"badge" json:"badge"`
	Variant string `yaml:"variant" json:"variant"`
	Tone    string `yaml:"tone" json:"tone"`
}

// Data is the fixed dataset behind the analytics dashboard.
type Data struct {
	KeyMetrics   []KeyMetric          `yaml:"key_metrics" json:"key_metrics"`
	Responses    []ResponsePoint      `yaml:"responses" json:"responses"`
	Shares       []ChannelShare       `yaml:"shares" json:"shares"`
	Hourly       []HourlyConversion   `yaml:"hourly" json:"hourly"`
	Performance  []ChannelPerformance `yaml:"performance" json:"performance"`
	Funnel       []FunnelStage        `yaml:"funnel" json:"funnel"`
	Categories   []ResponseCategory   `yaml:"categories" json:"categories"`
	Scores       []Score              `yaml:"scores" json:"scores"`
	Improvements []Insight            `yaml:"improvements" json:"improvements"`
	FocusAreas   []FocusArea          `yaml:"focus_areas" json:"focus_areas"`
}

// Validate checks percentages and counts.
func (d Data) Validate() error {
	var errs []error
	for i, p := range d.Responses {
		for _, v := range []float64{p.SMS, p.Email, p.WhatsApp, p.Phone} {
			if v < 0 || v > 100 {
				errs = append(errs, fmt.Errorf("responses[%d]: rate must be 0-100, got %g", i, v))
				break
			}
		}
	}
	for i, s := range d.Shares {
		if s.Value < 0 {
			errs = append(errs, fmt.Errorf("shares[%d]: value must not be negative", i))
		}
	}
	for i, h := range d.Hourly {
		if h.Conversions < 0 {
			errs = append(errs, fmt.Errorf("hourly[%d]: conversions must not be negative", i))
		}
	}
	for i, p := range d.Performance {
		if p.Rate < 0 || p.Rate > 100 {
			errs = append(errs, fmt.Errorf("performance[%d]: rate must be 0-100, got %d", i, p.Rate))
		}
	}
	for i, f := range d.Funnel {
		if f.Percentage < 0 || f.Percentage > 100 {
			errs = append(errs, fmt.Errorf("funnel[%d]: percentage must be 0-100, got %d", i, f.Percentage))
		}
	}
	for i, s := range d.Scores {
		if s.Value < 0 || s.Value > 100 {
			errs = append(errs, fmt.Errorf("scores[%d]: value must be 0-100, got %d", i, s.Value))
		}
	}
	return errors.Join(errs...)
}
