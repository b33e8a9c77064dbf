// Package fixture provides the literal dataset every screen renders from and
// the sources it can be loaded from: compiled-in defaults, a YAML file, or
// Postgres tables.
package fixture

import (
	"context"
	"errors"
	"fmt"

	"github.com/track247/track247/internal/domain/analytics"
	"github.com/track247/track247/internal/domain/compliance"
	"github.com/track247/track247/internal/domain/dashboard"
	"github.com/track247/track247/internal/domain/patient"
	"github.com/track247/track247/internal/domain/workflow"
)

// Seed is the complete dataset, one section per screen.
type Seed struct {
	Dashboard  dashboard.Data  `yaml:"dashboard" json:"dashboard"`
	Patients   patient.Data    `yaml:"patients" json:"patients"`
	Workflows  workflow.Data   `yaml:"workflows" json:"workflows"`
	Analytics  analytics.Data  `yaml:"analytics" json:"analytics"`
	Compliance compliance.Data `yaml:"compliance" json:"compliance"`
}

// Validate checks every section and reports all problems at once.
func (s *Seed) Validate() error {
	var errs []error
	if err := s.Dashboard.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("dashboard: %w", err))
	}
	if err := s.Patients.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("patients: %w", err))
	}
	if err := s.Workflows.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("workflows: %w", err))
	}
	if err := s.Analytics.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("analytics: %w", err))
	}
	if err := s.Compliance.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("compliance: %w", err))
	}
	return errors.Join(errs...)
}

// Source loads a seed.
type Source interface {
	Load(ctx context.Context) (*Seed, error)
}

// Embedded serves the compiled-in defaults.
type Embedded struct{}

func (Embedded) Load(context.Context) (*Seed, error) {
	return Default(), nil
}

// LoadValid loads from src and validates the result.
func LoadValid(ctx context.Context, src Source) (*Seed, error) {
	seed, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}
	if err := seed.Validate(); err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}
	return seed, nil
}
