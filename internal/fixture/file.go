package fixture

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/track247/track247/internal/domain/analytics"
	"github.com/track247/track247/internal/domain/compliance"
	"github.com/track247/track247/internal/domain/dashboard"
	"github.com/track247/track247/internal/domain/patient"
	"github.com/track247/track247/internal/domain/workflow"
)

// File loads a seed from a YAML document. Sections missing from the file keep
// their default content; sections present replace the default whole.
type File struct {
	Path string
}

func (f File) Load(context.Context) (*Seed, error) {
	raw, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Decode(raw)
}

// Decode parses a YAML seed on top of the defaults. Unknown keys are rejected.
func Decode(raw []byte) (*Seed, error) {
	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	seed := Default()
	sections := map[string]func() any{
		"dashboard":  func() any { seed.Dashboard = dashboard.Data{}; return &seed.Dashboard },
		"patients":   func() any { seed.Patients = patient.Data{}; return &seed.Patients },
		"workflows":  func() any { seed.Workflows = workflow.Data{}; return &seed.Workflows },
		"analytics":  func() any { seed.Analytics = analytics.Data{}; return &seed.Analytics },
		"compliance": func() any { seed.Compliance = compliance.Data{}; return &seed.Compliance },
	}
	for key, node := range doc {
		reset, ok := sections[key]
		if !ok {
			return nil, fmt.Errorf("parse seed file: unknown section %q", key)
		}
		dst := reset()
		out, err := yaml.Marshal(&node)
		if err != nil {
			return nil, fmt.Errorf("parse seed file: %s: %w", key, err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(out))
		dec.KnownFields(true)
		if err := dec.Decode(dst); err != nil {
			return nil, fmt.Errorf("parse seed file: %s: %w", key, err)
		}
	}
	return seed, nil
}

// Encode writes a seed as YAML.
func Encode(seed *Seed) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(seed); err != nil {
		return nil, fmt.Errorf("encode seed: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode seed: %w", err)
	}
	return buf.Bytes(), nil
}
