package fixture

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestDecode_SectionReplacesDefault(t *testing.T) {
	raw := []byte(`
patients:
  patients:
    - id: P1
      name: Ada L.
      status: Pending
      channel: Email
      priority: Low
`)
	seed, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	if len(seed.Patients.Patients) != 1 || seed.Patients.Patients[0].ID != "P1" {
		t.Fatalf("expected patients from file, got %+v", seed.Patients.Patients)
	}
	if len(seed.Patients.QuickStats) != 0 {
		t.Errorf("expected quick stats cleared with their section, got %d", len(seed.Patients.QuickStats))
	}
	if len(seed.Workflows.Workflows) != 3 {
		t.Errorf("expected untouched sections to keep defaults, got %d workflows", len(seed.Workflows.Workflows))
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"unknown section", "billing:\n  total: 1\n"},
		{"unknown field", "patients:\n  patients: []\n  extra: true\n"},
		{"malformed", "patients: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.raw)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDecode_EmptyIsDefault(t *testing.T) {
	seed, err := Decode(nil)
	if err != nil {
		t.Fatalf("Decode(nil) error: %v", err)
	}
	if len(seed.Compliance.Categories) != 4 {
		t.Errorf("expected default compliance categories, got %d", len(seed.Compliance.Categories))
	}
}

func TestFile_LoadEncodedDefault(t *testing.T) {
	raw, err := Encode(Default())
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write seed file: %v", err)
	}

	seed, err := File{Path: path}.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if err := seed.Validate(); err != nil {
		t.Fatalf("loaded seed invalid: %v", err)
	}
	if got := seed.Workflows.Workflows[0].Steps[3].Label(); got != "Phone Call (48 hours)" {
		t.Errorf("expected step label to survive the file, got %q", got)
	}
}

func TestFile_Missing(t *testing.T) {
	_, err := File{Path: filepath.Join(t.TempDir(), "nope.yaml")}.Load(context.Background())
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
