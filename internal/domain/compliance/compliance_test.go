package compliance

import (
	"strings"
	"testing"

	"github.com/track247/track247/internal/ui"
)

func TestStatusToken(t *testing.T) {
	tests := []struct {
		status Status
		class  string
	}{
		{StatusCompliant, "bg-green-100 text-green-800"},
		{StatusWarning, "bg-yellow-100 text-yellow-800"},
		{StatusNonCompliant, "bg-red-100 text-red-800"},
		{"Unknown", ui.Neutral.Class},
		{"compliant", ui.Neutral.Class},
	}
	for _, tt := range tests {
		if got := StatusToken(tt.status).Class; got != tt.class {
			t.Errorf("StatusToken(%q) = %q, want %q", tt.status, got, tt.class)
		}
	}
}

func TestCheckToken(t *testing.T) {
	tests := []struct {
		status    CheckStatus
		icon      string
		iconClass string
	}{
		{CheckPass, "check-circle", "text-green-600"},
		{CheckWarning, "alert-triangle", "text-yellow-600"},
		{CheckFail, "alert-triangle", "text-red-600"},
		{"Skipped", "clock", "text-gray-600"},
	}
	for _, tt := range tests {
		tok := CheckToken(tt.status)
		if tok.Icon != tt.icon || tok.IconClass != tt.iconClass {
			t.Errorf("CheckToken(%q) = %+v", tt.status, tok)
		}
	}
	for _, s := range CheckStatuses() {
		if CheckToken(s) == defaultCheck {
			t.Errorf("%s falls back to the default", s)
		}
	}
}

func TestScreenView(t *testing.T) {
	data := Data{
		Categories: []Category{{
			Name:   "HIPAA Privacy Rule",
			Status: StatusWarning,
			Score:  88,
			Checks: []Check{{Item: "Access Controls", Status: CheckPass}, {Item: "Retention", Status: CheckFail}},
		}},
		AuditLog: []AuditEntry{{Timestamp: "2024-01-15 14:30:22", User: "Dr. Smith", Action: "Viewed patient record"}},
	}
	v := NewScreen(data).View()

	if v.Header.Title != "Compliance Dashboard" {
		t.Errorf("unexpected title %q", v.Header.Title)
	}
	if len(v.Categories) != 1 {
		t.Fatalf("expected 1 category, got %d", len(v.Categories))
	}
	cat := v.Categories[0]
	if cat.Style.Class != "bg-yellow-100 text-yellow-800" || cat.Score != 88 {
		t.Errorf("unexpected category: %+v", cat)
	}
	if cat.Checks[1].Style.IconClass != "text-red-600" {
		t.Errorf("unexpected check style: %+v", cat.Checks[1].Style)
	}
	if len(v.AuditLog) != 1 {
		t.Errorf("expected audit entry")
	}
}

func TestDataValidate(t *testing.T) {
	tests := []struct {
		name    string
		data    Data
		wantErr string
	}{
		{
			name: "valid",
			data: Data{AuditLog: []AuditEntry{
				{Timestamp: "2024-01-15 14:30:22"},
				{Timestamp: "2024-01-15 14:25:15"},
			}},
		},
		{
			name:    "score out of range",
			data:    Data{Categories: []Category{{Score: 101}}},
			wantErr: "score",
		},
		{
			name:    "bad timestamp",
			data:    Data{AuditLog: []AuditEntry{{Timestamp: "yesterday"}}},
			wantErr: "timestamp",
		},
		{
			name: "oldest first",
			data: Data{AuditLog: []AuditEntry{
				{Timestamp: "2024-01-15 14:25:15"},
				{Timestamp: "2024-01-15 14:30:22"},
			}},
			wantErr: "newest first",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.data.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
