package fixture

import (
	"context"
	"os"
	"testing"

	"github.com/track247/track247/internal/platform/db"
)

func TestPushBatch_QueuesEveryRow(t *testing.T) {
	s := Default()

	want := len(s.Patients.Patients) + len(s.Compliance.AuditLog) + len(s.Dashboard.Channels)
	for _, w := range s.Workflows.Workflows {
		want += 1 + len(w.Steps)
	}
	for _, c := range s.Compliance.Categories {
		want += 1 + len(c.Checks)
	}

	if got := pushBatch(s).Len(); got != want {
		t.Errorf("expected %d queued statements, got %d", want, got)
	}
}

func TestPostgres_PushThenLoad(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	pool, err := db.NewPool(ctx, url, 2, 1)
	if err != nil {
		t.Fatalf("NewPool() error: %v", err)
	}
	defer pool.Close()

	if _, err := db.NewMigrator(pool, db.Migrations()).Up(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	seed := Default()
	seed.Patients.Patients = seed.Patients.Patients[:2]
	src := Postgres{Conn: pool}
	if err := src.Push(ctx, seed); err != nil {
		t.Fatalf("Push() error: %v", err)
	}

	got, err := src.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(got.Patients.Patients) != 2 {
		t.Errorf("expected 2 patients, got %d", len(got.Patients.Patients))
	}
	if got.Workflows.Workflows[0].Steps[0].Label() != "SMS (Immediate)" {
		t.Errorf("unexpected first step: %+v", got.Workflows.Workflows[0].Steps)
	}
	if got.Compliance.Categories[1].Checks[3].Status != "Warning" {
		t.Errorf("unexpected check: %+v", got.Compliance.Categories[1].Checks[3])
	}
	if err := got.Validate(); err != nil {
		t.Errorf("loaded seed invalid: %v", err)
	}
}
