package fixture

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/track247/track247/internal/domain/compliance"
	"github.com/track247/track247/internal/domain/dashboard"
	"github.com/track247/track247/internal/domain/patient"
	"github.com/track247/track247/internal/domain/workflow"
	"github.com/track247/track247/internal/platform/db"
)

// seedTables are truncated by Push, children first.
var seedTables = []string{
	"workflow_steps", "workflows", "compliance_checks", "compliance_categories",
	"audit_entries", "patients", "channel_metrics",
}

// Postgres reads the seed tables created by the db migrations. Sections with
// no backing table, and tables with no rows, keep their default content.
type Postgres struct {
	Conn db.Conn
}

func (p Postgres) Load(ctx context.Context) (*Seed, error) {
	seed := Default()

	patients, err := p.patients(ctx)
	if err != nil {
		return nil, err
	}
	if len(patients) > 0 {
		seed.Patients.Patients = patients
	}

	workflows, err := p.workflows(ctx)
	if err != nil {
		return nil, err
	}
	if len(workflows) > 0 {
		seed.Workflows.Workflows = workflows
	}

	categories, err := p.categories(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) > 0 {
		seed.Compliance.Categories = categories
	}

	audit, err := p.auditLog(ctx)
	if err != nil {
		return nil, err
	}
	if len(audit) > 0 {
		seed.Compliance.AuditLog = audit
	}

	channels, err := p.channels(ctx)
	if err != nil {
		return nil, err
	}
	if len(channels) > 0 {
		seed.Dashboard.Channels = channels
	}

	return seed, nil
}

func (p Postgres) patients(ctx context.Context) ([]patient.Record, error) {
	rows, err := p.Conn.Query(ctx, `SELECT id, name, phone, email, last_contact, status,
       next_followup, channel, priority
FROM patients ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query patients: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (patient.Record, error) {
		var r patient.Record
		err := row.Scan(&r.ID, &r.Name, &r.Phone, &r.Email, &r.LastContact, &r.Status,
			&r.NextFollowup, &r.Channel, &r.Priority)
		return r, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan patients: %w", err)
	}
	return out, nil
}

func (p Postgres) workflows(ctx context.Context) ([]workflow.Definition, error) {
	rows, err := p.Conn.Query(ctx, `SELECT id, name, description, status, trigger_event,
       patients, response_rate
FROM workflows ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query workflows: %w", err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (workflow.Definition, error) {
		var w workflow.Definition
		err := row.Scan(&w.ID, &w.Name, &w.Description, &w.Status, &w.Trigger, &w.Patients, &w.ResponseRate)
		return w, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan workflows: %w", err)
	}

	rows, err = p.Conn.Query(ctx, `SELECT workflow_id, channel, delay
FROM workflow_steps ORDER BY workflow_id, position`)
	if err != nil {
		return nil, fmt.Errorf("query workflow steps: %w", err)
	}
	steps := make(map[int][]workflow.Step)
	var (
		wid  int
		step workflow.Step
	)
	_, err = pgx.ForEachRow(rows, []any{&wid, &step.Channel, &step.Delay}, func() error {
		steps[wid] = append(steps[wid], step)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan workflow steps: %w", err)
	}

	for i := range list {
		list[i].Steps = steps[list[i].ID]
	}
	return list, nil
}

func (p Postgres) categories(ctx context.Context) ([]compliance.Category, error) {
	rows, err := p.Conn.Query(ctx, `SELECT name, status, score FROM compliance_categories ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query compliance categories: %w", err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (compliance.Category, error) {
		var c compliance.Category
		err := row.Scan(&c.Name, &c.Status, &c.Score)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan compliance categories: %w", err)
	}

	rows, err = p.Conn.Query(ctx, `SELECT category, item, status, description
FROM compliance_checks ORDER BY category, position`)
	if err != nil {
		return nil, fmt.Errorf("query compliance checks: %w", err)
	}
	checks := make(map[string][]compliance.Check)
	var (
		category string
		check    compliance.Check
	)
	_, err = pgx.ForEachRow(rows, []any{&category, &check.Item, &check.Status, &check.Description}, func() error {
		checks[category] = append(checks[category], check)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan compliance checks: %w", err)
	}

	for i := range list {
		list[i].Checks = checks[list[i].Name]
	}
	return list, nil
}

func (p Postgres) auditLog(ctx context.Context) ([]compliance.AuditEntry, error) {
	rows, err := p.Conn.Query(ctx, `SELECT logged_at, actor, action, status, ip_hash
FROM audit_entries ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query audit entries: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (compliance.AuditEntry, error) {
		var e compliance.AuditEntry
		err := row.Scan(&e.Timestamp, &e.User, &e.Action, &e.Status, &e.IPHash)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan audit entries: %w", err)
	}
	return out, nil
}

func (p Postgres) channels(ctx context.Context) ([]dashboard.ChannelMetric, error) {
	rows, err := p.Conn.Query(ctx, `SELECT channel, sent, responded, rate FROM channel_metrics ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query channel metrics: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (dashboard.ChannelMetric, error) {
		var m dashboard.ChannelMetric
		err := row.Scan(&m.Channel, &m.Sent, &m.Responded, &m.Rate)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan channel metrics: %w", err)
	}
	return out, nil
}

// Push replaces the contents of the seed tables with seed in one transaction.
func (p Postgres) Push(ctx context.Context, seed *Seed) error {
	tx, err := p.Conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, table := range seedTables {
		if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	b := pushBatch(seed)
	if err := tx.SendBatch(ctx, b).Close(); err != nil {
		return fmt.Errorf("insert seed rows: %w", err)
	}
	return tx.Commit(ctx)
}

func pushBatch(seed *Seed) *pgx.Batch {
	b := &pgx.Batch{}
	for i, r := range seed.Patients.Patients {
		b.Queue(`INSERT INTO patients (position, id, name, phone, email, last_contact, status,
    next_followup, channel, priority) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			i, r.ID, r.Name, r.Phone, r.Email, r.LastContact, string(r.Status),
			r.NextFollowup, string(r.Channel), string(r.Priority))
	}
	for i, w := range seed.Workflows.Workflows {
		b.Queue(`INSERT INTO workflows (position, id, name, description, status, trigger_event,
    patients, response_rate) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			i, w.ID, w.Name, w.Description, string(w.Status), w.Trigger, w.Patients, w.ResponseRate)
		for j, s := range w.Steps {
			b.Queue(`INSERT INTO workflow_steps (workflow_id, position, channel, delay) VALUES ($1, $2, $3, $4)`,
				w.ID, j, s.Channel, s.Delay)
		}
	}
	for i, c := range seed.Compliance.Categories {
		b.Queue(`INSERT INTO compliance_categories (position, name, status, score) VALUES ($1, $2, $3, $4)`,
			i, c.Name, string(c.Status), c.Score)
		for j, ch := range c.Checks {
			b.Queue(`INSERT INTO compliance_checks (category, position, item, status, description)
    VALUES ($1, $2, $3, $4, $5)`,
				c.Name, j, ch.Item, string(ch.Status), ch.Description)
		}
	}
	for i, e := range seed.Compliance.AuditLog {
		b.Queue(`INSERT INTO audit_entries (position, logged_at, actor, action, status, ip_hash)
    VALUES ($1, $2, $3, $4, $5, $6)`,
			i, e.Timestamp, e.User, e.Action, e.Status, e.IPHash)
	}
	for i, m := range seed.Dashboard.Channels {
		b.Queue(`INSERT INTO channel_metrics (position, channel, sent, responded, rate) VALUES ($1, $2, $3, $4, $5)`,
			i, m.Channel, m.Sent, m.Responded, m.Rate)
	}
	return b
}
