package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/track247/track247/internal/platform/middleware"
)

// Execer is the part of Conn a screen view log writes through.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const insertScreenView = `INSERT INTO screen_views
    (viewed_at, screen, path, session_id, request_id, ip_hash, status)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

// ScreenViewLog persists audit entries to the screen_views table.
type ScreenViewLog struct {
	conn    Execer
	timeout time.Duration
}

// NewScreenViewLog returns a recorder writing through conn. Each insert is
// bounded by timeout; zero means two seconds.
func NewScreenViewLog(conn Execer, timeout time.Duration) *ScreenViewLog {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &ScreenViewLog{conn: conn, timeout: timeout}
}

// RecordAccess implements middleware.AuditRecorder.
func (l *ScreenViewLog) RecordAccess(entry middleware.AuditEntry) error {
	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()

	_, err := l.conn.Exec(ctx, insertScreenView,
		entry.Timestamp, entry.Screen, entry.Path, entry.SessionID,
		entry.RequestID, entry.IPHash, entry.StatusCode)
	if err != nil {
		return fmt.Errorf("insert screen view: %w", err)
	}
	return nil
}
