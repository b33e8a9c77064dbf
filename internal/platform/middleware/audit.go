package middleware

import (
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/blake2b"
)

// AuditEntry is one screen view.
type AuditEntry struct {
	Screen     string
	Path       string
	SessionID  string
	RequestID  string
	IPHash     string
	StatusCode int
	Timestamp  time.Time
}

// AuditRecorder persists audit entries in addition to the log line.
type AuditRecorder interface {
	RecordAccess(entry AuditEntry) error
}

// AuditRecorderFunc is a function adapter for AuditRecorder.
type AuditRecorderFunc func(entry AuditEntry) error

func (f AuditRecorderFunc) RecordAccess(entry AuditEntry) error {
	return f(entry)
}

// IPHasher derives a short, keyed, non-reversible tag from a client address
// so audit lines can be correlated without storing the address.
type IPHasher struct {
	key []byte
}

// NewIPHasher keys the hash. Keys longer than BLAKE2b's 64-byte limit are
// compressed first.
func NewIPHasher(key []byte) (*IPHasher, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("ip hash key is empty")
	}
	if len(key) > blake2b.Size {
		sum := blake2b.Sum512(key)
		key = sum[:]
	}
	return &IPHasher{key: key}, nil
}

// Hash returns the first 8 bytes of the keyed BLAKE2b-256 digest, hex encoded.
func (h *IPHasher) Hash(ip string) string {
	mac, err := blake2b.New256(h.key)
	if err != nil {
		return ""
	}
	mac.Write([]byte(ip))
	return hex.EncodeToString(mac.Sum(nil)[:8])
}

// ScreenResolver maps a request path to the screen it renders.
type ScreenResolver func(path string) (screen string, ok bool)

// Audit logs every GET of a known screen with a hashed client address.
// Other requests pass through unlogged.
func Audit(logger zerolog.Logger, hasher *IPHasher, resolve ScreenResolver, recorders ...AuditRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Method != http.MethodGet {
				return next(c)
			}
			screen, ok := resolve(req.URL.Path)
			if !ok {
				return next(c)
			}

			err := next(c)

			entry := AuditEntry{
				Screen:     screen,
				Path:       req.URL.Path,
				IPHash:     hasher.Hash(c.RealIP()),
				StatusCode: c.Response().Status,
				Timestamp:  time.Now().UTC(),
			}
			entry.RequestID, _ = c.Get("request_id").(string)
			entry.SessionID, _ = c.Get("session_id").(string)

			for _, r := range recorders {
				if r == nil {
					continue
				}
				if recErr := r.RecordAccess(entry); recErr != nil {
					logger.Error().Err(recErr).
						Str("request_id", entry.RequestID).
						Msg("failed to record audit entry")
				}
			}

			logger.Info().
				Str("type", "screen_view").
				Str("request_id", entry.RequestID).
				Str("session_id", entry.SessionID).
				Str("screen", entry.Screen).
				Str("path", entry.Path).
				Int("status", entry.StatusCode).
				Str("ip_hash", entry.IPHash).
				Msg("screen_view")

			return err
		}
	}
}
