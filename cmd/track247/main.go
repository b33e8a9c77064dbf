package main

import (
	"context"
	crypto_rand "crypto/rand"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/blake2b"

	"github.com/track247/track247/internal/app"
	"github.com/track247/track247/internal/config"
	"github.com/track247/track247/internal/fixture"
	"github.com/track247/track247/internal/platform/db"
	"github.com/track247/track247/internal/platform/middleware"
	"github.com/track247/track247/internal/platform/session"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "track247",
		Short:        "247 TRACK follow-up dashboard",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(routesCmd())
	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())
	return rootCmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the navigation route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-12s %-12s %s\n", "PATH", "SCREEN", "LABEL")
			for _, r := range app.Routes() {
				fmt.Fprintf(out, "%-12s %-12s %s\n", r.Path, r.Screen, r.Label)
			}
			return nil
		},
	}
}

// renderCmd prints one page as the server would send it, without listening.
func renderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render <path>",
		Short: "Render a page to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			srv, cleanup, err := buildServer(cmd.Context(), cfg, zerolog.Nop())
			if err != nil {
				return err
			}
			defer cleanup()

			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, args[0], nil))
			if _, err := io.Copy(cmd.OutOrStdout(), rec.Body); err != nil {
				return err
			}
			if rec.Code != http.StatusOK {
				return fmt.Errorf("GET %s: status %d", args[0], rec.Code)
			}
			return nil
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the seed database schema",
	}

	// migrate up
	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			pool, err := openPool(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			count, err := db.NewMigrator(pool, db.Migrations()).Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migration(s) successfully.\n", count)
			return nil
		},
	})

	// migrate status
	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			pool, err := openPool(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			statuses, err := db.NewMigrator(pool, db.Migrations()).Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Fprintf(out, "%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	})

	return cmd
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Manage screen seed data",
	}

	push := &cobra.Command{
		Use:   "push",
		Short: "Replace the database seed tables with a seed",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")

			ctx := context.Background()
			var src fixture.Source = fixture.Embedded{}
			if file != "" {
				src = fixture.File{Path: file}
			}
			seed, err := fixture.LoadValid(ctx, src)
			if err != nil {
				return err
			}

			pool, err := openPool(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := (fixture.Postgres{Conn: pool}).Push(ctx, seed); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Seed pushed.")
			return nil
		},
	}
	push.Flags().String("file", "", "YAML seed file (defaults to the built-in seed)")
	cmd.AddCommand(push)

	// seed dump
	cmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Print the built-in seed as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := fixture.Encode(fixture.Default())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(raw)
			return err
		},
	})

	return cmd
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := newLogger(cfg, os.Stdout)
	if err := cfg.Validate(); err != nil {
		logger.Error().Err(err).Msg("invalid configuration")
		return err
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	srv, cleanup, err := buildServer(ctx, cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build server")
		return err
	}
	defer cleanup()

	go srv.RunJanitors(ctx, cfg.SessionSweepInterval)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Bool("tls", cfg.TLSEnabled).Str("seed", cfg.FixtureSource).Msg("starting server")
		if cfg.TLSEnabled {
			errCh <- srv.Echo.StartTLS(addr, cfg.TLSCertFile, cfg.TLSKeyFile)
		} else {
			errCh <- srv.Echo.Start(addr)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("server error")
			return err
		}
	}

	logger.Info().Msg("shutting down server")
	stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Echo.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, w io.Writer) zerolog.Logger {
	if cfg.IsDev() {
		w = zerolog.ConsoleWriter{Out: w}
	}
	lvl, err := cfg.Level()
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// resolveSessionSecret returns the configured secret. Development runs
// without one get a random per-process secret, so sessions do not survive a
// restart.
func resolveSessionSecret(cfg *config.Config, logger zerolog.Logger) ([]byte, error) {
	if cfg.SessionSecret != "" {
		return []byte(cfg.SessionSecret), nil
	}
	if !cfg.IsDev() {
		return nil, errors.New("SESSION_SECRET is required")
	}
	secret := make([]byte, config.MinSessionSecret)
	if _, err := crypto_rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generate session secret: %w", err)
	}
	logger.Warn().Msg("SESSION_SECRET not set, using a random secret for this process")
	return secret, nil
}

func openPool(ctx context.Context) (*pgxpool.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	return db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
}

// loadSeed reads the configured seed. The returned pool is nil unless the
// seed came from Postgres.
func loadSeed(ctx context.Context, cfg *config.Config) (*fixture.Seed, *pgxpool.Pool, error) {
	switch cfg.FixtureSource {
	case config.FixtureFile:
		seed, err := fixture.LoadValid(ctx, fixture.File{Path: cfg.FixtureFile})
		return seed, nil, err
	case config.FixturePostgres:
		pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			return nil, nil, err
		}
		seed, err := fixture.LoadValid(ctx, fixture.Postgres{Conn: pool})
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return seed, pool, nil
	default:
		seed, err := fixture.LoadValid(ctx, fixture.Embedded{})
		return seed, nil, err
	}
}

func buildServer(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*app.Server, func(), error) {
	secret, err := resolveSessionSecret(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	hasher, err := middleware.NewIPHasher(ipHashKey(secret))
	if err != nil {
		return nil, nil, err
	}

	seed, pool, err := loadSeed(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("load seed: %w", err)
	}
	cleanup := func() {
		if pool != nil {
			pool.Close()
		}
	}

	var recorders []middleware.AuditRecorder
	if pool != nil {
		recorders = append(recorders, db.NewScreenViewLog(pool, 0))
	}

	srv, err := app.New(app.Options{
		Seed:       seed,
		Logger:     logger,
		Sessions:   session.NewManager(secret, cfg.SessionTTL, cfg.TLSEnabled),
		SessionTTL: cfg.SessionTTL,
		RateLimit: middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimitRPS,
			BurstSize:         cfg.RateLimitBurst,
			IdleTTL:           middleware.DefaultRateLimitConfig().IdleTTL,
		},
		BodyLimit: cfg.BodyLimit,
		IPHasher:  hasher,
		HSTS:      cfg.TLSEnabled,
		Pool:      pool,

		AuditRecorders: recorders,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return srv, cleanup, nil
}

// ipHashKey derives the audit address-hashing key from the session secret so
// the two never share key material.
func ipHashKey(secret []byte) []byte {
	sum := blake2b.Sum256(append([]byte("ip-hash:"), secret...))
	return sum[:]
}
