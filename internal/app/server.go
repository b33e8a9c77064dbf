package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/track247/track247/internal/domain/analytics"
	"github.com/track247/track247/internal/domain/compliance"
	"github.com/track247/track247/internal/domain/dashboard"
	"github.com/track247/track247/internal/domain/patient"
	"github.com/track247/track247/internal/domain/workflow"
	"github.com/track247/track247/internal/fixture"
	"github.com/track247/track247/internal/platform/db"
	"github.com/track247/track247/internal/platform/middleware"
	"github.com/track247/track247/internal/platform/session"
	"github.com/track247/track247/internal/ui"
)

// Options configures New. Seed, Sessions and IPHasher are required.
type Options struct {
	Seed       *fixture.Seed
	Logger     zerolog.Logger
	Sessions   *session.Manager
	SessionTTL time.Duration
	RateLimit  middleware.RateLimitConfig
	BodyLimit  string
	IPHasher   *middleware.IPHasher
	HSTS       bool
	// AuditRecorders receive one entry per screen view.
	AuditRecorders []middleware.AuditRecorder
	// Pool enables /healthz/db when the seed came from Postgres.
	Pool *pgxpool.Pool
}

// Server is the assembled application.
type Server struct {
	Echo     *echo.Echo
	sweepers []session.Sweeper
}

// New wires every screen, its view state store and the middleware chain.
func New(opts Options) (*Server, error) {
	if opts.Seed == nil || opts.Sessions == nil || opts.IPHasher == nil {
		return nil, errors.New("app: seed, sessions and ip hasher are required")
	}
	if opts.BodyLimit == "" {
		opts.BodyLimit = "16K"
	}

	renderer, err := ui.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	shell := NewShell(opts.Logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.HTTPErrorHandler = shell.HandleError

	e.Use(middleware.Recovery(opts.Logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(opts.Logger))
	e.Use(middleware.SecurityHeaders(opts.HSTS))
	e.Use(echomw.GzipWithConfig(echomw.GzipConfig{
		Skipper: func(c echo.Context) bool { return c.Request().Method == http.MethodHead },
	}))

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	if opts.Pool != nil {
		pool := opts.Pool
		e.GET("/healthz/db", db.HealthHandler(pool, func() db.PoolStats { return db.StatsOf(pool) }))
	}

	seed := opts.Seed
	workflowScreen := workflow.NewScreen(seed.Workflows)
	workflowStates := session.NewStore(opts.SessionTTL, workflowScreen.Initial)
	analyticsStates := session.NewStore(opts.SessionTTL, analytics.InitialState)

	dashboardH := dashboard.NewHandler(dashboard.NewScreen(seed.Dashboard), shell)
	patientH := patient.NewHandler(patient.NewScreen(seed.Patients), shell)
	workflowH := workflow.NewHandler(workflowScreen, shell, workflowStates, opts.Logger)
	analyticsH := analytics.NewHandler(analytics.NewScreen(seed.Analytics), shell, analyticsStates, opts.Logger)
	complianceH := compliance.NewHandler(compliance.NewScreen(seed.Compliance), shell)

	screens := map[string]echo.HandlerFunc{
		dashboard.ScreenName:  dashboardH.Show,
		patient.ScreenName:    patientH.Show,
		workflow.ScreenName:   workflowH.Show,
		analytics.ScreenName:  analyticsH.Show,
		compliance.ScreenName: complianceH.Show,
	}

	sessionMW := opts.Sessions.Middleware()
	auditMW := middleware.Audit(opts.Logger, opts.IPHasher, ScreenFor, opts.AuditRecorders...)
	for _, r := range routes {
		h, ok := screens[r.Screen]
		if !ok || !renderer.Has(r.Screen) {
			return nil, fmt.Errorf("route %s: no screen %q", r.Path, r.Screen)
		}
		e.Match([]string{http.MethodGet, http.MethodHead}, r.Path, h, sessionMW, auditMW)
	}

	limiter := middleware.NewLimiter(opts.RateLimit)
	actions := e.Group("")
	actionMW := []echo.MiddlewareFunc{limiter.Middleware(), sessionMW, echomw.BodyLimit(opts.BodyLimit)}
	workflowH.RegisterActions(actions, actionMW...)
	analyticsH.RegisterActions(actions, actionMW...)

	return &Server{
		Echo:     e,
		sweepers: []session.Sweeper{workflowStates, analyticsStates, limiter},
	}, nil
}

// RunJanitors sweeps idle session state and rate-limit buckets until ctx is
// done. It blocks.
func (s *Server) RunJanitors(ctx context.Context, interval time.Duration) {
	var wg sync.WaitGroup
	for _, sw := range s.sweepers {
		wg.Add(1)
		go func(sw session.Sweeper) {
			defer wg.Done()
			sw.Run(ctx, interval)
		}(sw)
	}
	wg.Wait()
}

// ServeHTTP lets the server be used directly as an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Echo.ServeHTTP(w, r)
}
