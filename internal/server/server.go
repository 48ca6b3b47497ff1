// Package server wires the portfolio component into a gin HTTP server.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/portfolio"
	"github.com/Zachkp/portfolio/internal/visits"
)

// Route paths used by the templates
const (
	ProjectsFragmentPath = "/fragments/projects"
	NavFragmentPrefix    = "/fragments/nav/"
)

const shutdownTimeout = 10 * time.Second

// VisitStore is the persistence used by visitor tracking and admin stats
type VisitStore interface {
	Record(ctx context.Context, v visits.Visit) error
	Stats(ctx context.Context, now time.Time) (*visits.Stats, error)
}

// Options configures a Server
type Options struct {
	Addr    string
	Profile portfolio.Profile
	Source  portfolio.ProjectSource

	// Visits enables visitor tracking when set. Hasher must be set with it.
	Visits VisitStore
	Hasher *visits.Hasher

	// AdminToken enables /admin/stats when non-empty.
	AdminToken string

	Logger *slog.Logger
	Now    func() time.Time
}

// Server serves the portfolio page
type Server struct {
	opts     Options
	engine   *gin.Engine
	renderer *portfolio.Renderer
	logger   *slog.Logger

	// background visit writes
	wg sync.WaitGroup
}

// New builds the gin engine and routes
func New(opts Options) (*Server, error) {
	if opts.Source == nil {
		return nil, errors.New("server: project source is required")
	}
	if opts.Visits != nil && opts.Hasher == nil {
		return nil, errors.New("server: visit tracking requires a hasher")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	renderer, err := portfolio.NewRenderer()
	if err != nil {
		return nil, err
	}

	s := &Server{
		opts:     opts,
		engine:   gin.New(),
		renderer: renderer,
		logger:   opts.Logger,
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	r := s.engine
	r.SetHTMLTemplate(s.renderer.Template())

	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(requestLogger(s.logger))
	if s.opts.Visits != nil {
		r.Use(s.visitorTracking())
	}

	r.GET("/", s.index)
	r.GET(ProjectsFragmentPath, s.projectsFragment)
	r.GET(NavFragmentPrefix+":section", s.navFragment)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if s.opts.AdminToken != "" {
		s.setupAdminRoutes(r)
	}
}

// Handler exposes the engine
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("portfolio listening", "addr", s.opts.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info("shutting down")
	err := srv.Shutdown(shutdownCtx)
	s.wg.Wait()
	if err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// Wait blocks until pending visit writes finish
func (s *Server) Wait() {
	s.wg.Wait()
}

func (s *Server) page(state portfolio.ViewState, scrollTo string) portfolio.Page {
	return portfolio.Page{
		Profile:     s.opts.Profile,
		State:       state,
		ProjectsURL: ProjectsFragmentPath,
		NavURL:      NavFragmentPrefix,
		ScrollTo:    scrollTo,
	}
}
