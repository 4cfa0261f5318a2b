// Package server exposes the tutoring flow over HTTP. The browser client
// holds the session state and round-trips it in every request body; the
// server validates it on arrival, applies one interaction, and returns
// the updated copy alongside the render data.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/mathtutor/internal/catalog"
	"github.com/abhisek/mathtutor/internal/store"
	"github.com/abhisek/mathtutor/internal/tutor"
)

// Options carries the server's dependencies.
type Options struct {
	Addr     string
	Catalog  *catalog.Catalog
	Progress store.ProgressRepo
	Tutor    *tutor.Service
	Log      *zap.Logger
}

// Server is the HTTP front door for the tutoring API.
type Server struct {
	engine   *gin.Engine
	addr     string
	catalog  *catalog.Catalog
	progress store.ProgressRepo
	tutor    *tutor.Service
	log      *zap.Logger
}

// New wires the routes and middleware. The catalog must be non-nil; it
// was loaded fatally at startup.
func New(opts Options) *Server {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestID())
	engine.Use(RequestLogger(opts.Log))
	engine.Use(cors.Default())

	s := &Server{
		engine:   engine,
		addr:     opts.Addr,
		catalog:  opts.Catalog,
		progress: opts.Progress,
		tutor:    opts.Tutor,
		log:      opts.Log,
	}

	engine.GET("/healthz", s.handleHealth)

	api := engine.Group("/api")
	api.POST("/login", s.handleLogin)
	api.POST("/problem", s.handleProblem)
	api.POST("/answer", s.handleAnswer)
	api.POST("/hint", s.handleHint)
	api.POST("/solution", s.handleSolution)
	api.POST("/next", s.handleNext)
	api.GET("/users/:id/stats", s.handleStats)

	return s
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.log.Info("server listening", zap.String("addr", s.addr))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
