// Package server wires the job portal's tools and resources into an MCP
// server and hosts it over streamable HTTP or stdio.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/sync/errgroup"

	"github.com/ishu9bansal/mcp-job-portal/internal/store"
	"github.com/ishu9bansal/mcp-job-portal/internal/types"
)

const serverName = "job-portal-server"
const serverVersion = "1.0.0"

// Server owns the per-process record stores and the MCP server built on top
// of them. Stores are created once here and handed to every handler; there
// is no ambient global state.
type Server struct {
	mcp        *mcp.Server
	httpServer *http.Server
	profiles   *store.Store[types.Profile]
	jobs       *store.Store[types.Job]
}

// Config holds server configuration.
type Config struct {
	Port int
}

// New creates a server with empty collections and all tools and resources
// registered.
func New(cfg Config) *Server {
	s := &Server{
		profiles: store.New[types.Profile](),
		jobs:     store.New[types.Job](),
	}

	s.mcp = mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)
	s.registerTools()
	s.registerResources()

	mux := http.NewServeMux()
	// A stateless handler gives every POST its own logical session, matching
	// the one-transport-per-request model this server replaces.
	mux.Handle("/mcp", mcp.NewStreamableHTTPHandler(
		func(*http.Request) *mcp.Server { return s.mcp },
		&mcp.StreamableHTTPOptions{Stateless: true, JSONResponse: true},
	))
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start serves HTTP until SIGINT/SIGTERM, then drains in-flight requests.
// A failure to bind the port is returned immediately.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Job portal MCP server listening on %s/mcp", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// RunStdio serves the MCP server over stdin/stdout instead of HTTP, for
// clients that spawn the portal as a subprocess.
func (s *Server) RunStdio(ctx context.Context) error {
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// withLogging tags each request with an ID and logs method, path and timing.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		start := time.Now()
		log.Printf("[%s] %s %s %s", reqID, r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s completed in %v", reqID, r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
