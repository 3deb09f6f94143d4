// Package server exposes the coaching service over HTTP. It is a thin
// request/response façade: all validation errors are produced before
// any mutation, and every error is mapped to a status code at this
// boundary.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/kairos-coach/kairos/core/coach"
	"github.com/kairos-coach/kairos/core/faults"
)

// Server is the HTTP façade over the coach service.
type Server struct {
	svc    *coach.Service
	logger *zap.Logger
	mux    *http.ServeMux
}

// New creates a server with all routes registered.
func New(svc *coach.Service, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		svc:    svc,
		logger: logger,
		mux:    http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /api/icebreaker", s.handleIcebreaker)
	s.mux.HandleFunc("POST /api/icebreaker-activity", s.handleIcebreakerActivity)
	s.mux.HandleFunc("GET /api/simulation-info", s.handleSimulationInfo)
	s.mux.HandleFunc("GET /api/messages", s.handleGetMessages)
	s.mux.HandleFunc("POST /api/messages", s.handleSendMessage)
	s.mux.HandleFunc("POST /api/reset-messages", s.handleResetMessages)
	s.mux.HandleFunc("GET /api/scenario-challenges", s.handleScenarioChallenges)
	s.mux.HandleFunc("POST /api/start-scenario", s.handleStartScenario)
	s.mux.HandleFunc("GET /api/health", s.handleHealth)
}

// Handler returns the complete handler chain.
func (s *Server) Handler() http.Handler {
	return s.withRequestLogging(s.mux)
}

// ListenAndServe runs the server until ctx is cancelled, then shuts
// down gracefully within the given timeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string, readTimeout, writeTimeout, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info("http server listening", zap.String("addr", addr))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"offline": s.svc.Offline(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", zap.Error(err))
	}
}

// writeError maps a fault to its status code; anything unclassified is
// a 500 with a generic message.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if f, ok := faults.As(err); ok {
		s.writeJSON(w, f.HTTPStatus(), map[string]string{"message": f.Message})
		return
	}
	s.logger.Error("unhandled error",
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	s.writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
}

func (s *Server) decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return faults.Validationf("invalid request body: %v", err)
	}
	return nil
}
