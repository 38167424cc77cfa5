// Package server exposes pitch card generation and draft storage over HTTP
// for the browser entry form.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/orayew2002/pitch-card/card"
	"github.com/orayew2002/pitch-card/domain"
	"github.com/orayew2002/pitch-card/store"
)

// maxBodyBytes caps request bodies; a pitch list is tiny.
const maxBodyBytes = 1 << 20

// Server wires the HTTP routes to the generator and the draft store.
type Server struct {
	gen    *card.Generator
	drafts store.Store
	log    *zap.Logger
	router chi.Router
}

// New creates a Server. log may be nil.
func New(gen *card.Generator, drafts store.Store, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{gen: gen, drafts: drafts, log: log}
	s.router = s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/presets", s.handlePresets)
		r.Get("/draft", s.handleLoadDraft)
		r.Put("/draft", s.handleSaveDraft)
		r.Delete("/draft", s.handleClearDraft)
		r.Post("/export", s.handleExport)
	})

	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// within shutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("server listening", zap.String("addr", addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen %s: %w", addr, err)
	case <-ctx.Done():
	}

	s.log.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	})
}

type exportRequest struct {
	Pitches []domain.Pitch `json:"pitches"`
	Sheets  int            `json:"sheets"`
}

type draftBody struct {
	Pitches []domain.Pitch `json:"pitches"`
}

func (s *Server) handlePresets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, domain.Presets())
}

func (s *Server) handleLoadDraft(w http.ResponseWriter, r *http.Request) {
	pitches, ok, err := s.drafts.Load(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no draft saved"})
		return
	}
	writeJSON(w, http.StatusOK, draftBody{Pitches: pitches})
}

func (s *Server) handleSaveDraft(w http.ResponseWriter, r *http.Request) {
	var body draftBody
	if err := decode(w, r, &body); err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.drafts.Save(r.Context(), body.Pitches); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClearDraft(w http.ResponseWriter, r *http.Request) {
	if err := s.drafts.Clear(r.Context()); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	req := exportRequest{Sheets: 1}
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if err := domain.Validate(req.Pitches); err != nil {
		s.writeError(w, err)
		return
	}

	exp, err := s.gen.Generate(req.Pitches, req.Sheets)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", card.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exp.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(exp.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(exp.Data); err != nil {
		s.log.Warn("write export", zap.Error(err))
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return &domain.OpError{Op: "server.decode", Kind: domain.KindInvalidInput, Err: err}
	}
	return nil
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case domain.IsKind(err, domain.KindInvalidInput):
		status = http.StatusBadRequest
	case domain.IsKind(err, domain.KindNotFound):
		status = http.StatusNotFound
	default:
		s.log.Error("request failed", zap.Error(err))
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
