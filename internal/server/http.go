// Package server exposes the HTTP surface: the OAuth connect/callback pair,
// connection status, publish, and chat endpoints.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pixaro/brand-social-bridge/internal/biz/domain"
	"github.com/pixaro/brand-social-bridge/internal/biz/usecase"
)

// Server is the HTTP server wiring the usecases to routes.
type Server struct {
	connectUC *usecase.ConnectUsecase
	chatUC    *usecase.ChatUsecase
	composer  *usecase.ComposerUsecase
	publisher *usecase.PublishUsecase

	server *http.Server
	port   int
}

// NewServer creates a new HTTP server.
func NewServer(
	connectUC *usecase.ConnectUsecase,
	chatUC *usecase.ChatUsecase,
	composer *usecase.ComposerUsecase,
	publisher *usecase.PublishUsecase,
	port int,
) *Server {
	return &Server{
		connectUC: connectUC,
		chatUC:    chatUC,
		composer:  composer,
		publisher: publisher,
		port:      port,
	}
}

// Router builds the chi router with all routes registered.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/auth/connect", s.handleConnect)
	r.Get("/auth/callback", s.handleCallback)
	r.Get("/auth/status", s.handleStatus)
	r.Post("/publish", s.handlePublish)
	r.Post("/chat", s.handleChat)

	return r
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:        fmt.Sprintf(":%d", s.port),
		Handler:     s.Router(),
		ReadTimeout: 30 * time.Second,
		IdleTimeout: 120 * time.Second,
	}

	fmt.Printf("[Server] Listening on port %d\n", s.port)
	return s.server.ListenAndServe()
}

// Stop stops the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

func (s *Server) handleConnect(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		http.Error(w, "session_id is required", http.StatusBadRequest)
		return
	}

	authURL, err := s.connectUC.BeginConnect(r.Context(), sessionID)
	if err != nil {
		s.writeErrorPage(w, err)
		return
	}

	http.Redirect(w, r, authURL, http.StatusFound)
}

func (s *Server) handleCallback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	// The provider redirects with denied=<token> when the user refuses.
	if q.Get("denied") != "" {
		s.writeErrorPage(w, domain.ErrAuthorizationDenied)
		return
	}

	creds, err := s.connectUC.CompleteConnect(r.Context(),
		q.Get("state"), q.Get("oauth_token"), q.Get("oauth_verifier"))
	if err != nil {
		s.writeErrorPage(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, `<html><body><h2>Connected</h2><p>Account @%s linked. You can close this window and return to the chat.</p></body></html>`,
		html.EscapeString(creds.Profile.Handle))
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		http.Error(w, "session_id is required", http.StatusBadRequest)
		return
	}

	connected, handle := s.connectUC.Status(r.Context(), sessionID)
	s.writeJSON(w, http.StatusOK, map[string]any{
		"connected": connected,
		"handle":    handle,
	})
}

type publishRequest struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
	ImageRef  string `json:"image_ref"`
}

func (s *Server) handlePublish(w http.ResponseWriter, r *http.Request) {
	var req publishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.SessionID == "" {
		http.Error(w, "session_id is required", http.StatusBadRequest)
		return
	}

	text := req.Text
	if text == "" {
		// No explicit text: compose from an empty brief (fallbacks apply).
		text = s.composer.Compose(r.Context(), "").Full
	}

	post, err := s.publisher.Publish(r.Context(), req.SessionID, text, req.ImageRef)
	if err != nil {
		s.writeJSON(w, statusForError(err), map[string]any{
			"success": false,
			"message": usecase.CorrectiveMessage(err),
		})
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"post_url": post.PostURL,
	})
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	ImageRef  string `json:"image_ref"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.SessionID == "" || req.Message == "" {
		http.Error(w, "session_id and message are required", http.StatusBadRequest)
		return
	}

	result, err := s.chatUC.HandleMessage(r.Context(), req.SessionID, req.Message, req.ImageRef)
	if err != nil {
		s.writeJSON(w, http.StatusInternalServerError, map[string]any{
			"response": usecase.CorrectiveMessage(err),
		})
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"response":    result.Reply,
		"action_type": result.ActionType,
		"published":   result.Published,
		"post_url":    result.PostURL,
		"image_url":   result.ImageURL,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Printf("[Server] Failed to encode response: %v\n", err)
	}
}

func (s *Server) writeErrorPage(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusForError(err))
	fmt.Fprintf(w, `<html><body><h2>Connection failed</h2><p>%s</p></body></html>`,
		html.EscapeString(usecase.CorrectiveMessage(err)))
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotConnected):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrInvalidHandshakeState):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAuthorizationDenied):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrMediaUploadFailed), errors.Is(err, domain.ErrPublishFailed):
		// The provider answered and rejected the content; not a gateway fault.
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrProviderUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusBadGateway
	}
}
