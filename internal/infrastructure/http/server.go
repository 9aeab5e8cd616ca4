// Package http provides the HTTP server infrastructure.
// Clean Architecture: Framework/driver layer - outermost circle.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/svpcet/campus-compass/internal/domain/entities"
	"github.com/svpcet/campus-compass/internal/domain/ports"
	"github.com/svpcet/campus-compass/internal/domain/usecases"
)

// Server is the HTTP server for the navigation API.
type Server struct {
	navigate *usecases.NavigateUseCase
	logger   *zap.Logger
	addr     string
}

// NewServer creates a new HTTP server.
func NewServer(navigate *usecases.NavigateUseCase, logger *zap.Logger, addr string) *Server {
	return &Server{
		navigate: navigate,
		logger:   logger,
		addr:     addr,
	}
}

// Start runs the HTTP server until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/find-location", s.handleFindLocation)
	mux.HandleFunc("/api/health", s.handleHealth)

	server := &http.Server{
		Addr:         s.addr,
		Handler:      corsMiddleware(s.loggingMiddleware(mux)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // model calls can be slow
	}

	s.logger.Info("server starting", zap.String("addr", s.addr))

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	return server.ListenAndServe()
}

// messageBody is the error response shape.
type messageBody struct {
	Message string `json:"message"`
}

// parsedBody is the success response when the model honored the reply contract.
type parsedBody struct {
	ParsedResponse *entities.NavigationResult `json:"parsedResponse"`
	ChatID         string                     `json:"chat_id"`
}

// degradedBody is the success response when the reply could not be decoded.
// The raw text is still delivered rather than discarded.
type degradedBody struct {
	Response     string `json:"response"`
	ChatID       string `json:"chat_id"`
	ParsingError string `json:"parsingError"`
}

// handleFindLocation runs one navigation turn.
func (s *Server) handleFindLocation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, messageBody{Message: "Method not allowed"})
		return
	}

	var req entities.NavigationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageBody{Message: "Invalid request body"})
		return
	}

	result, err := s.navigate.HandleTurn(r.Context(), &req)
	if err != nil {
		s.writeTurnError(w, r, err)
		return
	}

	if result.Created {
		s.logger.Info("new chat instance created", zap.String("chat_id", result.ChatID))
	} else {
		s.logger.Info("using existing chat instance", zap.String("chat_id", result.ChatID))
	}

	if result.Parsed != nil {
		writeJSON(w, http.StatusOK, parsedBody{ParsedResponse: result.Parsed, ChatID: result.ChatID})
		return
	}
	writeJSON(w, http.StatusOK, degradedBody{
		Response:     result.Raw,
		ChatID:       result.ChatID,
		ParsingError: result.ParseError,
	})
}

// writeTurnError maps the failure taxonomy onto HTTP statuses.
func (s *Server) writeTurnError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ports.ErrEmptyMessage):
		writeJSON(w, http.StatusBadRequest, messageBody{Message: "User message is required"})
	case errors.Is(err, ports.ErrSessionNotFound):
		writeJSON(w, http.StatusNotFound, messageBody{Message: "Chat not found"})
	case errors.Is(err, ports.ErrInvalidSession):
		writeJSON(w, http.StatusInternalServerError, messageBody{Message: "Chat instance is not valid"})
	case errors.Is(err, ports.ErrEmptyModelReply):
		writeJSON(w, http.StatusInternalServerError, messageBody{Message: "Empty response from model"})
	default:
		s.logger.Error("turn failed", zap.String("path", r.URL.Path), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, messageBody{Message: "Internal server error"})
	}
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			return
		}
		next.ServeHTTP(w, r)
	})
}
