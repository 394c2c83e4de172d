package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "chatbox server is running!"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Request body must be JSON like {\"message\": \"...\"}", r))
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "message must not be empty", r))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.opts.ReplyTimeout)
	defer cancel()

	reply, err := s.replier.Reply(ctx, req.Message)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("provider", s.replier.Name()).
			Str("request_id", chimiddleware.GetReqID(r.Context())).
			Msg("provider failed")
		writeJSON(w, http.StatusBadGateway, errorResp("PROVIDER_ERROR", "The model provider failed to answer", r))
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{Reply: reply})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) ErrorResponse {
	return ErrorResponse{
		Error: APIError{
			Code:      code,
			Message:   message,
			RequestID: chimiddleware.GetReqID(r.Context()),
		},
	}
}
