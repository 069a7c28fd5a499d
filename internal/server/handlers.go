package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cortexnotes/cortex-ai/api/models"
	"github.com/cortexnotes/cortex-ai/apimodels"
)

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	defer r.Body.Close()

	if req.Content == "" {
		writeError(w, http.StatusBadRequest, "content must not be empty")
		return
	}

	result, err := s.analyzer.Analyze(r.Context(), req.Content)
	if err != nil {
		slog.Error("analyze request failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCodeGenerate(w http.ResponseWriter, r *http.Request) {
	var req models.CodeGenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	defer r.Body.Close()

	if req.Description == "" {
		writeError(w, http.StatusBadRequest, "description must not be empty")
		return
	}

	code, err := s.codetask.Generate(r.Context(), req.Description, req.Language)
	if err != nil {
		slog.Error("code generate request failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, apimodels.CodeGenerateResponse{Code: code})
}

func (s *Server) handleCodeExplain(w http.ResponseWriter, r *http.Request) {
	var req models.CodeExplainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	defer r.Body.Close()

	if req.Code == "" {
		writeError(w, http.StatusBadRequest, "code must not be empty")
		return
	}

	explanation, err := s.codetask.Explain(r.Context(), req.Code, req.Language)
	if err != nil {
		slog.Error("code explain request failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, apimodels.CodeExplainResponse{Explanation: explanation})
}

func (s *Server) handleCodeReview(w http.ResponseWriter, r *http.Request) {
	var req models.CodeReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	defer r.Body.Close()

	if req.Code == "" {
		writeError(w, http.StatusBadRequest, "code must not be empty")
		return
	}

	review, err := s.codetask.Review(r.Context(), req.Code, req.Language)
	if err != nil {
		slog.Error("code review request failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, apimodels.CodeReviewResponse{Review: review})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, apimodels.ErrorResponse{
		StatusCode: status,
		Message:    message,
		Error:      http.StatusText(status),
	})
}
