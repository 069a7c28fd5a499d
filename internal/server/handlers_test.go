package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortexnotes/cortex-ai/apimodels"
	"github.com/cortexnotes/cortex-ai/internal/analyzer"
	"github.com/cortexnotes/cortex-ai/internal/codetask"
	"github.com/cortexnotes/cortex-ai/internal/config"
	"github.com/cortexnotes/cortex-ai/internal/llm"
)

// stubProvider answers every chain with a fixed response and can be flipped
// into a failing mode to exercise the error envelope.
type stubProvider struct {
	mu   sync.Mutex
	fail error
}

func (s *stubProvider) Complete(ctx context.Context, cfg llm.ModelConfig, promptText string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return "", s.fail
	}

	switch {
	case strings.Contains(promptText, "concise summary"):
		return "A short prose summary.", nil
	case strings.Contains(promptText, "important insights"):
		return "- first insight\n- second insight", nil
	case strings.Contains(promptText, "thought-provoking questions"):
		return "1. a question?", nil
	case strings.Contains(promptText, "connections to other domains"):
		return "* a connection", nil
	}
	return "raw completion", nil
}

func newTestServer(provider llm.Provider) *Server {
	cfg := config.Config{
		Server: config.ServerConfig{
			Port:           "0",
			Host:           "127.0.0.1",
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   5 * time.Second,
			AllowedOrigins: []string{"*"},
		},
	}
	profiles := llm.Profiles{
		llm.PurposeGeneral:  {Model: "general-model"},
		llm.PurposeReasoner: {Model: "reasoner-model"},
		llm.PurposeCoder:    {Model: "coder-model"},
	}
	return New(cfg, analyzer.New(provider, profiles), codetask.New(provider, profiles))
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleAnalyze(t *testing.T) {
	srv := newTestServer(&stubProvider{})

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/ai/analyze", `{"content": "The sky is blue."}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var result apimodels.AnalysisResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "A short prose summary.", result.Summary)
	assert.Equal(t, []string{"first insight", "second insight"}, result.Insights)
	assert.Equal(t, []string{"a question?"}, result.Questions)
	assert.Equal(t, []string{"a connection"}, result.Connections)
}

func TestHandleAnalyzeEmptyContent(t *testing.T) {
	srv := newTestServer(&stubProvider{})

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/ai/analyze", `{"content": ""}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp apimodels.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, http.StatusBadRequest, errResp.StatusCode)
	assert.Equal(t, "Bad Request", errResp.Error)
}

func TestHandleAnalyzeMalformedBody(t *testing.T) {
	srv := newTestServer(&stubProvider{})

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/ai/analyze", `{"content": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyzeGatewayFailure(t *testing.T) {
	provider := &stubProvider{fail: &llm.GatewayError{Err: errors.New("upstream down")}}
	srv := newTestServer(provider)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/ai/analyze", `{"content": "anything"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var errResp apimodels.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, http.StatusInternalServerError, errResp.StatusCode)
	assert.Equal(t, "Internal Server Error", errResp.Error)
	assert.Contains(t, errResp.Message, "llm gateway")
}

func TestHandleCodeGenerate(t *testing.T) {
	srv := newTestServer(&stubProvider{})

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/ai/code/generate",
		`{"description": "a function that adds two numbers"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp apimodels.CodeGenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "raw completion", resp.Code)
}

func TestHandleCodeExplainMissingCode(t *testing.T) {
	srv := newTestServer(&stubProvider{})

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/ai/code/explain", `{"language": "go"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCodeReview(t *testing.T) {
	srv := newTestServer(&stubProvider{})

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/ai/code/review",
		`{"code": "var x = 1", "language": "javascript"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp apimodels.CodeReviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "raw completion", resp.Review)
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(&stubProvider{})

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/ai/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}
