package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SouFien19/Ai-Resume-Builder-sub002/internal/config"
	"github.com/SouFien19/Ai-Resume-Builder-sub002/internal/content"
)

// mockEnv makes config.Load see no credential, so the run uses mock mode.
func mockEnv(t *testing.T) {
	t.Helper()
	for _, name := range config.CredentialEnvVars {
		t.Setenv(name, "")
	}
	t.Setenv("RESUMEGEN_LLM_ENDPOINT", "")
	t.Setenv("RESUMEGEN_LLM_PROVIDER", "")
	t.Setenv("RESUMEGEN_LOG_LEVEL", "error")
}

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunMockModeText(t *testing.T) {
	mockEnv(t)

	code, stdout, _ := runCLI(t, "", "Write", "a", "professional", "summary", "for", "a", "Go", "developer")

	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "professional")
}

func TestRunMockModeJSON(t *testing.T) {
	mockEnv(t)

	code, stdout, _ := runCLI(t, "", "-json", "Suggest job opportunities for a Go developer")
	require.Equal(t, exitOK, code)

	var jobs []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &jobs))
	assert.NotEmpty(t, jobs)
}

func TestRunJSONWithoutValuePrintsNull(t *testing.T) {
	mockEnv(t)

	code, stdout, _ := runCLI(t, "", "-json", "Write a cover letter for Acme")

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "null", strings.TrimSpace(stdout))
}

func TestRunPromptFromStdin(t *testing.T) {
	mockEnv(t)

	code, stdout, _ := runCLI(t, "Improve these bullet points:\n- wrote code\n", "-json")
	require.Equal(t, exitOK, code)

	var bullets []string
	require.NoError(t, json.Unmarshal([]byte(stdout), &bullets))
	assert.Len(t, bullets, 3)
}

func TestRunUsageErrors(t *testing.T) {
	mockEnv(t)

	code, _, stderr := runCLI(t, "   ")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "prompt cannot be empty")

	code, _, _ = runCLI(t, "", "-no-such-flag", "prompt")
	assert.Equal(t, exitUsage, code)

	code, _, stderr = runCLI(t, "", "-h")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stderr, "usage: resumegen")
}

func TestRunInvalidOptions(t *testing.T) {
	mockEnv(t)

	code, stdout, stderr := runCLI(t, "", "-max-tokens", "0", "prompt")

	assert.Equal(t, exitFailed, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, content.MsgInvalidRequest)
}

func TestRunLiveFailure(t *testing.T) {
	mockEnv(t)

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"error":{"code":429,"message":"quota","status":"RESOURCE_EXHAUSTED"}}`)
	}))
	defer srv.Close()

	t.Setenv("RESUMEGEN_LLM_API_KEY", "test-key")
	t.Setenv("RESUMEGEN_LLM_ENDPOINT", srv.URL)

	code, stdout, stderr := runCLI(t, "", "Suggest job opportunities")

	assert.Equal(t, exitFailed, code)
	assert.Empty(t, stdout, "no mock output once a credential is set")
	assert.Contains(t, stderr, content.MsgTemporarilyUnavailable)
	assert.Equal(t, 1, calls)
}
