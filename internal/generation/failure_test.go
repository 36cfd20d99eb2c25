package generation_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/SouFien19/Ai-Resume-Builder-sub002/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		status     int
		hasPayload bool
		expected   generation.FailureKind
		failed     bool
	}{
		{"no response", 0, false, generation.TransportError, true},
		{"rate limited", 429, false, generation.QuotaExceeded, true},
		{"rate limited with payload", 429, true, generation.QuotaExceeded, true},
		{"bad request", 400, false, generation.UpstreamError, true},
		{"forbidden", 403, true, generation.UpstreamError, true},
		{"server error empty body", 500, false, generation.UpstreamError, true},
		{"unavailable", 503, false, generation.UpstreamError, true},
		{"ok without text", 200, false, generation.EmptyOutput, true},
		{"no content", 204, false, generation.EmptyOutput, true},
		{"ok with text", 200, true, 0, false},
		{"redirect", 302, false, generation.UpstreamError, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			kind, failed := generation.Classify(tc.status, tc.hasPayload)
			assert.Equal(t, tc.failed, failed)
			if tc.failed {
				assert.Equal(t, tc.expected, kind)
			}
		})
	}
}

// TestClassifyTotal walks every status a transport can report and checks
// that exactly one outcome is produced and that it is consistent.
func TestClassifyTotal(t *testing.T) {
	t.Parallel()

	for status := 0; status < 600; status++ {
		for _, payload := range []bool{false, true} {
			kind, failed := generation.Classify(status, payload)

			success := status >= 200 && status <= 299 && payload
			require.Equal(t, !success, failed, "status %d payload %v", status, payload)
			if !failed {
				continue
			}

			switch {
			case status == 429:
				assert.Equal(t, generation.QuotaExceeded, kind)
			case status == 0:
				assert.Equal(t, generation.TransportError, kind)
			case status >= 200 && status <= 299:
				assert.Equal(t, generation.EmptyOutput, kind)
			default:
				assert.Equal(t, generation.UpstreamError, kind, "status %d", status)
			}
		}
	}
}

func TestFailureErrorsIs(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		kind     generation.FailureKind
		sentinel error
	}{
		{generation.QuotaExceeded, generation.ErrQuotaExceeded},
		{generation.EmptyOutput, generation.ErrEmptyOutput},
		{generation.TransportError, generation.ErrTransport},
		{generation.UpstreamError, generation.ErrUpstream},
	}

	for _, tc := range testCases {
		f := &generation.Failure{Kind: tc.kind}
		assert.ErrorIs(t, f, tc.sentinel, tc.kind.String())

		wrapped := fmt.Errorf("summary: %w", f)
		kind, ok := generation.KindOf(wrapped)
		require.True(t, ok)
		assert.Equal(t, tc.kind, kind)
	}
}

func TestFailureWrapsCause(t *testing.T) {
	t.Parallel()

	f := &generation.Failure{Kind: generation.TransportError, Detail: "timed out", Err: context.DeadlineExceeded}

	assert.ErrorIs(t, f, context.DeadlineExceeded)
	assert.ErrorIs(t, f, generation.ErrTransport)
	assert.Contains(t, f.Error(), "timed out")
	assert.True(t, f.Temporary())
}

func TestFailureMessage(t *testing.T) {
	t.Parallel()

	f := generation.NewFailure(503, false, "overloaded", nil)
	require.NotNil(t, f)
	assert.Equal(t, generation.UpstreamError, f.Kind)
	assert.Equal(t, "text generation backend returned an error (status 503): overloaded", f.Error())
	assert.False(t, f.Temporary())

	assert.Nil(t, generation.NewFailure(200, true, "", nil), "success is not a failure")
}

func TestKindOfPlainError(t *testing.T) {
	t.Parallel()

	_, ok := generation.KindOf(errors.New("boom"))
	assert.False(t, ok)
	_, ok = generation.KindOf(nil)
	assert.False(t, ok)
}

func TestFailureKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "quota_exceeded", generation.QuotaExceeded.String())
	assert.Equal(t, "empty_output", generation.EmptyOutput.String())
	assert.Equal(t, "transport_error", generation.TransportError.String())
	assert.Equal(t, "upstream_error", generation.UpstreamError.String())
	assert.Equal(t, "FailureKind(0)", generation.FailureKind(0).String())
}
