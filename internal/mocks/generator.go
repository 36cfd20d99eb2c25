package mocks

import (
	"context"
	"sync"

	"github.com/SouFien19/Ai-Resume-Builder-sub002/internal/generation"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateTextFn allows test cases to mock the GenerateText behavior
	GenerateTextFn func(ctx context.Context, prompt string, opts ...generation.Option) (string, error)

	// Default response values
	Text string
	Err  error

	// Call tracking for verification
	GenerateTextCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times GenerateText was called
		Count int

		// Prompts contains all prompts passed to GenerateText calls
		Prompts []string

		// Requests holds each call's options resolved against the standard
		// defaults, so tests can assert on max tokens and temperature
		Requests []generation.Request
	}
}

// GenerateText implements the generation.Generator interface
func (m *MockGenerator) GenerateText(
	ctx context.Context,
	prompt string,
	opts ...generation.Option,
) (string, error) {
	// Options that fail validation are recorded as a zero Request
	req, _ := generation.NewRequest(prompt, opts...)

	m.GenerateTextCalls.mu.Lock()
	m.GenerateTextCalls.Count++
	m.GenerateTextCalls.Prompts = append(m.GenerateTextCalls.Prompts, prompt)
	m.GenerateTextCalls.Requests = append(m.GenerateTextCalls.Requests, req)
	m.GenerateTextCalls.mu.Unlock()

	// Use custom function if provided
	if m.GenerateTextFn != nil {
		return m.GenerateTextFn(ctx, prompt, opts...)
	}

	// Return default values
	return m.Text, m.Err
}

// CallCount returns the number of GenerateText calls so far
func (m *MockGenerator) CallCount() int {
	m.GenerateTextCalls.mu.Lock()
	defer m.GenerateTextCalls.mu.Unlock()
	return m.GenerateTextCalls.Count
}

// LastPrompt returns the prompt of the most recent call, or "" if none
func (m *MockGenerator) LastPrompt() string {
	m.GenerateTextCalls.mu.Lock()
	defer m.GenerateTextCalls.mu.Unlock()
	if len(m.GenerateTextCalls.Prompts) == 0 {
		return ""
	}
	return m.GenerateTextCalls.Prompts[len(m.GenerateTextCalls.Prompts)-1]
}

// LastRequest returns the resolved request of the most recent call
func (m *MockGenerator) LastRequest() generation.Request {
	m.GenerateTextCalls.mu.Lock()
	defer m.GenerateTextCalls.mu.Unlock()
	if len(m.GenerateTextCalls.Requests) == 0 {
		return generation.Request{}
	}
	return m.GenerateTextCalls.Requests[len(m.GenerateTextCalls.Requests)-1]
}

// NewMockGeneratorWithText creates a MockGenerator that returns the specified text
func NewMockGeneratorWithText(text string) *MockGenerator {
	return &MockGenerator{
		Text: text,
	}
}

// NewMockGeneratorWithError creates a MockGenerator that returns the specified error
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{
		Err: err,
	}
}

// MockGeneratorThatFails creates a MockGenerator whose calls fail the way a
// rate-limited backend does
func MockGeneratorThatFails() *MockGenerator {
	return NewMockGeneratorWithError(&generation.Failure{
		Kind:   generation.QuotaExceeded,
		Status: 429,
		Detail: "mock quota exceeded",
	})
}
