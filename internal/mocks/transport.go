package mocks

import (
	"context"
	"sync"

	"github.com/SouFien19/Ai-Resume-Builder-sub002/internal/generation"
)

// MockTransport implements generation.Transport for testing
type MockTransport struct {
	// InvokeFn allows test cases to mock the Invoke behavior
	InvokeFn func(ctx context.Context, req generation.Request) (string, error)

	// Default response values
	Text string
	Err  error

	// Call tracking for verification
	InvokeCalls struct {
		mu sync.Mutex

		// Count tracks how many times Invoke was called
		Count int

		// Requests contains all requests passed to Invoke calls
		Requests []generation.Request
	}
}

// Invoke implements the generation.Transport interface
func (m *MockTransport) Invoke(ctx context.Context, req generation.Request) (string, error) {
	m.InvokeCalls.mu.Lock()
	m.InvokeCalls.Count++
	m.InvokeCalls.Requests = append(m.InvokeCalls.Requests, req)
	m.InvokeCalls.mu.Unlock()

	if m.InvokeFn != nil {
		return m.InvokeFn(ctx, req)
	}
	return m.Text, m.Err
}

// CallCount returns the number of Invoke calls so far
func (m *MockTransport) CallCount() int {
	m.InvokeCalls.mu.Lock()
	defer m.InvokeCalls.mu.Unlock()
	return m.InvokeCalls.Count
}

// LastRequest returns the most recent request, or a zero Request if none
func (m *MockTransport) LastRequest() generation.Request {
	m.InvokeCalls.mu.Lock()
	defer m.InvokeCalls.mu.Unlock()
	if len(m.InvokeCalls.Requests) == 0 {
		return generation.Request{}
	}
	return m.InvokeCalls.Requests[len(m.InvokeCalls.Requests)-1]
}
