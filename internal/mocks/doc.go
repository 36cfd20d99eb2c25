// Package mocks provides centralized mock implementations for testing.
//
// The mocks here stand in for the generation port so content generators and
// the generation façade can be tested without a backend.
//
// Usage:
//
//	import "github.com/SouFien19/Ai-Resume-Builder-sub002/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    gen := &mocks.MockGenerator{
//	        GenerateTextFn: func(ctx context.Context, prompt string, opts ...generation.Option) (string, error) {
//	            return `{"status":"ok"}`, nil
//	        },
//	    }
//
//	    // Use the mock in your test...
//	}
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Implement the mock struct with function fields for each interface method
//  3. Record every call so tests can assert on what was sent
package mocks
