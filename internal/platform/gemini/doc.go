// Package gemini provides the generation.Transport implementations for a
// Gemini-style text-generation backend and the factory that wires a
// generation.Service from configuration.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the application's generation port to the external service
// without exposing the details of that service to the core application.
//
// Key components:
//
// 1. RESTTransport:
//   - Speaks the generateContent JSON envelope over net/http
//   - Works against any backend that exposes the same envelope
//
// 2. GenAITransport:
//   - Uses the google.golang.org/genai client library
//   - Maps genai.APIError status codes through generation.Classify
//
// 3. Error Handling:
//   - Exactly one attempt per call; retry policy belongs to the caller
//   - HTTP 429 and RESOURCE_EXHAUSTED become generation.QuotaExceeded
//   - A successful envelope without text becomes generation.EmptyOutput
//   - Network failures and deadlines become generation.TransportError
//   - Provider error text is redacted before it is attached to a failure
//
// 4. NewGenerator:
//   - Selects live mode when a credential is configured, mock mode otherwise
package gemini
