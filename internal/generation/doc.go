// Package generation is the boundary between the resume application and an
// external text-generation (LLM) service. It defines the request value, the
// closed failure taxonomy and its classifier, the Transport and Synthesizer
// ports, and Service, the façade every content generator calls.
//
// Service picks one of two paths per call:
//
//   - live: a configured credential is present, so the request goes to a
//     Transport that performs exactly one network attempt. Its classified
//     *Failure is returned unchanged; there is no silent fallback.
//   - mock: no credential, so a deterministic Synthesizer answers. This path
//     cannot fail.
//
// Service returns raw text. Callers that expect JSON pass that text to the
// extract package.
package generation
