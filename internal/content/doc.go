// Package content turns generation calls into resume content.
//
// Each Writer method builds a prompt, calls the generation port once and, for
// structured results, recovers JSON with the extract package. Generation
// failures are returned to the caller wrapped with context. Output that
// cannot be parsed never is: it degrades to an empty or fallback result and
// a warning in the log.
package content
