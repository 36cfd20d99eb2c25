// Package config handles configuration loading, parsing, and validation
// from environment variables, optional .env files and an optional config
// file. It decides once, at startup, whether a live text-generation
// credential is present; the rest of the application only sees the
// resulting read-only Config value.
package config
