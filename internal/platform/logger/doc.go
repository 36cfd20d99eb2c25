// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels. Test helpers in this package capture log output so that
// other packages can assert on individual structured fields.
package logger
