// Package logger provides structured logging setup and context plumbing
// for the application, built on log/slog.
package logger
