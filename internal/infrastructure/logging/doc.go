// Package logging provides structured logging for the demo binaries.
//
// This package wraps Go's standard log/slog package so both binaries log
// the same way: level filtering, JSON or text output, and default
// service/version fields on every entry.
//
// Diagnostics go to the logger (stderr by default); operator prompts and
// message output stay on stdout, printed directly by the interaction
// loops. Never log bearer tokens.
//
// Usage:
//
//	logger := logging.New(cfg.Logging, "producer", "1.0.0")
//	logger.Info("connected", "broker", cfg.Broker.URL)
package logging
