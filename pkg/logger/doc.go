// Package logger provides a structured logging interface for gifsaver.
//
// It wraps zerolog behind the Logger interface:
//   - Levels: debug, info, warn, error
//   - Structured fields via WithField, WithFields and the *WithFields methods
//   - Coloured console output on stderr, plus an optional append-only log file
//   - A global logger for the CLI, and NewNopLogger/NewTestLogger for tests
//
// Basic Usage:
//
//	if err := logger.Initialize(&cfg.Logging); err != nil {
//	    return err
//	}
//	logger.WithField("query", "cat").Info("Search started")
//
// Components take a Logger in their constructor and fall back to the global
// logger when given nil:
//
//	client := giphy.NewClient(cfg, cache.New(), limiter, nil)
package logger
