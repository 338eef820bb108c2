// Package logger provides structured logging built on the standard slog
// package: a factory with functional options for level, format, and output,
// and a set of pre-built attribute helpers for common fields.
//
//	log := logger.New(
//		logger.WithDevelopment("spaserve"),
//	)
//
//	log.Info("server starting",
//		logger.Component("server"),
//		logger.Event("startup"),
//	)
//
// Attribute helpers return empty slog.Attr values for nil/empty input, so
// they can be passed unconditionally.
package logger
