// Package logger provides structured logging for fixmap using zerolog.
//
// It supports multiple output formats (JSON, console), log level
// configuration, and component-scoped loggers with structured fields.
// Logging is purely observational: no fixmap behavior depends on it.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("mapping")
//	log.Debug("fixture resolved", logger.Fields(logger.FieldFixture, "contexts"))
package logger
