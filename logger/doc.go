// Package logger provides structured logging for stringr using zerolog.
//
// The core text and matching functions never log. Logging happens in the
// opt-in layers: compiled matchers built with wildcard.WithLogger, the
// config loader, and the observability setup.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("wildcard")
//	log.Debug("pattern compiled", logger.Fields(logger.FieldPattern, "*.log"))
package logger
