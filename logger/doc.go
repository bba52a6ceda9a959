// Package logger provides structured logging for hofkit using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with map-based structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.WithComponent("fold")
//	log.Info("evaluated", logger.Fields(logger.FieldOperation, "zip", logger.FieldResult, 1.0))
//
// The library packages (fold, selector, util) never log; only the CLI,
// server and internal/app layers do.
package logger
