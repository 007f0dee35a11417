// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports development (console)
// and production (json) output, and integrates with the Fiber web framework.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID (request ID) from a Fiber context and
// attaches it to the log entry, so all logs for one request can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "json"})
//	log.Info("Ledger run complete", zap.Int("applied", 3))
package logger
