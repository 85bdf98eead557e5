// Package logger provides a structured logging facility based on Zap.
//
// The CLI logs to stderr in console format by default; serve mode usually runs
// with the json encoder. Report output never goes through the logger.
//
// # Context Awareness
//
// In serve mode every request carries a RayID (Request ID). WithRayID extracts it
// from the Fiber context and attaches it to the log entry, so all logs of one
// request can be correlated.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: console or json
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Comparison finished", zap.Int("common", 42))
package logger
