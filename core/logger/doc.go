// Package logger provides a structured logging facility based on Zap.
//
// The logger honors the pipeline's stream contract: progress messages
// (info and below) are written to stdout while warnings and errors go to
// stderr, so recovered fetch failures show up on stderr without polluting
// the progress stream.
//
// # Context Awareness
//
// For the HTTP directory feature the WithRayID helper extracts the RayID
// from a Fiber context and attaches it to the log entry, ensuring that all
// logs related to a specific request can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Fetch started")
package logger
