// ABOUTME: Logger interface for structured logging throughout the application
// ABOUTME: Allows different logging implementations behind one contract

package interfaces

// Logger defines the interface for logging throughout the application.
//
// Example usage:
//
//	logger.Info("Search completed", map[string]interface{}{
//		"query":  "dune",
//		"cached": true,
//	})
type Logger interface {
	// Debug logs a debug level message with optional structured fields.
	Debug(msg string, fields map[string]interface{})

	// Info logs an info level message with optional structured fields.
	Info(msg string, fields map[string]interface{})

	// Warn logs a warning level message with optional structured fields.
	Warn(msg string, fields map[string]interface{})

	// Error logs an error level message with optional structured fields.
	Error(msg string, fields map[string]interface{})
}
