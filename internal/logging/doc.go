// Package logging provides structured logging for the termide keybinding
// engine.
//
// This package wraps Go's log/slog to provide JSON-formatted logs with
// context propagation support, so matcher and config-reload behavior can be
// traced without threading a logger argument through every function.
//
// # Features
//
//   - JSON-formatted structured logging via slog
//   - Configurable log levels (DEBUG, INFO, WARN, ERROR)
//   - Context propagation (editor mode, component name, arbitrary attrs)
//   - Log rotation with configurable size limits
//   - Optional gzip compression for rotated logs
//
// # Thread Safety
//
// All types in this package are safe for concurrent use. The [Logger] type
// uses Go's slog internally which is designed for concurrent access. The
// [RotatingWriter] type uses a mutex to protect file operations during
// rotation. Child loggers created via With* methods share the underlying
// writer safely.
//
// # Basic Usage
//
// Create a logger for a config directory:
//
//	logger, err := logging.NewLogger("/path/to/config", "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	// Log messages at various levels
//	logger.Debug("detailed info", "key", "value")
//	logger.Info("operation completed", "duration_ms", 150)
//	logger.Warn("potential issue", "threshold", 100)
//	logger.Error("operation failed", "error", err.Error())
//
// # Context Propagation
//
// Create child loggers with persistent context attributes:
//
//	// Add mode context
//	modeLogger := logger.WithMode("normal")
//
//	// Add component context
//	componentLogger := modeLogger.WithComponent("matcher")
//
//	// All logs from componentLogger will include mode and component
//	componentLogger.Info("sequence matched", "command", "file.save")
//
// Output:
//
//	{"time":"...","level":"INFO","msg":"sequence matched","mode":"normal","component":"matcher","command":"file.save"}
//
// # Log Rotation
//
// [NewLogger] writes debug.log through a [RotatingWriter] configured with
// [DefaultRotationConfig] (rotate above 10MB, keep 3 backups, no
// compression). No Logger constructor takes a [RotationConfig]; a custom
// configuration applies to a writer built directly:
//
//	config := logging.RotationConfig{
//	    MaxSizeMB:  10,    // Rotate when file exceeds 10MB
//	    MaxBackups: 3,     // Keep 3 backup files
//	    Compress:   true,  // Gzip compress rotated files
//	}
//
//	rw, err := logging.NewRotatingWriter("/path/to/config/debug.log", config)
//	if err != nil {
//	    return err
//	}
//	defer rw.Close()
//
// Rotated files are named: debug.log.1, debug.log.2, etc., where .1 is the
// most recent backup. When compression is enabled, rotated files become
// debug.log.1.gz, etc.
//
// # Testing
//
// For testing, use [NopLogger] to discard all log output:
//
//	func TestSomething(t *testing.T) {
//	    logger := logging.NopLogger()
//	    // Use logger in tests without creating files
//	}
//
// # Log Levels
//
// The package defines four log levels:
//
//   - [LevelDebug]: Detailed information for debugging
//   - [LevelInfo]: General operational information (default)
//   - [LevelWarn]: Warning conditions that may need attention
//   - [LevelError]: Error conditions that affect functionality
//
// Use [ValidLevels] to get the list of valid level strings, and [ParseLevel]
// to normalize user-provided level strings.
package logging
