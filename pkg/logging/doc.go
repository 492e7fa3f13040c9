// Package logging configures log/slog for the redirect binaries.
//
// Loggers write JSON to stderr and carry "module" and "version" attributes
// on every record. The level comes from an explicit argument or LOG_LEVEL
// (debug, info, warn/warning, error; case-insensitive, default info). At
// debug level records also include their source location.
//
//	logging.SetDefaultStructuredLogger("redirectd", version)
//	slog.Info("manifest refreshed", "platforms", 4, "entries", 12)
//
// The CLI installs its logger after flag parsing so --log-level wins:
//
//	logging.SetDefaultStructuredLoggerWithLevel("redirect", version, cmd.String("log-level"))
//
// Output:
//
//	{"time":"2026-01-05T10:30:00Z","level":"INFO","msg":"manifest refreshed","module":"redirectd","version":"v1.0.0","platforms":4,"entries":12}
//
// NewLogLogger bridges packages that need a *log.Logger, such as
// http.Server.ErrorLog, onto the same handler.
package logging
