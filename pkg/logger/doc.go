// Package logger builds configured slog.Logger instances for the library's
// services.
//
// The factory defaults to production-safe output (JSON, info level, stdout)
// and adjusts through options:
//
//	log := logger.New(
//		logger.WithDevelopment("webform"),
//		logger.WithAttr(slog.String("version", version)),
//	)
//
// WithDevelopment and WithProduction are service presets: they pick the
// format and level a service wants in that environment and tag every record
// with the service name.
package logger
