package webform

import "time"

// Config carries the serving knobs, loaded from the environment with the
// config package.
type Config struct {
	Addr            string        `env:"WEBFORM_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"WEBFORM_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout    time.Duration `env:"WEBFORM_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"WEBFORM_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"WEBFORM_SHUTDOWN_TIMEOUT" envDefault:"5s"`

	// SchemasDir points at a directory of schemafile documents loaded at
	// startup. Empty means schemas are registered in code only.
	SchemasDir string `env:"WEBFORM_SCHEMAS_DIR"`

	// FallbackLocale is used when Accept-Language matches no loaded catalog.
	FallbackLocale string `env:"WEBFORM_FALLBACK_LOCALE" envDefault:"en"`
}
