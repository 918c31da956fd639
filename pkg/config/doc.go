// Package config loads typed configuration structs from environment
// variables.
//
// Structs declare their variables with `env` tags; Load parses the
// environment into them, reading a .env file once per process first so local
// development needs no exported variables. Each struct type is parsed once
// and cached: repeated Load calls for the same type are cheap and always
// observe the same values.
//
//	type WebformConfig struct {
//		Addr         string        `env:"WEBFORM_ADDR" envDefault:":8080"`
//		MaxBodyBytes int64         `env:"WEBFORM_MAX_BODY" envDefault:"1048576"`
//		ReadTimeout  time.Duration `env:"WEBFORM_READ_TIMEOUT" envDefault:"5s"`
//	}
//
//	var cfg WebformConfig
//	if err := config.Load(&cfg); err != nil { ... }
//
// MustLoad panics on failure, for configuration the process cannot start
// without.
package config
