package webform

import (
	"log/slog"

	"github.com/dmitrymomot/formkit"
	"github.com/dmitrymomot/formkit/pkg/i18n"
)

// Service serves validation for a set of named schemas. Build it fully
// before calling Router; it is read-only afterwards and safe for concurrent
// requests.
type Service struct {
	log        *slog.Logger
	translator *i18n.Translator
	schemas    map[string]*formkit.Schema
	engineOpts []formkit.Option
	locale     string
}

// ServiceOption configures a Service at construction time.
type ServiceOption func(*Service)

// WithLogger sets the request logger.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithTranslator replaces the embedded message catalog, typically to add
// application-specific languages.
func WithTranslator(t *i18n.Translator) ServiceOption {
	return func(s *Service) {
		if t != nil {
			s.translator = t
		}
	}
}

// WithSchema registers one schema under its own name. Later registrations
// with the same name win.
func WithSchema(schema *formkit.Schema) ServiceOption {
	return func(s *Service) {
		if schema != nil {
			s.schemas[schema.Name()] = schema
		}
	}
}

// WithSchemas registers a batch of schemas keyed by form name, as returned
// by schemafile.Load.
func WithSchemas(schemas map[string]*formkit.Schema) ServiceOption {
	return func(s *Service) {
		for name, schema := range schemas {
			if schema != nil {
				s.schemas[name] = schema
			}
		}
	}
}

// WithEngineOptions forwards options to every validation call, for example
// formkit.WithRegistry to serve from an isolated registry or
// formkit.WithConcurrentFields for schemas with expensive rules.
func WithEngineOptions(opts ...formkit.Option) ServiceOption {
	return func(s *Service) {
		s.engineOpts = append(s.engineOpts, opts...)
	}
}

// WithFallbackLocale sets the locale used when Accept-Language matches no
// loaded catalog. Defaults to "en".
func WithFallbackLocale(locale string) ServiceOption {
	return func(s *Service) {
		if locale != "" {
			s.locale = locale
		}
	}
}

// New builds a Service with the embedded translation catalog and a discard
// logger unless options say otherwise.
func New(opts ...ServiceOption) *Service {
	s := &Service{
		log:        slog.New(slog.DiscardHandler),
		translator: i18n.Default(),
		schemas:    make(map[string]*formkit.Schema),
		locale:     "en",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Forms returns the registered form names, unordered.
func (s *Service) Forms() []string {
	names := make([]string, 0, len(s.schemas))
	for name := range s.schemas {
		names = append(names, name)
	}
	return names
}

// Schema returns the schema registered under name.
func (s *Service) Schema(name string) (*formkit.Schema, bool) {
	schema, ok := s.schemas[name]
	return schema, ok
}
