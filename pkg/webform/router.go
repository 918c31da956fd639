package webform

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/formkit"
	"github.com/dmitrymomot/formkit/pkg/binder"
	"github.com/dmitrymomot/formkit/pkg/i18n"
)

// Router builds the HTTP handler for the service's forms.
func (s *Service) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/forms", s.handleListForms)
	r.Get("/forms/{form}", s.handleDescribeForm)
	r.Post("/forms/{form}/validate", s.handleValidate)
	r.Post("/forms/{form}/fields/{field}/validate", s.handleValidateField)

	return r
}

func (s *Service) handleListForms(w http.ResponseWriter, _ *http.Request) {
	names := s.Forms()
	sort.Strings(names)
	writeJSON(w, http.StatusOK, map[string]any{"forms": names})
}

// handleDescribeForm renders a form's fields and rule chains, enough for a
// client to mirror validation hints in the UI.
func (s *Service) handleDescribeForm(w http.ResponseWriter, r *http.Request) {
	schema, ok := s.schemas[chi.URLParam(r, "form")]
	if !ok {
		writeError(w, http.StatusNotFound, "form_not_found", "unknown form")
		return
	}

	type ruleDesc struct {
		Name   string `json:"name"`
		Params []any  `json:"params,omitempty"`
	}
	fields := make([]map[string]any, 0, schema.Len())
	for _, field := range schema.Fields() {
		chain := schema.FieldRules(field)
		rules := make([]ruleDesc, len(chain))
		for i, ref := range chain {
			rules[i] = ruleDesc{Name: ref.Name(), Params: ref.Params()}
		}
		fields = append(fields, map[string]any{"name": field, "rules": rules})
	}
	writeJSON(w, http.StatusOK, map[string]any{"form": schema.Name(), "fields": fields})
}

func (s *Service) handleValidate(w http.ResponseWriter, r *http.Request) {
	schema, ok := s.schemas[chi.URLParam(r, "form")]
	if !ok {
		writeError(w, http.StatusNotFound, "form_not_found", "unknown form")
		return
	}

	data, err := binder.Bind(r, schema)
	if err != nil {
		writeBindError(w, err)
		return
	}

	res, err := formkit.ValidateSchema(r.Context(), schema, data, s.callOptions(r)...)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "validation failed to run")
		return
	}
	writeResult(w, res)
}

func (s *Service) handleValidateField(w http.ResponseWriter, r *http.Request) {
	schema, ok := s.schemas[chi.URLParam(r, "form")]
	if !ok {
		writeError(w, http.StatusNotFound, "form_not_found", "unknown form")
		return
	}
	field := chi.URLParam(r, "field")
	if !schema.Has(field) {
		writeError(w, http.StatusNotFound, "field_not_found", "unknown field")
		return
	}

	data, err := binder.Bind(r, schema)
	if err != nil {
		writeBindError(w, err)
		return
	}

	res := formkit.Validate(r.Context(), data[field], schema.FieldRules(field), s.callOptions(r)...)
	// Validate reports the synthetic name "value"; put the real field name
	// back so the client can attach the message to its input.
	for i := range res.Errors {
		res.Errors[i].Field = field
	}
	writeResult(w, res)
}

// callOptions resolves the request locale and forwards the service-wide
// engine options.
func (s *Service) callOptions(r *http.Request) []formkit.Option {
	locale := i18n.Match(r.Header.Get("Accept-Language"), s.translator.SupportedLanguages(), s.locale)
	opts := make([]formkit.Option, 0, len(s.engineOpts)+2)
	opts = append(opts, s.engineOpts...)
	opts = append(opts, formkit.WithTranslator(s.translator), formkit.WithLocale(locale))
	return opts
}

func (s *Service) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.InfoContext(r.Context(), "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

func writeResult(w http.ResponseWriter, res *formkit.Result) {
	status := http.StatusOK
	if !res.Success {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, res)
}

func writeBindError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, binder.ErrBodyTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "body_too_large", "request body too large")
	case errors.Is(err, binder.ErrUnsupportedContentType):
		writeError(w, http.StatusUnsupportedMediaType, "unsupported_content_type", "unsupported content type")
	default:
		writeError(w, http.StatusBadRequest, "malformed_body", "malformed request body")
	}
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]errorDetail{"error": {Code: code, Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
