package i18n

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// DefaultLanguage is used when no language is negotiated.
const DefaultLanguage = "en"

// Translator renders localized messages from per-language catalogs. It is
// immutable after New returns and safe for concurrent use.
type Translator struct {
	mu            sync.RWMutex
	translations  map[string]map[string]any
	fallbackToKey bool
	logger        *slog.Logger
}

// Option configures a Translator during construction.
type Option func(*Translator)

// WithLogger sets the logger used to report missing translations. Without it
// misses stay silent.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithoutKeyFallback makes lookups for missing entries return "" instead of
// the key itself.
func WithoutKeyFallback() Option {
	return func(t *Translator) {
		t.fallbackToKey = false
	}
}

// New builds a Translator from whatever the adapter loads.
func New(ctx context.Context, adapter Adapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	t.translations = translations

	return t, nil
}

// SupportedLanguages lists the language codes with loaded catalogs, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// HasTranslation reports whether a string entry exists for lang and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.lookup(lang, key)
	return ok
}

// T renders the entry for key in lang, substituting %{name} placeholders from
// the trailing key-value string pairs. Missing entries fall back to the key
// itself unless WithoutKeyFallback was set.
//
//	t.T("en", "validation.min_length", "min", "3")
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	tmpl, ok := t.lookup(lang, key)
	if !ok {
		return t.miss(lang, key, args)
	}
	return substitute(tmpl, pairsToMap(args))
}

// Td renders the entry for key in lang, falling back to the given default
// template instead of the key.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	tmpl, ok := t.lookup(lang, key)
	if !ok {
		tmpl = defaultValue
	}
	return substitute(tmpl, pairsToMap(args))
}

// N renders a pluralized entry, selecting the ".zero", ".one" or ".other"
// variant by n. The count is always available as %{count}.
func (t *Translator) N(lang, key string, n int, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var tmpl string
	var ok bool
	switch {
	case n == 0:
		if tmpl, ok = t.lookup(lang, key+".zero"); !ok {
			tmpl, ok = t.lookup(lang, key+".other")
		}
	case n == 1:
		tmpl, ok = t.lookup(lang, key+".one")
	}
	if !ok {
		tmpl, ok = t.lookup(lang, key+".other")
	}
	if !ok {
		return t.miss(lang, key, args)
	}

	params := pairsToMap(args)
	if _, exists := params["count"]; !exists {
		params["count"] = strconv.Itoa(n)
	}
	return substitute(tmpl, params)
}

// lookup walks the lang catalog along the dot-separated key and returns the
// string entry at the end of the path.
func (t *Translator) lookup(lang, key string) (string, bool) {
	catalog, ok := t.translations[lang]
	if !ok {
		return "", false
	}

	parts := strings.Split(key, ".")
	current := catalog
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := val.(string)
			return s, ok
		}
		current, ok = asStringMap(val)
		if !ok {
			return "", false
		}
	}
	return "", false
}

func (t *Translator) miss(lang, key string, args []string) string {
	t.logger.Warn("translation not found", "lang", lang, "key", key)
	if t.fallbackToKey {
		return substitute(key, pairsToMap(args))
	}
	return ""
}

// asStringMap normalizes nested catalog nodes; YAML decoders may produce
// map[any]any for nested mappings.
func asStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			if ks, ok := k.(string); ok {
				out[ks] = val
			}
		}
		return out, true
	default:
		return nil, false
	}
}

func pairsToMap(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

var placeholderRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} placeholders, leaving unknown placeholders in
// place so a missing parameter is visible rather than silently blank.
func substitute(tmpl string, params map[string]string) string {
	if len(params) == 0 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
