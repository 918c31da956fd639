// Package i18n localizes validation failure messages.
//
// A Translator holds per-language message catalogs loaded through an Adapter
// (in-memory map, single file, directory, or any fs.FS including embed.FS)
// and renders templates with named %{placeholder} substitution. It satisfies
// the engine's one-method Translator interface, so wiring it in is a single
// option:
//
//	res, err := formkit.ValidateSchema(ctx, schema, data,
//		formkit.WithTranslator(i18n.Default()),
//		formkit.WithLocale(i18n.Match(r.Header.Get("Accept-Language"), supported, "en")),
//	)
//
// Default returns a translator backed by the embedded catalog covering every
// built-in rule's translation key. Applications with their own catalogs build
// a Translator from a file or directory of JSON/YAML documents keyed by
// language code:
//
//	en:
//	  validation:
//	    required: "field is required"
//	    min_length: "must be at least %{min} characters long"
//
// Keys are addressed with dot notation ("validation.min_length"). Lookups for
// missing entries fall back to the key itself, which the engine detects and
// ignores in favor of the rule's default English message.
package i18n
