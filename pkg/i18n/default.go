package i18n

import (
	"context"
	"embed"
	"fmt"
	"sync"
)

//go:embed translations/*.yaml
var embeddedCatalog embed.FS

var defaultTranslator = sync.OnceValue(func() *Translator {
	t, err := New(context.Background(), NewFSAdapter(YAMLParser{}, embeddedCatalog, "translations"))
	if err != nil {
		// The embedded catalog ships with the package; failing to load it is
		// a build defect, not a runtime condition.
		panic(fmt.Sprintf("i18n: embedded catalog is broken: %v", err))
	}
	return t
})

// Default returns the translator backed by the embedded catalog, which covers
// every built-in validation rule's translation key. The instance is shared
// and safe for concurrent use.
func Default() *Translator {
	return defaultTranslator()
}
