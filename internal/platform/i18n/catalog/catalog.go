// Package catalog holds the user-facing message catalogs for every supported
// locale, grouped by namespace.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// BaseLocale is the canonical source locale for catalogs.
	BaseLocale = "en-US"

	// NamespaceReport holds the CLI summary and markdown report copy. Keys are
	// fmt format strings in the base locale.
	NamespaceReport = "report"
	// NamespaceErrors holds error templates keyed by error code.
	NamespaceErrors = "errors"
)

// LocaleCatalog stores all messages for one locale, grouped by namespace.
type LocaleCatalog struct {
	Locale     string
	Namespaces map[string]map[string]string
}

// Bundle contains all locale catalogs.
type Bundle struct {
	locales map[string]*LocaleCatalog
}

var defaultBundle = mustBuildAndRegister()

// Default returns the process-wide catalog bundle.
func Default() *Bundle {
	return defaultBundle
}

// New builds a bundle from locale catalogs. The base locale must be present.
func New(catalogs ...LocaleCatalog) (*Bundle, error) {
	bundle := &Bundle{locales: map[string]*LocaleCatalog{}}
	for _, c := range catalogs {
		locale := strings.TrimSpace(c.Locale)
		if locale == "" {
			return nil, fmt.Errorf("catalog locale is required")
		}
		if _, exists := bundle.locales[locale]; exists {
			return nil, fmt.Errorf("locale %q defined twice", locale)
		}
		namespaces := make(map[string]map[string]string, len(c.Namespaces))
		for namespace, messages := range c.Namespaces {
			for key := range messages {
				if strings.TrimSpace(key) == "" {
					return nil, fmt.Errorf("locale %q namespace %q: message key cannot be blank", locale, namespace)
				}
			}
			namespaces[namespace] = copyMap(messages)
		}
		bundle.locales[locale] = &LocaleCatalog{Locale: locale, Namespaces: namespaces}
	}
	if !bundle.HasLocale(BaseLocale) {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	return bundle, nil
}

// Register registers the report namespace of every locale with
// x/text/message so printers pick up the translations.
func (b *Bundle) Register() error {
	if b == nil {
		return nil
	}
	for _, locale := range b.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		messages := b.NamespaceMessages(locale, NamespaceReport)
		keys := make([]string, 0, len(messages))
		for key := range messages {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if err := message.SetString(tag, key, messages[key]); err != nil {
				return fmt.Errorf("register %s %q: %w", locale, key, err)
			}
		}
	}
	return nil
}

// HasLocale reports whether the locale exists in this bundle.
func (b *Bundle) HasLocale(locale string) bool {
	if b == nil {
		return false
	}
	_, ok := b.locales[strings.TrimSpace(locale)]
	return ok
}

// Locales returns all available locale identifiers.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Namespaces returns the sorted namespace names defined for a locale.
func (b *Bundle) Namespaces(locale string) []string {
	if b == nil {
		return nil
	}
	catalog, ok := b.locales[strings.TrimSpace(locale)]
	if !ok || catalog == nil {
		return nil
	}
	out := make([]string, 0, len(catalog.Namespaces))
	for namespace := range catalog.Namespaces {
		out = append(out, namespace)
	}
	sort.Strings(out)
	return out
}

// NamespaceMessages returns an exact namespace message map copy for a locale.
func (b *Bundle) NamespaceMessages(locale string, namespace string) map[string]string {
	if b == nil {
		return map[string]string{}
	}
	catalog, ok := b.locales[strings.TrimSpace(locale)]
	if !ok || catalog == nil {
		return map[string]string{}
	}
	messages, ok := catalog.Namespaces[strings.TrimSpace(namespace)]
	if !ok {
		return map[string]string{}
	}
	return copyMap(messages)
}

// NamespaceMessagesWithFallback returns namespace messages and the locale that satisfied the lookup.
func (b *Bundle) NamespaceMessagesWithFallback(locale string, namespace string) (string, map[string]string) {
	trimmedLocale := strings.TrimSpace(locale)
	trimmedNamespace := strings.TrimSpace(namespace)
	if messages := b.NamespaceMessages(trimmedLocale, trimmedNamespace); len(messages) > 0 {
		return trimmedLocale, messages
	}
	return BaseLocale, b.NamespaceMessages(BaseLocale, trimmedNamespace)
}

func copyMap(source map[string]string) map[string]string {
	out := make(map[string]string, len(source))
	for key, value := range source {
		out[key] = value
	}
	return out
}

func mustBuildAndRegister() *Bundle {
	bundle, err := New(enUS(), zhTW())
	if err != nil {
		panic(err)
	}
	if err := bundle.Register(); err != nil {
		panic(err)
	}
	return bundle
}
