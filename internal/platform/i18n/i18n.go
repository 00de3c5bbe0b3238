// Package i18n resolves the language used for user-facing output and hands
// out message printers backed by the catalog bundle.
package i18n

import (
	"net/http"
	"strings"

	"github.com/er336250/fish-test/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LangParam is the query parameter used to select a language.
const LangParam = "lang"

var supportedTags = []language.Tag{
	language.MustParse(catalog.BaseLocale),
	language.MustParse("zh-TW"),
}

var tagMatcher = language.NewMatcher(supportedTags)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Default returns the default language tag.
func Default() language.Tag {
	return supportedTags[0]
}

// Printer returns a message printer for the supplied tag. Touching the
// catalog bundle guarantees its messages are registered first.
func Printer(tag language.Tag) *message.Printer {
	_ = catalog.Default()
	return message.NewPrinter(tag)
}

// ParseTag maps a user-supplied locale onto a supported tag.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(strings.ReplaceAll(value, "_", "-"))
	if value == "" {
		return language.Tag{}, false
	}
	parsed, err := language.Parse(value)
	if err != nil {
		return language.Tag{}, false
	}
	_, index, confidence := tagMatcher.Match(parsed)
	if confidence == language.No {
		return language.Tag{}, false
	}
	return supportedTags[index], true
}

// ResolveTag determines the best language tag for the request: the lang
// query parameter first, then Accept-Language, then the default.
func ResolveTag(r *http.Request) language.Tag {
	if r == nil {
		return Default()
	}

	if langValue := strings.TrimSpace(r.URL.Query().Get(LangParam)); langValue != "" {
		if tag, ok := ParseTag(langValue); ok {
			return tag
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, index, confidence := tagMatcher.Match(tags...)
			if confidence != language.No {
				return supportedTags[index]
			}
		}
	}

	return Default()
}
