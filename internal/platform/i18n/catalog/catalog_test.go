package catalog

import (
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestDefaultBundleLocales(t *testing.T) {
	locales := Default().Locales()
	if len(locales) != 2 || locales[0] != "en-US" || locales[1] != "zh-TW" {
		t.Fatalf("expected [en-US zh-TW], got %v", locales)
	}
}

func TestLocalesShareKeys(t *testing.T) {
	bundle := Default()
	for _, namespace := range []string{NamespaceReport, NamespaceErrors} {
		base := bundle.NamespaceMessages(BaseLocale, namespace)
		for _, locale := range bundle.Locales() {
			messages := bundle.NamespaceMessages(locale, namespace)
			for key := range base {
				if _, ok := messages[key]; !ok {
					t.Fatalf("locale %s namespace %s missing key %q", locale, namespace, key)
				}
			}
			if len(messages) != len(base) {
				t.Fatalf("locale %s namespace %s has %d keys, base has %d", locale, namespace, len(messages), len(base))
			}
		}
	}
}

func TestNamespaceMessagesWithFallback(t *testing.T) {
	locale, messages := Default().NamespaceMessagesWithFallback("fr-FR", NamespaceErrors)
	if locale != BaseLocale {
		t.Fatalf("expected fallback to %s, got %s", BaseLocale, locale)
	}
	if messages["UNKNOWN"] == "" {
		t.Fatal("expected base error messages")
	}

	locale, _ = Default().NamespaceMessagesWithFallback("zh-TW", NamespaceErrors)
	if locale != "zh-TW" {
		t.Fatalf("expected zh-TW, got %s", locale)
	}
}

func TestRegisteredPrinterTranslates(t *testing.T) {
	p := message.NewPrinter(language.MustParse("zh-TW"))
	if got := p.Sprintf(MsgSummaryReplaced, 2); got != "成功替換了 2 處名稱。" {
		t.Fatalf("unexpected zh-TW message: %q", got)
	}

	en := message.NewPrinter(language.MustParse("en-US"))
	if got := en.Sprintf(MsgSummaryReplaced, 2); got != "Replaced 2 names." {
		t.Fatalf("unexpected en-US message: %q", got)
	}
}

func TestNewRejectsMissingBaseLocale(t *testing.T) {
	if _, err := New(LocaleCatalog{Locale: "zh-TW"}); err == nil {
		t.Fatal("expected error when base locale is missing")
	}
}

func TestNewRejectsDuplicateLocale(t *testing.T) {
	if _, err := New(enUS(), enUS()); err == nil {
		t.Fatal("expected error for duplicate locale")
	}
}

func TestNewRejectsBlankKey(t *testing.T) {
	bad := LocaleCatalog{
		Locale:     BaseLocale,
		Namespaces: map[string]map[string]string{NamespaceReport: {" ": "x"}},
	}
	if _, err := New(bad); err == nil {
		t.Fatal("expected error for blank key")
	}
}
