package i18n

import (
	"errors"
	"fmt"
	"testing"

	apperrors "github.com/er336250/fish-test/internal/platform/errors"
)

func TestGetCatalogFallback(t *testing.T) {
	base := GetCatalog("en-US")
	if base == nil {
		t.Fatal("expected base catalog")
	}
	if base.Locale() != "en-US" {
		t.Fatalf("expected en-US locale, got %s", base.Locale())
	}
	if fallback := GetCatalog("missing-locale"); fallback != base {
		t.Fatal("expected fallback to en-US catalog")
	}
	if blank := GetCatalog(""); blank != base {
		t.Fatal("expected blank locale to use en-US catalog")
	}
}

func TestGetCatalogResolvesVariants(t *testing.T) {
	zh := GetCatalog("zh_TW")
	if zh.Locale() != "zh-TW" {
		t.Fatalf("expected zh-TW catalog, got %s", zh.Locale())
	}
}

func TestFormatFallbacks(t *testing.T) {
	cat := NewCatalog("test", map[apperrors.Code]string{
		"code": "hello {{.Name}}",
	})

	if cat.Format("unknown", nil) != "unknown" {
		t.Fatal("expected code fallback when template missing")
	}
	if cat.Format("code", nil) != "hello <no value>" {
		t.Fatal("expected template to render missing metadata")
	}
}

func TestFormatTemplateErrorFallback(t *testing.T) {
	cat := NewCatalog("test", map[apperrors.Code]string{
		"code": "{{ if .Name }}",
	})
	if cat.Format("code", map[string]string{"Name": "X"}) != "{{ if .Name }}" {
		t.Fatal("expected template fallback on parse error")
	}
}

func TestLocalizeUsesMetadata(t *testing.T) {
	err := fmt.Errorf("decode: %w", apperrors.WithMetadata(apperrors.CodeRecordsNotArray, "records root is object", map[string]string{"Kind": "object"}))

	if got := Localize("en-US", err); got != "The records file must contain a JSON array at its root (found object)." {
		t.Fatalf("unexpected en-US message: %q", got)
	}
	if got := Localize("zh-TW", err); got != "JSON 檔案的最外層必須是陣列（目前為 object）。" {
		t.Fatalf("unexpected zh-TW message: %q", got)
	}
}

func TestLocalizeUnknownError(t *testing.T) {
	if got := Localize("en-US", errors.New("boom")); got != "An unexpected error occurred." {
		t.Fatalf("unexpected message: %q", got)
	}
	if Localize("en-US", nil) != "" {
		t.Fatal("expected empty message for nil error")
	}
}

func TestRegisterCatalog(t *testing.T) {
	custom := NewCatalog("custom", map[apperrors.Code]string{"code": "ok"})
	RegisterCatalog("custom", custom)
	if got := GetCatalog("custom"); got != custom {
		t.Fatal("expected registered catalog")
	}
}
