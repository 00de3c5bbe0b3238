package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/er336250/fish-test/internal/platform/i18n/catalog"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{input: "en-US", want: "en-US", ok: true},
		{input: "zh-TW", want: "zh-TW", ok: true},
		{input: "zh_TW", want: "zh-TW", ok: true},
		{input: "zh-Hant-TW", want: "zh-TW", ok: true},
		{input: "", ok: false},
		{input: "not a tag!", ok: false},
	}
	for _, tt := range tests {
		got, ok := ParseTag(tt.input)
		if ok != tt.ok {
			t.Fatalf("ParseTag(%q): expected ok=%v, got %v", tt.input, tt.ok, ok)
		}
		if ok && got.String() != tt.want {
			t.Fatalf("ParseTag(%q): expected %s, got %s", tt.input, tt.want, got)
		}
	}
}

func TestResolveTagPrefersQueryParam(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/analyze?lang=zh-TW", nil)
	req.Header.Set("Accept-Language", "en-US")

	if got := ResolveTag(req); got.String() != "zh-TW" {
		t.Fatalf("expected zh-TW, got %s", got)
	}
}

func TestResolveTagUsesAcceptLanguage(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/analyze", nil)
	req.Header.Set("Accept-Language", "zh-TW,zh;q=0.9")

	if got := ResolveTag(req); got.String() != "zh-TW" {
		t.Fatalf("expected zh-TW, got %s", got)
	}
}

func TestResolveTagDefaults(t *testing.T) {
	if got := ResolveTag(nil); got != Default() {
		t.Fatalf("expected default for nil request, got %s", got)
	}
	req := httptest.NewRequest("GET", "/api/analyze?lang=fr", nil)
	if got := ResolveTag(req); got != Default() {
		t.Fatalf("expected default, got %s", got)
	}
}

func TestPrinterUsesCatalog(t *testing.T) {
	tag, _ := ParseTag("zh-TW")
	if got := Printer(tag).Sprintf(catalog.MsgSummaryNoDuplicates); got != "未發現重複名稱" {
		t.Fatalf("unexpected message: %q", got)
	}
	if got := Printer(Default()).Sprintf(catalog.MsgSummaryNoDuplicates); got != "No duplicate names found." {
		t.Fatalf("unexpected message: %q", got)
	}
}
