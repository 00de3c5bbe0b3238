package main

import (
	"strings"
	"testing"

	i18ncatalog "github.com/er336250/fish-test/internal/platform/i18n/catalog"
)

func TestBuildReportDefaultBundleComplete(t *testing.T) {
	rep := buildReport(i18ncatalog.Default(), i18ncatalog.BaseLocale)
	if len(rep.Locales) != 2 {
		t.Fatalf("expected 2 locales, got %d", len(rep.Locales))
	}
	for _, locale := range rep.Locales {
		if locale.Completion != 100 {
			t.Fatalf("expected %s to be complete, got %.1f", locale.Locale, locale.Completion)
		}
		if len(locale.Namespaces) != 2 {
			t.Fatalf("expected 2 namespaces for %s, got %d", locale.Locale, len(locale.Namespaces))
		}
	}
}

func TestBuildReportFindsMissingAndExtraKeys(t *testing.T) {
	bundle, err := i18ncatalog.New(
		i18ncatalog.LocaleCatalog{
			Locale: i18ncatalog.BaseLocale,
			Namespaces: map[string]map[string]string{
				"report": {"a": "A", "b": "B"},
			},
		},
		i18ncatalog.LocaleCatalog{
			Locale: "zh-TW",
			Namespaces: map[string]map[string]string{
				"report": {"a": "甲", "c": "丙"},
			},
		},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rep := buildReport(bundle, i18ncatalog.BaseLocale)
	var zh localeStatus
	for _, locale := range rep.Locales {
		if locale.Locale == "zh-TW" {
			zh = locale
		}
	}
	if zh.Completion != 50 {
		t.Fatalf("expected 50%% completion, got %.1f", zh.Completion)
	}
	ns := zh.Namespaces[0]
	if len(ns.MissingKeys) != 1 || ns.MissingKeys[0] != "b" {
		t.Fatalf("unexpected missing keys: %v", ns.MissingKeys)
	}
	if len(ns.ExtraKeys) != 1 || ns.ExtraKeys[0] != "c" {
		t.Fatalf("unexpected extra keys: %v", ns.ExtraKeys)
	}

	markdown := renderMarkdown(rep)
	if !strings.Contains(markdown, "| `zh-TW` | `report` | 2 | 1 | 50.0% |") {
		t.Fatalf("unexpected markdown:\n%s", markdown)
	}
	if !strings.Contains(markdown, "- `b`") {
		t.Fatalf("expected missing key listing:\n%s", markdown)
	}
}
