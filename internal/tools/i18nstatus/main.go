// Package main reports how completely each locale translates the base
// locale's report and error messages.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/er336250/fish-test/internal/platform/config"
	i18ncatalog "github.com/er336250/fish-test/internal/platform/i18n/catalog"
)

type report struct {
	BaseLocale string         `json:"base_locale"`
	Locales    []localeStatus `json:"locales"`
}

type localeStatus struct {
	Locale     string            `json:"locale"`
	BaseKeys   int               `json:"base_keys"`
	Translated int               `json:"translated"`
	Completion float64           `json:"completion"`
	Namespaces []namespaceStatus `json:"namespaces"`
}

type namespaceStatus struct {
	Namespace   string   `json:"namespace"`
	BaseKeys    int      `json:"base_keys"`
	Translated  int      `json:"translated"`
	Completion  float64  `json:"completion"`
	MissingKeys []string `json:"missing_keys"`
	ExtraKeys   []string `json:"extra_keys"`
}

func main() {
	var markdownOut string
	var jsonOut string

	flag.StringVar(&markdownOut, "out", "", "optional markdown output path")
	flag.StringVar(&jsonOut, "json-out", "", "optional json output path")
	flag.Parse()

	rep := buildReport(i18ncatalog.Default(), i18ncatalog.BaseLocale)
	if jsonOut != "" {
		if err := writeJSON(jsonOut, rep); err != nil {
			config.Exitf("write json report: %v", err)
		}
	}
	markdown := renderMarkdown(rep)
	if markdownOut == "" {
		fmt.Print(markdown)
		return
	}
	if err := writeFile(markdownOut, []byte(markdown)); err != nil {
		config.Exitf("write markdown report: %v", err)
	}
}

func buildReport(bundle *i18ncatalog.Bundle, baseLocale string) report {
	rep := report{BaseLocale: baseLocale}
	for _, locale := range bundle.Locales() {
		namespaces := unionSorted(bundle.Namespaces(baseLocale), bundle.Namespaces(locale))
		status := localeStatus{Locale: locale}
		for _, namespace := range namespaces {
			base := bundle.NamespaceMessages(baseLocale, namespace)
			target := bundle.NamespaceMessages(locale, namespace)
			missing := difference(base, target)
			translated := len(base) - len(missing)
			status.Namespaces = append(status.Namespaces, namespaceStatus{
				Namespace:   namespace,
				BaseKeys:    len(base),
				Translated:  translated,
				Completion:  percent(translated, len(base)),
				MissingKeys: missing,
				ExtraKeys:   difference(target, base),
			})
			status.BaseKeys += len(base)
			status.Translated += translated
		}
		status.Completion = percent(status.Translated, status.BaseKeys)
		rep.Locales = append(rep.Locales, status)
	}
	return rep
}

func renderMarkdown(rep report) string {
	var b strings.Builder
	b.WriteString("# I18n Status\n\n")
	b.WriteString("Base locale: `" + rep.BaseLocale + "`.\n\n")
	b.WriteString("| Locale | Namespace | Base Keys | Translated | Completion |\n")
	b.WriteString("| --- | --- | ---: | ---: | ---: |\n")
	for _, locale := range rep.Locales {
		for _, ns := range locale.Namespaces {
			b.WriteString(fmt.Sprintf("| `%s` | `%s` | %d | %d | %.1f%% |\n", locale.Locale, ns.Namespace, ns.BaseKeys, ns.Translated, ns.Completion))
		}
	}
	for _, locale := range rep.Locales {
		for _, ns := range locale.Namespaces {
			if len(ns.MissingKeys) == 0 {
				continue
			}
			b.WriteString(fmt.Sprintf("\n## Missing in `%s` / `%s`\n\n", locale.Locale, ns.Namespace))
			for _, key := range ns.MissingKeys {
				b.WriteString("- `" + key + "`\n")
			}
		}
	}
	return b.String()
}

func writeJSON(path string, rep report) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return writeFile(path, append(data, '\n'))
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// difference returns the sorted keys of a that are absent from b.
func difference(a map[string]string, b map[string]string) []string {
	out := make([]string, 0)
	for key := range a {
		if _, ok := b[key]; !ok {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

func unionSorted(a []string, b []string) []string {
	set := make(map[string]struct{}, len(a)+len(b))
	for _, value := range append(append([]string{}, a...), b...) {
		set[value] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for value := range set {
		out = append(out, value)
	}
	sort.Strings(out)
	return out
}

func percent(numerator int, denominator int) float64 {
	if denominator <= 0 {
		return 100
	}
	value := float64(numerator) * 100 / float64(denominator)
	return math.Round(value*10) / 10
}
