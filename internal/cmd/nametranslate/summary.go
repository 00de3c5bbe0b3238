package nametranslate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/er336250/fish-test/internal/platform/i18n/catalog"
	"github.com/er336250/fish-test/internal/translation"
	"golang.org/x/text/message"
)

func renderSummary(p *message.Printer, report translation.Report, written []string, dryRun bool) string {
	var b strings.Builder
	line := func(key string, args ...any) {
		b.WriteString(p.Sprintf(key, args...))
		b.WriteString("\n")
	}

	line(catalog.MsgSummaryRecords, report.TotalRecords)
	line(catalog.MsgSummaryUniqueNames, report.UniqueNames)
	line(catalog.MsgSummaryTableEntries, report.TableEntries)
	line(catalog.MsgSummaryCoverage, report.CoveragePercent())

	if len(report.MissingNames) > 0 {
		line(catalog.MsgSummaryMissing, len(report.MissingNames))
		for _, name := range report.MissingNames {
			b.WriteString("  - " + name + "\n")
		}
	} else {
		line(catalog.MsgSummaryAllCovered)
	}

	if len(report.Duplicates) > 0 {
		line(catalog.MsgSummaryDuplicates, len(report.Duplicates))
		for _, dup := range report.Duplicates {
			b.WriteString("  - " + dup.Name + ": " + formatValue(dup.Types) + "\n")
		}
	} else {
		line(catalog.MsgSummaryNoDuplicates)
	}

	line(catalog.MsgSummaryReplaced, report.Replaced)
	if len(report.NotFound) > 0 {
		line(catalog.MsgSummaryNotFound, len(report.NotFound))
	}

	if dryRun {
		line(catalog.MsgSummaryDryRun)
	}
	for _, path := range written {
		line(catalog.MsgSummaryWrote, path)
	}
	return b.String()
}

func renderMarkdown(p *message.Printer, report translation.Report) string {
	var b strings.Builder
	b.WriteString("# " + p.Sprintf(catalog.MsgReportTitle) + "\n\n")

	b.WriteString("## " + p.Sprintf(catalog.MsgReportSummary) + "\n\n")
	b.WriteString(fmt.Sprintf("| %s | %s |\n", p.Sprintf(catalog.MsgReportMetric), p.Sprintf(catalog.MsgReportValue)))
	b.WriteString("| --- | ---: |\n")
	rows := []struct {
		label string
		value string
	}{
		{catalog.MsgLabelRecords, p.Sprintf("%d", report.TotalRecords)},
		{catalog.MsgLabelUniqueNames, p.Sprintf("%d", report.UniqueNames)},
		{catalog.MsgLabelTableEntries, p.Sprintf("%d", report.TableEntries)},
		{catalog.MsgLabelCovered, p.Sprintf("%d", report.CoveredNames)},
		{catalog.MsgLabelCoverage, p.Sprintf("%.2f%%", report.CoveragePercent())},
		{catalog.MsgLabelReplaced, p.Sprintf("%d", report.Replaced)},
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("| %s | %s |\n", p.Sprintf(row.label), row.value))
	}

	if len(report.MissingNames) > 0 {
		b.WriteString("\n## " + p.Sprintf(catalog.MsgReportMissing) + "\n\n")
		for _, name := range report.MissingNames {
			b.WriteString("- `" + name + "`\n")
		}
	}

	if len(report.Duplicates) > 0 {
		b.WriteString("\n## " + p.Sprintf(catalog.MsgReportDuplicates) + "\n\n")
		b.WriteString(fmt.Sprintf("| %s | %s |\n", p.Sprintf(catalog.MsgReportName), p.Sprintf(catalog.MsgReportTypes)))
		b.WriteString("| --- | --- |\n")
		for _, dup := range report.Duplicates {
			b.WriteString(fmt.Sprintf("| `%s` | `%s` |\n", dup.Name, formatValue(dup.Types)))
		}
	}

	if len(report.NotFound) > 0 {
		b.WriteString("\n## " + p.Sprintf(catalog.MsgReportNotFound) + "\n\n")
		for _, name := range report.NotFound {
			b.WriteString("- `" + formatName(name) + "`\n")
		}
	}

	if len(report.Preview) > 0 {
		b.WriteString("\n## " + p.Sprintf(catalog.MsgReportPreview) + "\n\n")
		b.WriteString("```json\n")
		var buf bytes.Buffer
		if err := translation.EncodeRecords(&buf, report.Preview); err == nil {
			b.Write(buf.Bytes())
		}
		b.WriteString("```\n")
	}
	return b.String()
}

// formatValue renders a value the way it appears in JSON.
func formatValue(value any) string {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return fmt.Sprint(value)
	}
	return strings.TrimSuffix(string(translation.UnescapeLineSeparators(buf.Bytes())), "\n")
}

func formatName(value any) string {
	if name, ok := value.(string); ok {
		return name
	}
	return formatValue(value)
}
