package catalog

// Report namespace keys. Each key is also the base-locale format string, so a
// printer falls back to it when a locale lacks the entry.
const (
	MsgSummaryRecords      = "Records: %d"
	MsgSummaryUniqueNames  = "Unique names: %d"
	MsgSummaryTableEntries = "Table entries: %d"
	MsgSummaryCoverage     = "Coverage: %.2f%%"
	MsgSummaryMissing      = "Missing translations: %d"
	MsgSummaryAllCovered   = "All names are covered by the table."
	MsgSummaryDuplicates   = "Duplicate names detected: %d"
	MsgSummaryNoDuplicates = "No duplicate names found."
	MsgSummaryReplaced     = "Replaced %d names."
	MsgSummaryNotFound     = "Names without a translation: %d"
	MsgSummaryWrote        = "Wrote %s"
	MsgSummaryDryRun       = "Dry run: no output written."

	MsgReportTitle      = "Translation Report"
	MsgReportSummary    = "Summary"
	MsgReportMetric     = "Metric"
	MsgReportValue      = "Value"
	MsgReportMissing    = "Missing Names"
	MsgReportDuplicates = "Duplicate Names"
	MsgReportName       = "Name"
	MsgReportTypes      = "Types"
	MsgReportNotFound   = "Not Found"
	MsgReportPreview    = "Preview"

	MsgLabelRecords      = "Records"
	MsgLabelUniqueNames  = "Unique names"
	MsgLabelTableEntries = "Table entries"
	MsgLabelCovered      = "Covered names"
	MsgLabelCoverage     = "Coverage rate"
	MsgLabelReplaced     = "Replaced names"
)

// reportKeys lists every report key; the base locale maps each to itself.
var reportKeys = []string{
	MsgSummaryRecords,
	MsgSummaryUniqueNames,
	MsgSummaryTableEntries,
	MsgSummaryCoverage,
	MsgSummaryMissing,
	MsgSummaryAllCovered,
	MsgSummaryDuplicates,
	MsgSummaryNoDuplicates,
	MsgSummaryReplaced,
	MsgSummaryNotFound,
	MsgSummaryWrote,
	MsgSummaryDryRun,
	MsgReportTitle,
	MsgReportSummary,
	MsgReportMetric,
	MsgReportValue,
	MsgReportMissing,
	MsgReportDuplicates,
	MsgReportName,
	MsgReportTypes,
	MsgReportNotFound,
	MsgReportPreview,
	MsgLabelRecords,
	MsgLabelUniqueNames,
	MsgLabelTableEntries,
	MsgLabelCovered,
	MsgLabelCoverage,
	MsgLabelReplaced,
}
