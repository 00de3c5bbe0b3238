package translation

// DefaultPreviewSize is how many translated records a report previews.
const DefaultPreviewSize = 5

// Report gathers every finding of one run for presentation.
type Report struct {
	TotalRecords int         `json:"total_records"`
	UniqueNames  int         `json:"unique_names"`
	TableEntries int         `json:"table_entries"`
	CoveredNames int         `json:"covered_names"`
	CoverageRate float64     `json:"coverage_rate"`
	MissingNames []string    `json:"missing_names"`
	Duplicates   []Duplicate `json:"duplicates"`
	Replaced     int         `json:"replaced"`
	NotFound     []any       `json:"not_found"`
	Preview      Records     `json:"preview"`
}

// CoveragePercent returns the coverage rate as a percentage.
func (r Report) CoveragePercent() float64 {
	return r.CoverageRate * 100
}

// Analysis pairs a report with the translated records it describes.
type Analysis struct {
	Report  Report
	Records Records
}

// Analyze runs coverage, duplicate detection and translation in one pass over
// the same inputs. previewSize caps the preview; zero or less disables it.
func (e Engine) Analyze(records Records, table Table, previewSize int) Analysis {
	coverage := e.Coverage(records, table)
	duplicates := e.Duplicates(records)
	translation := e.Translate(records, table)

	preview := Records{}
	if previewSize > 0 {
		n := min(previewSize, len(translation.Records))
		preview = translation.Records[:n].Clone()
	}

	return Analysis{
		Report: Report{
			TotalRecords: len(records),
			UniqueNames:  len(coverage.Unique),
			TableEntries: table.Len(),
			CoveredNames: len(coverage.Covered),
			CoverageRate: coverage.Rate,
			MissingNames: coverage.Missing,
			Duplicates:   duplicates,
			Replaced:     translation.Replaced,
			NotFound:     translation.NotFound,
			Preview:      preview,
		},
		Records: translation.Records,
	}
}
