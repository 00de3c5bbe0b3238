package catalog

func enUS() LocaleCatalog {
	report := make(map[string]string, len(reportKeys))
	for _, key := range reportKeys {
		report[key] = key
	}
	return LocaleCatalog{
		Locale: BaseLocale,
		Namespaces: map[string]map[string]string{
			NamespaceReport: report,
			NamespaceErrors: {
				"UNKNOWN":                "An unexpected error occurred.",
				"RECORDS_NOT_ARRAY":      "The records file must contain a JSON array at its root (found {{.Kind}}).",
				"RECORDS_INVALID_JSON":   "The records file is not valid JSON.",
				"RECORD_NOT_OBJECT":      "Record {{.Index}} is not a JSON object.",
				"TABLE_INVALID_ENCODING": "The translation table is not valid UTF-8 text.",
				"TABLE_UNREADABLE":       "The translation table could not be read.",
				"INPUT_MISSING":          "Missing required upload: {{.Field}}.",
				"INPUT_TOO_LARGE":        "The upload exceeds the limit of {{.Limit}} bytes.",
				"OUTPUT_WRITE_FAILED":    "The output could not be written to {{.Path}}.",
			},
		},
	}
}
