package catalog

func zhTW() LocaleCatalog {
	return LocaleCatalog{
		Locale: "zh-TW",
		Namespaces: map[string]map[string]string{
			NamespaceReport: {
				MsgSummaryRecords:      "JSON 總筆數：%d",
				MsgSummaryUniqueNames:  "唯一名稱：%d",
				MsgSummaryTableEntries: "字典條目：%d",
				MsgSummaryCoverage:     "覆蓋率：%.2f%%",
				MsgSummaryMissing:      "缺少的翻譯數量：%d",
				MsgSummaryAllCovered:   "字典已完美覆蓋所有名稱！",
				MsgSummaryDuplicates:   "偵測到 %d 個重複名稱",
				MsgSummaryNoDuplicates: "未發現重複名稱",
				MsgSummaryReplaced:     "成功替換了 %d 處名稱。",
				MsgSummaryNotFound:     "未找到翻譯的名稱：%d",
				MsgSummaryWrote:        "已寫入 %s",
				MsgSummaryDryRun:       "試執行：未寫入輸出檔案。",
				MsgReportTitle:         "翻譯報告",
				MsgReportSummary:       "翻譯覆蓋統計",
				MsgReportMetric:        "項目",
				MsgReportValue:         "數值",
				MsgReportMissing:       "缺少的翻譯",
				MsgReportDuplicates:    "重複名稱檢查",
				MsgReportName:          "名稱",
				MsgReportTypes:         "類型",
				MsgReportNotFound:      "未找到的名稱",
				MsgReportPreview:       "預覽",
				MsgLabelRecords:        "JSON 總筆數",
				MsgLabelUniqueNames:    "唯一名稱",
				MsgLabelTableEntries:   "字典條目",
				MsgLabelCovered:        "已覆蓋名稱",
				MsgLabelCoverage:       "覆蓋率",
				MsgLabelReplaced:       "替換次數",
			},
			NamespaceErrors: {
				"UNKNOWN":                "處理檔案時發生錯誤。",
				"RECORDS_NOT_ARRAY":      "JSON 檔案的最外層必須是陣列（目前為 {{.Kind}}）。",
				"RECORDS_INVALID_JSON":   "JSON 檔案格式錯誤。",
				"RECORD_NOT_OBJECT":      "第 {{.Index}} 筆資料不是 JSON 物件。",
				"TABLE_INVALID_ENCODING": "字典 CSV 不是有效的 UTF-8 文字。",
				"TABLE_UNREADABLE":       "無法讀取字典 CSV。",
				"INPUT_MISSING":          "缺少必要的上傳檔案：{{.Field}}。",
				"INPUT_TOO_LARGE":        "上傳檔案超過 {{.Limit}} 位元組的限制。",
				"OUTPUT_WRITE_FAILED":    "無法寫入輸出檔案 {{.Path}}。",
			},
		},
	}
}
