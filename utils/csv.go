package utils

import (
	"fmt"
	"strings"
	"time"
)

// UTF8BOM makes spreadsheet tools detect the encoding so Lao text renders
const UTF8BOM = "\uFEFF"

// BuildCSV renders a header row plus data rows as CSV text: UTF-8 with BOM,
// CRLF line endings, every row terminated. Fields containing commas, quotes
// or newlines are quoted per RFC 4180.
func BuildCSV(header []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString(UTF8BOM)
	writeCSVRow(&b, header)
	for _, row := range rows {
		writeCSVRow(&b, row)
	}
	return b.String()
}

func writeCSVRow(b *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escapeCSVField(field))
	}
	b.WriteString("\r\n")
}

func escapeCSVField(field string) string {
	if strings.ContainsAny(field, ",\"\r\n") {
		return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return field
}

// ExportFilename builds the localized, date-stamped download name,
// e.g. "ລາຍງານ_payments_2023-06-30.csv"
func ExportFilename(tab string, now time.Time) string {
	return fmt.Sprintf("ລາຍງານ_%s_%s.csv", tab, now.Format("2006-01-02"))
}
