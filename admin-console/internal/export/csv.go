package export

import (
	"bufio"
	"io"
	"strings"
)

// WriteCSV quotes every field, header included, doubles embedded quotes and
// ends every line, the last one too, with CRLF.
func WriteCSV(w io.Writer, table Table) error {
	buf := bufio.NewWriter(w)

	header := make([]any, len(table.Headers))
	for i, h := range table.Headers {
		header[i] = h
	}
	if err := writeCSVLine(buf, header); err != nil {
		return err
	}
	for _, row := range table.Rows {
		if err := writeCSVLine(buf, row); err != nil {
			return err
		}
	}
	return buf.Flush()
}

func writeCSVLine(w *bufio.Writer, fields []any) error {
	for i, field := range fields {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		quoted := `"` + strings.ReplaceAll(formatValue(field), `"`, `""`) + `"`
		if _, err := w.WriteString(quoted); err != nil {
			return err
		}
	}
	_, err := w.WriteString("\r\n")
	return err
}
