package export

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

var ErrUnknownFormat = errors.New("unknown export format")

// Table is one export: a header row of labels and a row of values per record.
// A nil value is written as an empty field.
type Table struct {
	Sheet   string
	Headers []string
	Rows    [][]any
}

func Write(w io.Writer, format string, table Table) error {
	switch strings.ToLower(format) {
	case FormatCSV:
		return WriteCSV(w, table)
	case FormatXLSX:
		return WriteXLSX(w, table)
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
