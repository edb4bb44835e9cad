package export

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"time"

	"github.com/formpilot/formpilot/src/forms"
)

// BuildCSV renders submissions as CSV: one column per field in schema order
// (labels as headers) plus a trailing "Submitted At" column. Multi-value
// answers are joined with ", "; unreadable values render empty.
func BuildCSV(fields []forms.Field, submissions []forms.Submission) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, 0, len(fields)+1)
	for _, f := range fields {
		header = append(header, f.DisplayLabel())
	}
	header = append(header, "Submitted At")
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, s := range submissions {
		row := make([]string, 0, len(fields)+1)
		for _, f := range fields {
			var value any
			if s.Data != nil {
				value = s.Data[f.ID]
			}
			row = append(row, renderValue(value))
		}
		row = append(row, s.CreatedAt.Format(time.RFC3339))
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	return buf.String(), w.Error()
}

func renderValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, renderValue(item))
		}
		return strings.Join(parts, ", ")
	case []string:
		return strings.Join(v, ", ")
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	}
	return ""
}
