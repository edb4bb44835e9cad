package export_test

import (
	"strings"
	"testing"
	"time"

	"github.com/formpilot/formpilot/src/export"
	"github.com/formpilot/formpilot/src/forms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCSV(t *testing.T) {
	fields := []forms.Field{
		{ID: "name", Type: forms.FieldText, Label: "Name"},
		{ID: "topics", Type: forms.FieldCheckbox, Label: "Topics", Options: []string{"Go", "SQL"}},
		{ID: "unlabeled", Type: forms.FieldText},
	}
	created := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	subs := []forms.Submission{
		{Data: map[string]any{"name": "Jane", "topics": []any{"Go", "SQL"}}, CreatedAt: created},
		{Data: map[string]any{"name": "Bob, the builder", "topics": 3.5}, CreatedAt: created},
		{Data: nil, CreatedAt: created},
	}

	out, err := export.BuildCSV(fields, subs)
	require.NoError(t, err)

	lines := splitLines(out)
	require.Len(t, lines, 4)
	assert.Equal(t, "Name,Topics,New Field,Submitted At", lines[0])
	assert.Equal(t, `Jane,"Go, SQL",,2025-06-01T10:30:00Z`, lines[1])
	assert.Equal(t, `"Bob, the builder",3.5,,2025-06-01T10:30:00Z`, lines[2])
	assert.Equal(t, ",,,2025-06-01T10:30:00Z", lines[3])
}

func TestBuildCSVNoFields(t *testing.T) {
	out, err := export.BuildCSV(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Submitted At", splitLines(out)[0])
}

func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
