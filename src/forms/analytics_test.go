package forms_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/formpilot/formpilot/src/forms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submissionAt(t time.Time, data map[string]any) forms.Submission {
	return forms.Submission{ID: "s", Data: data, CreatedAt: t}
}

func TestComputeSummaryTodayAndWeek(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

	subs := []forms.Submission{
		submissionAt(now.Add(-1*time.Hour), nil),
		submissionAt(now.Add(-2*time.Hour), nil),
	}

	summary := forms.ComputeSummary(subs, now)
	assert.Equal(t, 2, summary.TotalResponses)
	assert.Equal(t, 2, summary.TodayResponses)
	assert.Equal(t, 2, summary.ThisWeekResponses)
	assert.Equal(t, 2.0, summary.AveragePerDay)
}

func TestComputeSummarySpread(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

	subs := []forms.Submission{
		submissionAt(now, nil),
		submissionAt(now.AddDate(0, 0, -1), nil),
		submissionAt(now.AddDate(0, 0, -1), nil),
		submissionAt(now.AddDate(0, 0, -10), nil), // outside the week window
	}

	summary := forms.ComputeSummary(subs, now)
	assert.Equal(t, 4, summary.TotalResponses)
	assert.Equal(t, 1, summary.TodayResponses)
	assert.Equal(t, 3, summary.ThisWeekResponses)
	// 4 submissions over 3 distinct days.
	assert.Equal(t, 1.3, summary.AveragePerDay)
}

func TestComputeSummaryEmpty(t *testing.T) {
	summary := forms.ComputeSummary(nil, time.Now())
	assert.Equal(t, 0, summary.TotalResponses)
	assert.Equal(t, 0.0, summary.AveragePerDay)
}

func TestComputeSummaryTotalIgnoresDataShape(t *testing.T) {
	now := time.Now()
	subs := make([]forms.Submission, 0, 1000)
	for i := 0; i < 1000; i++ {
		subs = append(subs, forms.Submission{
			CreatedAt: now.AddDate(0, 0, -(i % 40)),
			Data: map[string]any{
				"a": nil,
				"b": map[string]any{"nested": []any{1, 2, 3}},
				"c": fmt.Sprintf("value-%d", i),
			},
		})
	}
	subs[0].Data = nil

	summary := forms.ComputeSummary(subs, now)
	assert.Equal(t, 1000, summary.TotalResponses)
}

func TestComputeTimeSeries(t *testing.T) {
	base := time.Date(2025, 6, 10, 9, 0, 0, 0, time.Local)

	subs := []forms.Submission{
		submissionAt(base.AddDate(0, 0, 2), nil),
		submissionAt(base, nil),
		submissionAt(base.Add(5*time.Hour), nil),
	}

	points := forms.ComputeTimeSeries(subs)
	require.Len(t, points, 2)
	assert.Equal(t, forms.TimeSeriesPoint{Date: "2025-06-10", Count: 2}, points[0])
	assert.Equal(t, forms.TimeSeriesPoint{Date: "2025-06-12", Count: 1}, points[1])

	assert.Empty(t, forms.ComputeTimeSeries(nil))
}

func TestComputeFieldDistributions(t *testing.T) {
	fields := []forms.Field{
		{ID: "rating", Type: forms.FieldSelect, Options: []string{"A", "B", "C"}},
	}
	subs := []forms.Submission{
		{Data: map[string]any{"rating": "A"}},
		{Data: map[string]any{"rating": "A"}},
		{Data: map[string]any{"rating": "B"}},
	}

	dists := forms.ComputeFieldDistributions(fields, subs)
	require.Len(t, dists, 1)
	assert.Equal(t, 3, dists[0].TotalResponses)
	assert.Equal(t, []forms.OptionCount{
		{Option: "A", Count: 2, Percentage: 67},
		{Option: "B", Count: 1, Percentage: 33},
		{Option: "C", Count: 0, Percentage: 0},
	}, dists[0].Buckets)
}

func TestComputeFieldDistributionsCheckboxArrays(t *testing.T) {
	fields := []forms.Field{
		{ID: "topics", Type: forms.FieldCheckbox, Options: []string{"Go", "SQL"}},
	}
	subs := []forms.Submission{
		{Data: map[string]any{"topics": []any{"Go", "SQL"}}},
		{Data: map[string]any{"topics": []string{"Go"}}},
		{Data: map[string]any{"topics": []any{"Rust"}}}, // undeclared, ignored
	}

	dists := forms.ComputeFieldDistributions(fields, subs)
	require.Len(t, dists, 1)
	assert.Equal(t, 2, dists[0].Buckets[0].Count)
	assert.Equal(t, 1, dists[0].Buckets[1].Count)
}

func TestComputeFieldDistributionsSkipsUnqualifiedFields(t *testing.T) {
	fields := []forms.Field{
		{ID: "name", Type: forms.FieldText},
		{ID: "empty", Type: forms.FieldSelect}, // no options declared
		{ID: "color", Type: forms.FieldRadio, Options: []string{"Red"}},
	}
	subs := []forms.Submission{{Data: map[string]any{"color": "Red"}}}

	dists := forms.ComputeFieldDistributions(fields, subs)
	require.Len(t, dists, 1)
	assert.Equal(t, "color", dists[0].Field.ID)
}

func TestComputeFieldDistributionsMalformedData(t *testing.T) {
	fields := []forms.Field{
		{ID: "pick", Type: forms.FieldSelect, Options: []string{"X", "Y"}},
	}
	subs := []forms.Submission{
		{Data: nil},
		{Data: map[string]any{}},
		{Data: map[string]any{"pick": nil}},
		{Data: map[string]any{"pick": 3.14}},
		{Data: map[string]any{"pick": map[string]any{"weird": true}}},
		{Data: map[string]any{"pick": []any{nil, 42, map[string]any{}}}},
		{Data: map[string]any{"pick": "X"}},
	}

	var dists []forms.FieldDistribution
	assert.NotPanics(t, func() {
		dists = forms.ComputeFieldDistributions(fields, subs)
	})
	require.Len(t, dists, 1)
	assert.Equal(t, 1, dists[0].Buckets[0].Count)
	assert.Equal(t, 0, dists[0].Buckets[1].Count)

	sum := 0
	for _, b := range dists[0].Buckets {
		sum += b.Percentage
	}
	assert.LessOrEqual(t, sum, 100)
}

func TestComputeFieldDistributionsEmptyInputs(t *testing.T) {
	assert.Empty(t, forms.ComputeFieldDistributions(nil, nil))
	assert.Empty(t, forms.ComputeFieldDistributions([]forms.Field{}, []forms.Submission{{}}))

	fields := []forms.Field{{ID: "q", Type: forms.FieldSelect, Options: []string{"A"}}}
	dists := forms.ComputeFieldDistributions(fields, nil)
	require.Len(t, dists, 1)
	assert.Equal(t, 0, dists[0].Buckets[0].Count)
	assert.Equal(t, 0, dists[0].Buckets[0].Percentage)
}

func TestAggregationIdempotent(t *testing.T) {
	now := time.Now()
	subs := []forms.Submission{
		submissionAt(now, map[string]any{"q": "A"}),
		submissionAt(now.AddDate(0, 0, -3), map[string]any{"q": "B"}),
	}
	fields := []forms.Field{{ID: "q", Type: forms.FieldRadio, Options: []string{"A", "B"}}}

	assert.Equal(t, forms.ComputeSummary(subs, now), forms.ComputeSummary(subs, now))
	assert.Equal(t, forms.ComputeTimeSeries(subs), forms.ComputeTimeSeries(subs))
	assert.Equal(t, forms.ComputeFieldDistributions(fields, subs), forms.ComputeFieldDistributions(fields, subs))
}
