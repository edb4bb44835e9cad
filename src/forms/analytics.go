package forms

import (
	"math"
	"sort"
	"time"
)

// Submission is the analytics-facing view of one stored response. Data comes
// straight from decoded JSON and carries no shape guarantees; every function
// here treats unreadable values as "no response" instead of failing.
type Submission struct {
	ID        string         `json:"id"`
	Data      map[string]any `json:"data"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Summary holds the dashboard counters.
type Summary struct {
	TotalResponses    int     `json:"totalResponses"`
	TodayResponses    int     `json:"todayResponses"`
	ThisWeekResponses int     `json:"thisWeekResponses"`
	AveragePerDay     float64 `json:"averagePerDay"`
}

// TimeSeriesPoint is one day's submission count.
type TimeSeriesPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// OptionCount is one bucket of a choice-field distribution.
type OptionCount struct {
	Option     string `json:"option"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// FieldDistribution is the per-field chart payload: one bucket per declared
// option, in declaration order, zero counts included.
type FieldDistribution struct {
	Field          Field         `json:"field"`
	Buckets        []OptionCount `json:"buckets"`
	TotalResponses int           `json:"totalResponses"`
}

const dateKeyLayout = "2006-01-02"

// ComputeSummary derives the dashboard counters from a submission collection.
// Today means the same local calendar date as now; this week is a rolling
// seven-day window. AveragePerDay divides total by the number of distinct
// dates observed, floored at one, and rounds to one decimal.
func ComputeSummary(submissions []Submission, now time.Time) Summary {
	total := len(submissions)

	today := 0
	week := 0
	weekAgo := now.AddDate(0, 0, -7)
	days := map[string]struct{}{}

	for _, s := range submissions {
		key := s.CreatedAt.Format(dateKeyLayout)
		days[key] = struct{}{}
		if key == now.Format(dateKeyLayout) {
			today++
		}
		if !s.CreatedAt.Before(weekAgo) {
			week++
		}
	}

	avg := 0.0
	if total > 0 {
		distinct := len(days)
		if distinct < 1 {
			distinct = 1
		}
		avg = math.Round(float64(total)/float64(distinct)*10) / 10
	}

	return Summary{
		TotalResponses:    total,
		TodayResponses:    today,
		ThisWeekResponses: week,
		AveragePerDay:     avg,
	}
}

// ComputeTimeSeries groups submissions by local calendar date and returns the
// counts in ascending date order. Only observed dates appear; days with zero
// submissions are not synthesized.
func ComputeTimeSeries(submissions []Submission) []TimeSeriesPoint {
	counts := map[string]int{}
	for _, s := range submissions {
		counts[s.CreatedAt.Format(dateKeyLayout)]++
	}

	points := make([]TimeSeriesPoint, 0, len(counts))
	for date, count := range counts {
		points = append(points, TimeSeriesPoint{Date: date, Count: count})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}

// ComputeFieldDistributions builds one distribution per choice-type field
// with declared options, in schema order. Array answers increment every
// matching bucket, scalar answers one; values that match no declared option
// are ignored rather than growing the bucket set. Percentages are over the
// whole submission collection and are 0 when it is empty.
func ComputeFieldDistributions(fields []Field, submissions []Submission) []FieldDistribution {
	results := []FieldDistribution{}

	for _, field := range fields {
		if !field.HasOptions() {
			continue
		}

		counts := make(map[string]int, len(field.Options))
		for _, option := range field.Options {
			counts[option] = 0
		}

		for _, s := range submissions {
			if s.Data == nil {
				continue
			}
			switch v := s.Data[field.ID].(type) {
			case []any:
				for _, item := range v {
					bump(counts, coerceString(item))
				}
			case []string:
				for _, item := range v {
					bump(counts, item)
				}
			default:
				bump(counts, coerceString(v))
			}
		}

		total := len(submissions)
		buckets := make([]OptionCount, 0, len(field.Options))
		for _, option := range field.Options {
			count := counts[option]
			pct := 0
			if total > 0 {
				pct = int(math.Round(float64(count) / float64(total) * 100))
			}
			buckets = append(buckets, OptionCount{Option: option, Count: count, Percentage: pct})
		}

		results = append(results, FieldDistribution{
			Field:          field,
			Buckets:        buckets,
			TotalResponses: total,
		})
	}

	return results
}

// bump increments only buckets that already exist, so unknown answers never
// create new ones.
func bump(counts map[string]int, key string) {
	if key == "" {
		return
	}
	if _, ok := counts[key]; ok {
		counts[key]++
	}
}
