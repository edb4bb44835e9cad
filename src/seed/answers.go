package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/formpilot/formpilot/src/forms"
)

var sampleNames = []string{"Anna Kowalska", "Jan Nowak", "Maria Garcia", "John Smith", "Wei Chen", "Fatima Khan"}
var sampleComments = []string{
	"Works great, no complaints.",
	"Could use a few improvements but overall solid.",
	"Exactly what I was looking for.",
	"The onboarding took longer than expected.",
	"Support was quick and helpful.",
}

// GenerateAnswers produces a plausible answer map for the given schema. The
// output always validates against the schema, so seeded submissions look like
// real respondent data.
func GenerateAnswers(fields []forms.Field, rng *rand.Rand) map[string]any {
	data := make(map[string]any, len(fields))
	for _, field := range fields {
		switch field.Type {
		case forms.FieldText:
			data[field.ID] = sampleNames[rng.Intn(len(sampleNames))]
		case forms.FieldEmail:
			data[field.ID] = fmt.Sprintf("user%d@example.com", rng.Intn(10000))
		case forms.FieldTextarea:
			data[field.ID] = sampleComments[rng.Intn(len(sampleComments))]
		case forms.FieldNumber:
			data[field.ID] = fmt.Sprintf("%d", boundedInt(field, rng))
		case forms.FieldDate:
			data[field.ID] = time.Now().AddDate(0, 0, -rng.Intn(365)).Format("2006-01-02")
		case forms.FieldSelect, forms.FieldRadio:
			if len(field.Options) > 0 {
				data[field.ID] = field.Options[rng.Intn(len(field.Options))]
			}
		case forms.FieldCheckbox:
			if len(field.Options) > 0 {
				picked := pickSome(field.Options, rng)
				data[field.ID] = picked
			}
		}
	}
	return data
}

// RandomCreatedAt spreads seeded submissions over the last 30 days so the
// time-series chart has shape.
func RandomCreatedAt(now time.Time, rng *rand.Rand) time.Time {
	return now.
		AddDate(0, 0, -rng.Intn(30)).
		Add(-time.Duration(rng.Intn(24*60)) * time.Minute)
}

func boundedInt(field forms.Field, rng *rand.Rand) int {
	lo, hi := 0, 100
	if field.Validation != nil {
		if min, ok := field.Validation.Min.(float64); ok {
			lo = int(min)
		}
		if max, ok := field.Validation.Max.(float64); ok {
			hi = int(max)
		}
	}
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// pickSome returns a non-empty random subset, preserving option order.
func pickSome(options []string, rng *rand.Rand) []any {
	picked := []any{}
	for _, option := range options {
		if rng.Intn(2) == 0 {
			picked = append(picked, option)
		}
	}
	if len(picked) == 0 {
		picked = append(picked, options[rng.Intn(len(options))])
	}
	return picked
}
