package forms_test

import (
	"testing"

	"github.com/formpilot/formpilot/src/forms"
	"github.com/stretchr/testify/assert"
)

func TestFieldByIDLastMatchWins(t *testing.T) {
	fields := []forms.Field{
		{ID: "dup", Label: "first"},
		{ID: "other", Label: "other"},
		{ID: "dup", Label: "second"},
	}

	f, ok := forms.FieldByID(fields, "dup")
	assert.True(t, ok)
	assert.Equal(t, "second", f.Label)

	_, ok = forms.FieldByID(fields, "missing")
	assert.False(t, ok)
}

func TestDisplayLabel(t *testing.T) {
	assert.Equal(t, "New Field", forms.Field{}.DisplayLabel())
	assert.Equal(t, "Email", forms.Field{Label: "Email"}.DisplayLabel())
}

func TestHasOptions(t *testing.T) {
	assert.True(t, forms.Field{Type: forms.FieldSelect, Options: []string{"A"}}.HasOptions())
	assert.False(t, forms.Field{Type: forms.FieldSelect}.HasOptions())
	assert.False(t, forms.Field{Type: forms.FieldText, Options: []string{"A"}}.HasOptions())
}
