package seed

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/formpilot/formpilot/src/forms"
	"github.com/stretchr/testify/require"
)

const catalogYAML = `
forms:
  - title: Sample Survey
    description: For tests.
    fields:
      - type: text
        label: Name
        required: true
      - type: email
        label: Email
        required: true
      - type: number
        label: Age
        min: 18
        max: 99
      - type: radio
        label: Plan
        required: true
        options: [Free, Pro]
      - type: checkbox
        label: Interests
        required: true
        options: [News, Offers]
      - type: date
        label: Signup date
`

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalogYAML), 0o644))
	return path
}

func TestLoadCatalog(t *testing.T) {
	catalog, err := LoadCatalog(writeCatalog(t))
	require.NoError(t, err)
	require.Len(t, catalog.Forms, 1)
	require.Equal(t, "Sample Survey", catalog.Forms[0].Title)
	require.Len(t, catalog.Forms[0].Fields, 6)
}

func TestLoadCatalogRejectsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("forms: []\n"), 0o644))

	_, err := LoadCatalog(path)
	require.Error(t, err)
}

func TestToFieldsGeneratesFreshIDs(t *testing.T) {
	catalog, err := LoadCatalog(writeCatalog(t))
	require.NoError(t, err)

	template := catalog.Forms[0]
	first := template.ToFields()
	second := template.ToFields()

	require.Len(t, first, 6)
	for i := range first {
		require.NotEmpty(t, first[i].ID)
		require.NotEqual(t, first[i].ID, second[i].ID)
	}

	number, ok := forms.FieldByID(first, first[2].ID)
	require.True(t, ok)
	require.NotNil(t, number.Validation)
	require.Equal(t, 18.0, number.Validation.Min)
	require.Equal(t, 99.0, number.Validation.Max)
}

func TestGenerateAnswersPassValidation(t *testing.T) {
	catalog, err := LoadCatalog(writeCatalog(t))
	require.NoError(t, err)

	fields := catalog.Forms[0].ToFields()
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		answers := GenerateAnswers(fields, rng)
		errs := forms.ValidateForm(fields, answers)
		require.Empty(t, errs, "generated answers must validate: %+v", answers)
	}
}
