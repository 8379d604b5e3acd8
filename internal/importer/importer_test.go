package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devtrackhq/jobgrid/internal/models"
)

func TestParseJSONArray(t *testing.T) {
	text := `[
		{"company": "Acme", "position": "Engineer", "city": "NYC", "stage": "Interview"},
		{"employer": "Globex", "role": "Analyst", "compensation": 90000}
	]`
	drafts, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, drafts, 2)

	assert.Equal(t, "Acme", drafts[0].Company)
	assert.Equal(t, "Engineer", drafts[0].Title)
	assert.Equal(t, "NYC", drafts[0].Location)
	assert.Equal(t, "interview", drafts[0].Status)
	assert.NotEmpty(t, drafts[0].ID)
	assert.NotEmpty(t, drafts[0].Date)

	assert.Equal(t, "Globex", drafts[1].Company)
	assert.Equal(t, "Analyst", drafts[1].Title)
	assert.Equal(t, "90000", drafts[1].Salary)
	assert.Equal(t, models.StatusApplied, drafts[1].Status)
}

func TestParseJSONKeepsEveryArrayElement(t *testing.T) {
	// One qualifying record is enough; the rest of the array comes along.
	drafts, err := Parse(`[{"company": "Acme"}, {"location": "NYC"}, {"salary": "100k"}]`)
	require.NoError(t, err)
	assert.Len(t, drafts, 3)
}

func TestParseJSONSingleObject(t *testing.T) {
	drafts, err := Parse(`{"company": "Acme", "title": "Engineer"}`)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Acme", drafts[0].Company)
}

func TestParseJSONCanonicalBeatsAlias(t *testing.T) {
	drafts, err := Parse(`{"company": "Acme", "title": "Engineer", "position": "Ignored"}`)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Engineer", drafts[0].Title)
}

func TestParseJSONCaseInsensitiveKeys(t *testing.T) {
	drafts, err := Parse(`{"Company": "Acme", "TITLE": "Engineer"}`)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Acme", drafts[0].Company)
	assert.Equal(t, "Engineer", drafts[0].Title)
}

func TestParseJSONNoQualifyingRecords(t *testing.T) {
	_, err := Parse(`[{"location": "NYC"}, {"salary": "100k"}]`)
	assert.ErrorIs(t, err, ErrNoRecords)
}

func TestParseHeaderRow(t *testing.T) {
	text := "Date,Company,Title\n15/01/2024,Acme,Engineer\n20/01/2024,Globex,Analyst"
	drafts, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, drafts, 2)
	assert.Equal(t, "Acme", drafts[0].Company)
	assert.Equal(t, "Engineer", drafts[0].Title)
	assert.Equal(t, "Globex", drafts[1].Company)
}

func TestParseHeaderAliases(t *testing.T) {
	text := "Applied Date,Employer,Role,Where\n15/01/2024,Acme,Engineer,NYC"
	drafts, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Acme", drafts[0].Company)
	assert.Equal(t, "Engineer", drafts[0].Title)
	assert.Equal(t, "NYC", drafts[0].Location)
}

func TestParseHeaderColumnClaimedOnce(t *testing.T) {
	// Two company-like headers: the first cell wins, the second stays unmapped.
	text := "Company,Employer\nAcme,Globex"
	drafts, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Acme", drafts[0].Company)
}

func TestParsePositionalWithoutDateColumn(t *testing.T) {
	drafts, err := Parse("Acme,Engineer,NYC")
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Acme", drafts[0].Company)
	assert.Equal(t, "Engineer", drafts[0].Title)
	assert.Equal(t, "NYC", drafts[0].Location)
}

func TestParsePositionalWithDateColumn(t *testing.T) {
	drafts, err := Parse("15/01/2024,Acme,Engineer,NYC")
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "2024-01-15T00:00:00Z", drafts[0].Date)
	assert.Equal(t, "Acme", drafts[0].Company)
	assert.Equal(t, "Engineer", drafts[0].Title)
	assert.Equal(t, "NYC", drafts[0].Location)
}

func TestParseTabAndPipeDelimiters(t *testing.T) {
	tab, err := Parse("Acme\tEngineer\tNYC")
	require.NoError(t, err)
	require.Len(t, tab, 1)
	assert.Equal(t, "Engineer", tab[0].Title)

	pipe, err := Parse("Acme|Engineer|NYC")
	require.NoError(t, err)
	require.Len(t, pipe, 1)
	assert.Equal(t, "Engineer", pipe[0].Title)
}

func TestParseQuotedCommas(t *testing.T) {
	drafts, err := Parse(`"Acme, Inc","Engineer, Senior",NYC`)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Acme, Inc", drafts[0].Company)
	assert.Equal(t, "Engineer, Senior", drafts[0].Title)
	assert.Equal(t, "NYC", drafts[0].Location)
}

func TestParseSkipsBlankAndIncompleteRows(t *testing.T) {
	text := "Company,Title\nAcme,Engineer\n\n   \n,\nGlobex,Analyst"
	drafts, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, drafts, 2)
	assert.Equal(t, "Acme", drafts[0].Company)
	assert.Equal(t, "Globex", drafts[1].Company)
}

func TestParseEmptyInput(t *testing.T) {
	_, err := Parse("")
	assert.ErrorIs(t, err, ErrNoRecords)

	_, err = Parse("   \n  \n")
	assert.ErrorIs(t, err, ErrNoRecords)
}

func TestParseStatusNormalized(t *testing.T) {
	drafts, err := Parse(`{"company": "Acme", "title": "Engineer", "status": "INTERVIEW"}`)
	require.NoError(t, err)
	assert.Equal(t, "interview", drafts[0].Status)

	drafts, err = Parse(`{"company": "Acme", "title": "Engineer"}`)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApplied, drafts[0].Status)
}

func TestParseStrictJSON(t *testing.T) {
	drafts, err := ParseStrictJSON("```json\n[{\"company\": \"Acme\", \"title\": \"Engineer\"}]\n```")
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Acme", drafts[0].Company)
}

func TestParseStrictJSONRejectsNonJSON(t *testing.T) {
	_, err := ParseStrictJSON("Company,Title\nAcme,Engineer")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestParseStrictJSONEmptyArray(t *testing.T) {
	_, err := ParseStrictJSON("[]")
	assert.ErrorIs(t, err, ErrNoRecords)
}

func TestDetectHeaderNoMatch(t *testing.T) {
	mapping, ok := detectHeader([]string{"Acme", "Engineer", "NYC"})
	assert.False(t, ok)
	assert.Empty(t, mapping)
}

func TestDetectHeaderMapping(t *testing.T) {
	mapping, ok := detectHeader([]string{"Date", "Company", "Title"})
	require.True(t, ok)
	assert.Equal(t, 0, mapping["date"])
	assert.Equal(t, 1, mapping["company"])
	assert.Equal(t, 2, mapping["title"])
}

func TestSplitFields(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitFields("a, b ,c"))
	assert.Equal(t, []string{"a, b", "c"}, splitFields(`"a, b",c`))
	assert.Equal(t, []string{"a", "", "c"}, splitFields("a||c"))
}
