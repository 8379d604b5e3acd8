package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var fixedNow = time.Date(2024, time.June, 5, 10, 30, 0, 0, time.UTC)

func TestParseDateDayMonthName(t *testing.T) {
	assert.Equal(t, "2024-11-20T00:00:00Z", parseDateAt("20, November", fixedNow))
	assert.Equal(t, "2024-11-13T00:00:00Z", parseDateAt("13. November", fixedNow))
	assert.Equal(t, "2024-11-13T00:00:00Z", parseDateAt("13 November", fixedNow))
	assert.Equal(t, "2024-11-20T00:00:00Z", parseDateAt("20 nov", fixedNow))
}

func TestParseDateSlashFormats(t *testing.T) {
	assert.Equal(t, "2024-01-15T00:00:00Z", parseDateAt("15/01/2024", fixedNow))
	// A two-digit year is never trusted; the current year is used instead.
	assert.Equal(t, "2024-02-13T00:00:00Z", parseDateAt("13/02/19", fixedNow))
	// Month/day with no year at all.
	assert.Equal(t, "2024-02-13T00:00:00Z", parseDateAt("13/02", fixedNow))
	assert.Equal(t, "2024-02-13T00:00:00Z", parseDateAt("2/13", fixedNow))
}

func TestParseDateImplausibleYearRemapped(t *testing.T) {
	assert.Equal(t, "2024-10-03T00:00:00Z", parseDateAt("10/03/2019", fixedNow))
}

func TestParseDateISO(t *testing.T) {
	assert.Equal(t, "2024-01-15T00:00:00Z", parseDateAt("2024-01-15", fixedNow))
	assert.Equal(t, "2025-03-01T12:00:00Z", parseDateAt("2025-03-01T12:00:00Z", fixedNow))
}

func TestParseDateBlankAndGarbage(t *testing.T) {
	now := fixedNow.UTC().Format(time.RFC3339)
	assert.Equal(t, now, parseDateAt("", fixedNow))
	assert.Equal(t, now, parseDateAt("   ", fixedNow))
	assert.Equal(t, now, parseDateAt("not a date", fixedNow))
}

func TestMatchMonthName(t *testing.T) {
	m, ok := matchMonthName("nov")
	assert.True(t, ok)
	assert.Equal(t, time.November, m)

	m, ok = matchMonthName("JANUARY")
	assert.True(t, ok)
	assert.Equal(t, time.January, m)

	_, ok = matchMonthName("xyz")
	assert.False(t, ok)
}

func TestLooksLikeDate(t *testing.T) {
	assert.True(t, looksLikeDate("15/01/2024"))
	assert.True(t, looksLikeDate("20, November"))
	assert.True(t, looksLikeDate("2024-01-15"))
	assert.False(t, looksLikeDate("Acme"))
	assert.False(t, looksLikeDate(""))
}
