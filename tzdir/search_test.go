package tzdir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDirectory() []Info {
	return []Info{
		{Key: "Asia/Kolkata", Display: "India Standard Time", Abbreviations: []string{"IST"}},
		{Key: "Europe/Istanbul", Display: "Istanbul", Abbreviations: []string{"TRT"}},
		{Key: "Asia/Tokyo", Display: "Tokyo", Abbreviations: []string{"JST"}},
		{Key: "America/Los_Angeles", Display: "Los Angeles", Abbreviations: []string{"PST", "PDT"}},
		{Key: "Europe/London", Display: "London", Abbreviations: []string{"GMT", "BST"}},
		{Key: "America/Chicago", Display: "Chicago", Abbreviations: []string{"CST", "CDT"}},
	}
}

func TestRankBlankQueryMatchesNothing(t *testing.T) {
	dir := testDirectory()
	assert.Nil(t, Rank("", dir))
	assert.Nil(t, Rank("   ", dir))
	assert.Nil(t, Rank("\t", dir))
}

func TestRankExactAbbreviationDominates(t *testing.T) {
	dir := testDirectory()

	got := Rank("ist", dir)

	// Both the IST abbreviation holder and the "Ist..." name match score,
	// with the exact abbreviation ranked first.
	require.Len(t, got, 2)
	assert.Equal(t, "Asia/Kolkata", got[0].Key)
	assert.Equal(t, "Europe/Istanbul", got[1].Key)
}

func TestRankAbbreviationPrefix(t *testing.T) {
	dir := testDirectory()

	got := Rank("pd", dir)

	require.Len(t, got, 1)
	assert.Equal(t, "America/Los_Angeles", got[0].Key)
}

func TestRankNameSubstringBelowNamePrefix(t *testing.T) {
	dir := []Info{
		{Key: "a", Display: "Grand London"},
		{Key: "b", Display: "London"},
	}

	got := Rank("lon", dir)

	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].Key)
	assert.Equal(t, "a", got[1].Key)
}

func TestRankTiesBreakByDisplayName(t *testing.T) {
	dir := []Info{
		{Key: "b", Display: "Lisbon"},
		{Key: "a", Display: "Lima"},
	}

	got := Rank("li", dir)

	require.Len(t, got, 2)
	assert.Equal(t, "Lima", got[0].Display)
	assert.Equal(t, "Lisbon", got[1].Display)
}

func TestRankIsCaseInsensitive(t *testing.T) {
	dir := testDirectory()

	got := Rank("TOKYO", dir)

	require.Len(t, got, 1)
	assert.Equal(t, "Asia/Tokyo", got[0].Key)
}

func TestRankExcludesNonMatches(t *testing.T) {
	dir := testDirectory()
	assert.Empty(t, Rank("zzz", dir))
}

func TestRankDoesNotMutateDirectory(t *testing.T) {
	dir := testDirectory()
	before := testDirectory()

	_ = Rank("london", dir)
	_ = Rank("cst", dir)

	assert.Equal(t, before, dir)
}
