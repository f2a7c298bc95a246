package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildZipsTokensAgainstFilters(t *testing.T) {
	q := Build("CT, Dallas", []string{FieldState, FieldCity})
	assert.Equal(t, Predicate{FieldState: "CT", FieldCity: "Dallas"}, q.Predicate)
	assert.False(t, q.Local())
	assert.False(t, q.IsEmpty())
}

func TestBuildNoFiltersMeansLocalNameMatch(t *testing.T) {
	q := Build("Acme", nil)
	assert.True(t, q.Local())
	assert.Equal(t, "acme", q.NameContains)
	assert.Empty(t, q.Predicate)
}

func TestBuildFewerTokensThanFilters(t *testing.T) {
	// Only the state filter gets a value; city and vendor_name never
	// receive an empty-string match.
	q := Build("CT", []string{FieldState, FieldCity, FieldVendorName})
	assert.Equal(t, Predicate{FieldState: "CT"}, q.Predicate)
}

func TestBuildMoreTokensThanFilters(t *testing.T) {
	q := Build("CT, Dallas, TechConnect", []string{FieldState})
	assert.Equal(t, Predicate{FieldState: "CT"}, q.Predicate)
}

func TestBuildEmptyText(t *testing.T) {
	assert.True(t, Build("", []string{FieldState}).IsEmpty())
	assert.True(t, Build("   ", nil).IsEmpty())
}

func TestBuildDropsEmptySegments(t *testing.T) {
	q := Build("CT,, Dallas", []string{FieldState, FieldCity})
	assert.Equal(t, Predicate{FieldState: "CT", FieldCity: "Dallas"}, q.Predicate)

	q = Build(" , ,TX", []string{FieldState, FieldCity})
	assert.Equal(t, Predicate{FieldState: "TX"}, q.Predicate)
}

func TestBuildTrimsTokenWhitespace(t *testing.T) {
	q := Build("  CT ,  Dallas  ", []string{FieldState, FieldCity})
	assert.Equal(t, "CT", q.Predicate[FieldState])
	assert.Equal(t, "Dallas", q.Predicate[FieldCity])
}

func TestMatchName(t *testing.T) {
	assert.True(t, MatchName("Acme Corp", "acme"))
	assert.True(t, MatchName("TechConnect", "connect"))
	assert.False(t, MatchName("Globex", "acme"))
}
