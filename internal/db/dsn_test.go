package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPostgres(t *testing.T) {
	assert.True(t, IsPostgres("postgres://u:p@localhost/tracker"))
	assert.True(t, IsPostgres("postgresql://localhost/tracker"))
	assert.True(t, IsPostgres("host=localhost user=tracker dbname=tracker"))
	assert.False(t, IsPostgres("tracker.db"))
	assert.False(t, IsPostgres("file::memory:?cache=shared"))
	assert.False(t, IsPostgres(""))
}

func TestNormalizeDSN(t *testing.T) {
	// URL form passes through untouched.
	assert.Equal(t, "postgres://u:p@localhost/tracker?sslmode=require",
		NormalizeDSN("postgres://u:p@localhost/tracker?sslmode=require"))

	// key=value form is whitespace-cleaned and sslmode defaulted.
	assert.Equal(t, "host=localhost dbname=tracker sslmode=disable",
		NormalizeDSN("  host=localhost   dbname=tracker "))

	// An explicit sslmode is kept.
	assert.Equal(t, "host=localhost sslmode=require",
		NormalizeDSN("host=localhost sslmode=require"))

	// Surrounding quotes from env files are stripped.
	assert.Equal(t, "tracker.db", NormalizeDSN(`"tracker.db"`))
	assert.Equal(t, "", NormalizeDSN("  "))
}
