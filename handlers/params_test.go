package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	assert.NoError(t, err)
	assert.Equal(t, uint(42), id)

	_, err = parseID("abc")
	assert.Error(t, err)

	_, err = parseID("-1")
	assert.Error(t, err)
}

func TestParseUTCTime(t *testing.T) {
	// date only
	got, err := parseUTCTime("2026-01-15")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), got)

	// naive timestamp
	got, err = parseUTCTime("2026-01-15T10:30:00")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC), got)

	// the offset is dropped: the wall-clock reading is taken as UTC
	got, err = parseUTCTime("2026-01-15T10:30:00+05:00")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC), got)

	_, err = parseUTCTime("not-a-time")
	assert.Error(t, err)
}
