package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateStringFromString(t *testing.T) {
	d, err := NewDateStringFromString("2026-07-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-07-15", d.String())

	_, err = NewDateStringFromString("15.07.2026")
	assert.Error(t, err)

	_, err = NewDateStringFromString("2026-13-40")
	assert.Error(t, err)
}

func TestDateStringToTime(t *testing.T) {
	d := DateString("2026-07-15")
	parsed, err := d.ToTime()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC), parsed)
}

func TestNewDateStringDropsTime(t *testing.T) {
	d := NewDateString(time.Date(2026, 7, 15, 18, 45, 0, 0, time.UTC))
	assert.Equal(t, DateString("2026-07-15"), d)
}

func TestDateStringComparisons(t *testing.T) {
	assert.True(t, DateString("2026-07-14").IsBefore("2026-07-15"))
	assert.True(t, DateString("2026-07-16").IsAfter("2026-07-15"))
	assert.False(t, DateString("2026-07-15").IsBefore("2026-07-15"))
	assert.True(t, DateString("").IsZero())
	assert.False(t, DateString("2026-07-15").IsZero())
}

func TestDateStringUnmarshalJSON(t *testing.T) {
	var d DateString
	require.NoError(t, json.Unmarshal([]byte(`"2026-07-15"`), &d))
	assert.Equal(t, DateString("2026-07-15"), d)

	assert.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &d))
}
