package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOnlyJSON(t *testing.T) {
	type payload struct {
		Scheduled *DateOnly `json:"scheduled,omitempty"`
	}

	var decoded payload
	require.NoError(t, json.Unmarshal([]byte(`{"scheduled":"2025-06-15"}`), &decoded))
	require.NotNil(t, decoded.Scheduled)
	assert.Equal(t, "2025-06-15", decoded.Scheduled.String())

	encoded, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, `{"scheduled":"2025-06-15"}`, string(encoded))
}

func TestDateOnlyJSONNull(t *testing.T) {
	var d DateOnly
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"June 15"`), &d))
}

func TestDateOnlyComparisons(t *testing.T) {
	earlier, err := ParseDateOnly("2025-06-10")
	require.NoError(t, err)
	later, err := ParseDateOnly("2025-06-15")
	require.NoError(t, err)

	assert.True(t, earlier.Before(later))
	assert.True(t, later.After(earlier))
	assert.False(t, earlier.Equal(later))

	// Same day in a different zone still compares equal
	colombo, err := time.LoadLocation("Asia/Colombo")
	require.NoError(t, err)
	local := DateOf(time.Date(2025, time.June, 15, 23, 0, 0, 0, colombo))
	assert.True(t, local.Equal(later))
}

func TestDateOnlyScan(t *testing.T) {
	var d DateOnly
	require.NoError(t, d.Scan(time.Date(2025, time.June, 15, 13, 45, 0, 0, time.UTC)))
	assert.Equal(t, "2025-06-15", d.String())

	require.NoError(t, d.Scan("2025-01-02"))
	assert.Equal(t, "2025-01-02", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())
}

func TestDateOnlyValue(t *testing.T) {
	var zero DateOnly
	value, err := zero.Value()
	require.NoError(t, err)
	assert.Nil(t, value)

	d, err := ParseDateOnly("2025-06-15")
	require.NoError(t, err)
	value, err = d.Value()
	require.NoError(t, err)
	assert.Equal(t, d.Time, value)
}
