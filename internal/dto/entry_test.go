package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkDate_Unmarshal(t *testing.T) {
	var req LogEntryRequest
	body := `{"date":"2026-08-27","start":"08:00","end":"16:00"}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	assert.Equal(t, time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC), req.Date.Time())
	assert.False(t, req.Date.IsZero())
}

func TestWorkDate_RejectsOtherFormats(t *testing.T) {
	for _, raw := range []string{
		`"27.08.2026"`,
		`"2026-08-27T10:00:00Z"`,
		`"yesterday"`,
		`""`,
		`42`,
		`null`,
	} {
		var d WorkDate
		err := json.Unmarshal([]byte(raw), &d)
		assert.Error(t, err, "input %s", raw)
	}
}

func TestWorkDate_RoundTrip(t *testing.T) {
	var d WorkDate
	require.NoError(t, json.Unmarshal([]byte(`"2026-01-05"`), &d))
	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-01-05"`, string(out))
}
