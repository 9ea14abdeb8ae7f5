package costing

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate(t *testing.T) {
	t.Run("parses the accepted layouts", func(t *testing.T) {
		for _, raw := range []string{
			"2024-01-05",
			"2024-01-05T10:30:00",
			"2024-01-05 10:30:00",
			"2024-01-05T10:30:00Z",
		} {
			d := ParseDate(raw)
			assert.True(t, d.Valid, "expected %q to parse", raw)
		}
	})

	t.Run("keeps the raw input on parse failure", func(t *testing.T) {
		d := ParseDate("05/01/2024")
		assert.False(t, d.Valid)
		assert.Equal(t, "05/01/2024", d.Raw())
	})

	t.Run("comparisons against invalid dates are always false", func(t *testing.T) {
		valid := ParseDate("2024-01-05")
		invalid := ParseDate("junk")
		assert.False(t, invalid.Before(valid))
		assert.False(t, valid.Before(invalid))
		assert.False(t, invalid.OnOrBefore(valid))
		assert.False(t, valid.Equal(invalid))
	})

	t.Run("inclusive comparison includes the same instant", func(t *testing.T) {
		a := ParseDate("2024-01-05")
		b := ParseDate("2024-01-05")
		assert.True(t, a.OnOrBefore(b))
		assert.False(t, a.Before(b))
	})

	t.Run("unmarshals strings and null", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"2024-01-05"`), &d))
		assert.True(t, d.Valid)
		assert.Equal(t, time.January, d.Time.Month())

		require.NoError(t, json.Unmarshal([]byte(`null`), &d))
		assert.True(t, d.IsZero())

		require.NoError(t, json.Unmarshal([]byte(`"garbage"`), &d))
		assert.False(t, d.Valid)
		assert.False(t, d.IsZero())
	})

	t.Run("marshals valid dates as RFC 3339 and echoes bad input", func(t *testing.T) {
		out, err := json.Marshal(ParseDate("2024-01-05"))
		require.NoError(t, err)
		assert.Equal(t, `"2024-01-05T00:00:00Z"`, string(out))

		out, err = json.Marshal(ParseDate("garbage"))
		require.NoError(t, err)
		assert.Equal(t, `"garbage"`, string(out))
	})
}
