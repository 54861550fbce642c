package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgs_Conversions(t *testing.T) {
	args := Args{
		"name":    "report",
		"count":   "12",
		"ratio":   0.5,
		"enabled": "true",
		"pause":   "1.5s",
		"total":   50,
	}

	s, err := args.String("name")
	require.NoError(t, err)
	assert.Equal(t, "report", s)

	n, err := args.Int("count")
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	f, err := args.Float("ratio")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, f, 1e-9)

	b, err := args.Bool("enabled")
	require.NoError(t, err)
	assert.True(t, b)

	d, err := args.Duration("pause")
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, d)

	total, err := args.String("total")
	require.NoError(t, err)
	assert.Equal(t, "50", total)
}

func TestArgs_Missing(t *testing.T) {
	var args Args

	_, err := args.String("email")
	var argErr *ArgError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "email", argErr.Key)
	assert.EqualError(t, err, `missing required argument "email"`)
}

func TestArgs_Unconvertible(t *testing.T) {
	args := Args{"count": "many"}

	_, err := args.Int("count")
	var argErr *ArgError
	require.ErrorAs(t, err, &argErr)
	assert.NotNil(t, argErr.Unwrap())
}

func TestArgs_Defaults(t *testing.T) {
	args := Args{"total": 30}

	total, err := args.IntOr("total", 100)
	require.NoError(t, err)
	assert.Equal(t, 30, total)

	other, err := args.IntOr("other", 100)
	require.NoError(t, err)
	assert.Equal(t, 100, other)

	s, err := args.StringOr("label", "working")
	require.NoError(t, err)
	assert.Equal(t, "working", s)
}
