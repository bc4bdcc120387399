package datetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "utc input",
			in:   time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC),
			want: "2023-01-01T12:00:00.000Z",
		},
		{
			name: "offset input is converted to utc",
			in:   time.Date(2023, 1, 1, 14, 0, 0, 0, time.FixedZone("CET+1", 2*60*60)),
			want: "2023-01-01T12:00:00.000Z",
		},
		{
			name: "sub-millisecond precision is truncated",
			in:   time.Date(2023, 1, 1, 12, 0, 0, 123456789, time.UTC),
			want: "2023-01-01T12:00:00.123Z",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, FormatTime(test.in))
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"zulu", "2023-01-01T12:00:00Z", time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)},
		{"fractional seconds", "2023-01-01T12:00:00.018Z", time.Date(2023, 1, 1, 12, 0, 0, 18e6, time.UTC)},
		{"numeric offset", "2023-01-01T14:00:00+02:00", time.Date(2023, 1, 1, 14, 0, 0, 0, time.FixedZone("", 2*60*60))},
		{"no zone", "2023-01-01T12:00:00", time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Parse(test.in)
			require.NoError(t, err)
			assert.True(t, test.want.Equal(got), "want %v, got %v", test.want, got)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "yesterday", "2023-01-01", "12:00:00Z"} {
		_, err := Parse(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestRoundTrip(t *testing.T) {
	s := Now()
	parsed, err := Parse(s)
	require.NoError(t, err)
	assert.Equal(t, s, FormatTime(parsed))
}
