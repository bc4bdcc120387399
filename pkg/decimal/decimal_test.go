package decimal

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{"charging rate", 21.4, "21.4"},
		{"composite schedule limit", 15.2, "15.2"},
		{"near-integer precision", 2.000001, "2.000001"},
		{"integer", 123456789, "123456789"},
		{"zero", 0, "0"},
		{"negative", -0.5, "-0.5"},
		{"small magnitude uses exponent", 0.0000001, "1e-07"},
		{"large magnitude uses exponent", 1e21, "1e+21"},
		{"largest plain magnitude", 1e20, "100000000000000000000"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			literal, err := Encode(test.value)
			require.NoError(t, err)
			assert.Equal(t, test.expected, literal)

			// The literal must parse back to the exact same value.
			parsed, err := json.Number(literal).Float64()
			require.NoError(t, err)
			assert.Equal(t, test.value, parsed)
		})
	}
}

func TestEncodeNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Encode(v)
		assert.Error(t, err)
	}
}

func TestNormalize(t *testing.T) {
	payload := map[string]any{
		"connectorId": json.Number("1"),
		"csChargingProfiles": map[string]any{
			"chargingSchedule": map[string]any{
				"chargingSchedulePeriod": []any{
					map[string]any{"startPeriod": float64(0), "limit": 21.4},
				},
			},
		},
		"note": "unchanged",
		"flag": true,
	}

	normalized, ok := Normalize(payload).(map[string]any)
	require.True(t, ok)

	// Decoded json.Number leaves pass through untouched.
	assert.Equal(t, json.Number("1"), normalized["connectorId"])
	assert.Equal(t, "unchanged", normalized["note"])
	assert.Equal(t, true, normalized["flag"])

	period := normalized["csChargingProfiles"].(map[string]any)["chargingSchedule"].(map[string]any)["chargingSchedulePeriod"].([]any)[0].(map[string]any)
	assert.Equal(t, json.Number("0"), period["startPeriod"])
	assert.Equal(t, json.Number("21.4"), period["limit"])

	// Serializing the normalized payload never expands precision.
	data, err := json.Marshal(period)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"limit":21.4`)
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	in := map[string]any{"limit": 21.4}
	_ = Normalize(in)
	assert.Equal(t, 21.4, in["limit"])
}
