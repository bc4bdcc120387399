// Package decimal produces precision-safe JSON number literals.
//
// OCPP payloads carry decimal quantities (charging rates, meter readings) that
// must validate against schema range and type constraints exactly as the peer
// wrote them. A value read as the literal "21.4" must be compared and re-emitted
// as 21.4, never as the expanded binary representation
// 21.39999999999999857891452847979962825775146484375.
//
// The contract is "never invent precision the input did not have": Encode
// returns the shortest decimal literal that parses back to the exact same
// float64, and Normalize rewrites every numeric leaf of a decoded payload into
// that form before it reaches schema validation or the wire.
package decimal

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Encode returns the shortest JSON number literal that round-trips to v.
//
// Plain decimal notation is used for the same magnitude range encoding/json
// uses it; values outside that range use exponent notation. Non-finite values
// have no JSON representation and return an error.
func Encode(v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", fmt.Errorf("decimal: %v has no JSON representation", v)
	}

	// Same plain/exponent cutover as encoding/json, so normalized payloads
	// serialize byte-identically to what json.Marshal would emit.
	format := byte('f')
	if abs := math.Abs(v); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	return strconv.FormatFloat(v, format, -1, 64), nil
}

// Normalize recursively rewrites every numeric leaf of a decoded JSON value
// into a json.Number holding its shortest round-trip literal.
//
// json.Number leaves are passed through untouched: they already carry the exact
// literal the peer sent. float64 leaves (produced when a payload was built in
// Go rather than decoded off the wire) are re-encoded through Encode. Non-finite
// floats cannot be represented and are returned as-is; json.Marshal rejects
// them downstream with its own error.
func Normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = Normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Normalize(item)
		}
		return out
	case float64:
		literal, err := Encode(val)
		if err != nil {
			return val
		}
		return json.Number(literal)
	case float32:
		if math.IsNaN(float64(val)) || math.IsInf(float64(val), 0) {
			return val
		}
		return json.Number(strconv.FormatFloat(float64(val), 'f', -1, 32))
	default:
		return v
	}
}
