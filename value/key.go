package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxArrayIndex is the largest canonical array index (2^32 - 2).
const maxArrayIndex = math.MaxUint32 - 1

// ToKey converts a scalar into a property key using the host's string
// conversion: 1 → "1", 1.5 → "1.5", true → "true", null → "null".
// Composite and Opaque values cannot be used as keys.
func ToKey(v Value) (string, error) {
	switch v.kind {
	case KindString:
		return v.s, nil
	case KindNumber:
		return formatNumber(v.n), nil
	case KindBool:
		return strconv.FormatBool(v.b), nil
	case KindNull:
		return "null", nil
	case KindUndefined:
		return "undefined", nil
	default:
		return "", fmt.Errorf("value: %s cannot be used as a property key", v.kind)
	}
}

// formatNumber renders n the way the host prints numbers: plain decimal
// for magnitudes in [1e-6, 1e21), shortest exponent form otherwise
// ("1e+21", "1.5e-7"), NaN and the infinities by name.
func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case n == 0:
		return "0"
	}
	if abs := math.Abs(n); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	mant, exp, _ := strings.Cut(strconv.FormatFloat(n, 'e', -1, 64), "e")
	return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
}

// arrayIndex reports whether key is a canonical array index ("0", "17",
// but not "01", "-1" or "1.0") and returns its numeric value.
func arrayIndex(key string) (uint32, bool) {
	if key == "" || len(key) > 10 {
		return 0, false
	}
	if len(key) > 1 && key[0] == '0' {
		return 0, false
	}
	n, err := strconv.ParseUint(key, 10, 32)
	if err != nil || n > maxArrayIndex {
		return 0, false
	}
	return uint32(n), true
}
