package form

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// leading numeric prefix, so "1.4 goals" reads as 1.4
var numberPrefix = regexp.MustCompile(`^([+-]?)(\d+\.?\d*|\.\d+)(?:[eE]([+-]?\d+))?`)

// maxExponent bounds the exponent accepted from a form field. Anything beyond
// float64 range is unreadable, and decimal would expand it digit by digit.
const maxExponent = 308

// ParseFloat reads the leading number of raw. Unparsable input yields 0, false,
// and so does a number outside the finite float64 range.
func ParseFloat(raw string) (float64, bool) {
	m := numberPrefix.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return 0, false
	}
	mantissa := strings.TrimSuffix(m[2], ".")
	if strings.HasPrefix(mantissa, ".") {
		mantissa = "0" + mantissa
	}
	sign := ""
	if m[1] == "-" {
		sign = "-"
	}

	d, err := decimal.NewFromString(sign + mantissa)
	if err != nil {
		return 0, false
	}
	if m[3] != "" {
		exp, err := strconv.Atoi(m[3])
		if err != nil || exp > maxExponent || exp < -maxExponent {
			return 0, false
		}
		d = d.Shift(int32(exp))
	}

	f := d.InexactFloat64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
