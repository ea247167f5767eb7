// Package money converts monetary and percentage values between the
// cash-register keystroke buffer, numeric values and the pt-BR display
// format (dot thousands separator, comma decimal separator).
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	CurrencyDigits = 2
	PercentDigits  = 7

	// ConfirmRateThreshold is the fraction at or above which a typed rate needs explicit confirmation.
	ConfirmRateThreshold = 0.1
)

var hundred = decimal.NewFromInt(100)

// FormatRegisterStyle formats a keystroke buffer where the trailing
// fractionalDigits digits are always the fractional part.
// Non-digit characters are ignored. An empty buffer yields "".
func FormatRegisterStyle(raw string, fractionalDigits int) string {
	digits := onlyDigits(raw)
	if digits == "" {
		return ""
	}
	if fractionalDigits < 0 {
		fractionalDigits = 0
	}
	if len(digits) <= fractionalDigits {
		digits = strings.Repeat("0", fractionalDigits-len(digits)+1) + digits
	}

	cut := len(digits) - fractionalDigits
	intPart := strings.TrimLeft(digits[:cut], "0")
	if intPart == "" {
		intPart = "0"
	}
	if fractionalDigits == 0 {
		return groupThousands(intPart)
	}
	return groupThousands(intPart) + "," + digits[cut:]
}

// FormatPercentRegister is FormatRegisterStyle with percentage precision.
func FormatPercentRegister(raw string) string {
	return FormatRegisterStyle(raw, PercentDigits)
}

// ParseLocalized parses a pt-BR display string. Invalid or empty input yields 0.
func ParseLocalized(display string) float64 {
	s := strings.TrimSpace(display)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return d.InexactFloat64()
}

// FormatLocalized renders v with the given number of fractional digits in pt-BR notation.
func FormatLocalized(v float64, fractionalDigits int) string {
	fixed := decimal.NewFromFloat(v).StringFixed(int32(fractionalDigits))
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}
	intPart, fracPart, _ := strings.Cut(fixed, ".")
	out := sign + groupThousands(intPart)
	if fracPart != "" {
		out += "," + fracPart
	}
	return out
}

// FormatCurrency renders v as "R$ 1.234,56".
func FormatCurrency(v float64) string {
	return "R$ " + FormatLocalized(v, CurrencyDigits)
}

// RoundToCents rounds half away from zero to two decimal places.
func RoundToCents(v float64) float64 {
	return decimal.NewFromFloat(v).Round(CurrencyDigits).InexactFloat64()
}

func ToCents(v float64) int64 {
	return decimal.NewFromFloat(v).Round(CurrencyDigits).Shift(CurrencyDigits).IntPart()
}

func FromCents(c int64) float64 {
	return decimal.New(c, -CurrencyDigits).InexactFloat64()
}

// NormalizePercent turns a typed rate into a fraction. Values >= 1 are
// taken as already being a percentage and divided by 100. The second
// result reports whether the fraction is high enough to need confirmation.
func NormalizePercent(typed float64) (float64, bool) {
	d := decimal.NewFromFloat(typed)
	if d.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		d = d.Div(hundred)
	}
	fraction := d.Round(PercentDigits + 2).InexactFloat64()
	return fraction, fraction >= ConfirmRateThreshold
}

// FormatPercent renders a fraction as a percentage ("0.0275" -> "2,75%").
func FormatPercent(fraction float64) string {
	pct := decimal.NewFromFloat(fraction).Mul(hundred)
	s := pct.Round(PercentDigits).String()
	intPart, fracPart, _ := strings.Cut(strings.TrimPrefix(s, "-"), ".")
	out := groupThousands(intPart)
	if fracPart != "" {
		out += "," + fracPart
	}
	if pct.IsNegative() {
		out = "-" + out
	}
	return out + "%"
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func groupThousands(intPart string) string {
	if len(intPart) <= 3 {
		return intPart
	}
	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(intPart[i : i+3])
	}
	return b.String()
}
