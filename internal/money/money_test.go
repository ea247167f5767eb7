package money

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRegisterStyle(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		digits int
		want   string
	}{
		{"empty buffer", "", 2, ""},
		{"only non digits", "abc", 2, ""},
		{"one digit", "5", 2, "0,05"},
		{"two digits", "45", 2, "0,45"},
		{"three digits", "123", 2, "1,23"},
		{"thousands", "123456", 2, "1.234,56"},
		{"millions", "1234567890", 2, "12.345.678,90"},
		{"leading zeros dropped", "000123", 2, "1,23"},
		{"all zeros", "000", 2, "0,00"},
		{"mixed input", "R$ 1.234,5", 2, "123,45"},
		{"percent precision", "275", PercentDigits, "0,0000275"},
		{"no fraction", "1234", 0, "1.234"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRegisterStyle(tt.raw, tt.digits))
		})
	}
}

func TestFormatRegisterStyle_FractionalPartIsTrailingDigits(t *testing.T) {
	for _, buf := range []string{"100", "9999", "1000001", "42424242"} {
		out := FormatRegisterStyle(buf, 2)
		assert.Equal(t, buf[len(buf)-2:], out[len(out)-2:], buf)
	}
}

func TestParseLocalized(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1.234,56", 1234.56},
		{"R$ 1.234,56", 1234.56},
		{"0,05", 0.05},
		{"2,75%", 2.75},
		{"-10,50", -10.5},
		{"", 0},
		{"abc", 0},
		{"1,2,3", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLocalized(tt.in))
		})
	}
}

func TestParseLocalized_RoundTripsRegisterBuffer(t *testing.T) {
	for _, buf := range []string{"1", "12", "123", "100000", "987654321", "0001"} {
		n, err := strconv.ParseInt(buf, 10, 64)
		assert.NoError(t, err)
		assert.Equal(t, float64(n)/100, ParseLocalized(FormatRegisterStyle(buf, 2)), buf)
	}
}

func TestRoundToCents(t *testing.T) {
	assert.Equal(t, 1.01, RoundToCents(1.005))
	assert.Equal(t, 2.68, RoundToCents(2.675))
	assert.Equal(t, -1.23, RoundToCents(-1.225))
	assert.Equal(t, 3333.33, RoundToCents(10000.0/3))
	assert.Equal(t, 0.0, RoundToCents(0.004))

	t.Run("idempotent", func(t *testing.T) {
		for _, v := range []float64{0.1 + 0.2, 1.005, 1234.5678, -0.015, 1e9 / 7} {
			once := RoundToCents(v)
			assert.Equal(t, once, RoundToCents(once))
		}
	})
}

func TestCents(t *testing.T) {
	assert.Equal(t, int64(123456), ToCents(1234.56))
	assert.Equal(t, int64(30), ToCents(0.1+0.2))
	assert.Equal(t, 1234.56, FromCents(123456))
	assert.Equal(t, -0.01, FromCents(-1))
}

func TestFormatLocalized(t *testing.T) {
	assert.Equal(t, "1.234,56", FormatLocalized(1234.56, 2))
	assert.Equal(t, "0,50", FormatLocalized(0.5, 2))
	assert.Equal(t, "-1.000.000,00", FormatLocalized(-1e6, 2))
	assert.Equal(t, "R$ 980,30", FormatCurrency(980.2960494))
}

func TestNormalizePercent(t *testing.T) {
	t.Run("Typed as percentage", func(t *testing.T) {
		f, confirm := NormalizePercent(2.75)
		assert.Equal(t, 0.0275, f)
		assert.False(t, confirm)
	})

	t.Run("Typed as fraction", func(t *testing.T) {
		f, confirm := NormalizePercent(0.0275)
		assert.Equal(t, 0.0275, f)
		assert.False(t, confirm)
	})

	t.Run("High rate needs confirmation", func(t *testing.T) {
		f, confirm := NormalizePercent(12)
		assert.Equal(t, 0.12, f)
		assert.True(t, confirm)

		f, confirm = NormalizePercent(0.1)
		assert.Equal(t, 0.1, f)
		assert.True(t, confirm)
	})
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "2,75%", FormatPercent(0.0275))
	assert.Equal(t, "10%", FormatPercent(0.1))
	assert.Equal(t, "0,8734%", FormatPercent(0.008734))
}
