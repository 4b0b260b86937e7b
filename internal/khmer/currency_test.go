package khmer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	cases := map[string]string{
		"0":        "0.00",
		"1234.5":   "1,234.50",
		"60000":    "60,000.00",
		"999":      "999.00",
		"1000000":  "1,000,000.00",
		"12345678": "12,345,678.00",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatAmount(decimal.RequireFromString(in)), "in=%s", in)
	}
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "500", FormatSize(decimal.NewFromInt(500)))
	assert.Equal(t, "1,250", FormatSize(decimal.RequireFromString("1250.4")))
}

func TestAmountWords_WholeDollars(t *testing.T) {
	s, err := AmountWords(decimal.NewFromInt(60_000))
	require.NoError(t, err)
	assert.Equal(t, "(ប្រាំមួយម៉ឺនដុល្លារ)", s)
}

func TestAmountWords_WithCents(t *testing.T) {
	s, err := AmountWords(decimal.RequireFromString("10.25"))
	require.NoError(t, err)
	assert.Equal(t, "(ដប់ដុល្លារ និង ម្ភៃប្រាំសេន)", s)
}

func TestAmountWords_Zero(t *testing.T) {
	zero, err := AmountWords(decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, "(សូន្យដុល្លារ)", zero)
	assert.NotEmpty(t, zero)

	cent, err := AmountWords(decimal.RequireFromString("0.01"))
	require.NoError(t, err)
	assert.NotEqual(t, zero, cent)
}

func TestAmountWords_Negative(t *testing.T) {
	_, err := AmountWords(decimal.RequireFromString("-0.01"))
	var derr *DomainError
	require.ErrorAs(t, err, &derr)
}
