package khmer

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	wordDollar = "ដុល្លារ"
	wordCent   = "សេន"
	wordAnd    = "និង"
)

// FormatAmount renders an amount as a grouped-thousands display string with
// two decimal places, e.g. 1234.5 -> "1,234.50". Contracts show figures in
// ASCII digits; the Khmer reading sits in the parenthetical produced by
// AmountWords.
func FormatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	dot := strings.IndexByte(s, '.')
	return groupThousands(s[:dot]) + s[dot:]
}

// FormatSize renders a land size as a grouped whole number (sizes are quoted
// to the square metre, not fractions of one).
func FormatSize(d decimal.Decimal) string {
	return groupThousands(d.Round(0).StringFixed(0))
}

func groupThousands(whole string) string {
	neg := strings.HasPrefix(whole, "-")
	if neg {
		whole = whole[1:]
	}
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i := 0; i < len(whole); i++ {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(whole[i])
	}
	return b.String()
}

// AmountWords produces the parenthetical Khmer reading of a dollar amount,
// e.g. "(ប្រាំមួយម៉ឺនដុល្លារ)". A cents clause is appended only when the
// fractional part is non-zero. Zero renders as "(សូន្យដុល្លារ)", never an
// empty string, because templates substitute the result unconditionally.
func AmountWords(d decimal.Decimal) (string, error) {
	if d.IsNegative() {
		return "", &DomainError{Message: "ទឹកប្រាក់អវិជ្ជមានមិនអាចប្រើក្នុងកិច្ចសន្យាបានទេ", Value: d}
	}

	d = d.Round(2)
	dollars := d.Truncate(0)
	cents := d.Sub(dollars).Mul(decimal.NewFromInt(100)).Round(0)

	dollarWords, err := Words(dollars)
	if err != nil {
		return "", err
	}
	if cents.IsZero() {
		return "(" + dollarWords + wordDollar + ")", nil
	}
	centWords, err := Words(cents)
	if err != nil {
		return "", err
	}
	return "(" + dollarWords + wordDollar + " " + wordAnd + " " + centWords + wordCent + ")", nil
}
