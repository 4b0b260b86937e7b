package khmer

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Khmer numbers group by 10 / 100 (រយ) / 1,000 (ពាន់) / 10,000 (ម៉ឺន) /
// 100,000 (សែន) / 1,000,000 (លាន), not by thousands-of-thousands.
var (
	units = []string{"សូន្យ", "មួយ", "ពីរ", "បី", "បួន", "ប្រាំ", "ប្រាំមួយ", "ប្រាំពីរ", "ប្រាំបី", "ប្រាំបួន"}
	tens  = []string{"", "ដប់", "ម្ភៃ", "សាមសិប", "សែសិប", "ហាសិប", "ហុកសិប", "ចិតសិប", "ប៉ែតសិប", "កៅសិប"}
)

const (
	wordHundred     = "រយ"
	wordThousand    = "ពាន់"
	wordTenThousand = "ម៉ឺន"
	wordHundredK    = "សែន"
	wordMillion     = "លាន"
	wordPoint       = "ក្បៀស"

	// Zero is the Khmer word for zero, exported because composers render it
	// directly for empty amounts.
	Zero = "សូន្យ"
)

var khmerDigits = []rune("០១២៣៤៥៦៧៨៩")

// Words renders a non-negative decimal (at most 2 fraction digits, already
// rounded by the caller) as Khmer cardinal words. Negative input is not a
// legal contract value and returns a DomainError.
func Words(d decimal.Decimal) (string, error) {
	if d.IsNegative() {
		return "", &DomainError{Message: "ចំនួនអវិជ្ជមានមិនអាចប្រើក្នុងកិច្ចសន្យាបានទេ", Value: d}
	}

	whole := d.Truncate(0)
	out := intWords(whole.BigInt().Int64())

	frac := d.Sub(whole)
	if !frac.IsZero() {
		// Fraction is read as a plain number after the decimal word,
		// e.g. 12.50 -> "... ក្បៀសហាសិប".
		cents := frac.Mul(decimal.NewFromInt(100)).Round(0).BigInt().Int64()
		out += wordPoint + intWords(cents)
	}
	return out, nil
}

func intWords(n int64) string {
	if n == 0 {
		return Zero
	}
	var b strings.Builder
	if n >= 1_000_000 {
		b.WriteString(intWords(n / 1_000_000))
		b.WriteString(wordMillion)
		n %= 1_000_000
		if n == 0 {
			return b.String()
		}
	}
	writeScale := func(scale int64, word string) {
		if n >= scale {
			b.WriteString(units[n/scale])
			b.WriteString(word)
			n %= scale
		}
	}
	writeScale(100_000, wordHundredK)
	writeScale(10_000, wordTenThousand)
	writeScale(1_000, wordThousand)
	writeScale(100, wordHundred)
	if n >= 10 {
		b.WriteString(tens[n/10])
		n %= 10
	}
	if n > 0 {
		b.WriteString(units[n])
	}
	return b.String()
}

// Digits maps ASCII digits 0-9 to Khmer glyphs; every other rune passes
// through unchanged.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(khmerDigits[r-'0'])
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ToASCIIDigits is the inverse of Digits for the glyph range ០-៩; used when
// parsing human-entered period strings.
func ToASCIIDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '០' && r <= '៩' {
			b.WriteRune('0' + (r - '០'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
