package khmer

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Unit is the calendar unit of a human-entered period expression.
type Unit int

const (
	UnitDay Unit = iota
	UnitWeek
	UnitMonth
	UnitYear
)

// Period is the parsed form of a free-text period such as "2 សប្តាហ៍" or
// "៣ ខែ". Keeping it a tagged value keeps keyword matching out of call sites.
type Period struct {
	Amount int
	Unit   Unit
}

// Unit keywords ordered most-specific first. "ខែ" must come last among the
// Khmer forms so it cannot shadow longer expressions that contain it, and the
// week spellings (both ត and ដ variants appear in real data) are checked
// before the single-word units.
var unitKeywords = []struct {
	keyword string
	unit    Unit
}{
	{"សប្តាហ៍", UnitWeek},
	{"សប្ដាហ៍", UnitWeek},
	{"អាទិត្យ", UnitWeek},
	{"ថ្ងៃ", UnitDay},
	{"ឆ្នាំ", UnitYear},
	{"ខែ", UnitMonth},
	{"week", UnitWeek},
	{"month", UnitMonth},
	{"year", UnitYear},
	{"day", UnitDay},
}

var magnitudePattern = regexp.MustCompile(`[0-9]+`)

// ParsePeriod extracts the numeric magnitude (ASCII or Khmer digits) and
// classifies the unit by substring containment. Unrecognized input returns a
// ParseError; it never guesses.
func ParsePeriod(s string) (Period, error) {
	normalized := ToASCIIDigits(strings.TrimSpace(s))

	match := magnitudePattern.FindString(normalized)
	if match == "" {
		return Period{}, &ParseError{Input: s}
	}
	amount, err := strconv.Atoi(match)
	if err != nil || amount <= 0 {
		return Period{}, &ParseError{Input: s}
	}

	rest := strings.ToLower(normalized)
	for _, uk := range unitKeywords {
		if strings.Contains(rest, uk.keyword) {
			return Period{Amount: amount, Unit: uk.unit}, nil
		}
	}
	return Period{}, &ParseError{Input: s}
}

// Add applies the period to a base date. Days and weeks add literal days;
// months and years follow calendar rollover via time.AddDate, so
// 2025-01-31 + 1 month normalizes past the short February rather than adding
// a fixed 30 days.
func (p Period) Add(base time.Time) time.Time {
	switch p.Unit {
	case UnitWeek:
		return base.AddDate(0, 0, 7*p.Amount)
	case UnitMonth:
		return base.AddDate(0, p.Amount, 0)
	case UnitYear:
		return base.AddDate(p.Amount, 0, 0)
	default:
		return base.AddDate(0, 0, p.Amount)
	}
}

// AddPeriod parses a free-text period, adds it to base, and returns the
// Khmer-formatted expiry date.
func AddPeriod(base time.Time, period string) (string, error) {
	p, err := ParsePeriod(period)
	if err != nil {
		return "", err
	}
	return FormatDate(p.Add(base)), nil
}
