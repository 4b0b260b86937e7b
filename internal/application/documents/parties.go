package documents

import (
	"strconv"
	"strings"
	"time"

	"landdoc-backend/internal/domain"
	"landdoc-backend/internal/khmer"
)

// Designation labels: buyers are always party "ក", sellers party "ខ".
const (
	LabelBuyers  = "ក"
	LabelSellers = "ខ"
)

// Fallback paragraphs emitted when no party has been attached yet, so the
// wizard can preview a draft before data exists. Byte-stable: older saved
// drafts were produced from these exact strings.
const (
	fallbackBuyerContent  = `លោក/លោកស្រី ........................ អាយុ ........ឆ្នាំ មានអាសយដ្ឋាននៅ ................................................ កាន់អត្តសញ្ញាណប័ណ្ណលេខ ........................ លេខទូរស័ព្ទ ........................ តទៅហៅថា ភាគី"ក"`
	fallbackSellerContent = `លោក/លោកស្រី ........................ អាយុ ........ឆ្នាំ មានអាសយដ្ឋាននៅ ................................................ កាន់អត្តសញ្ញាណប័ណ្ណលេខ ........................ លេខទូរស័ព្ទ ........................ តទៅហៅថា ភាគី"ខ"`
)

// ComposeParties joins one clause per party with the Khmer conjunction and
// closes with the designation sentence. Missing optional fields degrade to
// empty strings; an empty collection yields the fixed fallback paragraph.
// Age is derived against now, the single timestamp of the generation run.
func ComposeParties(parties []domain.Party, label string, now time.Time) string {
	if len(parties) == 0 {
		if label == LabelSellers {
			return fallbackSellerContent
		}
		return fallbackBuyerContent
	}

	clauses := make([]string, len(parties))
	for i, p := range parties {
		clauses[i] = partyClause(&p, now)
	}
	return strings.Join(clauses, " និង ") + ` តទៅហៅថា ភាគី"` + label + `"`
}

func partyClause(p *domain.Party, now time.Time) string {
	age := ""
	if years := p.AgeAt(now); years >= 0 {
		age = khmer.Digits(strconv.Itoa(years))
	}
	var b strings.Builder
	b.WriteString("លោក/លោកស្រី ")
	b.WriteString(p.Name)
	b.WriteString(" អាយុ ")
	b.WriteString(age)
	b.WriteString("ឆ្នាំ មានអាសយដ្ឋាននៅ ")
	b.WriteString(p.Address)
	b.WriteString(" កាន់អត្តសញ្ញាណប័ណ្ណលេខ ")
	b.WriteString(p.IdentityNumber)
	b.WriteString(" លេខទូរស័ព្ទ ")
	b.WriteString(khmer.Digits(p.PhoneNumber))
	return b.String()
}
