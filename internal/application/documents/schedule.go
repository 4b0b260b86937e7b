package documents

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"landdoc-backend/internal/domain"
	"landdoc-backend/internal/khmer"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	statusPaidLabel   = "បានបង់"
	statusUnpaidLabel = "មិនទាន់បង់"

	depositRowLabel   = "ប្រាក់កក់"
	remainderRowLabel = "ប្រាក់នៅសល់"
)

// ComposeSchedule builds the payment schedule <table>. Deposit contracts get
// the deposit row plus a remainder row only when money is still owed; sale
// contracts get one row per persisted payment step in step order. An
// unparseable deposit period falls back to defaultPeriod — documented
// recovery, never an abort.
func ComposeSchedule(doc *domain.ContractDocument, now time.Time, defaultPeriod string) string {
	var rows []string
	if doc.DocumentType == domain.DocumentTypeDeposit {
		rows = depositRows(doc, now, defaultPeriod)
	} else {
		rows = stepRows(doc.PaymentSteps)
	}

	var b strings.Builder
	b.WriteString(`<table class="payment-schedule"><thead><tr>`)
	b.WriteString("<th>ល.រ</th><th>ចំនួនទឹកប្រាក់ (ដុល្លារ)</th><th>កាលបរិច្ឆេទ</th><th>ការពិពណ៌នា</th><th>ស្ថានភាព</th>")
	b.WriteString("</tr></thead><tbody>")
	for _, r := range rows {
		b.WriteString(r)
	}
	b.WriteString("</tbody></table>")
	return b.String()
}

func depositRows(doc *domain.ContractDocument, now time.Time, defaultPeriod string) []string {
	rows := []string{scheduleRow(1, doc.DepositAmount, khmer.FormatDate(now), depositRowLabel, statusPaidLabel)}

	remainder := doc.TotalLandPrice.Sub(doc.DepositAmount)
	if remainder.LessThanOrEqual(decimal.Zero) {
		return rows
	}

	due, err := khmer.AddPeriod(now, doc.DepositPeriod)
	if err != nil {
		log.Warn().Err(err).Str("period", doc.DepositPeriod).Str("default", defaultPeriod).
			Msg("deposit period unparseable, using default")
		if due, err = khmer.AddPeriod(now, defaultPeriod); err != nil {
			log.Error().Err(err).Str("default", defaultPeriod).Msg("default deposit period unparseable")
			due = ""
		}
	}
	return append(rows, scheduleRow(2, remainder, due, remainderRowLabel, statusUnpaidLabel))
}

func stepRows(steps []domain.PaymentStep) []string {
	ordered := make([]domain.PaymentStep, len(steps))
	copy(ordered, steps)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].StepNumber < ordered[j].StepNumber })

	rows := make([]string, len(ordered))
	for i, s := range ordered {
		due := ""
		if d := time.Time(s.DueDate); !d.IsZero() {
			due = khmer.FormatDate(d)
		}
		status := statusUnpaidLabel
		if s.Status == domain.StepStatusPaid {
			status = statusPaidLabel
		}
		rows[i] = scheduleRow(s.StepNumber, s.Amount, due, s.Description, status)
	}
	return rows
}

func scheduleRow(no int, amount decimal.Decimal, date, description, status string) string {
	var b strings.Builder
	b.WriteString(`<tr><td class="center">`)
	b.WriteString(khmer.Digits(strconv.Itoa(no)))
	b.WriteString(`</td><td class="amount">`)
	b.WriteString(khmer.FormatAmount(amount))
	b.WriteString(`</td><td class="center">`)
	b.WriteString(date)
	b.WriteString("</td><td>")
	b.WriteString(description)
	b.WriteString(`</td><td class="center">`)
	b.WriteString(status)
	b.WriteString("</td></tr>")
	return b.String()
}
