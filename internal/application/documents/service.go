package documents

import (
	"time"

	"landdoc-backend/internal/domain"
	"landdoc-backend/internal/khmer"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// stepSumEpsilon is the tolerance between the sum of payment steps and the
// total land price on sale contracts.
var stepSumEpsilon = decimal.RequireFromString("0.01")

// Service orchestrates a full document generation: validation, composers,
// template substitution, and optional scan-image pages. It is stateless;
// one Service serves concurrent generations.
type Service struct {
	Engine               *Engine
	Appender             *Appender
	DefaultDepositPeriod string

	// Now is the single clock sample for a generation run. Every
	// time-derived fragment ({{date}}, deposit schedule dates, party ages)
	// flows from one call, so a fixed Now reproduces byte-identical output.
	Now func() time.Time
}

// Generate renders the print-ready HTML for a hydrated contract aggregate.
// It mutates nothing; persisting the result is the caller's choice.
func (s *Service) Generate(doc *domain.ContractDocument) (string, error) {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}

	if err := s.validate(doc); err != nil {
		return "", err
	}
	allocs, err := resolveAllocations(doc)
	if err != nil {
		return "", err
	}

	ctx, err := s.buildContext(doc, allocs, now)
	if err != nil {
		return "", err
	}

	html, err := s.Engine.Render(doc.DocumentType, ctx)
	if err != nil {
		return "", err
	}

	if s.Appender != nil {
		if sources := CollectSources(doc); len(sources) > 0 {
			html += s.Appender.Pages(sources)
		}
	}

	log.Info().Str("document_id", doc.DocumentID.String()).Str("type", doc.DocumentType).
		Int("bytes", len(html)).Msg("document generated")
	return html, nil
}

func (s *Service) validate(doc *domain.ContractDocument) error {
	if doc.TotalLandPrice.IsNegative() {
		return &khmer.DomainError{Message: "តម្លៃដីសរុបមិនអាចអវិជ្ជមានបានទេ", Value: doc.TotalLandPrice}
	}
	if doc.DepositAmount.IsNegative() {
		return &khmer.DomainError{Message: "ប្រាក់កក់មិនអាចអវិជ្ជមានបានទេ", Value: doc.DepositAmount}
	}
	if doc.DocumentType == domain.DocumentTypeSale && len(doc.PaymentSteps) > 0 {
		sum := decimal.Zero
		for _, step := range doc.PaymentSteps {
			if !step.Amount.IsPositive() {
				return &khmer.DomainError{Message: "ចំនួនទឹកប្រាក់នៃដំណាក់កាលបង់ប្រាក់ត្រូវតែវិជ្ជមាន", Value: step.Amount}
			}
			sum = sum.Add(step.Amount)
		}
		if sum.Sub(doc.TotalLandPrice).Abs().GreaterThan(stepSumEpsilon) {
			return &khmer.DomainError{
				Message: "ផលបូកនៃដំណាក់កាលបង់ប្រាក់មិនស្មើនឹងតម្លៃដីសរុបទេ",
				Value:   sum,
			}
		}
	}
	return nil
}

func resolveAllocations(doc *domain.ContractDocument) ([]ResolvedAllocation, error) {
	out := make([]ResolvedAllocation, len(doc.Allocations))
	for i, a := range doc.Allocations {
		total, ok := a.ResolveTotalPrice()
		if !ok {
			return nil, &khmer.DomainError{Message: "ដីឡូត៍លេខ " + a.Land.PlotNumber + " មិនមានតម្លៃកំណត់ទេ"}
		}
		out[i] = ResolvedAllocation{Land: a.Land, TotalPrice: total}
	}
	return out, nil
}

func (s *Service) buildContext(doc *domain.ContractDocument, allocs []ResolvedAllocation, now time.Time) (RenderContext, error) {
	totalWords, err := khmer.AmountWords(doc.TotalLandPrice)
	if err != nil {
		return nil, err
	}
	landContent, err := ComposeLands(allocs)
	if err != nil {
		return nil, err
	}

	ctx := RenderContext{
		"date":                   khmer.FormatDate(now),
		"buyer_content":          ComposeParties(doc.Buyers(), LabelBuyers, now),
		"seller_content":         ComposeParties(doc.Sellers(), LabelSellers, now),
		"land_content":           landContent,
		"total_land_price":       khmer.FormatAmount(doc.TotalLandPrice),
		"total_land_price_words": totalWords,
		"payment_schedule":       ComposeSchedule(doc, now, s.DefaultDepositPeriod),
	}

	if doc.DocumentType == domain.DocumentTypeDeposit {
		if err := s.addDepositFields(ctx, doc, now); err != nil {
			return nil, err
		}
	}
	return ctx, nil
}

func (s *Service) addDepositFields(ctx RenderContext, doc *domain.ContractDocument, now time.Time) error {
	depositWords, err := khmer.AmountWords(doc.DepositAmount)
	if err != nil {
		return err
	}
	remaining := doc.TotalLandPrice.Sub(doc.DepositAmount)
	remainingWords, err := khmer.AmountWords(remaining)
	if err != nil {
		return err
	}

	expiry, err := khmer.AddPeriod(now, doc.DepositPeriod)
	if err != nil {
		log.Warn().Err(err).Str("period", doc.DepositPeriod).Str("default", s.DefaultDepositPeriod).
			Msg("deposit period unparseable, using default for expiry date")
		if expiry, err = khmer.AddPeriod(now, s.DefaultDepositPeriod); err != nil {
			expiry = ""
		}
	}

	ctx["deposit_amount"] = khmer.FormatAmount(doc.DepositAmount)
	ctx["deposit_amount_words"] = depositWords
	ctx["remaining_amount"] = khmer.FormatAmount(remaining)
	ctx["remaining_amount_words"] = remainingWords
	ctx["deposit_period"] = khmer.Digits(doc.DepositPeriod)
	ctx["deposit_expiry_date"] = expiry
	return nil
}
