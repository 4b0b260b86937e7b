package documents

import (
	"strings"

	"landdoc-backend/internal/domain"
	"landdoc-backend/internal/khmer"

	"github.com/shopspring/decimal"
)

// ResolvedAllocation pairs a parcel with its effective total price after the
// price_per_m2 / total_price resolution rule has been applied.
type ResolvedAllocation struct {
	Land       domain.Land
	TotalPrice decimal.Decimal
}

const fallbackLandContent = `<li>ដីឡូត៍លេខ ............ ទំហំ ............ម៉ែត្រការ៉េ (............ម៉ែត្រការ៉េ) ស្ថិតនៅ ........................................ តម្លៃសរុប ............ដុល្លារ (............ដុល្លារ)</li>`

// ComposeLands emits one <li> clause per allocation. Unlike ComposeParties
// the items are plain-concatenated with no conjunction; the template's <ol>
// supplies the list structure. Keep the divergence: both behaviors are
// load-bearing for existing saved drafts (see DESIGN.md open questions).
func ComposeLands(allocs []ResolvedAllocation) (string, error) {
	if len(allocs) == 0 {
		return fallbackLandContent, nil
	}

	var b strings.Builder
	for _, a := range allocs {
		size := a.Land.Size.Round(0)
		sizeWords, err := khmer.Words(size)
		if err != nil {
			return "", err
		}
		priceWords, err := khmer.AmountWords(a.TotalPrice)
		if err != nil {
			return "", err
		}

		b.WriteString("<li>ដីឡូត៍លេខ ")
		b.WriteString(a.Land.PlotNumber)
		b.WriteString(" ទំហំ ")
		b.WriteString(khmer.FormatSize(size))
		b.WriteString("ម៉ែត្រការ៉េ (")
		b.WriteString(sizeWords)
		b.WriteString("ម៉ែត្រការ៉េ) ស្ថិតនៅ ")
		b.WriteString(a.Land.Location)
		b.WriteString(" តម្លៃសរុប ")
		b.WriteString(khmer.FormatAmount(a.TotalPrice))
		b.WriteString("ដុល្លារ ")
		b.WriteString(priceWords)
		b.WriteString("</li>")
	}
	return b.String(), nil
}
