package documents

import (
	"encoding/base64"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"landdoc-backend/internal/domain"

	"github.com/rs/zerolog/log"
)

// PageSource names one scan image to append: the on-disk path (relative to
// the storage root) and the header label printed above it.
type PageSource struct {
	Label string
	Path  string
}

// Appender turns attached scan images into full-page HTML blocks with
// base64 data URIs. Scan images are optional enrichments: a missing or
// unreadable file is logged and skipped, never an error.
type Appender struct {
	StorageDir string
}

// CollectSources lists the document's scan pages in the fixed output order:
// buyers, then sellers, then lands, front before back within each record.
func CollectSources(doc *domain.ContractDocument) []PageSource {
	var sources []PageSource
	addParty := func(role string, p domain.Party) {
		if p.FrontImagePath != "" {
			sources = append(sources, PageSource{Label: "អត្តសញ្ញាណប័ណ្ណ" + role + " " + p.Name, Path: p.FrontImagePath})
		}
		if p.BackImagePath != "" {
			sources = append(sources, PageSource{Label: "អត្តសញ្ញាណប័ណ្ណ" + role + " " + p.Name + " (ខាងក្រោយ)", Path: p.BackImagePath})
		}
	}
	for _, p := range doc.Buyers() {
		addParty("អ្នកទិញ", p)
	}
	for _, p := range doc.Sellers() {
		addParty("អ្នកលក់", p)
	}
	for _, a := range doc.Allocations {
		if a.Land.FrontImagePath != "" {
			sources = append(sources, PageSource{Label: "ប្លង់ដីឡូត៍លេខ " + a.Land.PlotNumber, Path: a.Land.FrontImagePath})
		}
		if a.Land.BackImagePath != "" {
			sources = append(sources, PageSource{Label: "ប្លង់ដីឡូត៍លេខ " + a.Land.PlotNumber + " (ខាងក្រោយ)", Path: a.Land.BackImagePath})
		}
	}
	return sources
}

// Pages reads every source concurrently (independent local file reads) and
// concatenates the page blocks in source order, so output stays
// deterministic regardless of read completion order.
func (a *Appender) Pages(sources []PageSource) string {
	pages := make([]string, len(sources))
	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(i int, src PageSource) {
			defer wg.Done()
			pages[i] = a.renderPage(src)
		}(i, src)
	}
	wg.Wait()
	return strings.Join(pages, "")
}

func (a *Appender) renderPage(src PageSource) string {
	data, err := os.ReadFile(filepath.Join(a.StorageDir, src.Path))
	if err != nil {
		log.Warn().Err(err).Str("path", src.Path).Msg("scan image unreadable, skipping page")
		return ""
	}
	mime := http.DetectContentType(data)

	var b strings.Builder
	b.WriteString(`<div class="image-page"><div class="image-page-header">`)
	b.WriteString(src.Label)
	b.WriteString(`</div><img src="data:`)
	b.WriteString(mime)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	b.WriteString(`" /></div>`)
	return b.String()
}
