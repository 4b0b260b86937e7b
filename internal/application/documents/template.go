package documents

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// RenderContext maps placeholder keys (without braces) to already-formatted
// fragments. Built fresh per generation call, never persisted.
type RenderContext map[string]string

// StylePlaceholder is the reserved token the shared stylesheet replaces.
const StylePlaceholder = "{{style}}"

// Engine loads document-type templates and performs placeholder
// substitution. TemplateDir and Stylesheet are read-only configuration fixed
// at construction; an Engine is safe for concurrent use.
type Engine struct {
	TemplateDir string
	Stylesheet  string
}

// NewEngine returns an Engine over the given template directory with the
// shared contract stylesheet.
func NewEngine(templateDir string) *Engine {
	return &Engine{TemplateDir: templateDir, Stylesheet: contractStylesheet}
}

// Render loads <TemplateDir>/<documentType>.html, repairs its encoding if
// needed, injects the stylesheet, and substitutes every {{key}} present in
// ctx in a single pass. Unmatched placeholders are left verbatim: a draft
// with visible tokens beats an aborted generation.
func (e *Engine) Render(documentType string, ctx RenderContext) (string, error) {
	path := filepath.Join(e.TemplateDir, documentType+".html")
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &MissingTemplateError{DocumentType: documentType, Path: path}
		}
		return "", err
	}

	body := repairEncoding(path, raw)

	pairs := make([]string, 0, 2*len(ctx)+2)
	pairs = append(pairs, StylePlaceholder, e.Stylesheet)
	for k, v := range ctx {
		pairs = append(pairs, "{{"+k+"}}", v)
	}
	return strings.NewReplacer(pairs...).Replace(body), nil
}

// repairEncoding forces the template to valid UTF-8. Templates edited by
// hand occasionally pick up stray bytes; a mangled rune in the output is
// recoverable, an aborted generation is not.
func repairEncoding(path string, raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	log.Warn().Str("template", path).Msg("template is not valid UTF-8, re-encoding")
	repaired, _, err := transform.Bytes(unicode.UTF8.NewDecoder(), raw)
	if err != nil {
		// The UTF-8 decoder substitutes rather than fails; this path is
		// unreachable in practice but keeps the contract total.
		return string(raw)
	}
	return string(repaired)
}
