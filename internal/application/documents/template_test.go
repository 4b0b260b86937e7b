package documents

import (
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"

	"landdoc-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemplate(t *testing.T, dir, documentType, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, documentType+".html"), []byte(body), 0o644))
}

func TestRender_SubstitutesAllKeys(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, domain.DocumentTypeSale,
		"<html>{{style}}<p>{{date}}</p><p>{{buyer_content}}</p></html>")

	e := NewEngine(dir)
	got, err := e.Render(domain.DocumentTypeSale, RenderContext{
		"date":          "ថ្ងៃទី១",
		"buyer_content": "អ្នកទិញ",
	})
	require.NoError(t, err)

	assert.Contains(t, got, contractStylesheet)
	assert.Contains(t, got, "<p>ថ្ងៃទី១</p>")
	assert.Contains(t, got, "<p>អ្នកទិញ</p>")
	assert.NotContains(t, got, "{{")
}

func TestRender_UnmatchedPlaceholderLeftVerbatim(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, domain.DocumentTypeSale, "<p>{{unknown_token}}</p>")

	e := NewEngine(dir)
	got, err := e.Render(domain.DocumentTypeSale, RenderContext{"date": "x"})
	require.NoError(t, err)
	assert.Contains(t, got, "{{unknown_token}}")
}

func TestRender_MissingTemplate(t *testing.T) {
	e := NewEngine(t.TempDir())
	_, err := e.Render(domain.DocumentTypeDeposit, RenderContext{})
	var merr *MissingTemplateError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, domain.DocumentTypeDeposit, merr.DocumentType)
}

func TestRender_RepairsInvalidEncoding(t *testing.T) {
	dir := t.TempDir()
	body := append([]byte("<p>{{date}}"), 0xFF, 0xFE)
	body = append(body, []byte("</p>")...)
	require.False(t, utf8.Valid(body))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.DocumentTypeSale+".html"), body, 0o644))

	e := NewEngine(dir)
	got, err := e.Render(domain.DocumentTypeSale, RenderContext{"date": "ok"})
	require.NoError(t, err, "malformed encoding is repaired, not surfaced")
	assert.True(t, utf8.ValidString(got))
	assert.Contains(t, got, "<p>ok")
}
