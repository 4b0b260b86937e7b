package documents

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"landdoc-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smallest valid PNG header; DetectContentType only needs the magic bytes.
var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func TestCollectSources_Order(t *testing.T) {
	doc := &domain.ContractDocument{
		Parties: []domain.DocumentParty{
			{Role: domain.PartyRoleSeller, Position: 1, Party: domain.Party{Name: "S", FrontImagePath: "s-front.png"}},
			{Role: domain.PartyRoleBuyer, Position: 2, Party: domain.Party{Name: "B2", FrontImagePath: "b2-front.png", BackImagePath: "b2-back.png"}},
			{Role: domain.PartyRoleBuyer, Position: 1, Party: domain.Party{Name: "B1", FrontImagePath: "b1-front.png"}},
		},
		Allocations: []domain.LandAllocation{
			{Land: domain.Land{PlotNumber: "A-1", FrontImagePath: "land-front.png"}},
		},
	}

	sources := CollectSources(doc)
	paths := make([]string, len(sources))
	for i, s := range sources {
		paths[i] = s.Path
	}
	assert.Equal(t, []string{"b1-front.png", "b2-front.png", "b2-back.png", "s-front.png", "land-front.png"}, paths,
		"buyers then sellers then lands, front before back")
}

func TestCollectSources_NoImages(t *testing.T) {
	doc := &domain.ContractDocument{
		Parties: []domain.DocumentParty{{Role: domain.PartyRoleBuyer, Party: domain.Party{Name: "B"}}},
	}
	assert.Empty(t, CollectSources(doc))
}

func TestPages_EmbedsBase64AndKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "one.png"), pngBytes, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "two.png"), pngBytes, 0o644))

	a := &Appender{StorageDir: dir}
	got := a.Pages([]PageSource{
		{Label: "ទំព័រទី១", Path: "one.png"},
		{Label: "ទំព័រទី២", Path: "two.png"},
	})

	assert.Contains(t, got, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(pngBytes))
	assert.Equal(t, 2, strings.Count(got, `class="image-page"`))
	assert.Less(t, strings.Index(got, "ទំព័រទី១"), strings.Index(got, "ទំព័រទី២"))
}

func TestPages_MissingFileSkippedSilently(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "present.png"), pngBytes, 0o644))

	a := &Appender{StorageDir: dir}
	got := a.Pages([]PageSource{
		{Label: "absent", Path: "missing.png"},
		{Label: "present", Path: "present.png"},
	})

	assert.NotContains(t, got, "absent")
	assert.Contains(t, got, "present")
	assert.Equal(t, 1, strings.Count(got, `class="image-page"`))
}
