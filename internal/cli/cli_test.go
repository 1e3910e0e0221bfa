package cli

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GregMSThompson/report-cms/internal/models"
	"github.com/GregMSThompson/report-cms/internal/services"
	"github.com/GregMSThompson/report-cms/internal/store"
	"github.com/GregMSThompson/report-cms/pkg/logger"
)

type harness struct {
	store *store.MemoryStore
	deps  *Deps
}

func newHarness() *harness {
	st := store.NewMemoryStore()
	return &harness{
		store: st,
		deps: &Deps{
			Content: services.NewContentService(st),
			Log:     slog.New(logger.NewTestHandler(slog.LevelInfo)),
		},
	}
}

func (h *harness) run(t *testing.T, args ...string) (int, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	code, err := Run(context.Background(), args, &out, &errOut, h.deps)
	return code, out.String(), err
}

func TestSeed(t *testing.T) {
	h := newHarness()

	code, out, err := h.run(t, "seed")

	require.NoError(t, err)
	require.Equal(t, 0, code)
	require.Contains(t, out, "8 sections, 12 blocks")
	require.Equal(t, models.DefaultDocument(), h.store.Snapshot())
}

func TestResetNeedsConfirmation(t *testing.T) {
	h := newHarness()

	code, _, err := h.run(t, "reset")
	require.Error(t, err)
	require.Equal(t, 1, code)
	require.Equal(t, 0, h.store.Puts())

	code, _, err = h.run(t, "reset", "--yes")
	require.NoError(t, err)
	require.Equal(t, 0, code)
	require.Equal(t, models.DefaultDocument(), h.store.Snapshot())
}

func TestExportJSONThenImport(t *testing.T) {
	h := newHarness()
	_, out, err := h.run(t, "export")
	require.NoError(t, err)

	doc, err := models.ParseDocument([]byte(out))
	require.NoError(t, err)
	require.Equal(t, models.DefaultDocument(), doc)

	doc.Sections = doc.Sections[:2]
	path := filepath.Join(t.TempDir(), "doc.json")
	b, err := doc.MarshalJSON()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))

	_, out, err = h.run(t, "import", path)
	require.NoError(t, err)
	require.Contains(t, out, "imported 2 sections")
	require.Len(t, h.store.Snapshot().Sections, 2)
}

func TestExportYAMLRoundTrip(t *testing.T) {
	h := newHarness()
	path := filepath.Join(t.TempDir(), "doc.yaml")

	_, _, err := h.run(t, "export", "--format", "yaml", "--out", path)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), "menuTitle: Início")
	require.Contains(t, string(raw), `year: "2007"`)

	got, err := readDocument(path)
	require.NoError(t, err)
	require.Equal(t, models.DefaultDocument(), got)
}

func TestImportJSONCBackfillsSettings(t *testing.T) {
	h := newHarness()
	path := filepath.Join(t.TempDir(), "doc.jsonc")
	doc := `{
		// no settings block
		"sections": [{"id": "capa", "menuTitle": "Capa", "items": [],},],
	}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	_, _, err := h.run(t, "import", path)
	require.NoError(t, err)

	stored := h.store.Snapshot()
	require.Equal(t, models.DefaultSettings(), *stored.Settings)
	require.Equal(t, "capa", stored.Sections[0].ID)
}

func TestExportUnknownFormat(t *testing.T) {
	h := newHarness()

	code, _, err := h.run(t, "export", "--format", "xml")

	require.Error(t, err)
	require.Equal(t, 1, code)
}
