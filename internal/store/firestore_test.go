package store

import (
	"context"
	"os"
	"testing"

	"cloud.google.com/go/firestore"

	"github.com/GregMSThompson/report-cms/internal/errs"
	"github.com/GregMSThompson/report-cms/internal/models"
)

func TestFirestoreStoreWithEmulator(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	ctx := context.Background()
	client, err := firestore.NewClient(ctx, "test-project")
	if err != nil {
		t.Fatalf("firestore client error: %v", err)
	}
	defer client.Close()

	s := NewFirestoreStore(client)
	if _, err := s.doc().Delete(ctx); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}

	if _, err := s.Get(ctx); err == nil {
		t.Fatal("expected not found on empty emulator")
	} else if _, ok := err.(*errs.NotFoundError); !ok {
		t.Fatalf("expected NotFoundError, got %T", err)
	}

	doc := models.DefaultDocument()
	if err := s.Put(ctx, doc); err != nil {
		t.Fatalf("put error: %v", err)
	}

	got, err := s.Get(ctx)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if len(got.Sections) != len(doc.Sections) {
		t.Fatalf("expected %d sections, got %d", len(doc.Sections), len(got.Sections))
	}
	chart := got.Sections[5].Items[1]
	if chart.Type() != models.ItemChart {
		t.Fatalf("expected CHART item, got %s", chart.Type())
	}
	if data := chart.Payload.(models.Chart).Data; len(data) != 4 || data[0].Value1 != 0.0698 {
		t.Fatalf("unexpected chart data: %+v", data)
	}
}

func TestFirestoreStoreLegacyDocumentWithoutSettings(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	ctx := context.Background()
	client, err := firestore.NewClient(ctx, "test-project")
	if err != nil {
		t.Fatalf("firestore client error: %v", err)
	}
	defer client.Close()

	// shape written by the earlier front-end
	legacy := map[string]any{
		"sections": []any{
			map[string]any{
				"id":        "capa",
				"menuTitle": "Início",
				"items": []any{
					map[string]any{"id": "cover-1", "type": "COVER", "title": "Relatório", "stats": []any{}},
				},
			},
		},
	}
	s := NewFirestoreStore(client)
	if _, err := s.doc().Set(ctx, legacy); err != nil {
		t.Fatalf("seed error: %v", err)
	}

	got, err := s.Get(ctx)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if got.Settings != nil {
		t.Fatalf("expected nil settings, got %+v", got.Settings)
	}
	if got.Sections[0].Items[0].Type() != models.ItemCover {
		t.Fatalf("unexpected item type %s", got.Sections[0].Items[0].Type())
	}
}
