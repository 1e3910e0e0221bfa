package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	grpccodes "google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/GregMSThompson/report-cms/internal/errs"
	"github.com/GregMSThompson/report-cms/internal/models"
)

// The whole site lives in one document.
const (
	ContentCollection = "report_content"
	ContentDocument   = "app_data"
)

var tracer = otel.Tracer("github.com/GregMSThompson/report-cms/internal/store")

type firestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *firestoreStore {
	return &firestoreStore{client: client}
}

func (s *firestoreStore) doc() *firestore.DocumentRef {
	return s.client.Collection(ContentCollection).Doc(ContentDocument)
}

func (s *firestoreStore) Get(ctx context.Context) (*models.AppData, error) {
	ctx, span := tracer.Start(ctx, "store.firestore.get")
	defer span.End()
	span.SetAttributes(attribute.String("db.system", "firestore"))

	snap, err := s.doc().Get(ctx)
	if err != nil {
		if status.Code(err) == grpccodes.NotFound {
			return nil, errs.NewNotFoundError("content document not found")
		}
		span.SetStatus(codes.Error, "get_failed")
		return nil, errs.NewStoreError(errs.OpRead, "failed to get content document", err)
	}
	var rec models.DocumentRecord
	if err := snap.DataTo(&rec); err != nil {
		span.SetStatus(codes.Error, "decode_failed")
		return nil, errs.NewStoreError(errs.OpRead, "failed to parse content document", err)
	}
	return rec.AppData(), nil
}

func (s *firestoreStore) Put(ctx context.Context, d *models.AppData) error {
	ctx, span := tracer.Start(ctx, "store.firestore.put")
	defer span.End()
	span.SetAttributes(
		attribute.String("db.system", "firestore"),
		attribute.Int("report.sections", len(d.Sections)),
	)

	if _, err := s.doc().Set(ctx, models.NewDocumentRecord(d)); err != nil {
		span.SetStatus(codes.Error, "set_failed")
		return errs.NewStoreError(errs.OpWrite, "failed to save content document", err)
	}
	return nil
}
