package store

import (
	"context"
	"encoding/json"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/GregMSThompson/report-cms/internal/errs"
	"github.com/GregMSThompson/report-cms/internal/models"
)

// mongoStore keeps the document under _id = ContentDocument. The body goes
// through the JSON wire record (as relaxed Extended JSON) so the stored shape
// matches the Firestore document field for field.
type mongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(client *mongo.Client, database string) *mongoStore {
	return &mongoStore{coll: client.Database(database).Collection(ContentCollection)}
}

func (s *mongoStore) filter() bson.D {
	return bson.D{{Key: "_id", Value: ContentDocument}}
}

func (s *mongoStore) Get(ctx context.Context) (*models.AppData, error) {
	ctx, span := tracer.Start(ctx, "store.mongodb.get")
	defer span.End()
	span.SetAttributes(attribute.String("db.system", "mongodb"))

	raw, err := s.coll.FindOne(ctx, s.filter()).Raw()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewNotFoundError("content document not found")
		}
		span.SetStatus(codes.Error, "find_failed")
		return nil, errs.NewStoreError(errs.OpRead, "failed to get content document", err)
	}
	js, err := bson.MarshalExtJSON(raw, false, false)
	if err != nil {
		return nil, errs.NewStoreError(errs.OpRead, "failed to convert content document", err)
	}
	var rec models.DocumentRecord
	if err := json.Unmarshal(js, &rec); err != nil {
		return nil, errs.NewStoreError(errs.OpRead, "failed to parse content document", err)
	}
	return rec.AppData(), nil
}

func (s *mongoStore) Put(ctx context.Context, d *models.AppData) error {
	ctx, span := tracer.Start(ctx, "store.mongodb.put")
	defer span.End()
	span.SetAttributes(
		attribute.String("db.system", "mongodb"),
		attribute.Int("report.sections", len(d.Sections)),
	)

	body, err := toBSON(d)
	if err != nil {
		return errs.NewStoreError(errs.OpWrite, "failed to encode content document", err)
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, s.filter(), body, opts); err != nil {
		span.SetStatus(codes.Error, "replace_failed")
		return errs.NewStoreError(errs.OpWrite, "failed to save content document", err)
	}
	return nil
}

func toBSON(d *models.AppData) (bson.D, error) {
	js, err := json.Marshal(models.NewDocumentRecord(d))
	if err != nil {
		return nil, err
	}
	var body bson.D
	if err := bson.UnmarshalExtJSON(js, false, &body); err != nil {
		return nil, err
	}
	return append(bson.D{{Key: "_id", Value: ContentDocument}}, body...), nil
}
