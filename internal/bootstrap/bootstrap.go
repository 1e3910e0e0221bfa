package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/GregMSThompson/report-cms/internal/config"
	"github.com/GregMSThompson/report-cms/internal/models"
	"github.com/GregMSThompson/report-cms/internal/services"
	"github.com/GregMSThompson/report-cms/internal/store"
	"github.com/GregMSThompson/report-cms/internal/telemetry"
	"github.com/GregMSThompson/report-cms/pkg/logger"
)

// DocumentStore is what the content service persists through.
type DocumentStore interface {
	Get(ctx context.Context) (*models.AppData, error)
	Put(ctx context.Context, d *models.AppData) error
}

type Bootstrap struct {
	Log           *slog.Logger
	Firestore     *firestore.Client
	Mongo         *mongo.Client
	Secrets       *secretmanager.Client
	Store         DocumentStore
	AdminPassword string
	Seed          *models.AppData

	shutdownTelemetry telemetry.ShutdownFunc
}

type Option func(*Bootstrap)

// WithLogger replaces the Cloud Run stdout logger, e.g. for CLI tools whose
// stdout carries data.
func WithLogger(log *slog.Logger) Option {
	return func(bs *Bootstrap) { bs.Log = log }
}

func Run(cfg *config.Config, opts ...Option) (*Bootstrap, error) {
	var err error
	applicationCtx := context.Background()
	bs := new(Bootstrap)
	for _, opt := range opts {
		opt(bs)
	}

	if bs.Log == nil {
		bs.Log = logger.NewCloudRun(cfg.LogLevel).With("service", cfg.ServiceName)
		slog.SetDefault(bs.Log)
	}

	bs.shutdownTelemetry, err = telemetry.Init(applicationCtx, bs.Log, cfg.OTLPEndpoint, cfg.ServiceName)
	if err != nil {
		return bs, err
	}

	bs.Store, err = bs.initStore(applicationCtx, cfg)
	if err != nil {
		return bs, err
	}

	bs.AdminPassword, err = bs.adminPassword(applicationCtx, cfg)
	if err != nil {
		return bs, err
	}

	if cfg.SeedFile != "" {
		bs.Seed, err = LoadDocument(cfg.SeedFile)
		if err != nil {
			return bs, err
		}
	}

	return bs, nil
}

func (bs *Bootstrap) initStore(ctx context.Context, cfg *config.Config) (DocumentStore, error) {
	switch cfg.StoreBackend {
	case config.StoreFirestore:
		client, err := InitFirestore(ctx, cfg.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("firestore: %w", err)
		}
		bs.Firestore = client
		return store.NewFirestoreStore(client), nil
	case config.StoreMongo:
		client, err := InitMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, fmt.Errorf("mongodb: %w", err)
		}
		bs.Mongo = client
		return store.NewMongoStore(client, cfg.MongoDatabase), nil
	case config.StoreMemory:
		bs.Log.Warn("using in-memory document store, content is lost on restart")
		return store.NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}

// adminPassword resolves the shared admin secret: the Secret Manager secret
// when one is named, else ADMINPASSWORD, else the built-in default.
func (bs *Bootstrap) adminPassword(ctx context.Context, cfg *config.Config) (string, error) {
	if cfg.AdminPasswordSecret == "" {
		if cfg.AdminPassword == "" {
			bs.Log.Warn("no admin password configured, using the default")
			return services.DefaultAdminPassword, nil
		}
		return cfg.AdminPassword, nil
	}

	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return "", fmt.Errorf("secret manager: %w", err)
	}
	bs.Secrets = client

	pw, err := store.NewSecretStore(client, cfg.ProjectID).GetSecret(ctx, cfg.AdminPasswordSecret)
	if err != nil {
		return "", fmt.Errorf("reading admin password secret: %w", err)
	}
	return pw, nil
}

// LoadDocument reads a JSON or JSONC report document from disk.
func LoadDocument(path string) (*models.AppData, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return models.ParseDocument(b)
}

func (bs *Bootstrap) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if bs.Firestore != nil {
		if err := bs.Firestore.Close(); err != nil {
			bs.Log.Warn("closing firestore", "error", err)
		}
	}
	if bs.Mongo != nil {
		if err := bs.Mongo.Disconnect(ctx); err != nil {
			bs.Log.Warn("closing mongodb", "error", err)
		}
	}
	if bs.Secrets != nil {
		if err := bs.Secrets.Close(); err != nil {
			bs.Log.Warn("closing secret manager", "error", err)
		}
	}
	if bs.shutdownTelemetry != nil {
		if err := bs.shutdownTelemetry(ctx); err != nil {
			bs.Log.Warn("flushing traces", "error", err)
		}
	}
}
