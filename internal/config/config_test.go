package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "STOREBACKEND", "MONGODATABASE", "COOKIESECURE", "OTEL_SERVICE_NAME", "ADMINPASSWORD"} {
		t.Setenv(k, "")
	}

	cfg := New()

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, StoreFirestore, cfg.StoreBackend)
	require.Equal(t, "report", cfg.MongoDatabase)
	require.False(t, cfg.SecureCookies)
	require.Equal(t, "report-cms", cfg.ServiceName)
	require.Empty(t, cfg.AdminPassword)
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STOREBACKEND", StoreMongo)
	t.Setenv("MONGOURI", "mongodb://localhost:27017")
	t.Setenv("COOKIESECURE", "true")
	t.Setenv("ADMINPASSWORDSECRET", "report-admin-password")

	cfg := New()

	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, StoreMongo, cfg.StoreBackend)
	require.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	require.True(t, cfg.SecureCookies)
	require.Equal(t, "report-admin-password", cfg.AdminPasswordSecret)
}
