package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/GregMSThompson/report-cms/internal/bootstrap"
	"github.com/GregMSThompson/report-cms/internal/config"
	"github.com/GregMSThompson/report-cms/internal/handlers"
	"github.com/GregMSThompson/report-cms/internal/response"
	"github.com/GregMSThompson/report-cms/internal/router"
	"github.com/GregMSThompson/report-cms/internal/services"
	"github.com/GregMSThompson/report-cms/internal/session"
	"github.com/GregMSThompson/report-cms/pkg/logger"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// services
	contentOpts := []services.ContentOption{}
	if bs.Seed != nil {
		contentOpts = append(contentOpts, services.WithSeed(bs.Seed))
	}
	cserv := services.NewContentService(bs.Store, contentOpts...)
	aserv := services.NewAuthService(bs.AdminPassword)

	// hydrate before taking traffic so the first visitor doesn't pay for it
	cserv.Initialize(logger.ToContext(context.Background(), bs.Log))

	// response handler
	rh := response.New(bs.Log)

	// dependencies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.ContentSvc = cserv
	deps.AuthSvc = aserv
	deps.Sessions = session.NewStore(session.WithSecureCookie(cfg.SecureCookies))

	// router
	r := router.NewRouter(deps, bs.Log)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           otelhttp.NewHandler(r, "report-cms"),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		bs.Log.Info("server listening", "addr", srv.Addr, "store", cfg.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			exitOnError("server start failed", err, bs.Log)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		bs.Log.Error("server shutdown failed", "error", err)
	}
}
