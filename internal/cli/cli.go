// Package cli implements reportctl, the maintenance tool for the report
// document.
package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/GregMSThompson/report-cms/internal/models"
	"github.com/GregMSThompson/report-cms/pkg/logger"
)

// contentRepository is the part of the content service reportctl drives.
type contentRepository interface {
	Initialize(ctx context.Context)
	GetData(ctx context.Context) *models.AppData
	SaveData(ctx context.Context, d *models.AppData) error
	ResetData(ctx context.Context) error
}

type Deps struct {
	// Content is built from the environment when nil.
	Content  contentRepository
	Log      *slog.Logger
	Shutdown func()
}

// Run executes reportctl with args and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, deps *Deps) (int, error) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if deps == nil {
		deps = &Deps{}
	}
	if deps.Log == nil {
		deps.Log = slog.New(logger.NewCloudRunHandlerTo(stderr, slog.LevelInfo))
	}
	ctx = logger.ToContext(ctx, deps.Log)

	cmd := NewRootCmd(deps)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return 130, err
		}
		return 1, err
	}
	return 0, nil
}
