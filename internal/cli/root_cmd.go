package cli

import (
	"github.com/spf13/cobra"

	"github.com/GregMSThompson/report-cms/internal/bootstrap"
	"github.com/GregMSThompson/report-cms/internal/config"
	"github.com/GregMSThompson/report-cms/internal/services"
)

func NewRootCmd(deps *Deps) *cobra.Command {
	if deps.Shutdown == nil {
		deps.Shutdown = func() {}
	}

	cmd := &cobra.Command{
		Use:           "reportctl",
		Short:         "manage the report content document",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if deps.Content != nil {
				return nil
			}
			cfg := config.New()
			bs, err := bootstrap.Run(cfg, bootstrap.WithLogger(deps.Log))
			if err != nil {
				bs.Close()
				return err
			}
			var opts []services.ContentOption
			if bs.Seed != nil {
				opts = append(opts, services.WithSeed(bs.Seed))
			}
			deps.Content = services.NewContentService(bs.Store, opts...)
			deps.Shutdown = bs.Close
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			deps.Shutdown()
		},
	}

	cmd.AddCommand(
		NewSeedCmd(deps),
		NewResetCmd(deps),
		NewExportCmd(deps),
		NewImportCmd(deps),
	)
	return cmd
}
