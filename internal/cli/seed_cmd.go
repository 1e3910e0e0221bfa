package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewSeedCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "write the default document if the store has none",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			deps.Content.Initialize(ctx)
			d := deps.Content.GetData(ctx)
			fmt.Fprintf(cmd.OutOrStdout(), "document ready: %d sections, %d blocks\n", len(d.Sections), d.ItemCount())
			return nil
		},
	}
}

func NewResetCmd(deps *Deps) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "overwrite the document with the default content",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("reset discards every edit; pass --yes to confirm")
			}
			if err := deps.Content.ResetData(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "document reset to default content")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}
