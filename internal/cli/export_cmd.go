package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/GregMSThompson/report-cms/internal/models"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

func NewExportCmd(deps *Deps) *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "print the current document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := deps.Content.GetData(cmd.Context())

			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return writeDocument(w, d, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", formatJSON, "output format: json or yaml")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to a file instead of stdout")
	return cmd
}

func writeDocument(w io.Writer, d *models.AppData, format string) error {
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}

	switch format {
	case formatJSON:
		_, err = w.Write(append(b, '\n'))
		return err
	case formatYAML:
		// decoding the JSON into a node keeps the wire field names and order
		var node yaml.Node
		if err := yaml.Unmarshal(b, &node); err != nil {
			return err
		}
		blockStyle(&node)
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&node); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q", format)
}

func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
