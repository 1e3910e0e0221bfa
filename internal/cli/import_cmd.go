package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/GregMSThompson/report-cms/internal/models"
)

func NewImportCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "replace the document with one read from a JSON, JSONC or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := readDocument(args[0])
			if err != nil {
				return err
			}
			if err := deps.Content.SaveData(cmd.Context(), d); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d sections from %s\n", len(d.Sections), args[0])
			return nil
		},
	}
}

func readDocument(path string) (*models.AppData, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var v any
		if err := yaml.Unmarshal(b, &v); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		if b, err = json.Marshal(v); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	return models.ParseDocument(b)
}
