package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/licensedb/licensedb/internal/tags"
)

// NewTagsCommand creates the tags command.
func NewTagsCommand() *cobra.Command {
	var onlyMissing bool

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Apply tag heuristics to merged license documents",
		Long: `Compute heuristic tags (license type, domain, copyleft strength, family,
notes, SPDX status) for every merged document, validate them against the
tag registry and rewrite each document's tags field in place.`,
		Example: `  # Tag every license
  licensedb tags

  # Only tag documents without a tags field
  licensedb tags --only-missing`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := GetConfig(ctx)
			r := GetRenderer(ctx)
			log := GetLogger(ctx)

			reg, err := tags.LoadRegistry(cfg.TagsPath)
			if err != nil {
				return err
			}

			updated, err := tags.Apply(cfg.LicensesDir, reg, onlyMissing, log)
			if err != nil {
				return err
			}
			r.Println(fmt.Sprintf("Tagged %d license document(s)", updated))
			return nil
		},
	}

	cmd.Flags().BoolVar(&onlyMissing, "only-missing", false, "Only tag documents without a tags field")

	return cmd
}
