package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/licensedb/licensedb/internal/cli/output"
	"github.com/licensedb/licensedb/internal/merge"
	"github.com/licensedb/licensedb/internal/rules"
)

// NewMergeCommand creates the merge command.
func NewMergeCommand() *cobra.Command {
	var (
		updateSubmodules  bool
		onlyUncategorized bool
	)

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge SPDX and choosealicense metadata into per-license documents",
		Long: `Merge the SPDX license list with choosealicense metadata into one JSON
document per license under the licenses directory.

Every SPDX license is classified first; licenses matched in choosealicense
(or the manual override table) get their rule labels translated through
the rule registry and categorized=true, the rest are written with empty
rule lists and categorized=false. Output is fully regenerated on each run.

An upstream rule label missing from the registry aborts the run before
anything is written, reporting every unknown label at once.`,
		Example: `  # Full merge
  licensedb merge

  # Refresh the upstream submodules first
  licensedb merge --update-submodules

  # Write only the uncategorized records, for triage
  licensedb merge --only-uncategorized`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMerge(cmd, updateSubmodules, onlyUncategorized)
		},
	}

	cmd.Flags().BoolVar(&updateSubmodules, "update-submodules", false, "Refresh upstream source submodules before merging")
	cmd.Flags().BoolVar(&onlyUncategorized, "only-uncategorized", false, "Write only uncategorized records")

	return cmd
}

func runMerge(cmd *cobra.Command, updateSubmodules, onlyUncategorized bool) error {
	ctx := cmd.Context()
	cfg := GetConfig(ctx)
	r := GetRenderer(ctx)
	log := GetLogger(ctx)

	reg, err := rules.Load(cfg.RulesPath)
	if err != nil {
		return err
	}

	m := merge.New(merge.Options{
		SPDXDir:           cfg.SPDXDir,
		ChooseALicenseDir: cfg.ChooseALicenseDir,
		OutDir:            cfg.LicensesDir,
		UpdateSubmodules:  updateSubmodules,
		OnlyUncategorized: onlyUncategorized,
	}, reg, log)

	res, err := m.Run(ctx)
	if err != nil {
		return err
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(res)
	}

	r.Table(
		[]string{"Total", "Categorized", "Uncategorized", "Written"},
		[][]string{{
			strconv.Itoa(res.Total),
			strconv.Itoa(res.Categorized),
			strconv.Itoa(res.Uncategorized),
			strconv.Itoa(res.Written),
		}},
	)
	return nil
}
