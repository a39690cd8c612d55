package commands

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/licensedb/licensedb/internal/catalog"
	"github.com/licensedb/licensedb/internal/cli/output"
)

// NewInspectCommand creates the inspect command group.
func NewInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Query the merged license catalog",
		Long: `Read-only queries over the merged licenses directory.

The catalog is loaded once per invocation; nothing is written.`,
	}

	cmd.AddCommand(newCountCommand())
	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newSummaryCommand())
	cmd.AddCommand(newGetCommand())

	return cmd
}

func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	cfg := GetConfig(cmd.Context())
	return catalog.Load(cfg.LicensesDir)
}

func newCountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Show total, categorized and uncategorized license counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadCatalog(cmd)
			if err != nil {
				return err
			}
			counts := c.Count()

			r := GetRenderer(cmd.Context())
			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(counts)
			}
			r.Table(
				[]string{"Total", "Categorized", "Uncategorized"},
				[][]string{{
					strconv.Itoa(counts.Total),
					strconv.Itoa(counts.Categorized),
					strconv.Itoa(counts.Uncategorized),
				}},
			)
			return nil
		},
	}
}

func newListCommand() *cobra.Command {
	var (
		onlyCategorized   bool
		onlyUncategorized bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List license SPDX IDs",
		Long:  `List SPDX IDs in ordinal sort order, one per line.`,
		Example: `  licensedb inspect list
  licensedb inspect list --only-uncategorized`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadCatalog(cmd)
			if err != nil {
				return err
			}

			filter := catalog.FilterAll
			switch {
			case onlyCategorized:
				filter = catalog.FilterCategorized
			case onlyUncategorized:
				filter = catalog.FilterUncategorized
			}

			r := GetRenderer(cmd.Context())
			if r.EffectiveMode() == output.ModeJSON {
				ids := []string{}
				for id := range c.List(filter) {
					ids = append(ids, id)
				}
				return r.JSON(ids)
			}
			for id := range c.List(filter) {
				r.Println(id)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&onlyCategorized, "only-categorized", false, "List only categorized licenses")
	cmd.Flags().BoolVar(&onlyUncategorized, "only-uncategorized", false, "List only uncategorized licenses")
	cmd.MarkFlagsMutuallyExclusive("only-categorized", "only-uncategorized")

	return cmd
}

func newSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Summarize the catalog by categorization state and rule usage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadCatalog(cmd)
			if err != nil {
				return err
			}
			s := c.Summarize()

			r := GetRenderer(cmd.Context())
			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(s)
			}

			r.Header(1, "Catalog summary")
			r.Table(
				[]string{"State", "Count"},
				[][]string{
					{"categorized", strconv.Itoa(s.Categorized)},
					{"uncategorized", strconv.Itoa(s.Uncategorized)},
					{"total", strconv.Itoa(s.Total)},
				},
			)
			r.Header(2, "Distinct rules in use")
			r.Table(
				[]string{"Category", "Distinct"},
				[][]string{
					{"permissions", strconv.Itoa(s.DistinctPermissions)},
					{"conditions", strconv.Itoa(s.DistinctConditions)},
					{"limitations", strconv.Itoa(s.DistinctLimitations)},
				},
			)
			return nil
		},
	}
}

func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <spdx-id>",
		Short: "Show the full record for one license",
		Long:  `Look up a license by SPDX ID, case-insensitively, and print its record.`,
		Example: `  licensedb inspect get MIT
  licensedb inspect get apache-2.0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog(cmd)
			if err != nil {
				return err
			}
			lic, err := c.Get(args[0])
			if err != nil {
				return err
			}

			r := GetRenderer(cmd.Context())
			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(lic)
			}

			r.Header(1, lic.SPDX.ID)
			r.KeyValue("Title", lic.SPDX.Title)
			r.KeyValue("URL", lic.SPDX.URL)
			r.KeyValue("Categorized", strconv.FormatBool(lic.Categorized))
			if lic.Summary != "" {
				r.KeyValue("Summary", lic.Summary)
			}
			r.KeyValue("Permissions", joinOrDash(lic.Permissions))
			r.KeyValue("Conditions", joinOrDash(lic.Conditions))
			r.KeyValue("Limitations", joinOrDash(lic.Limitations))
			if len(lic.Tags) > 0 {
				r.KeyValue("Tags", strings.Join(lic.Tags, ", "))
			}
			return nil
		},
	}
}

func joinOrDash(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}
