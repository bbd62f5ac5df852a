package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"jobportal-engine/internal/catalog"
)

func jobsCmd(f *rootFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "jobs [query]",
		Short: "List postings whose title contains query",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(f)
			if err != nil {
				return err
			}
			jobs, err := catalog.Load(inDataDir(cfg.App.DataDir, cfg.Catalog.SeedFile))
			if err != nil {
				return err
			}
			var query string
			if len(args) == 1 {
				query = args[0]
			}
			jobs = catalog.Search(jobs, query)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(jobs)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tCOMPANY\tEXPERIENCE\tSKILLS")
			for _, j := range jobs {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%d years\t%s\n",
					j.ID, j.Title, j.Company, j.ExperienceYears, strings.Join(j.RequiredSkills, ", "))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}
