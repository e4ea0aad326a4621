package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newFieldsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List the fields of the profiles file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profiles, err := c.loadProfiles()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(c.stdout, 0, 4, 2, ' ', 0)
			for _, name := range profiles.Names() {
				f, err := profiles.Get(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", color.New(color.Bold).Sprint(name), f.Classification, f.String())
			}
			return w.Flush()
		},
	}
}
