package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var issuersCmd = &cobra.Command{
	Use:   "issuers",
	Short: "List the universities allowed to add and mine certificates",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadIssuers(chainFlags)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tUNIVERSITY")
		for _, id := range reg.IDs() {
			fmt.Fprintf(w, "%s\t%s\n", id, reg[id])
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(issuersCmd)
}
