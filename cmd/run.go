package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mezonai/certledger/events"
	"github.com/mezonai/certledger/ledger"
	"github.com/mezonai/certledger/monitoring"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive certificate ledger menu",
	Long: `Starts a fresh chain (genesis block only) and opens the interactive menu:

  1. Add certificate record (University only)
  2. Mine block (validate records)
  3. Show blockchain
  4. Validate blockchain
  5. Verify certificate by student name (Employer Access)
  6. Exit

The ledger lives in memory and is gone when the menu exits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		monitoring.InitMetrics()

		bus := events.NewEventBus()
		opts, err := chainOptions(cmd, chainFlags, bus)
		if err != nil {
			return err
		}
		chain := ledger.NewChain(opts)

		return NewMenu(chain, bus, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
