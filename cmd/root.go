package cmd

import (
	"os"

	"github.com/mezonai/certledger/logx"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "certledger",
	Short: "Academic certificate ledger CLI",
	Long: `Command line interface for an in-memory, hash-linked ledger of academic
certificates. Registered universities stage certificates and mine them into
proof-of-work blocks; anyone can validate the chain or verify a student.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logx.Error("CMD", "Command execution failed:", err)
		os.Exit(1)
	}
}
