package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mezonai/certledger/config"
	"github.com/mezonai/certledger/events"
	"github.com/mezonai/certledger/ledger"
	"github.com/mezonai/certledger/logx"
)

type ChainFlags struct {
	IssuersFile string
	ConfigFile  string
	Difficulty  int
}

var chainFlags ChainFlags

func init() {
	rootCmd.PersistentFlags().StringVarP(&chainFlags.IssuersFile, "issuers", "i", "", "issuer registry YAML file (built-in universities when empty)")
	rootCmd.PersistentFlags().StringVarP(&chainFlags.ConfigFile, "config", "c", "", "chain settings INI file (built-in defaults when empty)")
	rootCmd.PersistentFlags().IntVarP(&chainFlags.Difficulty, "difficulty", "d", config.DefaultDifficulty, "leading zero hex digits required by mining; overrides the config file")
}

func loadIssuers(flags ChainFlags) (config.IssuerRegistry, error) {
	if flags.IssuersFile == "" {
		return config.DefaultIssuers(), nil
	}
	return config.LoadIssuers(flags.IssuersFile)
}

// chainOptions resolves flags into ledger options. An explicitly set
// --difficulty wins over the config file.
func chainOptions(cmd *cobra.Command, flags ChainFlags, bus *events.EventBus) (ledger.Options, error) {
	opts := ledger.DefaultOptions()
	opts.Bus = bus

	issuers, err := loadIssuers(flags)
	if err != nil {
		return opts, err
	}
	opts.Issuers = issuers

	if flags.ConfigFile != "" {
		chainCfg, err := config.LoadChainConfig(flags.ConfigFile)
		if err != nil {
			return opts, err
		}
		opts.Difficulty = chainCfg.Difficulty
		opts.RewardLabel = chainCfg.RewardLabel
	}

	if cmd.Flags().Changed("difficulty") {
		if err := config.ValidateDifficulty(flags.Difficulty); err != nil {
			return opts, fmt.Errorf("--difficulty: %w", err)
		}
		opts.Difficulty = flags.Difficulty
	}

	logx.Info("CMD", fmt.Sprintf("Chain options | difficulty=%d | reward=%q | issuers=%d", opts.Difficulty, opts.RewardLabel, len(opts.Issuers)))
	return opts, nil
}
