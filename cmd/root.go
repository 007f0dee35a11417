package cmd

import (
	"fmt"
	"os"

	"practice-ledger/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "practice-ledger",
	Short: "Practice ranking ledger",
	Long: `Practice Ledger keeps a persistent ranking for players of a recurring team game.
It applies practice-session results from a CSV sheet to a player store and
marks the sheet rows processed so re-runs never count a session twice.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format at debug level for ISO8601 timestamps on the CLI
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
