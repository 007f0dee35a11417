package cmd

import (
	"fmt"

	"practice-ledger/core/config"
	"practice-ledger/core/logger"
	"practice-ledger/core/player"
	"practice-ledger/feature/ledger"

	"github.com/spf13/cobra"
)

var standingsSort string

// standingsCmd prints the current standings.
var standingsCmd = &cobra.Command{
	Use:   "standings [player]",
	Short: "Show the current standings, or one player",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStandings,
}

func init() {
	standingsCmd.Flags().StringVar(&standingsSort, "sort", ledger.SortByRanking, "Order by 'ranking' or 'name'")
	standingsCmd.Flags().StringVar(&storePath, "store", "", "Player store file (overrides LEDGER_STORE_PATH)")

	RootCmd.AddCommand(standingsCmd)
}

func runStandings(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if storePath != "" {
		cfg.Ledger.StorePath = storePath
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	svc, err := openLedger(ctx, cfg, l)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		p, err := svc.Player(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderStandings([]player.Player{*p}))
		return nil
	}

	players, err := svc.Standings(ctx, standingsSort)
	if err != nil {
		return err
	}
	if len(players) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No players yet.")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderStandings(players))
	return nil
}
