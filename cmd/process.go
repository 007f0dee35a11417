package cmd

import (
	"fmt"

	"practice-ledger/core/config"
	"practice-ledger/core/logger"
	"practice-ledger/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dryRunProcess bool
	storePath     string
	sessionsPath  string
)

// processCmd applies unprocessed session rows to the player store.
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Apply new practice results to the player store",
	Long: `Apply every unprocessed practice session to the player store.

The store is rewritten after each applied session and the session sheet is
rewritten at the end with every row marked processed. Running the command
again over the same sheet changes nothing.

Examples:
  # Apply new sessions using paths from the environment / .env
  process

  # Preview the result without writing anything
  process --dry-run

  # Use explicit files
  process --store players_db.txt --sessions practice_results.csv`,
	RunE: runProcess,
}

func init() {
	processCmd.Flags().BoolVar(&dryRunProcess, "dry-run", false, "Apply rows in memory only (no writes)")
	processCmd.Flags().StringVar(&storePath, "store", "", "Player store file (overrides LEDGER_STORE_PATH)")
	processCmd.Flags().StringVar(&sessionsPath, "sessions", "", "Session CSV file (overrides LEDGER_SESSIONS_PATH)")

	RootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if storePath != "" {
		cfg.Ledger.StorePath = storePath
	}
	if sessionsPath != "" {
		cfg.Ledger.SessionsPath = sessionsPath
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

	l.Info("Starting ledger run", zap.String("backend", cfg.Ledger.Backend), zap.Bool("dry_run", dryRunProcess))
	summary, err := svc.Process(ctx, reconcile.Options{DryRun: dryRunProcess})
	if err != nil {
		return fmt.Errorf("ledger run failed: %w", err)
	}

	printSummary(l, summary)
	return nil
}

// printSummary logs the run summary.
func printSummary(l *zap.Logger, s *reconcile.Summary) {
	l.Info("Ledger report",
		zap.Int("rows", s.Rows),
		zap.Int("applied", s.Applied),
		zap.Int("skipped", s.Skipped),
		zap.Int("new_players", s.NewPlayers),
		zap.Int("players", s.Players),
	)
	if s.DryRun {
		l.Info("Dry-run mode: No changes were made.")
	} else if s.Applied == 0 {
		l.Info("No new sessions to apply.")
	}
}
