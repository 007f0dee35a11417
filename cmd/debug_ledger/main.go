package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"practice-ledger/core/config"
	"practice-ledger/core/player"
	"practice-ledger/core/reconcile"
	"practice-ledger/feature/ledger/sessions"
	"practice-ledger/feature/ledger/store"
)

func main() {
	// Load config
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	// File backends only; the server and CLI cover the others
	st := store.NewFileStore(cfg.Ledger.StorePath)
	src := sessions.NewFileSource(cfg.Ledger.SessionsPath)
	ctx := context.Background()

	// Test 1: every store line decodes
	fmt.Println("=== TEST 1: Store Records ===")
	lines, err := st.Load(ctx)
	if err != nil {
		log.Fatal(err)
	}

	bad := 0
	for i, line := range lines {
		if line == "" {
			continue
		}
		if _, err := player.Decode(line); err != nil {
			fmt.Printf("line %d: %v\n", i+1, err)
			bad++
		}
	}
	fmt.Printf("Total store lines: %d, malformed: %d\n", len(lines), bad)

	// Test 2: the sheet and what a run would do
	fmt.Println("\n=== TEST 2: Session Rows ===")
	rows, err := src.Rows(ctx)
	if err != nil {
		log.Fatal(err)
	}

	pending, missing := 0, 0
	for _, row := range rows {
		if row.Processed {
			continue
		}
		pending++
		if _, _, err := row.Diffs(); err != nil {
			fmt.Printf("row %d (%s): %v\n", row.Line, row.Date, err)
			missing++
		}
	}
	fmt.Printf("Total rows: %d, pending: %d, missing scores: %d\n", len(rows), pending, missing)

	// Test 3: dry run against the real files
	fmt.Println("\n=== TEST 3: Dry Run ===")
	engine := reconcile.NewEngine(st, src, nil, reconcile.Options{DryRun: true})
	summary, err := engine.Run(ctx)
	if err != nil {
		fmt.Printf("Run would fail: %v\n", err)
	}

	// Save detailed output
	output := map[string]interface{}{
		"store_lines":     len(lines),
		"malformed_lines": bad,
		"rows":            len(rows),
		"pending_rows":    pending,
		"missing_scores":  missing,
		"summary":         summary,
	}
	data, _ := json.MarshalIndent(output, "", "  ")
	os.WriteFile("debug_ledger.json", data, 0644)

	fmt.Println("\nDebug complete. Check debug_ledger.json for details.")
}
