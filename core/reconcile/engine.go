package reconcile

import (
	"context"
	"fmt"
	"strings"

	"practice-ledger/core/player"

	"go.uber.org/zap"
)

// Engine applies session rows from a Source to a Store.
type Engine struct {
	store  Store
	source Source
	logger *zap.Logger
	opts   Options
}

// NewEngine creates an engine. A nil logger is replaced by a no-op logger.
func NewEngine(store Store, source Source, logger *zap.Logger, opts Options) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		store:  store,
		source: source,
		logger: logger,
		opts:   opts,
	}
}

// LoadPlayers reads every record line from the store into a new ledger.
// Blank lines are ignored. Any undecodable line fails the whole load.
func LoadPlayers(ctx context.Context, store Store) (*Ledger, error) {
	lines, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s store: %w", store.Name(), err)
	}

	ledger := NewLedger()
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		p, err := player.Decode(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrStoreCorrupt, i+1, err)
		}
		ledger.Put(p)
	}
	return ledger, nil
}

// ProcessRow applies a single session row to the ledger and persists the ledger.
// It reports whether the row was applied; processed rows are skipped.
// Scores are checked before anything is mutated.
func (e *Engine) ProcessRow(ctx context.Context, row SessionRow, ledger *Ledger) (bool, error) {
	_, err := e.applyRow(ctx, row, ledger)
	if err != nil {
		return false, err
	}
	return !row.Processed, nil
}

// applyRow does the work of ProcessRow and also returns the number of players created.
func (e *Engine) applyRow(ctx context.Context, row SessionRow, ledger *Ledger) (int, error) {
	if row.Processed {
		return 0, nil
	}

	aDiff, bDiff, err := row.Diffs()
	if err != nil {
		return 0, fmt.Errorf("row %d (%s): %w", row.Line, row.Date, err)
	}

	aTeam := ParseTeam(row.ATeam)
	bTeam := ParseTeam(row.BTeam)

	created := 0
	for _, name := range append(append([]string{}, aTeam...), bTeam...) {
		if _, isNew := ledger.Ensure(name); isNew {
			created++
		}
	}

	applyTeam(ledger, aTeam, aDiff)
	applyTeam(ledger, bTeam, bDiff)

	e.logger.Debug("Applied session row",
		zap.Int("line", row.Line),
		zap.String("date", row.Date),
		zap.Int("a_diff", aDiff),
		zap.Int("b_diff", bDiff),
		zap.Strings("a_team", aTeam),
		zap.Strings("b_team", bTeam),
	)

	if e.opts.DryRun {
		return created, nil
	}

	if err := e.store.Save(ctx, ledger.Lines()); err != nil {
		return created, fmt.Errorf("failed to save %s store after row %d: %w", e.store.Name(), row.Line, err)
	}
	return created, nil
}

// applyTeam updates every roster occurrence independently, so a name listed
// twice is credited twice.
func applyTeam(ledger *Ledger, team []string, diff int) {
	for _, name := range team {
		p, _ := ledger.Ensure(name)
		p.UpdateRanking(diff)
		p.RecordGame()
	}
}

// Run loads the store, applies every unprocessed row in source order and marks
// all rows processed. The first error halts the run without touching the source.
func (e *Engine) Run(ctx context.Context) (*Summary, error) {
	ledger, err := LoadPlayers(ctx, e.store)
	if err != nil {
		return nil, err
	}
	e.logger.Info("Loaded player store",
		zap.String("store", e.store.Name()),
		zap.Int("players", ledger.Len()),
	)

	rows, err := e.source.Rows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s sessions: %w", e.source.Name(), err)
	}

	summary := &Summary{Rows: len(rows), DryRun: e.opts.DryRun}
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if row.Processed {
			summary.Skipped++
			continue
		}
		created, err := e.applyRow(ctx, row, ledger)
		if err != nil {
			return summary, err
		}
		summary.Applied++
		summary.NewPlayers += created
	}
	summary.Players = ledger.Len()

	if e.opts.DryRun {
		e.logger.Info("Dry-run mode: store and sessions left unchanged")
		return summary, nil
	}

	marked := make([]SessionRow, len(rows))
	for i, row := range rows {
		row.Processed = true
		marked[i] = row
	}
	if err := e.source.MarkProcessed(ctx, marked); err != nil {
		return summary, fmt.Errorf("failed to mark %s sessions processed: %w", e.source.Name(), err)
	}

	e.logger.Info("Ledger run complete",
		zap.Int("rows", summary.Rows),
		zap.Int("applied", summary.Applied),
		zap.Int("skipped", summary.Skipped),
		zap.Int("new_players", summary.NewPlayers),
		zap.Int("players", summary.Players),
	)
	return summary, nil
}
