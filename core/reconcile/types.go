package reconcile

import "errors"

var (
	// ErrStoreCorrupt is returned when a stored record cannot be loaded.
	ErrStoreCorrupt = errors.New("player store corrupt")

	// ErrScoreMissing is returned when a session row lacks a usable numeric score.
	ErrScoreMissing = errors.New("session score missing")
)

// SessionRow represents one practice session read from the session source.
type SessionRow struct {
	// Line is the 1-based position of the row in the source, used in error messages.
	Line int `json:"line"`

	// Date is passed through untouched.
	Date string `json:"date"`

	// AScore is team A's score. Nil when the cell was absent or not numeric.
	AScore *int `json:"a_score"`

	// BScore is team B's score. Nil when the cell was absent or not numeric.
	BScore *int `json:"b_score"`

	// ATeam is the raw roster string for team A, e.g. "[Alice|Bob]".
	ATeam string `json:"a_team"`

	// BTeam is the raw roster string for team B.
	BTeam string `json:"b_team"`

	// Processed marks rows already applied to the store.
	Processed bool `json:"processed"`
}

// Diffs returns the zero-sum score differentials for team A and team B.
func (r SessionRow) Diffs() (aDiff, bDiff int, err error) {
	if r.AScore == nil || r.BScore == nil {
		return 0, 0, ErrScoreMissing
	}
	return *r.AScore - *r.BScore, *r.BScore - *r.AScore, nil
}

// Options controls run behavior.
type Options struct {
	// DryRun applies rows in memory only: neither the store nor the source is written.
	DryRun bool
}

// Summary provides aggregate statistics for a run.
type Summary struct {
	// Rows is the number of rows read from the source.
	Rows int `json:"rows"`

	// Applied counts rows applied to the ledger during this run.
	Applied int `json:"applied"`

	// Skipped counts rows that were already processed.
	Skipped int `json:"skipped"`

	// NewPlayers counts players created during this run.
	NewPlayers int `json:"new_players"`

	// Players is the size of the ledger after the run.
	Players int `json:"players"`

	// DryRun reports whether persistence was suppressed.
	DryRun bool `json:"dry_run"`
}
