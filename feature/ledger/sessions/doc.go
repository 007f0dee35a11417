// Package sessions reads practice-session sheets for the ledger pipeline.
//
// A sheet is a CSV with the columns Date, A-Score, B-Score, A-team, B-team and
// Processed. Rows are validated into typed reconcile.SessionRow values at this
// boundary: scores become optional ints, rosters stay raw strings for
// reconcile.ParseTeam, and Processed accepts true/1/yes in any case.
//
// After a run the sheet is written back with the same columns and row order,
// with Processed set to True on every row.
package sessions
