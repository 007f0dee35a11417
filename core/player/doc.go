// Package player defines the Player record kept in the ranking ledger.
//
// A Player carries a name (the unique key in the store), a cumulative
// ranking (net score differential across all sessions) and the number of
// sessions played.
//
// # Encoding
//
// Each record is stored as one line of JSON with alphabetical keys:
//
//	{"name": "Alice", "number_of_games": 3, "ranking": 12}
//
// Encode is deterministic for equal field values, so encoded lines are used
// both for persistence and for equality checks. Non-ASCII names are written
// literally rather than escaped.
//
// # Usage
//
//	p := player.New("Alice")
//	p.UpdateRanking(6)
//	p.RecordGame()
//	line := p.Encode()
//
//	decoded, err := player.Decode(line)
package player
