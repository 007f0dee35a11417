package reconcile

import (
	"sort"

	"practice-ledger/core/player"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Ledger is the in-memory player store, keyed by exact player name.
// It is owned by a single run and is not safe for concurrent use.
type Ledger struct {
	players map[string]*player.Player
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{players: make(map[string]*player.Player)}
}

// Put inserts or replaces a player. The last write for a name wins.
func (l *Ledger) Put(p player.Player) {
	cp := p
	l.players[p.Name] = &cp
}

// Get returns the player with the given name.
func (l *Ledger) Get(name string) (*player.Player, bool) {
	p, ok := l.players[name]
	return p, ok
}

// Ensure returns the named player, creating a fresh one when absent.
func (l *Ledger) Ensure(name string) (p *player.Player, created bool) {
	if p, ok := l.players[name]; ok {
		return p, false
	}
	p = player.New(name)
	l.players[name] = p
	return p, true
}

// Len returns the number of players.
func (l *Ledger) Len() int {
	return len(l.players)
}

// Sorted returns copies of all players ordered by case-insensitive name.
// Names that fold to the same key are ordered by their exact bytes.
func (l *Ledger) Sorted() []player.Player {
	fold := cases.Lower(language.Und)
	type entry struct {
		key string
		p   player.Player
	}

	entries := make([]entry, 0, len(l.players))
	for _, p := range l.players {
		entries = append(entries, entry{key: fold.String(p.Name), p: *p})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].key != entries[j].key {
			return entries[i].key < entries[j].key
		}
		return entries[i].p.Name < entries[j].p.Name
	})

	out := make([]player.Player, len(entries))
	for i, e := range entries {
		out[i] = e.p
	}
	return out
}

// Lines returns the encoded form of Sorted, one record per element.
func (l *Ledger) Lines() []string {
	sorted := l.Sorted()
	lines := make([]string, len(sorted))
	for i, p := range sorted {
		lines[i] = p.Encode()
	}
	return lines
}
