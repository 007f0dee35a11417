package player

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrMalformedRecord is returned when a stored line cannot be decoded into a Player.
var ErrMalformedRecord = errors.New("malformed player record")

// Player represents one individual player in the ledger.
type Player struct {
	// Name is the player's name as used in session rosters. It is the store key.
	Name string `json:"name"`
	// Ranking is the overall +/- across all sessions.
	Ranking int `json:"ranking"`
	// NumberOfGames is the number of sessions the player appeared in.
	NumberOfGames int `json:"number_of_games"`
}

// New creates a fresh player with zero ranking and no games.
func New(name string) *Player {
	return &Player{Name: name}
}

// UpdateRanking adds the given score difference to the ranking.
func (p *Player) UpdateRanking(diff int) {
	p.Ranking += diff
}

// RecordGame counts one more session for the player.
func (p *Player) RecordGame() {
	p.NumberOfGames++
}

// Encode returns the stable single-line form of the record.
func (p Player) Encode() string {
	var b strings.Builder
	b.WriteString(`{"name": `)
	b.WriteString(quote(p.Name))
	b.WriteString(`, "number_of_games": `)
	b.WriteString(strconv.Itoa(p.NumberOfGames))
	b.WriteString(`, "ranking": `)
	b.WriteString(strconv.Itoa(p.Ranking))
	b.WriteString("}")
	return b.String()
}

// String implements fmt.Stringer using Encode.
func (p Player) String() string {
	return p.Encode()
}

// Equal reports whether both records encode identically.
func (p Player) Equal(other Player) bool {
	return p.Encode() == other.Encode()
}

// record mirrors the stored JSON. Name is a pointer so a missing key can be told apart.
type record struct {
	Name          *string `json:"name"`
	Ranking       int     `json:"ranking"`
	NumberOfGames int     `json:"number_of_games"`
}

// Decode parses a line produced by Encode.
// Ranking and NumberOfGames default to zero when absent; Name is required.
func Decode(line string) (Player, error) {
	var r record
	if err := json.Unmarshal([]byte(line), &r); err != nil {
		return Player{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	if r.Name == nil || *r.Name == "" {
		return Player{}, fmt.Errorf("%w: missing name", ErrMalformedRecord)
	}
	return Player{
		Name:          *r.Name,
		Ranking:       r.Ranking,
		NumberOfGames: r.NumberOfGames,
	}, nil
}

// quote renders s as a JSON string without HTML escaping. The line and
// paragraph separators U+2028 and U+2029 are written literally like any other
// non-ASCII rune.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for {
		i := strings.IndexAny(s, "\u2028\u2029")
		if i < 0 {
			b.WriteString(quoteBody(s))
			break
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		b.WriteString(quoteBody(s[:i]))
		b.WriteString(s[i : i+size])
		s = s[i+size:]
	}
	b.WriteByte('"')
	return b.String()
}

// quoteBody returns the JSON-escaped content of s without surrounding quotes.
func quoteBody(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(s)
	out := strings.TrimSuffix(buf.String(), "\n")
	return out[1 : len(out)-1]
}
