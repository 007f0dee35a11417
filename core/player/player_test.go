package player

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name   string
		player Player
		want   string
	}{
		{
			name:   "Basic",
			player: Player{Name: "Alice", Ranking: 12, NumberOfGames: 3},
			want:   `{"name": "Alice", "number_of_games": 3, "ranking": 12}`,
		},
		{
			name:   "Negative ranking",
			player: Player{Name: "Bob", Ranking: -4, NumberOfGames: 1},
			want:   `{"name": "Bob", "number_of_games": 1, "ranking": -4}`,
		},
		{
			name:   "Non-ASCII written literally",
			player: Player{Name: "Čégo", Ranking: 0, NumberOfGames: 0},
			want:   `{"name": "Čégo", "number_of_games": 0, "ranking": 0}`,
		},
		{
			name:   "HTML characters not escaped",
			player: Player{Name: "A&B <x>"},
			want:   `{"name": "A&B <x>", "number_of_games": 0, "ranking": 0}`,
		},
		{
			name:   "Quotes escaped",
			player: Player{Name: `Say "hi"`},
			want:   `{"name": "Say \"hi\"", "number_of_games": 0, "ranking": 0}`,
		},
		{
			name:   "Line separators written literally",
			player: Player{Name: "A\u2028B\u2029C"},
			want:   "{\"name\": \"A\u2028B\u2029C\", \"number_of_games\": 0, \"ranking\": 0}",
		},
		{
			name:   "Escaped backslash before u2028 text",
			player: Player{Name: `a\u2028`},
			want:   `{"name": "a\\u2028", "number_of_games": 0, "ranking": 0}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.player.Encode())
			assert.Equal(t, tt.want, tt.player.String())
		})
	}
}

func TestEncode_Deterministic(t *testing.T) {
	p := Player{Name: "Štrůdl", Ranking: 7, NumberOfGames: 2}
	assert.Equal(t, p.Encode(), p.Encode())
}

func TestDecode_RoundTrip(t *testing.T) {
	players := []Player{
		{Name: "Alice", Ranking: 12, NumberOfGames: 3},
		{Name: "Bob", Ranking: -4, NumberOfGames: 1},
		{Name: "Halámka", Ranking: 0, NumberOfGames: 0},
		{Name: `Back\slash "quoted"`, Ranking: 99, NumberOfGames: 40},
	}

	for _, p := range players {
		decoded, err := Decode(p.Encode())
		require.NoError(t, err)
		assert.True(t, p.Equal(decoded), "round trip changed %s", p.Name)
	}
}

func TestDecode(t *testing.T) {
	t.Run("Key order not significant", func(t *testing.T) {
		p, err := Decode(`{"ranking": 5, "name": "Eli", "number_of_games": 2}`)
		require.NoError(t, err)
		assert.Equal(t, Player{Name: "Eli", Ranking: 5, NumberOfGames: 2}, p)
	})

	t.Run("Defaults for missing counters", func(t *testing.T) {
		p, err := Decode(`{"name": "Cross"}`)
		require.NoError(t, err)
		assert.Equal(t, Player{Name: "Cross"}, p)
	})

	t.Run("Missing name", func(t *testing.T) {
		_, err := Decode(`{"ranking": 3, "number_of_games": 1}`)
		assert.True(t, errors.Is(err, ErrMalformedRecord))
	})

	t.Run("Empty name", func(t *testing.T) {
		_, err := Decode(`{"name": ""}`)
		assert.ErrorIs(t, err, ErrMalformedRecord)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		_, err := Decode(`{"name": "Alice"`)
		assert.ErrorIs(t, err, ErrMalformedRecord)
	})

	t.Run("Wrong type", func(t *testing.T) {
		_, err := Decode(`{"name": "Alice", "ranking": "high"}`)
		assert.ErrorIs(t, err, ErrMalformedRecord)
	})
}

func TestUpdateRanking(t *testing.T) {
	p := New("Karlos")
	assert.Equal(t, 0, p.Ranking)
	assert.Equal(t, 0, p.NumberOfGames)

	p.UpdateRanking(6)
	p.UpdateRanking(-10)
	p.UpdateRanking(0)
	assert.Equal(t, -4, p.Ranking)

	p.RecordGame()
	p.RecordGame()
	assert.Equal(t, 2, p.NumberOfGames)
}
