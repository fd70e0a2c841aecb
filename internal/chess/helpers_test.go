package chess

import (
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

var pieceLetters = map[byte]Kind{
	'P': Pawn,
	'N': Knight,
	'B': Bishop,
	'R': Rook,
	'Q': Queen,
	'K': King,
}

// boardOf builds a board from entries like "wK E1" or "bP D7".
func boardOf(t *testing.T, entries ...string) *Board {
	t.Helper()
	b := NewBoard()
	for _, e := range entries {
		require.Len(t, e, 5, "entry %q", e)
		color := White
		if e[0] == 'b' {
			color = Black
		}
		kind, ok := pieceLetters[e[1]]
		require.True(t, ok, "unknown piece letter in %q", e)
		b.Place(NewPiece(kind, color, MustCell(e[3:])))
	}
	return b
}

func quietLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func newTestGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	opts = append([]Option{WithLogger(quietLogger())}, opts...)
	g, err := NewGame(opts...)
	require.NoError(t, err)
	return g
}

// play commits each "E2 E4" style move in order.
func play(t *testing.T, g *Game, moves ...string) {
	t.Helper()
	for _, m := range moves {
		require.Len(t, m, 5, "move %q", m)
		_, err := g.MoveToPosition(MustCell(m[:2]), MustCell(m[3:]))
		require.NoError(t, err, "move %s", m)
	}
}
