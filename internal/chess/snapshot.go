package chess

// PieceState is the observable state of one piece.
type PieceState struct {
	Kind     Kind  `json:"kind"`
	Color    Color `json:"color"`
	HasMoved bool  `json:"hasMoved"`
}

// Snapshot is a value copy of everything a caller can observe about a game.
// Two snapshots are equal exactly when the games are indistinguishable.
type Snapshot struct {
	ToMove          Color                 `json:"toMove"`
	Pieces          map[string]PieceState `json:"pieces"` // keyed by cell, e.g. "E1"
	CapturedByWhite []string              `json:"capturedByWhite"`
	CapturedByBlack []string              `json:"capturedByBlack"`
}

func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		ToMove:          g.toMove,
		Pieces:          make(map[string]PieceState),
		CapturedByWhite: names(g.captured[White]),
		CapturedByBlack: names(g.captured[Black]),
	}
	for _, p := range g.board.Pieces() {
		s.Pieces[p.pos.String()] = PieceState{Kind: p.kind, Color: p.color, HasMoved: p.hasMoved}
	}
	return s
}

func names(pieces []*Piece) []string {
	out := make([]string, 0, len(pieces))
	for _, p := range pieces {
		out = append(out, p.Name())
	}
	return out
}
