package chess

// Piece is a single figure. Callers get read-only access; only the board
// and the game change it, and the kind only through promotion.
type Piece struct {
	kind  Kind
	color Color

	pos      Cell
	hasMoved bool
	// advance is the number of ranks covered by the last relocation.
	advance int
}

func NewPiece(kind Kind, color Color, pos Cell) *Piece {
	return &Piece{kind: kind, color: color, pos: pos}
}

func (p *Piece) Kind() Kind {
	return p.kind
}

func (p *Piece) Color() Color {
	return p.color
}

// Position is meaningless once the piece has been captured.
func (p *Piece) Position() Cell {
	return p.pos
}

func (p *Piece) HasMoved() bool {
	return p.hasMoved
}

// Name is the display name handed to the move history, e.g. "white knight".
func (p *Piece) Name() string {
	return p.color.String() + " " + p.kind.String()
}

func (p *Piece) String() string {
	return p.Name() + " " + p.pos.String()
}

// CanMoveToPosition applies the piece's geometry to a signed offset,
// without looking at the board.
func (p *Piece) CanMoveToPosition(dx, dy int) bool {
	return geometry(p.kind, p.color, p.hasMoved, dx, dy)
}

// geometry is the movement rule table. Pawn diagonals are allowed here;
// Board decides whether they are captures.
func geometry(kind Kind, color Color, hasMoved bool, dx, dy int) bool {
	if dx == 0 && dy == 0 {
		return false
	}
	adx, ady := abs(dx), abs(dy)

	switch kind {
	case Knight:
		return (adx == 1 && ady == 2) || (adx == 2 && ady == 1)
	case Bishop:
		return adx == ady
	case Rook:
		return dx == 0 || dy == 0
	case Queen:
		return adx == ady || dx == 0 || dy == 0
	case King:
		return adx < 2 && ady < 2
	case Pawn:
		if dy*color.Forward() <= 0 {
			return false
		}
		if ady == 1 && adx <= 1 {
			return true
		}
		return !hasMoved && ady == 2 && dx == 0
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
