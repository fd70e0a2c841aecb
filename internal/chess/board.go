package chess

// Board owns piece placement. It knows geometry and occupancy but nothing
// about turns or check.
type Board struct {
	cells [8][8]*Piece // [y][x]
}

func NewBoard() *Board {
	return &Board{}
}

// StandardBoard returns a board in the initial arrangement.
func StandardBoard() *Board {
	b := NewBoard()
	back := [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for _, color := range []Color{White, Black} {
		rank := color.backRank()
		for x, kind := range back {
			b.Place(NewPiece(kind, color, Cell{X: x, Y: rank}))
			b.Place(NewPiece(Pawn, color, Cell{X: x, Y: rank + color.Forward()}))
		}
	}
	return b
}

// Place writes p into the cell at its current position.
func (b *Board) Place(p *Piece) {
	b.cells[p.pos.Y][p.pos.X] = p
}

// PieceAt returns nil for empty or off-board cells.
func (b *Board) PieceAt(c Cell) *Piece {
	if !c.Valid() {
		return nil
	}
	return b.cells[c.Y][c.X]
}

// Remove clears the cell and returns what stood there.
func (b *Board) Remove(c Cell) *Piece {
	p := b.PieceAt(c)
	if p != nil {
		b.cells[c.Y][c.X] = nil
	}
	return p
}

// Relocate moves p to dest without any legality check and returns the piece
// it captured there, if any.
func (b *Board) Relocate(p *Piece, dest Cell) *Piece {
	captured := b.Remove(dest)
	b.Remove(p.pos)
	p.advance = abs(dest.Y - p.pos.Y)
	p.pos = dest
	p.hasMoved = true
	b.Place(p)
	return captured
}

// Pieces lists every piece on the board, rank by rank from A1.
func (b *Board) Pieces() []*Piece {
	var pieces []*Piece
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if p := b.cells[y][x]; p != nil {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// path returns the cells strictly between p and dest that must be empty.
// ok is false when the piece's geometry rejects the offset.
func (b *Board) path(p *Piece, dest Cell) (between []Cell, ok bool) {
	if !dest.Valid() || dest == p.pos {
		return nil, false
	}
	dx, dy := dest.X-p.pos.X, dest.Y-p.pos.Y
	if !p.CanMoveToPosition(dx, dy) {
		return nil, false
	}
	if p.kind == Knight || p.kind == King {
		return nil, true
	}

	sx, sy := sign(dx), sign(dy)
	for c := p.pos.Offset(sx, sy); c != dest; c = c.Offset(sx, sy) {
		between = append(between, c)
	}
	return between, true
}

// CanMoveToPosition checks geometry, obstruction and the destination's
// occupant. lastDest is the previous move's destination, used only for en
// passant; pass nil when it does not apply.
func (b *Board) CanMoveToPosition(p *Piece, dest Cell, lastDest *Cell) bool {
	between, ok := b.path(p, dest)
	if !ok {
		return false
	}
	for _, c := range between {
		if b.PieceAt(c) != nil {
			return false
		}
	}

	target := b.PieceAt(dest)
	if p.kind == Pawn {
		if target != nil {
			return dest.X != p.pos.X && target.color != p.color
		}
		return dest.X == p.pos.X || b.EnPassantVictim(p, dest, lastDest) != nil
	}
	return target == nil || target.color != p.color
}

// EnPassantVictim returns the enemy pawn that moving p to dest would capture
// en passant, or nil. The victim must be the piece that made the previous
// move, with a double step, and sit beside p.
func (b *Board) EnPassantVictim(p *Piece, dest Cell, lastDest *Cell) *Piece {
	if p.kind != Pawn || lastDest == nil {
		return nil
	}
	victim := b.PieceAt(*lastDest)
	if victim == nil || victim.kind != Pawn || victim.color == p.color {
		return nil
	}
	if victim.pos.Y != p.pos.Y || abs(victim.pos.X-p.pos.X) != 1 {
		return nil
	}
	if victim.advance != 2 {
		return nil
	}
	if dest != victim.pos.Offset(0, p.color.Forward()) {
		return nil
	}
	return victim
}

// IsUnderAttack reports whether any piece of color by, other than one on
// cell itself, could capture on cell. Pawns are judged by their capture
// diagonals rather than by CanMoveToPosition, so a straight push never
// counts and an empty diagonal cell does.
func (b *Board) IsUnderAttack(cell Cell, by Color) bool {
	for _, p := range b.Pieces() {
		if p.color != by || p.pos == cell {
			continue
		}
		if b.attacks(p, cell) {
			return true
		}
	}
	return false
}

// attacks differs from CanMoveToPosition only for pawns, which strike their
// forward diagonals whether or not anything stands there.
func (b *Board) attacks(p *Piece, cell Cell) bool {
	if p.kind == Pawn {
		return abs(cell.X-p.pos.X) == 1 && cell.Y-p.pos.Y == p.color.Forward()
	}
	return b.CanMoveToPosition(p, cell, nil)
}
