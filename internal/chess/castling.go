package chess

// Castling castles the current player's king with the rook on rookCell. The
// king goes two cells toward the rook and the rook lands on the cell the
// king crossed. It reports whether the opponent is now in check.
//
// Every precondition is checked before anything moves, so there is nothing
// to roll back.
func (g *Game) Castling(rookCell Cell) (bool, error) {
	king := g.kings[g.toMove]
	rook := g.board.PieceAt(rookCell)

	if rook == nil || rook.kind != Rook || rook.color != g.toMove || rook.pos.Y != king.pos.Y {
		return false, g.reject("castle", rookCell, rookCell, rook, ErrInvalidCastling)
	}
	if king.hasMoved || rook.hasMoved {
		return false, g.reject("castle", rookCell, rookCell, rook, ErrCastlingPieceMoved)
	}
	enemy := g.toMove.Opposite()
	if g.board.IsUnderAttack(king.pos, enemy) {
		return false, g.reject("castle", rookCell, rookCell, rook, ErrCastlingInCheck)
	}

	dir := sign(rook.pos.X - king.pos.X)
	kingFrom, rookFrom := king.pos, rook.pos
	rookDest := kingFrom.Offset(dir, 0)
	kingDest := kingFrom.Offset(2*dir, 0)

	if !g.board.CanMoveToPosition(rook, rookDest, nil) || g.board.PieceAt(rookDest) != nil {
		return false, g.reject("castle", rookCell, rookDest, rook, ErrCastlingBlocked)
	}
	if occupant := g.board.PieceAt(kingDest); occupant != nil && occupant != rook {
		return false, g.reject("castle", rookCell, rookDest, rook, ErrCastlingBlocked)
	}
	if g.board.IsUnderAttack(rookDest, enemy) || g.board.IsUnderAttack(kingDest, enemy) {
		return false, g.reject("castle", rookCell, rookDest, rook, ErrCastlingThroughCheck)
	}

	// The rook goes first: next to the king it may be standing on kingDest.
	g.board.Relocate(rook, rookDest)
	g.board.Relocate(king, kingDest)

	g.history.RecordMove(king.Name(), kingFrom, kingDest, "")
	g.history.RecordMove(rook.Name(), rookFrom, rookDest, "")

	return g.endTurn(king.Name(), kingFrom, kingDest), nil
}
