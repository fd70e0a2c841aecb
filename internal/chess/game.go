package chess

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// maxCaptures is the most non-king pieces one side can lose.
const maxCaptures = 16

// Game is one match: a board, whose turn it is, and what each side has
// taken. A Game is not safe for concurrent use; separate games share nothing.
type Game struct {
	id       string
	board    *Board
	kings    [2]*Piece
	captured [2][]*Piece // captured[c] holds the pieces c has taken
	toMove   Color
	history  MoveHistory
	logger   zerolog.Logger

	legacyRollback bool
}

type Option func(*Game)

// WithHistory sets the collaborator that supplies the previous move and
// receives committed ones. Defaults to a fresh Log.
func WithHistory(h MoveHistory) Option {
	return func(g *Game) {
		g.history = h
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithBoard starts from a custom position instead of the initial one. The
// board must hold exactly one king per color.
func WithBoard(b *Board) Option {
	return func(g *Game) {
		g.board = b
	}
}

func WithFirstPlayer(c Color) Option {
	return func(g *Game) {
		g.toMove = c
	}
}

func WithID(id string) Option {
	return func(g *Game) {
		g.id = id
	}
}

// WithLegacyRollback keeps a piece marked as moved after a move of it was
// rejected for self-check. That costs a pawn its double step and a king or
// rook its castling right, as older versions of the engine did.
func WithLegacyRollback(enabled bool) Option {
	return func(g *Game) {
		g.legacyRollback = enabled
	}
}

func NewGame(opts ...Option) (*Game, error) {
	g := &Game{
		id:     uuid.NewString(),
		toMove: White,
		logger: log.Logger,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.board == nil {
		g.board = StandardBoard()
	}
	if g.history == nil {
		g.history = NewLogWithLogger(g.logger)
	}
	for _, c := range []Color{White, Black} {
		king, err := findKing(g.board, c)
		if err != nil {
			return nil, err
		}
		g.kings[c] = king
		g.captured[c] = make([]*Piece, 0, maxCaptures)
	}
	if waiting := g.toMove.Opposite(); g.InCheck(waiting) {
		return nil, fmt.Errorf("%w: %s king is in check with %s to move", ErrInvalidSetup, waiting, g.toMove)
	}
	g.logger = g.logger.With().Str("game", g.id).Logger()

	return g, nil
}

func findKing(b *Board, c Color) (*Piece, error) {
	var king *Piece
	for _, p := range b.Pieces() {
		if p.kind != King || p.color != c {
			continue
		}
		if king != nil {
			return nil, fmt.Errorf("%w: more than one %s king", ErrInvalidSetup, c)
		}
		king = p
	}
	if king == nil {
		return nil, fmt.Errorf("%w: no %s king", ErrInvalidSetup, c)
	}
	return king, nil
}

func (g *Game) ID() string {
	return g.id
}

// ToMove returns the color whose turn it is.
func (g *Game) ToMove() Color {
	return g.toMove
}

func (g *Game) PieceAt(c Cell) *Piece {
	return g.board.PieceAt(c)
}

// InCheck reports whether c's king is attacked.
func (g *Game) InCheck(c Color) bool {
	return g.board.IsUnderAttack(g.kings[c].pos, c.Opposite())
}

// CapturedBy returns the pieces c has taken, in capture order.
func (g *Game) CapturedBy(c Color) []*Piece {
	out := make([]*Piece, len(g.captured[c]))
	copy(out, g.captured[c])
	return out
}

// Material counts the value of the pieces still on the board.
func (g *Game) Material() MaterialCount {
	var m MaterialCount
	for _, p := range g.board.Pieces() {
		if p.color == White {
			m.White += StandardPieceValues[p.kind]
		} else {
			m.Black += StandardPieceValues[p.kind]
		}
	}
	return m
}

// MoveToPosition moves the piece on start to end, capturing whatever enemy
// piece stands there or, for en passant, beside it. A pawn reaching the last
// rank becomes a queen. It reports whether the opponent is now in check.
// On error the game is left exactly as it was.
func (g *Game) MoveToPosition(start, end Cell) (bool, error) {
	return g.move(start, end, Queen)
}

// MoveWithPromotion is MoveToPosition with the promotion piece chosen by the
// caller. promo is only looked at when a pawn reaches the last rank, and then
// it must be a knight, bishop, rook or queen.
func (g *Game) MoveWithPromotion(start, end Cell, promo Kind) (bool, error) {
	return g.move(start, end, promo)
}

// undo is what a tentative move changed on the moving piece.
type undo struct {
	piece    *Piece
	from     Cell
	kind     Kind
	hasMoved bool
	advance  int
}

func (g *Game) move(start, end Cell, promo Kind) (bool, error) {
	p := g.board.PieceAt(start)
	if p == nil {
		return false, g.reject("move", start, end, nil, ErrNoFigure)
	}
	if p.color != g.toMove {
		return false, g.reject("move", start, end, p, ErrWrongColor)
	}
	lastDest := g.lastDestination()
	if !g.board.CanMoveToPosition(p, end, lastDest) {
		return false, g.reject("move", start, end, p, ErrIllegalMove)
	}
	// Kings are never taken. Only a board edited behind the game's back can
	// leave the opponent's king en prise.
	if target := g.board.PieceAt(end); target != nil && target.kind == King {
		return false, g.reject("move", start, end, p, ErrIllegalMove)
	}
	promotes := p.kind == Pawn && end.Y == p.color.Opposite().backRank()
	if promotes && !promotable(promo) {
		return false, g.reject("move", start, end, p, ErrInvalidPromotion)
	}

	// En passant depends on the board before the pawn moves.
	victim := g.board.EnPassantVictim(p, end, lastDest)
	name := p.Name()
	u := undo{piece: p, from: start, kind: p.kind, hasMoved: p.hasMoved, advance: p.advance}

	captured := g.board.Relocate(p, end)
	if captured == nil && victim != nil {
		captured = g.board.Remove(victim.pos)
	}
	if promotes {
		p.kind = promo
	}

	if g.InCheck(p.color) {
		g.rollback(u, captured)
		return false, g.reject("move", start, end, p, ErrSelfCheck)
	}

	capturedName := ""
	if captured != nil {
		capturedName = captured.Name()
		g.captured[p.color] = append(g.captured[p.color], captured)
	}
	g.history.RecordMove(name, start, end, capturedName)

	return g.endTurn(name, start, end), nil
}

func promotable(k Kind) bool {
	switch k {
	case Knight, Bishop, Rook, Queen:
		return true
	}
	return false
}

// rollback puts the board back as it was before u's piece moved and
// captured was taken.
func (g *Game) rollback(u undo, captured *Piece) {
	p := u.piece
	g.board.Remove(p.pos)
	p.pos = u.from
	p.kind = u.kind
	p.advance = u.advance
	if !g.legacyRollback {
		p.hasMoved = u.hasMoved
	}
	g.board.Place(p)

	// A captured piece keeps its last position, so it goes straight back.
	if captured != nil {
		g.board.Place(captured)
	}
}

func (g *Game) endTurn(name string, from, to Cell) bool {
	mover := g.toMove
	g.toMove = mover.Opposite()
	check := g.InCheck(g.toMove)

	event := g.logger.Debug()
	if check {
		event = g.logger.Info()
	}
	event.
		Str("player", mover.String()).
		Str("piece", name).
		Str("from", from.String()).
		Str("to", to.String()).
		Bool("check", check).
		Msg("Move committed")

	return check
}

func (g *Game) lastDestination() *Cell {
	c, ok := g.history.LastMoveDestination()
	if !ok {
		return nil
	}
	return &c
}

func (g *Game) reject(op string, from, to Cell, p *Piece, err error) error {
	merr := &MoveError{Op: op, From: from, To: to, Err: err}
	if p != nil {
		merr.Piece = p.Name()
	}
	g.logger.Debug().
		Err(merr).
		Str("player", g.toMove.String()).
		Msg("Move rejected")
	return merr
}
