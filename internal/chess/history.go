package chess

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// MoveHistory is the outside collaborator that keeps the record of play.
// Game reads the last destination for en passant and reports every
// committed move.
type MoveHistory interface {
	LastMoveDestination() (Cell, bool)
	RecordMove(piece string, from, to Cell, captured string)
}

// Record is one committed relocation. A castle produces two.
type Record struct {
	Piece    string `json:"piece"`
	From     Cell   `json:"from"`
	To       Cell   `json:"to"`
	Captured string `json:"captured,omitempty"`
}

func (r Record) String() string {
	s := fmt.Sprintf("%s %s-%s", r.Piece, r.From, r.To)
	if r.Captured != "" {
		s += " x " + r.Captured
	}
	return s
}

// Log is an in-memory MoveHistory.
type Log struct {
	records []Record
	logger  zerolog.Logger
}

func NewLog() *Log {
	return &Log{logger: log.Logger}
}

// NewLogWithLogger is NewLog writing its debug lines to logger.
func NewLogWithLogger(logger zerolog.Logger) *Log {
	return &Log{logger: logger}
}

func (l *Log) LastMoveDestination() (Cell, bool) {
	if len(l.records) == 0 {
		return Cell{}, false
	}
	return l.records[len(l.records)-1].To, true
}

func (l *Log) RecordMove(piece string, from, to Cell, captured string) {
	r := Record{Piece: piece, From: from, To: to, Captured: captured}
	l.records = append(l.records, r)

	l.logger.Debug().
		Int("ply", len(l.records)).
		Str("piece", piece).
		Str("from", from.String()).
		Str("to", to.String()).
		Str("captured", captured).
		Msg("Move recorded")
}

// Records returns a copy of every record in order.
func (l *Log) Records() []Record {
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// Last returns up to n most recent records, oldest first.
func (l *Log) Last(n int) []Record {
	if n <= 0 {
		return nil
	}
	if n > len(l.records) {
		n = len(l.records)
	}
	out := make([]Record, n)
	copy(out, l.records[len(l.records)-n:])
	return out
}

func (l *Log) Len() int {
	return len(l.records)
}
