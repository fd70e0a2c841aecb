package chess

import "fmt"

// Cell addresses a square: X is the file (A=0), Y the rank (1=0).
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ParseCell converts two-character algebraic notation such as "E1" or "e1".
func ParseCell(s string) (Cell, error) {
	if len(s) != 2 {
		return Cell{}, fmt.Errorf("%w: %q", ErrInvalidCell, s)
	}

	file := s[0]
	if file >= 'a' && file <= 'h' {
		file -= 'a' - 'A'
	}
	rank := s[1]

	if file < 'A' || file > 'H' || rank < '1' || rank > '8' {
		return Cell{}, fmt.Errorf("%w: %q", ErrInvalidCell, s)
	}

	return Cell{X: int(file - 'A'), Y: int(rank - '1')}, nil
}

// MustCell is ParseCell for notation known to be valid. It panics otherwise.
func MustCell(s string) Cell {
	c, err := ParseCell(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Cell) Valid() bool {
	return c.X >= 0 && c.X < 8 && c.Y >= 0 && c.Y < 8
}

func (c Cell) Offset(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

func (c Cell) String() string {
	if !c.Valid() {
		return fmt.Sprintf("(%d,%d)", c.X, c.Y)
	}
	return fmt.Sprintf("%c%d", 'A'+c.X, c.Y+1)
}
