package model

import (
	"fmt"
	"strings"
)

// BoardSize is the width and height of the board
const BoardSize = 15

// Centre is the square the first move must cover
var Centre = Position{Row: 7, Col: 7}

// Position identifies a cell on the board
type Position struct {
	Row int `json:"row"` // 0-indexed from top
	Col int `json:"col"` // 0-indexed from left
}

// InBounds returns true if the position lies on the board
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Step returns the position n cells further along the direction
func (p Position) Step(dir Direction, n int) Position {
	if dir == Vertical {
		return Position{Row: p.Row + n, Col: p.Col}
	}
	return Position{Row: p.Row, Col: p.Col + n}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction is the axis a word is laid along
type Direction int

const (
	Horizontal Direction = iota + 1
	Vertical
)

// IsValid returns true for Horizontal and Vertical
func (d Direction) IsValid() bool {
	return d == Horizontal || d == Vertical
}

// Perpendicular returns the crossing direction
func (d Direction) Perpendicular() Direction {
	if d == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// ParseDirection converts user input like "h", "across" or "VERTICAL" to a Direction
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "H", "HORIZONTAL", "ACROSS":
		return Horizontal, nil
	case "V", "VERTICAL", "DOWN":
		return Vertical, nil
	default:
		return 0, fmt.Errorf("%w: unknown direction %q", ErrInvalidArgument, s)
	}
}

// Path returns the ordered cells covered by a run of the given length.
// Positions are not bounds checked.
func Path(start Position, dir Direction, length int) []Position {
	if length <= 0 {
		return nil
	}
	cells := make([]Position, length)
	for i := range cells {
		cells[i] = start.Step(dir, i)
	}
	return cells
}
