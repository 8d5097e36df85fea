package model

import "strings"

// Premium square layouts, one string per row, one digit per cell
var (
	wordMultipliers = [BoardSize]string{
		"311111131111113",
		"121111111111121",
		"112111111111211",
		"111211111112111",
		"111121111121111",
		"111111111111111",
		"111111111111111",
		"311111121111113",
		"111111111111111",
		"111111111111111",
		"111121111121111",
		"111211111112111",
		"112111111111211",
		"121111111111121",
		"311111131111113",
	}

	letterMultipliers = [BoardSize]string{
		"111211111112111",
		"111113111311111",
		"111111212111111",
		"211111121111112",
		"111111111111111",
		"131113111311131",
		"112111212111211",
		"111211111112111",
		"112111212111211",
		"131113111311131",
		"111111111111111",
		"211111121111112",
		"111111212111111",
		"111113111311111",
		"111211111112111",
	}
)

// Cell is a single square of the board
type Cell struct {
	Tile             *Tile `json:"tile,omitempty"`
	LetterMultiplier int   `json:"letter_multiplier"`
	WordMultiplier   int   `json:"word_multiplier"`
	Consumed         bool  `json:"consumed"` // premium already used by a move
	Settled          bool  `json:"settled"`  // move survived its challenge window
}

// IsEmpty returns true if no tile occupies the cell
func (c *Cell) IsEmpty() bool {
	return c.Tile == nil
}

// EffectiveLetterMultiplier is 1 once the premium has been used
func (c *Cell) EffectiveLetterMultiplier() int {
	if c.Consumed {
		return 1
	}
	return c.LetterMultiplier
}

// EffectiveWordMultiplier is 1 once the premium has been used
func (c *Cell) EffectiveWordMultiplier() int {
	if c.Consumed {
		return 1
	}
	return c.WordMultiplier
}

// Board is the shared 15x15 grid
type Board struct {
	Cells [BoardSize][BoardSize]Cell `json:"cells"`
}

// NewBoard creates an empty board with the standard premium layout
func NewBoard() *Board {
	b := &Board{}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			b.Cells[row][col] = Cell{
				LetterMultiplier: int(letterMultipliers[row][col] - '0'),
				WordMultiplier:   int(wordMultipliers[row][col] - '0'),
			}
		}
	}
	return b
}

// Cell returns the cell at the given position, or nil if out of bounds
func (b *Board) Cell(pos Position) *Cell {
	if !b.IsValidPosition(pos) {
		return nil
	}
	return &b.Cells[pos.Row][pos.Col]
}

// Get returns the tile at the given position, or nil if empty or out of bounds
func (b *Board) Get(pos Position) *Tile {
	if c := b.Cell(pos); c != nil {
		return c.Tile
	}
	return nil
}

// Letter returns the letter at the given position, or 0 if empty
func (b *Board) Letter(pos Position) rune {
	if t := b.Get(pos); t != nil {
		return t.Letter
	}
	return 0
}

// IsEmpty returns true if the cell at the given position is empty.
// Off-board positions count as empty.
func (b *Board) IsEmpty(pos Position) bool {
	return b.Get(pos) == nil
}

// IsValidPosition returns true if the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.InBounds()
}

// IsBoardEmpty returns true if no tiles have been placed
func (b *Board) IsBoardEmpty() bool {
	return b.TileCount() == 0
}

// TileCount returns the number of occupied cells
func (b *Board) TileCount() int {
	count := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Cells[row][col].Tile != nil {
				count++
			}
		}
	}
	return count
}

// HasNeighbour returns true if any orthogonally adjacent cell holds a tile
func (b *Board) HasNeighbour(pos Position) bool {
	for _, n := range []Position{
		{Row: pos.Row - 1, Col: pos.Col},
		{Row: pos.Row + 1, Col: pos.Col},
		{Row: pos.Row, Col: pos.Col - 1},
		{Row: pos.Row, Col: pos.Col + 1},
	} {
		if !b.IsEmpty(n) {
			return true
		}
	}
	return false
}

// String renders the board as text: letters for tiles, premium markers for
// unused premium squares and '.' for plain empty cells
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.Cells[row][col].Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Symbol is the one-character rendering of a cell
func (c *Cell) Symbol() string {
	switch {
	case c.Tile != nil:
		return c.Tile.String()
	case c.EffectiveWordMultiplier() == 3:
		return "#"
	case c.EffectiveWordMultiplier() == 2:
		return "="
	case c.EffectiveLetterMultiplier() == 3:
		return "+"
	case c.EffectiveLetterMultiplier() == 2:
		return "-"
	default:
		return "."
	}
}
