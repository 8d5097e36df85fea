package model

import (
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// FrameCapacity is the most tiles a frame can hold
const FrameCapacity = 7

// Frame is a player's rack of tiles. It draws from the game's pool but
// does not own it.
type Frame struct {
	Held []*Tile `json:"tiles"`

	pool *Pool
}

// NewFrame creates an empty frame drawing from the given pool
func NewFrame(pool *Pool) *Frame {
	return &Frame{
		Held: make([]*Tile, 0, FrameCapacity),
		pool: pool,
	}
}

// AttachPool points the frame at a pool, used after a game is restored from storage
func (f *Frame) AttachPool(pool *Pool) {
	f.pool = pool
}

// Size returns the number of tiles held
func (f *Frame) Size() int {
	return len(f.Held)
}

// IsEmpty returns true if the frame holds no tiles
func (f *Frame) IsEmpty() bool {
	return len(f.Held) == 0
}

// IsFull returns true if the frame is at capacity
func (f *Frame) IsFull() bool {
	return len(f.Held) >= FrameCapacity
}

// Tiles returns a read-only view of the held tiles
func (f *Frame) Tiles() []*Tile {
	out := make([]*Tile, len(f.Held))
	copy(out, f.Held)
	return out
}

// Tile returns the tile at index i, or nil if out of range
func (f *Frame) Tile(i int) *Tile {
	if i < 0 || i >= len(f.Held) {
		return nil
	}
	return f.Held[i]
}

// Letters returns the letters of the held tiles in order
func (f *Frame) Letters() []rune {
	return lo.Map(f.Held, func(t *Tile, _ int) rune {
		return t.Letter
	})
}

// Value returns the sum of the held tiles' values
func (f *Frame) Value() int {
	return lo.SumBy(f.Held, func(t *Tile) int {
		return t.Value()
	})
}

// AddTile appends a tile to the frame
func (f *Frame) AddTile(tile *Tile) error {
	if f.IsFull() {
		return ErrFrameFull
	}
	f.Held = append(f.Held, tile)
	return nil
}

// RemoveTile removes and returns the tile at index i
func (f *Frame) RemoveTile(i int) (*Tile, error) {
	if i < 0 || i >= len(f.Held) {
		return nil, ErrInvalidIndex
	}
	tile := f.Held[i]
	f.Held = append(f.Held[:i], f.Held[i+1:]...)
	return tile, nil
}

// RemoveTiles removes one held tile per requested tile, matching by letter.
// Either every tile is removed or none are.
func (f *Frame) RemoveTiles(tiles []*Tile) error {
	letters := lo.Map(tiles, func(t *Tile, _ int) rune {
		return t.Letter
	})
	_, err := f.removeLetters(letters)
	return err
}

// CheckTiles reports whether every given tile is held, counting each held
// tile at most once
func (f *Frame) CheckTiles(tiles []*Tile) (bool, error) {
	if len(tiles) == 0 {
		return false, ErrNoTilesToCheck
	}
	letters := lo.Map(tiles, func(t *Tile, _ int) rune {
		return t.Letter
	})
	return f.matchLetters(letters) != nil, nil
}

// CheckLetters is CheckTiles for bare letters
func (f *Frame) CheckLetters(letters []rune) (bool, error) {
	if len(letters) == 0 {
		return false, ErrNoTilesToCheck
	}
	return f.matchLetters(letters) != nil, nil
}

// Fill draws from the pool until the frame is full or the pool is empty.
// It returns the number of tiles drawn.
func (f *Frame) Fill() int {
	if f.pool == nil {
		return 0
	}
	drawn := f.pool.Draw(FrameCapacity - len(f.Held))
	f.Held = append(f.Held, drawn...)
	return len(drawn)
}

// SwapTiles returns the tiles matching the given letters to the pool and
// draws the same number of replacements
func (f *Frame) SwapTiles(letters []rune) error {
	if len(letters) == 0 {
		return ErrNoTilesToCheck
	}
	if f.pool == nil || f.pool.Size() < len(letters) {
		return ErrPoolTooSmall
	}
	if f.matchLetters(letters) == nil {
		return ErrTilesNotInFrame
	}

	// Draw before returning so the swapped tiles cannot come straight back
	replacements := f.pool.Draw(len(letters))
	removed, err := f.removeLetters(letters)
	if err != nil {
		_ = f.pool.ReturnTiles(replacements)
		return err
	}
	f.Held = append(f.Held, replacements...)
	// Room was made by the draw above
	return f.pool.ReturnTiles(removed)
}

// TakeForLetters removes the tiles needed to spell letters, preferring exact
// tiles and using blanks for the rest. Blanks used are assigned their letter.
// The tiles are returned in the order of letters. Nothing is removed on error.
func (f *Frame) TakeForLetters(letters []rune) ([]*Tile, error) {
	if len(letters) == 0 {
		return []*Tile{}, nil
	}
	for _, letter := range letters {
		if !IsBoardLetter(letter) {
			return nil, ErrInvalidLetter
		}
	}
	used := make([]bool, len(f.Held))
	picked := make([]int, len(letters))
	var needBlank []int

	for i, letter := range letters {
		idx := f.findUnused(used, func(t *Tile) bool {
			return !t.Blank && t.Letter == letter
		})
		if idx < 0 {
			needBlank = append(needBlank, i)
			continue
		}
		used[idx] = true
		picked[i] = idx
	}
	for _, i := range needBlank {
		idx := f.findUnused(used, func(t *Tile) bool {
			return t.Blank
		})
		if idx < 0 {
			return nil, ErrTilesNotInFrame
		}
		used[idx] = true
		picked[i] = idx
	}

	taken := make([]*Tile, len(letters))
	for i, idx := range picked {
		taken[i] = f.Held[idx]
		if taken[i].Blank {
			taken[i].ResetBlank()
			_ = taken[i].SetLetter(letters[i])
		}
	}
	f.Held = lo.Reject(f.Held, func(_ *Tile, i int) bool {
		return used[i]
	})
	return taken, nil
}

// ReturnTiles puts tiles taken for a move back on the frame, resetting blanks
func (f *Frame) ReturnTiles(tiles []*Tile) error {
	if len(f.Held)+len(tiles) > FrameCapacity {
		return ErrFrameFull
	}
	for _, t := range tiles {
		t.ResetBlank()
		f.Held = append(f.Held, t)
	}
	return nil
}

// SetBlanks assigns letters to the unassigned held blanks in order, one
// letter per blank. Nothing is assigned on error.
func (f *Frame) SetBlanks(letters []rune) error {
	for _, letter := range letters {
		if !IsBoardLetter(unicode.ToUpper(letter)) {
			return ErrInvalidLetter
		}
	}

	next := 0
	for _, t := range f.Held {
		if next >= len(letters) {
			break
		}
		if !t.Blank || t.IsAssigned() {
			continue
		}
		_ = t.SetLetter(letters[next])
		next++
	}
	return nil
}

// SetToBlank resets every held blank to the blank sentinel
func (f *Frame) SetToBlank() {
	for _, t := range f.Held {
		t.ResetBlank()
	}
}

func (f *Frame) String() string {
	var sb strings.Builder
	sb.WriteString("Current Frame Contains: ")
	for _, t := range f.Held {
		sb.WriteString(string(t.Letter))
		sb.WriteByte(' ')
	}
	return sb.String()
}

// matchLetters returns the held indices matching letters, or nil if any
// letter cannot be matched
func (f *Frame) matchLetters(letters []rune) []int {
	used := make([]bool, len(f.Held))
	indices := make([]int, 0, len(letters))
	for _, letter := range letters {
		idx := f.findUnused(used, func(t *Tile) bool {
			return t.Letter == letter
		})
		if idx < 0 {
			return nil
		}
		used[idx] = true
		indices = append(indices, idx)
	}
	return indices
}

func (f *Frame) removeLetters(letters []rune) ([]*Tile, error) {
	indices := f.matchLetters(letters)
	if indices == nil {
		return nil, ErrTilesNotInFrame
	}
	removed := lo.Map(indices, func(idx int, _ int) *Tile {
		return f.Held[idx]
	})
	f.Held = lo.Reject(f.Held, func(_ *Tile, i int) bool {
		return lo.Contains(indices, i)
	})
	return removed, nil
}

func (f *Frame) findUnused(used []bool, match func(*Tile) bool) int {
	for i, t := range f.Held {
		if !used[i] && match(t) {
			return i
		}
	}
	return -1
}
