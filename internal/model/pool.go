package model

import (
	"slices"

	"github.com/samber/lo"
)

// PoolSize is the number of tiles in a full pool
const PoolSize = 100

// tileCounts is the standard English tile distribution
var tileCounts = map[rune]int{
	'A': 9, 'B': 2, 'C': 2, 'D': 4, 'E': 12,
	'F': 2, 'G': 3, 'H': 2, 'I': 9, 'J': 1,
	'K': 1, 'L': 4, 'M': 2, 'N': 6, 'O': 8,
	'P': 2, 'Q': 1, 'R': 6, 'S': 4, 'T': 6,
	'U': 4, 'V': 2, 'W': 2, 'X': 1, 'Y': 2,
	'Z': 1, Blank: 2,
}

// ShuffleFunc has the signature of rand.Shuffle
type ShuffleFunc func(n int, swap func(i, j int))

// Pool is the shared bag of undrawn tiles.
// Tiles are drawn from the front of the shuffled order.
type Pool struct {
	Tiles []*Tile `json:"tiles"`

	shuffle ShuffleFunc
}

// NewPool creates a full, shuffled pool
func NewPool(shuffle ShuffleFunc) *Pool {
	letters := lo.Keys(tileCounts)
	// Map iteration order is random; sort so that a deterministic shuffle
	// produces a deterministic pool.
	slices.Sort(letters)

	tiles := make([]*Tile, 0, PoolSize)
	for _, letter := range letters {
		for i := 0; i < tileCounts[letter]; i++ {
			tiles = append(tiles, NewTile(letter))
		}
	}

	p := &Pool{Tiles: tiles, shuffle: shuffle}
	p.Shuffle()
	return p
}

// SetShuffle replaces the shuffle function, used after a pool is restored from storage
func (p *Pool) SetShuffle(shuffle ShuffleFunc) {
	p.shuffle = shuffle
}

// Shuffle randomises the order of the remaining tiles
func (p *Pool) Shuffle() {
	if p.shuffle == nil {
		return
	}
	p.shuffle(len(p.Tiles), func(i, j int) {
		p.Tiles[i], p.Tiles[j] = p.Tiles[j], p.Tiles[i]
	})
}

// Draw removes and returns up to n tiles. Fewer are returned when the pool
// runs low; callers must handle partial draws.
func (p *Pool) Draw(n int) []*Tile {
	if n <= 0 {
		return []*Tile{}
	}
	n = min(n, len(p.Tiles))
	drawn := make([]*Tile, n)
	copy(drawn, p.Tiles[:n])
	p.Tiles = p.Tiles[n:]
	return drawn
}

// ReturnTiles puts tiles back in the pool and reshuffles. It refuses, leaving
// the pool unchanged, if the pool would hold more than PoolSize tiles.
func (p *Pool) ReturnTiles(tiles []*Tile) error {
	if len(p.Tiles)+len(tiles) > PoolSize {
		return ErrPoolFull
	}
	for _, t := range tiles {
		t.ResetBlank()
		p.Tiles = append(p.Tiles, t)
	}
	p.Shuffle()
	return nil
}

// Size returns the number of tiles left
func (p *Pool) Size() int {
	return len(p.Tiles)
}

// IsEmpty returns true once every tile has been drawn
func (p *Pool) IsEmpty() bool {
	return len(p.Tiles) == 0
}
