package model

import "time"

// PlacedTile is a tile newly put on the board by a move
type PlacedTile struct {
	Pos  Position `json:"pos"`
	Tile *Tile    `json:"tile"`
}

// FormedWord is a word created or extended by a move, with its score
type FormedWord struct {
	Word    string    `json:"word"`
	Start   Position  `json:"start"`
	Dir     Direction `json:"direction"`
	Score   int       `json:"score"`
	Primary bool      `json:"primary"`
}

// PlacementPlan is the result of checking a word against the board
// without changing it
type PlacementPlan struct {
	Word     *Word
	NewCells []Position // cells the move would fill, in word order
	Needed   []rune     // letter required at each new cell
}

// Placement records what a move changed on the board so it can be reversed
type Placement struct {
	Word   *Word        `json:"word"`
	Placed []PlacedTile `json:"placed"`
	Words  []FormedWord `json:"words"`
	Bingo  bool         `json:"bingo"`
	Score  int          `json:"score"`
}

// Tiles returns the tiles the placement put on the board
func (p *Placement) Tiles() []*Tile {
	tiles := make([]*Tile, len(p.Placed))
	for i, pt := range p.Placed {
		tiles[i] = pt.Tile
	}
	return tiles
}

// MoveInfo is an entry in a game's move history
type MoveInfo struct {
	ID          string     `json:"id"`
	PlayerIndex int        `json:"player_index"`
	Placement   *Placement `json:"placement"`
	MoveScore   int        `json:"move_score"`
	Challenged  bool       `json:"challenged"`
	PlayedAt    time.Time  `json:"played_at"`
}

// WordStrings returns every word the move formed
func (m *MoveInfo) WordStrings() []string {
	if m.Placement == nil {
		return nil
	}
	words := make([]string, len(m.Placement.Words))
	for i, w := range m.Placement.Words {
		words[i] = w.Word
	}
	return words
}

// PrimaryWord returns the word formed along the move's direction
func (m *MoveInfo) PrimaryWord() string {
	if m.Placement == nil {
		return ""
	}
	for _, w := range m.Placement.Words {
		if w.Primary {
			return w.Word
		}
	}
	return ""
}
