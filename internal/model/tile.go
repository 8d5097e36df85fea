package model

import "unicode"

// Blank is the letter a blank tile carries until it is assigned
const Blank rune = ' '

// letterValues is the standard English tile value table
var letterValues = map[rune]int{
	'A': 1, 'B': 3, 'C': 3, 'D': 2, 'E': 1,
	'F': 4, 'G': 2, 'H': 4, 'I': 1, 'J': 8,
	'K': 5, 'L': 1, 'M': 3, 'N': 1, 'O': 1,
	'P': 3, 'Q': 10, 'R': 1, 'S': 1, 'T': 1,
	'U': 1, 'V': 4, 'W': 4, 'X': 8, 'Y': 4,
	'Z': 10, Blank: 0,
}

// LetterValue returns the face value of a letter, 0 for blanks or unknown runes
func LetterValue(letter rune) int {
	return letterValues[letter]
}

// IsBoardLetter returns true for the runes a word may be spelled with (A-Z)
func IsBoardLetter(letter rune) bool {
	return letter >= 'A' && letter <= 'Z'
}

// Tile is a single lettered tile.
// Only blank tiles may have their letter changed after creation.
type Tile struct {
	Letter rune `json:"letter"`
	Points int  `json:"points"`
	Blank  bool `json:"blank"`
}

// NewTile creates a tile for the given letter, or a blank for the Blank rune
func NewTile(letter rune) *Tile {
	letter = unicode.ToUpper(letter)
	return &Tile{
		Letter: letter,
		Points: LetterValue(letter),
		Blank:  letter == Blank,
	}
}

// Value returns the tile's score value (always 0 for blanks)
func (t *Tile) Value() int {
	return t.Points
}

// IsBlank reports whether the tile was created as a blank
func (t *Tile) IsBlank() bool {
	return t.Blank
}

// IsAssigned reports whether a blank tile currently stands for a letter
func (t *Tile) IsAssigned() bool {
	return t.Blank && t.Letter != Blank
}

// SetLetter assigns a letter to a blank tile. A blank is assigned once;
// ResetBlank frees it again.
func (t *Tile) SetLetter(letter rune) error {
	if !t.Blank {
		return ErrNotBlank
	}
	if t.IsAssigned() {
		return ErrBlankAssigned
	}
	letter = unicode.ToUpper(letter)
	if !IsBoardLetter(letter) {
		return ErrInvalidLetter
	}
	t.Letter = letter
	return nil
}

// ResetBlank returns an assigned blank to the blank sentinel
func (t *Tile) ResetBlank() {
	if t.Blank {
		t.Letter = Blank
	}
}

// String renders assigned blanks in lower case so they stand out on the board
func (t *Tile) String() string {
	if t.IsAssigned() {
		return string(unicode.ToLower(t.Letter))
	}
	return string(t.Letter)
}
