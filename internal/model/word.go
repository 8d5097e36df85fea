package model

import "fmt"

// MaxWordLength is the longest run of letters that fits on the board
const MaxWordLength = BoardSize

// Word is a geometrically well-formed placement attempt.
// Legality against the live board is checked by the board service.
type Word struct {
	StartPos Position  `json:"start"`
	Dir      Direction `json:"direction"`
	Text     []rune    `json:"letters"`
}

// NewWord validates the shape of a placement attempt
func NewWord(start Position, dir Direction, letters []rune) (*Word, error) {
	if !dir.IsValid() {
		return nil, &WordError{Reason: "direction must be horizontal or vertical"}
	}
	if !start.InBounds() {
		return nil, &WordError{Reason: fmt.Sprintf("start position %s is off the board", start)}
	}
	if len(letters) == 0 {
		return nil, &WordError{Reason: "word has no letters"}
	}
	if len(letters) > MaxWordLength {
		return nil, &WordError{Reason: fmt.Sprintf("word is longer than %d letters", MaxWordLength)}
	}
	for i, r := range letters {
		if !IsBoardLetter(r) {
			return nil, &WordError{Reason: fmt.Sprintf("letter %d (%q) is not an upper case A-Z letter", i, r)}
		}
	}

	text := make([]rune, len(letters))
	copy(text, letters)
	return &Word{StartPos: start, Dir: dir, Text: text}, nil
}

// Start returns the first cell of the word
func (w *Word) Start() Position {
	return w.StartPos
}

// Direction returns the axis the word is laid along
func (w *Word) Direction() Direction {
	return w.Dir
}

// Letters returns a copy of the word's letters
func (w *Word) Letters() []rune {
	out := make([]rune, len(w.Text))
	copy(out, w.Text)
	return out
}

// Len returns the number of letters in the word
func (w *Word) Len() int {
	return len(w.Text)
}

// Cells returns the ordered positions the word covers
func (w *Word) Cells() []Position {
	return Path(w.StartPos, w.Dir, len(w.Text))
}

// End returns the last cell of the word
func (w *Word) End() Position {
	return w.StartPos.Step(w.Dir, len(w.Text)-1)
}

func (w *Word) String() string {
	return fmt.Sprintf("%s %s %s", string(w.Text), w.StartPos, w.Dir)
}
