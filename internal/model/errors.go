package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Argument errors
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrInvalidPlayerIndex = errors.New("player index must be 0 or 1")
	ErrNoTilesToCheck     = errors.New("cannot check for zero tiles")

	// Tile errors
	ErrInvalidLetter = errors.New("invalid letter")
	ErrNotBlank      = errors.New("tile is not a blank")
	ErrBlankAssigned = errors.New("blank already stands for a letter")

	// Frame errors
	ErrFrameFull       = errors.New("frame already holds 7 tiles")
	ErrInvalidIndex    = errors.New("frame index out of range")
	ErrTilesNotInFrame = errors.New("tiles are not in the frame")
	ErrPoolTooSmall    = errors.New("not enough tiles left in the pool")
	ErrPoolFull        = errors.New("pool cannot hold more than 100 tiles")

	// Word errors
	ErrInvalidWord = errors.New("invalid word")

	// Board errors
	ErrInvalidPosition    = errors.New("invalid board position")
	ErrWordOffBoard       = errors.New("word runs off the board")
	ErrPlacementConflict  = errors.New("placement conflicts with an existing tile")
	ErrNoNewTiles         = errors.New("move does not place any new tiles")
	ErrFirstMoveOffCentre = errors.New("first move must cover the centre square")
	ErrNotConnected       = errors.New("move must connect to existing tiles")
	ErrCellSettled        = errors.New("cell has already been settled")

	// Game errors
	ErrGameNotFound   = errors.New("game not found")
	ErrGameNotStarted = errors.New("game has not started")
	ErrGameComplete   = errors.New("game is already complete")
	ErrSeatTaken      = errors.New("player seat is already taken")
	ErrNotPlayerTurn  = errors.New("not this player's turn")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
)

// WordError describes why a word failed shape validation
type WordError struct {
	Reason string
}

func (e *WordError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidWord, e.Reason)
}

func (e *WordError) Unwrap() error {
	return ErrInvalidWord
}

// PlacementError identifies the cell at which a placement was rejected
type PlacementError struct {
	Pos      Position
	Existing rune
	Wanted   rune
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("%s at (%d,%d): board has %c, word needs %c",
		ErrPlacementConflict, e.Pos.Row, e.Pos.Col, e.Existing, e.Wanted)
}

func (e *PlacementError) Unwrap() error {
	return ErrPlacementConflict
}
