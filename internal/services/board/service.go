package board

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/mcoot/scrabblegame-go/internal/model"
	"github.com/mcoot/scrabblegame-go/internal/services/scoring"
)

// Service provides board operations. It is the only writer of board cells.
type Service struct {
	scoring *scoring.Service
	logger  *slog.Logger
}

// New creates a new BoardService
func New(scoring *scoring.Service, logger *slog.Logger) *Service {
	return &Service{
		scoring: scoring,
		logger:  logger,
	}
}

// CheckValidPosition checks bounds only, not occupancy
func (s *Service) CheckValidPosition(pos model.Position) error {
	if !pos.InBounds() {
		return model.ErrInvalidPosition
	}
	return nil
}

// ValidatePlacement checks a word against the current board without changing it
func (s *Service) ValidatePlacement(board *model.Board, word *model.Word) (*model.PlacementPlan, error) {
	if err := s.CheckValidPosition(word.Start()); err != nil {
		return nil, err
	}
	if !word.End().InBounds() {
		return nil, model.ErrWordOffBoard
	}

	plan := &model.PlacementPlan{Word: word}
	connected := false
	letters := word.Letters()
	for i, pos := range word.Cells() {
		existing := board.Get(pos)
		if existing != nil {
			if existing.Letter != letters[i] {
				return nil, &model.PlacementError{Pos: pos, Existing: existing.Letter, Wanted: letters[i]}
			}
			connected = true
			continue
		}
		plan.NewCells = append(plan.NewCells, pos)
		plan.Needed = append(plan.Needed, letters[i])
		if board.HasNeighbour(pos) {
			connected = true
		}
	}

	if len(plan.NewCells) == 0 {
		return nil, model.ErrNoNewTiles
	}
	if board.IsBoardEmpty() {
		if !slices.Contains(plan.NewCells, model.Centre) {
			return nil, model.ErrFirstMoveOffCentre
		}
	} else if !connected {
		return nil, model.ErrNotConnected
	}
	return plan, nil
}

// PlaceTiles validates and applies a word. tiles are the frame tiles for the
// new cells in word order; if nil, fresh tiles are made from the letters.
// The board is unchanged if an error is returned.
func (s *Service) PlaceTiles(board *model.Board, word *model.Word, tiles []*model.Tile) (*model.Placement, error) {
	plan, err := s.ValidatePlacement(board, word)
	if err != nil {
		return nil, err
	}

	if tiles == nil {
		tiles = make([]*model.Tile, len(plan.Needed))
		for i, letter := range plan.Needed {
			tiles[i] = model.NewTile(letter)
		}
	}
	if len(tiles) != len(plan.NewCells) {
		return nil, fmt.Errorf("%w: move needs %d tiles, got %d", model.ErrInvalidArgument, len(plan.NewCells), len(tiles))
	}
	for i, t := range tiles {
		if t.Letter != plan.Needed[i] {
			return nil, fmt.Errorf("%w: tile %c does not match letter %c", model.ErrInvalidArgument, t.Letter, plan.Needed[i])
		}
	}

	placement := &model.Placement{Word: word}
	for i, pos := range plan.NewCells {
		board.Cell(pos).Tile = tiles[i]
		placement.Placed = append(placement.Placed, model.PlacedTile{Pos: pos, Tile: tiles[i]})
	}

	// Score before consuming so the premiums apply exactly once
	result := s.scoring.ScorePlacement(board, word, plan.NewCells)
	for _, pos := range plan.NewCells {
		board.Cell(pos).Consumed = true
	}

	placement.Words = result.Words
	placement.Bingo = result.Bingo
	placement.Score = result.Total

	s.logger.Debug("tiles placed",
		slog.String("word", string(word.Letters())),
		slog.String("start", word.Start().String()),
		slog.String("direction", word.Direction().String()),
		slog.Int("new_tiles", len(placement.Placed)),
		slog.Int("score", placement.Score),
	)

	return placement, nil
}

// RemoveMove reverses a placement. Only cells the placement filled are
// cleared; overlapped tiles stay.
func (s *Service) RemoveMove(board *model.Board, placement *model.Placement) error {
	for _, pt := range placement.Placed {
		cell := board.Cell(pt.Pos)
		if cell == nil || cell.Tile != pt.Tile {
			return fmt.Errorf("%w: cell %s was not filled by this move", model.ErrInvalidArgument, pt.Pos)
		}
		if cell.Settled {
			return model.ErrCellSettled
		}
	}

	for _, pt := range placement.Placed {
		cell := board.Cell(pt.Pos)
		cell.Tile = nil
		cell.Consumed = false
	}

	s.logger.Debug("move removed",
		slog.String("word", string(placement.Word.Letters())),
		slog.Int("cleared", len(placement.Placed)),
	)
	return nil
}

// SetWordSquaresNormal settles the cells of an accepted move so they can no
// longer be rolled back
func (s *Service) SetWordSquaresNormal(board *model.Board, placement *model.Placement) {
	for _, pt := range placement.Placed {
		if cell := board.Cell(pt.Pos); cell != nil {
			cell.Settled = true
		}
	}
}

// Interface for dependency injection
type ServiceInterface interface {
	CheckValidPosition(pos model.Position) error
	ValidatePlacement(board *model.Board, word *model.Word) (*model.PlacementPlan, error)
	PlaceTiles(board *model.Board, word *model.Word, tiles []*model.Tile) (*model.Placement, error)
	RemoveMove(board *model.Board, placement *model.Placement) error
	SetWordSquaresNormal(board *model.Board, placement *model.Placement)
}

var _ ServiceInterface = (*Service)(nil)
