package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type BoardSuite struct {
	suite.Suite
	board *Board
}

func TestBoardSuite(t *testing.T) {
	suite.Run(t, new(BoardSuite))
}

func (s *BoardSuite) SetupTest() {
	s.board = NewBoard()
}

func (s *BoardSuite) TestNewBoardIsEmpty() {
	s.True(s.board.IsBoardEmpty())
	s.Equal(0, s.board.TileCount())
}

func (s *BoardSuite) TestPremiumLayout() {
	s.Equal(3, s.board.Cell(Position{Row: 0, Col: 0}).WordMultiplier)
	s.Equal(2, s.board.Cell(Centre).WordMultiplier)
	s.Equal(2, s.board.Cell(Position{Row: 1, Col: 1}).WordMultiplier)
	s.Equal(3, s.board.Cell(Position{Row: 1, Col: 5}).LetterMultiplier)
	s.Equal(2, s.board.Cell(Position{Row: 0, Col: 3}).LetterMultiplier)
	s.Equal(1, s.board.Cell(Position{Row: 0, Col: 1}).LetterMultiplier)
	s.Equal(1, s.board.Cell(Position{Row: 0, Col: 1}).WordMultiplier)
}

func (s *BoardSuite) TestPremiumsAreSymmetric() {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			cell := s.board.Cells[row][col]
			mirror := s.board.Cells[col][row]
			s.Equal(cell.WordMultiplier, mirror.WordMultiplier)
			s.Equal(cell.LetterMultiplier, mirror.LetterMultiplier)
		}
	}
}

func (s *BoardSuite) TestConsumedPremiumIsOne() {
	cell := s.board.Cell(Centre)
	cell.Consumed = true

	s.Equal(1, cell.EffectiveWordMultiplier())
	s.Equal(1, cell.EffectiveLetterMultiplier())
	s.Equal(2, cell.WordMultiplier)
}

func (s *BoardSuite) TestCellOffBoardIsNil() {
	s.Nil(s.board.Cell(Position{Row: 15, Col: 0}))
	s.Nil(s.board.Get(Position{Row: 0, Col: -1}))
	s.True(s.board.IsEmpty(Position{Row: -1, Col: -1}))
}

func (s *BoardSuite) TestHasNeighbour() {
	s.board.Cell(Centre).Tile = NewTile('A')

	s.True(s.board.HasNeighbour(Position{Row: 6, Col: 7}))
	s.True(s.board.HasNeighbour(Position{Row: 7, Col: 8}))
	s.False(s.board.HasNeighbour(Position{Row: 6, Col: 6}))
	s.False(s.board.HasNeighbour(Centre))
	s.Equal('A', s.board.Letter(Centre))
	s.Equal(1, s.board.TileCount())
}

func (s *BoardSuite) TestString() {
	s.board.Cell(Centre).Tile = NewTile('A')

	lines := strings.Split(strings.TrimSuffix(s.board.String(), "\n"), "\n")
	s.Require().Len(lines, BoardSize)
	s.Equal("# . . - . . . # . . . - . . #", lines[0])
	s.Equal("# . . - . . . A . . . - . . #", lines[7])
}
