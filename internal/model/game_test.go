package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type GameSuite struct {
	suite.Suite
	game *Game
}

func TestGameSuite(t *testing.T) {
	suite.Run(t, new(GameSuite))
}

func (s *GameSuite) SetupTest() {
	s.game = NewGame("GAME1", nil, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.game.Players[0] = NewPlayer("Ada", s.game.Pool)
	s.game.Players[1] = NewPlayer("Brian", s.game.Pool)
}

func (s *GameSuite) TestNewGame() {
	s.Equal(GameStateWaiting, s.game.State)
	s.Equal(-1, s.game.Winner)
	s.Equal(PoolSize, s.game.Pool.Size())
	s.True(s.game.Board.IsBoardEmpty())
}

func (s *GameSuite) TestAdvanceTurnAlternates() {
	s.Equal("Ada", s.game.CurrentPlayer().Name)
	s.game.AdvanceTurn()
	s.Equal("Brian", s.game.CurrentPlayer().Name)
	s.game.AdvanceTurn()
	s.Equal("Ada", s.game.CurrentPlayer().Name)
}

func (s *GameSuite) TestOpponent() {
	s.Equal("Brian", s.game.Opponent(0).Name)
	s.Equal("Ada", s.game.Opponent(1).Name)
}

func (s *GameSuite) TestRewireAttachesFrames() {
	s.game.Players[0].Frame.AttachPool(nil)
	s.Equal(0, s.game.Players[0].Frame.Fill())

	s.game.Rewire(nil)
	s.Equal(FrameCapacity, s.game.Players[0].Frame.Fill())
	s.Equal(PoolSize-FrameCapacity, s.game.Pool.Size())
}
