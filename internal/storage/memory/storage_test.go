package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scrabblegame-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func newGame(id model.GameID) *model.Game {
	return model.NewGame(id, nil, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
}

// Game tests

func (s *StorageSuite) TestSaveAndGetGame() {
	game := newGame("game-1")

	err := s.storage.SaveGame(s.ctx, game)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Same(game, retrieved)
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestDeleteGame() {
	_ = s.storage.SaveGame(s.ctx, newGame("game-1"))

	err := s.storage.DeleteGame(s.ctx, "game-1")
	s.Require().NoError(err)

	_, err = s.storage.GetGame(s.ctx, "game-1")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestListGames() {
	_ = s.storage.SaveGame(s.ctx, newGame("game-2"))
	_ = s.storage.SaveGame(s.ctx, newGame("game-1"))

	ids, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.GameID{"game-1", "game-2"}, ids)
}

// Dictionary tests

func (s *StorageSuite) TestSaveAndGetDictionaryWords() {
	words := []string{"apple", "banana", "cherry"}

	err := s.storage.SaveDictionaryWords(s.ctx, words)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal(words, retrieved)
}

func (s *StorageSuite) TestGetDictionaryWordsNotLoaded() {
	_, err := s.storage.GetDictionaryWords(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *StorageSuite) TestDictionaryWordsAreCopied() {
	words := []string{"apple"}
	_ = s.storage.SaveDictionaryWords(s.ctx, words)
	words[0] = "changed"

	retrieved, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"apple"}, retrieved)
}
