package game

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/mcoot/scrabblegame-go/internal/dependencies/clock"
	"github.com/mcoot/scrabblegame-go/internal/dependencies/random"
	"github.com/mcoot/scrabblegame-go/internal/model"
	"github.com/mcoot/scrabblegame-go/internal/services/board"
	"github.com/mcoot/scrabblegame-go/internal/services/scoring"
	"github.com/mcoot/scrabblegame-go/internal/storage"
)

const gameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// MoveOutcome is how a move attempt ended
type MoveOutcome string

const (
	OutcomeCommitted  MoveOutcome = "committed"
	OutcomeRolledBack MoveOutcome = "rolled_back"
)

// MoveResult describes the effect of a played move
type MoveResult struct {
	Move         model.MoveInfo `json:"move"`
	Outcome      MoveOutcome    `json:"outcome"`
	TilesDrawn   int            `json:"tiles_drawn"`
	GameComplete bool           `json:"game_complete"`
}

// Controller sequences turns and applies or reverses moves
type Controller struct {
	storage        storage.Storage
	boardService   *board.Service
	scoringService *scoring.Service
	judge          Judge
	clock          clock.Clock
	random         random.Random
	logger         *slog.Logger
	events         model.EventSink

	// held for a whole turn so placement and rollback see a consistent board
	mu sync.Mutex
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	boardService *board.Service,
	scoringService *scoring.Service,
	judge Judge,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	if judge == nil {
		judge = NoChallenge{}
	}
	return &Controller{
		storage:        storage,
		boardService:   boardService,
		scoringService: scoringService,
		judge:          judge,
		clock:          clock,
		random:         random,
		logger:         logger,
	}
}

// SetEventSink registers a receiver for game events
func (c *Controller) SetEventSink(sink model.EventSink) {
	c.events = sink
}

// SetJudge replaces the challenge judge
func (c *Controller) SetJudge(judge Judge) {
	if judge == nil {
		judge = NoChallenge{}
	}
	c.judge = judge
}

// CreateGame initializes a new game waiting for two players
func (c *Controller) CreateGame(ctx context.Context) (*model.Game, error) {
	gameID := model.GameID(c.random.String(12, gameIDAlphabet))
	game := model.NewGame(gameID, c.random.Shuffle, c.clock.Now())

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(gameID)),
		slog.Int("pool_size", game.Pool.Size()),
	)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.loadGame(ctx, gameID)
}

// History returns the accepted moves of a game in play order
func (c *Controller) History(ctx context.Context, gameID model.GameID) ([]model.MoveInfo, error) {
	game, err := c.loadGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	history := make([]model.MoveInfo, len(game.History))
	copy(history, game.History)
	return history, nil
}

// CreatePlayer seats a named player at index 0 or 1 and fills their frame.
// The game starts once both seats are filled.
func (c *Controller) CreatePlayer(ctx context.Context, gameID model.GameID, name string, index int) (*model.Player, error) {
	if index < 0 || index >= model.NumPlayers {
		return nil, model.ErrInvalidPlayerIndex
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: player name is empty", model.ErrInvalidArgument)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	game, err := c.loadGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.State != model.GameStateWaiting {
		return nil, model.ErrSeatTaken
	}
	if game.Players[index] != nil {
		return nil, model.ErrSeatTaken
	}

	player := model.NewPlayer(name, game.Pool)
	player.Frame.Fill()
	game.Players[index] = player
	c.publish(game, model.EventPlayerJoined, index, nil)

	if game.SeatsFilled() {
		game.State = model.GameStateInProgress
		c.publish(game, model.EventGameStarted, game.CurrentPlayerIndex, nil)
		c.logger.Info("game started",
			slog.String("game_id", string(game.ID)),
			slog.String("player_one", game.Players[0].Name),
			slog.String("player_two", game.Players[1].Name),
		)
	}

	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return player, nil
}

// PlayMove places a word for the player on turn, asks the judge whether it
// is challenged, and either commits it or takes it back.
func (c *Controller) PlayMove(
	ctx context.Context,
	gameID model.GameID,
	playerIndex int,
	start model.Position,
	dir model.Direction,
	letters []rune,
) (*MoveResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	game, err := c.loadGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if err := c.checkTurn(game, playerIndex); err != nil {
		return nil, err
	}

	// Nothing below may touch the board until the word and frame checks pass
	if err := c.boardService.CheckValidPosition(start); err != nil {
		return nil, err
	}
	word, err := model.NewWord(start, dir, letters)
	if err != nil {
		return nil, err
	}
	plan, err := c.boardService.ValidatePlacement(game.Board, word)
	if err != nil {
		return nil, err
	}

	player := game.Players[playerIndex]
	tiles, err := player.Frame.TakeForLetters(plan.Needed)
	if err != nil {
		return nil, err
	}
	placement, err := c.boardService.PlaceTiles(game.Board, word, tiles)
	if err != nil {
		_ = player.Frame.ReturnTiles(tiles)
		return nil, err
	}
	player.AddScore(placement.Score)

	move := model.MoveInfo{
		ID:          uuid.NewString(),
		PlayerIndex: playerIndex,
		Placement:   placement,
		MoveScore:   placement.Score,
		PlayedAt:    c.clock.Now(),
	}
	result := &MoveResult{Move: move}

	if c.judge.Challenge(ctx, &move) {
		if err := c.rollBack(game, player, &move); err != nil {
			return nil, err
		}
		result.Move = move
		result.Outcome = OutcomeRolledBack
	} else {
		c.boardService.SetWordSquaresNormal(game.Board, placement)
		result.TilesDrawn = player.Frame.Fill()
		game.History = append(game.History, move)
		game.ConsecutivePasses = 0
		result.Outcome = OutcomeCommitted

		c.publish(game, model.EventMovePlayed, playerIndex, model.MovePayload{Move: move})
		c.logger.Info("move played",
			slog.String("game_id", string(game.ID)),
			slog.Int("player", playerIndex),
			slog.String("word", move.PrimaryWord()),
			slog.Int("score", move.MoveScore),
			slog.Bool("bingo", placement.Bingo),
		)
	}

	// A challenged move still costs the player their turn
	game.AdvanceTurn()

	if player.Frame.IsEmpty() && game.Pool.IsEmpty() {
		c.endGame(game)
	} else if game.ConsecutivePasses >= model.MaxConsecutivePasses {
		c.endGame(game)
	}
	result.GameComplete = game.IsComplete()

	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return result, nil
}

// rollBack reverses a challenged move: tiles come off the board and go back
// to the player's frame, and the score is taken away again
func (c *Controller) rollBack(game *model.Game, player *model.Player, move *model.MoveInfo) error {
	if err := c.boardService.RemoveMove(game.Board, move.Placement); err != nil {
		return err
	}
	player.DecreaseScore(move.MoveScore)
	if err := player.Frame.ReturnTiles(move.Placement.Tiles()); err != nil {
		return err
	}
	move.Challenged = true
	game.ConsecutivePasses++

	c.publish(game, model.EventMoveChallenged, move.PlayerIndex, model.MovePayload{Move: *move})
	c.logger.Info("move challenged off",
		slog.String("game_id", string(game.ID)),
		slog.Int("player", move.PlayerIndex),
		slog.String("word", move.PrimaryWord()),
		slog.Int("score_removed", move.MoveScore),
	)
	return nil
}

// SwapTiles exchanges frame tiles with the pool, using up the player's turn
func (c *Controller) SwapTiles(ctx context.Context, gameID model.GameID, playerIndex int, letters []rune) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	game, err := c.loadGame(ctx, gameID)
	if err != nil {
		return err
	}
	if err := c.checkTurn(game, playerIndex); err != nil {
		return err
	}

	if err := game.Players[playerIndex].Frame.SwapTiles(letters); err != nil {
		return err
	}

	c.publish(game, model.EventTilesSwapped, playerIndex, model.SwapPayload{Count: len(letters)})
	return c.endScorelessTurn(ctx, game)
}

// Pass gives up the player's turn
func (c *Controller) Pass(ctx context.Context, gameID model.GameID, playerIndex int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	game, err := c.loadGame(ctx, gameID)
	if err != nil {
		return err
	}
	if err := c.checkTurn(game, playerIndex); err != nil {
		return err
	}

	c.publish(game, model.EventTurnPassed, playerIndex, nil)
	return c.endScorelessTurn(ctx, game)
}

func (c *Controller) endScorelessTurn(ctx context.Context, game *model.Game) error {
	game.ConsecutivePasses++
	game.AdvanceTurn()
	if game.ConsecutivePasses >= model.MaxConsecutivePasses {
		c.endGame(game)
	}
	game.UpdatedAt = c.clock.Now()
	return c.storage.SaveGame(ctx, game)
}

// endGame applies final frame adjustments and records the winner
func (c *Controller) endGame(game *model.Game) {
	adjustments := c.scoringService.FinalAdjustments(game.Players)
	game.Winner = c.scoringService.DetermineWinner(game.Players)
	game.State = model.GameStateComplete

	var scores [model.NumPlayers]int
	for i, p := range game.Players {
		scores[i] = p.Score
	}
	c.publish(game, model.EventGameComplete, game.Winner, model.GameCompletePayload{
		Scores: scores,
		Winner: game.Winner,
	})
	c.logger.Info("game completed",
		slog.String("game_id", string(game.ID)),
		slog.Int("winner", game.Winner),
		slog.Int("score_one", scores[0]),
		slog.Int("score_two", scores[1]),
		slog.Int("adjustment_one", adjustments[0]),
		slog.Int("adjustment_two", adjustments[1]),
	)
}

func (c *Controller) checkTurn(game *model.Game, playerIndex int) error {
	switch game.State {
	case model.GameStateWaiting:
		return model.ErrGameNotStarted
	case model.GameStateComplete:
		return model.ErrGameComplete
	}
	if playerIndex < 0 || playerIndex >= model.NumPlayers {
		return model.ErrInvalidPlayerIndex
	}
	if playerIndex != game.CurrentPlayerIndex {
		return model.ErrNotPlayerTurn
	}
	return nil
}

func (c *Controller) loadGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	game.Rewire(c.random.Shuffle)
	return game, nil
}

func (c *Controller) publish(game *model.Game, eventType model.EventType, playerIndex int, payload any) {
	if c.events == nil {
		return
	}
	c.events.Publish(model.Event{
		Type:        eventType,
		Timestamp:   c.clock.Now(),
		GameID:      game.ID,
		PlayerIndex: playerIndex,
		Payload:     payload,
	})
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	History(ctx context.Context, gameID model.GameID) ([]model.MoveInfo, error)
	CreatePlayer(ctx context.Context, gameID model.GameID, name string, index int) (*model.Player, error)
	PlayMove(ctx context.Context, gameID model.GameID, playerIndex int, start model.Position, dir model.Direction, letters []rune) (*MoveResult, error)
	SwapTiles(ctx context.Context, gameID model.GameID, playerIndex int, letters []rune) error
	Pass(ctx context.Context, gameID model.GameID, playerIndex int) error
}

var _ ControllerInterface = (*Controller)(nil)
