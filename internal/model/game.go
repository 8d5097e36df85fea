package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStateWaiting    GameState = "waiting_for_players" // Seats still open
	GameStateInProgress GameState = "in_progress"         // Players taking turns
	GameStateComplete   GameState = "complete"            // Final scores applied
)

// NumPlayers is the number of seats in a game
const NumPlayers = 2

// MaxConsecutivePasses ends the game when that many scoreless turns happen in a row
const MaxConsecutivePasses = 6

// Game is a single two-player game. It owns the board and the pool.
type Game struct {
	ID    GameID    `json:"id"`
	State GameState `json:"state"`

	Players            [NumPlayers]*Player `json:"players"`
	CurrentPlayerIndex int                 `json:"current_player_index"`

	Board *Board `json:"board"`
	Pool  *Pool  `json:"pool"`

	History           []MoveInfo `json:"history"`
	ConsecutivePasses int        `json:"consecutive_passes"`
	Winner            int        `json:"winner"` // -1 for a tie or while in progress

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewGame creates a game with an empty board and a full pool
func NewGame(id GameID, shuffle ShuffleFunc, now time.Time) *Game {
	return &Game{
		ID:        id,
		State:     GameStateWaiting,
		Board:     NewBoard(),
		Pool:      NewPool(shuffle),
		History:   []MoveInfo{},
		Winner:    -1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CurrentPlayer returns the player whose turn it is
func (g *Game) CurrentPlayer() *Player {
	return g.Players[g.CurrentPlayerIndex]
}

// Opponent returns the player not at the given index
func (g *Game) Opponent(index int) *Player {
	return g.Players[(index+1)%NumPlayers]
}

// AdvanceTurn passes the turn to the other player
func (g *Game) AdvanceTurn() {
	g.CurrentPlayerIndex = (g.CurrentPlayerIndex + 1) % NumPlayers
}

// SeatsFilled returns true once both players have been created
func (g *Game) SeatsFilled() bool {
	for _, p := range g.Players {
		if p == nil {
			return false
		}
	}
	return true
}

// IsComplete returns true once final scores have been applied
func (g *Game) IsComplete() bool {
	return g.State == GameStateComplete
}

// Rewire re-attaches frames to the game's pool and sets the pool's shuffle
// function. Needed after a game is decoded from storage.
func (g *Game) Rewire(shuffle ShuffleFunc) {
	g.Pool.SetShuffle(shuffle)
	for _, p := range g.Players {
		if p != nil && p.Frame != nil {
			p.Frame.AttachPool(g.Pool)
		}
	}
}
