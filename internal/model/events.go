package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventPlayerJoined   EventType = "player_joined"
	EventGameStarted    EventType = "game_started"
	EventMovePlayed     EventType = "move_played"
	EventMoveChallenged EventType = "move_challenged"
	EventTilesSwapped   EventType = "tiles_swapped"
	EventTurnPassed     EventType = "turn_passed"
	EventGameComplete   EventType = "game_complete"
)

// Event is the base structure for all events
type Event struct {
	Type        EventType
	Timestamp   time.Time
	GameID      GameID
	PlayerIndex int // The player who triggered or is affected
	Payload     any // Type-specific data
}

// MovePayload contains data for move played and move challenged events
type MovePayload struct {
	Move MoveInfo
}

// SwapPayload contains data for tiles swapped events
type SwapPayload struct {
	Count int
}

// GameCompletePayload contains data for game complete events
type GameCompletePayload struct {
	Scores [NumPlayers]int
	Winner int // -1 if tie
}

// EventSink receives game events, e.g. for display
type EventSink interface {
	Publish(event Event)
}
