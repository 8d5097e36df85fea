package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pterm/pterm"

	"github.com/mcoot/scrabblegame-go/internal/model"
)

// eventPrinter shows game events as they happen
type eventPrinter struct {
	format string
	w      io.Writer
	names  func(index int) string
}

var _ model.EventSink = (*eventPrinter)(nil)

func newEventPrinter(format string, w io.Writer, names func(index int) string) *eventPrinter {
	return &eventPrinter{format: format, w: w, names: names}
}

// Publish prints one event
func (p *eventPrinter) Publish(event model.Event) {
	if p.format == "json" {
		data, err := json.Marshal(map[string]any{
			"event":     event.Type,
			"timestamp": event.Timestamp.Format(time.RFC3339),
			"game_id":   event.GameID,
			"player":    event.PlayerIndex,
			"payload":   event.Payload,
		})
		if err != nil {
			return
		}
		fmt.Fprintln(p.w, string(data))
		return
	}

	if line := p.describe(event); line != "" {
		fmt.Fprintln(p.w, pterm.Info.Sprint(line))
	}
}

func (p *eventPrinter) describe(event model.Event) string {
	name := p.names(event.PlayerIndex)
	switch event.Type {
	case model.EventPlayerJoined:
		return fmt.Sprintf("%s joined", name)
	case model.EventGameStarted:
		return fmt.Sprintf("Game started, %s to play", name)
	case model.EventTilesSwapped:
		if payload, ok := event.Payload.(model.SwapPayload); ok {
			return fmt.Sprintf("%s swapped %d tiles", name, payload.Count)
		}
		return fmt.Sprintf("%s swapped tiles", name)
	case model.EventTurnPassed:
		return fmt.Sprintf("%s passed", name)
	case model.EventGameComplete:
		if payload, ok := event.Payload.(model.GameCompletePayload); ok {
			return fmt.Sprintf("Game over: %d to %d", payload.Scores[0], payload.Scores[1])
		}
		return "Game over"
	default:
		// Moves are reported by the move command itself
		return ""
	}
}
