package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/mcoot/scrabblegame-go/internal/model"
	"github.com/mcoot/scrabblegame-go/internal/services/game"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
	errW   io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w, errW io.Writer) *Output {
	return &Output{format: format, w: w, errW: errW}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.errW, string(data))
	} else {
		fmt.Fprintln(o.errW, pterm.Error.Sprint(err.Error()))
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case *model.Game:
		o.printGame(v)
	case *model.Board:
		o.printBoard(v)
	case *game.MoveResult:
		o.printMoveResult(v)
	case []model.MoveInfo:
		o.printHistory(v)
	case RackView:
		o.printRack(v)
	case []model.GameID:
		o.printGameList(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// RackView is the current player's frame as shown to them
type RackView struct {
	Player string `json:"player"`
	Tiles  []rune `json:"-"`
	Value  int    `json:"value"`
}

// MarshalJSON renders tiles as strings, with "_" for a blank
func (r RackView) MarshalJSON() ([]byte, error) {
	type view struct {
		Player string   `json:"player"`
		Tiles  []string `json:"tiles"`
		Value  int      `json:"value"`
	}
	return json.Marshal(view{Player: r.Player, Tiles: rackLetters(r.Tiles), Value: r.Value})
}

func rackLetters(tiles []rune) []string {
	out := make([]string, len(tiles))
	for i, r := range tiles {
		if r == model.Blank {
			out[i] = "_"
		} else {
			out[i] = string(r)
		}
	}
	return out
}

func (o *Output) printGame(g *model.Game) {
	fmt.Fprintf(o.w, "Game: %s\n", g.ID)
	fmt.Fprintf(o.w, "State: %s\n", g.State)
	fmt.Fprintf(o.w, "Tiles in pool: %d\n\n", g.Pool.Size())

	o.printBoard(g.Board)

	data := pterm.TableData{{"", "Player", "Score", "Tiles"}}
	for i, p := range g.Players {
		if p == nil {
			data = append(data, []string{"", "(empty seat)", "", ""})
			continue
		}
		marker := ""
		if g.State == model.GameStateInProgress && i == g.CurrentPlayerIndex {
			marker = ">"
		}
		data = append(data, []string{marker, p.Name, strconv.Itoa(p.Score), strconv.Itoa(p.Frame.Size())})
	}
	table, _ := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	fmt.Fprintln(o.w, table)

	if g.State == model.GameStateInProgress {
		current, opponent := g.CurrentPlayer(), g.Opponent(g.CurrentPlayerIndex)
		fmt.Fprintf(o.w, "%s to play against %s (%+d)\n", current.Name, opponent.Name, current.Score-opponent.Score)
	}

	if g.IsComplete() {
		if g.Winner < 0 {
			fmt.Fprintln(o.w, pterm.Success.Sprint("Game drawn"))
		} else {
			fmt.Fprintln(o.w, pterm.Success.Sprintf("Winner: %s", g.Players[g.Winner].Name))
		}
	}
}

// printBoard draws the grid with row and column indices. Unused premium
// squares show as # (triple word), = (double word), + (triple letter) and
// - (double letter); assigned blanks show in lower case.
func (o *Output) printBoard(b *model.Board) {
	var sb strings.Builder

	sb.WriteString("    ")
	for col := 0; col < model.BoardSize; col++ {
		fmt.Fprintf(&sb, "%2d ", col)
	}
	sb.WriteByte('\n')

	for row := 0; row < model.BoardSize; row++ {
		fmt.Fprintf(&sb, "%2d |", row)
		for col := 0; col < model.BoardSize; col++ {
			cell := &b.Cells[row][col]
			symbol := cell.Symbol()
			if !cell.IsEmpty() {
				symbol = pterm.Bold.Sprint(symbol)
			}
			fmt.Fprintf(&sb, " %s ", symbol)
		}
		sb.WriteString("|\n")
	}

	fmt.Fprintln(o.w, sb.String())
}

func (o *Output) printMoveResult(r *game.MoveResult) {
	word := r.Move.PrimaryWord()
	if word == "" && len(r.Move.WordStrings()) > 0 {
		word = r.Move.WordStrings()[0]
	}

	switch r.Outcome {
	case game.OutcomeRolledBack:
		fmt.Fprintln(o.w, pterm.Warning.Sprintf("%s was challenged off the board (%d points removed)", word, r.Move.MoveScore))
	default:
		fmt.Fprintln(o.w, pterm.Success.Sprintf("%s scored %d", word, r.Move.MoveScore))
		for _, w := range r.Move.Placement.Words {
			fmt.Fprintf(o.w, "  - %s (%d pts)\n", w.Word, w.Score)
		}
		if r.Move.Placement.Bingo {
			fmt.Fprintln(o.w, "  Bingo!")
		}
		fmt.Fprintf(o.w, "Drew %d tiles\n", r.TilesDrawn)
	}

	if r.GameComplete {
		fmt.Fprintln(o.w, "Game complete!")
	}
}

func (o *Output) printHistory(moves []model.MoveInfo) {
	if len(moves) == 0 {
		fmt.Fprintln(o.w, "No moves played yet")
		return
	}
	data := pterm.TableData{{"#", "Player", "Words", "Score"}}
	for i, m := range moves {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(m.PlayerIndex + 1),
			strings.Join(m.WordStrings(), ", "),
			strconv.Itoa(m.MoveScore),
		})
	}
	table, _ := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	fmt.Fprintln(o.w, table)
}

func (o *Output) printRack(r RackView) {
	fmt.Fprintf(o.w, "%s's tiles: %s (%d pts)\n", r.Player, strings.Join(rackLetters(r.Tiles), " "), r.Value)
}

func (o *Output) printGameList(ids []model.GameID) {
	if len(ids) == 0 {
		fmt.Fprintln(o.w, "No stored games")
		return
	}
	for _, id := range ids {
		fmt.Fprintln(o.w, id)
	}
}
