package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/mcoot/scrabblegame-go/internal/model"
	"github.com/mcoot/scrabblegame-go/internal/services/game"
)

// errQuit ends the play loop
var errQuit = errors.New("quit")

const sessionHelp = `Commands:
  move <row> <col> <h|v> <WORD>   place a word; letters already on the board are included
  swap <LETTERS>                  exchange tiles with the pool, use _ for a blank
  pass                            give up the turn
  board                           show the board and scores
  rack                            show the tiles of the player on turn
  history                         list accepted moves
  help                            show this help
  quit                            leave the game`

// Session runs hot-seat commands against one game. The player on turn is
// always the one acting.
type Session struct {
	controller game.ControllerInterface
	gameID     model.GameID
	out        *Output
}

// NewSession creates a session for an existing game
func NewSession(controller game.ControllerInterface, gameID model.GameID, out *Output) *Session {
	return &Session{controller: controller, gameID: gameID, out: out}
}

// Execute runs one input line. It returns errQuit when the player leaves.
func (s *Session) Execute(ctx context.Context, line string) error {
	fields, err := shellquote.Split(line)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidArgument, err)
	}
	if len(fields) == 0 {
		return nil
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "move", "m":
		return s.move(ctx, args)
	case "swap", "s":
		return s.swap(ctx, args)
	case "pass", "p":
		return s.pass(ctx)
	case "board", "b":
		return s.showGame(ctx)
	case "rack", "r":
		return s.showRack(ctx)
	case "history", "h":
		history, err := s.controller.History(ctx, s.gameID)
		if err != nil {
			return err
		}
		s.out.Print(history)
		return nil
	case "help", "?":
		s.out.PrintMessage(sessionHelp)
		return nil
	case "quit", "exit", "q":
		return errQuit
	default:
		return fmt.Errorf("%w: unknown command %q, try help", model.ErrInvalidArgument, cmd)
	}
}

func (s *Session) move(ctx context.Context, args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("%w: usage: move <row> <col> <h|v> <WORD>", model.ErrInvalidArgument)
	}
	row, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: invalid row %q", model.ErrInvalidArgument, args[0])
	}
	col, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: invalid col %q", model.ErrInvalidArgument, args[1])
	}
	dir, err := model.ParseDirection(args[2])
	if err != nil {
		return err
	}

	g, err := s.controller.GetGame(ctx, s.gameID)
	if err != nil {
		return err
	}
	result, err := s.controller.PlayMove(ctx, s.gameID, g.CurrentPlayerIndex, model.Position{Row: row, Col: col}, dir, []rune(strings.ToUpper(args[3])))
	if err != nil {
		return err
	}
	s.out.Print(result)
	return nil
}

func (s *Session) swap(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: usage: swap <LETTERS>", model.ErrInvalidArgument)
	}
	letters := []rune(strings.ToUpper(args[0]))
	for i, r := range letters {
		if r == '_' {
			letters[i] = model.Blank
		}
	}

	g, err := s.controller.GetGame(ctx, s.gameID)
	if err != nil {
		return err
	}
	return s.controller.SwapTiles(ctx, s.gameID, g.CurrentPlayerIndex, letters)
}

func (s *Session) pass(ctx context.Context) error {
	g, err := s.controller.GetGame(ctx, s.gameID)
	if err != nil {
		return err
	}
	return s.controller.Pass(ctx, s.gameID, g.CurrentPlayerIndex)
}

func (s *Session) showGame(ctx context.Context) error {
	g, err := s.controller.GetGame(ctx, s.gameID)
	if err != nil {
		return err
	}
	s.out.Print(g)
	return nil
}

func (s *Session) showRack(ctx context.Context) error {
	g, err := s.controller.GetGame(ctx, s.gameID)
	if err != nil {
		return err
	}
	if g.State != model.GameStateInProgress {
		return model.ErrGameNotStarted
	}
	player := g.CurrentPlayer()
	s.out.Print(RackView{
		Player: player.Name,
		Tiles:  player.Frame.Letters(),
		Value:  player.Frame.Value(),
	})
	return nil
}

// Prompt is the text shown before each command
func (s *Session) Prompt(ctx context.Context) string {
	g, err := s.controller.GetGame(ctx, s.gameID)
	if err != nil || g.State != model.GameStateInProgress {
		return "scrabble> "
	}
	return fmt.Sprintf("%s> ", g.CurrentPlayer().Name)
}

// Done reports whether the game has finished
func (s *Session) Done(ctx context.Context) bool {
	g, err := s.controller.GetGame(ctx, s.gameID)
	return err == nil && g.IsComplete()
}
