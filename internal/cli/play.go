package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/mcoot/scrabblegame-go/internal/factory"
	"github.com/mcoot/scrabblegame-go/internal/model"
)

func newPlayCmd() *cobra.Command {
	var (
		playerOne string
		playerTwo string
		resumeID  string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a two-player game at this terminal",
		Long: `Start a hot-seat game for two players sharing this terminal, or resume a
stored game with --game. Type help at the prompt for the move commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer app.Close()

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())

			var names [model.NumPlayers]string
			nameOf := func(index int) string {
				if index < 0 || index >= model.NumPlayers {
					return "nobody"
				}
				return names[index]
			}
			app.GameController.SetEventSink(newEventPrinter(cfg.Output, cmd.OutOrStdout(), nameOf))

			var g *model.Game
			if resumeID != "" {
				g, err = app.GameController.GetGame(ctx, model.GameID(resumeID))
			} else {
				names = [model.NumPlayers]string{playerOne, playerTwo}
				g, err = startGame(ctx, app, names)
			}
			if err != nil {
				return err
			}
			for i, p := range g.Players {
				if p != nil {
					names[i] = p.Name
				}
			}

			out.PrintMessage("Game " + string(g.ID))
			session := NewSession(app.GameController, g.ID, out)
			if err := session.showGame(ctx); err != nil {
				return err
			}
			if err := runLoop(ctx, session, out); err != nil {
				return err
			}
			return session.showGame(ctx)
		},
	}

	cmd.Flags().StringVar(&playerOne, "player-one", "Player 1", "Name of the first player")
	cmd.Flags().StringVar(&playerTwo, "player-two", "Player 2", "Name of the second player")
	cmd.Flags().StringVar(&resumeID, "game", "", "Resume a stored game by ID")

	return cmd
}

func startGame(ctx context.Context, app *factory.App, names [model.NumPlayers]string) (*model.Game, error) {
	g, err := app.GameController.CreateGame(ctx)
	if err != nil {
		return nil, err
	}
	for i, name := range names {
		if _, err := app.GameController.CreatePlayer(ctx, g.ID, name, i); err != nil {
			return nil, err
		}
	}
	return app.GameController.GetGame(ctx, g.ID)
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// runLoop reads commands until the game ends, the player quits or input closes
func runLoop(ctx context.Context, session *Session, out *Output) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          session.Prompt(ctx),
		HistoryFile:     filepath.Join(os.TempDir(), "scrabble_history.tmp"),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return err
	}
	defer l.Close()

	for !session.Done(ctx) {
		if ctx.Err() != nil {
			return nil
		}
		l.SetPrompt(session.Prompt(ctx))

		line, err := l.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}

		err = session.Execute(ctx, line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			out.PrintError(err)
		}
	}
	return nil
}
