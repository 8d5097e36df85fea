package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/scrabblegame-go/internal/model"
)

func newGamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "games",
		Short: "List stored games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			ids, err := app.Storage.ListGames(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.Print(ids)
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	var history bool

	cmd := &cobra.Command{
		Use:   "show <game-id>",
		Short: "Show a stored game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			gameID := model.GameID(args[0])

			if history {
				moves, err := app.GameController.History(cmd.Context(), gameID)
				if err != nil {
					return err
				}
				out.Print(moves)
				return nil
			}

			g, err := app.GameController.GetGame(cmd.Context(), gameID)
			if err != nil {
				return err
			}
			out.Print(g)
			return nil
		},
	}

	cmd.Flags().BoolVar(&history, "history", false, "Show the move history instead of the board")
	return cmd
}

func newLayoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "Show the premium square layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.Print(model.NewBoard())
			return nil
		},
	}
}
