package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mcoot/scrabblegame-go/internal/factory"
)

var (
	cfg    *Config
	logger *slog.Logger
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	v := viper.New()
	defaults := DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "scrabble",
		Short: "Two-player crossword tile game",
		Long: `scrabble runs a two-player crossword tile game in the terminal.

Games can be kept in memory or in Redis so they can be listed and resumed.
Moves are checked against a word list when one is given with --dictionary;
a move that forms an unknown word is challenged off the board.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = loadConfig(v)
			if err != nil {
				return err
			}
			logger, err = newLogger(cfg.Output, cfg.LogLevel, cmd.ErrOrStderr())
			return err
		},
		SilenceUsage: true,
	}

	if err := bindFlags(v, rootCmd.PersistentFlags(), defaults); err != nil {
		panic(err)
	}

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newGamesCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newLayoutCmd())

	return rootCmd
}

func newApp(ctx context.Context) (*factory.App, error) {
	fc := cfg.FactoryConfig()
	fc.Logger = logger
	return factory.New(ctx, fc)
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
