package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/scrabblegame-go/internal/dependencies/clock"
	"github.com/mcoot/scrabblegame-go/internal/dependencies/random"
	"github.com/mcoot/scrabblegame-go/internal/model"
	"github.com/mcoot/scrabblegame-go/internal/services/board"
	"github.com/mcoot/scrabblegame-go/internal/services/dictionary"
	"github.com/mcoot/scrabblegame-go/internal/services/game"
	"github.com/mcoot/scrabblegame-go/internal/services/scoring"
	"github.com/mcoot/scrabblegame-go/internal/storage"
	"github.com/mcoot/scrabblegame-go/internal/storage/memory"
	redisstorage "github.com/mcoot/scrabblegame-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	Logger *slog.Logger

	// Services
	DictionaryService *dictionary.Service
	BoardService      *board.Service
	ScoringService    *scoring.Service
	GameController    *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// DictionaryPath is the path to the dictionary file (optional)
	// If empty, the dictionary is loaded from storage if present there;
	// with no dictionary, moves are never challenged
	DictionaryPath string
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	app := newWithDependencies(store, clock.New(), random.New(), logger)

	if err := app.loadDictionary(ctx, cfg.DictionaryPath); err != nil {
		_ = app.Close()
		return nil, err
	}
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	// Create services
	dictService := dictionary.New(store, logger)
	scoringService := scoring.New()
	boardService := board.New(scoringService, logger)
	// The dictionary never challenges until it has been loaded
	gameController := game.NewController(store, boardService, scoringService, dictService, clk, rnd, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		Logger:            logger,
		DictionaryService: dictService,
		BoardService:      boardService,
		ScoringService:    scoringService,
		GameController:    gameController,
	}
}

func (a *App) loadDictionary(ctx context.Context, path string) error {
	if path != "" {
		return a.DictionaryService.LoadFromFile(ctx, path)
	}

	// A previously loaded word list may be in storage
	err := a.DictionaryService.LoadFromStorage(ctx)
	if errors.Is(err, model.ErrDictionaryNotLoaded) {
		a.Logger.Info("no dictionary loaded, moves will not be challenged")
		return nil
	}
	return err
}

// Close releases storage connections
func (a *App) Close() error {
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
