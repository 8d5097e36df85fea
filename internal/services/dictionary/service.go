package dictionary

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mcoot/scrabblegame-go/internal/model"
	"github.com/mcoot/scrabblegame-go/internal/storage"
)

// Service provides dictionary/word validation functionality.
// It acts as the challenge judge for played moves.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu     sync.RWMutex
	words  map[string]struct{}
	loaded bool
}

// New creates a new DictionaryService
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
		words:   make(map[string]struct{}),
	}
}

// LoadFromStorage loads dictionary words from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetDictionaryWords(ctx)
	if err != nil {
		return err
	}
	return s.loadWords(words)
}

// LoadFromFile loads dictionary words from a file (one word per line)
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	// Save to storage for future use
	if err := s.storage.SaveDictionaryWords(ctx, words); err != nil {
		return err
	}

	s.logger.Info("dictionary loaded",
		slog.String("path", path),
		slog.Int("word_count", len(words)),
	)

	return s.loadWords(words)
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) error {
	return s.loadWords(words)
}

func (s *Service) loadWords(words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.words = make(map[string]struct{}, len(words))
	for _, word := range words {
		// Store upper case to match board letters
		s.words[strings.ToUpper(word)] = struct{}{}
	}
	s.loaded = true
	return nil
}

// IsValidWord checks if a word exists in the dictionary
// Words must be at least 2 characters
func (s *Service) IsValidWord(word string) bool {
	if len(word) < 2 {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return false
	}

	_, ok := s.words[strings.ToUpper(word)]
	return ok
}

// IsLoaded returns whether the dictionary has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of words in the dictionary
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// InvalidWords returns the words formed by a move that are not in the dictionary.
// Single letters are never checked.
func (s *Service) InvalidWords(move *model.MoveInfo) []string {
	var invalid []string
	for _, word := range move.WordStrings() {
		if len(word) < 2 {
			continue
		}
		if !s.IsValidWord(word) {
			invalid = append(invalid, word)
		}
	}
	return invalid
}

// Challenge reports whether a move is successfully challenged, i.e. it
// formed at least one word missing from the dictionary. Without a loaded
// dictionary no move can be challenged.
func (s *Service) Challenge(ctx context.Context, move *model.MoveInfo) bool {
	if !s.IsLoaded() {
		return false
	}
	invalid := s.InvalidWords(move)
	if len(invalid) == 0 {
		return false
	}
	s.logger.Info("move challenged",
		slog.String("move_id", move.ID),
		slog.String("invalid_words", strings.Join(invalid, ",")),
	)
	return true
}

// Interface check
type ServiceInterface interface {
	IsValidWord(word string) bool
	IsLoaded() bool
	WordCount() int
	InvalidWords(move *model.MoveInfo) []string
	Challenge(ctx context.Context, move *model.MoveInfo) bool
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, path string) error
	LoadWords(words []string) error
}

var _ ServiceInterface = (*Service)(nil)

// ErrDictionaryNotLoaded is returned when operations are attempted before loading
var ErrDictionaryNotLoaded = model.ErrDictionaryNotLoaded
