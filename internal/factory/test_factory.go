package factory

import (
	"time"

	"github.com/mcoot/scrabblegame-go/internal/dependencies/mocks"
	"github.com/mcoot/scrabblegame-go/internal/storage/memory"
	"github.com/mcoot/scrabblegame-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// The mock random never shuffles, so the pool deals blanks first, then A to Z.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestDictionary loads a small dictionary for testing
func (t *TestApp) LoadTestDictionary() error {
	words := []string{
		// 2-letter words
		"aa", "ab", "ad", "ae", "ba", "be", "da", "de", "ea", "ed",
		"at", "ta", "to", "go", "do", "no", "on", "so", "is", "it",
		// 3-letter words
		"abb", "abs", "add", "ace", "bad", "bed", "bee", "cab", "cad", "dab",
		"dad", "ebb", "fab", "fad", "fee", "cat", "act", "bat", "tab", "tea",
		"eat", "ate", "dog", "god", "cog", "bog", "bed", "fed", "zed", "qat",
		// 4-letter words
		"abed", "aced", "babe", "bade", "bead", "cade", "dace", "dead", "deed", "face",
		"fade", "feed", "cats", "acts", "bats", "tabs", "dogs", "gods", "cabs", "beds",
		// 5-letter words
		"abide", "based", "beach", "ceded", "decade", "faced", "faded", "cadet", "ached", "acted",
	}
	return t.DictionaryService.LoadWords(words)
}
