package e2e_test

import (
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/scrabblegame-go/internal/factory"
	"github.com/mcoot/scrabblegame-go/internal/model"
	redisstorage "github.com/mcoot/scrabblegame-go/internal/storage/redis"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	env        []string
}

func newCLIRunner(t *testing.T, env ...string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(t.TempDir(), "scrabble-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/scrabble")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		env:        env,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	cmd := exec.Command(r.binaryPath, args...)
	cmd.Env = append(os.Environ(), r.env...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func (r *cliRunner) runJSON(args ...string) (string, error) {
	return r.run(append(args, "--output", "json")...)
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// seedRedisGame stores a started game with one move played in the given Redis
func seedRedisGame(t *testing.T, redisURL string) model.GameID {
	t.Helper()
	ctx := context.Background()

	redisCfg := redisstorage.DefaultConfig()
	redisCfg.URL = redisURL
	app, err := factory.New(ctx, factory.Config{StorageType: factory.StorageTypeRedis, RedisConfig: &redisCfg})
	require.NoError(t, err)
	defer app.Close()

	g, err := app.GameController.CreateGame(ctx)
	require.NoError(t, err)
	_, err = app.GameController.CreatePlayer(ctx, g.ID, "Ada", 0)
	require.NoError(t, err)
	_, err = app.GameController.CreatePlayer(ctx, g.ID, "Brian", 1)
	require.NoError(t, err)

	g, err = app.GameController.GetGame(ctx, g.ID)
	require.NoError(t, err)

	var letters []rune
	for _, r := range g.Players[0].Frame.Letters() {
		if r != model.Blank && len(letters) < 2 {
			letters = append(letters, r)
		}
	}
	_, err = app.GameController.PlayMove(ctx, g.ID, 0, model.Centre, model.Horizontal, letters)
	require.NoError(t, err)

	return g.ID
}

type boardResponse struct {
	Cells [][]struct {
		LetterMultiplier int `json:"letter_multiplier"`
		WordMultiplier   int `json:"word_multiplier"`
		Tile             *struct {
			Letter rune `json:"letter"`
		} `json:"tile"`
	} `json:"cells"`
}

type gameResponse struct {
	ID      string        `json:"id"`
	State   string        `json:"state"`
	Board   boardResponse `json:"board"`
	Players []struct {
		Name  string `json:"name"`
		Score int    `json:"score"`
	} `json:"players"`
	CurrentPlayerIndex int `json:"current_player_index"`
}

// Tests

func TestCLI_LayoutJSON(t *testing.T) {
	cli := newCLIRunner(t)

	output, err := cli.runJSON("layout")
	require.NoError(t, err, "output: %s", output)

	var board boardResponse
	require.NoError(t, json.Unmarshal([]byte(output), &board))
	require.Len(t, board.Cells, model.BoardSize)
	assert.Equal(t, 2, board.Cells[7][7].WordMultiplier)
	assert.Equal(t, 3, board.Cells[0][0].WordMultiplier)
	assert.Equal(t, 3, board.Cells[1][5].LetterMultiplier)
}

func TestCLI_LayoutText(t *testing.T) {
	cli := newCLIRunner(t)

	output, err := cli.run("layout")
	require.NoError(t, err, "output: %s", output)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	assert.Len(t, lines, model.BoardSize+1)
	assert.Contains(t, output, "#")
	assert.Contains(t, output, "=")
}

func TestCLI_RedisGames(t *testing.T) {
	mr := miniredis.RunT(t)
	redisURL := "redis://" + mr.Addr()
	gameID := seedRedisGame(t, redisURL)

	cli := newCLIRunner(t)
	flags := []string{"--storage", "redis", "--redis-url", redisURL}

	// List
	output, err := cli.runJSON(append([]string{"games"}, flags...)...)
	require.NoError(t, err, "output: %s", output)

	var ids []string
	require.NoError(t, json.Unmarshal([]byte(output), &ids))
	assert.Equal(t, []string{string(gameID)}, ids)

	// Show
	output, err = cli.runJSON(append([]string{"show", string(gameID)}, flags...)...)
	require.NoError(t, err, "output: %s", output)

	var g gameResponse
	require.NoError(t, json.Unmarshal([]byte(output), &g))
	assert.Equal(t, string(gameID), g.ID)
	assert.Equal(t, "in_progress", g.State)
	assert.Equal(t, 1, g.CurrentPlayerIndex)
	require.Len(t, g.Players, 2)
	assert.Equal(t, "Ada", g.Players[0].Name)
	assert.Positive(t, g.Players[0].Score)
	assert.NotNil(t, g.Board.Cells[7][7].Tile)

	// History
	output, err = cli.runJSON(append([]string{"show", string(gameID), "--history"}, flags...)...)
	require.NoError(t, err, "output: %s", output)

	var history []struct {
		PlayerIndex int `json:"player_index"`
		MoveScore   int `json:"move_score"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &history))
	require.Len(t, history, 1)
	assert.Equal(t, 0, history[0].PlayerIndex)
	assert.Equal(t, g.Players[0].Score, history[0].MoveScore)
}

func TestCLI_ConfigFromEnvironment(t *testing.T) {
	mr := miniredis.RunT(t)
	redisURL := "redis://" + mr.Addr()
	gameID := seedRedisGame(t, redisURL)

	cli := newCLIRunner(t,
		"SCRABBLE_STORAGE=redis",
		"SCRABBLE_REDIS_URL="+redisURL,
		"SCRABBLE_OUTPUT=json",
	)

	output, err := cli.run("games")
	require.NoError(t, err, "output: %s", output)

	var ids []string
	require.NoError(t, json.Unmarshal([]byte(output), &ids))
	assert.Equal(t, []string{string(gameID)}, ids)
}

func TestCLI_ErrorHandling(t *testing.T) {
	cli := newCLIRunner(t)

	// Unknown game
	output, err := cli.run("show", "NOPE")
	assert.Error(t, err)
	assert.Contains(t, output, "game not found")

	// Invalid storage
	output, err = cli.run("games", "--storage", "postgres")
	assert.Error(t, err)
	assert.Contains(t, output, "invalid storage")

	// Invalid output format
	output, err = cli.run("layout", "--output", "yaml")
	assert.Error(t, err)
	assert.Contains(t, output, "invalid output")

	// Missing dictionary file
	output, err = cli.run("games", "--dictionary", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
	assert.Contains(t, output, "missing.txt")
}
