package scoring

import (
	"github.com/samber/lo"

	"github.com/mcoot/scrabblegame-go/internal/model"
)

// BingoBonus is awarded for playing every tile of a full frame in one move
const BingoBonus = 50

// Result is the score breakdown of one placement
type Result struct {
	Words []model.FormedWord
	Bingo bool
	Total int
}

// Service computes move scores and end-of-game adjustments
type Service struct{}

// New creates a new ScoringService
func New() *Service {
	return &Service{}
}

// ScorePlacement scores a move whose tiles are already on the board but whose
// new cells have not yet had their premiums consumed.
// newCells are the cells the move filled; every other cell in a formed word
// counts at face value.
func (s *Service) ScorePlacement(board *model.Board, word *model.Word, newCells []model.Position) Result {
	isNew := make(map[model.Position]bool, len(newCells))
	for _, pos := range newCells {
		isNew[pos] = true
	}

	result := Result{Words: []model.FormedWord{}}

	// Cross words: one per new tile that touches tiles across the move
	cross := word.Direction().Perpendicular()
	for _, pos := range newCells {
		start, cells := s.run(board, pos, cross)
		if len(cells) < 2 {
			continue
		}
		fw := s.scoreRun(board, cells, isNew)
		fw.Start = start
		fw.Dir = cross
		result.Words = append(result.Words, fw)
	}

	// Primary word, including any tiles already adjacent to either end
	start, cells := s.run(board, word.Start(), word.Direction())
	if len(cells) >= 2 || len(result.Words) == 0 {
		primary := s.scoreRun(board, cells, isNew)
		primary.Start = start
		primary.Dir = word.Direction()
		primary.Primary = true
		result.Words = append([]model.FormedWord{primary}, result.Words...)
	}

	result.Total = lo.SumBy(result.Words, func(w model.FormedWord) int {
		return w.Score
	})
	if len(newCells) == model.FrameCapacity {
		result.Bingo = true
		result.Total += BingoBonus
	}
	return result
}

// run returns the maximal contiguous line of occupied cells through pos
func (s *Service) run(board *model.Board, pos model.Position, dir model.Direction) (model.Position, []model.Position) {
	start := pos
	for {
		prev := start.Step(dir, -1)
		if board.IsEmpty(prev) {
			break
		}
		start = prev
	}

	var cells []model.Position
	for cur := start; !board.IsEmpty(cur); cur = cur.Step(dir, 1) {
		cells = append(cells, cur)
	}
	return start, cells
}

// scoreRun applies premiums only on new cells whose premium is unused
func (s *Service) scoreRun(board *model.Board, cells []model.Position, isNew map[model.Position]bool) model.FormedWord {
	letters := make([]rune, 0, len(cells))
	sum := 0
	wordMultiplier := 1
	for _, pos := range cells {
		cell := board.Cell(pos)
		letters = append(letters, cell.Tile.Letter)
		value := cell.Tile.Value()
		if isNew[pos] {
			value *= cell.EffectiveLetterMultiplier()
			wordMultiplier *= cell.EffectiveWordMultiplier()
		}
		sum += value
	}
	return model.FormedWord{
		Word:  string(letters),
		Score: sum * wordMultiplier,
	}
}

// FinalAdjustments applies end-of-game scoring: each player loses the value
// of the tiles left in their frame, and a player who went out gains the
// total of the others' remaining tiles.
// It returns the adjustment applied to each player.
func (s *Service) FinalAdjustments(players [model.NumPlayers]*model.Player) [model.NumPlayers]int {
	var adjustments [model.NumPlayers]int
	outIdx := -1
	remaining := 0
	for i, p := range players {
		left := p.Frame.Value()
		adjustments[i] = -left
		remaining += left
		if p.Frame.IsEmpty() {
			outIdx = i
		}
	}
	if outIdx >= 0 {
		adjustments[outIdx] = remaining
	}
	for i, p := range players {
		p.AddScore(adjustments[i])
	}
	return adjustments
}

// DetermineWinner returns the index of the highest scoring player, or -1 on a tie
func (s *Service) DetermineWinner(players [model.NumPlayers]*model.Player) int {
	best := -1
	bestScore := 0
	tie := false
	for i, p := range players {
		switch {
		case best == -1 || p.Score > bestScore:
			best = i
			bestScore = p.Score
			tie = false
		case p.Score == bestScore:
			tie = true
		}
	}
	if tie {
		return -1
	}
	return best
}

// Interface for dependency injection
type ServiceInterface interface {
	ScorePlacement(board *model.Board, word *model.Word, newCells []model.Position) Result
	FinalAdjustments(players [model.NumPlayers]*model.Player) [model.NumPlayers]int
	DetermineWinner(players [model.NumPlayers]*model.Player) int
}

var _ ServiceInterface = (*Service)(nil)
