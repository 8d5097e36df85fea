package game

import (
	"context"

	"github.com/mcoot/scrabblegame-go/internal/model"
)

// Judge decides whether a just-played move is successfully challenged.
// A true result means the move is invalid and must be taken back.
type Judge interface {
	Challenge(ctx context.Context, move *model.MoveInfo) bool
}

// NoChallenge is a Judge that never challenges
type NoChallenge struct{}

func (NoChallenge) Challenge(ctx context.Context, move *model.MoveInfo) bool {
	return false
}

// JudgeFunc adapts a function to the Judge interface
type JudgeFunc func(ctx context.Context, move *model.MoveInfo) bool

func (f JudgeFunc) Challenge(ctx context.Context, move *model.MoveInfo) bool {
	return f(ctx, move)
}
