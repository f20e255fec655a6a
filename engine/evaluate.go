package engine

import (
	"github.com/daystram/negachess/board"
)

const (
	// ScoreCheckmate is the score of a side without legal moves. Stalemate is
	// scored the same way.
	ScoreCheckmate int32 = -1_000_000

	scoreCenter   int32 = 5
	scoreMobility int32 = 5
)

var (
	scoreMaterial = [6 + 1]int32{
		board.PiecePawn:   100,
		board.PieceKnight: 300,
		board.PieceBishop: 300,
		board.PieceRook:   500,
		board.PieceQueen:  900,
	}
)

// Evaluate returns the static score of b, positive when it favors the side to
// move. It does not modify b.
func Evaluate(b *board.Board) int32 {
	return evaluateMaterial(b) + evaluateCenter(b) + evaluateMobility(b)
}

func evaluateMaterial(b *board.Board) int32 {
	us, them := b.Turn(), b.Turn().Opposite()
	var score int32
	for _, p := range board.Pieces {
		count := int32(b.GetBitmap(us, p).BitCount()) - int32(b.GetBitmap(them, p).BitCount())
		score += scoreMaterial[p] * count
	}
	return score
}

func evaluateCenter(b *board.Board) int32 {
	return scoreCenter * int32(b.GetCenterBitmap(b.Turn()).BitCount())
}

func evaluateMobility(b *board.Board) int32 {
	n := len(b.GenerateMoves())
	if n == 0 {
		return ScoreCheckmate
	}
	return scoreMobility * int32(n)
}
