package engine

import (
	"errors"
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/negachess/board"
)

const (
	ScoreInfinite int32 = math.MaxInt32
)

var (
	ErrNoLegalMoves = errors.New("no legal moves")
	ErrInvalidDepth = errors.New("invalid depth")
)

func DefaultLogger(a ...any) {
	fmt.Println(a...)
}

type EngineConfig struct {
	Logger func(...any)
	Debug  bool
}

// Engine runs fixed-depth negamax searches and keeps statistics of the last
// one. An Engine is not safe for concurrent use.
type Engine struct {
	logger func(...any)
	debug  bool

	nodes       uint64
	elapsedTime time.Duration
}

func NewEngine(cfg *EngineConfig) *Engine {
	if cfg.Logger == nil {
		cfg.Logger = DefaultLogger
	}

	return &Engine{
		logger: cfg.Logger,
		debug:  cfg.Debug,
	}
}

// BestMove returns the move with the highest negamax score at the given depth.
func BestMove(b *board.Board, depth uint8) (board.Move, error) {
	e := NewEngine(&EngineConfig{Logger: func(...any) {}})
	mv, _, err := e.bestMove(b, depth)
	return mv, err
}

// Negamax returns the negamax score of b searched to the given depth.
func Negamax(b *board.Board, depth uint8) int32 {
	e := NewEngine(&EngineConfig{Logger: func(...any) {}})
	return e.negamax(b, depth)
}

// Search finds the best move of b at the given depth and reports it through
// the configured logger.
func (e *Engine) Search(b *board.Board, depth uint8) (board.Move, error) {
	e.nodes = 0
	startTime := time.Now()
	mv, score, err := e.bestMove(b, depth)
	e.elapsedTime = time.Since(startTime)
	if err != nil {
		return board.Move{}, err
	}

	nps := float64(e.nodes) / (e.elapsedTime + 1).Seconds()
	if e.debug {
		e.logger(message.NewPrinter(language.English).
			Sprintf("depth:%d [%s] nodes:%d (%.0fn/s) t:%s\n    %s",
				depth, formatScoreDebug(score), e.nodes, nps, e.elapsedTime, mv))
	} else {
		e.logger(fmt.Sprintf("info depth %d score %s time %d nodes %d nps %.0f pv %s",
			depth, formatScoreUCI(score), e.elapsedTime.Milliseconds(), e.nodes, nps, mv.UCI()))
	}
	return mv, nil
}

// Nodes returns the number of positions visited by the last search.
func (e *Engine) Nodes() uint64 {
	return e.nodes
}

func (e *Engine) bestMove(b *board.Board, depth uint8) (board.Move, int32, error) {
	if depth == 0 {
		return board.Move{}, 0, fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}
	e.nodes++

	var bestMove board.Move
	bestScore := -ScoreInfinite
	for _, mv := range b.GenerateMoves() {
		score := -e.negamax(b.Apply(mv), depth-1)
		if score > bestScore {
			bestMove = mv
			bestScore = score
		}
	}
	if bestMove.IsNull() {
		return board.Move{}, ScoreCheckmate, ErrNoLegalMoves
	}
	return bestMove, bestScore, nil
}

// For a given board, regardless turn, we always want to maximize the score.
func (e *Engine) negamax(b *board.Board, depth uint8) int32 {
	e.nodes++

	// check if leaf reached
	if depth == 0 {
		return Evaluate(b)
	}

	mvs := b.GenerateMoves()
	if len(mvs) == 0 {
		return ScoreCheckmate
	}

	bestScore := -ScoreInfinite
	for _, mv := range mvs {
		bestScore = max(bestScore, -e.negamax(b.Apply(mv), depth-1))
	}
	return bestScore
}

func max[T constraints.Ordered](x1, x2 T) T {
	if x1 > x2 {
		return x1
	}
	return x2
}

func formatScoreDebug(s int32) string {
	if s >= -ScoreCheckmate/2 {
		return "#+"
	}
	if s <= ScoreCheckmate/2 {
		return "#-"
	}
	if s > 0 {
		return fmt.Sprintf("+%.2f", float64(s)/100)
	}
	if s < 0 {
		return fmt.Sprintf("%.2f", float64(s)/100)
	}
	return "0"
}

func formatScoreUCI(s int32) string {
	return fmt.Sprintf("cp %d", s)
}
