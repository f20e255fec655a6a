package bench

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/negachess/board"
)

var ErrInvalidDepth = errors.New("invalid depth")

// Stats counts the leaves of a perft tree and the moves that reached them.
type Stats struct {
	Nodes      uint64
	Captures   uint64
	Promotions uint64
	Checks     uint64
}

func (s *Stats) add(o Stats) {
	s.Nodes += o.Nodes
	s.Captures += o.Captures
	s.Promotions += o.Promotions
	s.Checks += o.Checks
}

// Perft counts the leaf nodes of the legal move tree of b at the given depth.
func Perft(b *board.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	mvs := b.GenerateMoves()
	if depth == 1 {
		return uint64(len(mvs))
	}

	var sum uint64
	for _, mv := range mvs {
		sum += Perft(b.Apply(mv), depth-1)
	}
	return sum
}

// Run walks the tree of fen to the given depth and reports the result to out.
// With verbose set, the leaf count below every root move is reported first.
// With parallel set, root moves are walked concurrently.
func Run(depth int, fen string, parallel, verbose bool, out chan string) (Stats, error) {
	if depth < 0 {
		return Stats{}, fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return Stats{}, err
	}

	start := time.Now()
	var st Stats
	if depth == 0 {
		st.Nodes = 1
	} else {
		mvs := b.GenerateMoves()
		divide := make([]Stats, len(mvs))
		if parallel {
			runDivideParallel(b, depth, mvs, divide)
		} else {
			for i, mv := range mvs {
				runPerft(b.Apply(mv), depth-1, mv, &divide[i])
			}
		}
		for i, mv := range mvs {
			if verbose && out != nil {
				out <- fmt.Sprintf("%s: %d", mv.UCI(), divide[i].Nodes)
			}
			st.add(divide[i])
		}
	}
	elapsed := time.Since(start)

	if out != nil {
		out <- message.NewPrinter(language.English).
			Sprintf("d=%d nodes=%d rate=%dn/s cap=%d pro=%d chk=%d (%.3fs elapsed)",
				depth, st.Nodes, int(float64(st.Nodes)/(elapsed+1).Seconds()),
				st.Captures, st.Promotions, st.Checks, elapsed.Seconds())
	}
	return st, nil
}

func runDivideParallel(b *board.Board, depth int, mvs []board.Move, divide []Stats) {
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, mv := range mvs {
		i, mv := i, mv
		g.Go(func() error {
			runPerft(b.Apply(mv), depth-1, mv, &divide[i])
			return nil
		})
	}
	_ = g.Wait()
}

// runPerft accumulates into st the leaves below b, which was reached by last.
func runPerft(b *board.Board, d int, last board.Move, st *Stats) {
	if d == 0 {
		st.Nodes++
		if last.IsCapture {
			st.Captures++
		}
		if last.IsPromote != board.PieceUnknown {
			st.Promotions++
		}
		if b.IsKingChecked(b.Turn()) {
			st.Checks++
		}
		return
	}

	for _, mv := range b.GenerateMoves() {
		runPerft(b.Apply(mv), d-1, mv, st)
	}
}
