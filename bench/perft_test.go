package bench

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/daystram/negachess/board"
)

// Castling and en passant are not modeled, so only depths where neither can
// occur are taken from https://www.chessprogramming.org/Perft_Results.
var perftTests = map[string][]struct {
	depth     int
	wantNodes uint64
	onlyNodes bool
	wantCap   uint64
	wantPro   uint64
	wantChk   uint64
}{
	board.DefaultStartingPositionFEN: {
		{
			depth:     0,
			wantNodes: 1,
		},
		{
			depth:     1,
			wantNodes: 20,
		},
		{
			depth:     2,
			wantNodes: 400,
		},
		{
			depth:     3,
			wantNodes: 8_902,
			wantCap:   34,
			wantChk:   12,
		},
		{
			depth:     4,
			wantNodes: 197_281,
			wantCap:   1_576,
			wantChk:   469,
		},
	},
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1": {
		{
			depth:     1,
			wantNodes: 14,
			wantCap:   1,
			wantChk:   2,
		},
		{
			depth:     2,
			wantNodes: 191,
			wantCap:   14,
			wantChk:   10,
		},
	},
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10": {
		{
			depth:     1,
			wantNodes: 46,
			onlyNodes: true,
		},
		{
			depth:     2,
			wantNodes: 2_079,
			onlyNodes: true,
		},
		{
			depth:     3,
			wantNodes: 89_890,
			onlyNodes: true,
		},
	},
	"8/P7/8/8/8/8/8/k6K w - - 0 1": {
		{
			depth:     1,
			wantNodes: 7,
			wantPro:   4,
			wantChk:   2, // a8=Q and a8=R
		},
	},
}

func TestPerft(t *testing.T) {
	t.Parallel()
	for fen, constraints := range perftTests {
		for _, tt := range constraints {
			fen, tt := fen, tt
			t.Run(fmt.Sprintf("perft(%d): %s", tt.depth, fen), func(t *testing.T) {
				t.Parallel()
				b, err := board.NewBoard(board.WithFEN(fen))
				if err != nil {
					t.Fatal("unexpected error:", err)
				}
				if got := Perft(b, tt.depth); got != tt.wantNodes {
					t.Errorf("unexpected nodes: got=%d want=%d", got, tt.wantNodes)
				}
			})
		}
	}
}

func TestRun(t *testing.T) {
	t.Parallel()
	for fen, constraints := range perftTests {
		for _, tt := range constraints {
			for _, parallel := range []bool{false, true} {
				fen, tt, parallel := fen, tt, parallel
				t.Run(fmt.Sprintf("run(%d, parallel=%v): %s", tt.depth, parallel, fen), func(t *testing.T) {
					t.Parallel()
					st, err := Run(tt.depth, fen, parallel, false, nil)
					if err != nil {
						t.Fatal("unexpected error:", err)
					}
					if st.Nodes != tt.wantNodes {
						t.Errorf("unexpected nodes: got=%d want=%d", st.Nodes, tt.wantNodes)
					}
					if !tt.onlyNodes {
						if st.Captures != tt.wantCap {
							t.Errorf("unexpected cap: got=%d want=%d", st.Captures, tt.wantCap)
						}
						if st.Promotions != tt.wantPro {
							t.Errorf("unexpected pro: got=%d want=%d", st.Promotions, tt.wantPro)
						}
						if st.Checks != tt.wantChk {
							t.Errorf("unexpected chk: got=%d want=%d", st.Checks, tt.wantChk)
						}
					}
				})
			}
		}
	}
}

func TestRunDivide(t *testing.T) {
	t.Parallel()
	out := make(chan string, 64)
	st, err := Run(2, board.DefaultStartingPositionFEN, true, true, out)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	close(out)

	var lines []string
	for s := range out {
		lines = append(lines, s)
	}
	if len(lines) != 20+1 {
		t.Fatalf("unexpected lines: got=%d want=%d", len(lines), 20+1)
	}
	if lines[0] != "a2a3: 20" {
		t.Errorf("unexpected divide line: got=%q want=%q", lines[0], "a2a3: 20")
	}
	for _, l := range lines[:20] {
		if !strings.HasSuffix(l, ": 20") {
			t.Errorf("unexpected divide line: %q", l)
		}
	}
	if want := "d=2 nodes=400 "; !strings.HasPrefix(lines[20], want) {
		t.Errorf("unexpected summary: got=%q want prefix %q", lines[20], want)
	}
	if st.Nodes != 400 {
		t.Errorf("unexpected nodes: got=%d want=%d", st.Nodes, 400)
	}
}

func TestRunErrors(t *testing.T) {
	t.Parallel()
	if _, err := Run(-1, board.DefaultStartingPositionFEN, false, false, nil); !errors.Is(err, ErrInvalidDepth) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrInvalidDepth)
	}
	if _, err := Run(1, "8/8/8/8/8/8/8/8 w - - 0 1", false, false, nil); !errors.Is(err, board.ErrInvalidFEN) {
		t.Errorf("unexpected error: got=%v want=%v", err, board.ErrInvalidFEN)
	}
}
