package board

import (
	"sort"
	"testing"

	"github.com/notnil/chess"

	"github.com/daystram/negachess/position"
)

func TestGenerateMoves(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		fen       string
		wantMoves int
		wantState State
	}{
		{
			name:      "starting position",
			fen:       DefaultStartingPositionFEN,
			wantMoves: 20,
			wantState: StateRunning,
		},
		{
			name:      "castling rights are ignored",
			fen:       "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			wantMoves: 24, // 5 king, 10 a1 rook, 9 h1 rook
			wantState: StateRunning,
		},
		{
			name:      "en passant target is ignored",
			fen:       "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2",
			wantMoves: 6, // e6 + 5 king
			wantState: StateRunning,
		},
		{
			name:      "promotion",
			fen:       "8/P7/8/8/8/8/8/k6K w - - 0 1",
			wantMoves: 7,
			wantState: StateRunning,
		},
		{
			name:      "promotion by capture",
			fen:       "1n5k/P7/8/8/8/8/8/7K w - - 0 1",
			wantMoves: 11, // a8 and b8 with four pieces each + 3 king
			wantState: StateRunning,
		},
		{
			name:      "pinned piece",
			fen:       "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1",
			wantMoves: 4, // bishop is pinned, king d1 d2 f1 f2
			wantState: StateRunning,
		},
		{
			name:      "check must be answered",
			fen:       "4k3/8/8/8/8/8/3q4/4K3 w - - 0 1",
			wantMoves: 2, // Kxd2 Kf1
			wantState: StateCheck,
		},
		{
			name:      "checkmate",
			fen:       "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w - - 1 3",
			wantMoves: 0,
			wantState: StateCheckmate,
		},
		{
			name:      "stalemate",
			fen:       "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
			wantMoves: 0,
			wantState: StateStalemate,
		},
		{
			name:      "position 3",
			fen:       "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
			wantMoves: 14,
			wantState: StateRunning,
		},
		{
			name:      "position 6",
			fen:       "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
			wantMoves: 46,
			wantState: StateRunning,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, err := NewBoard(WithFEN(tt.fen))
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			mvs := b.GenerateMoves()
			if len(mvs) != tt.wantMoves {
				t.Errorf("unexpected moves: got=%d want=%d %v", len(mvs), tt.wantMoves, mvs)
			}
			if got := b.State(); got != tt.wantState {
				t.Errorf("unexpected state: got=%s want=%s", got, tt.wantState)
			}
		})
	}
}

func TestPromotionOrder(t *testing.T) {
	t.Parallel()
	b, err := NewBoard(WithFEN("8/P7/8/8/8/8/8/k6K w - - 0 1"))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	var got []Piece
	for _, mv := range b.GenerateMoves() {
		if mv.Piece == PiecePawn {
			got = append(got, mv.IsPromote)
		}
	}
	want := []Piece{PieceQueen, PieceRook, PieceKnight, PieceBishop}
	if len(got) != len(want) {
		t.Fatalf("unexpected promotions: got=%v want=%v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("unexpected promotion %d: got=%s want=%s", i, got[i], want[i])
		}
	}
}

func TestApply(t *testing.T) {
	t.Parallel()
	b, err := NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	start := b

	for _, step := range []struct {
		uci     string
		wantFEN string
	}{
		{uci: "e2e4", wantFEN: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1"},
		{uci: "d7d5", wantFEN: "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w - - 0 1"},
		{uci: "e4d5", wantFEN: "rnbqkbnr/ppp1pppp/8/3P4/8/8/PPPP1PPP/RNBQKBNR b - - 0 1"},
		{uci: "d8d5", wantFEN: "rnb1kbnr/ppp1pppp/8/3q4/8/8/PPPP1PPP/RNBQKBNR w - - 0 1"},
	} {
		mv, err := b.FindMove(step.uci)
		if err != nil {
			t.Fatal("unexpected error:", err)
		}
		next := b.Apply(mv)
		if got := next.FEN(); got != step.wantFEN {
			t.Errorf("unexpected FEN after %s: got=%s want=%s", step.uci, got, step.wantFEN)
		}
		b = next
	}

	initial, _ := NewBoard()
	if *start != *initial {
		t.Error("apply mutated the parent board")
	}

	if _, err := b.FindMove("e1e8"); err == nil {
		t.Error("error expected: got=nil")
	}
}

func TestApplyPromotion(t *testing.T) {
	t.Parallel()
	b, err := NewBoard(WithFEN("1n5k/P7/8/8/8/8/8/7K w - - 0 1"))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	mv, err := b.FindMove("a7b8n")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if !mv.IsCapture || mv.IsPromote != PieceKnight {
		t.Errorf("unexpected move flags: %+v", mv)
	}
	if got, want := b.Apply(mv).FEN(), "1N5k/8/8/8/8/8/8/7K b - - 0 1"; got != want {
		t.Errorf("unexpected FEN: got=%s want=%s", got, want)
	}
}

func TestUnknownPiecePanics(t *testing.T) {
	t.Parallel()
	b, _ := NewBoard()
	defer func() {
		if recover() == nil {
			t.Error("panic expected")
		}
	}()
	b.genValidDestination(position.E2, SideWhite, PieceUnknown)
}

// isKingCapturable answers the check question by brute force: the opponent of
// side s is to move in b and can land on the King of s.
func isKingCapturable(b *Board, s Side) bool {
	king := b.pieces[s][PieceKing].LS1B()
	bb := *b
	bb.turn = s.Opposite()
	for _, mv := range bb.GeneratePseudoLegalMoves() {
		if mv.To == king {
			return true
		}
	}
	return false
}

func checkInvariants(t *testing.T, b *Board) {
	t.Helper()
	for _, s := range []Side{SideWhite, SideBlack} {
		var union Bitmap
		for i, p := range Pieces {
			for _, q := range Pieces[i+1:] {
				if b.pieces[s][p]&b.pieces[s][q] != 0 {
					t.Fatalf("%s %s and %s overlap in %s", s, p, q, b.FEN())
				}
			}
			union |= b.pieces[s][p]
		}
		if union != b.sides[s] {
			t.Fatalf("%s side bitmap out of sync in %s", s, b.FEN())
		}
	}
	if b.sides[SideWhite]&b.sides[SideBlack] != 0 {
		t.Fatalf("sides overlap in %s", b.FEN())
	}
	if b.occupied != b.sides[SideWhite]|b.sides[SideBlack] {
		t.Fatalf("occupied bitmap out of sync in %s", b.FEN())
	}
}

// randomWalk plays seeded random games from the starting position and calls
// visit on every reached board.
func randomWalk(t *testing.T, seed uint64, plies int, visit func(*Board)) {
	t.Helper()
	r := NewPseudoRand(seed)
	b, err := NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	for ply := 0; ply < plies; ply++ {
		visit(b)
		mv, ok := b.RandomMove(r)
		if !ok {
			return
		}
		b = b.Apply(mv)
	}
}

func TestRandomWalkInvariants(t *testing.T) {
	t.Parallel()
	for seed := uint64(1); seed <= 20; seed++ {
		randomWalk(t, seed, 150, func(b *Board) {
			checkInvariants(t, b)
			if got, want := b.IsKingChecked(b.turn), isKingCapturable(b, b.turn); got != want {
				t.Fatalf("unexpected check: got=%v want=%v in %s", got, want, b.FEN())
			}
			if b.IsKingChecked(b.turn.Opposite()) {
				t.Fatalf("side not to move is in check in %s", b.FEN())
			}
		})
	}
}

func TestLegalityAgainstBruteForce(t *testing.T) {
	t.Parallel()
	for seed := uint64(100); seed < 110; seed++ {
		randomWalk(t, seed, 80, func(b *Board) {
			for _, mv := range b.GeneratePseudoLegalMoves() {
				next := b.Apply(mv)
				checkInvariants(t, next)
				if got, want := b.IsLegal(mv), !isKingCapturable(next, b.turn); got != want {
					t.Fatalf("unexpected legality of %s: got=%v want=%v in %s", mv.UCI(), got, want, b.FEN())
				}
			}
		})
	}
}

func TestMovesAgainstReference(t *testing.T) {
	t.Parallel()
	for seed := uint64(1000); seed < 1010; seed++ {
		randomWalk(t, seed, 100, func(b *Board) {
			opt, err := chess.FEN(b.FEN())
			if err != nil {
				t.Fatalf("reference rejected %s: %v", b.FEN(), err)
			}
			game := chess.NewGame(opt)

			var want []string
			for _, mv := range game.ValidMoves() {
				want = append(want, mv.String())
			}
			var got []string
			for _, mv := range b.GenerateMoves() {
				got = append(got, mv.UCI())
			}
			sort.Strings(want)
			sort.Strings(got)

			if len(got) != len(want) {
				t.Fatalf("unexpected moves in %s:\ngot=%v\nwant=%v", b.FEN(), got, want)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("unexpected moves in %s:\ngot=%v\nwant=%v", b.FEN(), got, want)
				}
			}
		})
	}
}
