package board

import (
	"fmt"

	"github.com/daystram/negachess/position"
)

// GenerateMoves returns the legal moves of the side to move.
func (b *Board) GenerateMoves() []Move {
	mvs := b.GeneratePseudoLegalMoves()
	legal := mvs[:0]
	for _, mv := range mvs {
		if b.IsLegal(mv) {
			legal = append(legal, mv)
		}
	}
	return legal
}

// GeneratePseudoLegalMoves returns the moves of the side to move that follow
// piece movement rules, ignoring whether the mover's King is left attacked.
func (b *Board) GeneratePseudoLegalMoves() []Move {
	mvs := make([]Move, 0, 64)
	s := b.turn
	for _, p := range Pieces {
		fromBM := b.pieces[s][p]
		for fromBM != 0 {
			from := fromBM.PopLS1B()
			mvs = b.appendMoves(mvs, s, p, from)
		}
	}
	return mvs
}

func (b *Board) appendMoves(mvs []Move, s Side, p Piece, from position.Pos) []Move {
	them := b.sides[s.Opposite()]
	toBM := b.genValidDestination(from, s, p)
	for toBM != 0 {
		to := toBM.PopLS1B()
		mv := Move{
			From:      from,
			To:        to,
			Piece:     p,
			IsTurn:    s,
			IsCapture: them.IsSet(to),
		}
		// see if promotion is expected
		if p == PiecePawn && maskPromotion[s].IsSet(to) {
			for _, prom := range PawnPromoteCandidates {
				mv.IsPromote = prom
				mvs = append(mvs, mv)
			}
			continue
		}
		mvs = append(mvs, mv)
	}
	return mvs
}

// genValidDestination generates the bitmap for the next valid positions.
// This generate function is not strictly legal (e.g., king may be left in check).
func (b *Board) genValidDestination(from position.Pos, s Side, p Piece) Bitmap {
	own := b.sides[s]
	switch p {
	case PiecePawn:
		var move1, move2 Bitmap
		if s == SideWhite {
			move1 = ShiftN(maskCell[from]) &^ b.occupied
			move2 = ShiftN(move1&maskDoublePush[s]) &^ b.occupied
		} else {
			move1 = ShiftS(maskCell[from]) &^ b.occupied
			move2 = ShiftS(move1&maskDoublePush[s]) &^ b.occupied
		}
		capture := maskPawnAttack[s][from] & b.sides[s.Opposite()]
		return move1 | move2 | capture
	case PieceKnight:
		return maskKnight[from] &^ own
	case PieceBishop:
		return HitDiagonals(from, b.occupied) &^ own
	case PieceRook:
		return HitLaterals(from, b.occupied) &^ own
	case PieceQueen:
		return (HitDiagonals(from, b.occupied) | HitLaterals(from, b.occupied)) &^ own
	case PieceKing:
		return maskKing[from] &^ own
	default:
		panic(fmt.Sprintf("board: unknown piece %d at %s", p, from))
	}
}

// IsLegal reports whether mv, a pseudo-legal move of the side to move, keeps
// the mover's King out of check.
func (b *Board) IsLegal(mv Move) bool {
	bb := *b
	bb.apply(mv)
	return !bb.IsKingChecked(b.turn)
}

// IsKingChecked reports whether the King of side s is attacked. Attacks are
// symmetric, so each piece kind's attack set is cast from the King's square
// and intersected with the opponent's pieces of that kind.
func (b *Board) IsKingChecked(s Side) bool {
	kingBM := b.pieces[s][PieceKing]
	if kingBM == 0 {
		return false
	}
	pos := kingBM.LS1B()
	opp := &b.pieces[s.Opposite()]

	pawnHit := maskPawnAttack[s][pos]&opp[PiecePawn] != 0
	knightHit := maskKnight[pos]&opp[PieceKnight] != 0
	kingHit := maskKing[pos]&opp[PieceKing] != 0
	diagonalHit := HitDiagonals(pos, b.occupied)&(opp[PieceBishop]|opp[PieceQueen]) != 0
	lateralHit := HitLaterals(pos, b.occupied)&(opp[PieceRook]|opp[PieceQueen]) != 0

	return pawnHit || knightHit || kingHit || diagonalHit || lateralHit
}

// FindMove returns the legal move matching the given UCI notation, e.g. e2e4 or e7e8q.
func (b *Board) FindMove(uci string) (Move, error) {
	for _, mv := range b.GenerateMoves() {
		if mv.UCI() == uci {
			return mv, nil
		}
	}
	return Move{}, fmt.Errorf("%w: %s", ErrInvalidMove, uci)
}
