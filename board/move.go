package board

import "github.com/daystram/negachess/position"

type Move struct {
	From, To position.Pos
	Piece    Piece

	IsTurn    Side
	IsCapture bool
	IsPromote Piece
}

func (m Move) String() string {
	return m.Algebra()
}

func (m Move) Algebra() string {
	nt := m.Piece.SymbolAlgebra(SideWhite) // SideWhite because it returns capital symbols
	if m.IsCapture {
		if m.Piece == PiecePawn {
			nt += m.From.X().NotationComponentX()
		} else {
			nt += m.From.Notation()
		}
		nt += "x"
	}
	nt += m.To.Notation()
	if m.IsPromote != PieceUnknown {
		nt += "=" + m.IsPromote.SymbolAlgebra(SideWhite)
	}
	return nt
}

func (m Move) UCI() string {
	if m.IsNull() {
		return "0000"
	}
	return m.From.Notation() + m.To.Notation() + m.IsPromote.SymbolAlgebra(SideBlack)
}

func (m Move) IsNull() bool {
	return m.Piece == PieceUnknown
}

// Equals compares the source, destination and promotion of both moves.
func (m Move) Equals(n Move) bool {
	return m.From == n.From && m.To == n.To && m.IsPromote == n.IsPromote
}
