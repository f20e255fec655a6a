package board

import (
	"github.com/daystram/negachess/position"
)

// Sliding attacks use kindergarten bitboards: the occupancy of the line through
// pos is gathered onto the 8th rank by a multiplication, looked up in
// firstRankMoves, and spread back over the line by a second multiplication.

func HitDiagonals(pos position.Pos, occupied Bitmap) Bitmap {
	return hitDiagonal(pos, occupied) | hitAntiDiagonal(pos, occupied)
}

func HitLaterals(pos position.Pos, occupied Bitmap) Bitmap {
	return hitRank(pos, occupied) | hitFile(pos, occupied)
}

func hitRank(pos position.Pos, occupied Bitmap) Bitmap {
	line := maskRow[pos.Y()]
	index := ((occupied & line) * magicFileA) >> magicShift
	return (Bitmap(firstRankMoves[pos.X()][index]) * magicFileA) & line
}

func hitDiagonal(pos position.Pos, occupied Bitmap) Bitmap {
	line := maskDia[pos]
	index := ((occupied & line) * magicFileA) >> magicShift
	return (Bitmap(firstRankMoves[pos.X()][index]) * magicFileA) & line
}

func hitAntiDiagonal(pos position.Pos, occupied Bitmap) Bitmap {
	line := maskADia[pos]
	index := ((occupied & line) * magicFileA) >> magicShift
	return (Bitmap(firstRankMoves[pos.X()][index]) * magicFileA) & line
}

// hitFile moves the file onto file A, where the diagonal multiplier maps rank r
// to bit 7-r of the index. The result comes back on file H and is shifted home.
func hitFile(pos position.Pos, occupied Bitmap) Bitmap {
	x := pos.X()
	index := (((occupied >> x) & maskCol[position.FileA]) * magicDiagA1H8) >> magicShift
	mvs := Bitmap(firstRankMoves[pos.Y()^7][index]) * magicDiagA1H8
	return (mvs & maskCol[position.FileH]) >> (x ^ 7)
}
