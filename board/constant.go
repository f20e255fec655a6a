package board

import (
	"github.com/daystram/negachess/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = position.TotalCells

	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

	// kindergarten multipliers, the line occupancy lands on the 8th rank
	magicFileA    Bitmap = 0x_01_01_01_01_01_01_01_01
	magicDiagA1H8 Bitmap = 0x_80_40_20_10_08_04_02_01
	magicShift           = 56
)

var (
	maskCol = [Width]Bitmap{
		position.FileA: 0x_01_01_01_01_01_01_01_01,
		position.FileB: 0x_02_02_02_02_02_02_02_02,
		position.FileC: 0x_04_04_04_04_04_04_04_04,
		position.FileD: 0x_08_08_08_08_08_08_08_08,
		position.FileE: 0x_10_10_10_10_10_10_10_10,
		position.FileF: 0x_20_20_20_20_20_20_20_20,
		position.FileG: 0x_40_40_40_40_40_40_40_40,
		position.FileH: 0x_80_80_80_80_80_80_80_80,
	}
	maskRow = [Height]Bitmap{
		position.Rank1: 0x_00_00_00_00_00_00_00_FF,
		position.Rank2: 0x_00_00_00_00_00_00_FF_00,
		position.Rank3: 0x_00_00_00_00_00_FF_00_00,
		position.Rank4: 0x_00_00_00_00_FF_00_00_00,
		position.Rank5: 0x_00_00_00_FF_00_00_00_00,
		position.Rank6: 0x_00_00_FF_00_00_00_00_00,
		position.Rank7: 0x_00_FF_00_00_00_00_00_00,
		position.Rank8: 0x_FF_00_00_00_00_00_00_00,
	}
	maskCenter = Union(maskRow[position.Rank4], maskRow[position.Rank5]) &
		Union(maskCol[position.FileD], maskCol[position.FileE])

	maskPromotion = [2 + 1]Bitmap{
		SideWhite: maskRow[position.Rank8],
		SideBlack: maskRow[position.Rank1],
	}
	// squares a single pawn push lands on when a double push is still available
	maskDoublePush = [2 + 1]Bitmap{
		SideWhite: maskRow[position.Rank3],
		SideBlack: maskRow[position.Rank6],
	}

	maskCell       = initMaskCell()
	maskDia        [TotalCells]Bitmap
	maskADia       [TotalCells]Bitmap
	maskKnight     [TotalCells]Bitmap
	maskKing       [TotalCells]Bitmap
	maskPawnAttack [2 + 1][TotalCells]Bitmap

	// firstRankMoves[x][occupancy] holds the sliding moves along a single
	// rank from file x, given the rank's occupancy byte.
	firstRankMoves [Width][256]uint8
)

func init() {
	initMask()
	initAttack()
	initFirstRankMoves()
}

func initMaskCell() [TotalCells]Bitmap {
	var m [TotalCells]Bitmap
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		m[pos] = 1 << pos
	}
	return m
}

func initMask() {
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		mask := Bitmap(0)
		x, y := pos.X(), pos.Y()
		x, y = x-min(x, y), y-min(x, y)
		for x < Width && y < Height {
			mask.Set(position.NewPosFromXY(x, y))
			x++
			y++
		}
		maskDia[pos] = mask
	}

	for pos := position.Pos(0); pos < TotalCells; pos++ {
		mask := Bitmap(0)
		x, y := pos.X(), pos.Y()
		x, y = x-min(x, Height-y-1), y+min(x, Height-y-1)
		for x < Width && y >= 0 {
			mask.Set(position.NewPosFromXY(x, y))
			x++
			y--
		}
		maskADia[pos] = mask
	}
}

func initAttack() {
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		cell := maskCell[pos]

		maskKnight[pos] = Union(
			ShiftN(ShiftNE(cell)),
			ShiftN(ShiftNW(cell)),
			ShiftS(ShiftSE(cell)),
			ShiftS(ShiftSW(cell)),
			ShiftE(ShiftNE(cell)),
			ShiftE(ShiftSE(cell)),
			ShiftW(ShiftNW(cell)),
			ShiftW(ShiftSW(cell)),
		)

		maskKing[pos] = Union(
			ShiftN(cell),
			ShiftNE(cell),
			ShiftE(cell),
			ShiftSE(cell),
			ShiftS(cell),
			ShiftSW(cell),
			ShiftW(cell),
			ShiftNW(cell),
		)

		maskPawnAttack[SideWhite][pos] = ShiftNW(cell) | ShiftNE(cell)
		maskPawnAttack[SideBlack][pos] = ShiftSW(cell) | ShiftSE(cell)
	}
}

func initFirstRankMoves() {
	for x := 0; x < int(Width); x++ {
		for occ := 0; occ < 256; occ++ {
			var mvs uint8
			for e := x + 1; e < int(Width); e++ {
				mvs |= 1 << e
				if occ&(1<<e) != 0 {
					break
				}
			}
			for w := x - 1; w >= 0; w-- {
				mvs |= 1 << w
				if occ&(1<<w) != 0 {
					break
				}
			}
			firstRankMoves[x][occ] = mvs
		}
	}
}

func min(a, b position.Pos) position.Pos {
	if a < b {
		return a
	}
	return b
}
