package board

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/daystram/negachess/position"
)

// Bitmap is a set of squares, bit i set iff square i is in the set.
type Bitmap uint64

// Shifts move every square one step toward the named direction. Squares
// leaving the board are dropped; horizontal components clear the edge file
// first so that nothing wraps onto the opposite side.

func ShiftNW(bm Bitmap) Bitmap {
	return (bm &^ maskCol[position.FileA]) << 7
}

func ShiftN(bm Bitmap) Bitmap {
	return bm << 8
}

func ShiftNE(bm Bitmap) Bitmap {
	return (bm &^ maskCol[position.FileH]) << 9
}

func ShiftE(bm Bitmap) Bitmap {
	return (bm &^ maskCol[position.FileH]) << 1
}

func ShiftSE(bm Bitmap) Bitmap {
	return (bm &^ maskCol[position.FileH]) >> 7
}

func ShiftS(bm Bitmap) Bitmap {
	return bm >> 8
}

func ShiftSW(bm Bitmap) Bitmap {
	return (bm &^ maskCol[position.FileA]) >> 9
}

func ShiftW(bm Bitmap) Bitmap {
	return (bm &^ maskCol[position.FileA]) >> 1
}

func Union(bms ...Bitmap) Bitmap {
	var u Bitmap
	for _, bm := range bms {
		u |= bm
	}
	return u
}

func NewBitmapFromPos(positions ...position.Pos) Bitmap {
	var bm Bitmap
	for _, pos := range positions {
		bm.Set(pos)
	}
	return bm
}

func (bm *Bitmap) Set(pos position.Pos) {
	*bm |= maskCell[pos]
}

func (bm *Bitmap) Unset(pos position.Pos) {
	*bm &^= maskCell[pos]
}

func (bm Bitmap) IsSet(pos position.Pos) bool {
	return bm&maskCell[pos] != 0
}

// LS1B returns the least significant set square. Undefined for an empty Bitmap.
func (bm Bitmap) LS1B() position.Pos {
	return position.Pos(bits.TrailingZeros64(uint64(bm)))
}

// PopLS1B removes and returns the least significant set square. Draining a
// copy with PopLS1B yields each occupied square once in ascending order; the
// sequence cannot be replayed, take a fresh copy to iterate again.
func (bm *Bitmap) PopLS1B() position.Pos {
	pos := bm.LS1B()
	*bm &= *bm - 1
	return pos
}

func (bm Bitmap) BitCount() uint8 {
	return uint8(bits.OnesCount64(uint64(bm)))
}

func (bm Bitmap) Dump(sym ...rune) string {
	builder := strings.Builder{}
	for y := position.MaxComponentScalar; y > 0; y-- {
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y))
		for x := position.Pos(0); x < position.MaxComponentScalar; x++ {
			if bm.IsSet(position.NewPosFromXY(x, y-1)) {
				s := "#"
				if len(sym) == 1 {
					s = string(sym[0])
				}
				_, _ = builder.WriteString(fmt.Sprintf(" %s ", s))
			} else {
				_, _ = builder.WriteString(" . ")
			}
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("    ------------------------\n    ")
	for x := position.Pos(0); x < position.MaxComponentScalar; x++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %s ", x.NotationComponentX()))
	}
	return builder.String()
}
