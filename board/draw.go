package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/negachess/position"
)

var (
	colorCellDark  = color.New(color.FgBlack, color.BgGreen)
	colorCellLight = color.New(color.FgBlack, color.BgHiWhite)
	colorLabel     = color.New(color.Bold)
)

// Dump renders the board as plain ASCII with FEN symbols.
func (b *Board) Dump() string {
	builder := strings.Builder{}
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y+1))
		for x := position.Pos(0); x < Width; x++ {
			s, p := b.GetSideAndPiece(position.NewPosFromXY(x, y))
			sym := p.SymbolFEN(s)
			if s == SideUnknown {
				sym = " "
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", x.NotationComponentX()))
	}
	return builder.String()
}

// Draw renders the board for a color terminal. Colors are dropped when the
// output is not a terminal.
func (b *Board) Draw() string {
	builder := strings.Builder{}
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %d ", y+1))
		for x := position.Pos(0); x < Width; x++ {
			s, p := b.GetSideAndPiece(position.NewPosFromXY(x, y))
			sym := p.SymbolUnicode(s)
			if p == PieceUnknown {
				sym = " "
			}
			cell := colorCellLight
			if x%2 == y%2 {
				cell = colorCellDark
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %s ", x.NotationComponentX()))
	}
	return builder.String()
}
