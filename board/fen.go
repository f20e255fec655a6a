package board

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/daystram/negachess/position"
)

// UnmarshalFEN loads the piece placement and side to move of fen into b.
// Castling rights and en passant target are checked for syntax only.
func UnmarshalFEN(fen string, b *Board) error {
	if b == nil {
		return fmt.Errorf("invalid board")
	}
	*b = Board{}

	segments := strings.Split(fen, " ")
	if len(segments) != 6 {
		return fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	rows := strings.Split(segments[0], "/")
	if len(rows) != int(Height) {
		return fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	for y := position.Pos(0); y < Height; y++ {
		row := rows[Height-y-1]
		ptrX := -1
		for x := position.Pos(0); x < Width; x++ {
			ptrX++
			if ptrX >= len(row) {
				return fmt.Errorf("%w: missing cells", ErrInvalidFEN)
			}
			var s Side
			var p Piece
			switch cell := rune(row[ptrX]); cell {
			case 'P':
				s, p = SideWhite, PiecePawn
			case 'N':
				s, p = SideWhite, PieceKnight
			case 'B':
				s, p = SideWhite, PieceBishop
			case 'R':
				s, p = SideWhite, PieceRook
			case 'Q':
				s, p = SideWhite, PieceQueen
			case 'K':
				s, p = SideWhite, PieceKing
			case 'p':
				s, p = SideBlack, PiecePawn
			case 'n':
				s, p = SideBlack, PieceKnight
			case 'b':
				s, p = SideBlack, PieceBishop
			case 'r':
				s, p = SideBlack, PieceRook
			case 'q':
				s, p = SideBlack, PieceQueen
			case 'k':
				s, p = SideBlack, PieceKing
			default:
				if cell != '0' && unicode.IsDigit(cell) {
					skip := position.Pos(cell - '0')
					if x+skip-1 < Width {
						x += skip - 1
						continue
					}
					return fmt.Errorf("%w: skip out of bounds", ErrInvalidFEN)
				}
				return fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(cell))
			}
			b.set(s, p, position.NewPosFromXY(x, y), true)
		}
		if ptrX != len(row)-1 {
			return fmt.Errorf("%w: extra cells", ErrInvalidFEN)
		}
	}
	if b.pieces[SideWhite][PieceKing].BitCount() != 1 || b.pieces[SideBlack][PieceKing].BitCount() != 1 {
		return fmt.Errorf("%w: expected one king per side", ErrInvalidFEN)
	}
	if (b.pieces[SideWhite][PiecePawn]|b.pieces[SideBlack][PiecePawn])&(maskRow[position.Rank1]|maskRow[position.Rank8]) != 0 {
		return fmt.Errorf("%w: pawn on back rank", ErrInvalidFEN)
	}

	switch segments[1] {
	case "w":
		b.turn = SideWhite
	case "b":
		b.turn = SideBlack
	default:
		return fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	// castling is not modeled, the rights are only validated
	if len(segments[2]) > 4 {
		return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
	}
crLoop:
	for i, e := range segments[2] {
		switch e {
		case 'K', 'Q', 'k', 'q':
		default:
			if i == 0 && e == '-' && len(segments[2]) == 1 {
				break crLoop
			}
			return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
		}
	}

	// en passant is not modeled, the target is only validated
	if segments[3] != "-" {
		pos, err := position.NewPosFromNotation(segments[3])
		if err != nil {
			return fmt.Errorf("%w: invalid enpassant position: %v", ErrInvalidFEN, err)
		}
		if pos.Y() != position.Rank3 && pos.Y() != position.Rank6 {
			return fmt.Errorf("%w: invalid enpassant position", ErrInvalidFEN)
		}
	}

	if _, err := strconv.ParseUint(segments[4], 10, 16); err != nil {
		return fmt.Errorf("%w: invalid half move clock", ErrInvalidFEN)
	}
	if _, err := strconv.ParseUint(segments[5], 10, 16); err != nil {
		return fmt.Errorf("%w: invalid full move clock", ErrInvalidFEN)
	}

	return nil
}

func MarshalFEN(b *Board) string {
	builder := strings.Builder{}
	var skip uint8
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		for x := position.Pos(0); x < Width; x++ {
			for skip = 0; x < Width && !b.occupied.IsSet(position.NewPosFromXY(x, y)); x++ {
				skip++
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune(skip + '0'))
			}
			if x < Width {
				s, p := b.GetSideAndPiece(position.NewPosFromXY(x, y))
				_, _ = builder.WriteString(p.SymbolFEN(s))
			}
		}
		if y > 0 {
			_, _ = builder.WriteRune('/')
		}
	}

	if b.turn == SideWhite {
		_, _ = builder.WriteString(" w ")
	} else {
		_, _ = builder.WriteString(" b ")
	}
	_, _ = builder.WriteString("- - 0 1")

	return builder.String()
}

func (b *Board) FEN() string {
	return MarshalFEN(b)
}
