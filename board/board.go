package board

import (
	"errors"

	"github.com/daystram/negachess/position"
)

var (
	ErrInvalidFEN  = errors.New("invalid fen")
	ErrInvalidMove = errors.New("invalid move")
)

// Board is a position: little-endian rank-file (LERF) bitmaps per side and
// piece, their per-side and total unions, and the side to move. Castling and
// en passant are not modeled.
type Board struct {
	pieces   [2 + 1][6 + 1]Bitmap
	sides    [2 + 1]Bitmap
	occupied Bitmap
	turn     Side
}

type boardConfig struct {
	fen string
}

type BoardOption func(*boardConfig)

func WithFEN(fen string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.fen = fen
	}
}

func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{
		fen: DefaultStartingPositionFEN,
	}
	for _, f := range opts {
		f(cfg)
	}

	b := &Board{}
	if err := UnmarshalFEN(cfg.fen, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) Turn() Side {
	return b.turn
}

func (b *Board) GetBitmap(s Side, p Piece) Bitmap {
	return b.pieces[s][p]
}

func (b *Board) GetSideBitmap(s Side) Bitmap {
	return b.sides[s]
}

func (b *Board) GetOccupiedBitmap() Bitmap {
	return b.occupied
}

func (b *Board) GetSideAndPiece(pos position.Pos) (Side, Piece) {
	for _, s := range []Side{SideWhite, SideBlack} {
		if !b.sides[s].IsSet(pos) {
			continue
		}
		for _, p := range Pieces {
			if b.pieces[s][p].IsSet(pos) {
				return s, p
			}
		}
	}
	return SideUnknown, PieceUnknown
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	bb := *b
	return &bb
}

// Apply returns the board reached by playing mv. The receiver is left untouched.
func (b *Board) Apply(mv Move) *Board {
	bb := *b
	bb.apply(mv)
	return &bb
}

func (b *Board) apply(mv Move) {
	us, them := b.turn, b.turn.Opposite()
	p := mv.Piece
	if p == PieceUnknown {
		_, p = b.GetSideAndPiece(mv.From)
	}

	b.set(us, p, mv.From, false)

	// remove captured piece
	if b.sides[them].IsSet(mv.To) {
		for _, cp := range Pieces {
			b.pieces[them][cp].Unset(mv.To)
		}
		b.sides[them].Unset(mv.To)
	}

	if mv.IsPromote == PieceUnknown {
		b.set(us, p, mv.To, true)
	} else {
		b.set(us, mv.IsPromote, mv.To, true)
	}

	b.occupied = b.sides[SideWhite] | b.sides[SideBlack]
	b.turn = them
}

func (b *Board) set(s Side, p Piece, pos position.Pos, value bool) {
	if value {
		b.pieces[s][p].Set(pos)
		b.sides[s].Set(pos)
		b.occupied.Set(pos)
	} else {
		b.pieces[s][p].Unset(pos)
		b.sides[s].Unset(pos)
		b.occupied.Unset(pos)
	}
}

// GetCenterBitmap returns the pieces of side s standing on d4, e4, d5 or e5.
func (b *Board) GetCenterBitmap(s Side) Bitmap {
	return b.sides[s] & maskCenter
}
