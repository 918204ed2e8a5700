package board

import "fmt"

// MoveType indicates the type of move encoded in bits 12-13 of a Move.
type MoveType uint16

const (
	Normal MoveType = iota
	Promotion
	EnPassant
	Castling
)

const (
	toShift        = 6
	typeShift      = 12
	promotionShift = 14

	squareMask = 0x3f
	typeMask   = 0x3 << typeShift
	promoMask  = 0x3 << promotionShift
)

// Move is a compact 16-bit encoding of a not-necessarily-legal move:
//
//	bits 0-5:   from square
//	bits 6-11:  to square
//	bits 12-13: move type (Normal, Promotion, EnPassant, Castling)
//	bits 14-15: promoted piece type minus Knight, valid only when type == Promotion
//
// A Castling move encodes its "to" square as the rook's origin square (the idiom this
// package uses so chess-960 and standard castling share one representation); the
// caller's execution step (Position.MakeMove) interprets it.
type Move uint16

// NoMove is the reserved zero value: from == to == A1, which is never a legal move.
const NoMove Move = 0

// NewMove creates a Normal move.
func NewMove(from, to Square) Move {
	return Move(from) | Move(to)<<toShift
}

// NewPromotion creates a Promotion move. pt must be one of Knight, Bishop, Rook, Queen.
func NewPromotion(from, to Square, pt PieceType) Move {
	return NewMove(from, to) | Move(Promotion)<<typeShift | Move(pt-Knight)<<promotionShift
}

// NewEnPassant creates an EnPassant move; to is the destination (the empty ep-target
// square), not the captured pawn's square.
func NewEnPassant(from, to Square) Move {
	return NewMove(from, to) | Move(EnPassant)<<typeShift
}

// NewCastling creates a Castling move. to is the rook's origin square (kfrom/rfrom idiom).
func NewCastling(kfrom, rfrom Square) Move {
	return NewMove(kfrom, rfrom) | Move(Castling)<<typeShift
}

func (m Move) From() Square {
	return Square(m & squareMask)
}

func (m Move) To() Square {
	return Square((m >> toShift) & squareMask)
}

func (m Move) Type() MoveType {
	return MoveType((m & typeMask) >> typeShift)
}

// PromotionType returns the promoted piece type. Only meaningful when Type() == Promotion.
func (m Move) PromotionType() PieceType {
	return PieceType((m&promoMask)>>promotionShift) + Knight
}

func (m Move) IsValid() bool {
	return m != NoMove
}

// ParseMove parses a move in pure algebraic coordinate notation, such as "a2a4" or "a7a8q".
// The parsed move does not carry contextual information like castling or en passant; callers
// reconcile it against the generator's output to recover that.
func ParseMove(str string) (Move, error) {
	runes := []rune(str)

	if len(runes) < 4 || len(runes) > 5 {
		return NoMove, fmt.Errorf("invalid move: '%v'", str)
	}

	from, err := ParseSquare(runes[0], runes[1])
	if err != nil {
		return NoMove, fmt.Errorf("invalid from: '%v': %v", str, err)
	}
	to, err := ParseSquare(runes[2], runes[3])
	if err != nil {
		return NoMove, fmt.Errorf("invalid to: '%v': %v", str, err)
	}

	if len(runes) == 5 {
		pt, ok := ParsePieceType(runes[4])
		if !ok || pt == Pawn || pt == King {
			return NoMove, fmt.Errorf("invalid promotion: '%v'", str)
		}
		return NewPromotion(from, to, pt), nil
	}

	return NewMove(from, to), nil
}

func (m Move) String() string {
	if m.Type() == Promotion {
		return fmt.Sprintf("%v%v%v", m.From(), m.To(), m.PromotionType())
	}
	return fmt.Sprintf("%v%v", m.From(), m.To())
}

// ExtMove pairs a Move with a caller-assigned score. The move generator only ever
// writes the Move field; assigning Score is the caller's job (e.g. a move orderer).
type ExtMove struct {
	Move  Move
	Score Score
}
