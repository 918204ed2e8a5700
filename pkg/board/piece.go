package board

// PieceType represents a chess piece kind (King, Pawn, etc) with no color. 3 bits.
// NoPieceType is reused as "all piece types" wildcard for occupancy queries such as
// Position.PiecesByType(AllPieceTypes), mirroring Stockfish's ALL_PIECES == 0.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

const (
	AllPieceTypes   PieceType = NoPieceType
	ZeroPieceType   PieceType = 0
	NumPieceTypes   PieceType = 7
)

func ParsePieceType(r rune) (PieceType, bool) {
	switch r {
	case 'p', 'P':
		return Pawn, true
	case 'n', 'N':
		return Knight, true
	case 'b', 'B':
		return Bishop, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	default:
		return NoPieceType, false
	}
}

func (p PieceType) IsValid() bool {
	return Pawn <= p && p <= King
}

func (p PieceType) String() string {
	switch p {
	case NoPieceType:
		return " "
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "?"
	}
}

// Piece is a PieceType with a Color attached: bits 0-2 PieceType, bit 3 Color. 4 bits.
type Piece uint8

const (
	NoPiece Piece = 0
)

func MakePiece(c Color, pt PieceType) Piece {
	return Piece(c)<<3 | Piece(pt)
}

func (p Piece) Color() Color {
	return Color(p >> 3)
}

func (p Piece) Type() PieceType {
	return PieceType(p & 0x7)
}

func (p Piece) IsValid() bool {
	return p.Type().IsValid()
}

func (p Piece) String() string {
	if p == NoPiece {
		return " "
	}
	if p.Color() == White {
		switch p.Type() {
		case Pawn:
			return "P"
		case Knight:
			return "N"
		case Bishop:
			return "B"
		case Rook:
			return "R"
		case Queen:
			return "Q"
		case King:
			return "K"
		default:
			return "?"
		}
	}
	return p.Type().String()
}
