package eval

import (
	"sort"

	"github.com/quillboard/chesscore/pkg/board"
)

// FindCapture returns the pieces of the given color that directly attack sq.
func FindCapture(pos *board.Position, side board.Color, sq board.Square) []board.Placement {
	var ret []board.Placement

	occupied := pos.Occupied()
	for _, pt := range []board.PieceType{board.King, board.Queen, board.Rook, board.Knight, board.Bishop} {
		bb := board.Attackboard(occupied, pt, sq) & pos.PiecesCP(side, pt)
		for _, from := range bb.Squares() {
			ret = append(ret, board.Placement{Square: from, Piece: board.MakePiece(side, pt)})
		}
	}

	bb := board.PawnCaptureboard(side.Opponent(), board.BitMask(sq)) & pos.PiecesCP(side, board.Pawn)
	for _, from := range bb.Squares() {
		ret = append(ret, board.Placement{Square: from, Piece: board.MakePiece(side, board.Pawn)})
	}

	return ret
}

// SortByNominalValue orders the placement list by nominal material value, low to high --
// the usual order in which to consider recapturing a square.
func SortByNominalValue(pieces []board.Placement) []board.Placement {
	sort.SliceStable(pieces, func(i, j int) bool {
		return NominalValue(pieces[i].Piece.Type()) < NominalValue(pieces[j].Piece.Type())
	})
	return pieces
}
