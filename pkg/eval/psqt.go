package eval

import (
	"context"

	"github.com/quillboard/chesscore/pkg/board"
)

// pieceValue holds each piece type's own nominal midgame/endgame value, centipawn-scaled to
// match bonus below. The exact weights come from the well-known Stockfish classical
// material constants this port's own piece_value() (referenced by psqt.rs's init but not
// itself among the retrieved source files) would have returned.
var pieceValue = [board.NumPieceTypes]board.Score{
	board.Pawn:   board.MakeScore(128, 213),
	board.Knight: board.MakeScore(782, 865),
	board.Bishop: board.MakeScore(830, 918),
	board.Rook:   board.MakeScore(1289, 1378),
	board.Queen:  board.MakeScore(2529, 2687),
}

// bonus transcribes psqt.rs's BONUS table: [piece][rank][file, mirrored to the centre so
// only files A-D need listing]. Indexed [pt-Pawn][rank][min(file, 7-file)].
var bonus = [6][8][4]board.Score{
	{ // Pawn
		{board.MakeScore(0, 0), board.MakeScore(0, 0), board.MakeScore(0, 0), board.MakeScore(0, 0)},
		{board.MakeScore(-11, 7), board.MakeScore(6, -4), board.MakeScore(7, 8), board.MakeScore(3, -2)},
		{board.MakeScore(-18, -4), board.MakeScore(-2, -5), board.MakeScore(19, 5), board.MakeScore(24, 4)},
		{board.MakeScore(-17, 3), board.MakeScore(-9, 3), board.MakeScore(20, -8), board.MakeScore(35, -3)},
		{board.MakeScore(-6, 8), board.MakeScore(5, 9), board.MakeScore(3, 7), board.MakeScore(21, -6)},
		{board.MakeScore(-6, 8), board.MakeScore(-8, -5), board.MakeScore(-6, 2), board.MakeScore(-2, 4)},
		{board.MakeScore(-4, 3), board.MakeScore(20, -9), board.MakeScore(-8, 1), board.MakeScore(-4, 18)},
		{board.MakeScore(0, 0), board.MakeScore(0, 0), board.MakeScore(0, 0), board.MakeScore(0, 0)},
	},
	{ // Knight
		{board.MakeScore(-161, -105), board.MakeScore(-96, -82), board.MakeScore(-80, -46), board.MakeScore(-73, -14)},
		{board.MakeScore(-83, -69), board.MakeScore(-43, -54), board.MakeScore(-21, -17), board.MakeScore(-10, 9)},
		{board.MakeScore(-71, -50), board.MakeScore(-22, -39), board.MakeScore(0, -7), board.MakeScore(9, 28)},
		{board.MakeScore(-25, -41), board.MakeScore(18, -25), board.MakeScore(43, 6), board.MakeScore(47, 38)},
		{board.MakeScore(-26, -46), board.MakeScore(16, -25), board.MakeScore(38, 3), board.MakeScore(50, 40)},
		{board.MakeScore(-11, -54), board.MakeScore(37, -38), board.MakeScore(56, -7), board.MakeScore(65, 27)},
		{board.MakeScore(-63, -65), board.MakeScore(-19, -50), board.MakeScore(5, -24), board.MakeScore(14, 13)},
		{board.MakeScore(-195, -109), board.MakeScore(-67, -89), board.MakeScore(-42, -50), board.MakeScore(-29, -13)},
	},
	{ // Bishop
		{board.MakeScore(-44, -58), board.MakeScore(-13, -31), board.MakeScore(-25, -37), board.MakeScore(-34, -19)},
		{board.MakeScore(-20, -34), board.MakeScore(20, -9), board.MakeScore(12, -14), board.MakeScore(1, 4)},
		{board.MakeScore(-9, -23), board.MakeScore(27, 0), board.MakeScore(21, -3), board.MakeScore(11, 16)},
		{board.MakeScore(-11, -26), board.MakeScore(28, -3), board.MakeScore(21, -5), board.MakeScore(10, 16)},
		{board.MakeScore(-11, -26), board.MakeScore(27, -4), board.MakeScore(16, -7), board.MakeScore(9, 14)},
		{board.MakeScore(-17, -24), board.MakeScore(16, -2), board.MakeScore(12, 0), board.MakeScore(2, 13)},
		{board.MakeScore(-23, -34), board.MakeScore(17, -10), board.MakeScore(6, -12), board.MakeScore(-2, 6)},
		{board.MakeScore(-35, -55), board.MakeScore(-11, -32), board.MakeScore(-19, -36), board.MakeScore(-29, -17)},
	},
	{ // Rook
		{board.MakeScore(-25, 0), board.MakeScore(-16, 0), board.MakeScore(-16, 0), board.MakeScore(-9, 0)},
		{board.MakeScore(-21, 0), board.MakeScore(-8, 0), board.MakeScore(-3, 0), board.MakeScore(0, 0)},
		{board.MakeScore(-21, 0), board.MakeScore(-9, 0), board.MakeScore(-4, 0), board.MakeScore(2, 0)},
		{board.MakeScore(-22, 0), board.MakeScore(-6, 0), board.MakeScore(-1, 0), board.MakeScore(2, 0)},
		{board.MakeScore(-22, 0), board.MakeScore(-7, 0), board.MakeScore(0, 0), board.MakeScore(1, 0)},
		{board.MakeScore(-21, 0), board.MakeScore(-7, 0), board.MakeScore(0, 0), board.MakeScore(2, 0)},
		{board.MakeScore(-12, 0), board.MakeScore(4, 0), board.MakeScore(8, 0), board.MakeScore(12, 0)},
		{board.MakeScore(-23, 0), board.MakeScore(-15, 0), board.MakeScore(-11, 0), board.MakeScore(-5, 0)},
	},
	{ // Queen
		{board.MakeScore(0, -71), board.MakeScore(-4, -56), board.MakeScore(-3, -42), board.MakeScore(-1, -29)},
		{board.MakeScore(-4, -56), board.MakeScore(6, -30), board.MakeScore(9, -21), board.MakeScore(8, -5)},
		{board.MakeScore(-2, -39), board.MakeScore(6, -17), board.MakeScore(9, -8), board.MakeScore(9, 5)},
		{board.MakeScore(-1, -29), board.MakeScore(8, -5), board.MakeScore(10, 9), board.MakeScore(7, 19)},
		{board.MakeScore(-3, -27), board.MakeScore(9, -5), board.MakeScore(8, 10), board.MakeScore(7, 21)},
		{board.MakeScore(-2, -40), board.MakeScore(6, -16), board.MakeScore(8, -10), board.MakeScore(10, 3)},
		{board.MakeScore(-2, -55), board.MakeScore(7, -30), board.MakeScore(7, -21), board.MakeScore(6, -6)},
		{board.MakeScore(-1, -74), board.MakeScore(-4, -55), board.MakeScore(-1, -43), board.MakeScore(0, -30)},
	},
	{ // King
		{board.MakeScore(267, 0), board.MakeScore(320, 48), board.MakeScore(270, 75), board.MakeScore(195, 84)},
		{board.MakeScore(264, 43), board.MakeScore(304, 92), board.MakeScore(238, 143), board.MakeScore(180, 132)},
		{board.MakeScore(200, 83), board.MakeScore(245, 138), board.MakeScore(176, 167), board.MakeScore(110, 165)},
		{board.MakeScore(177, 106), board.MakeScore(185, 169), board.MakeScore(148, 169), board.MakeScore(110, 179)},
		{board.MakeScore(149, 108), board.MakeScore(177, 163), board.MakeScore(115, 200), board.MakeScore(66, 203)},
		{board.MakeScore(118, 95), board.MakeScore(159, 155), board.MakeScore(84, 176), board.MakeScore(41, 174)},
		{board.MakeScore(87, 50), board.MakeScore(128, 99), board.MakeScore(63, 122), board.MakeScore(20, 139)},
		{board.MakeScore(63, 9), board.MakeScore(88, 55), board.MakeScore(47, 80), board.MakeScore(0, 90)},
	},
}

// psq is the per-(piece, square) table psqt.rs's init() builds once into a mutable static;
// Go has no equivalent unsafe-static idiom to match, so this is built eagerly via a package
// init instead, into a plain array indexed directly by Piece and Square.
var psq [16][64]board.Score

func init() {
	for pt := board.Pawn; pt <= board.King; pt++ {
		val := pieceValue[pt]
		for f := board.FileA; f <= board.FileH; f++ {
			mf := f
			if mf > board.FileD {
				mf = board.FileH - mf
			}
			for r := board.Rank1; r <= board.Rank8; r++ {
				sq := board.NewSquare(f, r)
				s := val.Add(bonus[pt-board.Pawn][r][mf])

				white := board.MakePiece(board.White, pt)
				black := board.MakePiece(board.Black, pt)
				psq[white][sq] = s
				psq[black][sq.Relative(board.Black)] = s.Neg()
			}
		}
	}
}

// psqScore returns the packed midgame/endgame piece-square bonus for piece pc standing on sq.
func psqScore(pc board.Piece, sq board.Square) board.Score {
	return psq[pc][sq]
}

// PSQT scores a position purely from where its pieces stand, via the tapered piece-square
// tables ported from psqt.rs: each piece contributes its own nominal value plus a
// per-square bonus, mirrored for Black, and the midgame/endgame lanes are blended by game
// phase the same way PawnStructure blends its own packed Score.
type PSQT struct{}

func (PSQT) Evaluate(ctx context.Context, pos *board.Position) Score {
	var total board.Score
	for pt := board.Pawn; pt <= board.King; pt++ {
		for _, sq := range pos.PiecesCP(board.White, pt).Squares() {
			total = total.Add(psqScore(board.MakePiece(board.White, pt), sq))
		}
		for _, sq := range pos.PiecesCP(board.Black, pt).Squares() {
			total = total.Add(psqScore(board.MakePiece(board.Black, pt), sq))
		}
	}

	if pos.SideToMove() == board.Black {
		total = total.Neg()
	}
	return interpolate(pos, total)
}
