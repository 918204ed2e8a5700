package board_test

import (
	"testing"

	"github.com/quillboard/chesscore/pkg/board"
	"github.com/quillboard/chesscore/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPosition(t *testing.T, pieces []board.Placement, castling board.CastlingRight, ep board.Square, stm board.Color) *board.Position {
	t.Helper()
	ztable := board.NewZobristTable(7)
	pos, err := board.NewPosition(pieces, castling, ep, stm, false, ztable)
	require.NoError(t, err)
	return pos
}

func TestNewPositionValidation(t *testing.T) {
	ztable := board.NewZobristTable(1)

	t.Run("requires a zobrist table", func(t *testing.T) {
		_, err := board.NewPosition(nil, 0, board.NoSquare, board.White, false, nil)
		assert.Error(t, err)
	})

	t.Run("requires exactly one king per color", func(t *testing.T) {
		_, err := board.NewPosition([]board.Placement{
			{Square: board.A1, Piece: board.MakePiece(board.White, board.King)},
		}, 0, board.NoSquare, board.White, false, ztable)
		assert.Error(t, err)
	})

	t.Run("rejects adjacent kings", func(t *testing.T) {
		_, err := board.NewPosition([]board.Placement{
			{Square: board.A1, Piece: board.MakePiece(board.White, board.King)},
			{Square: board.A2, Piece: board.MakePiece(board.Black, board.King)},
		}, 0, board.NoSquare, board.White, false, ztable)
		assert.Error(t, err)
	})

	t.Run("rejects duplicate placements", func(t *testing.T) {
		_, err := board.NewPosition([]board.Placement{
			{Square: board.A1, Piece: board.MakePiece(board.White, board.King)},
			{Square: board.A1, Piece: board.MakePiece(board.White, board.Queen)},
			{Square: board.H8, Piece: board.MakePiece(board.Black, board.King)},
		}, 0, board.NoSquare, board.White, false, ztable)
		assert.Error(t, err)
	})

	t.Run("accepts a minimal legal position", func(t *testing.T) {
		pos, err := board.NewPosition([]board.Placement{
			{Square: board.A1, Piece: board.MakePiece(board.White, board.King)},
			{Square: board.H8, Piece: board.MakePiece(board.Black, board.King)},
		}, 0, board.NoSquare, board.White, false, ztable)
		require.NoError(t, err)
		assert.Equal(t, board.White, pos.SideToMove())
		assert.Equal(t, 0, pos.Checkers().PopCount())
	})
}

func kings() []board.Placement {
	return []board.Placement{
		{Square: board.A1, Piece: board.MakePiece(board.White, board.King)},
		{Square: board.A8, Piece: board.MakePiece(board.Black, board.King)},
	}
}

func TestGenerateLegalPawnMoves(t *testing.T) {
	t.Run("push, jump and capture", func(t *testing.T) {
		pieces := append(kings(),
			board.Placement{Square: board.E2, Piece: board.MakePiece(board.White, board.Pawn)},
			board.Placement{Square: board.D3, Piece: board.MakePiece(board.Black, board.Knight)},
		)
		pos := newTestPosition(t, pieces, 0, board.NoSquare, board.White)

		var list board.MoveList
		board.Generate(pos, &list, board.Legal)

		assert.True(t, list.Contains(board.NewMove(board.E2, board.E3)))
		assert.True(t, list.Contains(board.NewMove(board.E2, board.E4)))
		assert.True(t, list.Contains(board.NewMove(board.E2, board.D3)))
	})

	t.Run("promotion generates all four pieces", func(t *testing.T) {
		pieces := append(kings(), board.Placement{Square: board.D7, Piece: board.MakePiece(board.White, board.Pawn)})
		pos := newTestPosition(t, pieces, 0, board.NoSquare, board.White)

		var list board.MoveList
		board.Generate(pos, &list, board.Legal)

		for _, pt := range []board.PieceType{board.Queen, board.Rook, board.Bishop, board.Knight} {
			assert.True(t, list.Contains(board.NewPromotion(board.D7, board.D8, pt)), "missing promotion to %v", pt)
		}
	})

	t.Run("en passant capture", func(t *testing.T) {
		pieces := append(kings(),
			board.Placement{Square: board.E4, Piece: board.MakePiece(board.Black, board.Pawn)},
			board.Placement{Square: board.D4, Piece: board.MakePiece(board.White, board.Pawn)},
		)
		pos := newTestPosition(t, pieces, 0, board.D3, board.Black)

		var list board.MoveList
		board.Generate(pos, &list, board.Legal)

		assert.True(t, list.Contains(board.NewEnPassant(board.E4, board.D3)))
	})
}

func TestGenerateCastling(t *testing.T) {
	t.Run("both sides available", func(t *testing.T) {
		pieces := []board.Placement{
			{Square: board.E1, Piece: board.MakePiece(board.White, board.King)},
			{Square: board.A1, Piece: board.MakePiece(board.White, board.Rook)},
			{Square: board.H1, Piece: board.MakePiece(board.White, board.Rook)},
			{Square: board.E8, Piece: board.MakePiece(board.Black, board.King)},
		}
		pos := newTestPosition(t, pieces, board.WhiteKingSide|board.WhiteQueenSide, board.NoSquare, board.White)

		var list board.MoveList
		board.Generate(pos, &list, board.Legal)

		assert.True(t, list.Contains(board.NewCastling(board.E1, board.H1)))
		assert.True(t, list.Contains(board.NewCastling(board.E1, board.A1)))
	})

	t.Run("impeded by own piece", func(t *testing.T) {
		pieces := []board.Placement{
			{Square: board.E1, Piece: board.MakePiece(board.White, board.King)},
			{Square: board.H1, Piece: board.MakePiece(board.White, board.Rook)},
			{Square: board.F1, Piece: board.MakePiece(board.White, board.Bishop)},
			{Square: board.E8, Piece: board.MakePiece(board.Black, board.King)},
		}
		pos := newTestPosition(t, pieces, board.WhiteKingSide, board.NoSquare, board.White)

		var list board.MoveList
		board.Generate(pos, &list, board.Legal)

		assert.False(t, list.Contains(board.NewCastling(board.E1, board.H1)))
	})

	t.Run("blocked by attacked transit square", func(t *testing.T) {
		pieces := []board.Placement{
			{Square: board.E1, Piece: board.MakePiece(board.White, board.King)},
			{Square: board.H1, Piece: board.MakePiece(board.White, board.Rook)},
			{Square: board.F8, Piece: board.MakePiece(board.Black, board.Rook)},
			{Square: board.A8, Piece: board.MakePiece(board.Black, board.King)},
		}
		pos := newTestPosition(t, pieces, board.WhiteKingSide, board.NoSquare, board.White)

		var list board.MoveList
		board.Generate(pos, &list, board.Legal)

		assert.False(t, list.Contains(board.NewCastling(board.E1, board.H1)))
	})
}

func TestMakeUnmakeMoveRoundTrip(t *testing.T) {
	ztable := board.NewZobristTable(3)
	pos, _, _, err := fen.Decode(fen.Initial, ztable, false)
	require.NoError(t, err)

	hash := pos.Hash()
	pawnHash := pos.PawnKey()

	var list board.MoveList
	board.Generate(pos, &list, board.Legal)
	require.Equal(t, 20, list.Len())

	for _, em := range list.Moves() {
		u := pos.MakeMove(em.Move)
		pos.UnmakeMove(em.Move, u)

		assert.Equal(t, hash, pos.Hash(), "hash did not round-trip for %v", em.Move)
		assert.Equal(t, pawnHash, pos.PawnKey(), "pawn hash did not round-trip for %v", em.Move)
		assert.Equal(t, board.White, pos.SideToMove())
	}
}

func TestGivesCheck(t *testing.T) {
	ztable := board.NewZobristTable(4)
	// White queen on d1, black king on d8 with an open d-file: Qd1-d7 checks the king,
	// while Qd1-a4 leaves both the d-file and the king's diagonals.
	pos, _, _, err := fen.Decode("3k4/8/8/8/8/8/8/3QK3 w - - 0 1", ztable, false)
	require.NoError(t, err)

	assert.True(t, pos.GivesCheck(board.NewMove(board.D1, board.D7)))
	assert.False(t, pos.GivesCheck(board.NewMove(board.D1, board.A4)))
}

func TestPinnedPieces(t *testing.T) {
	ztable := board.NewZobristTable(5)
	pos, _, _, err := fen.Decode("4k3/8/8/8/8/4r3/4N3/4K3 w - - 0 1", ztable, false)
	require.NoError(t, err)

	pinned := pos.PinnedPieces(board.White)
	assert.True(t, pinned.IsSet(board.E2))
}

func TestPerftKnownNodeCounts(t *testing.T) {
	ztable := board.NewZobristTable(6)

	tests := []struct {
		name     string
		fen      string
		depth    int
		expected int64
	}{
		{"startpos depth 1", fen.Initial, 1, 20},
		{"startpos depth 2", fen.Initial, 2, 400},
		{"startpos depth 3", fen.Initial, 3, 8902},
		{"kiwipete depth 1", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 1, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, _, _, err := fen.Decode(tt.fen, ztable, false)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, countPerft(pos, tt.depth))
		})
	}
}

func countPerft(pos *board.Position, depth int) int64 {
	if depth == 0 {
		return 1
	}

	var list board.MoveList
	board.Generate(pos, &list, board.Legal)

	var nodes int64
	for _, em := range list.Moves() {
		u := pos.MakeMove(em.Move)
		nodes += countPerft(pos, depth-1)
		pos.UnmakeMove(em.Move, u)
	}
	return nodes
}
