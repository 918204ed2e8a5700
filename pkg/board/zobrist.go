package board

import "math/rand"

// ZobristHash is a position hash based on piece-squares. It is intended for 3-fold
// repetition draw detection and hashes "identical" positions under that rule to the
// same hash value.
//
// See also: https://research.cs.wisc.edu/techreports/1970/TR88.pdf.
type ZobristHash uint64

// ZobristTable is a pseudo-randomized table for computing a position hash. Position owns
// one and maintains the running Hash incrementally inside MakeMove/UnmakeMove; NewHash and
// NewPawnHash below are the from-scratch recomputation used to seed or sanity-check it.
type ZobristTable struct {
	Pieces    [NumColors][NumPieceTypes][NumSquares]ZobristHash
	Castling  [NumCastlingRight]ZobristHash
	EnPassant [NumSquares]ZobristHash
	Turn      ZobristHash // XORed in only when side to move is Black.
}

// NewZobristTable builds a table from the given seed. Two tables built from the same seed
// are identical, which matters for reproducible perft/test runs.
func NewZobristTable(seed int64) *ZobristTable {
	ret := &ZobristTable{}

	r := rand.New(rand.NewSource(seed))

	for c := ZeroColor; c < NumColors; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := ZeroSquare; sq < NumSquares; sq++ {
				ret.Pieces[c][pt][sq] = ZobristHash(r.Uint64())
			}
		}
	}
	for i := CastlingRight(0); i < NumCastlingRight; i++ {
		ret.Castling[i] = ZobristHash(r.Uint64())
	}
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		ret.EnPassant[sq] = ZobristHash(r.Uint64())
	}
	ret.Turn = ZobristHash(r.Uint64())

	return ret
}

// NewHash computes the full Zobrist hash of the given position from scratch, including
// side to move, castling rights and en passant square.
func (z *ZobristTable) NewHash(pos *Position) ZobristHash {
	var hash ZobristHash

	for sq := ZeroSquare; sq < NumSquares; sq++ {
		if p := pos.PieceOn(sq); p != NoPiece {
			hash ^= z.Pieces[p.Color()][p.Type()][sq]
		}
	}
	hash ^= z.Castling[pos.CastlingRights()]
	if ep := pos.EnPassantSquare(); ep != NoSquare {
		hash ^= z.EnPassant[ep]
	}
	if pos.SideToMove() == Black {
		hash ^= z.Turn
	}
	return hash
}

// hashMeta returns the XOR contribution of a position's non-piece state: castling rights,
// en passant square and side to move. MakeMove XORs this out before mutating that state
// and back in after, which is cheaper than a full NewHash recomputation per move.
func (z *ZobristTable) hashMeta(p *Position) ZobristHash {
	h := z.Castling[p.castling]
	if p.epSquare != NoSquare {
		h ^= z.EnPassant[p.epSquare]
	}
	if p.stm == Black {
		h ^= z.Turn
	}
	return h
}

// NewPawnHash computes a key over pawn placement only, ignoring everything else about the
// position (piece, castling, ep, turn). Two positions with identical pawn structure --
// possibly differing in every other respect -- collide on this key, which is exactly the
// property pkg/pawns relies on to memoize shelter/storm/passed-pawn scoring per structure.
func (z *ZobristTable) NewPawnHash(pos *Position) ZobristHash {
	var hash ZobristHash
	for c := ZeroColor; c < NumColors; c++ {
		bb := pos.PiecesCP(c, Pawn)
		for bb != 0 {
			sq := bb.LSB()
			hash ^= z.Pieces[c][Pawn][sq]
			bb = bb.ResetLSB()
		}
	}
	return hash
}
