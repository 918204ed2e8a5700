// Package pawns evaluates pawn structure: isolated/backward/doubled/connected pawns,
// passed-pawn detection, and king shelter/storm safety. Pawn structure changes far less
// often than the rest of a position, so results are memoized in a fixed-size hash table
// keyed by Position.PawnKey, following the pawn hash table idiom most bitboard engines use
// to make this evaluation effectively free on a typical search tree.
package pawns

import (
	"github.com/quillboard/chesscore/pkg/board"
)

// TableSize is the number of slots in a Table, a power of two so probing can mask the key
// instead of computing a modulus.
const TableSize = 1 << 14 // 16384

// Entry holds the evaluated pawn structure for one (white, black) pawn configuration, plus
// enough per-color state (king squares/castling rights) to memoize king safety across
// probes that share the same pawn structure but different king positions.
type Entry struct {
	key   board.ZobristHash
	score board.Score

	passedPawns    [board.NumColors]board.Bitboard
	pawnAttacks    [board.NumColors]board.Bitboard
	pawnAttackSpan [board.NumColors]board.Bitboard
	weakUnopposed  [board.NumColors]int
	semiopenFiles  [board.NumColors]int
	pawnsOnSquares [board.NumColors][2]int // [color][light=0/dark=1]

	kingSquares    [board.NumColors]board.Square
	kingSafety     [board.NumColors]board.Score
	castlingRights [board.NumColors]board.CastlingRight

	asymmetry int
	openFiles int
}

// Score returns the net (white-minus-black) midgame/endgame pawn structure score.
func (e *Entry) Score() board.Score {
	return e.score
}

// PawnAttacks returns every square a color-c pawn currently attacks.
func (e *Entry) PawnAttacks(c board.Color) board.Bitboard {
	return e.pawnAttacks[c]
}

// PassedPawns returns color c's passed pawns.
func (e *Entry) PassedPawns(c board.Color) board.Bitboard {
	return e.passedPawns[c]
}

// PawnAttackSpan returns the squares color c's pawns could eventually attack as they
// advance, used by evaluation to detect weak squares and outposts.
func (e *Entry) PawnAttackSpan(c board.Color) board.Bitboard {
	return e.pawnAttackSpan[c]
}

// WeakUnopposed returns the count of color c's isolated or backward pawns that face no
// enemy pawn on their own file.
func (e *Entry) WeakUnopposed(c board.Color) int {
	return e.weakUnopposed[c]
}

// PawnAsymmetry returns a measure of how differently the two sides' pawn structures are
// shaped: passed pawns either side holds plus files that are semi-open for one side only.
func (e *Entry) PawnAsymmetry() int {
	return e.asymmetry
}

// OpenFiles returns the count of files with no pawn of either color.
func (e *Entry) OpenFiles() int {
	return e.openFiles
}

// SemiopenFile reports whether file f has no color-c pawn on it.
func (e *Entry) SemiopenFile(c board.Color, f board.File) bool {
	return e.semiopenFiles[c]&(1<<uint(f)) != 0
}

// PawnsOnSameColorSquares returns the count of color c's pawns standing on the same square
// color (light/dark) as sq.
func (e *Entry) PawnsOnSameColorSquares(c board.Color, sq board.Square) int {
	idx := 0
	if board.DarkSquares.IsSet(sq) {
		idx = 1
	}
	return e.pawnsOnSquares[c][idx]
}

// KingSafety returns the cached king-safety score for color us's king on ksq, recomputing
// it only when the king square or castling rights changed since the last probe -- per the
// upstream comment, that's roughly one call in five.
func (e *Entry) KingSafety(pos *board.Position, us board.Color, ksq board.Square) board.Score {
	if e.kingSquares[us] != ksq || e.castlingRights[us] != pos.CastlingRights().ForColor(us) {
		e.kingSafety[us] = e.doKingSafety(pos, us, ksq)
	}
	return e.kingSafety[us]
}

// Table is a fixed-size, always-resident pawn hash table: TableSize entries, directly
// indexed by the low bits of the pawn key. A key mismatch on probe means the slot holds a
// different pawn structure and gets overwritten; there is no collision chaining, matching
// the "correctness doesn't depend on a hit" contract of a pawn hash table (a miss just
// costs a recompute, it never returns a wrong answer).
type Table struct {
	entries [TableSize]Entry
}

// NewTable returns an empty pawn hash table.
func NewTable() *Table {
	return &Table{}
}

// Probe returns the Entry for pos's pawn structure, computing and caching it on a miss.
func (t *Table) Probe(pos *board.Position) *Entry {
	key := pos.PawnKey()
	e := &t.entries[uint64(key)&(TableSize-1)]
	if e.key == key {
		return e
	}

	e.key = key
	e.score = evaluate(pos, board.White, e).Sub(evaluate(pos, board.Black, e))
	e.openFiles = (board.Bitboard(e.semiopenFiles[board.White]) & board.Bitboard(e.semiopenFiles[board.Black])).PopCount()

	asym := e.passedPawns[board.White] | e.passedPawns[board.Black] |
		board.Bitboard(e.semiopenFiles[board.White]^e.semiopenFiles[board.Black])
	e.asymmetry = asym.PopCount()

	return e
}

// Isolated, backward and doubled pawn penalties, and the table of connected-pawn bonuses
// keyed by [opposed][phalanx][support count][relative rank].
var (
	isolated = board.MakeScore(13, 18)
	backward = board.MakeScore(24, 12)
	doubled  = board.MakeScore(18, 38)

	connected [2][2][3][8]board.Score
)

func init() {
	seed := [8]int{0, 13, 24, 18, 65, 100, 175, 330}

	for opposed := 0; opposed < 2; opposed++ {
		for phalanx := 0; phalanx < 2; phalanx++ {
			for support := 0; support < 3; support++ {
				for r := 1; r < 7; r++ {
					v := 17 * support
					bonus := seed[r]
					if phalanx != 0 {
						bonus += (seed[r+1] - seed[r]) / 2
					}
					v += bonus >> uint(opposed)
					connected[opposed][phalanx][support][r] = board.MakeScore(int16(v), int16(v*(r-2)/4))
				}
			}
		}
	}
}

// shelterStrength gives the bonus for a pawn shielding the king, indexed by [distance from
// the nearest board edge][pawn's relative rank]; rank 0 means no pawn on that file, or the
// pawn is behind the king.
var shelterStrength = [4][8]int16{
	{-9, 64, 77, 44, 4, -1, -11, 0},
	{-15, 83, 51, -10, 1, -10, -28, 0},
	{-18, 84, 27, -12, 21, -7, -36, 0},
	{12, 79, 25, 19, 9, -6, -33, 0},
}

const (
	unopposed = iota
	blockedByPawn
	unblocked
)

// stormDanger gives the penalty for an enemy pawn storming toward the king, indexed by
// [storm type][distance from the nearest board edge][enemy pawn's relative rank].
var stormDanger = [3][4][8]int16{
	{
		{4, 73, 132, 46, 31, 0, 0, 0},
		{1, 64, 143, 26, 13, 0, 0, 0},
		{1, 47, 110, 44, 24, 0, 0, 0},
		{0, 72, 127, 50, 31, 0, 0, 0},
	},
	{
		{0, 0, 19, 23, 1, 0, 0, 0},
		{0, 0, 88, 27, 2, 0, 0, 0},
		{0, 0, 101, 16, 1, 0, 0, 0},
		{0, 0, 111, 22, 15, 0, 0, 0},
	},
	{
		{22, 45, 104, 62, 6, 0, 0, 0},
		{31, 30, 99, 39, 19, 0, 0, 0},
		{23, 29, 96, 41, 15, 0, 0, 0},
		{21, 23, 116, 41, 15, 0, 0, 0},
	},
}

// evaluateShelter returns the shelter bonus minus storm penalty for color us's king on ksq,
// looking only at three adjacent files centred on the king's file, with the centre clamped
// to files B..G (so a king on the a- or h-file looks at a-c or f-h).
func evaluateShelter(pos *board.Position, us board.Color, ksq board.Square) int {
	them := us.Opponent()
	down := board.South.Relative(us)
	blockRanks := board.BitRank(board.Rank1) | board.BitRank(board.Rank2)
	if us == board.Black {
		blockRanks = board.BitRank(board.Rank8) | board.BitRank(board.Rank7)
	}

	b := pos.PiecesByType(board.Pawn) & (board.ForwardRanksBb(us, ksq) | board.BitRank(ksq.Rank()))
	ourPawns := b & pos.PiecesByColor(us)
	theirPawns := b & pos.PiecesByColor(them)

	safety := -5
	if ourPawns&board.BitFile(ksq.File()) != 0 {
		safety = 5
	}

	down1 := shiftBb(theirPawns, down)
	if down1&(board.BitFile(board.FileA)|board.BitFile(board.FileH))&blockRanks&board.BitMask(ksq) != 0 {
		safety += 374
	}

	center := ksq.File()
	if center < board.FileB {
		center = board.FileB
	}
	if center > board.FileG {
		center = board.FileG
	}

	for f := center - 1; f <= center+1; f++ {
		fb := ourPawns & board.BitFile(f)
		rkUs := board.Rank1
		if fb != 0 {
			rkUs = backmostSq(us, fb).RelativeRank(us)
		}

		fb = theirPawns & board.BitFile(f)
		rkThem := board.Rank1
		if fb != 0 {
			rkThem = frontmostSq(them, fb).RelativeRank(us)
		}

		d := f
		if board.FileH-f < d {
			d = board.FileH - f
		}

		stormType := unblocked
		if rkUs == board.Rank1 {
			stormType = unopposed
		} else if rkUs == rkThem-1 {
			stormType = blockedByPawn
		}

		safety += int(shelterStrength[d][rkUs])
		safety -= int(stormDanger[stormType][d][rkThem])
	}

	return safety
}

// doKingSafety recomputes color us's king-safety score for king square ksq: the best
// shelter among the king's actual square and (if still available) its two castling
// destinations, plus a penalty for the nearest own pawn being far away.
func (e *Entry) doKingSafety(pos *board.Position, us board.Color, ksq board.Square) board.Score {
	e.kingSquares[us] = ksq
	e.castlingRights[us] = pos.CastlingRights().ForColor(us)

	minKingPawnDistance := 0
	if pawns := pos.PiecesCP(us, board.Pawn); pawns != 0 {
		for board.DistanceRingBb(ksq, minKingPawnDistance)&pawns == 0 {
			minKingPawnDistance++
		}
		minKingPawnDistance++
	}

	bonus := evaluateShelter(pos, us, ksq)

	if pos.HasCastlingRight(board.CastlingRightFor(us, board.KingSide)) {
		if alt := evaluateShelter(pos, us, board.NewSquare(board.FileG, board.Rank1).Relative(us)); alt > bonus {
			bonus = alt
		}
	}
	if pos.HasCastlingRight(board.CastlingRightFor(us, board.QueenSide)) {
		if alt := evaluateShelter(pos, us, board.NewSquare(board.FileC, board.Rank1).Relative(us)); alt > bonus {
			bonus = alt
		}
	}

	return board.MakeScore(int16(bonus), int16(-16*minKingPawnDistance))
}

// evaluate scores color us's pawns in isolation (the caller subtracts the opponent's score
// to get the net pawn-structure score) and populates the structural fields of e that the
// rest of evaluation and king safety depend on.
func evaluate(pos *board.Position, us board.Color, e *Entry) board.Score {
	them := us.Opponent()
	up := board.North.Relative(us)
	right := board.NorthEast.Relative(us)
	left := board.NorthWest.Relative(us)

	var score board.Score

	ourPawns := pos.PiecesCP(us, board.Pawn)
	theirPawns := pos.PiecesCP(them, board.Pawn)

	e.passedPawns[us] = board.EmptyBitboard
	e.pawnAttackSpan[us] = board.EmptyBitboard
	e.weakUnopposed[us] = 0
	e.semiopenFiles[us] = 0xff
	e.kingSquares[us] = board.NoSquare
	e.pawnAttacks[us] = shiftBb(ourPawns, right) | shiftBb(ourPawns, left)
	e.pawnsOnSquares[us][1] = (ourPawns & board.DarkSquares).PopCount()
	e.pawnsOnSquares[us][0] = (ourPawns &^ board.DarkSquares).PopCount()

	for _, s := range ourPawns.Squares() {
		f := s.File()

		e.semiopenFiles[us] &^= 1 << uint(f)
		e.pawnAttackSpan[us] |= board.PawnAttackSpan(us, s)

		opposed := theirPawns & board.ForwardFileBb(us, s)
		stoppers := theirPawns & board.PassedPawnMask(us, s)
		lever := theirPawns & board.PawnCaptureboard(us, board.BitMask(s))
		leverPush := theirPawns & board.PawnCaptureboard(us, board.BitMask(s.Add(up)))
		doubledPawn := ourPawns & board.BitMask(s.Add(-up))
		neighbours := ourPawns & board.AdjacentFiles(f)
		phalanx := neighbours & board.BitRank(s.Rank())
		supported := neighbours & board.BitRank(s.Add(-up).Rank())

		backwards := board.PawnAttackSpan(them, s.Add(up))&ourPawns == 0 &&
			stoppers&(leverPush|board.BitMask(s.Add(up))) == 0

		if stoppers^lever^leverPush == 0 &&
			ourPawns&board.ForwardFileBb(us, s) == 0 &&
			supported.PopCount() >= lever.PopCount() &&
			phalanx.PopCount() >= leverPush.PopCount() {
			e.passedPawns[us] |= board.BitMask(s)
		} else if stoppers^board.BitMask(s.Add(up)) == 0 && s.RelativeRank(us) >= board.Rank5 {
			for _, sq := range (shiftBb(supported, up) &^ theirPawns).Squares() {
				if !(theirPawns & board.PawnCaptureboard(us, board.BitMask(sq))).MoreThanOne() {
					e.passedPawns[us] |= board.BitMask(s)
				}
			}
		}

		switch {
		case supported|phalanx != 0:
			supportCount := supported.PopCount()
			if supportCount > 2 {
				supportCount = 2
			}
			score = score.Add(connected[boolIdx(opposed != 0)][boolIdx(phalanx != 0)][supportCount][s.RelativeRank(us)])
		case neighbours == 0:
			score = score.Sub(isolated)
			if opposed == 0 {
				e.weakUnopposed[us]++
			}
		case backwards:
			score = score.Sub(backward)
			if opposed == 0 {
				e.weakUnopposed[us]++
			}
		}

		if doubledPawn != 0 && supported == 0 {
			score = score.Sub(doubled)
		}
	}

	return score
}

func boolIdx(b bool) int {
	if b {
		return 1
	}
	return 0
}

// backmostSq returns the square of color us's most-backward pawn (closest to its own home
// rank) in b.
func backmostSq(us board.Color, b board.Bitboard) board.Square {
	if us == board.White {
		return b.LSB()
	}
	return b.MSB()
}

// frontmostSq returns the square of color us's most-advanced pawn (furthest toward the
// enemy home rank) in b.
func frontmostSq(us board.Color, b board.Bitboard) board.Square {
	if us == board.White {
		return b.MSB()
	}
	return b.LSB()
}

// shiftBb is a small local wrapper so this package can shift in an arbitrary (already
// color-relative) direction without reaching into board's unexported shift helper.
func shiftBb(b board.Bitboard, d board.Direction) board.Bitboard {
	switch d {
	case board.North:
		return b << 8
	case board.South:
		return b >> 8
	case board.NorthEast:
		return (b << 9) &^ board.BitFile(board.FileA)
	case board.NorthWest:
		return (b << 7) &^ board.BitFile(board.FileH)
	case board.SouthEast:
		return (b >> 7) &^ board.BitFile(board.FileA)
	case board.SouthWest:
		return (b >> 9) &^ board.BitFile(board.FileH)
	default:
		return 0
	}
}
