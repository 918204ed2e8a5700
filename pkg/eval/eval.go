// Package eval contains position evaluation logic and utilities.
package eval

import (
	"context"

	"github.com/quillboard/chesscore/pkg/board"
	"github.com/quillboard/chesscore/pkg/pawns"
)

// Evaluator is a static position evaluator, from the perspective of the position's side to
// move: positive favors the mover.
type Evaluator interface {
	Evaluate(ctx context.Context, pos *board.Position) Score
}

// Material returns the nominal material advantage balance for the side to move.
type Material struct{}

func (Material) Evaluate(ctx context.Context, pos *board.Position) Score {
	us := pos.SideToMove()
	them := us.Opponent()

	var total Score
	for pt := board.Pawn; pt <= board.King; pt++ {
		diff := pos.PiecesCP(us, pt).PopCount() - pos.PiecesCP(them, pt).PopCount()
		total += Score(diff) * NominalValue(pt)
	}
	return total
}

// NominalValue is the absolute nominal value in pawns of a piece type. The King has an
// arbitrary value of 100 pawns, so that its presence dominates any other material
// consideration without needing special-casing by callers.
func NominalValue(pt board.PieceType) Score {
	switch pt {
	case board.Pawn:
		return 1
	case board.Bishop, board.Knight:
		return 3
	case board.Rook:
		return 5
	case board.Queen:
		return 9
	case board.King:
		return 100
	default:
		return 0
	}
}

// NominalValueGain is the nominal material gain of making move m in pos, i.e. what the
// mover nets in captured/promoted material.
func NominalValueGain(pos *board.Position, m board.Move) Score {
	var gain Score
	if m.Type() == board.EnPassant {
		gain += NominalValue(board.Pawn)
	} else if captured := pos.PieceOn(m.To()); captured != board.NoPiece && m.Type() != board.Castling {
		gain += NominalValue(captured.Type())
	}
	if m.Type() == board.Promotion {
		gain += NominalValue(m.PromotionType()) - NominalValue(board.Pawn)
	}
	return gain
}

// PawnStructure evaluates the pawn-structure and king-safety contribution to the position
// score for the side to move, via a shared pawn hash table. This is the piece of the
// evaluator that actually exercises pkg/pawns: the other terms here (material, PSQT,
// Random) never probe it, so without this the pawn evaluator would never run outside
// cmd/pawnstats.
type PawnStructure struct {
	Table *pawns.Table
}

// NewPawnStructure returns a PawnStructure evaluator backed by a fresh pawn hash table.
func NewPawnStructure() PawnStructure {
	return PawnStructure{Table: pawns.NewTable()}
}

func (p PawnStructure) Evaluate(ctx context.Context, pos *board.Position) Score {
	us := pos.SideToMove()

	e := p.Table.Probe(pos)
	score := e.Score()
	if us == board.Black {
		score = score.Neg()
	}

	safety := e.KingSafety(pos, us, pos.KingSquare(us)).Sub(e.KingSafety(pos, us.Opponent(), pos.KingSquare(us.Opponent())))
	score = score.Add(safety)

	return interpolate(pos, score)
}

// phase returns a position's game phase on a 0 (pure endgame) .. 24 (full midgame material)
// scale, counted from the non-pawn, non-king material remaining on the board: a queen is
// worth 4, a rook 2, a bishop or knight 1, following the standard tapered-eval weighting.
func phase(pos *board.Position) int {
	p := 4*pos.PiecesByType(board.Queen).PopCount() +
		2*pos.PiecesByType(board.Rook).PopCount() +
		pos.PiecesByType(board.Bishop).PopCount() +
		pos.PiecesByType(board.Knight).PopCount()
	const maxPhase = 24
	if p > maxPhase {
		p = maxPhase
	}
	return p
}

// interpolate blends a packed Score's middlegame/endgame lanes according to the position's
// game phase: fully midgame weight at phase 24, fully endgame weight at phase 0.
func interpolate(pos *board.Position, s board.Score) Score {
	const maxPhase = 24
	ph := phase(pos)
	return Score(int(s.MG())*ph+int(s.EG())*(maxPhase-ph)) / maxPhase / 100
}
