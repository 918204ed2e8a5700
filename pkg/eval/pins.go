package eval

import "github.com/quillboard/chesscore/pkg/board"

// Pin represents a pinned piece: Pinned cannot move off the Attacker-Target line without
// exposing Target to Attacker.
type Pin struct {
	Attacker, Pinned, Target board.Square
}

// FindPins returns all pins of side's pt pieces against side's own pieces, discovered by
// temporarily removing each candidate pinned piece and checking whether a slider attack
// reaches the target through the gap.
func FindPins(pos *board.Position, side board.Color, pt board.PieceType) []Pin {
	var ret []Pin
	occupied := pos.Occupied()

	for _, target := range pos.PiecesCP(side, pt).Squares() {
		// Rook/Queen pins.

		rooks := board.RookAttackboard(occupied, target)
		for _, pinned := range (rooks & pos.PiecesByColor(side)).Squares() {
			attackers := pos.PiecesCPP(side.Opponent(), board.Queen, board.Rook)
			candidate := board.RookAttackboard(occupied&^board.BitMask(pinned), target) &^ rooks & attackers
			if candidate != 0 {
				ret = append(ret, Pin{Attacker: candidate.LSB(), Pinned: pinned, Target: target})
			}
		}

		// Bishop/Queen pins.

		bishops := board.BishopAttackboard(occupied, target)
		for _, pinned := range (bishops & pos.PiecesByColor(side)).Squares() {
			attackers := pos.PiecesCPP(side.Opponent(), board.Queen, board.Bishop)
			candidate := board.BishopAttackboard(occupied&^board.BitMask(pinned), target) &^ bishops & attackers
			if candidate != 0 {
				ret = append(ret, Pin{Attacker: candidate.LSB(), Pinned: pinned, Target: target})
			}
		}
	}

	return ret
}
