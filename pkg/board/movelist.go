package board

import "fmt"

// MaxMoves is the fixed capacity of a MoveList. 218 is the well-known maximum number of
// legal moves in any reachable chess position; 256 leaves headroom for pseudo-legal
// overgeneration (e.g. evasions that turn out illegal) without ever growing the buffer.
const MaxMoves = 256

// MoveList is a fixed-capacity, caller-owned buffer of ExtMove the generator appends to.
// It never allocates past construction: Generate and its selector-specific helpers write
// directly into the backing array.
type MoveList struct {
	moves [MaxMoves]ExtMove
	n     int
}

// Moves returns the generated moves as a slice over the backing array. Valid until the
// next call to Reset or a generator call that extends the list.
func (l *MoveList) Moves() []ExtMove {
	return l.moves[:l.n]
}

// Len returns the number of moves currently in the list.
func (l *MoveList) Len() int {
	return l.n
}

// Reset empties the list for reuse, avoiding a fresh allocation.
func (l *MoveList) Reset() {
	l.n = 0
}

// Contains returns true iff the list holds the given move.
func (l *MoveList) Contains(m Move) bool {
	for i := 0; i < l.n; i++ {
		if l.moves[i].Move == m {
			return true
		}
	}
	return false
}

// push appends a move, panicking if the fixed capacity is exhausted -- which would
// indicate either buffer corruption or a position far outside the 218-move bound.
func (l *MoveList) push(m Move) {
	if l.n >= MaxMoves {
		panic("board: move list capacity exceeded")
	}
	l.moves[l.n] = ExtMove{Move: m}
	l.n++
}

func (l *MoveList) String() string {
	return fmt.Sprintf("movelist{size=%v}", l.n)
}
