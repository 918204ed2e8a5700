package board_test

import (
	"testing"

	"github.com/quillboard/chesscore/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestSortByPriority(t *testing.T) {
	moves := []board.Move{
		board.NewMove(board.A2, board.A3),
		board.NewMove(board.B2, board.B3),
		board.NewMove(board.C2, board.C3),
	}

	priority := func(m board.Move) board.MovePriority {
		switch m.To() {
		case board.B3:
			return 10
		case board.C3:
			return 5
		default:
			return 0
		}
	}

	board.SortByPriority(moves, priority)

	assert.Equal(t, board.B3, moves[0].To())
	assert.Equal(t, board.C3, moves[1].To())
	assert.Equal(t, board.A3, moves[2].To())
}

func TestFirstOverridesPriority(t *testing.T) {
	hash := board.NewMove(board.C2, board.C3)
	fn := board.First(hash, func(m board.Move) board.MovePriority { return 0 })

	assert.Greater(t, int64(fn(hash)), int64(0))
	assert.Equal(t, board.MovePriority(0), fn(board.NewMove(board.A2, board.A3)))
}

func TestOrderedMovesDrainsHighestFirst(t *testing.T) {
	moves := []board.Move{
		board.NewMove(board.A2, board.A3),
		board.NewMove(board.B2, board.B4),
		board.NewMove(board.C2, board.C3),
	}

	priority := func(m board.Move) board.MovePriority {
		switch m.To() {
		case board.B4:
			return 100
		case board.C3:
			return 50
		default:
			return 1
		}
	}

	ordered := board.NewOrderedMoves(moves, priority)
	assert.Equal(t, 3, ordered.Size())

	m, ok := ordered.Next()
	assert.True(t, ok)
	assert.Equal(t, board.B4, m.To())

	m, ok = ordered.Next()
	assert.True(t, ok)
	assert.Equal(t, board.C3, m.To())

	m, ok = ordered.Next()
	assert.True(t, ok)
	assert.Equal(t, board.A3, m.To())

	_, ok = ordered.Next()
	assert.False(t, ok)
}
