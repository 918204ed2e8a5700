package board

import (
	"container/heap"
	"fmt"
	"math"
	"sort"
)

// MovePriority represents the move order priority.
type MovePriority int32

// MovePriorityFn assigns a priority to moves. Higher priority moves are returned first.
type MovePriorityFn func(move Move) MovePriority

// First puts the given move first. Otherwise uses the given function. Handy for putting
// a hash/PV move first in a caller's move ordering without special-casing it everywhere.
func First(first Move, fn MovePriorityFn) MovePriorityFn {
	return func(m Move) MovePriority {
		if first == m {
			return math.MaxInt32
		}
		return fn(m)
	}
}

// SortByPriority sorts the moves by priority, preserving order for same priority.
func SortByPriority(moves []Move, fn MovePriorityFn) {
	sort.SliceStable(moves, func(i, j int) bool {
		return fn(moves[i]) > fn(moves[j])
	})
}

// OrderedMoves is a move priority queue. It is not itself a generation surface: callers
// build it from a MoveList's already-generated moves plus a priority function, then drain
// it highest-priority-first. Used by cmd/perft's -order flag to print moves MVV-LVA-first.
type OrderedMoves struct {
	h moveHeap
}

// NewOrderedMoves returns a new ordered view over the given moves with the given priorities.
func NewOrderedMoves(moves []Move, fn MovePriorityFn) *OrderedMoves {
	h := moveHeap(make([]elm, len(moves)))
	for i, m := range moves {
		h[i] = elm{m: m, val: fn(m)}
	}
	heap.Init(&h)
	return &OrderedMoves{h: h}
}

// Next returns the next move, the highest priority move remaining.
func (ml *OrderedMoves) Next() (Move, bool) {
	if ml.Size() == 0 {
		return NoMove, false
	}
	ret := heap.Pop(&ml.h).(elm)
	return ret.m, true
}

func (ml *OrderedMoves) Size() int {
	return ml.h.Len()
}

func (ml *OrderedMoves) String() string {
	if ml.Size() == 0 {
		return "[size=0]"
	}
	return fmt.Sprintf("[top=%v, size=%v]", ml.h[0].m, ml.Size())
}

type elm struct {
	m   Move
	val MovePriority
}

type moveHeap []elm

func (h moveHeap) Len() int {
	return len(h)
}

func (h moveHeap) Less(i, j int) bool {
	return h[i].val > h[j].val
}

func (h moveHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *moveHeap) Push(x interface{}) {
	panic("fixed size heap")
}

func (h *moveHeap) Pop() interface{} {
	n := len(*h)
	ret := (*h)[n-1]
	*h = (*h)[0 : n-1]
	return ret
}
