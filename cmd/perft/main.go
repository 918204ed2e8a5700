// perft is a movegen debugging tool. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/quillboard/chesscore/pkg/board"
	"github.com/quillboard/chesscore/pkg/board/fen"
	"github.com/quillboard/chesscore/pkg/eval"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

var version = build.NewVersion(0, 1, 0)

var (
	depth    = flag.Int("depth", 4, "Search depth")
	position = flag.String("fen", "", "Start position (default to standard)")
	divide   = flag.Bool("divide", false, "Divide counts by initial move, at the deepest ply")
	chess960 = flag.Bool("chess960", false, "Interpret the FEN castling field as chess960 rook files")
	sel      = flag.String("selector", "legal", "Move selector to count: legal, pseudo")
	order    = flag.Bool("order", false, "Print the root's legal moves MVV-LVA-first instead of counting")
	ver      = flag.Bool("version", false, "Print version and exit")
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		cancel()
	}()

	flag.Parse()

	if *ver {
		fmt.Println(version)
		return
	}

	if *position == "" {
		*position = fen.Initial
	}

	ztable := board.NewZobristTable(1)
	pos, _, _, err := fen.Decode(*position, ztable, *chess960)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen '%v': %v", *position, err)
	}

	if *order {
		printOrderedMoves(pos)
		return
	}

	legalOnly := *sel != "pseudo"

	for i := 1; i <= *depth; i++ {
		if contextx.IsCancelled(ctx) {
			logw.Infof(ctx, "Cancelled at depth %v", i)
			return
		}

		start := time.Now()
		nodes := perft(ctx, pos, i, legalOnly, *divide && i == *depth)
		duration := time.Since(start)

		fmt.Printf("perft,%v,%v,%v,%v\n", *position, i, nodes, duration.Microseconds())
	}
}

// printOrderedMoves prints pos's root legal moves highest-value-capture-first, using
// board.OrderedMoves/SortByPriority driven by an MVV-LVA priority function built from
// eval.NominalValueGain -- the move-ordering debug view the -order flag exists for.
func printOrderedMoves(pos *board.Position) {
	var list board.MoveList
	board.Generate(pos, &list, board.Legal)

	moves := make([]board.Move, 0, list.Len())
	for _, em := range list.Moves() {
		moves = append(moves, em.Move)
	}

	priority := func(m board.Move) board.MovePriority {
		return board.MovePriority(eval.NominalValueGain(pos, m)*1000 - eval.NominalValue(pos.PieceOn(m.From()).Type()))
	}

	ordered := board.NewOrderedMoves(moves, priority)
	for {
		m, ok := ordered.Next()
		if !ok {
			break
		}
		fmt.Printf("%v: %v\n", m, eval.NominalValueGain(pos, m))
	}
}

// perft counts the leaf nodes reachable from pos at the given depth. legalOnly selects
// board.Legal (the default); otherwise moves are generated with Evasions (when in check) or
// NonEvasions and each one is filtered through Position.Legal before it is made, which is a
// useful cross-check against Legal's single combined pass.
func perft(ctx context.Context, pos *board.Position, depth int, legalOnly, d bool) int64 {
	if depth == 0 {
		return 1
	}
	if contextx.IsCancelled(ctx) {
		return 0
	}

	var list board.MoveList
	if legalOnly {
		board.Generate(pos, &list, board.Legal)
	} else if pos.Checkers() != 0 {
		board.Generate(pos, &list, board.Evasions)
	} else {
		board.Generate(pos, &list, board.NonEvasions)
	}

	var nodes int64
	for _, em := range list.Moves() {
		m := em.Move
		if !legalOnly && !pos.Legal(m) {
			continue
		}

		u := pos.MakeMove(m)
		count := perft(ctx, pos, depth-1, legalOnly, false)
		pos.UnmakeMove(m, u)

		if d {
			fmt.Printf("%v: %v\n", m, count)
		}
		nodes += count
	}
	return nodes
}
