// pawnstats prints the pawn-structure evaluation for a single FEN position, probing the
// same memoized pawn hash table the evaluator uses during search.
package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/quillboard/chesscore/pkg/board"
	"github.com/quillboard/chesscore/pkg/board/fen"
	"github.com/quillboard/chesscore/pkg/pawns"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

var (
	position = flag.String("fen", "", "Position to analyze (default to standard)")
	chess960 = flag.Bool("chess960", false, "Interpret the FEN castling field as chess960 rook files")
	ver      = flag.Bool("version", false, "Print version and exit")
)

func main() {
	ctx := context.Background()
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

	e := pawns.NewTable().Probe(pos)

	fmt.Printf("fen:              %v\n", *position)
	fmt.Printf("pawn score:       %v\n", e.Score())
	fmt.Printf("passed (white):   %v\n", e.PassedPawns(board.White).String())
	fmt.Printf("passed (black):   %v\n", e.PassedPawns(board.Black).String())
	fmt.Printf("weak unopp white: %v\n", e.WeakUnopposed(board.White))
	fmt.Printf("weak unopp black: %v\n", e.WeakUnopposed(board.Black))
	fmt.Printf("open files:       %v\n", e.OpenFiles())
	fmt.Printf("asymmetry:        %v\n", e.PawnAsymmetry())

	for _, c := range []board.Color{board.White, board.Black} {
		ksq := pos.KingSquare(c)
		fmt.Printf("king safety %-5v: %v (king on %v)\n", c, e.KingSafety(pos, c, ksq), ksq)
	}
}
