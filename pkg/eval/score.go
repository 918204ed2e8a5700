package eval

import (
	"fmt"

	"github.com/seekerror/stdlib/pkg/util/mathx"
)

// Score is a signed position evaluation in pawns, from the perspective of the side it is
// computed for: positive favors that side. If all pawns become queens and the opponent has
// only the king left, the standard material advantage score is: 9*8 (p) + 9 (q) + 2*5 (r) +
// 2*3 (n) + 2*3 (b) = 103, so Score need never exceed +/- 1,000,000, although a human
// interpretation in centipawns is the usual display form.
type Score float32

const (
	NegInf         = MinScore - 1
	MinScore Score = -1000000
	MaxScore Score = 1000000
	Inf            = MaxScore + 1
)

func (s Score) String() string {
	return fmt.Sprintf("%.2f", s)
}

// Crop clamps s into [MinScore, MaxScore].
func Crop(s Score) Score {
	return mathx.Max(MinScore, mathx.Min(MaxScore, s))
}
