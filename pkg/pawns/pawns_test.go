package pawns_test

import (
	"testing"

	"github.com/quillboard/chesscore/pkg/board"
	"github.com/quillboard/chesscore/pkg/board/fen"
	"github.com/quillboard/chesscore/pkg/pawns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, f string) *board.Position {
	t.Helper()
	ztable := board.NewZobristTable(21)
	pos, _, _, err := fen.Decode(f, ztable, false)
	require.NoError(t, err)
	return pos
}

func TestProbeIsMemoized(t *testing.T) {
	pos := decode(t, fen.Initial)
	table := pawns.NewTable()

	e1 := table.Probe(pos)
	e2 := table.Probe(pos)

	assert.Same(t, e1, e2)
	assert.Equal(t, e1.Score(), e2.Score())
}

func TestSymmetricStartingStructureIsBalanced(t *testing.T) {
	pos := decode(t, fen.Initial)
	e := pawns.NewTable().Probe(pos)

	assert.Equal(t, board.Score(0), e.Score())
	assert.Zero(t, e.PassedPawns(board.White))
	assert.Zero(t, e.PassedPawns(board.Black))
}

func TestIsolatedPawnPenalized(t *testing.T) {
	// White has an isolated pawn on d4 (no pawn on c or e file); black has a full healthy
	// chain on the other wing, so white's structure score should come out negative.
	pos := decode(t, "4k3/pppp1ppp/8/8/3P4/8/PP3PPP/4K3 w - - 0 1")
	e := pawns.NewTable().Probe(pos)
	assert.Less(t, int(e.Score()), 0)
}

func TestDoubledPawnPenalized(t *testing.T) {
	pos := decode(t, "4k3/pppppppp/8/8/4P3/4P3/PPPP1PPP/4K3 w - - 0 1")
	e := pawns.NewTable().Probe(pos)
	assert.Less(t, int(e.Score()), 0)
}

func TestConnectedPawnsRewarded(t *testing.T) {
	isolated := decode(t, "4k3/pppppppp/8/8/3P4/8/PPP1PPPP/4K3 w - - 0 1")
	connected := decode(t, "4k3/pppppppp/8/8/3PP3/8/PPP2PPP/4K3 w - - 0 1")

	table := pawns.NewTable()
	eIso := table.Probe(isolated)
	eCon := table.Probe(connected)

	assert.Greater(t, int(eCon.Score()), int(eIso.Score()))
}

func TestPassedPawnDetected(t *testing.T) {
	// White pawn on d6 with no black pawns able to stop it.
	pos := decode(t, "4k3/8/3P4/8/8/8/8/4K3 w - - 0 1")
	e := pawns.NewTable().Probe(pos)

	assert.True(t, e.PassedPawns(board.White).IsSet(board.D6))
}

func TestBackwardPawnNotPassed(t *testing.T) {
	// White d-pawn is backward (e and c pawns have advanced past it, black has a stopper).
	pos := decode(t, "4k3/8/8/2p1p3/8/3P4/8/4K3 w - - 0 1")
	e := pawns.NewTable().Probe(pos)

	assert.False(t, e.PassedPawns(board.White).IsSet(board.D3))
}

func TestKingSafetyRewardsShelter(t *testing.T) {
	pos := decode(t, "4k3/8/8/8/8/8/PPPPPPPP/4K3 w - - 0 1")
	e := pawns.NewTable().Probe(pos)

	sheltered := e.KingSafety(pos, board.White, board.E1)
	assert.Greater(t, int(sheltered.MG()), 0)
}

func TestKingSafetyPenalizesStorm(t *testing.T) {
	withStorm := decode(t, "4k3/8/8/8/5ppp/8/5PPP/4K2R w K - 0 1")
	noStorm := decode(t, "4k3/8/8/8/8/8/5PPP/4K2R w K - 0 1")

	table := pawns.NewTable()
	eStorm := table.Probe(withStorm)
	eClean := table.Probe(noStorm)

	stormed := eStorm.KingSafety(withStorm, board.White, board.G1)
	clean := eClean.KingSafety(noStorm, board.White, board.G1)

	assert.Less(t, int(stormed.MG()), int(clean.MG()))
}

func TestSemiopenFileReflectsPawnPresence(t *testing.T) {
	pos := decode(t, "4k3/ppp1pppp/8/8/8/8/PPPPPPPP/4K3 w - - 0 1")
	e := pawns.NewTable().Probe(pos)

	assert.False(t, e.SemiopenFile(board.White, board.FileD))
	assert.True(t, e.SemiopenFile(board.Black, board.FileD))
}
