package notation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rudzen/ChessLib-sub000/internal/board"
)

func TestSANOpeningMoves(t *testing.T) {
	pos := board.NewPosition()

	e4, err := board.ParseMove("e2e4", pos)
	require.NoError(t, err)
	require.Equal(t, "e4", SAN(pos, e4))

	knight, err := board.ParseMove("g1f3", pos)
	require.NoError(t, err)
	require.Equal(t, "Nf3", SAN(pos, knight))
}

func TestSANCapture(t *testing.T) {
	pos, err := board.ParseFEN("rnbqkbnr/ppp2ppp/8/3pp3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq d6 0 3")
	require.NoError(t, err)

	cap, err := board.ParseMove("e4d5", pos)
	require.NoError(t, err)
	require.Equal(t, "exd5", SAN(pos, cap))
}

func TestSANCastling(t *testing.T) {
	pos, err := board.ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	oo, err := board.ParseMove("e1g1", pos)
	require.NoError(t, err)
	require.Equal(t, "O-O", SAN(pos, oo))

	ooo, err := board.ParseMove("e1c1", pos)
	require.NoError(t, err)
	require.Equal(t, "O-O-O", SAN(pos, ooo))
}

func TestSANCheckSuffix(t *testing.T) {
	// After 1.f3 e5, Black's Qh4 is check but not mate (g3 blocks), so the
	// '+' suffix is exercised in isolation from '#'.
	pos, err := board.ParseFEN("rnbqkbnr/pppp1ppp/8/4p3/8/5P2/PPPPP1PP/RNBQKBNR b KQkq - 0 2")
	require.NoError(t, err)

	qh4, err := board.ParseMove("d8h4", pos)
	require.NoError(t, err)
	require.Equal(t, "Qh4+", SAN(pos, qh4))

	// And 1.f3 e5 2.g4 Qh4 is the fool's mate, exercising '#'.
	mate, err := board.ParseFEN("rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq g3 0 2")
	require.NoError(t, err)

	qh4, err = board.ParseMove("d8h4", mate)
	require.NoError(t, err)
	require.Equal(t, "Qh4#", SAN(mate, qh4))
}

func TestParseSANRoundTrip(t *testing.T) {
	pos := board.NewPosition()
	moves := pos.GenerateLegalMoves()
	require.Greater(t, moves.Len(), 0)

	m := moves.Get(0)
	s := SAN(pos, m)

	parsed, err := ParseSAN(s, pos)
	require.NoError(t, err)
	require.Equal(t, m, parsed)
}

func TestMovesToSANDoesNotMutateOriginal(t *testing.T) {
	pos := board.NewPosition()
	before := pos.Key()

	moves := pos.GenerateLegalMoves()
	require.Greater(t, moves.Len(), 0)
	m := moves.Get(0)

	_ = MovesToSAN(pos, []board.Move{m})
	require.Equal(t, before, pos.Key())
}
