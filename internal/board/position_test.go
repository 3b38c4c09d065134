package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUpdateHookObservesPlacementChanges(t *testing.T) {
	pos := NewPosition()

	type update struct {
		piece Piece
		sq    Square
	}
	var seen []update
	pos.SetUpdateHook(func(piece Piece, sq Square) {
		seen = append(seen, update{piece, sq})
	})

	m, err := ParseMove("e2e4", pos)
	require.NoError(t, err)
	pos.MakeMove(m)

	require.Equal(t, []update{{NoPiece, E2}, {WhitePawn, E4}}, seen)

	// Probing mode silences the hook entirely.
	seen = nil
	pos.SetProbing(true)
	pos.UnmakeMove(m)
	require.Empty(t, seen)
}

func TestValidateAcceptsParsedPositions(t *testing.T) {
	for _, fen := range []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	} {
		pos, err := ParseFEN(fen)
		require.NoError(t, err, fen)
		require.NoError(t, pos.Validate(), fen)
	}
}

func TestClearThenSetFENIsIdempotent(t *testing.T) {
	reference, err := ParseFEN(StartFEN)
	require.NoError(t, err)

	pos := &Position{}
	pos.Clear()
	require.NoError(t, pos.SetFEN(StartFEN))
	pos.Clear()
	require.NoError(t, pos.SetFEN(StartFEN))

	require.Equal(t, takeSnapshot(reference), takeSnapshot(pos))
	require.Equal(t, reference.Key(), pos.Key())
}

func TestSetFENLeavesPositionUntouchedOnError(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	require.NoError(t, err)
	before := takeSnapshot(pos)

	require.Error(t, pos.SetFEN("not a fen"))
	require.Error(t, pos.SetFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1"))
	require.Equal(t, before, takeSnapshot(pos))
}
