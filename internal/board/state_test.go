package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// playUCI makes each move in order, resolving the strings against the
// position as it evolves.
func playUCI(t *testing.T, pos *Position, moves ...string) {
	t.Helper()
	for _, s := range moves {
		m, err := ParseMove(s, pos)
		require.NoError(t, err, "parsing %s", s)
		require.True(t, pos.IsPseudoLegal(m), "%s is not pseudo-legal here", s)
		require.True(t, pos.IsLegal(m), "%s is not legal here", s)
		pos.MakeMove(m)
	}
}

func TestRepetitionDetection(t *testing.T) {
	pos := NewPosition()
	require.Equal(t, 0, pos.Repetition())

	// Shuffle the kingside knights out and back: the starting position
	// recurs for the first time four plies later.
	playUCI(t, pos, "g1f3", "g8f6", "f3g1", "f6g8")
	require.Equal(t, 4, pos.Repetition())
	require.True(t, pos.st.IsRepetition())

	// A second shuffle makes it a third occurrence, recorded with a
	// negative sign since the matched ancestor was itself a repetition.
	playUCI(t, pos, "g1f3", "g8f6", "f3g1", "f6g8")
	require.Equal(t, -4, pos.Repetition())
}

func TestRepetitionResetByPawnMove(t *testing.T) {
	pos := NewPosition()

	// The pawn push resets rule50, so the later knight shuffle can never
	// reach back past it.
	playUCI(t, pos, "e2e4", "g8f6", "g1f3", "f6g8", "f3g1")
	require.Equal(t, 0, pos.Repetition())
}

func TestEnPassantOnlySetWhenCapturable(t *testing.T) {
	pos := NewPosition()

	// No enemy pawn sits beside a4, so the double push grants no en-passant
	// right and the FEN shows none.
	playUCI(t, pos, "a2a4")
	require.Equal(t, NoSquare, pos.EnPassant())
	require.Contains(t, pos.ToFEN(), " - ")

	// With the e5 pawn in place, Black's d7d5 is capturable en passant.
	pos = NewPosition()
	playUCI(t, pos, "e2e4", "a7a6", "e4e5", "d7d5")
	require.Equal(t, D6, pos.EnPassant())
	require.Contains(t, pos.ToFEN(), " d6 ")
}

func TestNullMoveRoundTrip(t *testing.T) {
	pos, err := ParseFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2")
	require.NoError(t, err)

	before := takeSnapshot(pos)
	keyBefore := pos.Key()

	pos.MakeNullMove()
	require.Equal(t, Black, pos.SideToMove)
	require.Equal(t, NoSquare, pos.EnPassant(), "null move must drop the en-passant right")
	require.NotEqual(t, keyBefore, pos.Key())
	require.Equal(t, 0, pos.PliesFromNull())
	require.Equal(t, 0, pos.Repetition())
	require.Equal(t, pos.ComputeHash(), pos.Key(), "null move key diverged from recomputed key")

	pos.UnmakeNullMove()
	require.Equal(t, before, takeSnapshot(pos))
}

func TestPliesFromNullLimitsRepetitionWindow(t *testing.T) {
	pos := NewPosition()
	playUCI(t, pos, "g1f3", "g8f6", "f3g1", "f6g8")
	require.Equal(t, 4, pos.Repetition())

	// A pair of null moves fences off the earlier history: the shuffle
	// afterwards still matches the post-null state four plies back, but the
	// occurrences before the fence are invisible, so this reads as a first
	// recurrence (positive) rather than a third one (negative).
	pos.MakeNullMove()
	pos.MakeNullMove()
	playUCI(t, pos, "g1f3", "g8f6", "f3g1", "f6g8")
	require.Equal(t, 4, pos.Repetition())
}
