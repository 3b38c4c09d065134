package uci_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rudzen/ChessLib-sub000/internal/uci"
)

func run(t *testing.T, commands string) string {
	t.Helper()
	var out strings.Builder
	uci.New().Run(strings.NewReader(commands), &out)
	return out.String()
}

func TestUCIHandshake(t *testing.T) {
	out := run(t, "uci\nisready\nquit\n")
	require.Contains(t, out, "uciok")
	require.Contains(t, out, "readyok")
}

func TestUCIPerftStartpos(t *testing.T) {
	out := run(t, "position startpos\ngo perft 2\nquit\n")
	require.Contains(t, out, "Nodes searched: 400")
}

func TestUCIPositionWithMoves(t *testing.T) {
	out := run(t, "position startpos moves e2e4 e7e5\ngo perft 1\nquit\n")
	require.Contains(t, out, "Nodes searched:")
}

func TestUCIPositionFEN(t *testing.T) {
	out := run(t, "position fen 4k3/8/8/8/8/8/8/4K2R w K - 0 1\ngo perft 1\nquit\n")
	require.Contains(t, out, "Nodes searched:")
}
