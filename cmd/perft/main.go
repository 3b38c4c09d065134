// Command perft runs Perft (and, with -divide, PerftDivide) against a FEN
// position, the standard way to validate a move generator against known
// node counts.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/rudzen/ChessLib-sub000/internal/board"
)

var (
	fen    = flag.String("fen", "", "FEN to start from (defaults to the standard starting position)")
	depth  = flag.Int("depth", 5, "perft depth")
	divide = flag.Bool("divide", false, "print per-root-move node counts instead of just the total")
)

func main() {
	flag.Parse()

	pos, err := newPosition(*fen)
	if err != nil {
		log.Fatalf("perft: %v", err)
	}

	start := time.Now()

	if *divide {
		roots, total := board.PerftDivide(pos, *depth)
		for _, r := range roots {
			fmt.Printf("%s: %d\n", r.Move.UCI(pos), r.Nodes)
		}
		fmt.Printf("\nnodes: %d\n", total)
	} else {
		nodes := board.Perft(pos, *depth)
		fmt.Printf("nodes: %d\n", nodes)
	}

	elapsed := time.Since(start)
	log.Printf("depth %d in %s", *depth, elapsed)
}

func newPosition(fen string) (*board.Position, error) {
	if fen == "" {
		return board.NewPosition(), nil
	}
	return board.ParseFEN(fen)
}
