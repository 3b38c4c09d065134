// Package uci implements the subset of the Universal Chess Interface
// needed to drive internal/board from a GUI for manual testing: position
// setup, a perft-only "go", and quit. It is deliberately not a complete
// protocol implementation; search, the option dictionary, and time
// management belong to an engine built on top of this library.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/rudzen/ChessLib-sub000/internal/board"
)

// UCI holds the minimal state this subset needs: the current position.
type UCI struct {
	position *board.Position
}

// New creates a handler starting from the standard initial position.
func New() *UCI {
	return &UCI{position: board.NewPosition()}
}

// Run reads UCI commands from r and writes responses to w until EOF or a
// "quit" command.
func (u *UCI) Run(r io.Reader, w io.Writer) {
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "uci":
			fmt.Fprintln(w, "id name ChessLib")
			fmt.Fprintln(w, "id author ChessLib Team")
			fmt.Fprintln(w, "uciok")
		case "isready":
			fmt.Fprintln(w, "readyok")
		case "ucinewgame":
			u.position = board.NewPosition()
		case "position":
			u.handlePosition(args)
		case "go":
			u.handleGo(w, args)
		case "d":
			fmt.Fprintln(w, u.position.String())
		case "quit":
			return
		default:
			log.Printf("uci: unrecognized command %q", cmd)
		}
	}
}

// handlePosition supports "position startpos [moves ...]" and
// "position fen <fen> [moves ...]".
func (u *UCI) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	var moveStart int
	switch args[0] {
	case "startpos":
		u.position = board.NewPosition()
		moveStart = 1
	case "fen":
		moveStart = len(args)
		for i := 1; i < len(args); i++ {
			if args[i] == "moves" {
				moveStart = i
				break
			}
		}
		fen := strings.Join(args[1:moveStart], " ")
		pos, err := board.ParseFEN(fen)
		if err != nil {
			log.Printf("uci: position fen: %v", err)
			return
		}
		u.position = pos
	default:
		return
	}

	for i, arg := range args[moveStart:] {
		if arg == "moves" {
			continue
		}
		m, err := board.ParseMove(arg, u.position)
		if err != nil {
			log.Printf("uci: position move %d (%s): %v", i, arg, err)
			return
		}
		u.position.MakeMove(m)
	}
}

// handleGo supports only "go perft <depth>", printing the PerftDivide
// breakdown in the conventional engine-debug format (one "move: nodes"
// line per root move, a blank line, then the total).
func (u *UCI) handleGo(w io.Writer, args []string) {
	if len(args) < 2 || args[0] != "perft" {
		log.Printf("uci: unsupported go arguments %v (only \"go perft <depth>\" is implemented)", args)
		return
	}

	depth, err := strconv.Atoi(args[1])
	if err != nil || depth < 0 {
		log.Printf("uci: invalid perft depth %q", args[1])
		return
	}

	roots, total := board.PerftDivide(u.position, depth)
	for _, r := range roots {
		fmt.Fprintf(w, "%s: %d\n", r.Move.UCI(u.position), r.Nodes)
	}
	fmt.Fprintf(w, "\nNodes searched: %d\n", total)
}
