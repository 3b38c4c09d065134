// Command uci runs the minimal UCI subset in internal/uci against
// stdin/stdout, for manually driving internal/board from a GUI or by hand
// ("position ...", "go perft <depth>", "quit").
package main

import (
	"log"
	"os"

	"github.com/rudzen/ChessLib-sub000/internal/uci"
)

func main() {
	log.SetFlags(0)
	uci.New().Run(os.Stdin, os.Stdout)
}
