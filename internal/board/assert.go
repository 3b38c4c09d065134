package board

// assert panics with msg if cond is false. It guards hot-path invariants
// that a caller violating MakeMove/UnmakeMove's contract (mismatched
// make/unmake pairs, a State stack run past its fixed capacity) would
// otherwise corrupt silently; there is no build tag to compile these out,
// so they stay cheap: one branch, taken only on programmer error.
func assert(cond bool, msg string) {
	if !cond {
		panic("board: " + msg)
	}
}
