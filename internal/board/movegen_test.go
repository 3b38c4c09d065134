package board

import (
	"testing"
)

// movegen fixture positions: quiet, tactical, promotion-heavy, and in-check
// positions so every generation kind has something to produce.
var movegenFENs = []string{
	StartFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2",
}

func moveSet(ml *MoveList) map[Move]bool {
	set := make(map[Move]bool, ml.Len())
	for i := 0; i < ml.Len(); i++ {
		set[ml.Get(i)] = true
	}
	return set
}

// TestCapturesAndQuietsPartitionNonEvasions checks that the Captures and
// Quiets kinds split NonEvasions exactly: same union, no overlap. This is
// what lets a staged search generate captures first and quiets later without
// seeing a move twice or missing one.
func TestCapturesAndQuietsPartitionNonEvasions(t *testing.T) {
	for _, fen := range movegenFENs {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("parsing %s: %v", fen, err)
		}
		if pos.InCheck() {
			continue
		}

		captures, quiets, nonEvasions := NewMoveList(), NewMoveList(), NewMoveList()
		pos.GenerateAll(captures, Captures)
		pos.GenerateAll(quiets, Quiets)
		pos.GenerateAll(nonEvasions, NonEvasions)

		capSet, quietSet, allSet := moveSet(captures), moveSet(quiets), moveSet(nonEvasions)

		if captures.Len()+quiets.Len() != nonEvasions.Len() {
			t.Errorf("%s: |Captures|+|Quiets| = %d+%d, |NonEvasions| = %d",
				fen, captures.Len(), quiets.Len(), nonEvasions.Len())
		}
		for m := range capSet {
			if quietSet[m] {
				t.Errorf("%s: move %s in both Captures and Quiets", fen, m)
			}
			if !allSet[m] {
				t.Errorf("%s: capture %s missing from NonEvasions", fen, m)
			}
		}
		for m := range quietSet {
			if !allSet[m] {
				t.Errorf("%s: quiet %s missing from NonEvasions", fen, m)
			}
		}
	}
}

// TestGeneratedMovesArePseudoLegal checks that IsPseudoLegal accepts every
// move the generator emits, in and out of check.
func TestGeneratedMovesArePseudoLegal(t *testing.T) {
	fens := append([]string{}, movegenFENs...)
	// In-check positions exercise the Evasions path.
	fens = append(fens,
		"rnbqkbnr/ppp2ppp/8/1B1pp3/4P3/8/PPPP1PPP/RNBQK1NR b KQkq - 1 3",
		"R6k/6pp/8/8/8/8/8/K7 b - - 0 1",
	)

	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("parsing %s: %v", fen, err)
		}

		ml := NewMoveList()
		if pos.InCheck() {
			pos.GenerateAll(ml, Evasions)
		} else {
			pos.GenerateAll(ml, NonEvasions)
		}
		for i := 0; i < ml.Len(); i++ {
			if m := ml.Get(i); !pos.IsPseudoLegal(m) {
				t.Errorf("%s: generated move %s rejected by IsPseudoLegal", fen, m)
			}
		}
	}
}

// TestLegalKindMatchesFilter checks that Generate(Legal) returns exactly the
// pseudo-legal moves IsLegal accepts.
func TestLegalKindMatchesFilter(t *testing.T) {
	for _, fen := range movegenFENs {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("parsing %s: %v", fen, err)
		}

		legal := NewMoveList()
		pos.GenerateAll(legal, Legal)
		legalSet := moveSet(legal)

		pseudo := NewMoveList()
		if pos.InCheck() {
			pos.GenerateAll(pseudo, Evasions)
		} else {
			pos.GenerateAll(pseudo, NonEvasions)
		}

		for i := 0; i < pseudo.Len(); i++ {
			m := pseudo.Get(i)
			if pos.IsLegal(m) != legalSet[m] {
				t.Errorf("%s: move %s IsLegal=%v but in Legal output=%v",
					fen, m, pos.IsLegal(m), legalSet[m])
			}
		}
		for m := range legalSet {
			if !pos.IsLegal(m) {
				t.Errorf("%s: Legal output contains %s which IsLegal rejects", fen, m)
			}
		}
	}
}

// TestQuietChecksActuallyCheck checks that every QuietChecks move is a
// non-capture and that making it leaves the opponent in check.
func TestQuietChecksActuallyCheck(t *testing.T) {
	for _, fen := range movegenFENs {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("parsing %s: %v", fen, err)
		}
		if pos.InCheck() {
			continue
		}

		ml := NewMoveList()
		pos.GenerateAll(ml, QuietChecks)
		for i := 0; i < ml.Len(); i++ {
			m := ml.Get(i)
			if m.IsCapture(pos) {
				t.Errorf("%s: QuietChecks emitted capture %s", fen, m)
				continue
			}
			if !pos.IsLegal(m) {
				continue
			}
			pos.MakeMove(m)
			if !pos.InCheck() {
				t.Errorf("%s: QuietChecks move %s does not give check", fen, m)
			}
			pos.UnmakeMove(m)
		}
	}
}
