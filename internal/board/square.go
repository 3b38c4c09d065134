package board

import "fmt"

// Square is a board square numbered 0-63 in Little-Endian Rank-File order:
// A1=0, H1=7, A8=56, H8=63. File and rank are recovered by division/modulo
// rather than a separate coordinate pair, so a Square is cheap to pass
// around and index bitboards/attack tables with directly.
type Square uint8

// Square constants for all 64 squares, plus the sentinel NoSquare used
// wherever "no square" needs to be distinguishable from a valid one (empty
// en-passant target, absent castling rook, etc).
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// squareNames holds the precomputed algebraic name for every square, so
// String doesn't format a rune pair on every call.
var squareNames = func() [64]string {
	var names [64]string
	for sq := A1; sq <= H8; sq++ {
		names[sq] = string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
	}
	return names
}()

// NewSquare builds a square from a 0-indexed file and rank.
func NewSquare(file, rank int) Square {
	return Square(rank<<3 + file)
}

// File returns the square's file, 0 (a-file) through 7 (h-file).
func (sq Square) File() int {
	return int(sq) % 8
}

// Rank returns the square's rank, 0 (rank 1) through 7 (rank 8).
func (sq Square) Rank() int {
	return int(sq) / 8
}

// RelativeRank returns sq's rank as seen by color c: White sees rank 1 as
// relative rank 0, Black sees rank 8 as relative rank 0. Used wherever pawn
// logic needs to talk about "the 7th rank" without a separate per-color
// branch at every call site.
func (sq Square) RelativeRank(c Color) int {
	if c == Black {
		return 7 - sq.Rank()
	}
	return sq.Rank()
}

// Mirror flips sq vertically (rank r <-> rank 7-r, file unchanged), used to
// reuse a White-relative table from Black's perspective.
func (sq Square) Mirror() Square {
	return NewSquare(sq.File(), 7-sq.Rank())
}

// IsValid reports whether sq is one of the 64 real board squares (as
// opposed to the NoSquare sentinel or an out-of-range value).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// String returns sq in algebraic notation ("e4"), or "-" for NoSquare.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return squareNames[sq]
}

// ParseSquare parses algebraic notation ("e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}

	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}

	return NewSquare(file, rank), nil
}
