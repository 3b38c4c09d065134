package board

import "math/rand"

// Zobrist hash tables: one random 64-bit constant per (piece, square), per
// en-passant file, per castling-rights combination, and one for side to
// move. The seed is fixed so keys are reproducible across runs and across
// machines, which matters for anything that persists a key (a saved
// transposition table, a test fixture, a bug report quoting a hash).
var (
	zobristPiece      [2][7][64]uint64 // [Color][PieceType][Square]; row 6 (NoPieceType) unused
	zobristEnPassant  [8]uint64        // indexed by file
	zobristCastling   [16]uint64       // indexed by the 4-bit CastlingRights mask
	zobristSideToMove uint64
	zobristNoPawns    uint64 // pawn-key base, so a pawnless board doesn't hash to 0
)

// zobristSeed fixes the math/rand stream so every process computes the same
// tables; this is the one place in the package that cares about a specific
// PRNG algorithm rather than just "some bits".
var zobristSeed uint64 = 0x98F107A2BEEF1234

func init() {
	r := rand.New(rand.NewSource(int64(zobristSeed)))
	initZobristPieceKeys(r)
	initZobristEnPassantKeys(r)
	initZobristCastlingKeys(r)
	zobristSideToMove = r.Uint64()
	zobristNoPawns = r.Uint64()
}

func initZobristPieceKeys(r *rand.Rand) {
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := A1; sq <= H8; sq++ {
				zobristPiece[c][pt][sq] = r.Uint64()
			}
		}
	}
}

func initZobristEnPassantKeys(r *rand.Rand) {
	for file := 0; file < 8; file++ {
		zobristEnPassant[file] = r.Uint64()
	}
}

// initZobristCastlingKeys draws one constant per individual castling right
// and fills the 16-entry table with the XOR of the constants for each set
// bit, so losing one right out of a combination changes the key by exactly
// that right's constant.
func initZobristCastlingKeys(r *rand.Rand) {
	var rights [4]uint64
	for i := range rights {
		rights[i] = r.Uint64()
	}
	for mask := range zobristCastling {
		for bit := 0; bit < 4; bit++ {
			if mask&(1<<bit) != 0 {
				zobristCastling[mask] ^= rights[bit]
			}
		}
	}
}

// ZobristPiece returns the key for piece (c, pt) standing on sq.
func ZobristPiece(c Color, pt PieceType, sq Square) uint64 {
	return zobristPiece[c][pt][sq]
}

// ZobristEnPassant returns the key for an en-passant target on the given
// file (the caller decides whether the ep right is actually hashable, see
// epCapturable in makemove.go).
func ZobristEnPassant(file int) uint64 {
	return zobristEnPassant[file]
}

// ZobristCastling returns the key for a full castling-rights mask.
func ZobristCastling(cr CastlingRights) uint64 {
	return zobristCastling[cr]
}

// ZobristSideToMove returns the key XORed in whenever it's Black to move.
func ZobristSideToMove() uint64 {
	return zobristSideToMove
}
