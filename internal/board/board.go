// Package board implements chess position representation with bitboards:
// attack tables, the board/state/position layers, move generation, and the
// make/unmake protocol that keeps them all in sync.
package board

// Board is the raw piece-placement layer: a mailbox array plus a square list
// per piece kind, kept in lockstep with Position's bitboards by setPiece,
// removePiece and movePiece. Position's Pieces[color][type]/Occupied/AllOccupied
// bitboards already serve as the by_type/by_side/pieces[12] arrays; Board adds
// the O(1) square-list lookup a mailbox-only or bitboard-only representation
// can't give cheaply (e.g. "the 3rd knight of this color").
//
// pieceIndex[sq] gives the slot of the piece on sq within pieceList[piece];
// it is only meaningful while sq is occupied. remove_piece uses swap-with-last,
// so a slot's contents are not stable across an unrelated add/remove, but a
// matched make/unmake pair restores it because unmake removes and adds pieces
// in the reverse order make used.
type Board struct {
	mailbox    [64]Piece
	pieceList  [12][16]Square
	pieceIndex [64]int8
	pieceCount [12]int
}

// clear empties the board.
func (b *Board) clear() {
	for sq := range b.mailbox {
		b.mailbox[sq] = NoPiece
	}
	b.pieceCount = [12]int{}
}

// PieceAt returns the piece occupying sq, or NoPiece.
func (b *Board) PieceAt(sq Square) Piece {
	return b.mailbox[sq]
}

// Count returns how many pieces of kind p are on the board.
func (b *Board) Count(p Piece) int {
	if p >= NoPiece {
		return 0
	}
	return b.pieceCount[p]
}

// Squares returns the square list for piece kind p (valid prefix only).
func (b *Board) Squares(p Piece) []Square {
	if p >= NoPiece {
		return nil
	}
	return b.pieceList[p][:b.pieceCount[p]]
}

// addPiece places p on sq in the mailbox/piece-list layer. Caller is
// responsible for keeping the parallel bitboards in sync.
func (b *Board) addPiece(p Piece, sq Square) {
	b.mailbox[sq] = p
	idx := b.pieceCount[p]
	b.pieceList[p][idx] = sq
	b.pieceIndex[sq] = int8(idx)
	b.pieceCount[p]++
}

// removePiece clears sq, swapping the last square of p's list into the freed
// slot so the list stays dense.
func (b *Board) removePiece(p Piece, sq Square) {
	idx := b.pieceIndex[sq]
	last := b.pieceCount[p] - 1
	lastSq := b.pieceList[p][last]
	b.pieceList[p][idx] = lastSq
	b.pieceIndex[lastSq] = idx
	b.pieceCount[p]--
	b.mailbox[sq] = NoPiece
}

// movePiece relocates p from a known-occupied from to an empty to.
func (b *Board) movePiece(p Piece, from, to Square) {
	idx := b.pieceIndex[from]
	b.pieceList[p][idx] = to
	b.pieceIndex[to] = idx
	b.mailbox[from] = NoPiece
	b.mailbox[to] = p
}
