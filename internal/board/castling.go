package board

// castlingIndex returns which of the four castling rights corresponds to
// color c castling with the rook on rookSquare.
func (p *Position) castlingIndex(c Color, rookSquare Square) int {
	if c == White {
		if rookSquare == p.castlingRookSquare[crWhiteOO] {
			return crWhiteOO
		}
		return crWhiteOOO
	}
	if rookSquare == p.castlingRookSquare[crBlackOO] {
		return crBlackOO
	}
	return crBlackOOO
}

// castleKingDest returns the king's landing square for castling right idx.
func (p *Position) castleKingDest(idx int) Square {
	switch idx {
	case crWhiteOO:
		return G1
	case crWhiteOOO:
		return C1
	case crBlackOO:
		return G8
	default:
		return C8
	}
}

// castleRookDest returns the rook's landing square for castling right idx.
func (p *Position) castleRookDest(idx int) Square {
	switch idx {
	case crWhiteOO:
		return F1
	case crWhiteOOO:
		return D1
	case crBlackOO:
		return F8
	default:
		return D8
	}
}

// castlingRightBit maps a castling index to its CastlingRights bit.
func castlingRightBit(idx int) CastlingRights {
	switch idx {
	case crWhiteOO:
		return WhiteKingSideCastle
	case crWhiteOOO:
		return WhiteQueenSideCastle
	case crBlackOO:
		return BlackKingSideCastle
	default:
		return BlackQueenSideCastle
	}
}

// setCastlingRight registers that color c can castle with the rook
// currently on rookFrom, and fills in the derived path/mask tables. kingFrom
// is the king's starting square for c (equal across all of c's rights but
// passed explicitly since Position doesn't cache it before FEN parsing
// finishes placing pieces).
func (p *Position) setCastlingRight(c Color, kingSide bool, kingFrom, rookFrom Square) {
	idx := castlingIndexFor(c, kingSide)
	bit := castlingRightBit(idx)

	p.st.castleRights |= bit
	p.castlingRookSquare[idx] = rookFrom

	kingDest := p.castleKingDest(idx)
	rookDest := p.castleRookDest(idx)

	// Squares that must be empty (other than the king/rook's own squares)
	// for the castle to be physically possible: the union of the squares
	// the king passes through/lands on and the squares the rook passes
	// through/lands on, minus the king's and rook's current squares (which
	// are trivially "occupied" by the very pieces castling).
	var path Bitboard
	path |= squaresBetweenInclusive(kingFrom, kingDest)
	path |= squaresBetweenInclusive(rookFrom, rookDest)
	path &^= SquareBB(kingFrom)
	path &^= SquareBB(rookFrom)
	p.castlingPath[idx] = path

	p.castlingRightsMask[kingFrom] |= bit
	p.castlingRightsMask[rookFrom] |= bit
}

// squaresBetweenInclusive returns the squares strictly between a and b,
// plus b itself (a is excluded since it always holds the moving piece).
func squaresBetweenInclusive(a, b Square) Bitboard {
	if a == b {
		return SquareBB(b)
	}
	return Between(a, b) | SquareBB(b)
}

// CastleKingDestination returns the king's landing square for a castling
// move, i.e. the square it would occupy in the king-to-destination encoding
// external formats (UCI, SAN) use instead of the internal king-captures-rook
// one. m must be a castling move.
func (p *Position) CastleKingDestination(m Move) Square {
	idx := p.castlingIndex(p.PieceAt(m.From()).Color(), m.To())
	return p.castleKingDest(idx)
}

// IsKingsideCastle reports whether castling move m castles toward the
// kingside (vs queenside). m must be a castling move.
func (p *Position) IsKingsideCastle(m Move) bool {
	idx := p.castlingIndex(p.PieceAt(m.From()).Color(), m.To())
	return idx == crWhiteOO || idx == crBlackOO
}

// CastlingRookSquareFor returns the square of the rook that color c would
// castle with toward the given side, independent of whether that right is
// currently held. Used by notation parsers to reconstruct the
// king-captures-rook encoding from "O-O"/"O-O-O" text.
func (p *Position) CastlingRookSquareFor(c Color, kingSide bool) Square {
	idx := castlingIndexFor(c, kingSide)
	return p.castlingRookSquare[idx]
}

// canCastle reports whether castling right idx is currently legal to play:
// the right hasn't been lost, the path is clear, and (checked by the caller,
// since it needs attack information) the king doesn't pass through check.
func (p *Position) canCastle(idx int) bool {
	if p.st.castleRights&castlingRightBit(idx) == 0 {
		return false
	}
	return p.castlingPath[idx]&p.AllOccupied == 0
}
