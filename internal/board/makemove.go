package board

// epCapturable reports whether a pawn could actually capture en passant on
// ep next ply. The en-passant file is only worth hashing when this holds;
// otherwise two positions that differ only by a non-capturable ep square
// would hash differently despite being equivalent for every purpose other
// than FEN round-tripping. The capturing side is derived from ep's rank
// (rank 3 means White just double-pushed, so Black captures) rather than
// from SideToMove: MakeMove records the square before flipping the side,
// ComputeHash and clearEnPassant run after, and both must agree.
func epCapturable(p *Position, ep Square) bool {
	if ep.Rank() == 2 {
		return pawnAttacks[White][ep]&p.Pieces[Black][Pawn] != 0
	}
	return pawnAttacks[Black][ep]&p.Pieces[White][Pawn] != 0
}

// setEnPassant records a new en-passant target square, but only when the
// opponent can actually capture there next ply; a double push with no enemy
// pawn beside it leaves no en-passant right at all, so the accessor, the FEN
// emitter and the hash all agree that nothing happened.
func (p *Position) setEnPassant(sq Square) {
	if sq == NoSquare || !epCapturable(p, sq) {
		return
	}
	p.st.enPassant = sq
	p.st.key ^= ZobristEnPassant(sq.File())
}

// clearEnPassant un-hashes the current en-passant file (applying the same
// capturability predicate used when it was set) and clears the target.
func (p *Position) clearEnPassant() {
	if ep := p.st.enPassant; ep != NoSquare && epCapturable(p, ep) {
		p.st.key ^= ZobristEnPassant(ep.File())
	}
	p.st.enPassant = NoSquare
}

// MakeMove plays m, pushing a new State onto the stack. Call UnmakeMove with
// the same m to restore the prior position; states must be unmade in the
// reverse order they were made (no random-access undo).
func (p *Position) MakeMove(m Move) {
	assert(p.Ply+1 < maxStates, "MakeMove: State stack exhausted")

	us := p.SideToMove
	them := us.Other()
	from, to := m.From(), m.To()
	piece := p.PieceAt(from)
	pt := piece.Type()

	prev := p.st
	next := &p.states[p.Ply+1]
	prev.copyTo(next)
	p.st = next
	p.Ply++

	st := p.st
	st.key = prev.key
	st.lastMove = m
	st.rule50++
	st.pliesFromNull++

	st.key ^= ZobristSideToMove()

	if st.enPassant != NoSquare {
		p.clearEnPassant()
	}

	switch {
	case m.IsCastling():
		p.doCastle(us, from, to, true)
		st.capturedPiece = NoPiece

	case m.IsEnPassant():
		assert(pt == Pawn, "MakeMove: en passant by a non-pawn")
		assert(to == prev.enPassant, "MakeMove: en passant target mismatch")
		capSq := epCaptureSquare(us, to)
		captured := p.removePiece(capSq)
		st.key ^= ZobristPiece(them, Pawn, capSq)
		st.pawnKey ^= ZobristPiece(them, Pawn, capSq)
		st.materialKey ^= ZobristPiece(them, Pawn, Square(p.board.Count(captured)))
		st.capturedPiece = captured

		p.movePiece(from, to)
		st.key ^= ZobristPiece(us, Pawn, from) ^ ZobristPiece(us, Pawn, to)
		st.pawnKey ^= ZobristPiece(us, Pawn, from) ^ ZobristPiece(us, Pawn, to)

		st.rule50 = 0

	default:
		var captured Piece = NoPiece
		if !p.IsEmpty(to) {
			captured = p.removePiece(to)
			st.key ^= ZobristPiece(them, captured.Type(), to)
			st.materialKey ^= ZobristPiece(them, captured.Type(), Square(p.board.Count(captured)))
			if captured.Type() == Pawn {
				st.pawnKey ^= ZobristPiece(them, Pawn, to)
			} else {
				st.nonPawnMat[them] -= captured.Value()
			}
			st.rule50 = 0
		}
		st.capturedPiece = captured

		if pt == Pawn {
			st.rule50 = 0

			if m.IsPromotion() {
				p.removePiece(from)
				st.key ^= ZobristPiece(us, Pawn, from)
				st.pawnKey ^= ZobristPiece(us, Pawn, from)
				st.materialKey ^= ZobristPiece(us, Pawn, Square(p.board.Count(NewPiece(Pawn, us))))

				promo := m.Promotion()
				p.setPiece(NewPiece(promo, us), to)
				st.key ^= ZobristPiece(us, promo, to)
				st.materialKey ^= ZobristPiece(us, promo, Square(p.board.Count(NewPiece(promo, us))-1))
				st.nonPawnMat[us] += PieceValue[promo]
			} else {
				p.movePiece(from, to)
				st.key ^= ZobristPiece(us, Pawn, from) ^ ZobristPiece(us, Pawn, to)
				st.pawnKey ^= ZobristPiece(us, Pawn, from) ^ ZobristPiece(us, Pawn, to)

				if abs(int(to)-int(from)) == 16 {
					epSq := Square((int(from) + int(to)) / 2)
					p.setEnPassant(epSq)
				}
			}
		} else {
			p.movePiece(from, to)
			st.key ^= ZobristPiece(us, pt, from) ^ ZobristPiece(us, pt, to)
		}
	}

	if st.castleRights != NoCastling {
		lost := p.castlingRightsMask[from] | p.castlingRightsMask[to]
		if lost&st.castleRights != 0 {
			st.key ^= ZobristCastling(st.castleRights)
			st.castleRights &^= lost
			st.key ^= ZobristCastling(st.castleRights)
		}
	}

	p.SideToMove = them

	p.UpdateCheckers()
	p.setCheckInfo()
	st.updateRepetition()
}

// doCastle executes the king/rook relocation for a castling move. forward
// true performs the move, false reverses it (used by UnmakeMove); from is
// always the king's square and to the rook's square for the direction
// actually played, matching the move's encoding regardless of direction.
func (p *Position) doCastle(c Color, kingFrom, rookFrom Square, forward bool) {
	idx := p.castlingIndex(c, rookFrom)
	kingTo := p.castleKingDest(idx)
	rookTo := p.castleRookDest(idx)

	if !forward {
		kingFrom, kingTo = kingTo, kingFrom
		rookFrom, rookTo = rookTo, rookFrom
	}

	// Remove both pieces from their origin squares before placing either at
	// its destination: in Chess960 the destination squares can coincide
	// with an origin square (e.g. rook already stands where the king is
	// going), and a naive move-then-move would clobber it.
	p.removePiece(kingFrom)
	p.removePiece(rookFrom)
	p.setPiece(NewPiece(King, c), kingTo)
	p.setPiece(NewPiece(Rook, c), rookTo)

	if forward {
		st := p.st
		st.key ^= ZobristPiece(c, King, kingFrom) ^ ZobristPiece(c, King, kingTo)
		st.key ^= ZobristPiece(c, Rook, rookFrom) ^ ZobristPiece(c, Rook, rookTo)
	}
}

// UnmakeMove reverses the effect of MakeMove(m); m must be the most recent
// move passed to MakeMove and not yet unmade.
func (p *Position) UnmakeMove(m Move) {
	assert(p.st.previous != nil, "UnmakeMove: no move to unmake")

	them := p.SideToMove
	us := them.Other()
	from, to := m.From(), m.To()
	st := p.st

	p.SideToMove = us

	switch {
	case m.IsCastling():
		p.doCastle(us, from, to, false)

	case m.IsEnPassant():
		p.movePiece(to, from)
		capSq := epCaptureSquare(us, to)
		p.setPiece(NewPiece(Pawn, them), capSq)

	default:
		if m.IsPromotion() {
			p.removePiece(to)
			p.setPiece(NewPiece(Pawn, us), from)
		} else {
			p.movePiece(to, from)
		}
		if st.capturedPiece != NoPiece {
			p.setPiece(st.capturedPiece, to)
		}
	}

	p.Ply--
	p.st = st.previous
}

// MakeNullMove plays a null move: no piece moves, but side to move flips and
// the en-passant right (if any) is cleared. Used by null-move pruning in
// search; never generated by move generation. The side to move must not be
// in check (a null move would then "resolve" the check by doing nothing).
func (p *Position) MakeNullMove() {
	assert(p.st.checkers == 0, "MakeNullMove: side to move is in check")
	assert(p.Ply+1 < maxStates, "MakeNullMove: State stack exhausted")

	prev := p.st
	next := &p.states[p.Ply+1]
	prev.copyTo(next)
	p.st = next
	p.Ply++

	st := p.st
	st.key = prev.key ^ ZobristSideToMove()
	st.rule50++
	st.pliesFromNull = 0
	st.lastMove = NoMove

	if st.enPassant != NoSquare {
		p.clearEnPassant()
	}

	p.SideToMove = p.SideToMove.Other()
	p.UpdateCheckers()
	p.setCheckInfo()
	st.updateRepetition()
}

// UnmakeNullMove reverses MakeNullMove.
func (p *Position) UnmakeNullMove() {
	assert(p.st.previous != nil, "UnmakeNullMove: no null move to unmake")
	p.SideToMove = p.SideToMove.Other()
	p.Ply--
	p.st = p.st.previous
}
