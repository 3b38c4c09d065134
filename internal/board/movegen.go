package board

// GenerationKind selects which subset of pseudo-legal moves GenerateAll
// produces.
type GenerationKind int

const (
	// Captures yields pseudo-legal captures and queen promotions.
	Captures GenerationKind = iota
	// Quiets yields pseudo-legal non-captures and under-promotions.
	Quiets
	// NonEvasions yields captures union quiets, only valid outside check.
	NonEvasions
	// Evasions yields moves that resolve check.
	Evasions
	// QuietChecks yields non-captures that give check.
	QuietChecks
	// Legal yields fully legal moves (dispatches to Evasions/NonEvasions
	// then filters by IsLegal).
	Legal
)

// GenerateAll appends every move of the requested kind to ml. For Legal it
// dispatches to Evasions or NonEvasions depending on whether the side to
// move is in check, then drops moves that fail IsLegal.
func (p *Position) GenerateAll(ml *MoveList, kind GenerationKind) {
	if kind == Legal {
		if p.InCheck() {
			p.generatePseudoLegal(ml, Evasions)
		} else {
			p.generatePseudoLegal(ml, NonEvasions)
		}
		p.filterLegalInPlace(ml)
		return
	}
	p.generatePseudoLegal(ml, kind)
}

// generatePseudoLegal implements the non-Legal generation kinds.
func (p *Position) generatePseudoLegal(ml *MoveList, kind GenerationKind) {
	us := p.SideToMove
	them := us.Other()
	occupied := p.AllOccupied

	if kind == Evasions {
		// King steps along a checking slider's line stay attacked after the
		// king moves; excluding the whole line up front spares the legality
		// filter those moves.
		ksq := p.KingSquare[us]
		var sliderAttacks Bitboard
		sliders := p.Checkers() &^ (p.Pieces[them][Pawn] | p.Pieces[them][Knight])
		for sliders != 0 {
			checker := sliders.PopLSB()
			sliderAttacks |= Line(checker, ksq) &^ SquareBB(checker)
		}

		p.generateKingMoves(ml, kind, ^p.Occupied[us]&^sliderAttacks)

		if MoreThanOne(p.Checkers()) {
			// Double check: only the king can move.
			return
		}

		checker := p.Checkers().LSB()
		target := Between(ksq, checker) | SquareBB(checker)
		p.generatePawnMoves(ml, kind, target)
		for pt := Knight; pt <= Queen; pt++ {
			p.generatePieceMoves(ml, pt, kind, target)
		}
		return
	}

	var target Bitboard
	switch kind {
	case Captures:
		target = p.Occupied[them]
	case Quiets, QuietChecks:
		target = ^occupied
	case NonEvasions:
		target = ^p.Occupied[us]
	}

	p.generatePawnMoves(ml, kind, target)

	for pt := Knight; pt <= Queen; pt++ {
		p.generatePieceMoves(ml, pt, kind, target)
	}

	p.generateKingMoves(ml, kind, target)

	if kind == Quiets || kind == NonEvasions {
		if !p.InCheck() {
			p.generateCastling(ml)
		}
	}
}

// generatePawnMoves implements step 1 of the generation algorithm: pushes,
// promotions, captures and en passant, each restricted to kind and target.
func (p *Position) generatePawnMoves(ml *MoveList, kind GenerationKind, target Bitboard) {
	us := p.SideToMove
	them := us.Other()
	pawns := p.Pieces[us][Pawn]
	occupied := p.AllOccupied
	empty := ^occupied
	enemies := p.Occupied[them]

	var rank7, rank3 Bitboard
	var up int
	if us == White {
		rank7, rank3 = Rank7, Rank3
		up = 8
	} else {
		rank7, rank3 = Rank2, Rank6
		up = -8
	}

	pawnsOn7 := pawns & rank7
	pawnsNot7 := pawns & ^rank7

	if kind != Captures {
		var push1, push2 Bitboard
		if us == White {
			push1 = pawnsNot7.North() & empty
			push2 = (push1 & rank3).North() & empty
		} else {
			push1 = pawnsNot7.South() & empty
			push2 = (push1 & rank3).South() & empty
		}

		if kind == Evasions {
			push1 &= target
			push2 &= target
		}

		if kind == QuietChecks {
			// A blocker pawn on the enemy king's file is blocking a rook or
			// queen along that file; pushing it stays on the line and
			// discovers nothing.
			checkSq := p.CheckedSquares(Pawn)
			discovered := p.BlockersForKing(them) & pawns &^ rank7 &^ FileMask[p.KingSquare[them].File()]
			push1 &= checkSq | shiftUp(discovered, up)
			push2 &= checkSq | shiftUp(discovered, 2*up)
		}

		for push1 != 0 {
			to := push1.PopLSB()
			ml.Add(NewMove(Square(int(to)-up), to))
		}
		for push2 != 0 {
			to := push2.PopLSB()
			ml.Add(NewMove(Square(int(to)-2*up), to))
		}
	}

	if pawnsOn7 != 0 {
		var pushPromo, capL, capR Bitboard
		if us == White {
			pushPromo = pawnsOn7.North() & empty
			capL = pawnsOn7.NorthWest() & enemies
			capR = pawnsOn7.NorthEast() & enemies
		} else {
			pushPromo = pawnsOn7.South() & empty
			capL = pawnsOn7.SouthWest() & enemies
			capR = pawnsOn7.SouthEast() & enemies
		}
		if kind == Evasions {
			pushPromo &= target
			capL &= target
			capR &= target
		}
		if kind == QuietChecks {
			// Only the non-capturing knight under-promotion can be a quiet
			// check, and only when the knight checks from the promotion
			// square itself.
			pushPromo &= PseudoAttacks(Knight, p.KingSquare[them])
			capL, capR = 0, 0
		}

		for pushPromo != 0 {
			to := pushPromo.PopLSB()
			addPromotionsForKind(ml, Square(int(to)-up), to, kind)
		}
		for capL != 0 {
			to := capL.PopLSB()
			addPromotionsForKind(ml, Square(int(to)-up+1), to, kind)
		}
		for capR != 0 {
			to := capR.PopLSB()
			addPromotionsForKind(ml, Square(int(to)-up-1), to, kind)
		}
	}

	if kind != Quiets && kind != QuietChecks {
		var capL, capR Bitboard
		if us == White {
			capL = pawnsNot7.NorthWest() & enemies
			capR = pawnsNot7.NorthEast() & enemies
		} else {
			capL = pawnsNot7.SouthWest() & enemies
			capR = pawnsNot7.SouthEast() & enemies
		}
		if kind == Evasions {
			capL &= target
			capR &= target
		}
		for capL != 0 {
			to := capL.PopLSB()
			ml.Add(NewMove(Square(int(to)-up+1), to))
		}
		for capR != 0 {
			to := capR.PopLSB()
			ml.Add(NewMove(Square(int(to)-up-1), to))
		}
	}

	if ep := p.EnPassant(); ep != NoSquare && kind != Quiets && kind != QuietChecks {
		if kind == Evasions && p.Checkers().LSB() != epCaptureSquare(us, ep) {
			// The capture only resolves check if the checker is the pawn
			// that just double-pushed to ep's capture square; otherwise
			// removing it leaves the real checker in place.
			return
		}
		attackers := pawnsNot7 & PawnAttacks(ep, them)
		for attackers != 0 {
			from := attackers.PopLSB()
			ml.Add(NewEnPassant(from, ep))
		}
	}
}

// shiftUp shifts bb by n squares along the file (positive = toward rank 8).
func shiftUp(bb Bitboard, n int) Bitboard {
	if n > 0 {
		return bb << uint(n)
	}
	return bb >> uint(-n)
}

// addPromotionsForKind emits the promotion pieces appropriate for kind: the
// queen promotion counts as a capture (it wins material like one), the
// under-promotions as quiets, so Captures and Quiets partition the full set
// that Evasions/NonEvasions emit.
func addPromotionsForKind(ml *MoveList, from, to Square, kind GenerationKind) {
	switch kind {
	case Captures:
		ml.Add(NewPromotion(from, to, Queen))
	case Evasions, NonEvasions:
		ml.Add(NewPromotion(from, to, Queen))
		ml.Add(NewPromotion(from, to, Rook))
		ml.Add(NewPromotion(from, to, Bishop))
		ml.Add(NewPromotion(from, to, Knight))
	case Quiets:
		ml.Add(NewPromotion(from, to, Rook))
		ml.Add(NewPromotion(from, to, Bishop))
		ml.Add(NewPromotion(from, to, Knight))
	case QuietChecks:
		ml.Add(NewPromotion(from, to, Knight))
	}
}

// generatePieceMoves implements step 2 for Knight/Bishop/Rook/Queen.
func (p *Position) generatePieceMoves(ml *MoveList, pt PieceType, kind GenerationKind, target Bitboard) {
	us := p.SideToMove
	them := us.Other()
	occupied := p.AllOccupied
	pieces := p.Pieces[us][pt]
	discovered := p.BlockersForKing(them)

	for pieces != 0 {
		from := pieces.PopLSB()

		if kind == QuietChecks {
			if p.CheckedSquares(pt)&PseudoAttacks(pt, from) == 0 && SquareBB(from)&discovered == 0 {
				continue
			}
		}

		var attacks Bitboard
		switch pt {
		case Knight:
			attacks = PseudoAttacks(Knight, from)
		case Bishop:
			attacks = BishopAttacks(from, occupied)
		case Rook:
			attacks = RookAttacks(from, occupied)
		case Queen:
			attacks = QueenAttacks(from, occupied)
		}
		attacks &= target

		if kind == QuietChecks {
			theirKing := p.KingSquare[them]
			checkAttacks := attacks & p.CheckedSquares(pt)
			blockerAttacks := Bitboard(0)
			if SquareBB(from)&discovered != 0 {
				blockerAttacks = attacks &^ Line(from, theirKing)
			}
			attacks = checkAttacks | blockerAttacks
		}

		for attacks != 0 {
			to := attacks.PopLSB()
			ml.Add(NewMove(from, to))
		}
	}
}

// generateKingMoves implements step 3.
func (p *Position) generateKingMoves(ml *MoveList, kind GenerationKind, target Bitboard) {
	us := p.SideToMove
	from := p.KingSquare[us]

	if kind == QuietChecks {
		// A king has no direct checks; it only checks by discovery, and
		// only by leaving the line it shares with the enemy king's attacker.
		them := us.Other()
		if SquareBB(from)&p.BlockersForKing(them) == 0 {
			return
		}
		target &^= Line(from, p.KingSquare[them])
	}

	attacks := PseudoAttacks(King, from) & target
	for attacks != 0 {
		to := attacks.PopLSB()
		ml.Add(NewMove(from, to))
	}
}

// generateCastling implements step 4: Chess960-aware castling, only called
// when the side to move is not in check.
func (p *Position) generateCastling(ml *MoveList) {
	us := p.SideToMove
	kingFrom := p.KingSquare[us]

	for _, idx := range castlingIndicesFor(us) {
		if !p.canCastle(idx) || !p.castleIsSafe(idx) {
			continue
		}
		ml.Add(NewCastling(kingFrom, p.castlingRookSquare[idx]))
	}
}

// castleIsSafe reports whether exercising castling right idx avoids moving
// the king through or onto an attacked square and (Chess960 only) avoids
// letting the departing rook uncover a slider attack on the king's
// destination; it returns false if either would happen. It does
// not check rights or path emptiness; that's canCastle's half of the test.
func (p *Position) castleIsSafe(idx int) bool {
	us := colorOfCastleIndex(idx)
	them := us.Other()
	kingFrom := p.KingSquare[us]
	kingDest := p.castleKingDest(idx)
	rookSq := p.castlingRookSquare[idx]

	if p.squaresAttacked(squaresBetweenInclusive(kingFrom, kingDest)|SquareBB(kingFrom), them) {
		return false
	}

	if p.Chess960 {
		occAfter := (p.AllOccupied &^ (SquareBB(kingFrom) | SquareBB(rookSq))) | SquareBB(kingDest) | SquareBB(p.castleRookDest(idx))
		if p.AttackersByColor(kingDest, them, occAfter)&^SquareBB(rookSq) != 0 {
			return false
		}
	}
	return true
}

// castlingIndicesFor returns the castling-right indices belonging to color c.
func castlingIndicesFor(c Color) [2]int {
	if c == White {
		return [2]int{crWhiteOO, crWhiteOOO}
	}
	return [2]int{crBlackOO, crBlackOOO}
}

// squaresAttacked reports whether any square in bb is attacked by byColor.
func (p *Position) squaresAttacked(bb Bitboard, byColor Color) bool {
	for bb != 0 {
		sq := bb.PopLSB()
		if p.IsSquareAttacked(sq, byColor) {
			return true
		}
	}
	return false
}

// filterLegalInPlace drops moves from ml that fail IsLegal, compacting the
// survivors to the front.
func (p *Position) filterLegalInPlace(ml *MoveList) {
	kept := NewMoveList()
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		if p.IsLegal(m) {
			kept.Add(m)
		}
	}
	*ml = *kept
}

// IsLegal reports whether pseudo-legal move m is legal in the current
// position, per the four cases of the legal filter: castling (king's path
// free of attacks), king move (destination not attacked once the king has
// left its origin), en passant (no discovered slider attack through the
// vacated squares), and otherwise pinned pieces may only move along the
// pin line.
func (p *Position) IsLegal(m Move) bool {
	us := p.SideToMove
	them := us.Other()
	from := m.From()
	to := m.To()
	ksq := p.KingSquare[us]

	if m.IsCastling() {
		// Generation already enforced path safety, but a move arriving from
		// outside the generator (a transposition table, user input) has not
		// been near those checks yet.
		return p.castleIsSafe(p.castlingIndex(us, to))
	}

	if from == ksq {
		occ := p.AllOccupied &^ SquareBB(from)
		return p.AttackersByColor(to, them, occ) == 0
	}

	if m.IsEnPassant() {
		capSq := epCaptureSquare(us, to)
		occ := (p.AllOccupied &^ (SquareBB(from) | SquareBB(capSq))) | SquareBB(to)
		diag := BishopAttacks(ksq, occ) & (p.Pieces[them][Bishop] | p.Pieces[them][Queen])
		straight := RookAttacks(ksq, occ) & (p.Pieces[them][Rook] | p.Pieces[them][Queen])
		return diag == 0 && straight == 0
	}

	if SquareBB(from)&p.BlockersForKing(us) == 0 {
		return true
	}
	return Aligned(from, to, ksq)
}

// IsPseudoLegal reports whether m, constructed independently of move
// generation (e.g. read off a transposition table), is a pseudo-legal move
// in the current position. It does not call GenerateAll; it validates m's
// shape directly against the board.
func (p *Position) IsPseudoLegal(m Move) bool {
	us := p.SideToMove
	from, to := m.From(), m.To()
	piece := p.PieceAt(from)

	if piece == NoPiece || piece.Color() != us {
		return false
	}
	if from == to {
		return false
	}

	pt := piece.Type()
	if m.IsPromotion() && pt != Pawn {
		return false
	}

	// While in check a non-king move must block the checker or capture it;
	// nothing but a king move can answer a double check. This is what keeps
	// MakeMove safe against a stale transposition-table move.
	if checkers := p.Checkers(); checkers != 0 && pt != King {
		if MoreThanOne(checkers) {
			return false
		}
		checker := checkers.LSB()
		capSq := to
		if m.IsEnPassant() {
			capSq = epCaptureSquare(us, to)
		}
		if capSq != checker && Between(p.KingSquare[us], checker)&SquareBB(to) == 0 {
			return false
		}
	}

	if m.IsCastling() {
		if pt != King || p.InCheck() {
			return false
		}
		idx := p.castlingIndex(us, to)
		if p.castlingRookSquare[idx] != to {
			return false
		}
		return p.canCastle(idx)
	}

	if m.IsEnPassant() {
		return pt == Pawn && to == p.EnPassant() && PawnAttacks(from, us)&SquareBB(to) != 0
	}

	ownOccupied := p.Occupied[us]
	if ownOccupied&SquareBB(to) != 0 {
		return false
	}

	switch pt {
	case Pawn:
		return p.isPseudoLegalPawnMove(m, from, to)
	case Knight:
		return PseudoAttacks(Knight, from)&SquareBB(to) != 0
	case Bishop:
		return BishopAttacks(from, p.AllOccupied)&SquareBB(to) != 0
	case Rook:
		return RookAttacks(from, p.AllOccupied)&SquareBB(to) != 0
	case Queen:
		return QueenAttacks(from, p.AllOccupied)&SquareBB(to) != 0
	case King:
		return PseudoAttacks(King, from)&SquareBB(to) != 0
	}
	return false
}

func (p *Position) isPseudoLegalPawnMove(m Move, from, to Square) bool {
	us := p.SideToMove
	diff := int(to) - int(from)
	onRank7 := from.RelativeRank(us) == 6

	if onRank7 != m.IsPromotion() {
		// A pawn move off the 7th rank must be a promotion, and a
		// promotion flag only makes sense from the 7th rank.
		return false
	}

	up := 8
	if us == Black {
		up = -8
	}

	if diff == up {
		return p.IsEmpty(to)
	}
	if diff == 2*up && from.RelativeRank(us) == 1 {
		mid := Square(int(from) + up)
		return p.IsEmpty(mid) && p.IsEmpty(to)
	}
	if (diff == up-1 || diff == up+1) && PawnAttacks(from, us)&SquareBB(to) != 0 {
		return !p.IsEmpty(to) && p.PieceAt(to).Color() != us
	}
	return false
}

// GenerateLegalMoves generates all legal moves for the position.
func (p *Position) GenerateLegalMoves() *MoveList {
	ml := NewMoveList()
	p.GenerateAll(ml, Legal)
	return ml
}

// GeneratePseudoLegalMoves generates all pseudo-legal moves (may leave the
// king in check).
func (p *Position) GeneratePseudoLegalMoves() *MoveList {
	ml := NewMoveList()
	if p.InCheck() {
		p.GenerateAll(ml, Evasions)
	} else {
		p.GenerateAll(ml, NonEvasions)
	}
	return ml
}

// GenerateCaptures generates all legal capture moves (including queen
// promotions).
func (p *Position) GenerateCaptures() *MoveList {
	ml := NewMoveList()
	if p.InCheck() {
		evasions := NewMoveList()
		p.GenerateAll(evasions, Evasions)
		for i := 0; i < evasions.Len(); i++ {
			m := evasions.Get(i)
			if m.IsPromotion() && m.Promotion() == Queen || !m.IsPromotion() && m.IsCapture(p) {
				ml.Add(m)
			}
		}
	} else {
		p.GenerateAll(ml, Captures)
	}
	p.filterLegalInPlace(ml)
	return ml
}

// HasLegalMoves returns true if the side to move has any legal moves.
func (p *Position) HasLegalMoves() bool {
	ml := NewMoveList()
	if p.InCheck() {
		p.GenerateAll(ml, Evasions)
	} else {
		p.GenerateAll(ml, NonEvasions)
	}
	for i := 0; i < ml.Len(); i++ {
		if p.IsLegal(ml.Get(i)) {
			return true
		}
	}
	return false
}

// IsCheckmate returns true if the position is checkmate.
func (p *Position) IsCheckmate() bool {
	return p.InCheck() && !p.HasLegalMoves()
}

// IsStalemate returns true if the position is stalemate.
func (p *Position) IsStalemate() bool {
	return !p.InCheck() && !p.HasLegalMoves()
}

// IsDraw returns true if the position is a draw by the 50-move rule,
// insufficient material, stalemate, or repetition.
func (p *Position) IsDraw() bool {
	if p.Rule50() >= 100 {
		return true
	}
	if p.Repetition() != 0 {
		return true
	}
	if p.IsStalemate() {
		return true
	}
	return p.IsInsufficientMaterial()
}

// IsInsufficientMaterial returns true if neither side has enough material to
// deliver checkmate.
func (p *Position) IsInsufficientMaterial() bool {
	if p.Pieces[White][Pawn]|p.Pieces[Black][Pawn] != 0 ||
		p.Pieces[White][Rook]|p.Pieces[Black][Rook] != 0 ||
		p.Pieces[White][Queen]|p.Pieces[Black][Queen] != 0 {
		return false
	}

	wKnights := p.Pieces[White][Knight].PopCount()
	wBishops := p.Pieces[White][Bishop].PopCount()
	bKnights := p.Pieces[Black][Knight].PopCount()
	bBishops := p.Pieces[Black][Bishop].PopCount()

	if wKnights+wBishops+bKnights+bBishops == 0 {
		return true
	}
	if wKnights+wBishops <= 1 && bKnights+bBishops == 0 {
		return true
	}
	if bKnights+bBishops <= 1 && wKnights+wBishops == 0 {
		return true
	}

	return false
}
