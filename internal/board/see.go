package board

// SeeGe performs a bounded-iteration Static Exchange Evaluation of the
// capture sequence starting with m on its destination square, and reports
// whether the net material result is at least threshold, without playing
// the move. Pinned attackers of the side to move are excluded from the
// swap unless the board holds no pinners at all (cheap to skip the check
// rather than prove which pinner, if any, would matter); the king may only
// recapture once every other attacker of the opposing side is gone.
//
// Castling is never a capture and is assumed to gain nothing.
func (p *Position) SeeGe(m Move, threshold int) bool {
	if m.IsCastling() {
		return 0 >= threshold
	}

	from, to := m.From(), m.To()

	var capturedValue int
	if m.IsEnPassant() {
		capturedValue = PieceValue[Pawn]
	} else {
		capturedValue = p.PieceAt(to).Value()
	}

	swap := capturedValue - threshold
	if swap < 0 {
		return false
	}

	movedValue := PieceValue[p.PieceAt(from).Type()]
	if m.IsPromotion() {
		// The pawn disappears from the board regardless of outcome; only
		// its pawn value, not the promoted piece's, is ever at stake here.
		movedValue = PieceValue[Pawn]
	}
	swap = movedValue - swap
	if swap <= 0 {
		return true
	}

	occupied := p.AllOccupied &^ SquareBB(from)
	if m.IsEnPassant() {
		occupied &^= SquareBB(epCaptureSquare(p.SideToMove, to))
	}
	occupied |= SquareBB(to)

	diagSliders := p.Pieces[White][Bishop] | p.Pieces[Black][Bishop] | p.Pieces[White][Queen] | p.Pieces[Black][Queen]
	straightSliders := p.Pieces[White][Rook] | p.Pieces[Black][Rook] | p.Pieces[White][Queen] | p.Pieces[Black][Queen]

	stm := p.SideToMove
	attackers := p.AttackersTo(to, occupied)
	res := 1

	for {
		stm = stm.Other()
		attackers &= occupied

		stmAttackers := attackers & p.Occupied[stm]
		if stmAttackers == 0 {
			break
		}
		if p.Pinners(stm.Other())&occupied != 0 {
			stmAttackers &^= p.BlockersForKing(stm)
		}
		if stmAttackers == 0 {
			break
		}

		res ^= 1

		var bb Bitboard
		if bb = stmAttackers & p.Pieces[stm][Pawn]; bb != 0 {
			if swap = PieceValue[Pawn] - swap; swap < res {
				break
			}
			occupied &^= SquareBB(bb.LSB())
			attackers |= BishopAttacks(to, occupied) & diagSliders
		} else if bb = stmAttackers & p.Pieces[stm][Knight]; bb != 0 {
			if swap = PieceValue[Knight] - swap; swap < res {
				break
			}
			occupied &^= SquareBB(bb.LSB())
		} else if bb = stmAttackers & p.Pieces[stm][Bishop]; bb != 0 {
			if swap = PieceValue[Bishop] - swap; swap < res {
				break
			}
			occupied &^= SquareBB(bb.LSB())
			attackers |= BishopAttacks(to, occupied) & diagSliders
		} else if bb = stmAttackers & p.Pieces[stm][Rook]; bb != 0 {
			if swap = PieceValue[Rook] - swap; swap < res {
				break
			}
			occupied &^= SquareBB(bb.LSB())
			attackers |= RookAttacks(to, occupied) & straightSliders
		} else if bb = stmAttackers & p.Pieces[stm][Queen]; bb != 0 {
			if swap = PieceValue[Queen] - swap; swap < res {
				break
			}
			occupied &^= SquareBB(bb.LSB())
			attackers |= (BishopAttacks(to, occupied) & diagSliders) | (RookAttacks(to, occupied) & straightSliders)
		} else {
			// King: may only recapture if the opponent has no attackers left.
			if attackers&^p.Occupied[stm] != 0 {
				res ^= 1
			}
			break
		}
	}

	return res != 0
}
