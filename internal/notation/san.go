// Package notation formats and parses chess moves as external text (SAN,
// and the UCI coordinate form internal/board itself emits). It lives
// outside internal/board on purpose: the core never needs these strings to
// make/unmake or generate moves, only to talk to the outside world (a UCI
// GUI, a PGN file, a human at a REPL).
package notation

import (
	"strings"

	"github.com/rudzen/ChessLib-sub000/internal/board"
)

// SAN converts a legal move to Standard Algebraic Notation relative to pos
// (the position it is played in, before the move is made).
func SAN(pos *board.Position, m board.Move) string {
	if m == board.NoMove {
		return "-"
	}

	from := m.From()
	to := m.To()
	piece := pos.PieceAt(from)
	if piece == board.NoPiece {
		return m.String()
	}

	var sb strings.Builder

	// Castling is encoded "king captures own rook" (to is the rook's own
	// square), so kingside/queenside is read off Position's castling
	// tables rather than compared against fixed squares.
	if m.IsCastling() {
		if pos.IsKingsideCastle(m) {
			sb.WriteString("O-O")
		} else {
			sb.WriteString("O-O-O")
		}
		appendCheckSuffix(&sb, pos, m)
		return sb.String()
	}

	pt := piece.Type()

	if pt != board.Pawn {
		sb.WriteByte("PNBRQK"[pt])
		sb.WriteString(disambiguation(pos, m, pt))
	}

	isCapture := m.IsCapture(pos)
	if isCapture {
		if pt == board.Pawn {
			sb.WriteByte('a' + byte(from.File()))
		}
		sb.WriteByte('x')
	}

	sb.WriteString(to.String())

	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte("PNBRQK"[m.Promotion()])
	}

	appendCheckSuffix(&sb, pos, m)

	return sb.String()
}

// appendCheckSuffix makes m on a scratch copy of pos to decide between no
// suffix, '+' (check) and '#' (checkmate).
func appendCheckSuffix(sb *strings.Builder, pos *board.Position, m board.Move) {
	after := pos.Copy()
	after.MakeMove(m)
	switch {
	case after.IsCheckmate():
		sb.WriteByte('#')
	case after.InCheck():
		sb.WriteByte('+')
	}
}

// disambiguation returns the SAN disambiguation text needed to distinguish
// m from other legal moves of the same piece type to the same destination:
// empty if none is needed, otherwise the origin file, rank, or both.
func disambiguation(pos *board.Position, m board.Move, pt board.PieceType) string {
	from := m.From()
	to := m.To()
	us := pos.SideToMove
	pieces := pos.Pieces[us][pt]

	var candidates []board.Square
	all := pos.GenerateLegalMoves()
	for i := 0; i < all.Len(); i++ {
		other := all.Get(i)
		if other.To() != to || other.From() == from {
			continue
		}
		if pieces.IsSet(other.From()) {
			candidates = append(candidates, other.From())
		}
	}

	if len(candidates) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, sq := range candidates {
		if sq.File() == from.File() {
			sameFile = true
		}
		if sq.Rank() == from.Rank() {
			sameRank = true
		}
	}

	if !sameFile {
		return string(rune('a' + from.File()))
	}
	if !sameRank {
		return string(rune('1' + from.Rank()))
	}
	return from.String()
}

// ParseSAN parses a SAN string into the move it denotes in pos, matching it
// against pos's legal moves (SAN is inherently position-relative: the same
// text can mean different moves depending on what else could reach the
// destination square).
func ParseSAN(s string, pos *board.Position) (board.Move, error) {
	s = strings.TrimSpace(s)

	if s == "O-O" || s == "0-0" {
		us := pos.SideToMove
		rookSq := pos.CastlingRookSquareFor(us, true)
		return board.NewCastling(pos.KingSquare[us], rookSq), nil
	}
	if s == "O-O-O" || s == "0-0-0" {
		us := pos.SideToMove
		rookSq := pos.CastlingRookSquareFor(us, false)
		return board.NewCastling(pos.KingSquare[us], rookSq), nil
	}

	s = strings.TrimSuffix(s, "+")
	s = strings.TrimSuffix(s, "#")

	promoPiece := board.NoPieceType
	if idx := strings.Index(s, "="); idx >= 0 {
		switch s[idx+1] {
		case 'N':
			promoPiece = board.Knight
		case 'B':
			promoPiece = board.Bishop
		case 'R':
			promoPiece = board.Rook
		case 'Q':
			promoPiece = board.Queen
		}
		s = s[:idx]
	}

	isCapture := strings.Contains(s, "x")
	s = strings.ReplaceAll(s, "x", "")

	pt := board.Pawn
	if len(s) > 0 && s[0] >= 'A' && s[0] <= 'Z' {
		switch s[0] {
		case 'N':
			pt = board.Knight
		case 'B':
			pt = board.Bishop
		case 'R':
			pt = board.Rook
		case 'Q':
			pt = board.Queen
		case 'K':
			pt = board.King
		}
		s = s[1:]
	}

	if len(s) < 2 {
		return board.NoMove, errInvalidSAN(s)
	}
	dest, err := board.ParseSquare(s[len(s)-2:])
	if err != nil {
		return board.NoMove, err
	}
	s = s[:len(s)-2]

	disambigFile, disambigRank := -1, -1
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'h':
			disambigFile = int(c - 'a')
		case c >= '1' && c <= '8':
			disambigRank = int(c - '1')
		}
	}

	moves := pos.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if m.To() != dest {
			continue
		}
		from := m.From()
		if pos.PieceAt(from).Type() != pt {
			continue
		}
		if disambigFile >= 0 && from.File() != disambigFile {
			continue
		}
		if disambigRank >= 0 && from.Rank() != disambigRank {
			continue
		}
		if isCapture && !m.IsCapture(pos) {
			continue
		}
		if promoPiece != board.NoPieceType && (!m.IsPromotion() || m.Promotion() != promoPiece) {
			continue
		}
		return m, nil
	}

	return board.NoMove, errNoSuchMove(s + dest.String())
}

// MovesToSAN converts a sequence of moves, played in order from pos, to
// their SAN strings. pos is not mutated; the conversion plays the moves on
// an internal copy.
func MovesToSAN(pos *board.Position, moves []board.Move) []string {
	p := pos.Copy()
	result := make([]string, len(moves))
	for i, m := range moves {
		result[i] = SAN(p, m)
		p.MakeMove(m)
	}
	return result
}

type sanError string

func (e sanError) Error() string { return string(e) }

func errInvalidSAN(s string) error { return sanError("notation: invalid SAN move: " + s) }
func errNoSuchMove(s string) error { return sanError("notation: no legal move matches: " + s) }
