package board

import "fmt"

// Move encodes a chess move in 16 bits:
// bits 0-5:   from square (0-63)
// bits 6-11:  to square (0-63)
// bits 12-13: promotion piece (0=Knight, 1=Bishop, 2=Rook, 3=Queen)
// bits 14-15: flags (0=normal, 1=promotion, 2=en passant, 3=castling)
//
// Castling is encoded "king captures own rook": from is the king's square,
// to is the castling rook's square. This is what makes Chess960 castling
// well-defined (the king's and rook's destinations are derived from the
// Position's castling tables, not from the move itself); MovedPiece(m)
// is a king while PieceAt(to) may be a rook. Standard-chess UCI strings
// still read e1g1-style; translate with Move.UCI, not Move.String.
type Move uint16

// Move flags
const (
	FlagNormal    uint16 = 0 << 14
	FlagPromotion uint16 = 1 << 14
	FlagEnPassant uint16 = 2 << 14
	FlagCastling  uint16 = 3 << 14
)

// NoMove represents an invalid or null move.
const NoMove Move = 0

// NewMove creates a normal move.
func NewMove(from, to Square) Move {
	return Move(from) | Move(to)<<6
}

// NewPromotion creates a promotion move.
func NewPromotion(from, to Square, promo PieceType) Move {
	promoIdx := promo - Knight
	return Move(from) | Move(to)<<6 | Move(promoIdx)<<12 | Move(FlagPromotion)
}

// NewEnPassant creates an en passant capture move.
func NewEnPassant(from, to Square) Move {
	return Move(from) | Move(to)<<6 | Move(FlagEnPassant)
}

// NewCastling creates a castling move: from is the king's square, to is the
// castling rook's square (the "king captures own rook" convention).
func NewCastling(kingFrom, rookSquare Square) Move {
	return Move(kingFrom) | Move(rookSquare)<<6 | Move(FlagCastling)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square. For castling this is the rook's
// square, not the king's landing square; see Position.castleKingDest.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

// Flag returns the move flag.
func (m Move) Flag() uint16 {
	return uint16(m) & 0xC000
}

// Promotion returns the promotion piece type (only valid if IsPromotion() is true).
func (m Move) Promotion() PieceType {
	return PieceType((m>>12)&3) + Knight
}

// IsPromotion returns true if this is a promotion move.
func (m Move) IsPromotion() bool {
	return m.Flag() == FlagPromotion
}

// IsCastling returns true if this is a castling move.
func (m Move) IsCastling() bool {
	return m.Flag() == FlagCastling
}

// IsEnPassant returns true if this is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.Flag() == FlagEnPassant
}

// IsCapture returns true if this move captures a piece. Castling is never a
// capture even though it encodes to = the rook's square.
func (m Move) IsCapture(pos *Position) bool {
	if m.IsEnPassant() {
		return true
	}
	if m.IsCastling() {
		return false
	}
	return !pos.IsEmpty(m.To())
}

// IsQuiet returns true if this is not a capture or promotion.
func (m Move) IsQuiet(pos *Position) bool {
	return !m.IsCapture(pos) && !m.IsPromotion()
}

// String returns the internal from/to encoding as a UCI-shaped string. For
// castling moves this prints the king-captures-rook squares, not the king's
// final landing square; use UCI for the external wire format.
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}

	s := m.From().String() + m.To().String()

	if m.IsPromotion() {
		promoChars := []byte{'n', 'b', 'r', 'q'}
		s += string(promoChars[m.Promotion()-Knight])
	}

	return s
}

// UCI renders m the way the UCI protocol expects: "(none)" for a null move,
// king-to-destination for castling in standard chess, king-captures-rook for
// castling in Chess960, and a trailing promotion letter otherwise.
func (m Move) UCI(pos *Position) string {
	if m == NoMove {
		return "(none)"
	}

	if m.IsCastling() {
		from := m.From()
		idx := pos.castlingIndex(pos.PieceAt(from).Color(), m.To())
		if pos.Chess960 {
			return from.String() + m.To().String()
		}
		return from.String() + pos.castleKingDest(idx).String()
	}

	return m.String()
}

// ParseMove parses a UCI format move string.
func ParseMove(s string, pos *Position) (Move, error) {
	if len(s) < 4 {
		return NoMove, fmt.Errorf("invalid move string: %s", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}

	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}

	if len(s) == 5 {
		var promo PieceType
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return NoMove, fmt.Errorf("invalid promotion piece: %c", s[4])
		}
		return NewPromotion(from, to, promo), nil
	}

	piece := pos.PieceAt(from)
	if piece == NoPiece {
		return NoMove, fmt.Errorf("no piece at %s", from)
	}

	pt := piece.Type()

	if pt == King {
		// Standard-chess UCI writes castling as king-to-destination (e1g1);
		// Chess960 UCI writes king-captures-rook directly, which
		// ParseSquare(to) has already produced.
		if !pos.Chess960 && abs(int(to)-int(from)) == 2 {
			kingSide := to > from
			idx := castlingIndexFor(piece.Color(), kingSide)
			return NewCastling(from, pos.castlingRookSquare[idx]), nil
		}
		if rights := pos.CastlingRights(); rights != NoCastling {
			for idx := 0; idx < 4; idx++ {
				if colorOfCastleIndex(idx) == piece.Color() && pos.castlingRookSquare[idx] == to {
					return NewCastling(from, to), nil
				}
			}
		}
	}

	if pt == Pawn && to == pos.EnPassant() {
		return NewEnPassant(from, to), nil
	}

	return NewMove(from, to), nil
}

func castlingIndexFor(c Color, kingSide bool) int {
	switch {
	case c == White && kingSide:
		return crWhiteOO
	case c == White && !kingSide:
		return crWhiteOOO
	case c == Black && kingSide:
		return crBlackOO
	default:
		return crBlackOOO
	}
}

func colorOfCastleIndex(idx int) Color {
	if idx == crWhiteOO || idx == crWhiteOOO {
		return White
	}
	return Black
}

// MoveList is a fixed-size list of moves to avoid allocations.
type MoveList struct {
	moves [256]Move
	count int
}

// NewMoveList creates an empty move list.
func NewMoveList() *MoveList {
	return &MoveList{}
}

// Add adds a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Set sets the move at index i.
func (ml *MoveList) Set(i int, m Move) {
	ml.moves[i] = m
}

// Swap swaps two moves in the list.
func (ml *MoveList) Swap(i, j int) {
	ml.moves[i], ml.moves[j] = ml.moves[j], ml.moves[i]
}

// Clear clears the list.
func (ml *MoveList) Clear() {
	ml.count = 0
}

// Contains returns true if the list contains the move.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// Slice returns the moves as a slice.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}
