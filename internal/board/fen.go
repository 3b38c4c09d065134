package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FENField identifies which whitespace-delimited field of a FEN string a
// parse error came from.
type FENField int

const (
	FieldPlacement FENField = iota
	FieldSideToMove
	FieldCastling
	FieldEnPassant
	FieldHalfmove
	FieldFullmove
)

func (f FENField) String() string {
	switch f {
	case FieldPlacement:
		return "piece placement"
	case FieldSideToMove:
		return "side to move"
	case FieldCastling:
		return "castling rights"
	case FieldEnPassant:
		return "en passant"
	case FieldHalfmove:
		return "halfmove clock"
	case FieldFullmove:
		return "fullmove number"
	default:
		return "unknown field"
	}
}

// FENError is returned by ParseFEN for a malformed field. Reason is one of
// the fixed error kinds below; Index is a field- or character-specific
// position (e.g. the rank index for a placement error), -1 if not
// applicable.
type FENError struct {
	Field  FENField
	Reason string
	Index  int
}

func (e *FENError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("fen: %s: %s (index %d)", e.Field, e.Reason, e.Index)
	}
	return fmt.Sprintf("fen: %s: %s", e.Field, e.Reason)
}

// Named FEN error reasons, referenced by tests and callers that want to
// branch on the specific failure rather than just the field.
const (
	InvalidPieceLayout = "invalid piece layout"
	FileOverflow       = "file overflow"
	BadSide            = "side must be 'w' or 'b'"
	BadCastling        = "malformed castling rights"
	BadEnPassant       = "malformed en passant square"
	TooLong            = "too many fields"
)

func fenErr(field FENField, reason string, index int) error {
	return &FENError{Field: field, Reason: reason, Index: index}
}

// ParseFEN parses a FEN string and returns a freshly constructed Position.
// Nothing is mutated if parsing fails partway through: placement is built up
// on a scratch Position and only assigned to the result on full success.
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return nil, fenErr(FieldPlacement, "need at least 4 fields", len(parts))
	}
	if len(parts) > 6 {
		return nil, fenErr(FieldFullmove, TooLong, len(parts))
	}

	pos := &Position{FullMoveNumber: 1}
	pos.KingSquare[White] = NoSquare
	pos.KingSquare[Black] = NoSquare
	pos.board.clear()
	pos.st = &pos.states[0]
	pos.st.enPassant = NoSquare

	if err := parsePiecePlacement(pos, parts[0]); err != nil {
		return nil, err
	}
	pos.updateOccupied()
	pos.findKings()
	if pos.KingSquare[White] == NoSquare || pos.KingSquare[Black] == NoSquare {
		return nil, fenErr(FieldPlacement, InvalidPieceLayout, -1)
	}

	switch parts[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return nil, fenErr(FieldSideToMove, BadSide, -1)
	}

	if err := parseCastlingRights(pos, parts[2]); err != nil {
		return nil, err
	}

	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return nil, fenErr(FieldEnPassant, BadEnPassant, -1)
		}
		// Only keep an en-passant square that actually sits on the
		// relative 6th rank for the side about to move.
		if sq.RelativeRank(pos.SideToMove) != 5 {
			return nil, fenErr(FieldEnPassant, BadEnPassant, -1)
		}
		pos.st.enPassant = sq
	}

	if len(parts) > 4 {
		hmc, err := strconv.Atoi(parts[4])
		if err != nil || hmc < 0 {
			return nil, fenErr(FieldHalfmove, "must be a non-negative integer", -1)
		}
		pos.st.rule50 = hmc
		pos.st.pliesFromNull = hmc
	}

	if len(parts) > 5 {
		fmn, err := strconv.Atoi(parts[5])
		if err != nil || fmn < 1 {
			return nil, fenErr(FieldFullmove, "must be a positive integer", -1)
		}
		pos.FullMoveNumber = fmn
	}

	pos.st.key = pos.ComputeHash()
	pos.st.pawnKey = pos.ComputePawnKey()
	pos.st.materialKey = pos.ComputeMaterialKey()
	pos.st.nonPawnMat[White], pos.st.nonPawnMat[Black] = pos.computeNonPawnMaterial()
	pos.UpdateCheckers()
	pos.setCheckInfo()
	pos.st.updateRepetition()

	return pos, nil
}

// SetFEN replaces p's contents with the position fen describes. On error p
// is left untouched, so a caller retrying input can Clear once and keep
// feeding candidate strings at the same Position. An installed update hook
// survives the reset (the hook observes the position, it isn't part of it).
func (p *Position) SetFEN(fen string) error {
	parsed, err := ParseFEN(fen)
	if err != nil {
		return err
	}

	hook, probing := p.updateHook, p.probing
	*p = *parsed
	p.updateHook, p.probing = hook, probing
	p.st = &p.states[p.Ply]
	p.relinkStates()
	return nil
}

// parsePiecePlacement parses the piece placement section of a FEN string.
func parsePiecePlacement(pos *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fenErr(FieldPlacement, InvalidPieceLayout, len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0

		for _, c := range rankStr {
			if file > 7 {
				return fenErr(FieldPlacement, FileOverflow, rank)
			}

			if c >= '1' && c <= '8' {
				file += int(c - '0')
			} else {
				piece := PieceFromChar(byte(c))
				if piece == NoPiece {
					return fenErr(FieldPlacement, InvalidPieceLayout, rank)
				}
				sq := NewSquare(file, rank)
				pos.setPiece(piece, sq)
				file++
			}
		}

		if file != 8 {
			return fenErr(FieldPlacement, FileOverflow, rank)
		}
	}

	return nil
}

// parseCastlingRights parses the castling rights field, supporting both
// standard K/Q/k/q notation and Chess960/Shredder-FEN file-letter notation
// (A-H for White's rooks, a-h for Black's). The king/queen-side shortcuts
// are resolved by scanning from the board edge inward toward the king along
// its rank, taking the first (outermost) rook found, which is also correct
// for Chess960 positions whose rooks happen to sit on the standard corner
// squares.
func parseCastlingRights(pos *Position, castling string) error {
	if castling == "-" {
		return nil
	}

	for _, c := range castling {
		var color Color
		switch {
		case c >= 'A' && c <= 'Z':
			color = White
		case c >= 'a' && c <= 'z':
			color = Black
		default:
			return fenErr(FieldCastling, BadCastling, -1)
		}

		kingFrom := pos.KingSquare[color]
		if kingFrom == NoSquare {
			return fenErr(FieldCastling, BadCastling, -1)
		}
		rank := kingFrom.Rank()

		upper := c
		if color == Black {
			upper = c - 'a' + 'A'
		}

		var rookSq Square
		var kingSide bool

		switch upper {
		case 'K', 'Q':
			// X-FEN's K/Q name the outermost rook on the king's side of the
			// rank, so the scan runs from the board edge inward.
			kingSide = upper == 'K'
			rookSq = NoSquare
			if kingSide {
				for f := 7; f > kingFrom.File(); f-- {
					sq := NewSquare(f, rank)
					if pos.Pieces[color][Rook]&SquareBB(sq) != 0 {
						rookSq = sq
						break
					}
				}
			} else {
				for f := 0; f < kingFrom.File(); f++ {
					sq := NewSquare(f, rank)
					if pos.Pieces[color][Rook]&SquareBB(sq) != 0 {
						rookSq = sq
						break
					}
				}
			}
			if rookSq == NoSquare {
				return fenErr(FieldCastling, BadCastling, -1)
			}

		case 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H':
			file := int(upper - 'A')
			rookSq = NewSquare(file, rank)
			if pos.Pieces[color][Rook]&SquareBB(rookSq) == 0 {
				return fenErr(FieldCastling, BadCastling, -1)
			}
			kingSide = file > kingFrom.File()
			pos.Chess960 = true

		default:
			return fenErr(FieldCastling, BadCastling, -1)
		}

		if kingFrom.File() != 4 {
			pos.Chess960 = true
		}

		pos.setCastlingRight(color, kingSide, kingFrom, rookSq)
	}

	return nil
}

// ToFEN returns the FEN representation of the position. Castling rights are
// rendered as K/Q/k/q for a standard position and as A-H/a-h file letters
// when the position is flagged Chess960.
func (p *Position) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			piece := p.PieceAt(sq)
			if piece == NoPiece {
				empty++
			} else {
				if empty > 0 {
					sb.WriteString(strconv.Itoa(empty))
					empty = 0
				}
				sb.WriteString(piece.String())
			}
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.castlingFENString())

	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant().String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.Rule50()))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullMoveNumber))

	return sb.String()
}

// castlingFENString renders the current castling rights using K/Q/k/q when
// not in Chess960 mode, or file letters (uppercase for White, lowercase for
// Black) when it is.
func (p *Position) castlingFENString() string {
	cr := p.CastlingRights()
	if cr == NoCastling {
		return "-"
	}

	if !p.Chess960 {
		return cr.String()
	}

	var sb strings.Builder
	order := []int{crWhiteOO, crWhiteOOO, crBlackOO, crBlackOOO}
	for _, idx := range order {
		if cr&castlingRightBit(idx) == 0 {
			continue
		}
		file := p.castlingRookSquare[idx].File()
		letter := byte('A' + file)
		if idx == crBlackOO || idx == crBlackOOO {
			letter = byte('a' + file)
		}
		sb.WriteByte(letter)
	}
	return sb.String()
}

// ComputeHash computes the Zobrist hash for the position from scratch,
// applying the same en-passant capturability rule used incrementally by
// MakeMove (see epCapturable): a non-capturable ep square does not affect
// the key, so positions that differ only in that respect hash identically.
func (p *Position) ComputeHash() uint64 {
	var hash uint64

	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := p.Pieces[c][pt]
			for bb != 0 {
				sq := bb.PopLSB()
				hash ^= ZobristPiece(c, pt, sq)
			}
		}
	}

	if p.SideToMove == Black {
		hash ^= ZobristSideToMove()
	}

	hash ^= ZobristCastling(p.CastlingRights())

	if ep := p.EnPassant(); ep != NoSquare && epCapturable(p, ep) {
		hash ^= ZobristEnPassant(ep.File())
	}

	return hash
}

// ComputePawnKey computes the pawn-only hash key from scratch. The key
// starts from a fixed non-zero base rather than 0, so a position with no
// pawns at all still has a usable (and distinctive) pawn key.
func (p *Position) ComputePawnKey() uint64 {
	key := zobristNoPawns

	for c := White; c <= Black; c++ {
		bb := p.Pieces[c][Pawn]
		for bb != 0 {
			sq := bb.PopLSB()
			key ^= ZobristPiece(c, Pawn, sq)
		}
	}

	return key
}

// ComputeMaterialKey computes the material-signature key from scratch: for
// each colored piece kind with n pieces on the board it XORs the first n
// square-slot constants of that kind's zobrist row, so the key depends only
// on how many of each piece exist, not where they stand. Two positions with
// the same material composition always share it, which is what a material
// or endgame-specialisation cache wants as its index.
func (p *Position) ComputeMaterialKey() uint64 {
	var key uint64

	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			n := p.Pieces[c][pt].PopCount()
			for cnt := 0; cnt < n; cnt++ {
				key ^= ZobristPiece(c, pt, Square(cnt))
			}
		}
	}

	return key
}

// computeNonPawnMaterial sums the centipawn value of every non-pawn,
// non-king piece for each side, from scratch.
func (p *Position) computeNonPawnMaterial() (white, black int) {
	for pt := Knight; pt < King; pt++ {
		white += p.Pieces[White][pt].PopCount() * PieceValue[pt]
		black += p.Pieces[Black][pt].PopCount() * PieceValue[pt]
	}
	return white, black
}
