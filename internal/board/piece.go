package board

// Color is one side of the game, White or Black.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

var colorNames = [2]string{"White", "Black"}

// Other flips White<->Black. Defined as an XOR so the compiler can fold it
// into a single instruction at every call site instead of a branch.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color's name, or "NoColor" for anything else.
func (c Color) String() string {
	if c > Black {
		return "NoColor"
	}
	return colorNames[c]
}

// PieceType is a chess piece kind, independent of color.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType PieceType = 6
)

var pieceTypeNames = [7]string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King", "None"}

// pieceTypeChars is FEN's lowercase letter for each piece type, indexed the
// same way; the trailing space is NoPieceType's placeholder.
const pieceTypeChars = "pnbrqk "

// String returns the piece type's name ("Pawn", "Knight", ...).
func (pt PieceType) String() string {
	if pt > NoPieceType {
		pt = NoPieceType
	}
	return pieceTypeNames[pt]
}

// Char returns the FEN character for the piece type, always lowercase
// regardless of color (callers uppercase it themselves for White).
func (pt PieceType) Char() byte {
	if pt > NoPieceType {
		return ' '
	}
	return pieceTypeChars[pt]
}

// PieceValue is the material value of each piece type in centipawns, King's
// entry unused by any material sum (it's never traded).
var PieceValue = [7]int{100, 320, 330, 500, 900, 20000, 0}

// Piece packs a PieceType and a Color into one small value: pt + color*6,
// so White's six pieces occupy 0-5 and Black's occupy 6-11.
type Piece uint8

const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	NoPiece
)

// pieceChars is the FEN letter for each packed Piece value, White uppercase
// then Black lowercase, in WhitePawn..BlackKing order.
const pieceChars = "PNBRQKpnbrqk"

// NewPiece packs pt and c into a Piece, or NoPiece if either is out of range.
func NewPiece(pt PieceType, c Color) Piece {
	if pt >= NoPieceType || c >= NoColor {
		return NoPiece
	}
	return Piece(c)*6 + Piece(pt)
}

// Type unpacks the PieceType, NoPieceType for NoPiece.
func (p Piece) Type() PieceType {
	if p >= NoPiece {
		return NoPieceType
	}
	return PieceType(p % 6)
}

// Color unpacks the Color, NoColor for NoPiece.
func (p Piece) Color() Color {
	if p >= NoPiece {
		return NoColor
	}
	return Color(p / 6)
}

// Value returns the piece's material value in centipawns.
func (p Piece) Value() int {
	return PieceValue[p.Type()]
}

// String returns the piece's FEN letter, uppercase for White and lowercase
// for Black, or a blank for NoPiece.
func (p Piece) String() string {
	if p >= NoPiece {
		return " "
	}
	return string(pieceChars[p])
}

// PieceFromChar converts a FEN piece letter to a Piece, NoPiece if c isn't
// one of the twelve recognized letters.
func PieceFromChar(c byte) Piece {
	for i := 0; i < len(pieceChars); i++ {
		if pieceChars[i] == c {
			return Piece(i)
		}
	}
	return NoPiece
}
