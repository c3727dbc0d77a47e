package board

import "fmt"

// Color represents the playing side: White or Black.
type Color uint8

const (
	White Color = iota
	Black

	NumColors = 2
)

// Opponent returns the other color.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// ParseColor parses the color strings used by test serialization ("white"/"black").
func ParseColor(s string) (Color, bool) {
	switch s {
	case "white":
		return White, true
	case "black":
		return Black, true
	default:
		return 0, false
	}
}

// PieceType is one of the six piece classes.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Lance
	Chariot
	Queen
	King

	NumPieceTypes = 6
)

func (t PieceType) String() string {
	switch t {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Lance:
		return "lance"
	case Chariot:
		return "chariot"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "?"
	}
}

// ParsePieceType parses the piece-name strings used by test serialization.
func ParsePieceType(s string) (PieceType, bool) {
	switch s {
	case "pawn":
		return Pawn, true
	case "knight":
		return Knight, true
	case "lance":
		return Lance, true
	case "chariot":
		return Chariot, true
	case "queen":
		return Queen, true
	case "king":
		return King, true
	default:
		return 0, false
	}
}

// abbreviation is the single-letter tablebase/fingerprint abbreviation for t.
func (t PieceType) abbreviation() byte {
	switch t {
	case Pawn:
		return 'p'
	case Knight:
		return 'n'
	case Lance:
		return 'l'
	case Chariot:
		return 'c'
	case Queen:
		return 'q'
	case King:
		return 'k'
	default:
		panic(fmt.Sprintf("board: invalid piece type %v", uint8(t)))
	}
}

// LanceVariant distinguishes the two lance sub-species. It is present iff
// the piece type is Lance: NoVariant for every other piece type.
type LanceVariant uint8

const (
	NoVariant LanceVariant = iota
	VariantA
	VariantB
)

func (v LanceVariant) String() string {
	switch v {
	case VariantA:
		return "A"
	case VariantB:
		return "B"
	default:
		return ""
	}
}

// ParseLanceVariant parses the variant strings used by test serialization ("A"/"B").
func ParseLanceVariant(s string) (LanceVariant, bool) {
	switch s {
	case "A":
		return VariantA, true
	case "B":
		return VariantB, true
	default:
		return 0, false
	}
}

// Piece identifies a piece by type, color and (for lances only) variant.
// Lances are not one class with a mutable direction field: they are two
// sub-species sharing the slider mechanism, and the variant is part of
// the piece's identity.
type Piece struct {
	Type    PieceType
	Color   Color
	Variant LanceVariant
}

// NewPiece constructs a Piece, enforcing the variant invariant: Variant is
// set iff Type is Lance. It panics on violation, since that can only
// happen from a programming error, never from well-formed input.
func NewPiece(t PieceType, c Color, v LanceVariant) Piece {
	if (t == Lance) != (v != NoVariant) {
		panic(fmt.Sprintf("board: invalid piece: type=%v variant=%v", t, v))
	}
	return Piece{Type: t, Color: c, Variant: v}
}

// NewSimplePiece constructs a non-Lance piece.
func NewSimplePiece(t PieceType, c Color) Piece {
	return NewPiece(t, c, NoVariant)
}

// NewLance constructs a Lance piece of the given variant.
func NewLance(c Color, v LanceVariant) Piece {
	if v == NoVariant {
		panic("board: lance requires a variant")
	}
	return NewPiece(Lance, c, v)
}

// IsSlider reports whether the piece moves by sliding along rays:
// Queen, Lance (either variant) and Chariot.
func (p Piece) IsSlider() bool {
	switch p.Type {
	case Queen, Lance, Chariot:
		return true
	default:
		return false
	}
}

// Directions returns the static slider direction set for the piece's
// movement class. Non-sliders (Pawn, Knight, King) return nil: they do
// not slide and are generated by dedicated rules.
func (p Piece) Directions() []Direction {
	switch p.Type {
	case Queen:
		return AllSliderDirections
	case Chariot:
		return Diagonals
	case Lance:
		switch p.Variant {
		case VariantA:
			return LanceADirections
		case VariantB:
			return LanceBDirections
		default:
			panic(fmt.Sprintf("board: lance with no variant"))
		}
	default:
		return nil
	}
}

func (p Piece) String() string {
	s := fmt.Sprintf("%v %v", p.Color, p.Type)
	if p.Type == Lance {
		s += " " + p.Variant.String()
	}
	return s
}

// PromotionTargets lists the piece types a Pawn may promote to, ordered
// by descending nominal value (Queen, Chariot, Lance, Knight). Named as
// a reusable constant rather than an inline literal at each promotion
// call site, following the original implementation's PROMOTION_TARGETS.
var PromotionTargets = []PieceType{Queen, Chariot, Lance, Knight}
