package board

import (
	"sort"
	"strings"
)

// Fingerprint computes the normative position hash used by the tablebase
// index (spec.md §6); the transposition table is keyed on ZobristHash
// instead. For each
// occupied cell it produces the token "<q>,<r>:<colorChar><typeChar><variantChar?>",
// sorts all tokens lexicographically, and joins them with ",". This
// format is normative: cross-implementation tablebase tests depend on it
// verbatim, so it must never be changed to an internal hash here.
func Fingerprint(p *Position) string {
	tokens := make([]string, 0, len(p.cells))
	for c, piece := range p.cells {
		tokens = append(tokens, fingerprintToken(c, piece))
	}
	sort.Strings(tokens)
	return strings.Join(tokens, ",")
}

func fingerprintToken(c Coord, piece Piece) string {
	var sb strings.Builder
	sb.WriteString(c.String())
	sb.WriteByte(':')
	sb.WriteByte(colorChar(piece.Color))
	sb.WriteByte(piece.Type.abbreviation())
	if piece.Type == Lance {
		sb.WriteString(piece.Variant.String())
	}
	return sb.String()
}

func colorChar(c Color) byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// TablebaseKey appends the side-to-move suffix ("-w"/"-b") to a position
// fingerprint, as used for tablebase indexing (spec.md §4.G/§6).
func TablebaseKey(p *Position, sideToMove Color) string {
	suffix := "-w"
	if sideToMove == Black {
		suffix = "-b"
	}
	return Fingerprint(p) + suffix
}
