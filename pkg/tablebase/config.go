// Package tablebase builds and probes endgame tablebases by retrograde
// analysis over small piece configurations (spec.md §4.G).
package tablebase

import (
	"sort"
	"strings"

	"github.com/boweiliu/underchex/pkg/board"
)

// MaxConfigurationPieces caps total piece count for a configuration to be
// eligible for tablebase support (spec.md §1 Non-goals, §4.G).
const MaxConfigurationPieces = 5

// PieceSpec names a non-king piece by type and (for Lance) variant; the
// variant is not part of a configuration's canonical name, since both
// Lance variants share the abbreviation "L".
type PieceSpec struct {
	Type    board.PieceType
	Variant board.LanceVariant
}

// Config identifies a tablebase configuration: the stronger side's
// non-king pieces, the weaker side's (currently always empty — only
// "stronger side + lone enemy king" is supported), and the canonical
// name used to key the registry.
type Config struct {
	StrongerSide []PieceSpec
	WeakerSide   []PieceSpec
	Name         string
}

// abbreviation maps a non-king PieceType to its canonical single-letter
// tag (spec.md §3 TablebaseConfig).
func abbreviation(t board.PieceType) byte {
	switch t {
	case board.Queen:
		return 'Q'
	case board.Lance:
		return 'L'
	case board.Chariot:
		return 'C'
	case board.Knight:
		return 'N'
	case board.Pawn:
		return 'P'
	default:
		panic("tablebase: king has no configuration abbreviation")
	}
}

// name builds the canonical configuration name: "K" + sorted stronger
// abbreviations + "vK" + sorted weaker abbreviations.
func name(stronger, weaker []PieceSpec) string {
	return "K" + abbreviations(stronger) + "vK" + abbreviations(weaker)
}

func abbreviations(specs []PieceSpec) string {
	letters := make([]byte, len(specs))
	for i, s := range specs {
		letters[i] = abbreviation(s.Type)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return string(letters)
}

// DetectConfiguration classifies pos into a supported Config, reporting
// which color holds the stronger side (spec.md §4.G detect_configuration).
// The second return is false when the configuration exceeds the piece
// budget or the weaker side holds any non-king piece — this scope only
// covers "stronger side plus a lone enemy king".
func DetectConfiguration(pos *board.Position) (Config, board.Color, bool) {
	if pos.PieceCount() > MaxConfigurationPieces {
		return Config{}, board.White, false
	}

	var white, black []PieceSpec
	for _, piece := range pos.Cells() {
		if piece.Type == board.King {
			continue
		}
		spec := PieceSpec{Type: piece.Type, Variant: piece.Variant}
		if piece.Color == board.White {
			white = append(white, spec)
		} else {
			black = append(black, spec)
		}
	}

	if len(white) == 0 && len(black) == 0 {
		return Config{Name: "KvK"}, board.White, true
	}

	strongerColor := board.White
	stronger, weaker := white, black
	if len(black) > len(white) {
		strongerColor, stronger, weaker = board.Black, black, white
	}

	if len(weaker) > 0 {
		return Config{}, board.White, false
	}

	return Config{StrongerSide: stronger, WeakerSide: weaker, Name: name(stronger, weaker)}, strongerColor, true
}

// SupportedNames lists the configurations seeded into the registry on
// init (spec.md §4.G).
func SupportedNames() []string {
	return []string{"KvK", "KQvK", "KLvK", "KCvK", "KNvK"}
}

// IsLoneKnight reports whether name is the knight-only configuration,
// which resolves to all draws: a lone Knight cannot force mate on this
// board (spec.md §4.G).
func IsLoneKnight(name string) bool {
	return strings.HasPrefix(name, "KN") && strings.HasSuffix(name, "vK")
}

// descriptions gives the one-line human-readable expectation for each
// seeded configuration, carried forward from the original implementation's
// module doc (SPEC_FULL.md §4.H).
var descriptions = map[string]string{
	"KvK":  "King vs King: always a draw",
	"KQvK": "King+Queen vs King: win for the side with the queen",
	"KLvK": "King+Lance vs King: usually a win, some draws",
	"KCvK": "King+Chariot vs King: usually a win, some draws",
	"KNvK": "King+Knight vs King: draw, insufficient material on this board",
}

// Describe returns a one-line human-readable expectation for a seeded
// configuration name, for CLI and log output. It returns false for a
// name the registry does not seed by default.
func Describe(name string) (string, bool) {
	d, ok := descriptions[name]
	return d, ok
}
