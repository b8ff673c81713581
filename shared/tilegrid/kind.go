// Package tilegrid holds the static collision grid of a level. It is pure data:
// no ebitengine, donburi or resolv dependencies.
package tilegrid

import "github.com/automoto/gombli/shared/gamemath"

// Kind is the collision classification of one grid cell.
type Kind int

const (
	Passable Kind = iota
	Impassable
	// Platform blocks only from above.
	Platform
	Water
	Ladder
	SlopePlus
	SlopeMinus

	// Steering markers for hostile movement. Actors pass through them.
	RedirectLeft
	RedirectRight
	RedirectUp
	RedirectDown
	Reverse
)

var kindNames = [...]string{
	Passable:      "Passable",
	Impassable:    "Impassable",
	Platform:      "Platform",
	Water:         "Water",
	Ladder:        "Ladder",
	SlopePlus:     "SlopePlus",
	SlopeMinus:    "SlopeMinus",
	RedirectLeft:  "RedirectLeft",
	RedirectRight: "RedirectRight",
	RedirectUp:    "RedirectUp",
	RedirectDown:  "RedirectDown",
	Reverse:       "Reverse",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= Passable && k <= Reverse
}

// IsSlope reports whether the cell is a right-triangle slope.
func (k Kind) IsSlope() bool {
	return k == SlopePlus || k == SlopeMinus
}

// Slope converts a slope kind to its geometry. The result is meaningless for
// non-slope kinds.
func (k Kind) Slope() gamemath.Slope {
	if k == SlopeMinus {
		return gamemath.SlopeMinus
	}
	return gamemath.SlopePlus
}

// IsBlock reports whether the cell takes part in rectangle resolution.
func (k Kind) IsBlock() bool {
	return k == Impassable || k == Platform
}

// ParseKind maps a name used in TMX tile properties to a Kind.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return Passable, false
}
