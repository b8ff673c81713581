package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// IntentData is the abstract input consumed by the hero each step. Move components
// are in {-1, 0, 1}; negative Y means up.
type IntentData struct {
	Move       dmath.Vec2
	Jump       bool
	Throw      bool
	SelectNext bool
	SelectPrev bool
}

var Intent = donburi.NewComponentType[IntentData]()
