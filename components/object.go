package components

import (
	"github.com/automoto/gombli/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its broadphase proxy in the level space.
type ObjectData struct {
	*resolv.Object
}

// Sync moves the proxy onto r and re-registers it in the space cells.
func (o *ObjectData) Sync(r gamemath.Rect) {
	if o.X == r.X && o.Y == r.Y && o.W == r.W && o.H == r.H {
		return
	}
	o.X, o.Y, o.W, o.H = r.X, r.Y, r.W, r.H
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
