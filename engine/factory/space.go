package factory

import (
	"github.com/automoto/gombli/archetypes"
	"github.com/automoto/gombli/components"
	"github.com/automoto/gombli/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// addObject registers a proxy for entry in the level space.
func addObject(w donburi.World, entry *donburi.Entry, r gamemath.Rect, tag string) {
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tag)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
