package archetypes

import (
	"github.com/automoto/gombli/components"
	"github.com/automoto/gombli/tags"
	"github.com/yohamta/donburi"
)

var (
	Hero = newArchetype(
		tags.Hero,
		components.Body,
		components.Surface,
		components.Hero,
		components.Intent,
		components.Inventory,
		components.Object,
	)
	MovingPlatform = newArchetype(
		tags.MovingPlatform,
		components.MovingPlatform,
		components.Object,
	)
	FloatingPlatform = newArchetype(
		tags.MovingPlatform,
		tags.FloatingPlatform,
		components.MovingPlatform,
		components.Object,
		components.Tween,
	)
	Breakable = newArchetype(
		tags.Breakable,
		components.Breakable,
		components.Object,
	)
	OzoneTile = newArchetype(
		tags.OzoneTile,
		components.OzoneTile,
		components.Object,
	)
	PowerUp = newArchetype(
		tags.PowerUp,
		components.PowerUp,
		components.Body,
		components.Object,
	)
	Hostile = newArchetype(
		tags.Hostile,
		components.Hostile,
		components.Object,
	)
	PuzzleBlock = newArchetype(
		tags.PuzzleBlock,
		components.PuzzleBlock,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
		components.Frame,
		components.OzonePuzzle,
		components.SlidingPuzzle,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
