// Package engine advances one level simulation by fixed steps. It holds no
// rendering or input code: callers fill the hero's Intent component and call Step.
package engine

import (
	"fmt"

	"github.com/automoto/gombli/components"
	"github.com/automoto/gombli/engine/factory"
	"github.com/automoto/gombli/shared/leveldata"
	"github.com/yohamta/donburi"
)

// System is one stage of a simulation step.
type System struct {
	Name   string
	Update func(w donburi.World, dt float64)
}

// pipeline runs in order; later systems see the state earlier ones produced.
var pipeline = []System{
	{"frame", updateFrame},
	{"platforms", updatePlatforms},
	{"hero", updateHeroes},
	{"camera", updateCamera},
	{"powerups", updatePowerUps},
	{"hostiles", updateHostiles},
	{"breakables", updateBreakables},
	{"ozone", updateOzonePuzzle},
	{"sliding", updateSlidingPuzzle},
	{"exit", updateExit},
}

// Systems returns the names of the step stages in execution order.
func Systems() []string {
	names := make([]string, len(pipeline))
	for i, s := range pipeline {
		names[i] = s.Name
	}
	return names
}

// NewWorld builds a world holding lvl and everything spawned from it.
func NewWorld(lvl *leveldata.Level) (donburi.World, error) {
	w := donburi.NewWorld()
	if _, err := factory.CreateLevel(w, lvl); err != nil {
		return nil, fmt.Errorf("create level: %w", err)
	}
	return w, nil
}

// Step advances the world by dt seconds. A completed level is frozen.
func Step(w donburi.World, dt float64) {
	if level, ok := components.Level.First(w); ok && components.Level.Get(level).Complete {
		return
	}
	for _, s := range pipeline {
		s.Update(w, dt)
	}
}

func updateFrame(w donburi.World, dt float64) {
	level, ok := components.Frame.First(w)
	if !ok {
		return
	}
	f := components.Frame.Get(level)
	f.Tick++
	f.Time += dt
	f.Delta = dt
}
