package systems

import (
	cfg "github.com/automoto/gombli/config"
	"github.com/automoto/gombli/engine"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEngine advances the level simulation by one fixed step.
func UpdateEngine(ecs *ecs.ECS) {
	engine.Step(ecs.World, cfg.C.Delta)
}
