package factory

import (
	"github.com/automoto/gombli/archetypes"
	"github.com/automoto/gombli/components"
	"github.com/yohamta/donburi"
)

func CreateCamera(w donburi.World, viewW, viewH float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.SetValue(camera, components.CameraData{ViewW: viewW, ViewH: viewH})
	return camera
}
