package components

import "github.com/yohamta/donburi"

// FrameData is the simulation clock.
type FrameData struct {
	Tick  int
	Time  float64 // seconds simulated, including the current step
	Delta float64
}

var Frame = donburi.NewComponentType[FrameData]()
