package components

import (
	"github.com/automoto/gombli/shared/leveldata"
	"github.com/yohamta/donburi"
)

// InventoryData counts picked power-ups per kind.
type InventoryData struct {
	Picked   [4]int
	Selected leveldata.PowerUpKind
}

// Count returns how many of the selected kind are held.
func (i *InventoryData) Count() int {
	return i.Picked[i.Selected]
}

// Cycle moves the selection forward or backward, wrapping around.
func (i *InventoryData) Cycle(step int) {
	n := len(leveldata.PowerUpKinds)
	i.Selected = leveldata.PowerUpKind(((int(i.Selected)+step)%n + n) % n)
}

var Inventory = donburi.NewComponentType[InventoryData]()
