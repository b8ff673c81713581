package engine

import (
	"strings"
	"testing"

	"github.com/automoto/gombli/components"
	"github.com/automoto/gombli/shared/leveldata"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

const dt = 1.0 / 60.0

var testOpts = leveldata.Options{TileWidth: 40, TileHeight: 32}

func newTestWorld(t *testing.T, rows ...string) donburi.World {
	t.Helper()
	lvl, err := leveldata.ParseText("test", strings.NewReader(strings.Join(rows, "\n")), testOpts)
	require.NoError(t, err)
	w, err := NewWorld(lvl)
	require.NoError(t, err)
	return w
}

type heroView struct {
	entry  *donburi.Entry
	body   *components.BodyData
	surf   *components.SurfaceData
	hero   *components.HeroData
	intent *components.IntentData
	inv    *components.InventoryData
}

func heroOf(t *testing.T, w donburi.World) heroView {
	t.Helper()
	e, ok := Hero(w)
	require.True(t, ok)
	return heroView{
		entry:  e,
		body:   components.Body.Get(e),
		surf:   components.Surface.Get(e),
		hero:   components.Hero.Get(e),
		intent: components.Intent.Get(e),
		inv:    components.Inventory.Get(e),
	}
}

func run(w donburi.World, steps int, step float64) {
	for i := 0; i < steps; i++ {
		Step(w, step)
	}
}

// runUntil steps until done reports true, giving up after limit steps.
func runUntil(w donburi.World, limit int, done func() bool) bool {
	for i := 0; i < limit; i++ {
		Step(w, dt)
		if done() {
			return true
		}
	}
	return false
}

func powerUps(w donburi.World) []powerUp {
	var out []powerUp
	for _, e := range sortedBy(w, components.PowerUp.Each, powerUpSeq) {
		out = append(out, powerUpOf(e))
	}
	return out
}

func count(w donburi.World, each func(donburi.World, func(*donburi.Entry))) int {
	n := 0
	each(w, func(*donburi.Entry) { n++ })
	return n
}
