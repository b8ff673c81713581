package engine

import (
	"sort"

	"github.com/automoto/gombli/components"
	"github.com/automoto/gombli/shared/leveldata"
	"github.com/automoto/gombli/shared/tilegrid"
	"github.com/automoto/gombli/tags"
	"github.com/yohamta/donburi"
)

// Hero returns the hero entity.
func Hero(w donburi.World) (*donburi.Entry, bool) {
	return tags.Hero.First(w)
}

// Level returns the level entity, which also carries the frame clock and puzzles.
func Level(w donburi.World) (*donburi.Entry, bool) {
	return components.Level.First(w)
}

func levelOf(w donburi.World) *leveldata.Level {
	e, ok := Level(w)
	if !ok {
		return nil
	}
	return components.Level.Get(e).Level
}

func gridOf(w donburi.World) *tilegrid.Grid {
	if lvl := levelOf(w); lvl != nil {
		return lvl.Grid
	}
	return nil
}

func frameTime(w donburi.World) float64 {
	e, ok := Level(w)
	if !ok {
		return 0
	}
	return components.Frame.Get(e).Time
}

// nearby returns the entities carrying tag whose proxies share a space cell with
// obj's proxy, ordered by seq so resolution is deterministic.
func nearby(obj *components.ObjectData, tag string, seq func(*donburi.Entry) int) []*donburi.Entry {
	check := obj.Check(0, 1, tag)
	if check == nil {
		return nil
	}
	objects := check.ObjectsByTags(tag)
	found := make([]*donburi.Entry, 0, len(objects))
	for _, o := range objects {
		if e, ok := o.Data.(*donburi.Entry); ok && e.Valid() {
			found = append(found, e)
		}
	}
	sort.SliceStable(found, func(i, j int) bool { return seq(found[i]) < seq(found[j]) })
	return found
}

func platformSeq(e *donburi.Entry) int  { return components.MovingPlatform.Get(e).Seq }
func breakableSeq(e *donburi.Entry) int { return components.Breakable.Get(e).Seq }
func ozoneSeq(e *donburi.Entry) int     { return components.OzoneTile.Get(e).Seq }
func powerUpSeq(e *donburi.Entry) int   { return components.PowerUp.Get(e).Seq }
func hostileSeq(e *donburi.Entry) int   { return components.Hostile.Get(e).Seq }

// sortedBy collects the entities of a query ordered by seq.
func sortedBy(w donburi.World, each func(donburi.World, func(*donburi.Entry)), seq func(*donburi.Entry) int) []*donburi.Entry {
	var out []*donburi.Entry
	each(w, func(e *donburi.Entry) { out = append(out, e) })
	sort.SliceStable(out, func(i, j int) bool { return seq(out[i]) < seq(out[j]) })
	return out
}
