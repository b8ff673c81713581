package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/gombli/shared/tilegrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="40" tileheight="32" infinite="0" nextlayerid="3" nextobjectid="4">
 <tileset firstgid="1" name="kinds" tilewidth="40" tileheight="32" tilecount="3" columns="3">
  <tile id="0">
   <properties>
    <property name="kind" value="Impassable"/>
   </properties>
  </tile>
  <tile id="1">
   <properties>
    <property name="kind" value="Platform"/>
   </properties>
  </tile>
  <tile id="2">
   <properties>
    <property name="kind" value="SlopePlus"/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="collision" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
0,2,0,3,
1,1,1,1
</data>
 </layer>
 <objectgroup id="2" name="spawns">
  <object id="1" name="Start" x="0" y="32" width="40" height="32"/>
  <object id="2" name="Exit" x="120" y="0" width="40" height="32"/>
  <object id="3" name="PowerUp" x="40" y="0" width="40" height="32">
   <properties>
    <property name="kind" value="Bubble"/>
    <property name="count" type="int" value="4"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func TestLoadTMX(t *testing.T) {
	fsys := fstest.MapFS{"levels/tiny.tmx": {Data: []byte(testTMX)}}

	lvl, err := LoadTMX(fsys, "levels/tiny.tmx")
	require.NoError(t, err)

	assert.Equal(t, "tiny", lvl.Name)
	assert.Equal(t, tilegrid.Platform, lvl.Grid.Classify(1, 1))
	assert.Equal(t, tilegrid.SlopePlus, lvl.Grid.Classify(3, 1))
	assert.Equal(t, tilegrid.Impassable, lvl.Grid.Classify(2, 2))
	assert.Equal(t, tilegrid.Passable, lvl.Grid.Classify(0, 1))
	assert.Equal(t, dmath.NewVec2(20, 64), lvl.Start)
	assert.Equal(t, dmath.NewVec2(140, 16), lvl.Exit)

	require.Len(t, lvl.PowerUps, 1)
	assert.Equal(t, Bubble, lvl.PowerUps[0].Kind)
	assert.Equal(t, 4, lvl.PowerUps[0].Count)
}

func TestLoadAllSortsByName(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.txt":    {Data: []byte("AZ\n##")},
		"levels/a.tmx":    {Data: []byte(testTMX)},
		"levels/notes.md": {Data: []byte("ignored")},
	}

	levels, err := LoadAll(fsys, "levels", Options{TileWidth: 40, TileHeight: 32})
	require.NoError(t, err)
	require.Len(t, levels, 2)
	assert.Equal(t, "a", levels[0].Name)
	assert.Equal(t, "b", levels[1].Name)
}

func TestLoadAllEmptyDir(t *testing.T) {
	_, err := LoadAll(fstest.MapFS{}, "levels", Options{TileWidth: 40, TileHeight: 32})
	assert.Error(t, err)
}
