package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/gombli/shared/tilegrid"
	"github.com/lafriks/go-tiled"
	dmath "github.com/yohamta/donburi/features/math"
)

const (
	collisionLayer = "collision"
	spawnGroup     = "spawns"
)

// LoadTMX parses a Tiled map. The "collision" tile layer supplies the grid, each
// tileset tile naming its kind in a "kind" property. The "spawns" object group
// supplies spawn points, keyed by object name. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	grid, err := tilegrid.New(levelMap.Width, levelMap.Height, float64(levelMap.TileWidth), float64(levelMap.TileHeight))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	lvl := &Level{Name: stem(tmxPath), Grid: grid}

	for _, layer := range levelMap.Layers {
		if layer.Name != collisionLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
				if err != nil {
					return nil, fmt.Errorf("load TMX %s: tile %d,%d: %w", tmxPath, x, y, err)
				}
				name := tilesetTile.Properties.GetString("kind")
				kind, ok := tilegrid.ParseKind(name)
				if !ok {
					return nil, fmt.Errorf("load TMX %s: %w %q at %d,%d", tmxPath, ErrUnknownTile, name, x, y)
				}
				grid.Set(x, y, kind)
			}
		}
		break
	}

	var hasStart, hasExit bool
	for _, og := range levelMap.ObjectGroups {
		if og.Name != spawnGroup {
			continue
		}
		for _, o := range og.Objects {
			topLeft := dmath.NewVec2(o.X, o.Y)
			center := dmath.NewVec2(o.X+o.Width/2, o.Y+o.Height/2)
			bottomCenter := dmath.NewVec2(o.X+o.Width/2, o.Y+o.Height)

			switch o.Name {
			case "Start":
				if hasStart {
					return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrDuplicateStart)
				}
				hasStart = true
				lvl.Start = bottomCenter
			case "Exit":
				if hasExit {
					return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrDuplicateExit)
				}
				hasExit = true
				lvl.Exit = center
			case "Reset":
				lvl.Reset = center
				lvl.HasReset = true
			case "PuzzleHome":
				lvl.PuzzleHome = topLeft
				lvl.HasPuzzleHome = true
			case "MovingPlatform":
				lvl.MovingPlatforms = append(lvl.MovingPlatforms, bottomCenter)
			case "FloatingPlatform":
				lvl.FloatingPlatforms = append(lvl.FloatingPlatforms, bottomCenter)
			case "Breakable":
				lvl.Breakables = append(lvl.Breakables, bottomCenter)
			case "Ozone":
				lvl.OzoneTiles = append(lvl.OzoneTiles, OzoneSpawn{
					Position: topLeft,
					Glowing:  o.Properties.GetBool("glowing"),
					Static:   o.Properties.GetBool("static"),
				})
			case "PuzzleBlock":
				lvl.PuzzleBlocks = append(lvl.PuzzleBlocks, PuzzleBlockSpawn{
					Position: topLeft,
					Number:   o.Properties.GetInt("number"),
				})
			case "PowerUp":
				kind, ok := parsePowerUpKind(o.Properties.GetString("kind"))
				if !ok {
					return nil, fmt.Errorf("load TMX %s: unknown power-up kind %q", tmxPath, o.Properties.GetString("kind"))
				}
				count := o.Properties.GetInt("count")
				if count <= 0 {
					count = powerUpLoad[kind]
				}
				lvl.PowerUps = append(lvl.PowerUps, PowerUpSpawn{Kind: kind, Position: center, Count: count})
			case "Hostile":
				lvl.Hostiles = append(lvl.Hostiles, HostileSpawn{
					Position:  center,
					Pollutant: o.Properties.GetBool("pollutant"),
					Damage:    o.Properties.GetFloat("damage"),
					Vertical:  o.Properties.GetBool("vertical"),
				})
			}
		}
	}

	if err := lvl.validate(hasStart, hasExit); err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return lvl, nil
}

func parsePowerUpKind(name string) (PowerUpKind, bool) {
	for _, k := range PowerUpKinds {
		if k.String() == name {
			return k, true
		}
	}
	return Marble, false
}

// LoadFile dispatches on extension: .tmx goes through go-tiled, .txt through ParseText.
func LoadFile(fsys fs.FS, levelPath string, opts Options) (*Level, error) {
	if strings.HasSuffix(levelPath, ".tmx") {
		return LoadTMX(fsys, levelPath)
	}
	f, err := fsys.Open(levelPath)
	if err != nil {
		return nil, fmt.Errorf("open level %s: %w", levelPath, err)
	}
	defer f.Close()
	return ParseText(stem(levelPath), f, opts)
}

// LoadAll discovers all .txt and .tmx files in levelsDir within fsys, loads each,
// and returns them sorted by name.
func LoadAll(fsys fs.FS, levelsDir string, opts Options) ([]*Level, error) {
	var matches []string
	for _, ext := range []string{"*.txt", "*.tmx"} {
		pattern := path.Join(levelsDir, ext)
		m, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		matches = append(matches, m...)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no level files found in %s", levelsDir)
	}
	sort.Strings(matches)

	levels := make([]*Level, 0, len(matches))
	for _, p := range matches {
		lvl, err := LoadFile(fsys, p, opts)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", p, err)
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}

func stem(p string) string {
	return strings.TrimSuffix(path.Base(p), path.Ext(p))
}
