package leveldata

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/automoto/gombli/shared/tilegrid"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	ErrEmptyLevel     = errors.New("level has no rows")
	ErrRaggedRow      = errors.New("row length differs from preceding rows")
	ErrUnknownTile    = errors.New("unsupported tile character")
	ErrNoStart        = errors.New("level must have a starting point")
	ErrDuplicateStart = errors.New("level may only have one starting point")
	ErrNoExit         = errors.New("level must have an exit")
	ErrDuplicateExit  = errors.New("level may only have one exit")
	ErrNoOzoneReset   = errors.New("level with ozone tiles must have a reset point")
)

// How many power-ups one spawn character places, per kind.
var powerUpLoad = map[PowerUpKind]int{Marble: 10, BeanSeed: 5, Bubble: 10, RecycleBall: 1}

var powerUpChars = map[rune]PowerUpKind{'*': Marble, '&': BeanSeed, '%': Bubble, '@': RecycleBall}

var staticKinds = map[rune]tilegrid.Kind{
	'.':  tilegrid.Passable,
	'#':  tilegrid.Impassable,
	'-':  tilegrid.Platform,
	'~':  tilegrid.Water,
	'L':  tilegrid.Ladder,
	'/':  tilegrid.SlopeMinus,
	'\\': tilegrid.SlopePlus,
	'l':  tilegrid.RedirectLeft,
	'r':  tilegrid.RedirectRight,
	'u':  tilegrid.RedirectUp,
	'd':  tilegrid.RedirectDown,
	'x':  tilegrid.Reverse,
}

// ParseText reads the character grid level format. Lines starting with ';' are
// directives: "; puzzle=ozone" and "; submerged" override opts.
func ParseText(name string, r io.Reader, opts Options) (*Level, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.HasPrefix(line, ";") {
			applyDirective(&opts, strings.TrimSpace(line[1:]))
			continue
		}
		if len(rows) > 0 && len(line) != len(rows[0]) {
			return nil, fmt.Errorf("%s line %d: %w", name, len(rows)+1, ErrRaggedRow)
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyLevel)
	}

	grid, err := tilegrid.New(len(rows[0]), len(rows), opts.TileWidth, opts.TileHeight)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	p := &textParser{opts: opts, lvl: &Level{Name: name, Grid: grid}}
	for y, row := range rows {
		for x, ch := range []rune(row) {
			if err := p.tile(ch, x, y); err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
		}
	}
	if err := p.lvl.validate(p.hasStart, p.hasExit); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return p.lvl, nil
}

func applyDirective(opts *Options, d string) {
	for _, f := range strings.Fields(d) {
		switch f {
		case "puzzle=ozone":
			opts.Puzzle = PuzzleOzone
		case "puzzle=sliding":
			opts.Puzzle = PuzzleSliding
		case "submerged":
			opts.Submerged = true
		}
	}
}

type textParser struct {
	opts     Options
	lvl      *Level
	hasStart bool
	hasExit  bool
}

func (p *textParser) tile(ch rune, x, y int) error {
	g := p.lvl.Grid
	bounds := g.Bounds(x, y)

	if k, ok := staticKinds[ch]; ok {
		g.Set(x, y, k)
		return nil
	}
	if k, ok := powerUpChars[ch]; ok {
		p.lvl.PowerUps = append(p.lvl.PowerUps, PowerUpSpawn{Kind: k, Position: bounds.Center(), Count: powerUpLoad[k]})
		p.empty(x, y)
		return nil
	}

	switch ch {
	case 'A':
		if p.hasStart {
			return fmt.Errorf("%w at %d,%d", ErrDuplicateStart, x, y)
		}
		p.hasStart = true
		p.lvl.Start = bounds.BottomCenter()
		p.empty(x, y)
	case 'Z':
		if p.hasExit {
			return fmt.Errorf("%w at %d,%d", ErrDuplicateExit, x, y)
		}
		p.hasExit = true
		p.lvl.Exit = bounds.Center()
		p.empty(x, y)
	case 'R':
		p.lvl.Reset = bounds.Center()
		p.lvl.HasReset = true
	case 'm':
		p.lvl.MovingPlatforms = append(p.lvl.MovingPlatforms, bounds.BottomCenter())
		p.empty(x, y)
	case '|':
		p.lvl.Breakables = append(p.lvl.Breakables, bounds.BottomCenter())
		p.empty(x, y)
	case 'B', 'b', 'C', 'c':
		damage := 0.5
		if ch == 'C' || ch == 'c' {
			damage = 1
		}
		p.lvl.Hostiles = append(p.lvl.Hostiles, HostileSpawn{
			Position:  bounds.Center(),
			Pollutant: true,
			Damage:    damage,
			Vertical:  ch == 'b' || ch == 'c',
		})
		p.empty(x, y)
	case 'D', 'E', 'F', '$', '!':
		// Animals, gems and info signs belong to the scoring layer.
		p.empty(x, y)
	default:
		if ch >= '0' && ch <= '9' {
			p.digit(ch, x, y)
			return nil
		}
		return fmt.Errorf("%w %q at %d,%d", ErrUnknownTile, ch, x, y)
	}
	return nil
}

func (p *textParser) digit(ch rune, x, y int) {
	pos := dmath.NewVec2(p.lvl.Grid.Bounds(x, y).X, p.lvl.Grid.Bounds(x, y).Y)
	if p.opts.Puzzle == PuzzleOzone {
		p.lvl.OzoneTiles = append(p.lvl.OzoneTiles, OzoneSpawn{Position: pos, Glowing: ch != '0', Static: ch == '2'})
		return
	}
	if ch == '0' {
		p.lvl.PuzzleHome = pos
		p.lvl.HasPuzzleHome = true
		return
	}
	p.lvl.PuzzleBlocks = append(p.lvl.PuzzleBlocks, PuzzleBlockSpawn{Position: pos, Number: int(ch - '0')})
}

// empty fills a spawn marker's cell with the level's background.
func (p *textParser) empty(x, y int) {
	if p.opts.Submerged {
		p.lvl.Grid.Set(x, y, tilegrid.Water)
	}
}

func (l *Level) validate(hasStart, hasExit bool) error {
	if !hasStart {
		return ErrNoStart
	}
	if !hasExit {
		return ErrNoExit
	}
	if len(l.OzoneTiles) > 0 && !l.HasReset {
		return ErrNoOzoneReset
	}
	return nil
}
