package game

import (
	"fmt"
	"strings"
)

// Layout is the static part of a game: the maze and where everything starts.
type Layout struct {
	Width    int
	Height   int
	walls    []bool // Indexed by y*Width + x
	Food     []Position
	Capsules []Position
	Pacman   Position
	Ghosts   []Position
}

// BuildLayout builds a layout from fixture rows:
// '%' wall, '.' food, 'o' capsule, 'P' Pacman, 'G' ghost, anything else empty.
// Every row must have the same width and exactly one Pacman must be present.
func BuildLayout(rows ...string) (*Layout, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("layout has no rows")
	}
	width := len(rows[0])
	l := &Layout{
		Width:  width,
		Height: len(rows),
		walls:  make([]bool, width*len(rows)),
	}

	pacmen := 0
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("layout row %d has width %d, expected %d", y, len(row), width)
		}
		for x, cell := range row {
			p := Position{X: x, Y: y}
			switch cell {
			case '%':
				l.walls[y*width+x] = true
			case '.':
				l.Food = append(l.Food, p)
			case 'o':
				l.Capsules = append(l.Capsules, p)
			case 'P':
				l.Pacman = p
				pacmen++
			case 'G':
				l.Ghosts = append(l.Ghosts, p)
			}
		}
	}
	if pacmen != 1 {
		return nil, fmt.Errorf("layout must contain exactly one Pacman, found %d", pacmen)
	}
	return l, nil
}

// MustBuildLayout is BuildLayout for fixtures known to be valid.
func MustBuildLayout(rows ...string) *Layout {
	l, err := BuildLayout(rows...)
	if err != nil {
		panic(err)
	}
	return l
}

// IsWall reports whether p is blocked. Cells outside the board count as walls.
func (l *Layout) IsWall(p Position) bool {
	if p.X < 0 || p.X >= l.Width || p.Y < 0 || p.Y >= l.Height {
		return true
	}
	return l.walls[p.Y*l.Width+p.X]
}

// String renders the maze with the initial food and agents.
func (l *Layout) String() string {
	grid := make([][]byte, l.Height)
	for y := range grid {
		grid[y] = make([]byte, l.Width)
		for x := range grid[y] {
			if l.walls[y*l.Width+x] {
				grid[y][x] = '%'
			} else {
				grid[y][x] = ' '
			}
		}
	}
	for _, f := range l.Food {
		grid[f.Y][f.X] = '.'
	}
	for _, c := range l.Capsules {
		grid[c.Y][c.X] = 'o'
	}
	for _, g := range l.Ghosts {
		grid[g.Y][g.X] = 'G'
	}
	grid[l.Pacman.Y][l.Pacman.X] = 'P'

	var sb strings.Builder
	for _, row := range grid {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

var layouts = map[string][]string{
	"testClassic": {
		"%%%%%",
		"% . %",
		"%.G.%",
		"% . %",
		"%. .%",
		"%   %",
		"%  .%",
		"%   %",
		"%P .%",
		"%%%%%",
	},
	"smallClassic": {
		"%%%%%%%%%%%%%%%%%%%%",
		"%......%G  G%......%",
		"%.%%...%%  %%...%%.%",
		"%.%o.%........%.o%.%",
		"%.%%.%.%%%%%%.%.%%.%",
		"%........P.........%",
		"%%%%%%%%%%%%%%%%%%%%",
	},
	"minimaxClassic": {
		"%%%%%%%%%",
		"%.P    G%",
		"% %.%G%%%",
		"%G    %.%",
		"%%%%%%%%%",
	},
}

// NamedLayout returns one of the built-in fixture layouts.
func NamedLayout(name string) (*Layout, error) {
	rows, ok := layouts[name]
	if !ok {
		return nil, fmt.Errorf("unknown layout %q", name)
	}
	return BuildLayout(rows...)
}
