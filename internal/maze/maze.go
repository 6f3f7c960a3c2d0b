// Package maze holds the fixed tile grids that classify the play field into
// wall and path. Layouts are immutable; the active layout is selected by
// level index during a reset or level transition, never mid-frame.
package maze

// Tile classifies one grid cell.
type Tile int

const (
	Path Tile = iota
	Wall
)

// Grid geometry. The 128x160 pixel surface divides into 16x20 tiles of
// 8 pixels.
const (
	TileSize = 8
	Cols     = 16
	Rows     = 20
)

// Maze is an immutable wall/path grid.
type Maze struct {
	cells [Rows][Cols]Tile
}

// level layouts, one string row per tile row; '#' is wall, anything else is
// path. Rows below the last listed one are open path.
var level1Layout = []string{
	"################",
	"#.....#........#",
	"#.###.#.######.#",
	"#...#.....#....#",
	"###.#####.#.##.#",
	"#.......#...#..#",
	"#.#####.#####.##",
	"#.....#........#",
	"#####.#####.##.#",
	"#.....#.....#..#",
	"#.#####.#####.##",
	"#.......#......#",
	"#.#######.####.#",
	"#............#.#",
	"#.##########.#.#",
	"#..............#",
	"################",
}

var level2Layout = []string{
	"################",
	"#...#.....#....#",
	"#.#.#.###.#.##.#",
	"#.#.....#....#.#",
	"#.#####.####.#.#",
	"#.....#........#",
	"#####.###.####.#",
	"#...#...#.#....#",
	"#.#.###.#.#.####",
	"#.#.......#....#",
	"#.############.#",
	"#.....#......#.#",
	"#.###.#.####.#.#",
	"#...#...#......#",
	"###.#####.####.#",
	"#..............#",
	"################",
}

func parse(layout []string) *Maze {
	m := &Maze{}
	for y, row := range layout {
		if y >= Rows {
			break
		}
		for x, ch := range row {
			if x >= Cols {
				break
			}
			if ch == '#' {
				m.cells[y][x] = Wall
			}
		}
	}
	return m
}

var levels = []*Maze{parse(level1Layout), parse(level2Layout)}

// ForLevel returns the maze for a 1-based level index. Levels past the last
// layout reuse the final one.
func ForLevel(level int) *Maze {
	if level < 1 {
		level = 1
	}
	if level > len(levels) {
		level = len(levels)
	}
	return levels[level-1]
}

// LevelCount returns the number of distinct layouts.
func LevelCount() int {
	return len(levels)
}

// TileAt maps pixel coordinates to the underlying tile. Coordinates outside
// the grid fail closed: they are reported as Wall.
func (m *Maze) TileAt(px, py int) Tile {
	gx := px / TileSize
	gy := py / TileSize
	if px < 0 || py < 0 || gx >= Cols || gy >= Rows {
		return Wall
	}
	return m.cells[gy][gx]
}

// IsWall reports whether the pixel position collides with a wall tile.
func (m *Maze) IsWall(px, py int) bool {
	return m.TileAt(px, py) == Wall
}

// Cell returns the tile at grid coordinates, failing closed out of bounds.
// Used by the background renderer, which walks the grid directly.
func (m *Maze) Cell(gx, gy int) Tile {
	if gx < 0 || gy < 0 || gx >= Cols || gy >= Rows {
		return Wall
	}
	return m.cells[gy][gx]
}
