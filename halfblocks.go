package pic2term

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Glyphs used for half-block output
const (
	// LowerHalfBlock paints the lower pixel in the foreground over the upper pixel as background
	LowerHalfBlock = '▄'
	// FullBlock paints a lone trailing row with only a foreground color
	FullBlock = '█'
)

// Cell is one character cell of half-block output
type Cell struct {
	FG    uint8
	BG    uint8
	HasBG bool
	Glyph rune
}

// style returns the SGR style for c
func (c Cell) style() ansi.Style {
	s := ansi.Style{}.ForegroundColor(ansi.ExtendedColor(c.FG))
	if c.HasBG {
		s = s.BackgroundColor(ansi.ExtendedColor(c.BG))
	}
	return s
}

func (c Cell) sameStyle(o Cell) bool {
	return c.FG == o.FG && c.HasBG == o.HasBG && (!c.HasBG || c.BG == o.BG)
}

// Cells pairs up the rows of grid, producing ceil(height/2) rows of cells
func Cells(grid *IndexGrid) ([][]Cell, error) {
	if err := checkGrid(grid); err != nil {
		return nil, err
	}
	rows := make([][]Cell, 0, (grid.Height+1)/2)
	for y := 0; y < grid.Height; y += 2 {
		upper := grid.Row(y)
		line := make([]Cell, grid.Width)
		if y+1 < grid.Height {
			lower := grid.Row(y + 1)
			for x := range line {
				line[x] = Cell{FG: lower[x], BG: upper[x], HasBG: true, Glyph: LowerHalfBlock}
			}
		} else {
			for x := range line {
				line[x] = Cell{FG: upper[x], Glyph: FullBlock}
			}
		}
		rows = append(rows, line)
	}
	return rows, nil
}

// FormatCells writes a row of cells as a styled line. A style sequence is
// only emitted when it differs from the previous cell's and the line always
// ends with a reset.
func FormatCells(cells []Cell) string {
	var sb strings.Builder
	for i, c := range cells {
		if i == 0 || !c.sameStyle(cells[i-1]) {
			sb.WriteString(c.style().String())
		}
		sb.WriteRune(c.Glyph)
	}
	if len(cells) > 0 {
		sb.WriteString(ansi.ResetStyle)
	}
	return sb.String()
}

// HalfblocksRenderer renders index grids as lines of half-block glyphs
type HalfblocksRenderer struct{}

// Encoding returns the encoding type
func (r *HalfblocksRenderer) Encoding() Encoding {
	return Halfblocks
}

// Render returns one formatted line per pair of grid rows
func (r *HalfblocksRenderer) Render(grid *IndexGrid) ([]string, error) {
	cells, err := Cells(grid)
	if err != nil {
		return nil, err
	}
	lines := make([]string, len(cells))
	for i, row := range cells {
		lines[i] = FormatCells(row)
	}
	return lines, nil
}

// RenderLines renders a raw index slice of the given dimensions
func RenderLines(index []uint8, width, height int) ([]string, error) {
	return (&HalfblocksRenderer{}).Render(&IndexGrid{Width: width, Height: height, Index: index})
}

func checkGrid(grid *IndexGrid) error {
	if grid == nil {
		return precondition("render", "grid cannot be nil")
	}
	if grid.Width <= 0 || grid.Height <= 0 || len(grid.Index) != grid.Width*grid.Height {
		return precondition("render", "grid holds %d indices for size %dx%d",
			len(grid.Index), grid.Width, grid.Height)
	}
	return nil
}
