package pic2term

import (
	"fmt"
	"math"
)

// Geometry is a target pixel-buffer size. Height counts half-cells, so a
// terminal row holds two pixel rows.
type Geometry struct {
	Width  int
	Height int
}

// Cols returns the number of character columns the geometry occupies
func (g Geometry) Cols() int {
	return g.Width
}

// Rows returns the number of terminal rows the geometry occupies
func (g Geometry) Rows() int {
	return (g.Height + 1) / 2
}

func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d", g.Width, g.Height)
}

// Grid is a terminal character grid size
type Grid struct {
	Cols int
	Rows int
}

// Resolve computes the pixel geometry to resample an image with the given
// aspect ratio (width/height) to.
//
// width and height are in character columns and rows; zero means "not
// requested". When neither is requested the image is fit into grid, and a
// nil grid yields ErrGeometryUnresolved.
//
// Each terminal row packs two image rows via the half-block glyph, so any
// row count is doubled before it is compared against the aspect ratio.
func Resolve(aspect float64, width, height int, grid *Grid) (Geometry, error) {
	if math.IsNaN(aspect) || math.IsInf(aspect, 0) || aspect <= 0 {
		return Geometry{}, fmt.Errorf("%w: got %v", ErrInvalidAspect, aspect)
	}
	if width < 0 || height < 0 {
		return Geometry{}, precondition("resolve", "negative size %dx%d", width, height)
	}

	var g Geometry
	switch {
	case width > 0 && height > 0:
		// Both explicit, aspect ratio is not enforced
		g = Geometry{Width: width, Height: height * 2}
	case width > 0:
		g = Geometry{Width: width, Height: int(float64(width) / aspect)}
	case height > 0:
		h := height * 2
		g = Geometry{Width: int(float64(h) * aspect), Height: h}
	default:
		if grid == nil {
			return Geometry{}, ErrGeometryUnresolved
		}
		g = fitGrid(aspect, grid.Cols, grid.Rows*2)
	}

	if g.Width <= 0 || g.Height <= 0 {
		return Geometry{}, fmt.Errorf("%w: resolved to %s", ErrGeometryUnresolved, g)
	}
	return g, nil
}

// fitGrid scales the smaller of w and h to the aspect ratio and shrinks both
// uniformly if the other axis then overflows its bound.
func fitGrid(aspect float64, w, h int) Geometry {
	if w < h {
		rescaledH := int(float64(w) / aspect)
		if rescaledH > h {
			scale := float64(h) / float64(rescaledH)
			return Geometry{Width: int(float64(w) * scale), Height: h}
		}
		return Geometry{Width: w, Height: rescaledH}
	}

	rescaledW := int(float64(h) * aspect)
	if rescaledW > w {
		scale := float64(w) / float64(rescaledW)
		return Geometry{Width: w, Height: int(float64(h) * scale)}
	}
	return Geometry{Width: rescaledW, Height: h}
}
