package pic2term

import (
	"image"
	"image/color"

	"github.com/soniakeys/quant"
)

// PixelBuffer is a mutable row-major RGB raster
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []Pixel
}

// NewPixelBuffer allocates a black buffer of the given size
func NewPixelBuffer(width, height int) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, precondition("pixel buffer", "invalid size %dx%d", width, height)
	}
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]Pixel, width*height),
	}, nil
}

// PixelBufferFromImage copies img into a new buffer, dropping alpha
func PixelBufferFromImage(img image.Image) (*PixelBuffer, error) {
	if img == nil {
		return nil, precondition("pixel buffer", "image cannot be nil")
	}
	bounds := img.Bounds()
	buf, err := NewPixelBuffer(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			buf.Pix[i] = Pixel{R: c.R, G: c.G, B: c.B}
			i++
		}
	}
	return buf, nil
}

// At returns the pixel at (x, y)
func (b *PixelBuffer) At(x, y int) Pixel {
	return b.Pix[y*b.Width+x]
}

// Set stores p at (x, y)
func (b *PixelBuffer) Set(x, y int, p Pixel) {
	b.Pix[y*b.Width+x] = p
}

// IndexGrid is the dithered result: one palette index per pixel in raster order
type IndexGrid struct {
	Width  int
	Height int
	Index  []uint8
}

// At returns the palette index at (x, y)
func (g *IndexGrid) At(x, y int) uint8 {
	return g.Index[y*g.Width+x]
}

// Row returns row y of the grid
func (g *IndexGrid) Row(y int) []uint8 {
	return g.Index[y*g.Width : (y+1)*g.Width]
}

// Paletted wraps the grid as an image using pal for its colors. Every index
// in the grid must address an entry of pal.
func (g *IndexGrid) Paletted(pal quant.Palette) (*image.Paletted, error) {
	if err := checkGrid(g); err != nil {
		return nil, err
	}
	if pal == nil {
		return nil, precondition("paletted", "palette cannot be nil")
	}
	cp := pal.ColorPalette()
	for _, idx := range g.Index {
		if int(idx) >= len(cp) {
			return nil, precondition("paletted", "index %d outside palette of %d colors", idx, len(cp))
		}
	}
	img := image.NewPaletted(image.Rect(0, 0, g.Width, g.Height), cp)
	copy(img.Pix, g.Index)
	return img, nil
}

// Tap is one entry of an error-diffusion kernel: the neighbor offset and its
// share of the residual over KernelDenominator
type Tap struct {
	DX, DY int
	Weight int16
}

// KernelDenominator is the sum of all kernel weights
const KernelDenominator = 48

// Kernel returns a copy of the diffusion kernel used by Dither
func Kernel() []Tap {
	taps := make([]Tap, len(kernel))
	copy(taps, kernel[:])
	return taps
}

// kernel is the 12-tap diffusion table. No tap points at an already visited
// position, so Dither can run as a single raster pass.
var kernel = [...]Tap{
	{DX: 1, DY: 0, Weight: 7},
	{DX: 2, DY: 0, Weight: 5},
	{DX: -2, DY: 1, Weight: 3},
	{DX: -1, DY: 1, Weight: 5},
	{DX: 0, DY: 1, Weight: 7},
	{DX: 1, DY: 1, Weight: 5},
	{DX: 2, DY: 1, Weight: 3},
	{DX: -2, DY: 2, Weight: 1},
	{DX: -1, DY: 2, Weight: 3},
	{DX: 0, DY: 2, Weight: 5},
	{DX: 1, DY: 2, Weight: 3},
	{DX: 2, DY: 2, Weight: 1},
}

// Dither quantizes buf to pal, diffusing each pixel's residual to its
// unvisited neighbors. buf is modified in place.
func Dither(buf *PixelBuffer, pal *Palette) (*IndexGrid, error) {
	if buf == nil || pal == nil {
		return nil, precondition("dither", "buffer and palette are required")
	}
	if buf.Width <= 0 || buf.Height <= 0 || len(buf.Pix) != buf.Width*buf.Height {
		return nil, precondition("dither", "buffer holds %d pixels for size %dx%d",
			len(buf.Pix), buf.Width, buf.Height)
	}

	grid := &IndexGrid{
		Width:  buf.Width,
		Height: buf.Height,
		Index:  make([]uint8, len(buf.Pix)),
	}

	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			cur := buf.At(x, y)
			idx := pal.Nearest(cur)
			grid.Index[y*buf.Width+x] = idx

			chosen := pal[idx]
			dr := int16(cur.R) - int16(chosen.R)
			dg := int16(cur.G) - int16(chosen.G)
			db := int16(cur.B) - int16(chosen.B)
			if dr == 0 && dg == 0 && db == 0 {
				continue
			}

			for _, tap := range kernel {
				nx, ny := x+tap.DX, y+tap.DY
				if nx < 0 || nx >= buf.Width || ny >= buf.Height {
					continue
				}
				p := buf.At(nx, ny)
				buf.Set(nx, ny, Pixel{
					R: diffuse(p.R, dr, tap.Weight),
					G: diffuse(p.G, dg, tap.Weight),
					B: diffuse(p.B, db, tap.Weight),
				})
			}
		}
	}

	return grid, nil
}

// diffuse adds weight/48 of residual to channel, saturating at 0 and 255
func diffuse(channel uint8, residual, weight int16) uint8 {
	v := int16(channel) + residual*weight/KernelDenominator
	switch {
	case v < 0:
		return 0
	case v > 0xff:
		return 0xff
	default:
		return uint8(v)
	}
}
