package pic2term

import (
	"errors"
	"image"
	"image/color"
	"slices"
	"testing"

	"github.com/soniakeys/quant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniformBuffer(t *testing.T, width, height int, p Pixel) *PixelBuffer {
	t.Helper()
	buf, err := NewPixelBuffer(width, height)
	require.NoError(t, err)
	for i := range buf.Pix {
		buf.Pix[i] = p
	}
	return buf
}

// filledPalette returns a palette with every entry set to p
func filledPalette(p Pixel) *Palette {
	var pal Palette
	for i := range pal {
		pal[i] = p
	}
	return &pal
}

func TestKernel(t *testing.T) {
	taps := Kernel()
	require.Len(t, taps, 12)

	sum := 0
	for _, tap := range taps {
		sum += int(tap.Weight)
		assert.True(t, tap.DY > 0 || (tap.DY == 0 && tap.DX > 0),
			"tap %+v points at a visited pixel", tap)
		assert.LessOrEqual(t, tap.DY, 2)
		assert.LessOrEqual(t, abs(tap.DX), 2)
	}
	assert.Equal(t, KernelDenominator, sum)

	// Copies must not leak into the table Dither uses
	taps[0].Weight = 100
	assert.Equal(t, int16(7), Kernel()[0].Weight)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func TestDitherUniformExactMatch(t *testing.T) {
	pal := XTerm256()

	for k, p := range pal {
		if pal.Nearest(p) != uint8(k) {
			continue // duplicate of an earlier entry
		}
		buf := uniformBuffer(t, 5, 4, p)

		grid, err := Dither(buf, pal)
		require.NoError(t, err)
		for i, idx := range grid.Index {
			require.Equal(t, uint8(k), idx, "palette %d pixel %d", k, i)
		}
		for i, got := range buf.Pix {
			require.Equal(t, p, got, "palette %d pixel %d was perturbed", k, i)
		}
	}
}

func TestDitherTieBreakLowestIndex(t *testing.T) {
	pal := filledPalette(Pixel{255, 255, 255})
	pal[3] = Pixel{40, 80, 120}
	pal[7] = Pixel{40, 80, 120}

	grid, err := Dither(uniformBuffer(t, 3, 3, Pixel{40, 80, 120}), pal)
	require.NoError(t, err)
	for _, idx := range grid.Index {
		assert.Equal(t, uint8(3), idx)
	}
}

func TestDitherDiffusesResidual(t *testing.T) {
	// Black at 0, white everywhere else
	pal := filledPalette(Pixel{255, 255, 255})
	pal[0] = Pixel{0, 0, 0}

	buf := uniformBuffer(t, 3, 1, Pixel{130, 130, 130})
	grid, err := Dither(buf, pal)
	require.NoError(t, err)

	// 130 snaps to white: -125*7/48 = -18 and -125*5/48 = -13 (truncated).
	// 112 snaps to black: 133 = 117 + 112*7/48.
	assert.Equal(t, []uint8{1, 0, 1}, grid.Index)
	assert.Equal(t, Pixel{112, 112, 112}, buf.Pix[1])
	assert.Equal(t, Pixel{133, 133, 133}, buf.Pix[2])
}

func TestDitherReachesLeftEdge(t *testing.T) {
	pal := filledPalette(Pixel{0, 0, 0})
	buf := uniformBuffer(t, 3, 2, Pixel{})
	buf.Set(2, 0, Pixel{R: 96})

	_, err := Dither(buf, pal)
	require.NoError(t, err)

	// (2,0) spreads 96*3/48, 96*5/48 and 96*7/48 to (0,1), (1,1), (2,1);
	// (1,1) then passes 10*7/48 = 1 on to (2,1).
	assert.Equal(t, Pixel{R: 6}, buf.At(0, 1))
	assert.Equal(t, Pixel{R: 10}, buf.At(1, 1))
	assert.Equal(t, Pixel{R: 15}, buf.At(2, 1))
	assert.Equal(t, Pixel{}, buf.At(0, 0))
}

func TestDitherSaturates(t *testing.T) {
	t.Run("Overflow", func(t *testing.T) {
		buf := uniformBuffer(t, 3, 1, Pixel{250, 250, 250})
		_, err := Dither(buf, filledPalette(Pixel{0, 0, 0}))
		require.NoError(t, err)
		assert.Equal(t, Pixel{255, 255, 255}, buf.Pix[1])
		assert.Equal(t, Pixel{255, 255, 255}, buf.Pix[2])
	})

	t.Run("Underflow", func(t *testing.T) {
		buf := uniformBuffer(t, 3, 1, Pixel{5, 5, 5})
		_, err := Dither(buf, filledPalette(Pixel{255, 255, 255}))
		require.NoError(t, err)
		assert.Equal(t, Pixel{0, 0, 0}, buf.Pix[1])
		assert.Equal(t, Pixel{0, 0, 0}, buf.Pix[2])
	})
}

func TestDitherDeterministic(t *testing.T) {
	img := createTestImage(17, 9)

	a, err := PixelBufferFromImage(img)
	require.NoError(t, err)
	b, err := PixelBufferFromImage(img)
	require.NoError(t, err)

	ga, err := Dither(a, XTerm256())
	require.NoError(t, err)
	gb, err := Dither(b, XTerm256())
	require.NoError(t, err)

	assert.Equal(t, 17, ga.Width)
	assert.Equal(t, 9, ga.Height)
	assert.Len(t, ga.Index, 17*9)
	assert.True(t, slices.Equal(ga.Index, gb.Index))
}

func TestDitherPreconditions(t *testing.T) {
	tests := []struct {
		name string
		buf  *PixelBuffer
		pal  *Palette
	}{
		{name: "nil buffer", buf: nil, pal: XTerm256()},
		{name: "nil palette", buf: &PixelBuffer{Width: 1, Height: 1, Pix: make([]Pixel, 1)}, pal: nil},
		{name: "short pixels", buf: &PixelBuffer{Width: 2, Height: 2, Pix: make([]Pixel, 3)}, pal: XTerm256()},
		{name: "zero width", buf: &PixelBuffer{Width: 0, Height: 2}, pal: XTerm256()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := Dither(tt.buf, tt.pal)
			assert.Nil(t, grid)
			var perr *PreconditionError
			assert.True(t, errors.As(err, &perr), "got %v", err)
		})
	}
}

func TestPixelBuffer(t *testing.T) {
	_, err := NewPixelBuffer(0, 3)
	assert.Error(t, err)
	_, err = PixelBufferFromImage(nil)
	assert.Error(t, err)

	img := image.NewNRGBA(image.Rect(2, 3, 4, 5))
	img.SetNRGBA(3, 4, color.NRGBA{R: 10, G: 20, B: 30, A: 0})
	img.SetNRGBA(2, 3, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	buf, err := PixelBufferFromImage(img)
	require.NoError(t, err)
	assert.Equal(t, 2, buf.Width)
	assert.Equal(t, 2, buf.Height)
	assert.Equal(t, Pixel{200, 100, 50}, buf.At(0, 0))
	assert.Equal(t, Pixel{10, 20, 30}, buf.At(1, 1), "alpha is dropped, not applied")
}

func TestIndexGridPaletted(t *testing.T) {
	grid := &IndexGrid{Width: 3, Height: 2, Index: []uint8{0, 9, 21, 100, 231, 255}}

	assert.Equal(t, []uint8{100, 231, 255}, grid.Row(1))
	assert.Equal(t, uint8(21), grid.At(2, 0))

	img, err := grid.Paletted(XTerm256())
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
	assert.Equal(t, uint8(100), img.ColorIndexAt(0, 1))
	assert.Equal(t, color.Color(xterm256[9]), img.At(1, 0))
}

func TestIndexGridPalettedErrors(t *testing.T) {
	short := quant.LinearPalette{Palette: color.Palette{color.Black, color.White}}

	_, err := (&IndexGrid{Width: 2, Height: 1, Index: []uint8{0, 2}}).Paletted(short)
	assert.ErrorContains(t, err, "outside palette")

	_, err = (&IndexGrid{Width: 2, Height: 1, Index: []uint8{0, 1}}).Paletted(nil)
	assert.Error(t, err)

	_, err = (&IndexGrid{Width: 2, Height: 2, Index: []uint8{0}}).Paletted(short)
	assert.Error(t, err)
}

func createTestImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	// Fill with a simple pattern for visual verification
	for y := range height {
		for x := range width {
			img.Set(x, y, color.RGBA{
				R: uint8((x * 255) / width),
				G: uint8((y * 255) / height),
				B: uint8((x + y) % 255),
				A: 255,
			})
		}
	}
	return img
}
