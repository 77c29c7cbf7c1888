package pic2term

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/mattn/go-sixel"
	"github.com/soniakeys/quant"
	xdraw "golang.org/x/image/draw"
)

// DefaultSixelScale is the number of sixel pixels drawn per grid pixel on
// each axis, roughly one half-cell of a typical 8x16 terminal font
const DefaultSixelScale = 8

// SixelRenderer implements the Renderer interface for the Sixel protocol.
// Palette maps grid indices to colors and defaults to the xterm table.
type SixelRenderer struct {
	Palette quant.Palette
	Scale   int
}

// Encoding returns the encoding type
func (r *SixelRenderer) Encoding() Encoding {
	return Sixel
}

// Render encodes the grid as a single sixel sequence
func (r *SixelRenderer) Render(grid *IndexGrid) ([]string, error) {
	if err := checkGrid(grid); err != nil {
		return nil, err
	}
	pal := r.Palette
	if pal == nil {
		pal = XTerm256()
	}
	scale := max(r.Scale, 1)

	full, err := grid.Paletted(pal)
	if err != nil {
		return nil, err
	}
	src := compactPaletted(full)
	dst := image.NewPaletted(image.Rect(0, 0, grid.Width*scale, grid.Height*scale), src.Palette)
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	var buf bytes.Buffer
	enc := sixel.NewEncoder(&buf)
	enc.Dither = false // already dithered
	if err := enc.Encode(dst); err != nil {
		return nil, fmt.Errorf("failed to encode sixel: %w", err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("sixel encoding produced empty output")
	}

	return []string{wrapTmuxPassthrough(buf.String())}, nil
}

// compactPaletted rebuilds img with only the distinct colors its pixels use,
// so the sixel encoder keeps our indices instead of quantizing again.
func compactPaletted(img *image.Paletted) *image.Paletted {
	remap := make([]int, len(img.Palette))
	for i := range remap {
		remap[i] = -1
	}
	slots := make(map[color.RGBA64]int)
	var cp color.Palette
	for _, idx := range img.Pix {
		if remap[idx] >= 0 {
			continue
		}
		c := color.RGBA64Model.Convert(img.Palette[idx]).(color.RGBA64)
		slot, ok := slots[c]
		if !ok {
			slot = len(cp)
			slots[c] = slot
			cp = append(cp, img.Palette[idx])
		}
		remap[idx] = slot
	}

	out := image.NewPaletted(img.Rect, cp)
	for i, idx := range img.Pix {
		out.Pix[i] = uint8(remap[idx])
	}
	return out
}
