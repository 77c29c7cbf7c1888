/*
Package pic2term renders images in the terminal as rows of Unicode half-block
characters colored from the xterm 256-color palette.

Each terminal row carries two image rows: the lower-half block '▄' is drawn
with the lower pixel as foreground and the upper pixel as background. Colors
are chosen by nearest match in RGB space with error diffusion over a 12-tap
kernel, so regions keep their average color even with only 256 entries.

The pipeline runs in a fixed order:

  - Resolve picks the pixel geometry from the image aspect ratio, the
    requested columns/rows and, when neither is given, the terminal size
  - Resample scales the decoded image to that geometry with one of the
    Filter kernels
  - Dither quantizes the pixels to palette indices
  - a Renderer formats the indices as lines (half-blocks or sixel)

Basic Usage:

	// Simple one-liner
	pic2term.PrintFile("image.png")

	// With configuration
	img, err := pic2term.Open("image.png")
	if err != nil {
	    log.Fatal(err)
	}

	err = img.Width(80).Filter(pic2term.Lanczos3).Print(os.Stdout)
	if err != nil {
	    log.Fatal(err)
	}

Lower level:

	g, err := pic2term.Resolve(aspect, 0, 0, pic2term.DetectGrid())
	if errors.Is(err, pic2term.ErrGeometryUnresolved) {
	    // no size requested and no terminal
	}
	buf, _ := pic2term.PixelBufferFromImage(resized)
	grid, _ := pic2term.Dither(buf, pic2term.XTerm256())
	lines, _ := (&pic2term.HalfblocksRenderer{}).Render(grid)
*/
package pic2term
