package pic2term

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image represents a picture to be drawn in the terminal, with a fluent API for configuration
type Image struct {
	source image.Image
	reader io.Reader
	path   string

	// Configuration
	width    int
	height   int
	filter   Filter
	encoding Encoding
	detect   GridDetector
}

// New creates a new Image from an image.Image
func New(img image.Image) *Image {
	if img == nil {
		return nil
	}
	return &Image{source: img, detect: DetectGrid}
}

// Open creates a new Image from a file path. The file is read on first use.
func Open(path string) (*Image, error) {
	if path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}
	return &Image{path: path, detect: DetectGrid}, nil
}

// From creates a new Image from an io.Reader
func From(r io.Reader) *Image {
	if r == nil {
		return nil
	}
	return &Image{reader: r, detect: DetectGrid}
}

// Width sets the target width in character columns, 0 to derive it.
// Negative values are reported when the geometry is resolved.
func (i *Image) Width(w int) *Image {
	i.width = w
	return i
}

// Height sets the target height in character rows, 0 to derive it
func (i *Image) Height(h int) *Image {
	i.height = h
	return i
}

// Size sets both width and height in character cells
func (i *Image) Size(w, h int) *Image {
	return i.Width(w).Height(h)
}

// Filter sets the resampling filter
func (i *Image) Filter(f Filter) *Image {
	i.filter = f
	return i
}

// Encoding sets the output encoding
func (i *Image) Encoding(e Encoding) *Image {
	i.encoding = e
	return i
}

// Grid sets how the terminal size is found when neither width nor height is set
func (i *Image) Grid(d GridDetector) *Image {
	if d == nil {
		d = NoGrid
	}
	i.detect = d
	return i
}

// Bounds returns the size of the source image
func (i *Image) Bounds() (image.Rectangle, error) {
	img, err := i.loadImage()
	if err != nil {
		return image.Rectangle{}, err
	}
	return img.Bounds(), nil
}

// Geometry resolves the pixel size the image will be resampled to
func (i *Image) Geometry() (Geometry, error) {
	img, err := i.loadImage()
	if err != nil {
		return Geometry{}, err
	}
	return i.resolve(img)
}

func (i *Image) resolve(img image.Image) (Geometry, error) {
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return Geometry{}, precondition("geometry", "empty image %dx%d", bounds.Dx(), bounds.Dy())
	}
	aspect := float64(bounds.Dx()) / float64(bounds.Dy())

	// Terminal size is only needed when nothing was requested
	var grid *Grid
	if i.width == 0 && i.height == 0 {
		grid = i.detect()
	}
	return Resolve(aspect, i.width, i.height, grid)
}

// Dither resolves the geometry, resamples the image and dithers it to the
// xterm 256-color palette
func (i *Image) Dither() (*IndexGrid, error) {
	img, err := i.loadImage()
	if err != nil {
		return nil, err
	}

	g, err := i.resolve(img)
	if err != nil {
		return nil, err
	}

	resized, err := Resample(img, g, i.filter)
	if err != nil {
		return nil, fmt.Errorf("failed to resample image: %w", err)
	}

	buf, err := PixelBufferFromImage(resized)
	if err != nil {
		return nil, err
	}
	return Dither(buf, &xterm256)
}

// Render returns the output lines for the image
func (i *Image) Render() ([]string, error) {
	renderer, err := GetRenderer(i.encoding)
	if err != nil {
		return nil, err
	}

	grid, err := i.Dither()
	if err != nil {
		return nil, err
	}
	return renderer.Render(grid)
}

// Print writes the rendered image to w, one line at a time. Nothing is
// written if rendering fails.
func (i *Image) Print(w io.Writer) error {
	lines, err := i.Render()
	if err != nil {
		return err
	}

	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	_, err = io.WriteString(w, sb.String())
	return err
}

// loadImage loads the image from the configured source
func (i *Image) loadImage() (image.Image, error) {
	if i.source != nil {
		return i.source, nil
	}

	if i.path != "" {
		file, err := os.Open(i.path)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		defer file.Close()

		img, _, err := image.Decode(file)
		if err != nil {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}

		i.source = img
		return img, nil
	}

	if i.reader != nil {
		img, _, err := image.Decode(i.reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}

		i.source = img
		return img, nil
	}

	return nil, fmt.Errorf("no image source configured")
}

// Convenience functions for quick rendering

// RenderFile renders an image file with default settings
func RenderFile(path string) ([]string, error) {
	img, err := Open(path)
	if err != nil {
		return nil, err
	}
	return img.Render()
}

// PrintFile prints an image file to stdout with default settings
func PrintFile(path string) error {
	img, err := Open(path)
	if err != nil {
		return err
	}
	return img.Print(os.Stdout)
}
