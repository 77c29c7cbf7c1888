package pic2term

import "fmt"

// Renderer turns a dithered grid into output lines
type Renderer interface {
	// Render formats the grid; each returned string is one output line
	Render(grid *IndexGrid) ([]string, error)

	// Encoding returns the encoding type
	Encoding() Encoding
}

// GetRenderer returns a renderer for the specified encoding
func GetRenderer(encoding Encoding) (Renderer, error) {
	switch encoding {
	case Halfblocks:
		return &HalfblocksRenderer{}, nil
	case Sixel:
		return &SixelRenderer{Palette: XTerm256(), Scale: DefaultSixelScale}, nil
	default:
		return nil, fmt.Errorf("unsupported encoding: %s", encoding)
	}
}
