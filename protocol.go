package pic2term

import (
	"fmt"
	"strings"
)

// Encoding selects how a dithered grid is written to the terminal
type Encoding int

const (
	// Halfblocks draws two pixel rows per text row with 256-color SGR sequences
	Halfblocks Encoding = iota
	// Sixel draws the dithered grid as a sixel graphic
	Sixel
)

var encodingNames = map[Encoding]string{
	Halfblocks: "halfblocks",
	Sixel:      "sixel",
}

func (e Encoding) String() string {
	if name, ok := encodingNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Encoding(%d)", int(e))
}

// ParseEncoding converts an encoding name to an Encoding
func ParseEncoding(s string) (Encoding, error) {
	for e, name := range encodingNames {
		if strings.EqualFold(s, name) {
			return e, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEncoding, s)
}

// Encodings lists the valid encoding names
func Encodings() []string {
	return []string{Halfblocks.String(), Sixel.String()}
}
