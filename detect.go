package pic2term

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// GridDetector reports the terminal grid size, or nil when it is unknown
type GridDetector func() *Grid

// DetectGrid returns the size of the controlling terminal in character cells.
// It tries stdout, stderr and /dev/tty in turn, then the COLUMNS and LINES
// environment variables. It returns nil if none of them yields a size.
func DetectGrid() *Grid {
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		if g := gridOf(int(f.Fd())); g != nil {
			return g
		}
	}

	// Open controlling terminal
	if tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0); err == nil {
		defer tty.Close()
		if g := gridOf(int(tty.Fd())); g != nil {
			return g
		}
	}

	return gridFromEnv(os.Getenv)
}

// NoGrid is a GridDetector for environments without a terminal
func NoGrid() *Grid {
	return nil
}

// FixedGrid returns a GridDetector that always reports cols x rows
func FixedGrid(cols, rows int) GridDetector {
	return func() *Grid {
		return &Grid{Cols: cols, Rows: rows}
	}
}

func gridOf(fd int) *Grid {
	if !term.IsTerminal(fd) {
		return nil
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil || cols <= 0 || rows <= 0 {
		return nil
	}
	return &Grid{Cols: cols, Rows: rows}
}

func gridFromEnv(getenv func(string) string) *Grid {
	cols, err := strconv.Atoi(getenv("COLUMNS"))
	if err != nil || cols <= 0 {
		return nil
	}
	rows, err := strconv.Atoi(getenv("LINES"))
	if err != nil || rows <= 0 {
		return nil
	}
	return &Grid{Cols: cols, Rows: rows}
}
