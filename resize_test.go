package pic2term

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in      string
		want    Filter
		wantErr bool
	}{
		{in: "nearest", want: Nearest},
		{in: "triangle", want: Triangle},
		{in: "gaussian", want: Gaussian},
		{in: "catmullrom", want: CatmullRom},
		{in: "lanczos3", want: Lanczos3},
		{in: "Lanczos3", want: Lanczos3},
		{in: "bicubic", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFilter(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFilter)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, s string) Filter {
	t.Helper()
	f, err := ParseFilter(s)
	require.NoError(t, err)
	return f
}

func TestFilterString(t *testing.T) {
	assert.Equal(t, []string{"nearest", "triangle", "gaussian", "catmullrom", "lanczos3"}, Filters())
	assert.Equal(t, "Filter(9)", Filter(9).String())
}

func TestResample(t *testing.T) {
	src := createTestImage(32, 20)
	target := Geometry{Width: 7, Height: 5}

	for _, name := range Filters() {
		f := mustParse(t, name)
		t.Run(fmt.Sprintf("Filter_%s", f), func(t *testing.T) {
			out, err := Resample(src, target, f)
			require.NoError(t, err)
			assert.Equal(t, 7, out.Bounds().Dx())
			assert.Equal(t, 5, out.Bounds().Dy())
		})
	}
}

func TestResampleUniformKeepsColor(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 40))
	want := color.RGBA{R: 0x87, G: 0x87, A: 0xff}
	for y := range 40 {
		for x := range 40 {
			src.SetRGBA(x, y, want)
		}
	}

	out, err := Resample(src, Geometry{Width: 10, Height: 6}, Nearest)
	require.NoError(t, err)
	buf, err := PixelBufferFromImage(out)
	require.NoError(t, err)
	for _, p := range buf.Pix {
		assert.Equal(t, Pixel{0x87, 0x87, 0}, p)
	}
}

func TestResampleSameSize(t *testing.T) {
	src := createTestImage(12, 8)
	out, err := Resample(src, Geometry{Width: 12, Height: 8}, Lanczos3)
	require.NoError(t, err)
	assert.True(t, out == src, "same size should return the source image")
}

func TestResampleErrors(t *testing.T) {
	var perr *PreconditionError

	_, err := Resample(nil, Geometry{Width: 1, Height: 1}, Nearest)
	assert.True(t, errors.As(err, &perr))

	_, err = Resample(createTestImage(4, 4), Geometry{Width: 0, Height: 2}, Nearest)
	assert.True(t, errors.As(err, &perr))

	_, err = Resample(createTestImage(4, 4), Geometry{Width: 2, Height: 2}, Filter(42))
	assert.ErrorIs(t, err, ErrUnknownFilter)
}
