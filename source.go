package vectorize

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// RGBA8 is a non-premultiplied 8-bit color.
type RGBA8 struct {
	R, G, B, A uint8
}

// Source is a raster bitmap in raster orientation: (0, 0) is the top left
// pixel and rows run top to bottom.
type Source interface {
	Width() int
	Height() int
	Pixel(x, y int) RGBA8
}

type nrgbaSource struct{ img *image.NRGBA }

func (s nrgbaSource) Width() int  { return s.img.Rect.Dx() }
func (s nrgbaSource) Height() int { return s.img.Rect.Dy() }
func (s nrgbaSource) Pixel(x, y int) RGBA8 {
	i := s.img.PixOffset(s.img.Rect.Min.X+x, s.img.Rect.Min.Y+y)
	p := s.img.Pix[i : i+4 : i+4]
	return RGBA8{p[0], p[1], p[2], p[3]}
}

type rgbaSource struct{ img *image.RGBA }

func (s rgbaSource) Width() int  { return s.img.Rect.Dx() }
func (s rgbaSource) Height() int { return s.img.Rect.Dy() }
func (s rgbaSource) Pixel(x, y int) RGBA8 {
	i := s.img.PixOffset(s.img.Rect.Min.X+x, s.img.Rect.Min.Y+y)
	p := s.img.Pix[i : i+4 : i+4]
	c := color.NRGBAModel.Convert(color.RGBA{p[0], p[1], p[2], p[3]}).(color.NRGBA)
	return RGBA8{c.R, c.G, c.B, c.A}
}

type palettedSource struct {
	img *image.Paletted
	pal []RGBA8
}

func (s palettedSource) Width() int  { return s.img.Rect.Dx() }
func (s palettedSource) Height() int { return s.img.Rect.Dy() }
func (s palettedSource) Pixel(x, y int) RGBA8 {
	idx := s.img.ColorIndexAt(s.img.Rect.Min.X+x, s.img.Rect.Min.Y+y)
	if int(idx) >= len(s.pal) {
		return RGBA8{}
	}
	return s.pal[idx]
}

// NewImageSource adapts img to the [Source] interface. Only 32-bit RGBA
// and 8-bit indexed images are supported; anything else fails with
// [ErrIncompatiblePixelFormat] and should be converted with
// [MakeCompatible] first.
func NewImageSource(img image.Image) (Source, error) {
	switch img := img.(type) {
	case *image.NRGBA:
		return nrgbaSource{img}, nil
	case *image.RGBA:
		return rgbaSource{img}, nil
	case *image.Paletted:
		pal := make([]RGBA8, len(img.Palette))
		for i, c := range img.Palette {
			n := color.NRGBAModel.Convert(c).(color.NRGBA)
			pal[i] = RGBA8{n.R, n.G, n.B, n.A}
		}
		return palettedSource{img, pal}, nil
	case nil:
		return nil, ErrInvalidInput
	default:
		return nil, fmt.Errorf("%w: %T", ErrIncompatiblePixelFormat, img)
	}
}

// MakeCompatible converts img to a 32-bit non-premultiplied image with
// its origin at (0, 0).
func MakeCompatible(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Rect, img, b.Min, xdraw.Src)
	return dst
}

// DecodeImage decodes an image in any of the registered formats: PNG,
// JPEG, GIF, BMP, TIFF and WebP.
func DecodeImage(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}

// OpenImage decodes the image file at path and adapts it to [Source],
// converting it first if its pixel format isn't supported directly.
func OpenImage(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, format, err := DecodeImage(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	src, err := NewImageSource(img)
	if err != nil {
		Logger().Debug("converting image", "path", path, "format", format, "type", fmt.Sprintf("%T", img))
		src, err = NewImageSource(MakeCompatible(img))
	}
	return src, err
}
