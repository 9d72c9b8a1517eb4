package vectorize

// Binarize converts src into a [BinaryBitmap] using the brightness
// threshold t, which is clamped to [0, 1].
//
// The brightness of a pixel is (R+G+B)·A/256 + 3·(255−A) in integer
// arithmetic, which blends the pixel against a white background so that
// transparent pixels are treated as white. A pixel is foreground iff its
// brightness is below 3·t·256. The result is flipped vertically to
// cartesian orientation.
//
// Binarize returns nil if src is nil or has no pixels. It never modifies
// src.
func Binarize(src Source, t float64) *BinaryBitmap {
	if src == nil {
		return nil
	}
	w, h := src.Width(), src.Height()
	if w <= 0 || h <= 0 {
		return nil
	}
	t = clampFloat(t, MinThreshold, MaxThreshold)

	const floor = 0.0
	cutoff := 3 * t * 256

	bm := newBinaryBitmap(w, h, t)
	for y := range h {
		for x := range w {
			c := src.Pixel(x, y)
			alpha := int(c.A)
			white := 3 * (255 - alpha)
			sample := int(c.R) + int(c.G) + int(c.B)
			brightness := float64(sample*alpha/256 + white)
			if brightness >= floor && brightness < cutoff {
				bm.put(x, y, true)
			}
		}
	}
	bm.flip()
	return bm
}
