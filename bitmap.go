package vectorize

import (
	"math/bits"
	"strings"
)

const wordBits = 64

// BinaryBitmap is a black and white bitmap in cartesian orientation: (0, 0)
// is the bottom left pixel. Set pixels are foreground.
//
// A BinaryBitmap is immutable once constructed and may be shared freely.
type BinaryBitmap struct {
	width, height int
	threshold     float64
	// Words per row.
	dy    int
	words []uint64
}

func newBinaryBitmap(width, height int, threshold float64) *BinaryBitmap {
	dy := (width + wordBits - 1) / wordBits
	return &BinaryBitmap{
		width:     width,
		height:    height,
		threshold: threshold,
		dy:        dy,
		words:     make([]uint64, dy*height),
	}
}

func (bm *BinaryBitmap) Width() int  { return bm.width }
func (bm *BinaryBitmap) Height() int { return bm.height }

// Threshold returns the brightness threshold that produced the bitmap.
func (bm *BinaryBitmap) Threshold() float64 { return bm.threshold }

// At reports whether the pixel at (x, y) is set. Pixels outside the
// bitmap are never set.
func (bm *BinaryBitmap) At(x, y int) bool {
	if x < 0 || y < 0 || x >= bm.width || y >= bm.height {
		return false
	}
	w := bm.words[y*bm.dy+x/wordBits]
	return w&(1<<(wordBits-1-uint(x%wordBits))) != 0
}

// Count returns the number of set pixels.
func (bm *BinaryBitmap) Count() int {
	n := 0
	for _, w := range bm.words {
		n += bits.OnesCount64(w)
	}
	return n
}

func (bm *BinaryBitmap) put(x, y int, v bool) {
	i := y*bm.dy + x/wordBits
	mask := uint64(1) << (wordBits - 1 - uint(x%wordBits))
	if v {
		bm.words[i] |= mask
	} else {
		bm.words[i] &^= mask
	}
}

// flip mirrors the bitmap vertically by swapping rows.
func (bm *BinaryBitmap) flip() {
	for top, bot := 0, bm.height-1; top < bot; top, bot = top+1, bot-1 {
		a := bm.words[top*bm.dy : (top+1)*bm.dy]
		b := bm.words[bot*bm.dy : (bot+1)*bm.dy]
		for i := range a {
			a[i], b[i] = b[i], a[i]
		}
	}
}

// BitmapFromRows builds a bitmap from rows of text, given top to bottom.
// '#' and 'X' mark set pixels, anything else is clear. Short rows are
// padded with clear pixels. It returns nil if rows is empty or every row
// is empty.
func BitmapFromRows(rows []string, threshold float64) *BinaryBitmap {
	w := 0
	for _, r := range rows {
		w = max(w, len(r))
	}
	if w == 0 {
		return nil
	}
	bm := newBinaryBitmap(w, len(rows), clampFloat(threshold, MinThreshold, MaxThreshold))
	for y, r := range rows {
		for x := 0; x < len(r); x++ {
			if r[x] == '#' || r[x] == 'X' {
				bm.put(x, y, true)
			}
		}
	}
	bm.flip()
	return bm
}

// String renders the bitmap top to bottom in the format accepted by
// [BitmapFromRows].
func (bm *BinaryBitmap) String() string {
	var sb strings.Builder
	for y := bm.height - 1; y >= 0; y-- {
		for x := 0; x < bm.width; x++ {
			if bm.At(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

