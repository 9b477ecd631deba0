package scratch

import (
	"image"
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic control points so that four segments approximate a
// quarter circle each.
const kappa = 0.5522847498

// Mask is the erasable overlay of a cell. Only coverage matters, so it is kept
// as a bare alpha raster; fill and border colours are left to the client.
type Mask struct {
	img *image.Alpha
	// brush holds the coverage of the last disc, padded so that discs
	// overlapping the edges are never clipped by the rasterizer.
	brush *image.Alpha
	pad   int
	z     *vector.Rasterizer
}

func NewMask(width, height int) *Mask {
	return &Mask{
		img: image.NewAlpha(image.Rect(0, 0, width, height)),
		z:   vector.NewRasterizer(width, height),
	}
}

// Image exposes the raster for rendering. Callers must not modify it.
func (m *Mask) Image() *image.Alpha {
	return m.img
}

// disc rasterizes a disc into m.brush and reports false if it cannot touch
// the mask at all.
func (m *Mask) disc(cx, cy, r float32) bool {
	w, h := m.img.Rect.Dx(), m.img.Rect.Dy()
	if r <= 0 || cx+r <= 0 || cy+r <= 0 || cx-r >= float32(w) || cy-r >= float32(h) {
		return false
	}

	pad := 2*int(math.Ceil(float64(r))) + 1
	bw, bh := w+2*pad, h+2*pad
	if m.brush == nil || m.brush.Rect.Dx() != bw || m.brush.Rect.Dy() != bh {
		m.brush = image.NewAlpha(image.Rect(0, 0, bw, bh))
	} else {
		clear(m.brush.Pix)
	}
	m.pad = pad

	cx, cy = cx+float32(pad), cy+float32(pad)
	k := r * kappa
	m.z.Reset(bw, bh)
	m.z.MoveTo(cx+r, cy)
	m.z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	m.z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	m.z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	m.z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	m.z.ClosePath()
	m.z.Draw(m.brush, m.brush.Bounds(), image.Opaque, image.Point{})
	return true
}

// composite calls f for every mask pixel the current disc covers, with the
// pixel's alpha and the disc's coverage, and stores the result.
func (m *Mask) composite(f func(a, c uint32) uint8) {
	w, h := m.img.Rect.Dx(), m.img.Rect.Dy()
	for y := range h {
		src := m.brush.Pix[(y+m.pad)*m.brush.Stride+m.pad:][:w]
		dst := m.img.Pix[y*m.img.Stride:][:w]
		for x, c := range src {
			if c == 0 {
				continue
			}
			dst[x] = f(uint32(dst[x]), uint32(c))
		}
	}
}

// FillCircle paints an opaque disc over the mask.
func (m *Mask) FillCircle(cx, cy, r float32) {
	if !m.disc(cx, cy, r) {
		return
	}
	m.composite(func(a, c uint32) uint8 {
		return uint8(c + (a*(0xff-c)+0x7f)/0xff)
	})
}

// EraseCircle removes coverage under a disc: every pixel keeps alpha*(1-c)
// where c is the disc's coverage of that pixel.
func (m *Mask) EraseCircle(cx, cy, r float32) {
	if !m.disc(cx, cy, r) {
		return
	}
	m.composite(func(a, c uint32) uint8 {
		return uint8((a*(0xff-c) + 0x7f) / 0xff)
	})
}

func (m *Mask) Transparent() int {
	n := 0
	for _, a := range m.img.Pix {
		if a == 0 {
			n++
		}
	}
	return n
}

// Progress is the fraction of the surface that is fully transparent.
func (m *Mask) Progress() float64 {
	total := len(m.img.Pix)
	if total == 0 {
		return 0
	}
	return float64(m.Transparent()) / float64(total)
}
