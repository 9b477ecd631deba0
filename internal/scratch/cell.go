package scratch

const (
	DefaultSurfaceSize = 100
	// RevealThreshold is exclusive: a cell reveals once strictly more than
	// this fraction of its surface is transparent.
	RevealThreshold = 0.5
	BrushRadius     = 15
	maskInset       = 10
	maskBorderWidth = 5
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Surface is the fixed pixel size of a cell's drawing area.
type Surface struct {
	Width, Height int
}

func DefaultSurface() Surface {
	return Surface{Width: DefaultSurfaceSize, Height: DefaultSurfaceSize}
}

func (s Surface) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < float64(s.Width) && p.Y < float64(s.Height)
}

// Cell is a single scratchable surface hiding an outcome. It moves from
// masked to revealed once and never back.
type Cell struct {
	outcome  Outcome
	surface  Surface
	mask     *Mask
	revealed bool
	mounted  bool
	onReveal func()
}

func newCell(surface Surface, outcome Outcome, onReveal func()) *Cell {
	c := &Cell{
		outcome:  outcome,
		surface:  surface,
		mask:     NewMask(surface.Width, surface.Height),
		mounted:  true,
		onReveal: onReveal,
	}
	c.drawMask()
	return c
}

func (c *Cell) drawMask() {
	cx := float32(c.surface.Width) / 2
	cy := float32(c.surface.Height) / 2
	r := cx - maskInset
	c.mask.FillCircle(cx, cy, r+maskBorderWidth/2.)
}

// Scratch erases the brush under p and reports whether this move revealed
// the cell. Moves outside the surface, after reveal or after unmount are
// ignored.
func (c *Cell) Scratch(p Point) bool {
	if !c.mounted || c.revealed || !c.surface.Contains(p) {
		return false
	}
	c.mask.EraseCircle(float32(p.X), float32(p.Y), BrushRadius)
	return c.checkProgress()
}

func (c *Cell) checkProgress() bool {
	if c.revealed || c.mask.Progress() <= RevealThreshold {
		return false
	}
	c.revealed = true
	if c.onReveal != nil {
		c.onReveal()
	}
	return true
}

// Unmount detaches the cell from pointer input.
func (c *Cell) Unmount() {
	c.mounted = false
}

func (c *Cell) Revealed() bool {
	return c.revealed
}

func (c *Cell) Progress() float64 {
	return c.mask.Progress()
}

func (c *Cell) Mask() *Mask {
	return c.mask
}

// Content returns the cell's glyph and whether it is visible yet.
func (c *Cell) Content() (Glyph, bool) {
	return c.outcome.Glyph(), c.revealed
}
