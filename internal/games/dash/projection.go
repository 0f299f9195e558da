package dash

import (
	"math"

	"github.com/vovakirdan/dashrun/internal/core"
	"github.com/vovakirdan/dashrun/internal/runner"
)

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 1

// epsilon absorbs float error from scaling, e.g. 110*0.1 = 11.000000000000002.
const epsilon = 1e-9

// projection maps world units onto character cells.
type projection struct {
	sx, sy float64
}

func newProjection(width, height int, snap runner.Snapshot) projection {
	return projection{
		sx: float64(width) / snap.FieldW,
		sy: float64(core.Max(height-hudRows, 1)) / snap.FieldH,
	}
}

// row returns the screen row of world y. Edges round up so a rect ending at
// the ground line stops one row above it.
func (p projection) row(y float64) int {
	return hudRows + int(math.Ceil(y*p.sy-epsilon))
}

// cells converts a world rect to a cell rect at least one cell in size.
func (p projection) cells(r core.Rect) (x, y, w, h int) {
	s := r.Scale(p.sx, p.sy)

	x = int(math.Floor(s.X + epsilon))
	y = hudRows + int(math.Floor(s.Y+epsilon))
	right := int(math.Ceil(s.Right() - epsilon))
	bottom := hudRows + int(math.Ceil(s.Bottom()-epsilon))

	w = core.Max(right-x, 1)
	h = core.Max(bottom-y, 1)
	return x, y, w, h
}
