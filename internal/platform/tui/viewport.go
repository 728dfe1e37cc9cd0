package tui

import (
	"math"

	"github.com/vovakirdan/dodgeball/internal/core"
)

// Viewport maps the playfield onto a grid of terminal cells. The whole
// playfield is stretched over the grid, so one cell covers
// field.W/cols by field.H/rows playfield units.
type Viewport struct {
	field      core.Box
	cols, rows int
}

// NewViewport creates a viewport of cols x rows cells over field.
func NewViewport(field core.Box, cols, rows int) *Viewport {
	v := &Viewport{field: field}
	v.Resize(cols, rows)
	return v
}

// Resize changes the cell grid. Sizes below one cell are raised to one.
func (v *Viewport) Resize(cols, rows int) {
	v.cols = max(cols, 1)
	v.rows = max(rows, 1)
}

// Cols returns the grid width in cells.
func (v *Viewport) Cols() int { return v.cols }

// Rows returns the grid height in cells.
func (v *Viewport) Rows() int { return v.rows }

// CellSize returns the playfield size of one cell.
func (v *Viewport) CellSize() core.Vec2 {
	return core.V(v.field.W/float64(v.cols), v.field.H/float64(v.rows))
}

// ToCell returns the cell containing playfield point p.
func (v *Viewport) ToCell(p core.Vec2) (col, row int) {
	cell := v.CellSize()
	col = int(math.Floor((p.X - v.field.X) / cell.X))
	row = int(math.Floor((p.Y - v.field.Y) / cell.Y))
	return col, row
}

// ToField returns the playfield point at the center of a cell.
func (v *Viewport) ToField(col, row int) core.Vec2 {
	cell := v.CellSize()
	return core.V(
		v.field.X+(float64(col)+0.5)*cell.X,
		v.field.Y+(float64(row)+0.5)*cell.Y,
	)
}

// Rect returns the cells covered by b. A box smaller than a cell still
// covers the one cell its top-left corner falls in.
func (v *Viewport) Rect(b core.Box) core.Rect {
	cell := v.CellSize()
	x0 := int(math.Floor((b.X - v.field.X) / cell.X))
	y0 := int(math.Floor((b.Y - v.field.Y) / cell.Y))
	x1 := int(math.Ceil((b.Right() - v.field.X) / cell.X))
	y1 := int(math.Ceil((b.Bottom() - v.field.Y) / cell.Y))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// TextSize returns the playfield size of n characters on one row.
func (v *Viewport) TextSize(n int) core.Vec2 {
	cell := v.CellSize()
	return core.V(float64(n)*cell.X, cell.Y)
}
