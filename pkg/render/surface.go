package render

import (
	"github.com/memento/memento/pkg/grid"
)

// Surface is the drawing collaborator the grid core paints on. The core
// never owns the surface; acquisition and teardown belong to the caller
// (an HTTP response writer, a window's frame buffer, ...).
type Surface interface {
	// DrawRect draws a filled rectangle with a 1px outline. Colors are
	// CSS-style strings as carried by VisualConfig.
	DrawRect(x, y, width, height int, fill, outline string)
}

// DrawPlan issues one DrawRect per planned cell, in plan order,
// resolving each cell's color role against the config.
func DrawPlan(s Surface, plan []grid.Cell, cfg grid.VisualConfig) {
	for _, cell := range plan {
		fill := cfg.RemainingColor
		if cell.Role == grid.RoleLived {
			fill = cfg.LivedColor
		}
		s.DrawRect(cell.X, cell.Y, cfg.Side, cfg.Side, fill, cfg.OutlineColor)
	}
}
