package grid

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned when a VisualConfig is constructed with
// values that would produce a corrupt layout.
var ErrInvalidConfig = errors.New("invalid visual config")

// VisualConfig holds the styling and layout parameters for the weeks
// grid. Construct it with NewVisualConfig; a validated config is never
// mutated afterwards.
type VisualConfig struct {
	Side   int // square size (pixels)
	Space  int // gap between squares (pixels)
	Margin int // outside margin (pixels)

	LivedColor     string
	RemainingColor string
	OutlineColor   string
}

// NewVisualConfig validates and returns a VisualConfig. All numeric
// fields must be positive and all colors non-empty.
func NewVisualConfig(side, space, margin int, lived, remaining, outline string) (VisualConfig, error) {
	cfg := VisualConfig{
		Side:           side,
		Space:          space,
		Margin:         margin,
		LivedColor:     lived,
		RemainingColor: remaining,
		OutlineColor:   outline,
	}
	if err := cfg.validate(); err != nil {
		return VisualConfig{}, err
	}
	return cfg, nil
}

func (c VisualConfig) validate() error {
	if c.Side <= 0 {
		return fmt.Errorf("%w: cell side must be positive, got %d", ErrInvalidConfig, c.Side)
	}
	if c.Space <= 0 {
		return fmt.Errorf("%w: cell spacing must be positive, got %d", ErrInvalidConfig, c.Space)
	}
	if c.Margin <= 0 {
		return fmt.Errorf("%w: margin must be positive, got %d", ErrInvalidConfig, c.Margin)
	}
	for name, color := range map[string]string{
		"lived":     c.LivedColor,
		"remaining": c.RemainingColor,
		"outline":   c.OutlineColor,
	} {
		if color == "" {
			return fmt.Errorf("%w: %s color must not be empty", ErrInvalidConfig, name)
		}
	}
	return nil
}

// Dimensions is a column/row pair chosen for a cell count. Both values
// are at least 1 and Columns*Rows covers the requested count.
type Dimensions struct {
	Columns int
	Rows    int
}

// Choose picks grid dimensions for totalCells, slightly wider than a
// perfect square for readability on horizontal displays. The width bias
// (ideal + ideal/6, about +16%) is deliberate; downstream layouts depend
// on its exact output.
func Choose(totalCells int) Dimensions {
	if totalCells <= 0 {
		return Dimensions{Columns: 1, Rows: 1}
	}

	ideal := int(math.Sqrt(float64(totalCells)))
	if ideal < 1 {
		ideal = 1
	}
	columns := ideal + ideal/6
	rows := ceilDiv(totalCells, columns)

	// The bias never shrinks columns below ideal, but keep the covering
	// guarantee explicit.
	if columns*rows < totalCells {
		rows = ceilDiv(totalCells, columns)
	}

	return Dimensions{Columns: columns, Rows: rows}
}

// CanvasSize returns the pixel width and height needed to draw a grid
// of the given dimensions.
func CanvasSize(dims Dimensions, cfg VisualConfig) (width, height int) {
	width = 2*cfg.Margin + dims.Columns*cfg.Side + (dims.Columns-1)*cfg.Space
	height = 2*cfg.Margin + dims.Rows*cfg.Side + (dims.Rows-1)*cfg.Space
	return width, height
}

// CellPosition returns the top-left pixel of the cell at (col, row).
// The origin is the top-left corner of the canvas.
func CellPosition(col, row int, cfg VisualConfig) (x, y int) {
	x = cfg.Margin + col*(cfg.Side+cfg.Space)
	y = cfg.Margin + row*(cfg.Side+cfg.Space)
	return x, y
}

// ColorRole says which configured color a cell takes.
type ColorRole string

const (
	RoleLived     ColorRole = "lived"
	RoleRemaining ColorRole = "remaining"
)

// Cell is one positioned square of the plan.
type Cell struct {
	X    int
	Y    int
	Role ColorRole
}

// Plan lays out exactly total cells in row-major order: left to right,
// top to bottom. The first lived cells take RoleLived, the rest
// RoleRemaining. The plan is never padded out to columns*rows.
func Plan(lived, total, columns int, cfg VisualConfig) []Cell {
	if columns < 1 {
		columns = 1
	}
	cells := make([]Cell, 0, max(total, 0))
	for idx := 0; idx < total; idx++ {
		row := idx / columns
		col := idx % columns
		x, y := CellPosition(col, row, cfg)
		role := RoleRemaining
		if idx < lived {
			role = RoleLived
		}
		cells = append(cells, Cell{X: x, Y: y, Role: role})
	}
	return cells
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
