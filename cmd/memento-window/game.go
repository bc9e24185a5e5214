package main

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/memento/memento/pkg/grid"
	"github.com/memento/memento/pkg/render"
)

// gridGame is a static ebiten scene that paints the weeks grid once per
// frame. The plan never changes after construction.
type gridGame struct {
	plan   []grid.Cell
	cfg    grid.VisualConfig
	width  int
	height int
	colors map[string]color.RGBA
}

func newGridGame(plan []grid.Cell, cfg grid.VisualConfig, width, height int) (*gridGame, error) {
	// Resolve all configured colors up front so a typo fails at startup
	// instead of mid-frame.
	colors := make(map[string]color.RGBA, 3)
	for _, name := range []string{cfg.LivedColor, cfg.RemainingColor, cfg.OutlineColor} {
		c, err := parseColor(name)
		if err != nil {
			return nil, err
		}
		colors[name] = c
	}
	return &gridGame{plan: plan, cfg: cfg, width: width, height: height, colors: colors}, nil
}

func (g *gridGame) Update() error {
	return nil
}

func (g *gridGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	render.DrawPlan(&screenSurface{screen: screen, colors: g.colors}, g.plan, g.cfg)
}

func (g *gridGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// screenSurface adapts an ebiten image to the render.Surface contract.
type screenSurface struct {
	screen *ebiten.Image
	colors map[string]color.RGBA
}

func (s *screenSurface) DrawRect(x, y, width, height int, fill, outline string) {
	vector.DrawFilledRect(s.screen,
		float32(x), float32(y), float32(width), float32(height),
		s.colors[fill], false)
	vector.StrokeRect(s.screen,
		float32(x), float32(y), float32(width), float32(height),
		1, s.colors[outline], false)
}

// namedColors covers the palette the default configuration uses plus a
// few common alternatives. Anything else must be given in hex.
var namedColors = map[string]color.RGBA{
	"black": {0x00, 0x00, 0x00, 0xff},
	"white": {0xff, 0xff, 0xff, 0xff},
	"red":   {0xff, 0x00, 0x00, 0xff},
	"green": {0x00, 0x80, 0x00, 0xff},
	"blue":  {0x00, 0x00, 0xff, 0xff},
	"gray":  {0x80, 0x80, 0x80, 0xff},
}

// parseColor accepts CSS-style names and #rgb / #rrggbb hex notation.
func parseColor(s string) (color.RGBA, error) {
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown color %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("unknown color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("unknown color %q", s)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
