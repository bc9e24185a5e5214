package main

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memento/memento/pkg/grid"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    color.RGBA
		wantErr bool
	}{
		{"named red", "red", color.RGBA{0xff, 0, 0, 0xff}, false},
		{"named uppercase", "Black", color.RGBA{0, 0, 0, 0xff}, false},
		{"long hex", "#ff8800", color.RGBA{0xff, 0x88, 0x00, 0xff}, false},
		{"short hex", "#f80", color.RGBA{0xff, 0x88, 0x00, 0xff}, false},
		{"unknown name", "chartreuse-ish", color.RGBA{}, true},
		{"bad hex length", "#ff80", color.RGBA{}, true},
		{"bad hex digits", "#zzzzzz", color.RGBA{}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseColor(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewGridGameRejectsUnknownColor(t *testing.T) {
	cfg, err := grid.NewVisualConfig(10, 4, 10, "red", "no-such-color", "black")
	require.NoError(t, err)

	_, err = newGridGame(nil, cfg, 100, 100)
	assert.Error(t, err)
}

func TestGridGameLayoutIsFixed(t *testing.T) {
	cfg, err := grid.NewVisualConfig(10, 4, 10, "red", "green", "black")
	require.NoError(t, err)

	game, err := newGridGame(grid.Plan(1, 3, 3, cfg), cfg, 120, 80)
	require.NoError(t, err)

	w, h := game.Layout(640, 480)
	assert.Equal(t, 120, w)
	assert.Equal(t, 80, h)
}
