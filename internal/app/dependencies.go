package app

import (
	"fmt"
	"time"

	"github.com/memento/memento/internal/clock"
	"github.com/memento/memento/internal/config"
	"github.com/memento/memento/pkg/grid"
	"github.com/memento/memento/pkg/weeks"
)

const dateLayout = "2006-01-02"

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	WeeksService *weeks.ServiceImpl
	WeeksHandler *weeks.Handler

	Clock clock.Clock
}

// BuildDependencies initializes and wires all application services and
// handlers. Invalid visual configuration or default dates are rejected
// here, before the server starts.
func BuildDependencies(cfg config.Application) (*Dependencies, error) {
	deps := &Dependencies{}

	visual, err := grid.NewVisualConfig(
		cfg.Visual.Side,
		cfg.Visual.Space,
		cfg.Visual.Margin,
		cfg.Visual.LivedColor,
		cfg.Visual.RemainingColor,
		cfg.Visual.OutlineColor,
	)
	if err != nil {
		return nil, fmt.Errorf("visual configuration rejected: %w", err)
	}

	birth, err := time.Parse(dateLayout, cfg.Life.Birth)
	if err != nil {
		return nil, fmt.Errorf("invalid default birth date %q: %w", cfg.Life.Birth, err)
	}
	death, err := time.Parse(dateLayout, cfg.Life.Death)
	if err != nil {
		return nil, fmt.Errorf("invalid default death date %q: %w", cfg.Life.Death, err)
	}

	deps.Clock = clock.SystemClock{}
	deps.WeeksService = weeks.NewService(visual, deps.Clock)
	deps.WeeksHandler = weeks.NewHandler(deps.WeeksService, birth, death)

	return deps, nil
}
