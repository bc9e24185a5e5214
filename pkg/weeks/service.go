package weeks

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/memento/memento/internal/clock"
	"github.com/memento/memento/pkg/grid"
	"github.com/memento/memento/pkg/lifespan"
)

// Summary is everything needed to describe and draw one weeks-of-life
// grid: the dates used, the week counts, the chosen grid dimensions,
// and the canvas size for the configured styling.
type Summary struct {
	Birth time.Time
	Death time.Time
	Today time.Time

	Counts lifespan.WeekCounts
	Grid   grid.Dimensions

	CanvasWidth  int
	CanvasHeight int
}

type Service interface {
	Summarize(birth, death time.Time) Summary
	Plan(summary Summary) []grid.Cell
	VisualConfig() grid.VisualConfig
}

type ServiceImpl struct {
	cfg   grid.VisualConfig
	clock clock.Clock
}

func NewService(cfg grid.VisualConfig, clk clock.Clock) *ServiceImpl {
	return &ServiceImpl{cfg: cfg, clock: clk}
}

// Summarize computes week counts for birth..death against the clock's
// today and picks grid dimensions for them. Pure apart from the clock
// read and informational logging.
func (s *ServiceImpl) Summarize(birth, death time.Time) Summary {
	today := lifespan.DateOf(s.clock.Now())

	counts := lifespan.Compute(birth, death, today)
	dims := grid.Choose(counts.Total)
	width, height := grid.CanvasSize(dims, s.cfg)

	log.Infof("Total weeks to live: %d (lived %d, remaining %d)",
		counts.Total, counts.Lived, counts.Remaining)
	log.Infof("Grid: %d per row × %d rows", dims.Columns, dims.Rows)

	return Summary{
		Birth:        lifespan.DateOf(birth),
		Death:        lifespan.DateOf(death),
		Today:        today,
		Counts:       counts,
		Grid:         dims,
		CanvasWidth:  width,
		CanvasHeight: height,
	}
}

// Plan lays out the cells for a summary in row-major fill order.
func (s *ServiceImpl) Plan(summary Summary) []grid.Cell {
	return grid.Plan(summary.Counts.Lived, summary.Counts.Total, summary.Grid.Columns, s.cfg)
}

// VisualConfig returns the immutable styling the service renders with.
func (s *ServiceImpl) VisualConfig() grid.VisualConfig {
	return s.cfg
}
