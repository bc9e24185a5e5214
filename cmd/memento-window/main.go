package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/memento/memento/internal/clock"
	"github.com/memento/memento/internal/config"
	"github.com/memento/memento/pkg/grid"
	"github.com/memento/memento/pkg/weeks"
)

const dateLayout = "2006-01-02"

func init() {
	_ = godotenv.Load()

	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		logrusLevel, err := log.ParseLevel(level)
		if err != nil {
			log.Fatal(err)
		}
		log.SetLevel(logrusLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func main() {
	configPath := flag.String("config", "./config/application.yaml", "path to configuration file")
	birthFlag := flag.String("birth", "", "birth date (2006-01-02), overrides configuration")
	deathFlag := flag.String("death", "", "death date (2006-01-02), overrides configuration")
	flag.Parse()

	if err := run(*configPath, *birthFlag, *deathFlag); err != nil {
		log.Fatal(err)
	}
}

func run(configPath, birthFlag, deathFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	visual, err := grid.NewVisualConfig(
		cfg.Visual.Side,
		cfg.Visual.Space,
		cfg.Visual.Margin,
		cfg.Visual.LivedColor,
		cfg.Visual.RemainingColor,
		cfg.Visual.OutlineColor,
	)
	if err != nil {
		return fmt.Errorf("visual configuration rejected: %w", err)
	}

	birth, err := resolveDate(birthFlag, cfg.Life.Birth)
	if err != nil {
		return fmt.Errorf("invalid birth date: %w", err)
	}
	death, err := resolveDate(deathFlag, cfg.Life.Death)
	if err != nil {
		return fmt.Errorf("invalid death date: %w", err)
	}

	service := weeks.NewService(visual, clock.SystemClock{})
	summary := service.Summarize(birth, death)

	game, err := newGridGame(service.Plan(summary), visual, summary.CanvasWidth, summary.CanvasHeight)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle("Weeks of Life")
	ebiten.SetWindowSize(summary.CanvasWidth, summary.CanvasHeight)
	return ebiten.RunGame(game)
}

func resolveDate(flagValue, configValue string) (time.Time, error) {
	raw := flagValue
	if raw == "" {
		raw = configValue
	}
	return time.Parse(dateLayout, raw)
}
