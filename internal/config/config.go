package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Server Server `koanf:"server"`
	Life   Life   `koanf:"life"`
	Visual Visual `koanf:"visual"`
}

type Server struct {
	Port int `koanf:"port"`
}

// Life holds the default birth and death dates, in 2006-01-02 format.
// Requests may override them per call.
type Life struct {
	Birth string `koanf:"birth"`
	Death string `koanf:"death"`
}

// Visual mirrors the six fields of the grid's visual configuration.
// Validation happens where the grid config is constructed, not here.
type Visual struct {
	Side           int    `koanf:"side"`
	Space          int    `koanf:"space"`
	Margin         int    `koanf:"margin"`
	LivedColor     string `koanf:"livedcolor"`
	RemainingColor string `koanf:"remainingcolor"`
	OutlineColor   string `koanf:"outlinecolor"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Server: Server{
			Port: 8181,
		},
		Life: Life{
			Birth: "1972-11-15",
			Death: "2072-11-15",
		},
		Visual: Visual{
			Side:           10,
			Space:          4,
			Margin:         10,
			LivedColor:     "red",
			RemainingColor: "green",
			OutlineColor:   "black",
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "MEMENTO_",
		TransformFunc: func(k, v string) (string, any) {
			// MEMENTO_VISUAL_SIDE -> visual.side
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "MEMENTO_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
