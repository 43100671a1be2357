package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/df-mc/hexworld/scene"
	"github.com/df-mc/hexworld/world"
	"github.com/pelletier/go-toml"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func main() {
	path := flag.String("config", "config.toml", "path to the scene configuration")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	uc, err := readConfig(*path)
	if err != nil {
		log.Error("read config: " + err.Error())
		os.Exit(1)
	}
	conf, err := uc.Config(log)
	if err != nil {
		log.Error("config: " + err.Error())
		os.Exit(1)
	}
	s, err := conf.New()
	if err != nil {
		log.Error("generate scene: " + err.Error())
		os.Exit(1)
	}
	defer func() {
		if err := s.Close(); err != nil {
			log.Error(err.Error())
		}
	}()

	title := cases.Title(language.English)
	for _, sum := range s.Summary() {
		log.Info(fmt.Sprintf("Generated %v tile.", title.String(sum.Biome)),
			"id", sum.ID,
			"x", sum.Offset[0], "z", sum.Offset[1],
			"cells", sum.Cells,
			"water", sum.Report.Water.WaterCells,
			"trees", sum.Objects[world.ObjectTree],
			"wheat", sum.Objects[world.ObjectWheat],
			"sheep", sum.Objects[world.ObjectSheep],
		)
		if sum.Report.MalformedColours > 0 || sum.Report.SkippedPlacements > 0 {
			log.Warn("Tile generated with anomalies.", "id", sum.ID, "malformedColours", sum.Report.MalformedColours, "skippedPlacements", sum.Report.SkippedPlacements)
		}
	}
}

// readConfig reads the configuration from the file at path. If the file does
// not exist, it is created with the default configuration.
func readConfig(path string) (scene.UserConfig, error) {
	c := scene.DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		data, err := toml.Marshal(c)
		if err != nil {
			return c, fmt.Errorf("encode default config: %v", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return c, fmt.Errorf("create default config: %v", err)
		}
		return c, nil
	} else if err != nil {
		return c, fmt.Errorf("read config: %v", err)
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("decode config: %v", err)
	}
	return c, nil
}
