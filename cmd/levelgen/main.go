// Command levelgen generates levels headlessly and logs their statistics.
package main

import (
	"flag"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/intruderalert/internal/config"
	"chosenoffset.com/intruderalert/internal/world/level"
	"chosenoffset.com/intruderalert/pkg/logger"
)

func main() {
	configPath := flag.String("config", "intruderalert.yaml", "path to the YAML config (defaults are used if missing)")
	seed := flag.Int64("seed", 1, "first seed")
	count := flag.Int("count", 10, "number of seeds to generate")
	num := flag.Int("level", 0, "level number, which scales the population")
	flag.Parse()

	logger.Init()
	log := logger.For("levelgen")

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.WithError(err).Fatal("Failed to load config")
	}

	seeds := make([]int64, *count)
	for i := range seeds {
		seeds[i] = *seed + int64(i)
	}

	failed := 0
	for i, lvl := range level.GenerateMany(level.FromConfig(cfg, *num), seeds) {
		s := lvl.Stats()
		entry := log.WithFields(s.Fields()).WithField("seed", seeds[i])
		if s.Reachable != s.Floor {
			failed++
			entry.Error("Level has unreachable floor")
			continue
		}
		entry.Info("Level generated")
	}

	log.WithFields(logrus.Fields{"levels": len(seeds), "failed": failed}).Info("Done")
	if failed > 0 {
		logger.Log.Exit(1)
	}
}
