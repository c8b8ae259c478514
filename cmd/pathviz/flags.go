package main

import (
	"flag"

	"github.com/katalvlaran/pathviz/session"
)

var defaults = session.DefaultConfig()

// Command-line flags. Board geometry flags are ignored when -board is set.
var (
	rowsFlag = flag.Int("rows", defaults.Rows, "board height in cells")
	colsFlag = flag.Int("cols", defaults.Cols, "board width in cells")
	tileFlag = flag.Int("tile", defaults.TileSize, "cell edge length in pixels")

	// stepIntervalFlag is the wall-clock time between two search steps.
	stepIntervalFlag = flag.Duration("step-interval", defaults.StepInterval, "time between search steps")
	stepsPerTickFlag = flag.Int("steps-per-tick", defaults.StepsPerTick, "max search steps per frame")
	revealDelayFlag  = flag.Duration("reveal-delay", defaults.RevealDelay, "pause between finding the end and drawing the path")

	// boardFlag loads an ASCII board ('.' open, '#' wall, 'S' start, 'E' end).
	boardFlag = flag.String("board", "", "ASCII board file to load at startup")

	// generateFlag builds a starting board: "maze" or "random". Ignored with -board.
	generateFlag = flag.String("generate", "", `generate a starting board: "maze" or "random"`)
	seedFlag     = flag.Int64("seed", 1, "seed for -generate")
	densityFlag  = flag.Float64("wall-density", 0.3, "wall probability per cell for -generate=random")

	metricsAddrFlag = flag.String("metrics-addr", "", "serve Prometheus metrics on this address (empty disables)")
	logLevelFlag    = flag.String("log-level", "info", "log level: debug, info, warn or error")
)

func config() session.Config {
	cfg := defaults
	cfg.Rows = *rowsFlag
	cfg.Cols = *colsFlag
	cfg.TileSize = *tileFlag
	cfg.StepInterval = *stepIntervalFlag
	cfg.StepsPerTick = *stepsPerTickFlag
	cfg.RevealDelay = *revealDelayFlag

	return cfg
}
