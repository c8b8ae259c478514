// Command pathviz is an interactive visualizer for step-driven Dijkstra on a
// grid with walls.
//
// Controls:
//
//	S            place the start under the cursor
//	E            place the end under the cursor
//	left mouse   paint walls
//	right mouse  erase walls
//	Ctrl+R       run the search
//	Ctrl+C       cancel and clear all walls
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/pathviz/builder"
	"github.com/katalvlaran/pathviz/gridgraph"
	"github.com/katalvlaran/pathviz/metrics"
	"github.com/katalvlaran/pathviz/session"
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "pathviz:", err)
		os.Exit(1)
	}
}

func run() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevelFlag)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := []session.Option{session.WithLogger(logger)}
	switch {
	case *boardFlag != "":
		g, err := loadBoard(*boardFlag)
		if err != nil {
			return err
		}
		opts = append(opts, session.WithGrid(g))
	case *generateFlag != "":
		g, err := generateBoard(*generateFlag)
		if err != nil {
			return err
		}
		logger.Info("board generated", slog.String("kind", *generateFlag), slog.Int64("seed", *seedFlag))
		opts = append(opts, session.WithGrid(g))
	}

	if *metricsAddrFlag != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())
		col, err := metrics.New(reg)
		if err != nil {
			return err
		}
		opts = append(opts, session.WithEngineOptions(col.EngineOptions()...))

		stop := serveMetrics(*metricsAddrFlag, reg, logger)
		defer stop()
	}

	s, err := session.New(config(), opts...)
	if err != nil {
		return err
	}
	g, err := newGame(s)
	if err != nil {
		return err
	}

	w, h := s.Config().ScreenSize()
	ebiten.SetWindowSize(w, h+hudHeight)
	ebiten.SetWindowTitle("pathviz: step-driven Dijkstra")
	logger.Info("window opened", slog.Int("rows", s.Config().Rows), slog.Int("cols", s.Config().Cols))

	return ebiten.RunGame(g)
}

// loadBoard reads an ASCII board file.
func loadBoard(path string) (*gridgraph.GridGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}
	defer f.Close()

	var rows []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		rows = append(rows, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("board %s: %w", path, err)
	}
	g, err := gridgraph.Parse(rows)
	if err != nil {
		return nil, fmt.Errorf("board %s: %w", path, err)
	}

	return g, nil
}

// generateBoard builds a -rows by -cols board of the given kind.
func generateBoard(kind string) (*gridgraph.GridGraph, error) {
	bopts := []builder.BuilderOption{builder.WithSeed(*seedFlag)}
	switch kind {
	case "maze":
		return builder.BuildBoard(*rowsFlag, *colsFlag, bopts, builder.Maze(), builder.Corners())
	case "random":
		return builder.BuildBoard(*rowsFlag, *colsFlag, bopts, builder.RandomWalls(*densityFlag), builder.RandomEndpoints())
	default:
		return nil, fmt.Errorf("generate: unknown board kind %q", kind)
	}
}

// serveMetrics exposes reg on addr/metrics and returns a shutdown func.
func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logger.Info("metrics server listening", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", slog.Any("error", err))
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
