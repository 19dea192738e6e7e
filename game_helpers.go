package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

// game is everything a single run needs. The engine and stats belong to the
// stepper goroutine until run returns.
type game struct {
	config   utils.Config
	engine   *model.Engine
	table    *rules.MemoTable
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	out      io.Writer
	logger   *slog.Logger
}

// loadBoard builds the initial board from the input file, the inline board or the dimensions
func loadBoard(config utils.Config) (*model.Board, error) {
	switch {
	case config.Input != "":
		return model.LoadBoard(config.Input)
	case config.Board != "":
		board, err := model.ParseInlineBoard(config.Board)
		return board, errors.Wrap(err, "[loadBoard] failed to parse inline board")
	default:
		return model.NewBoard(config.Rows, config.Cols), nil
	}
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, out io.Writer, logger *slog.Logger) (*game, error) {
	board, err := loadBoard(config)
	if err != nil {
		return nil, err
	}

	table, err := rules.NewMemoTable(config.CacheSize)
	if err != nil {
		return nil, err
	}

	logger.Info("board loaded",
		"rows", board.GetRows(),
		"cols", board.GetCols(),
		"living", board.CountLivingCells(),
	)

	return &game{
		config:   config,
		engine:   model.NewEngine(board, table),
		table:    table,
		renderer: model.NewTerminalRenderer(out, config.Glyphs, model.NewFramePool()),
		stats:    utils.NewStats(),
		out:      out,
		logger:   logger,
	}, nil
}

// run renders, waits and steps until NumSteps generations have been shown or ctx is done.
// A stepper goroutine owns the engine and hands rendered frames to a printer goroutine.
func (g *game) run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	frames := make(chan *bytes.Buffer)

	eg.Go(func() error {
		defer close(frames)
		return g.step(ctx, frames)
	})

	eg.Go(func() error {
		for frame := range frames {
			if err := g.renderer.Clear(); err != nil {
				return err
			}
			if err := g.renderer.Display(frame); err != nil {
				return err
			}
		}
		return nil
	})

	return eg.Wait()
}

func (g *game) step(ctx context.Context, frames chan<- *bytes.Buffer) error {
	lastFrameTime := time.Now()

	for generation := 0; g.config.NumSteps == 0 || generation < g.config.NumSteps; generation++ {
		frameStart := time.Now()
		board := g.engine.Board()
		g.stats.Update(generation, board.CountLivingCells(), frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		var header string
		if g.config.Status {
			header = g.statusLine(generation, board)
		}

		select {
		case frames <- g.renderer.Frame(header, board):
		case <-ctx.Done():
			return ctx.Err()
		}

		if err := sleep(ctx, g.config.Delay); err != nil {
			return err
		}
		g.engine.Step(1)
		g.stats.TotalGenerations = generation + 1
	}
	return nil
}

// sleep waits for d, returning early with the context's error once ctx is done
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// statusLine shows the current game status
func (g *game) statusLine(generation int, board *model.Board) string {
	var (
		livingCells = board.CountLivingCells()
		density     float64
	)
	if size := board.GetRows() * board.GetCols(); size > 0 {
		density = float64(livingCells) / float64(size) * 100
	}

	return fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | %.1f gen/sec | Avg Pop: %.1f",
		generation, livingCells, density, g.stats.GenerationsPerSecond, g.stats.AveragePopulation)
}

// reportSummary prints the running time and transition cache statistics
func (g *game) reportSummary(interrupted bool) {
	var (
		elapsed = g.stats.Elapsed()
		info    = g.table.Info()
	)

	fmt.Fprintf(g.out, "\nRunning time: %.3f seconds\n%s\n", elapsed.Seconds(), info)

	level := slog.LevelDebug
	if interrupted {
		level = slog.LevelInfo
	}
	g.logger.Log(context.Background(), level, "simulation stopped",
		"interrupted", interrupted,
		"generations", g.stats.TotalGenerations,
		"running_time", elapsed,
		"cache_hits", info.Hits,
		"cache_misses", info.Misses,
	)
}
