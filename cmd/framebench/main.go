// Command framebench drives the frame loop against a recording surface as
// fast as it can and prints a report of how long the render step takes.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/plus3/trispin/frameloop"
	"github.com/plus3/trispin/gfx/gfxtest"
)

func main() {
	duration := flag.Duration("duration", 5*time.Second, "The total duration the bench should run for.")
	resizeEvery := flag.Int("resize-every", 0, "Send a resize event every N frames (0 disables).")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := frameloop.DefaultConfig()
	cfg.Logger = logger

	surface := gfxtest.NewRecorder(800, 480)
	loop, err := frameloop.New(surface, cfg)
	if err != nil {
		logger.Error("setup failed", "err", err)
		os.Exit(1)
	}

	report := &Report{
		Duration:       *duration,
		ResizeEvery:    *resizeEvery,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info("running frame bench", "duration", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	if err := run(ctx, loop, surface, report); err != nil {
		logger.Error("frame failed", "err", err)
		os.Exit(1)
	}

	runtime.ReadMemStats(&report.MemStatsEnd)
	report.Systems = loop.Stats().Systems
	report.FinalTime = loop.Time()

	fmt.Println("\n\n--- Frame Bench Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Error("failed to generate report", "err", err)
		os.Exit(1)
	}
	fmt.Println("--- End of Report ---")
}

// benchSizes are the window sizes resize events alternate between.
var benchSizes = [2][2]int{{800, 480}, {1024, 768}}

// nextSize returns the bench size the surface is not currently at.
func nextSize(width, height int) (int, int) {
	if width == benchSizes[0][0] && height == benchSizes[0][1] {
		return benchSizes[1][0], benchSizes[1][1]
	}
	return benchSizes[0][0], benchSizes[0][1]
}

// run feeds the loop idle and redraw events until ctx is done. The recorder
// is reset every frame so memory use reflects the loop alone.
func run(ctx context.Context, loop *frameloop.Loop, surface *gfxtest.Recorder, report *Report) error {
	startTime := time.Now()
	var frames int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}

		if _, err := loop.Handle(frameloop.Event{Kind: frameloop.EventAboutToWait}); err != nil {
			return err
		}

		if report.ResizeEvery > 0 && frames%int64(report.ResizeEvery) == 0 {
			w, h := nextSize(surface.Size())
			if _, err := loop.Handle(frameloop.Resized(w, h)); err != nil {
				return err
			}
		}

		if !loop.TakeRedraw() {
			continue
		}

		stepStart := time.Now()
		if _, err := loop.Handle(frameloop.Event{Kind: frameloop.EventRedrawRequested}); err != nil {
			return err
		}
		report.StepTime.Samples = append(report.StepTime.Samples, time.Since(stepStart))

		surface.Reset()
		frames++
	}

	report.TotalTime = time.Since(startTime)
	report.TotalFrames = frames
	report.StepTime.Finalize()
	return nil
}
