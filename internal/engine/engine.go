// Package engine samples every transition of a deck into a numeric trace:
// one row per frame per pair, one column per tracked animation value. The
// sampling itself is pure; the engine adds the scheduling, progress output
// and the performance report around it.
package engine

import (
	"context"
	"fmt"
	"math"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/0xflotus/code-surfer/internal/animation"
	"github.com/0xflotus/code-surfer/internal/camera"
	"github.com/0xflotus/code-surfer/internal/config"
	"github.com/0xflotus/code-surfer/internal/deck"
	"github.com/0xflotus/code-surfer/internal/export"
	"github.com/0xflotus/code-surfer/internal/step"
	"github.com/0xflotus/code-surfer/internal/system"
	"github.com/0xflotus/code-surfer/internal/transition"
)

// TraceColumns names the sampled values of every trace row, in order. The
// two scalar tracks are named by the shared property vocabulary; the per-line
// tracks qualify theirs with the track name.
var TraceColumns = []string{
	string(animation.PropScroll),
	string(animation.PropScale),
	"exit.height",
	"exit.opacity",
	"exit.x",
	"enter.height",
	"enter.opacity",
	"enter.x",
	"brighten.opacity",
	"dim.opacity",
	"crossfade.opacity",
}

type TraceProject struct {
	Config *config.Config
	Deck   *deck.Deck
	Writer export.Writer
}

func NewTraceProject(cfg *config.Config, d *deck.Deck, w export.Writer) *TraceProject {
	return &TraceProject{
		Config: cfg,
		Deck:   d,
		Writer: w,
	}
}

// Run samples every transition in the deck and writes the assembled trace
// through the configured writer.
func (p *TraceProject) Run(ctx context.Context) error {
	startTime := time.Now()

	if err := p.Deck.Validate(); err != nil {
		return err
	}

	pairs := p.Deck.Pairs()
	dims := p.Deck.Dimensions()
	frames := frameCount(p.Config.FPS, p.Config.Transition)

	fmt.Println("--- [PROJECT: TRANSITION TRACE] ---")
	fmt.Printf("[*] Deck: %s | Steps: %d | Transitions: %d\n", p.Deck.Title, len(p.Deck.Steps), len(pairs))
	fmt.Printf("[*] Sampling: %d frames per transition @ %d FPS\n", frames, p.Config.FPS)
	if dims == nil {
		fmt.Println("[!] Deck is not fully measured: zoom and scroll will stay at rest")
	}
	fmt.Println("-----------------------------")

	numWorkers := p.Config.Workers
	if numWorkers < 1 {
		numWorkers = 1
	}
	if numWorkers > len(pairs) {
		numWorkers = len(pairs)
	}

	sampleStart := time.Now()
	perPair := make([][]export.Row, len(pairs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(numWorkers)

	for i, pair := range pairs {
		i, pair := i, pair
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			perPair[i] = samplePair(p.sampleParams(i, frames), pair, dims)
			fmt.Printf("[>] Ready: %d/%d\n", i+1, len(pairs))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	sampleEnd := time.Now()

	trace := &export.Trace{
		Deck:    p.Deck.Title,
		FPS:     p.Config.FPS,
		Columns: TraceColumns,
		Rows:    make([]export.Row, 0, len(pairs)*frames),
	}
	for _, rows := range perPair {
		trace.Rows = append(trace.Rows, rows...)
	}

	if err := p.Writer.WriteTrace(trace, p.Config.OutputPath); err != nil {
		return fmt.Errorf("write trace: %w", err)
	}

	totalTime := time.Since(startTime)
	sampleTime := sampleEnd.Sub(sampleStart)
	writeTime := time.Since(sampleEnd)
	rowsPerSec := float64(len(trace.Rows)) / totalTime.Seconds()

	if p.Config.ShowStats {
		report := fmt.Sprintf(
			"--- [PERFORMANCE REPORT] ---\n"+
				"Build: %s\n"+
				"Total Time: %.2fs\n"+
				"Sampling: %.2fs\n"+
				"Writing: %.2fs\n"+
				"Rows: %d\n"+
				"Rows/sec: %.0f\n"+
				"%s\n"+
				"----------------------------\n",
			p.Config.BuildVersion, totalTime.Seconds(), sampleTime.Seconds(), writeTime.Seconds(), len(trace.Rows), rowsPerSec, system.MemoryStats(),
		)
		fmt.Print(report)

		logEntry := fmt.Sprintf("[%s] Build: %s | Deck: %s | Pairs: %d | Rows: %d | Total: %.2fs | Rows/sec: %.0f\n",
			time.Now().Format("2006-01-02 15:04:05"),
			p.Config.BuildVersion,
			p.Deck.Title,
			len(pairs),
			len(trace.Rows),
			totalTime.Seconds(),
			rowsPerSec,
		)

		f, err := os.OpenFile("benchmark.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err == nil {
			f.WriteString(logEntry)
			f.Close()
		} else {
			fmt.Printf("[!] Could not write benchmark.log: %v\n", err)
		}
	}

	return nil
}

// SampleTransition samples a single pair's transition, for plotting.
func (p *TraceProject) SampleTransition(pairIndex, frames int) ([]export.Row, error) {
	if err := p.Deck.Validate(); err != nil {
		return nil, err
	}
	if frames < 2 {
		frames = 2
	}

	pairs := p.Deck.Pairs()
	if pairIndex < 0 || pairIndex >= len(pairs) {
		return nil, fmt.Errorf("pair %d out of range, deck has %d transitions", pairIndex, len(pairs))
	}

	return samplePair(p.sampleParams(pairIndex, frames), pairs[pairIndex], p.Deck.Dimensions()), nil
}

func (p *TraceProject) sampleParams(pairIndex, frames int) config.SampleParams {
	return config.SampleParams{
		PairIndex:  pairIndex,
		Frames:     frames,
		LineHeight: p.Config.LineHeight,
		DimOpacity: p.Config.DimOpacity,
	}
}

// trackSet bundles every animation sampled per pair, built once per pair and
// evaluated once per frame.
type trackSet struct {
	scroll   animation.Scalar
	scale    animation.Scalar
	exit     animation.Animation
	enter    animation.Animation
	brighten animation.Animation
	dim      animation.Animation
	cross    animation.Animation
}

func buildTracks(params config.SampleParams, pair step.Pair, dims *step.Dimensions) trackSet {
	lineHeight := params.LineHeight
	if dims != nil {
		lineHeight = dims.LineHeight
	}

	return trackSet{
		scroll:   camera.ScrollToFocus(pair, dims),
		scale:    camera.ScaleToFocus(pair, dims),
		exit:     transition.ExitLine(1, 0, lineHeight),
		enter:    transition.EnterLine(0, 1, lineHeight),
		brighten: transition.ChangeFocus(params.DimOpacity, 1),
		dim:      transition.ChangeFocus(1, params.DimOpacity),
		cross:    transition.FadeOutIn(),
	}
}

func samplePair(params config.SampleParams, pair step.Pair, dims *step.Dimensions) []export.Row {
	tracks := buildTracks(params, pair, dims)

	rows := make([]export.Row, params.Frames)
	for frame := range rows {
		t := float64(frame) / float64(params.Frames-1)
		rows[frame] = sampleRow(tracks, params.PairIndex, frame, t)
	}
	return rows
}

// sampleRow flattens one instant of every track into a row, values in
// TraceColumns order.
func sampleRow(tracks trackSet, pairIndex, frame int, t float64) export.Row {
	exit := tracks.exit(t)
	enter := tracks.enter(t)

	return export.Row{
		Pair:  pairIndex,
		Frame: frame,
		T:     t,
		Values: []float64{
			tracks.scroll(t),
			tracks.scale(t),
			exit[animation.PropHeight],
			exit[animation.PropOpacity],
			exit[animation.PropX],
			enter[animation.PropHeight],
			enter[animation.PropOpacity],
			enter[animation.PropX],
			tracks.brighten(t)[animation.PropOpacity],
			tracks.dim(t)[animation.PropOpacity],
			tracks.cross(t)[animation.PropOpacity],
		},
	}
}

// frameCount is the number of samples for one transition. Both endpoints are
// included so t=0 and t=1 always land exactly on a frame.
func frameCount(fps int, seconds float64) int {
	n := int(math.Round(float64(fps)*seconds)) + 1
	if n < 2 {
		n = 2
	}
	return n
}
