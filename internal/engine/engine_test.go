package engine

import (
	"context"
	"testing"

	"github.com/0xflotus/code-surfer/internal/config"
	"github.com/0xflotus/code-surfer/internal/deck"
	"github.com/0xflotus/code-surfer/internal/export"
)

// memoryWriter captures the trace instead of writing it out.
type memoryWriter struct {
	trace *export.Trace
}

func (w *memoryWriter) WriteTrace(tr *export.Trace, path string) error {
	w.trace = tr
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		FPS:        10,
		Transition: 1.0,
		Workers:    2,
		LineHeight: 20,
		DimOpacity: 0.3,
	}
}

func TestFrameCount(t *testing.T) {
	tests := []struct {
		fps     int
		seconds float64
		expect  int
	}{
		{30, 1.0, 31},
		{10, 1.0, 11},
		{1, 0.1, 2},
		{60, 0.5, 31},
	}

	for _, tt := range tests {
		if got := frameCount(tt.fps, tt.seconds); got != tt.expect {
			t.Errorf("frameCount(%d, %v): expected %d, got %d", tt.fps, tt.seconds, tt.expect, got)
		}
	}
}

func TestTraceProjectRun(t *testing.T) {
	w := &memoryWriter{}
	p := NewTraceProject(testConfig(), deck.Demo(), w)

	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if w.trace == nil {
		t.Fatal("Run did not write a trace")
	}
	if w.trace.FPS != 10 {
		t.Errorf("Trace should carry the configured FPS, got %d", w.trace.FPS)
	}

	// Demo deck has 4 steps, so 5 transitions; 10 fps over 1s is 11 frames
	wantRows := 5 * 11
	if len(w.trace.Rows) != wantRows {
		t.Fatalf("Expected %d rows, got %d", wantRows, len(w.trace.Rows))
	}
	if len(w.trace.Columns) != len(TraceColumns) {
		t.Fatalf("Expected %d columns, got %d", len(TraceColumns), len(w.trace.Columns))
	}

	// Rows must come out ordered by (pair, frame) regardless of workers
	for i, row := range w.trace.Rows {
		if row.Pair != i/11 || row.Frame != i%11 {
			t.Fatalf("Row %d out of order: pair %d frame %d", i, row.Pair, row.Frame)
		}
		if len(row.Values) != len(TraceColumns) {
			t.Fatalf("Row %d has %d values, expected %d", i, len(row.Values), len(TraceColumns))
		}
	}

	first := w.trace.Rows[0]
	last := w.trace.Rows[10]

	// The entry transition has no previous step, so zoom holds steady
	scale := columnIndex(t, "scale")
	if abs(first.Values[scale]-last.Values[scale]) > 1e-9 {
		t.Errorf("Boundary transition should hold scale: %v vs %v", first.Values[scale], last.Values[scale])
	}

	exitHeight := columnIndex(t, "exit.height")
	enterHeight := columnIndex(t, "enter.height")
	if first.Values[exitHeight] != 20 {
		t.Errorf("Expected exit.height 20 at t=0, got %v", first.Values[exitHeight])
	}
	if last.Values[exitHeight] != 0 {
		t.Errorf("Expected exit.height 0 at t=1, got %v", last.Values[exitHeight])
	}
	if last.Values[enterHeight] != 20 {
		t.Errorf("Expected enter.height 20 at t=1, got %v", last.Values[enterHeight])
	}
}

func TestTraceProjectDeterministic(t *testing.T) {
	cfg := testConfig()
	cfg.Workers = 8

	w1 := &memoryWriter{}
	if err := NewTraceProject(cfg, deck.Demo(), w1).Run(context.Background()); err != nil {
		t.Fatalf("First run failed: %v", err)
	}

	w2 := &memoryWriter{}
	if err := NewTraceProject(cfg, deck.Demo(), w2).Run(context.Background()); err != nil {
		t.Fatalf("Second run failed: %v", err)
	}

	if len(w1.trace.Rows) != len(w2.trace.Rows) {
		t.Fatalf("Row counts differ: %d vs %d", len(w1.trace.Rows), len(w2.trace.Rows))
	}
	for i := range w1.trace.Rows {
		a, b := w1.trace.Rows[i], w2.trace.Rows[i]
		if a.Pair != b.Pair || a.Frame != b.Frame || a.T != b.T {
			t.Fatalf("Row %d keys differ between runs", i)
		}
		for j := range a.Values {
			if a.Values[j] != b.Values[j] {
				t.Fatalf("Row %d value %d differs: %v vs %v", i, j, a.Values[j], b.Values[j])
			}
		}
	}
}

func TestRunCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := &memoryWriter{}
	if err := NewTraceProject(testConfig(), deck.Demo(), w).Run(ctx); err == nil {
		t.Error("Expected an error for a canceled context")
	}
	if w.trace != nil {
		t.Error("No trace should be written after cancellation")
	}
}

func TestSampleTransition(t *testing.T) {
	p := NewTraceProject(testConfig(), deck.Demo(), &memoryWriter{})

	rows, err := p.SampleTransition(1, 5)
	if err != nil {
		t.Fatalf("SampleTransition failed: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("Expected 5 rows, got %d", len(rows))
	}
	if rows[0].T != 0 || rows[4].T != 1 {
		t.Errorf("Endpoints missing: first t=%v, last t=%v", rows[0].T, rows[4].T)
	}

	// Pair 1 scrolls from intro (center 2.5) to builder (center 9)
	scroll := columnIndex(t, "scroll")
	if rows[0].Values[scroll] != 50 {
		t.Errorf("Expected scroll 50 at t=0, got %v", rows[0].Values[scroll])
	}
	if rows[4].Values[scroll] != 180 {
		t.Errorf("Expected scroll 180 at t=1, got %v", rows[4].Values[scroll])
	}

	if _, err := p.SampleTransition(99, 5); err == nil {
		t.Error("Expected an error for an out-of-range pair")
	}
}

func columnIndex(t *testing.T, name string) int {
	t.Helper()
	for i, col := range TraceColumns {
		if col == name {
			return i
		}
	}
	t.Fatalf("Unknown column %s", name)
	return -1
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
