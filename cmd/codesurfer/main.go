package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/0xflotus/code-surfer/internal/animation"
	"github.com/0xflotus/code-surfer/internal/config"
	"github.com/0xflotus/code-surfer/internal/deck"
	"github.com/0xflotus/code-surfer/internal/easing"
	"github.com/0xflotus/code-surfer/internal/engine"
	"github.com/0xflotus/code-surfer/internal/export"
	"github.com/0xflotus/code-surfer/internal/system"
	"github.com/0xflotus/code-surfer/internal/viz"
)

const buildVersion = "1.0"

func main() {
	// Create the working directories if they are missing
	dirs := []string{"decks", "output"}
	for _, d := range dirs {
		os.MkdirAll(d, 0755)
	}

	def := config.Default()

	deckPtr := flag.String("deck", "", "Path to a deck YAML (default: the newest file in decks/)")
	outputPtr := flag.String("output", "", "Path to the trace file (if empty, generated under output/)")
	formatPtr := flag.String("format", def.Format, "Trace format: csv, json, svg")
	fpsPtr := flag.Int("fps", def.FPS, "Samples per second of transition time")
	transitionPtr := flag.Float64("transition", def.Transition, "Transition duration in seconds")
	workersPtr := flag.Int("workers", def.Workers, "Parallel workers")
	lineHeightPtr := flag.Float64("line-height", def.LineHeight, "Line height fallback for unmeasured decks")
	dimPtr := flag.Float64("dim-opacity", def.DimOpacity, "Opacity of unfocused lines")
	plotPtr := flag.Bool("plot", false, "Plot one transition to the terminal instead of exporting")
	pairPtr := flag.Int("pair", 0, "Transition index for -plot")
	plotWidthPtr := flag.Int("plot-width", def.PlotWidth, "Plot width in characters")
	plotHeightPtr := flag.Int("plot-height", def.PlotHeight, "Plot height in rows")
	easePtr := flag.String("plot-ease", "", "Plot a single easing curve and exit: "+strings.Join(easing.Names(), ", "))
	presetPtr := flag.String("preset", "", "Sampling preset: draft (12 fps, 0.5s), smooth (60 fps, 1.5s)")
	initPtr := flag.Bool("init", false, "Write a demo deck to decks/ and exit")
	statsPtr := flag.Bool("stats", false, "Print the performance report")

	flag.Parse()

	fps, transitionDur := *fpsPtr, *transitionPtr
	switch *presetPtr {
	case "draft":
		fps, transitionDur = 12, 0.5
	case "smooth":
		fps, transitionDur = 60, 1.5
	}

	if *initPtr {
		path := filepath.Join("decks", "demo.yaml")
		if err := deck.WriteDeck(deck.Demo(), path); err != nil {
			log.Fatalf("[-] Could not write demo deck: %v", err)
		}
		fmt.Printf("[+++] Done! Demo deck saved: %s\n", path)
		return
	}

	cfg := &config.Config{
		Format:       *formatPtr,
		FPS:          fps,
		Transition:   transitionDur,
		Workers:      *workersPtr,
		LineHeight:   *lineHeightPtr,
		DimOpacity:   *dimPtr,
		EaseName:     *easePtr,
		Plot:         *plotPtr,
		PlotPair:     *pairPtr,
		PlotWidth:    *plotWidthPtr,
		PlotHeight:   *plotHeightPtr,
		ShowStats:    *statsPtr,
		BuildVersion: buildVersion,
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("[-] Config error: %v", err)
	}

	if cfg.EaseName != "" {
		curve, err := easing.ForName(cfg.EaseName)
		if err != nil {
			log.Fatalf("[-] %v (available: %s)", err, strings.Join(easing.Names(), ", "))
		}
		values := viz.SampleScalar(animation.Scalar(curve), cfg.PlotWidth)
		fmt.Println(viz.PlotTrack(values, cfg.EaseName, cfg.PlotWidth, cfg.PlotHeight))
		return
	}

	deckPath := *deckPtr
	if deckPath == "" {
		latest, err := system.FindLatestDeck("decks")
		if err != nil {
			log.Fatalf("[-] Error: %v. Put a deck in decks/ or run with -init", err)
		}
		deckPath = latest
		fmt.Printf("[*] Selected deck: %s\n", deckPath)
	}

	d, err := deck.ReadDeck(deckPath)
	if err != nil {
		log.Fatalf("[-] Deck error: %v", err)
	}

	writer, err := export.ForFormat(cfg.Format)
	if err != nil {
		log.Fatalf("[-] Format error: %v", err)
	}

	finalOutput := *outputPtr
	if finalOutput == "" {
		baseName := filepath.Base(deckPath)
		nameOnly := strings.TrimSuffix(baseName, filepath.Ext(baseName))
		cleanName := strings.ReplaceAll(nameOnly, " ", "_")
		timestamp := time.Now().Format("2006-01-02_15-04-05")
		finalOutput = filepath.Join("output", fmt.Sprintf("%s_%s.%s", cleanName, timestamp, cfg.Format))
	}

	cfg.DeckPath = deckPath
	cfg.OutputPath = finalOutput

	project := engine.NewTraceProject(cfg, d, writer)

	if cfg.Plot {
		rows, err := project.SampleTransition(cfg.PlotPair, cfg.PlotWidth)
		if err != nil {
			log.Fatalf("[-] Plot error: %v", err)
		}
		for col, name := range engine.TraceColumns {
			values := make([]float64, len(rows))
			for i, row := range rows {
				values[i] = row.Values[col]
			}
			fmt.Println(viz.PlotTrack(values, name, cfg.PlotWidth, cfg.PlotHeight))
			fmt.Println()
		}
		return
	}

	if err := project.Run(context.Background()); err != nil {
		log.Fatalf("[-] Project error: %v", err)
	}

	fmt.Printf("[+++] Done! Trace: %s\n", cfg.OutputPath)
}
