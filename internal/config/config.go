package config

import (
	"fmt"
	"runtime"
)

type Config struct {
	DeckPath     string
	OutputPath   string
	Format       string
	FPS          int
	Transition   float64
	Workers      int
	LineHeight   float64
	DimOpacity   float64
	EaseName     string
	Plot         bool
	PlotPair     int
	PlotWidth    int
	PlotHeight   int
	ShowStats    bool
	BuildVersion string
}

type SampleParams struct {
	PairIndex  int
	Frames     int
	LineHeight float64
	DimOpacity float64
}

// Default returns the configuration the CLI flags start from. Paths stay
// empty: the deck is discovered and the output name generated at startup.
func Default() *Config {
	return &Config{
		Format:     "csv",
		FPS:        30,
		Transition: 1.0,
		Workers:    runtime.NumCPU(),
		LineHeight: 20,
		DimOpacity: 0.3,
		PlotWidth:  72,
		PlotHeight: 10,
	}
}

// Validate rejects values the sampler cannot work with.
func (c *Config) Validate() error {
	if c.FPS < 1 {
		return fmt.Errorf("fps must be at least 1, got %d", c.FPS)
	}
	if c.Transition <= 0 {
		return fmt.Errorf("transition duration must be positive, got %v", c.Transition)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.LineHeight <= 0 {
		return fmt.Errorf("line-height must be positive, got %v", c.LineHeight)
	}
	if c.DimOpacity < 0 || c.DimOpacity > 1 {
		return fmt.Errorf("dim-opacity must be within [0,1], got %v", c.DimOpacity)
	}
	if c.PlotWidth < 2 {
		return fmt.Errorf("plot-width must be at least 2, got %d", c.PlotWidth)
	}
	if c.PlotHeight < 1 {
		return fmt.Errorf("plot-height must be at least 1, got %d", c.PlotHeight)
	}
	return nil
}
