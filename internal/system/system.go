// Package system wraps the host-facing chores: locating the newest deck on
// disk and summarizing memory pressure for the performance report.
package system

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/mem"
)

// FindLatestDeck returns the most recently modified deck file in dir.
func FindLatestDeck(dir string) (string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var latestFile string
	var latestTime time.Time

	for _, f := range files {
		if f.IsDir() {
			continue
		}
		name := strings.ToLower(f.Name())
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(latestTime) {
			latestTime = info.ModTime()
			latestFile = filepath.Join(dir, f.Name())
		}
	}

	if latestFile == "" {
		return "", fmt.Errorf("no deck files found in %s", dir)
	}

	return latestFile, nil
}

// MemoryStats returns a one-line summary of host memory for the performance
// report. Errors degrade to a placeholder instead of failing the report.
func MemoryStats() string {
	v, err := mem.VirtualMemory()
	if err != nil {
		return fmt.Sprintf("Memory: unavailable (%v)", err)
	}

	return fmt.Sprintf("Memory: %.1f%% used, %.1f GiB available",
		v.UsedPercent, float64(v.Available)/(1<<30))
}
