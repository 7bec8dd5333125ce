package export

import (
	"fmt"
	"os"
	"strings"
)

var strokeColors = []string{"#00ff00", "#00bfff", "#ff4f81", "#ffd700", "#b080ff", "#ff8c00"}

// SVGWriter draws every trace column as a polyline across the whole run,
// one color per column, on a dark background.
type SVGWriter struct {
	Width  int
	Height int
}

func (w *SVGWriter) WriteTrace(tr *Trace, path string) error {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, w.Width, w.Height, w.Width, w.Height))

	for col := range tr.Columns {
		w.writeColumn(&sb, tr, col)
	}

	sb.WriteString("</svg>\n")
	return os.WriteFile(path, []byte(sb.String()), 0644)
}

func (w *SVGWriter) writeColumn(sb *strings.Builder, tr *Trace, col int) {
	if len(tr.Rows) < 2 {
		return
	}

	// Per-column bounds with a 10% margin so flat segments stay visible
	min, max := tr.Rows[0].Values[col], tr.Rows[0].Values[col]
	for _, row := range tr.Rows {
		v := row.Values[col]
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	span := max - min
	if span == 0 {
		span = 1
	}
	min -= span * 0.1
	span *= 1.2

	color := strokeColors[col%len(strokeColors)]
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))

	for i, row := range tr.Rows {
		x := float64(i) / float64(len(tr.Rows)-1) * float64(w.Width)
		y := float64(w.Height) - (row.Values[col]-min)/span*float64(w.Height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString("\"/>\n")
}
