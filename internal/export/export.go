// Package export serializes sampled transition traces. A trace is the full
// numeric record of one deck run: every pair, every sampled frame, every
// tracked animation column.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Row is one sampled frame of one pair's transition.
type Row struct {
	Pair   int       `json:"pair"`
	Frame  int       `json:"frame"`
	T      float64   `json:"t"`
	Values []float64 `json:"values"`
}

// Trace is a complete sampled run of a deck.
type Trace struct {
	Deck    string   `json:"deck"`
	FPS     int      `json:"fps"`
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Writer persists a trace to a file.
type Writer interface {
	WriteTrace(tr *Trace, path string) error
}

// ForFormat creates a writer for the requested output format.
func ForFormat(format string) (Writer, error) {
	switch format {
	case "csv", "":
		return &CSVWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	case "svg":
		return &SVGWriter{Width: 800, Height: 300}, nil
	default:
		return nil, fmt.Errorf("unknown trace format: %s", format)
	}
}

// CSVWriter writes one record per sampled frame, columns after the
// pair/frame/t prefix in trace order.
type CSVWriter struct{}

func (w *CSVWriter) WriteTrace(tr *Trace, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	header := append([]string{"pair", "frame", "t"}, tr.Columns...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, row := range tr.Rows {
		record := make([]string, 0, len(header))
		record = append(record,
			strconv.Itoa(row.Pair),
			strconv.Itoa(row.Frame),
			strconv.FormatFloat(row.T, 'f', 6, 64),
		)
		for _, v := range row.Values {
			record = append(record, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// JSONWriter writes the whole trace as one indented JSON document.
type JSONWriter struct{}

func (w *JSONWriter) WriteTrace(tr *Trace, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(tr)
}
