// Package telemetry writes per-wave CSV records of a running siege.
package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/vovakirdan/slime-siege/internal/games/siege"
)

// WaveRecord is one row of the wave log.
type WaveRecord struct {
	Wave      int     `csv:"wave"`
	Tick      uint64  `csv:"tick"`
	Time      float64 `csv:"time"`
	Duration  float64 `csv:"duration"`
	Strength  float64 `csv:"strength"`
	Remaining float64 `csv:"remaining"`
	Cleared   bool    `csv:"cleared"`
	WaveKills int     `csv:"wave_kills"`
	Kills     int     `csv:"kills"`
	Money     int     `csv:"money"`
	Width     float64 `csv:"world_width"`
	Height    float64 `csv:"world_height"`
}

// WaveWriter turns wave-end events into CSV rows. It implements
// siege.Listener. A nil *WaveWriter ignores every call.
type WaveWriter struct {
	out    io.Writer
	closer io.Closer

	headerWritten bool
	err           error
	rows          int

	strength      float64
	width, height float64
}

// NewWaveWriter writes rows to out. width and height are the world size at the start
// of the run; growth events update it.
func NewWaveWriter(out io.Writer, width, height float64) *WaveWriter {
	return &WaveWriter{out: out, width: width, height: height}
}

// Create opens path for writing, creating parent directories.
// Returns nil if path is empty (telemetry disabled).
func Create(path string, width, height float64) (*WaveWriter, error) {
	if path == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("telemetry: creating directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("telemetry: creating %s: %w", path, err)
	}
	ww := NewWaveWriter(f, width, height)
	ww.closer = f
	return ww, nil
}

// OnEvent implements siege.Listener.
func (ww *WaveWriter) OnEvent(ev siege.Event) {
	if ww == nil {
		return
	}
	switch ev.Kind {
	case siege.EventWaveStart:
		ww.strength = ev.Strength
	case siege.EventWorldGrow:
		ww.width, ww.height = ev.Width, ev.Height
	case siege.EventWaveEnd:
		rec := WaveRecord{
			Wave:      ev.Wave,
			Tick:      ev.Tick,
			Time:      ev.Time,
			Duration:  ev.Amount,
			Strength:  ww.strength,
			Remaining: ev.Strength,
			Cleared:   ev.Cleared,
			WaveKills: ev.WaveKills,
			Kills:     ev.Kills,
			Money:     ev.Money,
			Width:     ww.width,
			Height:    ww.height,
		}
		if err := ww.Write(rec); err != nil && ww.err == nil {
			ww.err = err
		}
	}
}

// Write appends one record, emitting the header before the first.
func (ww *WaveWriter) Write(rec WaveRecord) error {
	if ww == nil {
		return nil
	}
	records := []WaveRecord{rec}
	if !ww.headerWritten {
		if err := gocsv.Marshal(records, ww.out); err != nil {
			return fmt.Errorf("telemetry: writing wave: %w", err)
		}
		ww.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, ww.out); err != nil {
			return fmt.Errorf("telemetry: writing wave: %w", err)
		}
	}
	ww.rows++
	return nil
}

// Rows returns the number of records written.
func (ww *WaveWriter) Rows() int {
	if ww == nil {
		return 0
	}
	return ww.rows
}

// Err returns the first error hit while handling events.
func (ww *WaveWriter) Err() error {
	if ww == nil {
		return nil
	}
	return ww.err
}

// Close closes the underlying file, if Create opened one.
func (ww *WaveWriter) Close() error {
	if ww == nil || ww.closer == nil {
		return nil
	}
	err := ww.closer.Close()
	ww.closer = nil
	return err
}

// ReadWaves parses a wave log written by WaveWriter.
func ReadWaves(in io.Reader) ([]WaveRecord, error) {
	var records []WaveRecord
	if err := gocsv.Unmarshal(in, &records); err != nil {
		return nil, fmt.Errorf("telemetry: reading waves: %w", err)
	}
	return records, nil
}
