// Package report records a CLI run as a JSON document keyed by a random
// run id.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
)

// Report is the JSON shape written by `pathsig signature --report`.
// Window is zero for full-path runs.
type Report struct {
	RunID     uuid.UUID `json:"run_id"`
	Command   string    `json:"command"`
	Dim       int       `json:"dim"`
	Level     int       `json:"level"`
	Window    int       `json:"window,omitempty"`
	Samples   int       `json:"samples"`
	Signature []float64 `json:"signature"`
	CreatedAt time.Time `json:"created_at"`
}

// New stamps a report with a fresh run id and the current UTC time.
func New(command string, dim, level, window, samples int, sig []float64) *Report {
	return &Report{
		RunID:     uuid.New(),
		Command:   command,
		Dim:       dim,
		Level:     level,
		Window:    window,
		Samples:   samples,
		Signature: sig,
		CreatedAt: time.Now().UTC(),
	}
}

// Encode writes r as indented JSON.
func (r *Report) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteFile encodes r into name, replacing any existing file.
func (r *Report) WriteFile(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := r.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("report: %w", err)
	}
	return f.Close()
}

// Decode reads a report written by Encode.
func Decode(rd io.Reader) (*Report, error) {
	var r Report
	if err := json.NewDecoder(rd).Decode(&r); err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	return &r, nil
}
