// Package recording writes periodic CSV snapshots of a simulation's
// particle positions for offline plotting, alongside a JSON metadata
// sidecar describing the run that produced them.
package recording

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/sphcrowd/internal/particle"
)

// Recorder accumulates particle-position snapshots and flushes them to
// a run directory under baseDir.
type Recorder struct {
	baseDir string
	every   int
	tick    int
	frames  [][]particle.Particle
}

// New constructs a Recorder that keeps one snapshot every `every` calls
// to Sample.
func New(baseDir string, every int) *Recorder {
	if every < 1 {
		every = 1
	}
	return &Recorder{baseDir: baseDir, every: every}
}

// Sample records the current particle population if this tick falls on
// the sampling stride; otherwise it's a no-op.
func (r *Recorder) Sample(particles []particle.Particle) {
	if r.tick%r.every == 0 {
		frame := make([]particle.Particle, len(particles))
		copy(frame, particles)
		r.frames = append(r.frames, frame)
	}
	r.tick++
}

// RunMetadata describes one recorded run.
type RunMetadata struct {
	ID        string    `json:"id"`
	Scenario  string    `json:"scenario"`
	Timestamp time.Time `json:"timestamp"`
	Seed      int64     `json:"seed"`
	Ticks     int       `json:"ticks"`
	Frames    int       `json:"frames"`
}

// Flush writes the accumulated frames to baseDir/<runID>/positions.csv
// plus a metadata.json sidecar, and returns the run id.
func (r *Recorder) Flush(scenario string, seed int64, stamp time.Time) (string, error) {
	runID := fmt.Sprintf("%s_%d", scenario, stamp.Unix())
	runDir := filepath.Join(r.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Scenario:  scenario,
		Timestamp: stamp,
		Seed:      seed,
		Ticks:     r.tick,
		Frames:    len(r.frames),
	}
	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()
	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "positions.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"frame", "particle", "x", "y", "pressure", "density"}); err != nil {
		return "", err
	}
	for fi, frame := range r.frames {
		for pi, p := range frame {
			row := []string{
				strconv.Itoa(fi),
				strconv.Itoa(pi),
				strconv.FormatFloat(p.Position.X, 'f', 6, 64),
				strconv.FormatFloat(p.Position.Y, 'f', 6, 64),
				strconv.FormatFloat(p.Pressure, 'f', 6, 64),
				strconv.FormatFloat(p.Density, 'f', 6, 64),
			}
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}

	return runID, nil
}

// List enumerates previously recorded runs under baseDir.
func List(baseDir string) ([]RunMetadata, error) {
	entries, err := os.ReadDir(baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		metaPath := filepath.Join(baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}
