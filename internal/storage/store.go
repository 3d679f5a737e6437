// Package storage persists simulation runs: one directory per run holding
// metadata.json and a frames.csv of atom positions over time.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Dt        float64            `json:"dt"`
	Duration  float64            `json:"duration"`
	Atoms     int                `json:"atoms"`
	Bonds     int                `json:"bonds"`
	Bonding   string             `json:"bonding"`
	Steps     int                `json:"steps"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Frame is one stored snapshot: a time plus flattened x,y pairs in atom
// order.
type Frame struct {
	Time      float64
	Positions []float64
}

// Save writes a run directory and returns its ID.
func (s *Store) Save(meta RunMetadata, times []float64, frames []Frame) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "frames.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"t"}
	for i := 0; i < meta.Atoms; i++ {
		header = append(header, fmt.Sprintf("x%d", i), fmt.Sprintf("y%d", i))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, f := range frames {
		row := make([]string, 0, len(f.Positions)+1)
		row = append(row, strconv.FormatFloat(f.Time, 'f', 6, 64))
		for _, v := range f.Positions {
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// List returns metadata for all stored runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.loadMetadata(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})

	return runs, nil
}

// Load returns a run's metadata and frames.
func (s *Store) Load(runID string) (RunMetadata, []Frame, error) {
	meta, err := s.loadMetadata(runID)
	if err != nil {
		return RunMetadata{}, nil, err
	}

	f, err := os.Open(filepath.Join(s.baseDir, runID, "frames.csv"))
	if err != nil {
		return RunMetadata{}, nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return RunMetadata{}, nil, err
	}

	frames := make([]Frame, 0, len(records))
	for i, rec := range records {
		if i == 0 {
			continue // header
		}
		frame := Frame{Positions: make([]float64, 0, len(rec)-1)}
		for j, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return RunMetadata{}, nil, fmt.Errorf("frames.csv row %d: %w", i, err)
			}
			if j == 0 {
				frame.Time = v
			} else {
				frame.Positions = append(frame.Positions, v)
			}
		}
		frames = append(frames, frame)
	}

	return meta, frames, nil
}

// ExportJSON writes a run as a single JSON document.
func (s *Store) ExportJSON(runID string, w io.Writer) error {
	meta, frames, err := s.Load(runID)
	if err != nil {
		return err
	}

	type frameJSON struct {
		Time      float64   `json:"t"`
		Positions []float64 `json:"positions"`
	}
	doc := struct {
		Metadata RunMetadata `json:"metadata"`
		Frames   []frameJSON `json:"frames"`
	}{Metadata: meta}

	for _, f := range frames {
		doc.Frames = append(doc.Frames, frameJSON{Time: f.Time, Positions: f.Positions})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func (s *Store) loadMetadata(runID string) (RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return RunMetadata{}, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return RunMetadata{}, err
	}
	return meta, nil
}
