package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/mvail/lifelab/internal/config"
	"github.com/mvail/lifelab/internal/sim"
)

// Store persists completed runs under a base directory, one subdirectory per
// run: metadata.json, populations.csv, and the final rendered board.
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
	ID              string             `json:"id"`
	Timestamp       time.Time          `json:"timestamp"`
	Width           int                `json:"width"`
	Height          int                `json:"height"`
	Generations     int                `json:"generations"`
	Seed            string             `json:"seed"`
	RandomSeed      int64              `json:"random_seed,omitempty"`
	Pattern         string             `json:"pattern,omitempty"`
	FinalPopulation int                `json:"final_population"`
	Metrics         map[string]float64 `json:"metrics"`
}

func (s *Store) Save(cfg *config.Config, result *sim.Result, finalBoard string) (string, error) {
	runID := fmt.Sprintf("%s_%d", cfg.Seed, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	finalPop := 0
	if len(result.Populations) > 0 {
		finalPop = result.Populations[len(result.Populations)-1]
	}

	meta := RunMetadata{
		ID:              runID,
		Timestamp:       time.Now(),
		Width:           cfg.Width,
		Height:          cfg.Height,
		Generations:     result.Generations,
		Seed:            cfg.Seed,
		RandomSeed:      cfg.RandomSeed,
		Pattern:         cfg.Pattern,
		FinalPopulation: finalPop,
		Metrics:         result.Metrics,
	}

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

	csvFile, err := os.Create(filepath.Join(runDir, "populations.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"generation", "population"}); err != nil {
		return "", err
	}
	for i, pop := range result.Populations {
		row := []string{strconv.Itoa(i), strconv.Itoa(pop)}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	if finalBoard != "" {
		if err := os.WriteFile(filepath.Join(runDir, "final.txt"), []byte(finalBoard), 0644); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
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

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
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

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadPopulations(runID string) ([]int, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "populations.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	pops := make([]int, 0, len(records))
	for i := 1; i < len(records); i++ {
		if len(records[i]) < 2 {
			continue
		}
		pop, err := strconv.Atoi(records[i][1])
		if err != nil {
			continue
		}
		pops = append(pops, pop)
	}

	return pops, nil
}

// LoadFinalBoard returns the rendered final generation, if the run saved one.
func (s *Store) LoadFinalBoard(runID string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "final.txt"))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
