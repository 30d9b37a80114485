package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Rajchodisetti/theme-engine/internal/pipeline"
)

// RunRecord is one persisted pipeline run, replayable by ID.
type RunRecord struct {
	RunID   string                    `json:"run_id"`
	Date    string                    `json:"date"`
	Product string                    `json:"product"`
	Results []pipeline.DecisionResult `json:"results"`
}

// Store persists run records as JSON files in a directory.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func newRunID(product string) string {
	ts := time.Now().UTC().Format("20060102150405")
	return fmt.Sprintf("%s-%s-%s", strings.ToLower(product), ts, uuid.NewString()[:8])
}

// Save writes a run record with a fresh run ID. The write is atomic
// (temp file + rename) so a crash never leaves a truncated record.
func (s *Store) Save(date, product string, results []pipeline.DecisionResult) (RunRecord, error) {
	record := RunRecord{
		RunID:   newRunID(product),
		Date:    date,
		Product: product,
		Results: results,
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return RunRecord{}, fmt.Errorf("save run: %w", err)
	}
	b, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return RunRecord{}, fmt.Errorf("save run: %w", err)
	}

	path := s.path(record.RunID)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return RunRecord{}, fmt.Errorf("save run: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return RunRecord{}, fmt.Errorf("save run: %w", err)
	}
	return record, nil
}

// Load reads a run record by ID.
func (s *Store) Load(runID string) (RunRecord, error) {
	b, err := os.ReadFile(s.path(runID))
	if err != nil {
		return RunRecord{}, fmt.Errorf("load run %s: %w", runID, err)
	}
	var record RunRecord
	if err := json.Unmarshal(b, &record); err != nil {
		return RunRecord{}, fmt.Errorf("load run %s: %w", runID, err)
	}
	return record, nil
}

// List returns the run IDs present in the store, in filename order.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list runs: %w", err)
	}
	var ids []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasSuffix(name, ".json") {
			ids = append(ids, strings.TrimSuffix(name, ".json"))
		}
	}
	return ids, nil
}

func (s *Store) path(runID string) string {
	return filepath.Join(s.dir, runID+".json")
}
