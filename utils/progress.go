package utils

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// Progress records the last-read position of one novel.
type Progress struct {
	Chapter   int    `json:"chapter"`
	Timestamp string `json:"timestamp"` // RFC 3339
}

// ProgressMap is keyed by novel title (the display key, so renaming a
// file keeps the position).
type ProgressMap map[string]Progress

// LoadProgress reads the progress file. A missing or malformed file is
// treated as empty; the caller never has to handle an error to proceed.
func LoadProgress(path string) (ProgressMap, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return make(ProgressMap), nil
	}
	if err != nil {
		return make(ProgressMap), err
	}

	var m ProgressMap
	if err := json.Unmarshal(data, &m); err != nil {
		return make(ProgressMap), err
	}
	if m == nil {
		m = make(ProgressMap)
	}
	return m, nil
}

// SaveProgress rewrites the whole progress document.
func SaveProgress(path string, m ProgressMap) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// UpdateProgress sets the position for one title and rewrites the file.
// The document is re-read first so entries written by other sessions
// survive the rewrite.
func UpdateProgress(path, title string, chapter int) error {
	if title == "" {
		return nil
	}
	m, _ := LoadProgress(path)
	m[title] = Progress{
		Chapter:   chapter,
		Timestamp: time.Now().Format(time.RFC3339),
	}
	return SaveProgress(path, m)
}

// DeleteProgress removes the entry for the given title, if present.
func DeleteProgress(path, title string) error {
	if title == "" {
		return nil
	}
	m, _ := LoadProgress(path)
	if _, ok := m[title]; !ok {
		return nil
	}
	delete(m, title)
	return SaveProgress(path, m)
}

// GetProgress safely retrieves an entry by title.
func GetProgress(m ProgressMap, title string) (Progress, bool) {
	if title == "" {
		return Progress{}, false
	}
	p, ok := m[title]
	return p, ok
}

// LastRead parses the entry timestamp; the zero time is returned for a
// missing or malformed value.
func (p Progress) LastRead() time.Time {
	t, err := time.Parse(time.RFC3339, p.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}
