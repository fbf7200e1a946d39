package library

import (
	"os"
	"path/filepath"
	"sort"

	"txt_reader/utils"
)

// Catalog is the in-memory library, keyed by source filename.
type Catalog map[string]Novel

// Scan builds the catalog from a novel directory. The directory is
// created if absent (yielding an empty catalog). Only .txt files at the
// top level are considered; files that cannot be decoded are returned in
// skipped and the scan continues.
func Scan(dir string, progress utils.ProgressMap) (catalog Catalog, skipped []string, err error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}

	catalog = make(Catalog)
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		if e.IsDir() || !utils.IsValidTxt(path) {
			continue
		}

		content, readErr := utils.ReadTextFile(path)
		if readErr != nil {
			skipped = append(skipped, e.Name())
			continue
		}

		novel := Parse(content)
		novel.Filename = e.Name()
		novel.Path = path
		if info, statErr := e.Info(); statErr == nil {
			novel.Modified = info.ModTime()
		}

		if p, ok := utils.GetProgress(progress, novel.Title); ok {
			if t := p.LastRead(); !t.IsZero() {
				novel.Modified = t
			}
			if p.Chapter >= 0 && p.Chapter < len(novel.Chapters) {
				novel.Current = novel.Chapters[p.Chapter].Title
			}
		}

		catalog[e.Name()] = novel
	}

	return catalog, skipped, nil
}

// SortedByLastRead returns catalog values ordered most recently read (or
// modified) first, for the library list.
func (c Catalog) SortedByLastRead() []Novel {
	novels := make([]Novel, 0, len(c))
	for _, n := range c {
		novels = append(novels, n)
	}
	sort.SliceStable(novels, func(i, j int) bool {
		if novels[i].Modified.Equal(novels[j].Modified) {
			return novels[i].Filename < novels[j].Filename
		}
		return novels[i].Modified.After(novels[j].Modified)
	})
	return novels
}
