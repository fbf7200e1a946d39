package library

import (
	"txt_reader/utils"
)

// Session owns the catalog and the reading position for one run of the
// program. It starts with nothing selected; every transition into a
// chapter records progress for the novel's title.
type Session struct {
	LibraryDir   string
	ProgressPath string
	Catalog      Catalog
	Skipped      []string

	currentKey string
	chapter    int
}

func NewSession(libraryDir, progressPath string) *Session {
	return &Session{
		LibraryDir:   libraryDir,
		ProgressPath: progressPath,
		Catalog:      make(Catalog),
	}
}

// Refresh rebuilds the catalog from disk wholesale. The current
// selection is dropped if its file disappeared; if it survives with
// fewer chapters the viewing index is clamped to the new count.
func (s *Session) Refresh() error {
	progress, _ := utils.LoadProgress(s.ProgressPath)
	catalog, skipped, err := Scan(s.LibraryDir, progress)
	if err != nil {
		return err
	}
	s.Catalog = catalog
	s.Skipped = skipped
	if s.currentKey != "" {
		n, ok := catalog[s.currentKey]
		switch {
		case !ok:
			s.Deselect()
		case !n.HasChapters():
			s.chapter = 0
		case s.chapter >= len(n.Chapters):
			s.chapter = len(n.Chapters) - 1
		}
	}
	return nil
}

// Select opens a novel at its first chapter. A novel with no recognized
// chapters can be selected but stays unviewable.
func (s *Session) Select(key string) bool {
	n, ok := s.Catalog[key]
	if !ok {
		return false
	}
	s.currentKey = key
	s.chapter = 0
	if n.HasChapters() {
		s.recordProgress()
	}
	return true
}

// Resume opens a novel at its saved position, falling back to the first
// chapter when there is no usable record.
func (s *Session) Resume(key string) bool {
	if !s.Select(key) {
		return false
	}
	n := s.Catalog[key]
	progress, _ := utils.LoadProgress(s.ProgressPath)
	if p, ok := utils.GetProgress(progress, n.Title); ok {
		if p.Chapter > 0 && p.Chapter < len(n.Chapters) {
			s.chapter = p.Chapter
			s.recordProgress()
		}
	}
	return true
}

func (s *Session) Deselect() {
	s.currentKey = ""
	s.chapter = 0
}

// Selected returns the current novel, if any.
func (s *Session) Selected() (Novel, bool) {
	if s.currentKey == "" {
		return Novel{}, false
	}
	n, ok := s.Catalog[s.currentKey]
	return n, ok
}

// ChapterIndex returns the zero-based index of the chapter being viewed.
func (s *Session) ChapterIndex() int { return s.chapter }

// CurrentChapter returns the chapter being viewed, if any.
func (s *Session) CurrentChapter() (Chapter, bool) {
	n, ok := s.Selected()
	if !ok || !n.HasChapters() {
		return Chapter{}, false
	}
	return n.Chapters[s.chapter], true
}

// Next moves forward one chapter. At the last chapter it is a no-op.
func (s *Session) Next() bool {
	n, ok := s.Selected()
	if !ok || s.chapter >= len(n.Chapters)-1 {
		return false
	}
	s.chapter++
	s.recordProgress()
	return true
}

// Prev moves back one chapter. At the first chapter it is a no-op.
func (s *Session) Prev() bool {
	_, ok := s.Selected()
	if !ok || s.chapter <= 0 {
		return false
	}
	s.chapter--
	s.recordProgress()
	return true
}

// Jump goes directly to the chosen index; out-of-range requests are
// ignored.
func (s *Session) Jump(index int) bool {
	n, ok := s.Selected()
	if !ok || index < 0 || index >= len(n.Chapters) {
		return false
	}
	s.chapter = index
	s.recordProgress()
	return true
}

// recordProgress is best-effort: a write failure never interrupts
// reading.
func (s *Session) recordProgress() {
	n, ok := s.Selected()
	if !ok {
		return
	}
	_ = utils.UpdateProgress(s.ProgressPath, n.Title, s.chapter)
}
