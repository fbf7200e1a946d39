package library

import "time"

// Chapter is one segment of a novel file. Title keeps the heading line
// verbatim (trimmed); Content is every following line up to the next
// heading, newline-joined with the trailing newline kept.
type Chapter struct {
	Title   string
	Number  int
	Content string
}

// Novel is one parsed text file. Filename is the catalog key (titles may
// collide across files); Title is the display key.
type Novel struct {
	Title    string
	Author   string
	Chapters []Chapter
	Raw      string

	Filename string
	Path     string
	Modified time.Time
	Current  string // last-read chapter title, merged from saved progress
}

// HasChapters reports whether chapter-based rendering is possible. A
// file with no recognized heading loads fine but stays unviewable.
func (n Novel) HasChapters() bool {
	return len(n.Chapters) > 0
}
