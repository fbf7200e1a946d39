package library

import (
	"regexp"
	"strconv"
	"strings"

	"txt_reader/lang"
)

// Numbered chapter heading: 第12章 followed by the chapter title.
var chapterPattern = regexp.MustCompile(`^第(\d+)章\s*(.+)$`)

// Author line convention, looked for among the first lines of the file.
const authorPrefix = "作者："

// How many leading lines are scanned for the author line.
const authorScanLines = 10

// Parse splits raw novel text into title, author and chapters. It is a
// pure function and never fails: zero chapters and an empty author are
// valid outcomes, not errors.
func Parse(raw string) Novel {
	lines := strings.Split(raw, "\n")

	novel := Novel{
		Title: lang.Active().Novel.UnknownTitle,
		Raw:   raw,
	}
	if len(lines) > 0 && raw != "" {
		novel.Title = lines[0]
	}

	limit := authorScanLines
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		if strings.HasPrefix(line, authorPrefix) {
			novel.Author = strings.TrimSpace(strings.TrimPrefix(line, authorPrefix))
			break
		}
	}

	// A trailing newline produces one empty trailing element; dropping it
	// keeps the last chapter's content ending in a single newline.
	body := lines
	if len(body) > 0 && body[len(body)-1] == "" {
		body = body[:len(body)-1]
	}

	var current *Chapter
	for _, line := range body {
		trimmed := strings.TrimSpace(line)
		if m := chapterPattern.FindStringSubmatch(trimmed); m != nil {
			if current != nil {
				novel.Chapters = append(novel.Chapters, *current)
			}
			num, _ := strconv.Atoi(m[1])
			current = &Chapter{
				Title:  trimmed,
				Number: num,
			}
			continue
		}
		// Lines before the first heading are discarded.
		if current != nil {
			current.Content += line + "\n"
		}
	}
	if current != nil {
		novel.Chapters = append(novel.Chapters, *current)
	}

	return novel
}

// IsChapterHeading reports whether a line opens a new chapter after
// trimming.
func IsChapterHeading(line string) bool {
	return chapterPattern.MatchString(strings.TrimSpace(line))
}
