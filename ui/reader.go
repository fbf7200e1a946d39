package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	gloss "github.com/charmbracelet/lipgloss"
	runewidth "github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wrap"

	"txt_reader/lang"
	"txt_reader/library"
	"txt_reader/utils"
)

const (
	readerHPadding = 3 // left 2 + right 1, matching ReaderStyle
	readerVPadding = 1
)

// ReaderModel pages through the chapter the session is currently
// viewing. All chapter transitions go through the session so progress is
// recorded on each one.
type ReaderModel struct {
	Session  *library.Session
	Settings *utils.Settings
	Width    int
	Height   int
	Page     int
	Style    gloss.Style
}

func NewReaderModel(session *library.Session, settings *utils.Settings) ReaderModel {
	return ReaderModel{
		Session:  session,
		Settings: settings,
	}
}

func (m ReaderModel) Init() tea.Cmd { return nil }

func (m ReaderModel) Update(msg tea.Msg) (ReaderModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "right", "l", "j":
			if m.Page < m.totalPages()-1 {
				m.Page++
			} else if m.Session.Next() {
				m.Page = 0
			}

		case "left", "h", "k":
			if m.Page > 0 {
				m.Page--
			} else if m.Session.Prev() {
				m.Page = m.totalPages() - 1
			}

		case "ctrl+d": // jump to next chapter
			if m.Session.Next() {
				m.Page = 0
			}

		case "ctrl+u": // jump to previous chapter
			if m.Session.Prev() {
				m.Page = 0
			}
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Style = ReaderStyle(m.Width)
		m.Page = 0
	}

	return m, nil
}

func (m ReaderModel) View() string {
	novel, ok := m.Session.Selected()
	if !ok || !novel.HasChapters() {
		return ReaderNoticeStyle.Width(m.Width).Render(lang.Active().Reader.NoChapters)
	}

	rows := m.chapterRows()
	pageH := m.pageHeight()
	start := m.clampPage(len(rows), pageH) * pageH
	end := start + pageH
	if end > len(rows) {
		end = len(rows)
	}

	body := strings.Join(rows[start:end], "\n")
	return m.Style.Render(body) + "\n" + m.statusLine(novel)
}

// JumpToChapter is used by the TOC; the session ignores out-of-range
// indices.
func (m *ReaderModel) JumpToChapter(index int) {
	if m.Session.Jump(index) {
		m.Page = 0
	}
}

func (m ReaderModel) statusLine(novel library.Novel) string {
	ch, ok := m.Session.CurrentChapter()
	if !ok {
		return ""
	}
	texts := lang.Active()
	pos := fmt.Sprintf(texts.Reader.ProgressTemplate, m.Session.ChapterIndex()+1, len(novel.Chapters))
	line := fmt.Sprintf("%s - %s (%s)", novel.Title, ch.Title, pos)
	line = runewidth.Truncate(line, max(1, m.Width-6), "…")
	return StatusMutedStyle.Render(line)
}

func (m ReaderModel) usableWidth() int {
	w := m.Width - 2*readerHPadding
	if w < 1 {
		w = 1
	}
	return w
}

// pageHeight is the number of terminal rows available for chapter text,
// leaving room for padding and the status line.
func (m ReaderModel) pageHeight() int {
	h := m.Height - 2*readerVPadding - 1
	if h < 1 {
		h = 1
	}
	return h
}

func (m ReaderModel) totalPages() int {
	rows := len(m.chapterRows())
	pageH := m.pageHeight()
	if rows == 0 {
		return 1
	}
	return (rows + pageH - 1) / pageH
}

func (m ReaderModel) clampPage(rowCount, pageH int) int {
	pages := 1
	if rowCount > 0 {
		pages = (rowCount + pageH - 1) / pageH
	}
	page := m.Page
	if page > pages-1 {
		page = pages - 1
	}
	if page < 0 {
		page = 0
	}
	return page
}

// chapterRows renders the current chapter into physical terminal rows:
// each paragraph hard-wrapped to the usable width, styled, with the
// configured spacing between paragraphs.
func (m ReaderModel) chapterRows() []string {
	ch, ok := m.Session.CurrentChapter()
	if !ok {
		return nil
	}

	logical := []string{ch.Title, ""}
	content := strings.TrimSuffix(ch.Content, "\n")
	if content != "" {
		logical = append(logical, strings.Split(content, "\n")...)
	}

	extra := m.Settings.ExtraLines()
	var rows []string
	for i, line := range logical {
		style := styleForLine(i == 0, line)
		wrapped := strings.Split(wrap.String(line, m.usableWidth()), "\n")
		for _, w := range wrapped {
			rows = append(rows, style.Render(w))
		}
		if i < len(logical)-1 {
			for k := 0; k < extra; k++ {
				rows = append(rows, "")
			}
		}
	}
	return rows
}

func styleForLine(isTitle bool, line string) gloss.Style {
	if isTitle {
		return ChapterTitleStyle
	}
	if isDialogue(line) {
		return DialogueStyle
	}
	return gloss.NewStyle()
}

// isDialogue mirrors the desktop styling rule: a paragraph that is
// entirely a quoted utterance.
func isDialogue(line string) bool {
	t := strings.TrimSpace(line)
	if t == "" {
		return false
	}
	if strings.HasPrefix(t, "「") && strings.HasSuffix(t, "」") {
		return true
	}
	return strings.HasPrefix(t, "“") && strings.HasSuffix(t, "”")
}
