package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"txt_reader/library"
	"txt_reader/utils"
)

const readerSample = "测试小说\n作者：测试\n第1章 开端\n你好。\n「对话内容」\n第2章 转折\n世界。\n"

func newTestReader(t *testing.T) (ReaderModel, *library.Session) {
	t.Helper()
	root := t.TempDir()

	s := library.NewSession(root+"/novel", root+"/reading_progress.json")
	novel := library.Parse(readerSample)
	novel.Filename = "a.txt"
	s.Catalog = library.Catalog{"a.txt": novel}
	require.True(t, s.Select("a.txt"))

	settings := utils.DefaultSettings()
	m := NewReaderModel(s, &settings)
	m.Width = 40
	m.Height = 12
	m.Style = ReaderStyle(m.Width)
	return m, s
}

func TestReaderViewShowsChapter(t *testing.T) {
	m, _ := newTestReader(t)

	view := m.View()
	require.Contains(t, view, "第1章 开端")
	require.Contains(t, view, "你好。")
	require.NotContains(t, view, "世界。")
}

func TestReaderNextChapterKey(t *testing.T) {
	m, s := newTestReader(t)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	require.Equal(t, 1, s.ChapterIndex())
	require.Contains(t, m.View(), "第2章 转折")

	// clamped at the last chapter
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	require.Equal(t, 1, s.ChapterIndex())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	require.Equal(t, 0, s.ChapterIndex())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	require.Equal(t, 0, s.ChapterIndex())
	_ = m
}

func TestReaderPagingRollsIntoNextChapter(t *testing.T) {
	m, s := newTestReader(t)
	m.Height = 40 // everything fits on one page

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 1, s.ChapterIndex())
	require.Equal(t, 0, m.Page)
}

func TestReaderNoChaptersNotice(t *testing.T) {
	root := t.TempDir()
	s := library.NewSession(root+"/novel", root+"/progress.json")
	novel := library.Parse("只有标题\n没有章节\n")
	novel.Filename = "flat.txt"
	s.Catalog = library.Catalog{"flat.txt": novel}
	require.True(t, s.Select("flat.txt"))

	settings := utils.DefaultSettings()
	m := NewReaderModel(s, &settings)
	m.Width = 40
	m.Height = 10

	view := m.View()
	require.NotEmpty(t, strings.TrimSpace(view))
	require.NotContains(t, view, "没有章节")
}

func TestChapterRowsSpacing(t *testing.T) {
	m, _ := newTestReader(t)

	m.Settings.LineSpacing = 1.0
	tight := len(m.chapterRows())

	m.Settings.LineSpacing = 2.0
	loose := len(m.chapterRows())

	require.Greater(t, loose, tight)
}

func TestIsDialogue(t *testing.T) {
	cases := map[string]bool{
		"「你好」":      true,
		"  「你好」  ":  true,
		"“你好”":      true,
		"他说：「你好」":   false,
		"「开头没有结尾":   false,
		"plain text": false,
		"":           false,
	}
	for line, want := range cases {
		if got := isDialogue(line); got != want {
			t.Errorf("isDialogue(%q) = %v, want %v", line, got, want)
		}
	}
}
