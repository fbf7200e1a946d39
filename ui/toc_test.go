package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"txt_reader/library"
)

func testChapters() []library.Chapter {
	return []library.Chapter{
		{Title: "第1章 开端", Number: 1},
		{Title: "第2章 转折", Number: 2},
		{Title: "第3章 结局", Number: 3},
	}
}

func TestNewTOCModelSelectsCurrentChapter(t *testing.T) {
	m := NewTOCModel(testChapters(), 40, 20, 2)
	require.Equal(t, 2, m.list.Index())
}

func TestNewTOCModelClampsSelection(t *testing.T) {
	m := NewTOCModel(testChapters(), 40, 20, 99)
	require.Equal(t, 0, m.list.Index())
}

func TestTOCEnterEmitsSelection(t *testing.T) {
	m := NewTOCModel(testChapters(), 40, 20, 1)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(TOCSelectMsg)
	require.True(t, ok)
	require.Equal(t, 1, int(msg))
}

func TestTOCEscCancels(t *testing.T) {
	m := NewTOCModel(testChapters(), 40, 20, 0)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	_, ok := cmd().(TOCCancelMsg)
	require.True(t, ok)
	_ = m
}

func TestTOCNumberJump(t *testing.T) {
	m := NewTOCModel(testChapters(), 40, 20, 0)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	require.Equal(t, 2, m.list.Index())
}
