package ui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"txt_reader/library"
	"txt_reader/utils"
)

const librarySample = "测试小说\n作者：测试\n第1章 开端\n你好\n第2章 转折\n世界\n"

func newTestLibrary(t *testing.T) (LibraryModel, *library.Session, string) {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "novel")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte(librarySample), 0644))

	session := library.NewSession(dir, filepath.Join(root, "reading_progress.json"))
	settings := utils.DefaultSettings()
	settingsPath := filepath.Join(root, "settings.toml")

	m := NewLibraryModel(session, &settings, settingsPath)
	m.resize(80, 24)
	return m, session, settingsPath
}

func TestNewLibraryModelLoadsCatalog(t *testing.T) {
	m, session, _ := newTestLibrary(t)

	require.Len(t, session.Catalog, 1)
	require.Len(t, m.lists[tabLibrary].Items(), 1)

	key, ok := m.SelectedNovel()
	require.True(t, ok)
	require.Equal(t, "a.txt", key)
}

func TestRefreshPicksUpNewFiles(t *testing.T) {
	m, session, _ := newTestLibrary(t)

	require.NoError(t, os.WriteFile(filepath.Join(session.LibraryDir, "b.txt"), []byte(librarySample), 0644))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})

	require.Len(t, m.lists[tabLibrary].Items(), 2)
}

func TestReloadProgressResortsByLastRead(t *testing.T) {
	m, session, _ := newTestLibrary(t)

	other := "另一本书\n作者：某人\n第1章 起点\n内容\n"
	require.NoError(t, os.WriteFile(filepath.Join(session.LibraryDir, "b.txt"), []byte(other), 0644))
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(session.LibraryDir, "a.txt"), old, old))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})

	items := m.lists[tabLibrary].Items()
	require.Len(t, items, 2)
	require.Equal(t, "b.txt", items[0].(novelItem).novel.Filename)

	// Reading the older novel moves it to the top without a refresh.
	require.NoError(t, utils.UpdateProgress(session.ProgressPath, "测试小说", 1))
	m.reloadProgress()

	items = m.lists[tabLibrary].Items()
	require.Equal(t, "a.txt", items[0].(novelItem).novel.Filename)
	require.Equal(t, "第2章 转折", items[0].(novelItem).novel.Current)
}

func TestTabKeySwitchesTabs(t *testing.T) {
	m, _, _ := newTestLibrary(t)
	require.Equal(t, tabLibrary, m.activeTab)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, tabSettings, m.activeTab)

	if _, ok := m.SelectedNovel(); ok {
		t.Error("Expected no novel selection on the settings tab")
	}
}

func TestLineSpacingAdjustPersists(t *testing.T) {
	m, _, settingsPath := newTestLibrary(t)
	m.activeTab = tabSettings
	m.lists[tabSettings].Select(1) // line spacing

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.InDelta(t, 1.6, m.settings.LineSpacing, 1e-9)

	saved := utils.LoadSettings(settingsPath)
	require.InDelta(t, 1.6, saved.LineSpacing, 1e-9)
}

func TestLineSpacingClampedAtMax(t *testing.T) {
	m, _, _ := newTestLibrary(t)
	m.activeTab = tabSettings
	m.lists[tabSettings].Select(1)

	m.settings.LineSpacing = utils.MaxLineSpacing
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.InDelta(t, utils.MaxLineSpacing, m.settings.LineSpacing, 1e-9)
}

func TestFontSizeAdjustPersists(t *testing.T) {
	m, _, settingsPath := newTestLibrary(t)
	m.activeTab = tabSettings
	m.lists[tabSettings].Select(2) // font size

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	require.Equal(t, 11, m.settings.FontSize)

	saved := utils.LoadSettings(settingsPath)
	require.Equal(t, 11, saved.FontSize)
}

func TestFontSizeClampedAtMin(t *testing.T) {
	m, _, _ := newTestLibrary(t)
	m.activeTab = tabSettings
	m.lists[tabSettings].Select(2)

	m.settings.FontSize = utils.MinFontSize
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	require.Equal(t, utils.MinFontSize, m.settings.FontSize)
}
