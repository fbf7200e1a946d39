package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	gloss "github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"txt_reader/lang"
	"txt_reader/library"
	"txt_reader/utils"
)

// ---------------- List items ----------------

type novelItem struct {
	novel library.Novel
}

func (i novelItem) Title() string { return i.novel.Title }

func (i novelItem) Description() string {
	author := i.novel.Author
	if author == "" {
		author = lang.Active().Novel.UnknownAuthor
	}
	position := i.novel.Current
	if position == "" && i.novel.HasChapters() {
		position = i.novel.Chapters[len(i.novel.Chapters)-1].Title
	}
	if position == "" {
		return author
	}
	return author + " | " + position
}

func (i novelItem) FilterValue() string { return i.novel.Title + " " + i.novel.Author }

type SettingKind int

const (
	SettingLanguage SettingKind = iota
	SettingLineSpacing
	SettingFontSize
)

type SettingItem struct {
	Kind   SettingKind
	Label  string
	Value  string
	Detail string
}

func (s SettingItem) Title() string       { return s.Label + ": " + s.Value }
func (s SettingItem) Description() string { return s.Detail }
func (s SettingItem) FilterValue() string { return s.Label }

// ---------------- LibraryModel ----------------

const (
	tabLibrary = iota
	tabSettings
)

type LibraryModel struct {
	session      *library.Session
	settings     *utils.Settings
	settingsPath string

	lists     []list.Model
	tabs      []string
	activeTab int
	width     int
	height    int

	status      string
	statusMuted bool
	language    lang.Locale
}

func NewLibraryModel(session *library.Session, settings *utils.Settings, settingsPath string) LibraryModel {
	m := LibraryModel{
		session:      session,
		settings:     settings,
		settingsPath: settingsPath,
		language:     lang.CurrentLocale(),
	}

	novels := list.New(nil, newListDelegate(), 0, 0)
	listSettings(&novels)
	settingsList := list.New(nil, newListDelegate(), 0, 0)
	listSettings(&settingsList)
	settingsList.SetFilteringEnabled(false)

	m.lists = []list.Model{novels, settingsList}
	m.applyLanguage()
	m.refreshLibrary()
	m.rebuildSettingsList(0)
	return m
}

func newListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = SelectedTitleStyle
	d.Styles.SelectedDesc = SelectedDescStyle
	d.Styles.NormalTitle = NormalTitleStyle
	d.Styles.NormalDesc = NormalDescStyle
	return d
}

func listSettings(l *list.Model) {
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.FilterInput.PromptStyle = PromptStyle
	l.FilterInput.TextStyle = PromptTextStyle
	l.FilterInput.Cursor.Style = PromptCursorStyle
}

func (m *LibraryModel) ActiveList() *list.Model {
	return &m.lists[m.activeTab]
}

// SelectedNovel returns the filename key of the highlighted novel, if
// the library tab is active.
func (m *LibraryModel) SelectedNovel() (string, bool) {
	if m.activeTab != tabLibrary {
		return "", false
	}
	item, ok := m.lists[tabLibrary].SelectedItem().(novelItem)
	if !ok {
		return "", false
	}
	return item.novel.Filename, true
}

// refreshLibrary rebuilds the catalog from disk and repopulates the
// novel list wholesale.
func (m *LibraryModel) refreshLibrary() {
	if err := m.session.Refresh(); err != nil {
		m.status = lang.LibraryScanFailed(err)
		m.statusMuted = false
		return
	}

	novels := m.session.Catalog.SortedByLastRead()
	items := make([]list.Item, len(novels))
	for i, n := range novels {
		items[i] = novelItem{novel: n}
	}
	m.lists[tabLibrary].SetItems(items)

	texts := lang.Active()
	switch {
	case len(novels) == 0:
		m.status = texts.Library.Empty + " · " + texts.Library.RefreshHint
		m.statusMuted = true
	case len(m.session.Skipped) > 0:
		m.status = lang.LibraryLoaded(len(novels)) + " · " + lang.LibrarySkipped(len(m.session.Skipped))
		m.statusMuted = false
	default:
		m.status = lang.LibraryLoaded(len(novels))
		m.statusMuted = true
	}
}

// reloadProgress re-merges saved positions into the catalog after
// returning from the reader and rebuilds the list so the just-read
// novel sorts to the top.
func (m *LibraryModel) reloadProgress() {
	progress, _ := utils.LoadProgress(m.session.ProgressPath)
	for key, n := range m.session.Catalog {
		p, ok := utils.GetProgress(progress, n.Title)
		if !ok {
			continue
		}
		if p.Chapter >= 0 && p.Chapter < len(n.Chapters) {
			n.Current = n.Chapters[p.Chapter].Title
		}
		if t := p.LastRead(); !t.IsZero() {
			n.Modified = t
		}
		m.session.Catalog[key] = n
	}

	novels := m.session.Catalog.SortedByLastRead()
	items := make([]list.Item, len(novels))
	for i, n := range novels {
		items[i] = novelItem{novel: n}
	}
	m.lists[tabLibrary].SetItems(items)
}

func (m *LibraryModel) rebuildSettingsList(selected int) {
	texts := lang.Active()
	items := []list.Item{
		SettingItem{
			Kind:   SettingLanguage,
			Label:  texts.Settings.LanguageLabel,
			Value:  lang.LanguageName(m.language),
			Detail: texts.Settings.LanguageDetail,
		},
		SettingItem{
			Kind:   SettingLineSpacing,
			Label:  texts.Settings.LineSpacingLabel,
			Value:  fmt.Sprintf("%.1f", m.settings.LineSpacing),
			Detail: texts.Settings.LineSpacingDetail,
		},
		SettingItem{
			Kind:   SettingFontSize,
			Label:  texts.Settings.FontSizeLabel,
			Value:  fmt.Sprintf("%d", m.settings.FontSize),
			Detail: texts.Settings.FontSizeDetail,
		},
	}
	m.lists[tabSettings].SetItems(items)
	if selected >= 0 && selected < len(items) {
		m.lists[tabSettings].Select(selected)
	}
}

func (m *LibraryModel) applyLanguage() {
	texts := lang.Active()
	m.tabs = []string{texts.Tabs.Library, texts.Tabs.Settings}
}

// ---------------- Setting mutations ----------------

// Every change is persisted immediately; a failed write keeps the new
// in-memory value and surfaces a status line.
func (m *LibraryModel) persistSettings() {
	if err := utils.SaveSettings(m.settingsPath, *m.settings); err != nil {
		m.status = lang.SettingsSaveFailed(err)
		m.statusMuted = false
	}
}

func (m *LibraryModel) changeLineSpacing(delta float64) {
	next := m.settings.LineSpacing + delta
	if next < utils.MinLineSpacing || next > utils.MaxLineSpacing+1e-9 {
		return
	}
	m.settings.LineSpacing = next
	*m.settings = m.settings.Clamped()
	m.persistSettings()
}

func (m *LibraryModel) changeFontSize(delta int) {
	next := m.settings.FontSize + delta
	if next < utils.MinFontSize || next > utils.MaxFontSize {
		return
	}
	m.settings.FontSize = next
	m.persistSettings()
}

func (m *LibraryModel) changeLanguage(delta int) tea.Cmd {
	locales := lang.AvailableLocales()
	if len(locales) == 0 {
		return nil
	}
	idx := 0
	for i, loc := range locales {
		if loc == m.language {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(locales)) % len(locales)
	m.language = locales[idx]
	lang.SetLocale(m.language)

	m.applyLanguage()
	m.rebuildSettingsList(m.lists[tabSettings].Index())
	m.status = ""
	return func() tea.Msg { return languageChangedMsg{} }
}

type languageChangedMsg struct{}

// ---------------- Update / View ----------------

func (m LibraryModel) Init() tea.Cmd { return nil }

func (m LibraryModel) Update(msg tea.Msg) (LibraryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		filtering := m.ActiveList().FilterState() == list.Filtering
		if !filtering {
			switch msg.String() {
			case "tab", "shift+tab":
				m.activeTab = (m.activeTab + 1) % len(m.lists)
				return m, nil
			}

			if m.activeTab == tabLibrary && msg.String() == "r" {
				m.refreshLibrary()
				return m, nil
			}

			if m.activeTab == tabSettings {
				if cmd, handled := m.handleSettingsKey(msg.String()); handled {
					return m, cmd
				}
			}
		}
	}

	var cmd tea.Cmd
	m.lists[m.activeTab], cmd = m.lists[m.activeTab].Update(msg)
	return m, cmd
}

func (m *LibraryModel) handleSettingsKey(key string) (tea.Cmd, bool) {
	item, ok := m.lists[tabSettings].SelectedItem().(SettingItem)
	if !ok {
		return nil, false
	}

	var delta int
	switch key {
	case "left", "h":
		delta = -1
	case "right", "l":
		delta = 1
	default:
		return nil, false
	}

	switch item.Kind {
	case SettingLanguage:
		cmd := m.changeLanguage(delta)
		return cmd, true
	case SettingLineSpacing:
		m.changeLineSpacing(0.1 * float64(delta))
	case SettingFontSize:
		m.changeFontSize(delta)
	}
	m.rebuildSettingsList(m.lists[tabSettings].Index())
	return nil, true
}

func (m *LibraryModel) resize(width, height int) {
	m.width = width
	m.height = height

	listWidth := width
	if listWidth > ListMaxWidth {
		listWidth = ListMaxWidth
	}
	// tabs + underline + status take four rows
	listHeight := height - 4
	if listHeight < 1 {
		listHeight = 1
	}
	for i := range m.lists {
		m.lists[i].SetSize(listWidth, listHeight)
	}
}

func (m LibraryModel) View() string {
	var tabViews []string
	for i, tab := range m.tabs {
		if i == m.activeTab {
			tabViews = append(tabViews, ActiveTabStyle.Render(tab))
		} else {
			tabViews = append(tabViews, InactiveTabStyle.Render(tab))
		}
	}
	tabsRow := TabsRow.Width(m.width).Render(gloss.JoinHorizontal(gloss.Top, tabViews...))
	underline := UnderlineRow.Width(m.width).Render(strings.Repeat("─", max(1, min(m.width, 48))))

	body := m.lists[m.activeTab].View()

	status := ""
	if m.status != "" {
		text := wordwrap.String(m.status, max(1, m.width-8))
		if m.statusMuted {
			status = StatusMutedStyle.Render(text)
		} else {
			status = StatusStyle.Render(text)
		}
	}

	return gloss.JoinVertical(gloss.Left, tabsRow, underline, body, status)
}
