package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"txt_reader/lang"
	"txt_reader/library"
	"txt_reader/utils"
)

type AppState int

const (
	StateLibrary AppState = iota
	StateReader
	StateTOC
)

// Options carries the resolved file locations from the command line.
type Options struct {
	LibraryDir   string
	SettingsPath string
	ProgressPath string
}

type AppModel struct {
	state    AppState
	session  *library.Session
	settings *utils.Settings

	libraryUI LibraryModel
	readerUI  ReaderModel
	tocUI     TOCModel

	width  int
	height int
}

func NewAppModel(opts Options) AppModel {
	session := library.NewSession(opts.LibraryDir, opts.ProgressPath)
	settings := utils.LoadSettings(opts.SettingsPath)

	app := AppModel{
		state:    StateLibrary,
		session:  session,
		settings: &settings,
	}
	app.libraryUI = NewLibraryModel(session, &settings, opts.SettingsPath)
	app.readerUI = NewReaderModel(session, &settings)
	return app
}

func (m AppModel) Init() tea.Cmd { return nil }

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
	}

	if _, ok := msg.(languageChangedMsg); ok {
		m.tocUI.ApplyLanguage()
		return m, nil
	}

	switch m.state {
	case StateLibrary:
		return m.handleStateLibrary(msg)
	case StateReader:
		return m.handleStateReader(msg)
	case StateTOC:
		return m.handleStateTOC(msg)
	default:
		return m, nil
	}
}

func (m AppModel) handleStateLibrary(msg tea.Msg) (tea.Model, tea.Cmd) {
	wasFiltering := m.libraryUI.ActiveList().FilterState() == list.Filtering

	var cmd tea.Cmd
	m.libraryUI, cmd = m.libraryUI.Update(msg)

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" && !wasFiltering {
		key, ok := m.libraryUI.SelectedNovel()
		if !ok {
			return m, cmd
		}
		if !m.session.Resume(key) {
			return m, cmd
		}
		m.readerUI.Page = 0
		m.state = StateReader
		return m, tea.Batch(cmd, m.syncWindowSizeCmd())
	}

	return m, cmd
}

func (m AppModel) handleStateReader(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.readerUI, cmd = m.readerUI.Update(msg)

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.state = StateLibrary
			m.session.Deselect()
			m.libraryUI.reloadProgress()
			return m, tea.Batch(cmd, m.syncWindowSizeCmd())

		case "tab", "t": // open TOC
			novel, ok := m.session.Selected()
			if !ok || !novel.HasChapters() {
				return m, cmd
			}
			m.tocUI = NewTOCModel(
				novel.Chapters,
				m.width-4,
				m.height-2,
				m.session.ChapterIndex(),
			)
			m.state = StateTOC
		}
	}

	return m, cmd
}

func (m AppModel) handleStateTOC(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.tocUI, cmd = m.tocUI.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.tocUI.list.SetSize(msg.Width-4, msg.Height-2)
	case TOCSelectMsg:
		m.state = StateReader
		m.readerUI.JumpToChapter(int(msg))
		cmd = tea.Batch(cmd, m.syncWindowSizeCmd())
	case TOCCancelMsg:
		m.state = StateReader
	}

	return m, cmd
}

func (m AppModel) syncWindowSizeCmd() tea.Cmd {
	return func() tea.Msg {
		return tea.WindowSizeMsg{
			Width:  m.width,
			Height: m.height,
		}
	}
}

func (m AppModel) View() string {
	switch m.state {
	case StateLibrary:
		return m.libraryUI.View()
	case StateReader:
		return m.readerUI.View()
	case StateTOC:
		return m.tocUI.View()
	default:
		return lang.Active().Common.UnknownState
	}
}

func RunApp(opts Options) error {
	app := NewAppModel(opts)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
