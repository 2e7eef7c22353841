package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/peanut-runner/internal/registry"
)

// SessionModel manages the full flow: menu -> game -> menu.
// It is the top-level model for SSH sessions and the local menu command.
type SessionModel struct {
	settings  Settings
	menu      MenuModel
	gameModel *GameModel
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(settings Settings) SessionModel {
	return SessionModel{
		settings: settings,
		menu:     NewMenuModel(settings.Width, settings.Height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.settings.Width = wsm.Width
		m.settings.Height = wsm.Height
	}

	if m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	game, err := registry.Create(selected.ID)
	if err != nil {
		// Shouldn't happen since menu only shows registered variants
		m.menu = NewMenuModel(m.settings.Width, m.settings.Height)
		return m, nil
	}

	// The menu quits its own program on select; swallow that here
	gameModel := NewGameModel(game, m.settings)
	gameModel.withMenu = true
	m.gameModel = &gameModel
	return m, m.gameModel.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.BackToMenu() {
		m.gameModel = nil
		m.menu = NewMenuModel(m.settings.Width, m.settings.Height)
		return m, m.menu.Init()
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.gameModel != nil {
		return m.gameModel.View()
	}
	return m.menu.View()
}

// InGame reports whether a game is being played.
func (m SessionModel) InGame() bool {
	return m.gameModel != nil
}

// RunSession runs the menu and games in one program until the user quits.
func RunSession(settings Settings) error {
	p := tea.NewProgram(
		NewSessionModel(settings),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
