package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/peanut-runner/internal/assets"
	"github.com/vovakirdan/peanut-runner/internal/config"
	"github.com/vovakirdan/peanut-runner/internal/core"
	"github.com/vovakirdan/peanut-runner/internal/registry"
)

// Settings configures a terminal game session.
type Settings struct {
	Runtime core.RuntimeConfig
	Keys    config.KeysConfig
	Width   int // Terminal columns
	Height  int // Terminal rows, including the help footer
	Logger  *log.Logger
}

// SettingsFromConfig builds terminal settings from the loaded config.
func SettingsFromConfig(cfg config.Config, seed int64, width, height int, logger *log.Logger) Settings {
	return Settings{
		Runtime: core.RuntimeConfig{
			SurfaceW:     cfg.Surface.Width,
			SurfaceH:     cfg.Surface.Height,
			TickRate:     cfg.TickRate,
			Seed:         seed,
			AssetTimeout: cfg.AssetTimeout,
		},
		Keys:   cfg.Keys,
		Width:  width,
		Height: height,
		Logger: logger,
	}
}

// AssetMsg reports that an asset finished loading.
type AssetMsg struct {
	Name   string
	Sprite core.Sprite
	Err    error
}

// loadAssetCmd loads one sprite in the background.
func loadAssetCmd(name string) tea.Cmd {
	return func() tea.Msg {
		s, err := assets.Sprite(name)
		return AssetMsg{Name: name, Sprite: s, Err: err}
	}
}

// variantGame is implemented by games with optional features.
type variantGame interface {
	Variant() core.Variant
}

// GameModel is the Bubble Tea model for one running game.
type GameModel struct {
	game      registry.Game
	screen    *core.Screen
	settings  Settings
	keys      KeyMap
	held      *HeldKeys
	help      help.Model
	logger    *log.Logger
	gameState core.GameState
	withMenu  bool // Back returns to the variant menu
	quitting  bool
	back      bool
}

// NewGameModel creates a model for the given game.
func NewGameModel(game registry.Game, settings Settings) GameModel {
	// Use time-based seed if not specified
	if settings.Runtime.Seed == 0 {
		settings.Runtime.Seed = time.Now().UnixNano()
	}

	logger := settings.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var v core.Variant
	if vg, ok := game.(variantGame); ok {
		v = vg.Variant()
	}

	game.Init(settings.Runtime)

	return GameModel{
		game:      game,
		screen:    core.NewScreen(settings.Width, playfieldHeight(settings.Height)),
		settings:  settings,
		keys:      NewKeyMap(settings.Keys, v),
		held:      NewHeldKeys(settings.Keys.HoldTicks),
		help:      help.New(),
		logger:    logger.With("variant", game.ID()),
		gameState: game.State(),
	}
}

// playfieldHeight leaves one row for the help footer.
func playfieldHeight(rows int) int {
	return max(rows-1, 1)
}

// Init starts loading assets and the tick loop.
func (m GameModel) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.game.Assets())+1)
	for _, name := range m.game.Assets() {
		cmds = append(cmds, loadAssetCmd(name))
	}
	cmds = append(cmds, tickCmd(m.settings.Runtime.TickRate))
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.settings.Width = msg.Width
		m.settings.Height = msg.Height
		m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case AssetMsg:
		if msg.Err != nil {
			m.logger.Warn("asset failed to load", "asset", msg.Name, "error", msg.Err)
			return m, nil
		}
		m.game.AssetLoaded(msg.Name, msg.Sprite)
		m.gameState = m.game.State()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.back = true
		return m, nil
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Replay):
		m.pressReplay()
		return m, nil
	}

	if k, ok := m.keys.GameKey(msg); ok {
		m.held.Press(k)
	}
	return m, nil
}

// pressReplay clicks the center of the replay button when it is shown.
func (m *GameModel) pressReplay() {
	btn := m.game.Frame().Button
	if btn == nil {
		return
	}
	m.click(btn.X+btn.W/2, btn.Y+btn.H/2)
}

// handleMouse forwards left clicks to the game in world coordinates.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y >= m.screen.Height() || msg.X >= m.screen.Width() {
		return m, nil // Help footer
	}

	x, y := m.cellToWorld(msg.X, msg.Y)
	m.click(x, y)
	return m, nil
}

// cellToWorld maps the center of a terminal cell onto the playfield.
func (m GameModel) cellToWorld(col, row int) (x, y float64) {
	rt := m.settings.Runtime
	x = (float64(col) + 0.5) * rt.SurfaceW / float64(m.screen.Width())
	y = (float64(row) + 0.5) * rt.SurfaceH / float64(m.screen.Height())
	return x, y
}

// click sends a click to the game and syncs state on a restart.
func (m *GameModel) click(x, y float64) {
	if !m.game.Click(x, y) {
		return
	}
	m.held.Clear()
	m.gameState = m.game.State()
	m.keys.Back.SetEnabled(false)
	m.logger.Info("run restarted")
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.held.State())
	m.gameState = result.State
	m.held.Tick()

	if m.gameState.GameOver && !wasOver {
		m.logger.Info("run ended", "score", m.gameState.Score)
		m.keys.Back.SetEnabled(m.withMenu)
	}

	return m, tickCmd(m.settings.Runtime.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".peanut", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the latest game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.back
}

// Run plays a single game until the user quits.
func Run(game registry.Game, settings Settings) error {
	model := NewGameModel(game, settings)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
