package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cronus-cash/internal/audio"
	"github.com/vovakirdan/cronus-cash/internal/core"
	"github.com/vovakirdan/cronus-cash/internal/registry"
)

// statusDuration is how long a status message replaces the help footer.
const statusDuration = 2 * time.Second

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// CuePlayer plays a sound cue. *audio.SoundManager satisfies it.
type CuePlayer interface {
	Play(audio.Cue)
}

// Options configures the terminal frontend. The zero value is usable.
type Options struct {
	Logger        *log.Logger
	Sound         CuePlayer
	ScreenshotDir string
	HoldWindow    time.Duration
	Now           func() time.Time
}

// quietEvents are logged at debug level; everything else at info.
var quietEvents = map[string]bool{
	"jumped":       true,
	"wall_jumped":  true,
	"landed":       true,
	"coin_spawned": true,
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	keyMapper  *KeyMapper
	help       help.Model
	held       *HoldTracker
	opts       Options
	logger     *log.Logger

	width  int
	height int

	status      string
	statusUntil time.Time
	quitting    bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg.ScreenW and cfg.ScreenH describe the whole terminal.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.HoldWindow == 0 {
		opts.HoldWindow = DefaultHoldWindow
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	m := Model{
		game:       game,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       keys,
		keyMapper:  NewKeyMapper(keys),
		help:       help.New(),
		held:       NewHoldTracker(opts.HoldWindow),
		opts:       opts,
		logger:     logger,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	m.config.ScreenH = m.gameRows()
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)
	return m
}

// gameRows is the terminal height minus the help footer.
func (m Model) gameRows() int {
	return max(m.height-lipgloss.Height(m.help.View(m.keys)), 0)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed,
		"screen", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH))

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		m.copyFrame()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
		m.held.Press(action, m.opts.Now())
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.layout()
	m.logger.Debug("resize", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// layout sizes the game area to the terminal minus the footer.
func (m *Model) layout() {
	m.help.Width = m.width
	m.config.ScreenW = m.width
	m.config.ScreenH = m.gameRows()
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)

	// Games that cannot follow a resize are restarted at the new size.
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	now := m.opts.Now()
	m.held.Apply(&m.inputFrame, now)

	result := m.game.Step(m.inputFrame)
	wasOver := m.gameState.GameOver
	m.gameState = result.State
	m.handleEvents(result.Events)

	if m.gameState.GameOver && !wasOver {
		m.held.Release()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	if !m.statusUntil.IsZero() && now.After(m.statusUntil) {
		m.status = ""
		m.statusUntil = time.Time{}
	}

	return m, tickCmd(m.config.TickRate)
}

// handleEvents logs events and plays their sounds.
func (m *Model) handleEvents(events []core.Event) {
	for _, ev := range events {
		if quietEvents[ev.Kind()] {
			m.logger.Debug(ev.Kind(), ev.Fields()...)
		} else {
			m.logger.Info(ev.Kind(), ev.Fields()...)
		}

		if m.opts.Sound == nil {
			continue
		}
		if cue, ok := audio.CueForEvent(ev); ok {
			m.opts.Sound.Play(cue)
		}
	}
}

// setStatus shows msg in the footer for a short while.
func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusUntil = m.opts.Now().Add(statusDuration)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot skipped", "err", err)
			m.setStatus("screenshot failed")
			return
		}
		dir = filepath.Join(home, ".cronus", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		m.setStatus("screenshot failed")
		return
	}

	timestamp := m.opts.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		m.setStatus("screenshot failed")
		return
	}

	m.logger.Info("screenshot saved", "path", path)
	m.setStatus("saved " + path)
}

// copyFrame puts the current frame on the system clipboard as plain text.
func (m *Model) copyFrame() {
	m.game.Render(m.screen)
	if err := writeClipboard(m.screen.String()); err != nil {
		m.logger.Warn("clipboard copy failed", "err", err)
		m.setStatus("clipboard unavailable")
		return
	}
	m.setStatus("frame copied")
}

// footer is the status message, or the key help when there is none.
func (m Model) footer() string {
	if m.status != "" {
		return statusStyle.Render(m.status)
	}
	return m.help.View(m.keys)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.footer()
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
