package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cronus-cash/internal/audio"
	"github.com/vovakirdan/cronus-cash/internal/core"
	"github.com/vovakirdan/cronus-cash/internal/games/cronus/sim"
	"github.com/vovakirdan/cronus-cash/internal/registry"
)

// fakeGame records what the model asks of it.
type fakeGame struct {
	resets  []core.RuntimeConfig
	resizes [][2]int
	inputs  []core.InputFrame
	events  []core.Event
	state   core.GameState
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(cfg core.RuntimeConfig) { g.resets = append(g.resets, cfg) }
func (g *fakeGame) State() core.GameState { return g.state }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	ev := g.events
	g.events = nil
	return core.StepResult{State: g.state, Events: ev}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "frame")
}

// resizableGame also follows resizes.
type resizableGame struct{ fakeGame }

func (g *resizableGame) Resize(w, h int) { g.resizes = append(g.resizes, [2]int{w, h}) }

type recordingPlayer struct{ cues []audio.Cue }

func (p *recordingPlayer) Play(c audio.Cue) { p.cues = append(p.cues, c) }

// fakeClock returns a fixed time that tests advance by hand.
type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func testModel(t *testing.T, g registry.Game, opts Options) (Model, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	opts.Now = clock.Now
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1}, opts)
	m.Init()
	return m, clock
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelReservesFooter(t *testing.T) {
	g := &fakeGame{}
	m, _ := testModel(t, g, Options{})

	if len(g.resets) != 1 {
		t.Fatalf("Init should reset once, got %d", len(g.resets))
	}
	if got := g.resets[0]; got.ScreenW != 80 || got.ScreenH != 24 {
		t.Errorf("game sized %dx%d, expected 80x24", got.ScreenW, got.ScreenH)
	}

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 25 {
		t.Errorf("View() has %d lines, expected 25", len(lines))
	}
	if !strings.Contains(lines[len(lines)-1], "quit") {
		t.Errorf("footer %q should show key help", lines[len(lines)-1])
	}
}

func TestModelKeysReachNextTick(t *testing.T) {
	g := &fakeGame{}
	m, _ := testModel(t, g, Options{})

	m = update(t, m, runeKey('w'))
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	if len(g.inputs) != 2 {
		t.Fatalf("got %d steps, expected 2", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionJump) {
		t.Error("first tick should see the jump")
	}
	if g.inputs[1].Has(core.ActionJump) {
		t.Error("jump is an edge and should clear after one tick")
	}
}

func TestModelHoldsMovement(t *testing.T) {
	g := &fakeGame{}
	m, clock := testModel(t, g, Options{HoldWindow: 100 * time.Millisecond})

	m = update(t, m, runeKey('d'))
	m = update(t, m, TickMsg{})
	clock.now = clock.now.Add(50 * time.Millisecond)
	m = update(t, m, TickMsg{})
	clock.now = clock.now.Add(100 * time.Millisecond)
	m = update(t, m, TickMsg{})

	if !g.inputs[0].Has(core.ActionRight) || !g.inputs[0].IsHeld(core.ActionRight) {
		t.Error("first tick should see right pressed and held")
	}
	if g.inputs[1].Has(core.ActionRight) || !g.inputs[1].IsHeld(core.ActionRight) {
		t.Error("second tick should see right held only")
	}
	if g.inputs[2].IsHeld(core.ActionRight) {
		t.Error("hold should expire after the window")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := testModel(t, &fakeGame{}, Options{})

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if next.(Model).View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelResize(t *testing.T) {
	t.Run("resizer keeps session", func(t *testing.T) {
		g := &resizableGame{}
		m, _ := testModel(t, g, Options{})
		m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

		if len(g.resets) != 1 {
			t.Errorf("resizer should not be reset, got %d resets", len(g.resets))
		}
		if len(g.resizes) != 1 || g.resizes[0] != [2]int{120, 39} {
			t.Errorf("resizes = %v, expected [[120 39]]", g.resizes)
		}
		if m.screen.Width() != 120 || m.screen.Height() != 39 {
			t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
		}
	})

	t.Run("plain game restarts", func(t *testing.T) {
		g := &fakeGame{}
		m, _ := testModel(t, g, Options{})
		update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

		if len(g.resets) != 2 {
			t.Fatalf("got %d resets, expected 2", len(g.resets))
		}
		if got := g.resets[1]; got.ScreenW != 100 || got.ScreenH != 29 {
			t.Errorf("reset at %dx%d, expected 100x29", got.ScreenW, got.ScreenH)
		}
	})
}

func TestModelPlaysCues(t *testing.T) {
	g := &fakeGame{}
	player := &recordingPlayer{}
	m, _ := testModel(t, g, Options{Sound: player})

	g.events = []core.Event{
		sim.Landed{Platform: -1},
		sim.CoinCollected{Coins: 1},
		sim.Jumped{JumpCount: 1},
	}
	update(t, m, TickMsg{})

	want := []audio.Cue{audio.CueCoin, audio.CueJump}
	if len(player.cues) != len(want) {
		t.Fatalf("cues = %v, expected %v", player.cues, want)
	}
	for i := range want {
		if player.cues[i] != want[i] {
			t.Errorf("cue %d = %v, expected %v", i, player.cues[i], want[i])
		}
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m, clock := testModel(t, &fakeGame{}, Options{ScreenshotDir: dir})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	path := filepath.Join(dir, "fake_"+clock.now.Format("20060102_150405")+".txt")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("screenshot not written: %v", err)
	}
	if !strings.HasPrefix(string(data), "frame") {
		t.Errorf("screenshot = %q", data)
	}
	if !strings.Contains(m.View(), "saved") {
		t.Error("footer should confirm the screenshot")
	}

	clock.now = clock.now.Add(statusDuration + time.Second)
	m = update(t, m, TickMsg{})
	if strings.Contains(m.View(), "saved") {
		t.Error("status should clear after a while")
	}
}

func TestModelCopyFrame(t *testing.T) {
	orig := writeClipboard
	t.Cleanup(func() { writeClipboard = orig })

	var copied string
	writeClipboard = func(s string) error { copied = s; return nil }

	m, _ := testModel(t, &fakeGame{}, Options{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})

	if !strings.HasPrefix(copied, "frame") {
		t.Errorf("clipboard = %q", copied)
	}
	if !strings.Contains(m.View(), "frame copied") {
		t.Error("footer should confirm the copy")
	}

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if !strings.Contains(m.View(), "clipboard unavailable") {
		t.Error("footer should report the failure")
	}
}

func TestModelToggleHelp(t *testing.T) {
	g := &resizableGame{}
	m, _ := testModel(t, g, Options{})
	m = update(t, m, runeKey('?'))

	if !m.help.ShowAll {
		t.Fatal("? should expand help")
	}
	if m.screen.Height() >= 24 {
		t.Errorf("full help should take more rows, game has %d", m.screen.Height())
	}
	if lines := strings.Split(m.View(), "\n"); len(lines) != 25 {
		t.Errorf("View() has %d lines, expected 25", len(lines))
	}
}
