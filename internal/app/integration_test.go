package app

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"

	"github.com/tnguyen21/nexusflow-tui/internal/config"
	"github.com/tnguyen21/nexusflow-tui/internal/navbar"
)

// TestProgramMenuLifecycle runs the page as a real program: open the menu,
// wait for it to become interactive, then quit.
func TestProgramMenuLifecycle(t *testing.T) {
	cfg := config.Default()
	cfg.FrameIntervalMS = 1
	m := New(cfg, nil, nil)

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(60, 30))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})

	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("›"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))

	fm, ok := tm.FinalModel(t).(Model)
	if !ok {
		t.Fatal("final model is not Model")
	}
	if fm.bar.Overlay().State() != navbar.OverlayOpen {
		t.Errorf("overlay state = %s, want open", fm.bar.Overlay().State())
	}
	if fm.bar.Mounted() {
		t.Error("quitting should unmount the bar")
	}
	if fm.bus.Subscribers() != 0 {
		t.Errorf("scroll listener leaked: %d subscribers", fm.bus.Subscribers())
	}
}
