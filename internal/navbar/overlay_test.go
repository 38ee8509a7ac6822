package navbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allStates = []OverlayState{OverlayClosed, OverlayOpening, OverlayOpen, OverlayClosing}

// overlayAt drives a fresh overlay to state s through valid transitions.
func overlayAt(s OverlayState) *Overlay {
	o := NewOverlay(nil)
	switch s {
	case OverlayOpening:
		o.Open()
	case OverlayOpen:
		o.Open()
		o.AnimationSettled()
	case OverlayClosing:
		o.Open()
		o.AnimationSettled()
		o.Close()
	}
	return o
}

func TestOverlayTransitionTable(t *testing.T) {
	events := map[string]func(*Overlay){
		"open":    (*Overlay).Open,
		"close":   (*Overlay).Close,
		"toggle":  (*Overlay).Toggle,
		"settled": (*Overlay).AnimationSettled,
	}
	want := map[OverlayState]map[string]OverlayState{
		OverlayClosed: {
			"open": OverlayOpening, "close": OverlayClosed,
			"toggle": OverlayOpening, "settled": OverlayClosed,
		},
		OverlayOpening: {
			"open": OverlayOpening, "close": OverlayClosing,
			"toggle": OverlayClosing, "settled": OverlayOpen,
		},
		OverlayOpen: {
			"open": OverlayOpen, "close": OverlayClosing,
			"toggle": OverlayClosing, "settled": OverlayOpen,
		},
		OverlayClosing: {
			"open": OverlayOpening, "close": OverlayClosing,
			"toggle": OverlayOpening, "settled": OverlayClosed,
		},
	}

	for _, from := range allStates {
		for name, ev := range events {
			t.Run(from.String()+"/"+name, func(t *testing.T) {
				o := overlayAt(from)
				assert.Equal(t, from, o.State())
				ev(o)
				assert.Equal(t, want[from][name], o.State())
			})
		}
	}
}

func TestOverlayFullSequence(t *testing.T) {
	var seen []OverlayState
	o := NewOverlay(func(s OverlayState) { seen = append(seen, s) })

	assert.Equal(t, OverlayClosed, o.State())
	o.Open()
	assert.Equal(t, OverlayOpening, o.State())
	o.AnimationSettled()
	assert.Equal(t, OverlayOpen, o.State())
	o.Close()
	assert.Equal(t, OverlayClosing, o.State())
	o.AnimationSettled()
	assert.Equal(t, OverlayClosed, o.State())

	assert.Equal(t, []OverlayState{OverlayOpening, OverlayOpen, OverlayClosing, OverlayClosed}, seen)
}

func TestOverlayToggleRoundTrip(t *testing.T) {
	o := NewOverlay(nil)
	o.Toggle()
	o.AnimationSettled()
	o.Toggle()
	o.AnimationSettled()
	assert.Equal(t, OverlayClosed, o.State())
}

func TestOverlayCloseWhileOpeningSkipsOpen(t *testing.T) {
	var seen []OverlayState
	o := NewOverlay(func(s OverlayState) { seen = append(seen, s) })

	o.Open()
	o.Close()

	assert.Equal(t, OverlayClosing, o.State())
	assert.Equal(t, []OverlayState{OverlayOpening, OverlayClosing}, seen)
	assert.NotContains(t, seen, OverlayOpen)
}

func TestOverlayNoOpEventsDoNotNotify(t *testing.T) {
	calls := 0
	o := NewOverlay(func(OverlayState) { calls++ })

	o.Close()
	o.AnimationSettled()
	assert.Equal(t, 0, calls)

	o.Open()
	o.Open()
	assert.Equal(t, 1, calls)
}

func TestOverlaySeqAdvancesOnTransitionalStates(t *testing.T) {
	o := NewOverlay(nil)
	assert.Equal(t, uint64(0), o.Seq())

	o.Open()
	assert.Equal(t, uint64(1), o.Seq())
	o.Close()
	assert.Equal(t, uint64(2), o.Seq())
	o.AnimationSettled()
	assert.Equal(t, uint64(2), o.Seq(), "settling keeps the sequence")
}

func TestOverlayInteractiveOnlyWhenOpen(t *testing.T) {
	for _, s := range allStates {
		o := overlayAt(s)
		assert.Equal(t, s == OverlayOpen, o.Interactive(), s.String())
		assert.Equal(t, s != OverlayClosed, o.Visible(), s.String())
		assert.Equal(t, s == OverlayOpening || s == OverlayClosing, s.Transitional(), s.String())
	}
}

func TestOverlayStateString(t *testing.T) {
	assert.Equal(t, "closed", OverlayClosed.String())
	assert.Equal(t, "opening", OverlayOpening.String())
	assert.Equal(t, "open", OverlayOpen.String())
	assert.Equal(t, "closing", OverlayClosing.String())
	assert.Equal(t, "unknown", OverlayState(42).String())
}
