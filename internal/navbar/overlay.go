package navbar

// OverlayState is the lifecycle phase of the mobile navigation overlay.
type OverlayState int

const (
	OverlayClosed OverlayState = iota
	OverlayOpening
	OverlayOpen
	OverlayClosing
)

func (s OverlayState) String() string {
	switch s {
	case OverlayClosed:
		return "closed"
	case OverlayOpening:
		return "opening"
	case OverlayOpen:
		return "open"
	case OverlayClosing:
		return "closing"
	default:
		return "unknown"
	}
}

// Transitional reports whether s is an animation phase.
func (s OverlayState) Transitional() bool {
	return s == OverlayOpening || s == OverlayClosing
}

// Overlay sequences the open/close phases of the navigation overlay. It never
// measures time: the renderer reports the end of each animation through
// AnimationSettled.
type Overlay struct {
	state    OverlayState
	seq      uint64
	onChange func(OverlayState)
}

// NewOverlay creates a closed overlay. onChange, if non-nil, is called after
// every state change.
func NewOverlay(onChange func(OverlayState)) *Overlay {
	return &Overlay{onChange: onChange}
}

// State returns the current phase.
func (o *Overlay) State() OverlayState { return o.state }

// Seq identifies the current animation. It increases each time the overlay
// enters Opening or Closing, so stale animation frames can be discarded.
func (o *Overlay) Seq() uint64 { return o.seq }

// Interactive reports whether the overlay accepts input.
func (o *Overlay) Interactive() bool { return o.state == OverlayOpen }

// Visible reports whether the overlay is drawn at all.
func (o *Overlay) Visible() bool { return o.state != OverlayClosed }

// Open starts the entry sequence. An in-flight close is pre-empted.
func (o *Overlay) Open() {
	switch o.state {
	case OverlayClosed, OverlayClosing:
		o.set(OverlayOpening)
	}
}

// Close starts the exit sequence. An in-flight open is pre-empted and
// unwound through Closing, never reset straight to Closed.
func (o *Overlay) Close() {
	switch o.state {
	case OverlayOpening, OverlayOpen:
		o.set(OverlayClosing)
	}
}

// Toggle opens a closed or closing overlay and closes an opening or open one.
func (o *Overlay) Toggle() {
	switch o.state {
	case OverlayClosed, OverlayClosing:
		o.Open()
	default:
		o.Close()
	}
}

// AnimationSettled completes the current transition. It is a no-op in the
// steady states.
func (o *Overlay) AnimationSettled() {
	switch o.state {
	case OverlayOpening:
		o.set(OverlayOpen)
	case OverlayClosing:
		o.set(OverlayClosed)
	}
}

func (o *Overlay) set(next OverlayState) {
	o.state = next
	if next.Transitional() {
		o.seq++
	}
	if o.onChange != nil {
		o.onChange(next)
	}
}
