package navbar

// ScrollMode is the discrete treatment derived from the page scroll offset.
type ScrollMode int

const (
	ModeTop      ScrollMode = iota // offset at or above the threshold
	ModeScrolled                   // offset strictly past the threshold
)

func (m ScrollMode) String() string {
	switch m {
	case ModeTop:
		return "top"
	case ModeScrolled:
		return "scrolled"
	default:
		return "unknown"
	}
}

// ModeFor maps a vertical offset to a ScrollMode.
func ModeFor(offset, threshold int) ScrollMode {
	if offset > threshold {
		return ModeScrolled
	}
	return ModeTop
}

// ScrollSource is a push source of vertical offsets. Subscribe returns the
// function that releases the subscription.
type ScrollSource interface {
	Offset() int
	Subscribe(fn func(offset int)) (unsubscribe func())
}

// Tracker turns a scroll source into a de-duplicated stream of ScrollMode
// changes. It is driven from a single event loop and is not safe for
// concurrent use.
type Tracker struct {
	src         ScrollSource
	threshold   int
	mode        ScrollMode
	onChange    func(ScrollMode)
	unsubscribe func()
	active      bool
}

// NewTracker creates a Tracker over src. A nil src models an environment
// without a scroll signal: the tracker stays at ModeTop.
func NewTracker(src ScrollSource) *Tracker {
	return &Tracker{src: src}
}

// Start subscribes to the scroll source and reports the initial mode to
// onChange before returning. A negative threshold is treated as 0. Starting
// an already started tracker releases the previous subscription first.
func (t *Tracker) Start(threshold int, onChange func(ScrollMode)) {
	t.Stop()

	if threshold < 0 {
		threshold = 0
	}
	t.threshold = threshold
	t.onChange = onChange
	t.active = true

	if t.src == nil {
		t.mode = ModeTop
		t.emit()
		return
	}

	// Subscribe before the first emit so a Stop from onChange has a
	// subscription to release.
	t.mode = ModeFor(t.src.Offset(), threshold)
	t.unsubscribe = t.src.Subscribe(t.observe)
	t.emit()
}

// Stop releases the subscription. It is a no-op when the tracker is not
// started.
func (t *Tracker) Stop() {
	if !t.active {
		return
	}
	t.active = false
	t.onChange = nil
	if t.unsubscribe != nil {
		release := t.unsubscribe
		t.unsubscribe = nil
		release()
	}
}

// Mode returns the mode derived from the latest observed offset.
func (t *Tracker) Mode() ScrollMode { return t.mode }

// Threshold returns the threshold the tracker was started with.
func (t *Tracker) Threshold() int { return t.threshold }

// Active reports whether the tracker is between Start and Stop.
func (t *Tracker) Active() bool { return t.active }

func (t *Tracker) observe(offset int) {
	if !t.active {
		return
	}
	next := ModeFor(offset, t.threshold)
	if next == t.mode {
		return
	}
	t.mode = next
	t.emit()
}

func (t *Tracker) emit() {
	if t.onChange != nil {
		t.onChange(t.mode)
	}
}

// ScrollBus is an in-process ScrollSource. The page publishes the viewport
// offset to it whenever the viewport moves.
type ScrollBus struct {
	offset int
	nextID int
	subs   []subscriber
}

type subscriber struct {
	id int
	fn func(int)
}

// NewScrollBus creates an empty bus at offset 0.
func NewScrollBus() *ScrollBus {
	return &ScrollBus{}
}

// Offset returns the last published offset.
func (b *ScrollBus) Offset() int { return b.offset }

// Subscribe registers fn for every subsequent Publish. The returned function
// removes the registration and may be called more than once.
func (b *ScrollBus) Subscribe(fn func(offset int)) func() {
	id := b.nextID
	b.nextID++
	b.subs = append(b.subs, subscriber{id: id, fn: fn})

	released := false
	return func() {
		if released {
			return
		}
		released = true
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish records offset and notifies subscribers in subscription order.
func (b *ScrollBus) Publish(offset int) {
	b.offset = offset
	subs := make([]subscriber, len(b.subs))
	copy(subs, b.subs)
	for _, s := range subs {
		s.fn(offset)
	}
}

// Subscribers returns the number of live subscriptions.
func (b *ScrollBus) Subscribers() int { return len(b.subs) }
