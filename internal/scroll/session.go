package scroll

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dcosic/portfolio/internal/apperr"
)

// Event kinds a trace sample can carry. The zero value is a scroll event.
const (
	EventScroll = "scroll"
	EventNav    = "nav"
	EventMenu   = "menu"
	EventClose  = "close"
)

// Sample is one event in a recorded trace. Scroll samples carry ScrollY. A
// nav sample is a click on the nav item at Nav; menu toggles the mobile menu
// and close dismisses it via the backdrop.
type Sample struct {
	AtMs    int64   `json:"atMs"`
	Event   string  `json:"event,omitempty"`
	ScrollY float64 `json:"scrollY"`
	Nav     int     `json:"nav,omitempty"`
}

// Kind is Event with the scroll default applied.
func (s Sample) Kind() string {
	if s.Event == "" {
		return EventScroll
	}
	return s.Event
}

func (s Sample) At() time.Duration {
	return time.Duration(s.AtMs) * time.Millisecond
}

// Trace is a recorded scroll session against a fixed page layout.
type Trace struct {
	ViewportHeight float64  `json:"viewportHeight"`
	DocumentHeight float64  `json:"documentHeight"`
	Sections       []Rect   `json:"sections"`
	Samples        []Sample `json:"samples"`
}

// DecodeTrace reads a JSON trace and validates it.
func DecodeTrace(r io.Reader) (Trace, error) {
	var tr Trace
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&tr); err != nil {
		return Trace{}, apperr.Wrap(err, apperr.ErrBadRequest, "decode trace")
	}
	return tr, tr.Validate()
}

func (tr Trace) Validate() error {
	vp := Viewport{Height: tr.ViewportHeight, DocumentHeight: tr.DocumentHeight}
	if err := vp.Validate(); err != nil {
		return err
	}
	if err := NewLayout(tr.Sections...).Validate(); err != nil {
		return err
	}
	for i, smp := range tr.Samples {
		switch {
		case smp.AtMs < 0:
			return apperr.Wrap(fmt.Errorf("sample %d: negative time %dms", i, smp.AtMs), apperr.ErrBadRequest, "trace")
		case i > 0 && smp.AtMs < tr.Samples[i-1].AtMs:
			return apperr.Wrap(fmt.Errorf("sample %d goes back in time", i), apperr.ErrBadRequest, "trace")
		case !finite(smp.ScrollY):
			return apperr.Wrap(fmt.Errorf("sample %d: non-finite scrollY", i), apperr.ErrBadRequest, "trace")
		}
		switch smp.Kind() {
		case EventScroll, EventNav, EventMenu, EventClose:
		default:
			return apperr.Wrap(fmt.Errorf("sample %d: unknown event %q", i, smp.Event), apperr.ErrBadRequest, "trace")
		}
	}
	return nil
}

// Frame is the tracker state after one scroll evaluation or one navigation
// event. Target is set when a nav click scrolls the page.
type Frame struct {
	At         time.Duration `json:"at"`
	Event      string        `json:"event"`
	ScrollY    float64       `json:"scrollY"`
	State      State         `json:"state"`
	Changed    bool          `json:"changed"`
	Target     *float64      `json:"target,omitempty"`
	BodyLocked bool          `json:"bodyLocked"`
}

// Session replays traces through a FrameThrottle and a Tracker, the same
// pipeline the page runs on every scroll event.
type Session struct {
	sections []Section
	interval time.Duration
}

func NewSession(sections []Section) *Session {
	return &Session{sections: sections, interval: FrameInterval}
}

// Replay feeds the samples in time order. Scroll samples that share a frame
// are coalesced and the frame evaluates the last of them. Navigation events
// are handled as they arrive, like click handlers. One Frame is returned per
// evaluation and per navigation event.
func (s *Session) Replay(ctx context.Context, tr Trace) ([]Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	layout := NewLayout(tr.Sections...)
	tracker := NewTracker(s.sections)

	var (
		mu     sync.Mutex
		latest Sample
		frames []Frame
	)
	ticks := make(chan time.Time)
	evaluated := make(chan struct{}, 1)
	throttle := NewFrameThrottle(ticks, func(time.Time) {
		mu.Lock()
		smp := latest
		mu.Unlock()

		changed := tracker.Update(layout, Viewport{
			ScrollY:        smp.ScrollY,
			Height:         tr.ViewportHeight,
			DocumentHeight: tr.DocumentHeight,
		})
		frames = append(frames, Frame{
			At:         smp.At(),
			Event:      EventScroll,
			ScrollY:    smp.ScrollY,
			State:      tracker.State(),
			Changed:    changed,
			BodyLocked: tracker.BodyScrollLocked(),
		})
		evaluated <- struct{}{}
	})

	done := make(chan error, 1)
	go func() { done <- throttle.Run(ctx) }()

	// Every frame that is ticked has a pending trigger, so each tick is
	// answered on evaluated before the next sample overwrites latest.
	epoch := time.Unix(0, 0)
	tick := func(frame int64) error {
		select {
		case ticks <- epoch.Add(time.Duration(frame) * s.interval):
		case <-ctx.Done():
			return ctx.Err()
		}
		select {
		case <-evaluated:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	var (
		current int64
		scrollY float64
	)
	for _, smp := range tr.Samples {
		frame := int64(smp.At() / s.interval)
		if frame != current && throttle.Pending() {
			if err := tick(current); err != nil {
				return nil, err
			}
		}
		current = frame

		if smp.Kind() != EventScroll {
			frames = append(frames, s.navigate(tracker, layout, smp, scrollY))
			continue
		}
		scrollY = smp.ScrollY
		mu.Lock()
		latest = smp
		mu.Unlock()
		throttle.Trigger()
	}
	if throttle.Pending() {
		if err := tick(current); err != nil {
			return nil, err
		}
	}
	close(ticks)
	if err := <-done; err != nil {
		return nil, err
	}
	return frames, nil
}

// navigate applies a click or menu event to the tracker. The frame goroutine
// is idle here: every tick is acknowledged before the next sample is read.
func (s *Session) navigate(t *Tracker, layout Layout, smp Sample, scrollY float64) Frame {
	fr := Frame{At: smp.At(), Event: smp.Kind(), ScrollY: scrollY}
	switch smp.Kind() {
	case EventNav:
		if y, ok := t.Navigate(smp.Nav, layout); ok {
			fr.Target = &y
		}
	case EventMenu:
		t.ToggleMenu()
	case EventClose:
		t.CloseMenu()
	}
	fr.State = t.State()
	fr.BodyLocked = t.BodyScrollLocked()
	return fr
}
