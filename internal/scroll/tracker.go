package scroll

import "sync"

// State is a snapshot of the tracker.
type State struct {
	Active        string  `json:"active"`
	ShowBackToTop bool    `json:"showBackToTop"`
	Progress      float64 `json:"progress"`
	MenuOpen      bool    `json:"menuOpen"`
}

// Tracker holds the transient UI state driven by scrolling and navigation.
// It is safe for use from the frame goroutine and the event source at once.
type Tracker struct {
	mu       sync.Mutex
	sections []Section
	state    State
}

// NewTracker starts with the first section active, or DefaultSection when
// sections is empty.
func NewTracker(sections []Section) *Tracker {
	t := &Tracker{sections: append([]Section(nil), sections...)}
	t.state.Active = DefaultSection
	if len(sections) > 0 {
		t.state.Active = sections[0].ID
	}
	return t
}

// Update evaluates one scroll sample. It reports whether the active section
// changed.
func (t *Tracker) Update(layout Layout, vp Viewport) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state.ShowBackToTop = ShowBackToTop(vp)
	t.state.Progress = Progress(vp)

	id, ok := Resolve(IDs(t.sections), layout, vp)
	if !ok || id == t.state.Active {
		return false
	}
	t.state.Active = id
	return true
}

func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *Tracker) Active() string {
	return t.State().Active
}

// Navigate handles a click on the nav item at index. It closes the mobile
// menu and returns the scroll target, if the section is measured.
func (t *Tracker) Navigate(index int, layout Layout) (float64, bool) {
	t.mu.Lock()
	t.state.MenuOpen = false
	var id string
	if index >= 0 && index < len(t.sections) {
		id = t.sections[index].ID
	}
	t.mu.Unlock()

	if id == "" {
		return 0, false
	}
	return Target(layout, id)
}

// ToggleMenu flips the mobile menu and returns the new state.
func (t *Tracker) ToggleMenu() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.MenuOpen = !t.state.MenuOpen
	return t.state.MenuOpen
}

func (t *Tracker) CloseMenu() {
	t.mu.Lock()
	t.state.MenuOpen = false
	t.mu.Unlock()
}

// BodyScrollLocked mirrors the menu: the page must not scroll under an open
// mobile menu.
func (t *Tracker) BodyScrollLocked() bool {
	return t.State().MenuOpen
}
