// Package scroll models the page's scroll-position tracker: which section
// the viewport centre is over, when the back-to-top control shows, where a
// navigation click should scroll to, and how scroll events are coalesced
// into one evaluation per frame.
//
// The browser script embedded by the web package implements the same rules
// from Config, so the constants here are the single source of truth.
package scroll

import "time"

const (
	// NavOffset is the height of the fixed navigation bar. Scrolling to a
	// section stops this far above its top edge.
	NavOffset = 80
	// BackToTopThreshold is the scrollY past which the back-to-top control shows.
	BackToTopThreshold = 300
	// FrameInterval approximates one animation frame at 60Hz.
	FrameInterval = 16 * time.Millisecond
)

// Section is a navigable region of the page.
type Section struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Sections lists the page regions in document order. Nav labels are
// index-aligned with the ids.
var Sections = []Section{
	{ID: "home", Label: "Prologue"},
	{ID: "about", Label: "Story"},
	{ID: "journey", Label: "Journey"},
	{ID: "works", Label: "Works"},
	{ID: "services", Label: "Services"},
	{ID: "contact", Label: "Epilogue"},
}

// DefaultSection is active before the first scroll evaluation.
const DefaultSection = "home"

// Config is what the browser needs to run the tracker.
type Config struct {
	Sections           []Section `json:"sections"`
	Default            string    `json:"default"`
	NavOffset          int       `json:"navOffset"`
	BackToTopThreshold int       `json:"backToTopThreshold"`
}

// ClientConfig returns the tracker settings in the shape the page script
// reads.
func ClientConfig() Config {
	return Config{
		Sections:           append([]Section(nil), Sections...),
		Default:            DefaultSection,
		NavOffset:          NavOffset,
		BackToTopThreshold: BackToTopThreshold,
	}
}

// IDs returns the section ids in document order.
func IDs(sections []Section) []string {
	ids := make([]string, len(sections))
	for i, s := range sections {
		ids[i] = s.ID
	}
	return ids
}
