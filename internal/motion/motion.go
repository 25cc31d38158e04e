// Package motion describes the page's entrance animations: which variant
// each element uses, how long it runs and how far it is delayed. Values are
// emitted as CSS custom properties and played by the stylesheet.
package motion

import (
	"html/template"
	"strconv"
	"strings"
	"time"
)

// Ease is the entrance curve shared by every reveal.
const Ease = "cubic-bezier(0.16, 1, 0.3, 1)"

// Stagger separates consecutive items in a list.
const Stagger = 100 * time.Millisecond

// Variant names the starting pose an element animates from.
type Variant string

const (
	Fade      Variant = "fade"       // opacity only
	FadeUp    Variant = "fade-up"    // rises into place
	FadeLeft  Variant = "fade-left"  // slides in from the left
	ScaleIn   Variant = "scale-in"   // grows from 0.9
	Grow      Variant = "grow"       // scaleY from 0, anchored at the bottom
	SlideDown Variant = "slide-down" // drops in from above the viewport
)

// Entrance is one element's animation.
type Entrance struct {
	Variant  Variant
	Delay    time.Duration
	Duration time.Duration
	// Distance is the starting offset in px for the translate variants.
	Distance int
	// OnLoad entrances play immediately; the rest wait until the element
	// first scrolls into view and never replay.
	OnLoad bool
}

// Style renders the custom properties the stylesheet reads.
func (e Entrance) Style() template.CSS {
	parts := []string{
		"--delay: " + seconds(e.Delay),
		"--duration: " + seconds(e.Duration),
	}
	if e.Distance != 0 {
		parts = append(parts, "--distance: "+strconv.Itoa(e.Distance)+"px")
	}
	return template.CSS(strings.Join(parts, "; "))
}

// Trigger is the data-reveal-on value: "load" or "view".
func (e Entrance) Trigger() string {
	if e.OnLoad {
		return "load"
	}
	return "view"
}

func seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + "s"
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

// Hero entrances play on page load in a fixed order.
var (
	Nav        = Entrance{Variant: SlideDown, Duration: ms(800), Distance: 100, OnLoad: true}
	HeroText   = Entrance{Variant: FadeUp, Delay: ms(200), Duration: ms(800), Distance: 40, OnLoad: true}
	Greeting   = Entrance{Variant: FadeLeft, Delay: ms(400), Duration: ms(600), Distance: 20, OnLoad: true}
	Title      = Entrance{Variant: FadeUp, Delay: ms(500), Duration: ms(800), Distance: 30, OnLoad: true}
	Tagline    = Entrance{Variant: FadeUp, Delay: ms(700), Duration: ms(800), Distance: 20, OnLoad: true}
	Stats      = Entrance{Variant: FadeUp, Delay: ms(900), Duration: ms(800), Distance: 20, OnLoad: true}
	CTA        = Entrance{Variant: FadeUp, Delay: ms(1100), Duration: ms(800), Distance: 20, OnLoad: true}
	HeroImage  = Entrance{Variant: ScaleIn, Delay: ms(300), Duration: ms(1000), OnLoad: true}
	ScrollHint = Entrance{Variant: Fade, Delay: ms(1500), Duration: ms(1000), OnLoad: true}
)

// Chapter entrances play once when a section body scrolls into view.
var (
	Chapter      = Entrance{Variant: Fade, Duration: ms(800)}
	ChapterLabel = Entrance{Variant: FadeLeft, Duration: ms(600), Distance: 20}
	Heading      = Entrance{Variant: FadeUp, Delay: ms(100), Duration: ms(600), Distance: 20}
	Mountains    = Entrance{Variant: Fade, Duration: ms(1000)}
)

// Paragraph returns the entrance for the i-th block of the about narrative.
// The chapter label and heading take the first two slots.
func Paragraph(i int) Entrance {
	return Entrance{Variant: FadeUp, Delay: ms(200) + time.Duration(i)*Stagger, Duration: ms(600), Distance: 20}
}

// List is a family of repeated cards that share an entrance and stagger by
// index.
type List struct {
	Variant  Variant
	Duration time.Duration
	Distance int
}

var (
	Timeline       = List{Variant: FadeLeft, Duration: ms(600), Distance: 30}
	EducationCards = List{Variant: FadeUp, Duration: ms(500), Distance: 20}
	Certifications = List{Variant: FadeUp, Duration: ms(500), Distance: 20}
	Works          = List{Variant: FadeUp, Duration: ms(600), Distance: 30}
	Services       = List{Variant: FadeUp, Duration: ms(500), Distance: 30}
	Peaks          = List{Variant: Grow, Duration: ms(800)}
)

// At returns the entrance for item i. Negative indexes are treated as 0.
func (l List) At(i int) Entrance {
	if i < 0 {
		i = 0
	}
	return Entrance{
		Variant:  l.Variant,
		Delay:    time.Duration(i) * Stagger,
		Duration: l.Duration,
		Distance: l.Distance,
	}
}

// PeakStyle adds the peak height to the staggered grow entrance.
func PeakStyle(i, height int) template.CSS {
	return template.CSS("--peak-height: "+strconv.Itoa(height)+"%; ") + Peaks.At(i).Style()
}
