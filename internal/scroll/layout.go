package scroll

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/dcosic/portfolio/internal/apperr"
)

// Rect is the measured vertical extent of one section, in document pixels.
type Rect struct {
	ID           string  `json:"id"`
	OffsetTop    float64 `json:"offsetTop"`
	OffsetHeight float64 `json:"offsetHeight"`
}

// Contains reports whether y falls inside the half-open range
// [OffsetTop, OffsetTop+OffsetHeight).
func (r Rect) Contains(y float64) bool {
	return y >= r.OffsetTop && y < r.OffsetTop+r.OffsetHeight
}

// Layout is a set of measured sections keyed by id. Sections that are not
// rendered are simply absent.
type Layout map[string]Rect

// NewLayout indexes rects by id. A later rect with the same id wins.
func NewLayout(rects ...Rect) Layout {
	l := make(Layout, len(rects))
	for _, r := range rects {
		l[r.ID] = r
	}
	return l
}

// Validate rejects measurements a browser could not have produced. Sections
// are checked in id order so the reported one is stable.
func (l Layout) Validate() error {
	for _, id := range slices.Sorted(maps.Keys(l)) {
		r := l[id]
		switch {
		case id == "" || r.ID != id:
			return apperr.Wrap(fmt.Errorf("rect %q keyed as %q", r.ID, id), apperr.ErrBadRequest, "layout")
		case !finite(r.OffsetTop) || !finite(r.OffsetHeight):
			return apperr.Wrap(fmt.Errorf("section %q: non-finite measurement", id), apperr.ErrBadRequest, "layout")
		case r.OffsetHeight < 0:
			return apperr.Wrap(fmt.Errorf("section %q: negative height", id), apperr.ErrBadRequest, "layout")
		}
	}
	return nil
}

// Viewport is the scroll state sampled on a scroll event.
type Viewport struct {
	ScrollY        float64 `json:"scrollY"`
	Height         float64 `json:"viewportHeight"`
	DocumentHeight float64 `json:"documentHeight"`
}

var errViewport = errors.New("viewport height must be positive and finite")

func (v Viewport) Validate() error {
	if !finite(v.ScrollY) || !finite(v.Height) || !finite(v.DocumentHeight) || v.Height <= 0 {
		return apperr.Wrap(errViewport, apperr.ErrBadRequest, "viewport")
	}
	return nil
}

// Probe is the document y coordinate of the viewport's vertical centre.
func (v Viewport) Probe() float64 {
	return v.ScrollY + v.Height/2
}

// Resolve scans order and returns the first section whose rect contains the
// viewport centre. ok is false when no measured section contains it.
func Resolve(order []string, layout Layout, vp Viewport) (id string, ok bool) {
	probe := vp.Probe()
	for _, sid := range order {
		r, found := layout[sid]
		if !found {
			continue
		}
		if r.Contains(probe) {
			return sid, true
		}
	}
	return "", false
}

// Target returns the scroll position that brings section id just below the
// fixed navigation bar. ok is false for unmeasured sections, in which case
// callers leave the scroll position alone.
func Target(layout Layout, id string) (y float64, ok bool) {
	r, found := layout[id]
	if !found {
		return 0, false
	}
	return r.OffsetTop - NavOffset, true
}

// Progress is how far through the scrollable range the viewport is, in
// [0,1]. A document that does not scroll reports 0.
func Progress(vp Viewport) float64 {
	scrollable := vp.DocumentHeight - vp.Height
	if scrollable <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, vp.ScrollY/scrollable))
}

// ShowBackToTop reports whether the back-to-top control should be visible.
func ShowBackToTop(vp Viewport) bool {
	return vp.ScrollY > BackToTopThreshold
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
