package scroll

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcosic/portfolio/internal/apperr"
)

// pageLayout is six stacked 1000px sections.
func pageLayout() Layout {
	var rects []Rect
	for i, s := range Sections {
		rects = append(rects, Rect{ID: s.ID, OffsetTop: float64(i * 1000), OffsetHeight: 1000})
	}
	return NewLayout(rects...)
}

func TestResolve(t *testing.T) {
	order := IDs(Sections)
	tests := []struct {
		name    string
		layout  Layout
		scrollY float64
		want    string
		wantOK  bool
	}{
		{"top of page", pageLayout(), 0, "home", true},
		{"centre just before boundary", pageLayout(), 499, "home", true},
		{"centre on boundary belongs to next", pageLayout(), 500, "about", true},
		{"deep in works", pageLayout(), 3200, "works", true},
		{"last section", pageLayout(), 5400, "contact", true},
		{"past the end", pageLayout(), 6000, "", false},
		{"above the page", pageLayout(), -800, "", false},
		{"missing section skipped", func() Layout { l := pageLayout(); delete(l, "about"); return l }(), 700, "", false},
		{"overlap goes to first in order", NewLayout(
			Rect{ID: "home", OffsetTop: 0, OffsetHeight: 2000},
			Rect{ID: "about", OffsetTop: 500, OffsetHeight: 1000},
		), 400, "home", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(order, tt.layout, Viewport{ScrollY: tt.scrollY, Height: 1000})
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTarget(t *testing.T) {
	y, ok := Target(pageLayout(), "works")
	assert.True(t, ok)
	assert.Equal(t, float64(3000-NavOffset), y)

	_, ok = Target(pageLayout(), "blog")
	assert.False(t, ok)
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name string
		vp   Viewport
		want float64
	}{
		{"top", Viewport{ScrollY: 0, Height: 1000, DocumentHeight: 6000}, 0},
		{"half", Viewport{ScrollY: 2500, Height: 1000, DocumentHeight: 6000}, 0.5},
		{"bottom", Viewport{ScrollY: 5000, Height: 1000, DocumentHeight: 6000}, 1},
		{"overscroll clamps", Viewport{ScrollY: 5400, Height: 1000, DocumentHeight: 6000}, 1},
		{"bounce clamps", Viewport{ScrollY: -40, Height: 1000, DocumentHeight: 6000}, 0},
		{"short document", Viewport{ScrollY: 0, Height: 1000, DocumentHeight: 800}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Progress(tt.vp), 1e-9)
		})
	}
}

func TestShowBackToTop(t *testing.T) {
	assert.False(t, ShowBackToTop(Viewport{ScrollY: 300}))
	assert.True(t, ShowBackToTop(Viewport{ScrollY: 301}))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, pageLayout().Validate())
	assert.ErrorIs(t, NewLayout(Rect{ID: "home", OffsetHeight: -1}).Validate(), apperr.ErrBadRequest)
	assert.ErrorIs(t, NewLayout(Rect{ID: "home", OffsetTop: math.NaN()}).Validate(), apperr.ErrBadRequest)
	assert.ErrorIs(t, Layout{"home": {ID: "about"}}.Validate(), apperr.ErrBadRequest)

	assert.NoError(t, Viewport{Height: 900}.Validate())
	assert.ErrorIs(t, Viewport{Height: 0}.Validate(), apperr.ErrBadRequest)
	assert.ErrorIs(t, Viewport{Height: 900, ScrollY: math.Inf(1)}.Validate(), apperr.ErrBadRequest)
}

func TestValidateReportsFirstSectionByID(t *testing.T) {
	l := NewLayout(
		Rect{ID: "works", OffsetHeight: -1},
		Rect{ID: "about", OffsetHeight: -1},
		Rect{ID: "contact", OffsetTop: math.Inf(1)},
		Rect{ID: "journey", OffsetHeight: -5},
	)
	for i := 0; i < 50; i++ {
		err := l.Validate()
		require.Error(t, err)
		assert.Equal(t, `layout: section "about": negative height`, err.Error())
	}
}

func TestClientConfig(t *testing.T) {
	cfg := ClientConfig()
	assert.Equal(t, []string{"home", "about", "journey", "works", "services", "contact"}, IDs(cfg.Sections))
	assert.Equal(t, "Epilogue", cfg.Sections[5].Label)
	assert.Equal(t, "home", cfg.Default)
	assert.Equal(t, 80, cfg.NavOffset)
	assert.Equal(t, 300, cfg.BackToTopThreshold)

	cfg.Sections[0].Label = "changed"
	assert.Equal(t, "Prologue", Sections[0].Label)
}
