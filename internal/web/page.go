package web

import (
	"html/template"

	"github.com/dcosic/portfolio/internal/content"
	"github.com/dcosic/portfolio/internal/motion"
	"github.com/dcosic/portfolio/internal/scroll"
)

// Card pairs a record with the entrance it plays.
type Card[T any] struct {
	Data   T
	Motion motion.Entrance
	Style  template.CSS
}

func cards[T any](items []T, list motion.List) []Card[T] {
	out := make([]Card[T], len(items))
	for i, item := range items {
		e := list.At(i)
		out[i] = Card[T]{Data: item, Motion: e, Style: e.Style()}
	}
	return out
}

type NavItem struct {
	ID     string
	Label  string
	Active bool
}

type LegendItem struct {
	Tier    content.Tier
	Caption string
}

type Paragraph struct {
	Text   string
	Motion motion.Entrance
}

// Page is everything index.html needs. It is built once from the portfolio
// and reused for every request.
type Page struct {
	SEO     content.SEO
	SiteURL string
	Profile content.Profile
	Tagline template.HTML

	Nav    []NavItem
	Scroll scroll.Config

	About      []Paragraph
	Philosophy motion.Entrance

	Peaks          []Card[content.Peak]
	Legend         []LegendItem
	Experiences    []Card[content.Experience]
	Education      []Card[content.Education]
	Certifications []Card[content.Certification]
	Projects       []Card[content.Project]
	Services       []Card[content.Service]

	// Hero and chapter entrances, addressable from the template by name.
	Motion map[string]motion.Entrance
}

func buildPage(p *content.Portfolio, siteURL string) Page {
	page := Page{
		SEO:     p.SEO,
		SiteURL: siteURL,
		Profile: p.Profile,
		// Tagline markup comes from the operator's own content file.
		Tagline: template.HTML(p.Profile.TaglineHTML),
		Scroll:  scroll.ClientConfig(),

		Experiences:    cards(p.Experiences, motion.Timeline),
		Education:      cards(p.Education, motion.EducationCards),
		Certifications: cards(p.Certifications, motion.Certifications),
		Projects:       cards(p.Projects, motion.Works),
		Services:       cards(p.Services, motion.Services),

		Motion: map[string]motion.Entrance{
			"nav":          motion.Nav,
			"heroText":     motion.HeroText,
			"greeting":     motion.Greeting,
			"title":        motion.Title,
			"tagline":      motion.Tagline,
			"stats":        motion.Stats,
			"cta":          motion.CTA,
			"heroImage":    motion.HeroImage,
			"scrollHint":   motion.ScrollHint,
			"chapter":      motion.Chapter,
			"chapterLabel": motion.ChapterLabel,
			"heading":      motion.Heading,
			"mountains":    motion.Mountains,
		},
	}

	for _, s := range scroll.Sections {
		page.Nav = append(page.Nav, NavItem{ID: s.ID, Label: s.Label, Active: s.ID == scroll.DefaultSection})
	}

	for i, text := range p.Profile.About {
		page.About = append(page.About, Paragraph{Text: text, Motion: motion.Paragraph(i)})
	}
	page.Philosophy = motion.Paragraph(len(p.Profile.About))
	page.Philosophy.Variant = motion.FadeLeft

	page.Peaks = cards(p.Skills.Peaks, motion.Peaks)
	for i := range page.Peaks {
		page.Peaks[i].Style = motion.PeakStyle(i, page.Peaks[i].Data.Height)
	}
	for _, l := range content.Legend {
		page.Legend = append(page.Legend, LegendItem{Tier: l.Tier, Caption: l.Caption})
	}
	return page
}
