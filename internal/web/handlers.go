package web

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dcosic/portfolio/internal/apperr"
	"github.com/dcosic/portfolio/internal/scroll"
)

func (s *Server) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", s.page)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) content(c *gin.Context) {
	c.JSON(http.StatusOK, s.portfolio)
}

func (s *Server) sections(c *gin.Context) {
	c.JSON(http.StatusOK, scroll.ClientConfig())
}

type resolveRequest struct {
	ScrollY        float64       `json:"scrollY"`
	ViewportHeight float64       `json:"viewportHeight" binding:"required"`
	DocumentHeight float64       `json:"documentHeight"`
	Sections       []scroll.Rect `json:"sections" binding:"required"`
	Active         string        `json:"active"`
}

type resolveResponse struct {
	Active        string  `json:"active"`
	Matched       bool    `json:"matched"`
	ShowBackToTop bool    `json:"showBackToTop"`
	Progress      float64 `json:"progress"`
}

// resolve runs one tracker evaluation against measurements posted by a
// layout tool. When the probe misses every section the caller's current
// active section is kept.
func (s *Server) resolve(c *gin.Context) {
	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, apperr.Wrap(err, apperr.ErrBadRequest, "invalid resolve request"))
		return
	}

	vp := scroll.Viewport{ScrollY: req.ScrollY, Height: req.ViewportHeight, DocumentHeight: req.DocumentHeight}
	if err := vp.Validate(); err != nil {
		abort(c, err)
		return
	}
	layout := scroll.NewLayout(req.Sections...)
	if err := layout.Validate(); err != nil {
		abort(c, err)
		return
	}

	order := scroll.IDs(scroll.Sections)
	current := req.Active
	if current == "" {
		current = scroll.DefaultSection
	} else if !known(order, current) {
		abort(c, apperr.Wrap(fmt.Errorf("unknown section %q", current), apperr.ErrBadRequest, "active"))
		return
	}

	res := resolveResponse{
		Active:        current,
		ShowBackToTop: scroll.ShowBackToTop(vp),
		Progress:      scroll.Progress(vp),
	}
	if id, ok := scroll.Resolve(order, layout, vp); ok {
		res.Active, res.Matched = id, true
	}
	c.JSON(http.StatusOK, res)
}

func known(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func (s *Server) robots(c *gin.Context) {
	c.String(http.StatusOK, robotsTxt(s.cfg.SiteURL))
}

func robotsTxt(siteURL string) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /api/\n")
	b.WriteString("Sitemap: " + siteURL + "/sitemap.xml\n")
	return b.String()
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

func buildSitemap(siteURL string) urlSet {
	return urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  []sitemapURL{{Loc: siteURL + "/", ChangeFreq: "monthly", Priority: "1.0"}},
	}
}

func (s *Server) sitemap(c *gin.Context) {
	c.XML(http.StatusOK, buildSitemap(s.cfg.SiteURL))
}
