// Package web serves the portfolio page and its small JSON surface over gin.
package web

import (
	"context"
	"embed"
	"errors"
	"html"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/dcosic/portfolio/internal/apperr"
	"github.com/dcosic/portfolio/internal/config"
	"github.com/dcosic/portfolio/internal/content"
	"github.com/dcosic/portfolio/internal/motion"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const shutdownTimeout = 5 * time.Second

type Server struct {
	cfg       config.Config
	log       *logrus.Logger
	portfolio *content.Portfolio
	page      Page
	tmpl      *template.Template
	registry  *prometheus.Registry
	engine    *gin.Engine
}

// New wires the router. The portfolio is rendered into a Page once here and
// shared by every request.
func New(cfg config.Config, log *logrus.Logger, portfolio *content.Portfolio) (*Server, error) {
	if portfolio == nil {
		return nil, apperr.Wrap(errors.New("nil portfolio"), apperr.ErrContent, "")
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:       cfg,
		log:       log,
		portfolio: portfolio,
		page:      buildPage(portfolio, cfg.SiteURL),
		tmpl:      tmpl,
		registry:  prometheus.NewRegistry(),
	}
	if cfg.Debug() {
		gin.DebugPrintRouteFunc = func(method, path, handler string, handlers int) {
			log.WithFields(logrus.Fields{"method": method, "path": path, "handler": handler}).Debug("route")
		}
	}
	engine, err := s.routes()
	if err != nil {
		return nil, err
	}
	s.engine = engine
	return s, nil
}

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{"reveal": reveal}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, apperr.Wrap(err, apperr.ErrInternal, "parse templates")
	}
	return tmpl, nil
}

// reveal renders the data attributes and inline style for an entrance.
// style overrides the entrance's own style when non-empty.
func reveal(e motion.Entrance, style template.CSS) template.HTMLAttr {
	if style == "" {
		style = e.Style()
	}
	return template.HTMLAttr(`data-reveal="` + html.EscapeString(string(e.Variant)) +
		`" data-reveal-on="` + e.Trigger() +
		`" style="` + html.EscapeString(string(style)) + `"`)
}

func (s *Server) routes() (*gin.Engine, error) {
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, apperr.Wrap(err, apperr.ErrInternal, "static assets")
	}

	r := gin.New()
	r.SetHTMLTemplate(s.tmpl)
	r.Use(gin.Recovery(), RequestID(), AccessLog(s.log))
	if s.cfg.MetricsEnabled {
		r.Use(Instrumentation(s.registry))
		s.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))
	}

	r.StaticFS("/static", http.FS(static))

	r.GET("/", s.index)
	r.GET("/healthz", s.health)
	r.GET("/robots.txt", s.robots)
	r.GET("/sitemap.xml", s.sitemap)

	api := r.Group("/api")
	api.GET("/content", s.content)
	api.GET("/sections", s.sections)
	api.POST("/scroll/resolve", s.resolve)

	r.NoRoute(func(c *gin.Context) {
		abort(c, apperr.Wrap(errors.New(c.Request.URL.Path), apperr.ErrNotFound, "no such page"))
	})
	return r, nil
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// RenderPage writes the full page to w, the same bytes GET / serves.
func (s *Server) RenderPage(w io.Writer) error {
	if err := s.tmpl.ExecuteTemplate(w, "index.html", s.page); err != nil {
		return apperr.Wrap(err, apperr.ErrInternal, "render page")
	}
	return nil
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", srv.Addr).Info("portfolio listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

func abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(apperr.Status(err), apperr.Payload(err))
}
