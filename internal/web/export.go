package web

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dcosic/portfolio/internal/apperr"
)

// Export writes a static copy of the site into dir: index.html, robots.txt,
// sitemap.xml and the static assets. A non-empty dir is refused unless
// overwrite is set.
func (s *Server) Export(dir string, overwrite bool) ([]string, error) {
	if err := prepareDir(dir, overwrite); err != nil {
		return nil, err
	}

	var written []string
	write := func(name string, data []byte) error {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return err
		}
		written = append(written, name)
		return nil
	}

	var page bytes.Buffer
	if err := s.RenderPage(&page); err != nil {
		return nil, err
	}
	if err := write("index.html", page.Bytes()); err != nil {
		return nil, apperr.Wrap(err, apperr.ErrInternal, "write page")
	}
	if err := write("robots.txt", []byte(robotsTxt(s.cfg.SiteURL))); err != nil {
		return nil, apperr.Wrap(err, apperr.ErrInternal, "write robots.txt")
	}

	sm, err := xml.MarshalIndent(buildSitemap(s.cfg.SiteURL), "", "  ")
	if err != nil {
		return nil, apperr.Wrap(err, apperr.ErrInternal, "encode sitemap")
	}
	if err := write("sitemap.xml", append([]byte(xml.Header), sm...)); err != nil {
		return nil, apperr.Wrap(err, apperr.ErrInternal, "write sitemap.xml")
	}

	err = fs.WalkDir(staticFS, "static", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := staticFS.ReadFile(path)
		if err != nil {
			return err
		}
		return write(path, data)
	})
	if err != nil {
		return nil, apperr.Wrap(err, apperr.ErrInternal, "copy static assets")
	}
	return written, nil
}

func prepareDir(dir string, overwrite bool) error {
	entries, err := os.ReadDir(dir)
	switch {
	case os.IsNotExist(err):
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return apperr.Wrap(err, apperr.ErrInternal, "create output directory")
		}
		return nil
	case err != nil:
		return apperr.Wrap(err, apperr.ErrBadRequest, "read output directory")
	case len(entries) > 0 && !overwrite:
		return apperr.Wrap(fmt.Errorf("%s has %d entries", dir, len(entries)), apperr.ErrBadRequest, "output directory is not empty")
	}
	return nil
}
