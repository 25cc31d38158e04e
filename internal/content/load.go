// Package content holds the static portfolio records. They are decoded
// from YAML once at startup and shared read-only afterwards.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/dcosic/portfolio/internal/apperr"
)

//go:embed data/portfolio.yaml
var defaultDocument []byte

var validate = validator.New()

// Default returns the embedded portfolio.
func Default() (*Portfolio, error) {
	return Parse(bytes.NewReader(defaultDocument))
}

// Load reads the portfolio from path, or the embedded document when path
// is empty.
func Load(path string) (*Portfolio, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.ErrContent, "open content")
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes and validates a portfolio document. Unknown keys are
// rejected so typos in the YAML surface at startup.
func Parse(r io.Reader) (*Portfolio, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Portfolio
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty document")
		}
		return nil, apperr.Wrap(err, apperr.ErrContent, "decode content")
	}
	if err := Validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks struct tags and the rules tags cannot express.
func Validate(p *Portfolio) error {
	fields := map[string]any{}
	if err := validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return apperr.Wrap(err, apperr.ErrValidation, "validate content")
		}
		for _, fe := range verrs {
			fields[trimNamespace(fe.Namespace())] = fe.Tag()
		}
	}

	seen := make(map[string]bool, len(p.Skills.Peaks))
	for i, peak := range p.Skills.Peaks {
		key := strings.ToLower(peak.Name)
		if seen[key] {
			fields[fmt.Sprintf("Skills.Peaks[%d].Name", i)] = "unique"
		}
		seen[key] = true
	}

	if len(fields) > 0 {
		return apperr.WithFields(apperr.Wrap(fmt.Errorf("%d invalid fields", len(fields)), apperr.ErrValidation, "validate content"), fields)
	}
	return nil
}

func trimNamespace(ns string) string {
	return strings.TrimPrefix(ns, "Portfolio.")
}
