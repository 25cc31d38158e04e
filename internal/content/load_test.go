package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcosic/portfolio/internal/apperr"
)

func TestDefault(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Dino Cosic", p.Profile.Name)
	assert.Len(t, p.Experiences, 4)
	assert.Len(t, p.Education, 2)
	assert.Len(t, p.Certifications, 2)
	assert.Len(t, p.Projects, 4)
	assert.Len(t, p.Services, 4)
	assert.Len(t, p.Skills.Peaks, 6)
	assert.Len(t, p.Profile.Contacts, 4)

	assert.Equal(t, "Symphony", p.Experiences[0].Company)
	assert.Contains(t, p.Experiences[0].Technologies, "C#")
	assert.Empty(t, p.Certifications[0].Period)
	assert.Equal(t, "Oct 2019 – Feb 2020", p.Certifications[1].Period)

	require.NotNil(t, p.Services[0].Tooltip)
	assert.Equal(t, "AI-Powered Modernization", p.Services[0].Tooltip.Title)
	assert.True(t, p.Services[3].Featured())
	assert.True(t, p.Services[3].Wide)
	assert.Len(t, p.Services[3].Features, 5)
	assert.False(t, p.Services[1].Featured())
}

func TestPeakFlagLabelAndTier(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	got := map[string]string{}
	tiers := map[string]Tier{}
	for _, peak := range p.Skills.Peaks {
		got[peak.Name] = peak.FlagLabel()
		tiers[peak.Name] = peak.Tier()
	}
	assert.Equal(t, "6y", got["Backend"])
	assert.Equal(t, "6m", got["Frontend"])
	assert.Equal(t, TierTall, tiers["Azure Cloud"])
	assert.Equal(t, TierMedium, tiers["Architecture"])
	assert.Equal(t, TierShort, tiers["Frontend"])
}

const minimal = `
profile:
  name: Jane
  role: Engineer
seo:
  title: Jane
  description: Portfolio
experiences:
  - company: Acme
    role: Dev
    period: 2020 – 2021
skills:
  peaks:
%s
`

func TestParsePeakDuration(t *testing.T) {
	tests := []struct {
		name    string
		peak    string
		wantErr string
	}{
		{"years", "    - {name: Go, height: 50, years: 2, color: teal}", ""},
		{"months", "    - {name: Go, height: 50, months: 3, color: teal}", ""},
		{"neither", "    - {name: Go, height: 50, color: teal}", "Skills.Peaks[0].Years"},
		{"both", "    - {name: Go, height: 50, years: 1, months: 3, color: teal}", "Skills.Peaks[0].Years"},
		{"too tall", "    - {name: Go, height: 120, years: 1, color: teal}", "Skills.Peaks[0].Height"},
		{"bad color", "    - {name: Go, height: 10, years: 1, color: pink}", "Skills.Peaks[0].Color"},
		{"duplicate", "    - {name: Go, height: 10, years: 1, color: teal}\n    - {name: go, height: 20, years: 1, color: teal}", "Skills.Peaks[1].Name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(strings.Replace(minimal, "%s", tt.peak, 1)))
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, apperr.ErrValidation)
			e, ok := apperr.As(err)
			require.True(t, ok)
			assert.Contains(t, e.Fields, tt.wantErr)
		})
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	doc := strings.Replace(minimal, "%s", "    - {name: Go, height: 50, years: 2, colour: teal}", 1)
	_, err := Parse(strings.NewReader(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrContent)
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrContent)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	doc := strings.Replace(minimal, "%s", "    - {name: Go, height: 50, years: 2, color: teal}", 1)
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane", p.Profile.Name)
	assert.Equal(t, "2y", p.Skills.Peaks[0].FlagLabel())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, apperr.ErrContent)
}

func TestLoadEmptyPathUsesEmbedded(t *testing.T) {
	p, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Dino Cosic", p.Profile.Name)
}

func TestValidateUniquePeakNames(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)
	require.NoError(t, Validate(p))

	dup := *p
	dup.Skills.Peaks = append([]Peak(nil), p.Skills.Peaks...)
	dup.Skills.Peaks[2].Name = strings.ToUpper(p.Skills.Peaks[0].Name)

	err = Validate(&dup)
	require.Error(t, err)
	e, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"Skills.Peaks[2].Name": "unique"}, e.Fields)
	assert.NotEqual(t, dup.Skills.Peaks[2].Name, p.Skills.Peaks[2].Name, "the shared portfolio is untouched")
}
