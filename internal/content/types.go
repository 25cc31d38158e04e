package content

import "strconv"

type Portfolio struct {
	Profile        Profile         `yaml:"profile" json:"profile"`
	SEO            SEO             `yaml:"seo" json:"seo"`
	Experiences    []Experience    `yaml:"experiences" json:"experiences" validate:"required,min=1,dive"`
	Education      []Education     `yaml:"education" json:"education" validate:"dive"`
	Certifications []Certification `yaml:"certifications" json:"certifications" validate:"dive"`
	Projects       []Project       `yaml:"projects" json:"projects" validate:"dive"`
	Services       []Service       `yaml:"services" json:"services" validate:"dive"`
	Skills         Skills          `yaml:"skills" json:"skills"`
}

type Profile struct {
	Name           string    `yaml:"name" json:"name" validate:"required"`
	Role           string    `yaml:"role" json:"role" validate:"required"`
	Greeting       string    `yaml:"greeting" json:"greeting"`
	TaglineHTML    string    `yaml:"tagline_html" json:"tagline_html"`
	Image          string    `yaml:"image" json:"image"`
	Logo           string    `yaml:"logo" json:"logo"`
	Stats          []Stat    `yaml:"stats" json:"stats" validate:"dive"`
	About          []string  `yaml:"about" json:"about" validate:"dive,required"`
	Philosophy     string    `yaml:"philosophy" json:"philosophy"`
	ContactMessage string    `yaml:"contact_message" json:"contact_message"`
	Contacts       []Contact `yaml:"contacts" json:"contacts" validate:"dive"`
	Availability   string    `yaml:"availability" json:"availability"`
	CopyrightYear  int       `yaml:"copyright_year" json:"copyright_year" validate:"omitempty,gte=1970"`
}

type Stat struct {
	Value string `yaml:"value" json:"value" validate:"required"`
	Label string `yaml:"label" json:"label" validate:"required"`
}

type Contact struct {
	Label string `yaml:"label" json:"label" validate:"required"`
	Href  string `yaml:"href" json:"href" validate:"required,uri"`
	Icon  string `yaml:"icon" json:"icon" validate:"omitempty,oneof=email linkedin medium x github"`
}

type SEO struct {
	Title       string `yaml:"title" json:"title" validate:"required"`
	Description string `yaml:"description" json:"description" validate:"required"`
	Keywords    string `yaml:"keywords" json:"keywords"`
}

type Experience struct {
	Company      string   `yaml:"company" json:"company" validate:"required"`
	Role         string   `yaml:"role" json:"role" validate:"required"`
	Period       string   `yaml:"period" json:"period" validate:"required"`
	Summary      string   `yaml:"summary" json:"summary"`
	Technologies []string `yaml:"technologies" json:"technologies"`
}

type Education struct {
	Degree      string `yaml:"degree" json:"degree" validate:"required"`
	Field       string `yaml:"field" json:"field"`
	Institution string `yaml:"institution" json:"institution" validate:"required"`
	Period      string `yaml:"period" json:"period"`
}

type Certification struct {
	Name        string `yaml:"name" json:"name" validate:"required"`
	Issuer      string `yaml:"issuer" json:"issuer" validate:"required"`
	Period      string `yaml:"period,omitempty" json:"period,omitempty"`
	Description string `yaml:"description" json:"description"`
}

type Project struct {
	Title        string   `yaml:"title" json:"title" validate:"required"`
	Description  string   `yaml:"description" json:"description" validate:"required"`
	Impact       string   `yaml:"impact" json:"impact"`
	Technologies []string `yaml:"technologies" json:"technologies"`
	Icon         string   `yaml:"icon" json:"icon"`
}

type Service struct {
	Title       string   `yaml:"title" json:"title" validate:"required"`
	Description string   `yaml:"description" json:"description" validate:"required"`
	Icon        string   `yaml:"icon" json:"icon"`
	Tooltip     *Tooltip `yaml:"tooltip,omitempty" json:"tooltip,omitempty"`
	Badge       string   `yaml:"badge,omitempty" json:"badge,omitempty"`
	Wide        bool     `yaml:"wide,omitempty" json:"wide,omitempty"`
	Features    []string `yaml:"features,omitempty" json:"features,omitempty"`
	Outcome     string   `yaml:"outcome,omitempty" json:"outcome,omitempty"`
}

// Featured services carry a badge and get the highlighted card style.
func (s Service) Featured() bool {
	return s.Badge != ""
}

type Tooltip struct {
	Icon        string `yaml:"icon" json:"icon"`
	Title       string `yaml:"title" json:"title" validate:"required"`
	Description string `yaml:"description" json:"description"`
}

type Skills struct {
	Peaks []Peak `yaml:"peaks" json:"peaks" validate:"dive"`
}

// Peak is one mountain in the skills range. Height is a percentage of the
// tallest possible peak; experience is given in years or, for short
// stints, months.
type Peak struct {
	Name   string   `yaml:"name" json:"name" validate:"required"`
	Height int      `yaml:"height" json:"height" validate:"gte=0,lte=100"`
	Years  int      `yaml:"years,omitempty" json:"years,omitempty" validate:"gte=0,required_without=Months,excluded_with=Months"`
	Months int      `yaml:"months,omitempty" json:"months,omitempty" validate:"gte=0,required_without=Years"`
	Items  []string `yaml:"items" json:"items"`
	Color  string   `yaml:"color" json:"color" validate:"oneof=accent violet teal"`
}

// FlagLabel is the short duration shown on the peak flag, "6y" or "6m".
func (p Peak) FlagLabel() string {
	if p.Years > 0 {
		return strconv.Itoa(p.Years) + "y"
	}
	return strconv.Itoa(p.Months) + "m"
}

type Tier string

const (
	TierTall   Tier = "tall"
	TierMedium Tier = "medium"
	TierShort  Tier = "short"
)

// Tier buckets a peak for the legend: deep expertise, strong skills, explored.
func (p Peak) Tier() Tier {
	switch {
	case p.Height >= 80:
		return TierTall
	case p.Height >= 50:
		return TierMedium
	}
	return TierShort
}

// Legend lists the tiers in display order with their captions.
var Legend = []struct {
	Tier    Tier
	Caption string
}{
	{TierTall, "Deep expertise"},
	{TierMedium, "Strong skills"},
	{TierShort, "Explored"},
}
