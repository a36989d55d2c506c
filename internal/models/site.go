package models

// Site is the full content of the portfolio page
type Site struct {
	Page     PageMeta  `json:"page" yaml:"page"`
	Layout   Layout    `json:"layout" yaml:"layout"`
	Theme    Theme     `json:"theme" yaml:"theme"`
	Featured []Project `json:"featured" yaml:"featured"`
	Projects []Project `json:"projects" yaml:"projects"`
	Sidebar  Sidebar   `json:"sidebar" yaml:"sidebar"`
}

// PageMeta holds the page chrome
type PageMeta struct {
	Title  string   `json:"title" yaml:"title"`
	Icon   string   `json:"icon" yaml:"icon"`
	Intro  string   `json:"intro" yaml:"intro"`
	Footer []string `json:"footer" yaml:"footer"`
}

// Layout holds presentation parameters for the project grids
type Layout struct {
	FeaturedColumns int    `json:"featured_columns" yaml:"featured_columns"`
	ProjectColumns  int    `json:"project_columns" yaml:"project_columns"`
	FeaturedHeading string `json:"featured_heading" yaml:"featured_heading"`
	// ProjectsHeading may be empty, which drops the heading above the grid.
	ProjectsHeading *string `json:"projects_heading,omitempty" yaml:"projects_heading"`
}

// Theme holds color scheme settings
type Theme struct {
	Border     string `json:"border" yaml:"border"`
	Accent     string `json:"accent" yaml:"accent"`
	Background string `json:"background,omitempty" yaml:"background"`
	Text       string `json:"text,omitempty" yaml:"text"`
}

// Sidebar holds the profile column
type Sidebar struct {
	Image          string   `json:"image" yaml:"image"`
	Caption        string   `json:"caption" yaml:"caption"`
	Heading        string   `json:"heading" yaml:"heading"`
	Bio            string   `json:"bio" yaml:"bio"`
	LinksHeading   string   `json:"links_heading" yaml:"links_heading"`
	Links          []string `json:"links" yaml:"links"`
	ContactHeading string   `json:"contact_heading" yaml:"contact_heading"`
	ContactText    string   `json:"contact_text" yaml:"contact_text"`
	Email          string   `json:"email" yaml:"email"`
}

// Layout defaults
const (
	DefaultFeaturedColumns = 2
	DefaultProjectColumns  = 2
	DefaultFeaturedHeading = "✨ Featured Projects"
	DefaultProjectsHeading = "More Projects"
	MaxColumns             = 6
)

// WithDefaults fills zero values with the default layout
func (l Layout) WithDefaults() Layout {
	if l.FeaturedColumns == 0 {
		l.FeaturedColumns = DefaultFeaturedColumns
	}
	if l.ProjectColumns == 0 {
		l.ProjectColumns = DefaultProjectColumns
	}
	if l.FeaturedHeading == "" {
		l.FeaturedHeading = DefaultFeaturedHeading
	}
	if l.ProjectsHeading == nil {
		heading := DefaultProjectsHeading
		l.ProjectsHeading = &heading
	}
	return l
}

// ProjectsTitle returns the heading above the main grid, or "" for none
func (l Layout) ProjectsTitle() string {
	if l.ProjectsHeading == nil {
		return DefaultProjectsHeading
	}
	return *l.ProjectsHeading
}

// WithDefaults fills empty headings
func (s Sidebar) WithDefaults() Sidebar {
	if s.Heading == "" {
		s.Heading = "About Me"
	}
	if s.LinksHeading == "" {
		s.LinksHeading = "Links"
	}
	if s.ContactHeading == "" {
		s.ContactHeading = "📧 Contact"
	}
	return s
}

// WithDefaults fills empty colors with the light theme
func (t Theme) WithDefaults() Theme {
	if t.Border == "" {
		t.Border = "#e0e0e0"
	}
	if t.Accent == "" {
		t.Accent = "#FF4B4B"
	}
	return t
}

// WithDefaults fills an empty title and icon
func (p PageMeta) WithDefaults() PageMeta {
	if p.Title == "" {
		p.Title = "My Projects"
	}
	if p.Icon == "" {
		p.Icon = "🚀"
	}
	return p
}

// WithDefaults returns a copy of the site with every section defaulted
func (s Site) WithDefaults() Site {
	s.Page = s.Page.WithDefaults()
	s.Layout = s.Layout.WithDefaults()
	s.Theme = s.Theme.WithDefaults()
	s.Sidebar = s.Sidebar.WithDefaults()
	return s
}
