// Package render turns portfolio content into a complete HTML document.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html"
	"html/template"
	"io"
	"net/url"

	"showcase.dev/internal/models"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Page is everything a single render needs
type Page struct {
	Meta     models.PageMeta
	Layout   models.Layout
	Theme    models.Theme
	Featured []models.Project
	Projects []models.Project
	Sidebar  models.Sidebar
}

// PageFromSite builds a Page from loaded site content
func PageFromSite(site *models.Site) Page {
	return Page{
		Meta:     site.Page,
		Layout:   site.Layout,
		Theme:    site.Theme,
		Featured: site.Featured,
		Projects: site.Projects,
		Sidebar:  site.Sidebar,
	}
}

// Renderer renders pages from the embedded templates. It holds no per-render
// state and is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
	md   *markdown
}

// New parses the embedded templates
func New() (*Renderer, error) {
	tmpl, err := template.New("page.html.tmpl").ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl, md: newMarkdown()}, nil
}

type cardView struct {
	Anchor      string
	Title       string
	Description string
	Link        string
	Badges      []models.Badge
}

type columnView struct {
	Index int
	Cards []cardView
}

type gridView struct {
	Count   int
	Columns []columnView
}

type sidebarView struct {
	models.Sidebar
	BioHTML template.HTML
}

type pageView struct {
	Meta            models.PageMeta
	Icon            template.URL
	Theme           models.Theme
	FeaturedHeading string
	Featured        *gridView
	ProjectsHeading string
	Projects        gridView
	Sidebar         sidebarView
}

// Render writes the full document for p to w. Nothing is written if
// rendering fails.
func (r *Renderer) Render(w io.Writer, p Page) error {
	view, err := r.view(p)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page.html.tmpl", view); err != nil {
		return fmt.Errorf("execute page template: %w", err)
	}
	_, err = buf.WriteTo(w)
	return err
}

func (r *Renderer) view(p Page) (pageView, error) {
	layout := p.Layout.WithDefaults()
	sidebar := p.Sidebar.WithDefaults()
	meta := p.Meta.WithDefaults()

	bio, err := r.md.toHTML(sidebar.Bio)
	if err != nil {
		return pageView{}, fmt.Errorf("render bio: %w", err)
	}

	view := pageView{
		Meta:            meta,
		Icon:            iconURL(meta.Icon),
		Theme:           p.Theme.WithDefaults(),
		FeaturedHeading: layout.FeaturedHeading,
		ProjectsHeading: layout.ProjectsTitle(),
		Projects:        grid(ExcludeFeatured(p.Featured, p.Projects), layout.ProjectColumns),
		Sidebar:         sidebarView{Sidebar: sidebar, BioHTML: bio},
	}
	if len(p.Featured) > 0 {
		featured := grid(p.Featured, layout.FeaturedColumns)
		view.Featured = &featured
	}
	return view, nil
}

func grid(projects []models.Project, n int) gridView {
	if n < 1 {
		n = 1
	}
	g := gridView{Count: n, Columns: make([]columnView, n)}
	for i, col := range Distribute(projects, n) {
		cards := make([]cardView, 0, len(col))
		for _, p := range col {
			cards = append(cards, cardView{
				Anchor:      Anchor(p.Key()),
				Title:       p.Title,
				Description: p.Description,
				Link:        p.Link,
				Badges:      p.Badges,
			})
		}
		g.Columns[i] = columnView{Index: i, Cards: cards}
	}
	return g
}

// iconURL wraps an emoji in an inline SVG favicon.
func iconURL(icon string) template.URL {
	svg := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100"><text y=".9em" font-size="90">` +
		html.EscapeString(icon) + `</text></svg>`
	return template.URL("data:image/svg+xml," + url.PathEscape(svg))
}
