package config

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"regexp"

	"showcase.dev/internal/models"
	"showcase.dev/internal/render"
)

// ErrInvalidContent is wrapped by every content validation failure
var ErrInvalidContent = errors.New("invalid content")

var colorPattern = regexp.MustCompile(`^(#([0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})|[a-zA-Z]+)$`)

// linkPattern is the set of bytes html/template leaves alone in an href.
// Anything else would be percent-encoded and the rendered link would differ
// from the configured one.
var linkPattern = regexp.MustCompile(`^[A-Za-z0-9\-._~!#$&*+,/:;=?@\[\]%]+$`)

// Validate checks site content before it is ever rendered. All problems are
// reported together.
func Validate(site *models.Site) error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	layout := site.Layout.WithDefaults()
	if layout.FeaturedColumns < 1 || layout.FeaturedColumns > models.MaxColumns {
		add("layout.featured_columns must be between 1 and %d, got %d", models.MaxColumns, layout.FeaturedColumns)
	}
	if layout.ProjectColumns < 1 || layout.ProjectColumns > models.MaxColumns {
		add("layout.project_columns must be between 1 and %d, got %d", models.MaxColumns, layout.ProjectColumns)
	}

	for name, color := range map[string]string{
		"theme.border":     site.Theme.Border,
		"theme.accent":     site.Theme.Accent,
		"theme.background": site.Theme.Background,
		"theme.text":       site.Theme.Text,
	} {
		if color != "" && !colorPattern.MatchString(color) {
			add("%s: invalid color %q", name, color)
		}
	}

	errs = append(errs, validateList("featured", site.Featured)...)
	errs = append(errs, validateList("projects", site.Projects)...)

	// distinct keys must not collapse onto the same anchor; this also catches
	// a title edited in one list but not the other ("Agentic RAG" vs "Agentic Rag")
	slugs := make(map[string]string)
	for _, p := range append(append([]models.Project{}, site.Featured...), render.ExcludeFeatured(site.Featured, site.Projects)...) {
		slug := render.Slug(p.Key())
		if prev, ok := slugs[slug]; ok && prev != p.Key() {
			add("projects %q and %q share the identifier %q; set distinct ids", prev, p.Key(), slug)
			continue
		}
		slugs[slug] = p.Key()
	}

	for i, link := range site.Sidebar.Links {
		if err := checkLink(link); err != nil {
			add("sidebar.links[%d]: %w", i, err)
		}
	}
	if site.Sidebar.Email != "" {
		if _, err := mail.ParseAddress(site.Sidebar.Email); err != nil {
			add("sidebar.email: %w", err)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidContent, errors.Join(errs...))
}

func validateList(name string, projects []models.Project) []error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	titles := make(map[string]int, len(projects))
	keys := make(map[string]int, len(projects))
	for i, p := range projects {
		at := fmt.Sprintf("%s[%d]", name, i)
		if p.Title == "" {
			add("%s: title is required", at)
		} else if j, ok := titles[p.Title]; ok {
			add("%s: title %q already used by %s[%d]", at, p.Title, name, j)
		} else {
			titles[p.Title] = i
		}
		// title-only duplicates are already reported above
		if j, ok := keys[p.Key()]; !ok {
			keys[p.Key()] = i
		} else if p.ID != "" || projects[j].ID != "" {
			add("%s: id %q already used by %s[%d]", at, p.Key(), name, j)
		}
		if p.Description == "" {
			add("%s: description is required", at)
		}
		if err := checkLink(p.Link); err != nil {
			add("%s.link: %w", at, err)
		}
		for k, b := range p.Badges {
			if b.Text == "" {
				add("%s.badges[%d]: text is required", at, k)
			}
			if !colorPattern.MatchString(b.Color) {
				add("%s.badges[%d]: invalid color %q", at, k, b.Color)
			}
		}
	}
	return errs
}

func checkLink(raw string) error {
	if raw == "" {
		return errors.New("link is required")
	}
	if !linkPattern.MatchString(raw) {
		return fmt.Errorf("%q contains characters that must be percent-encoded", raw)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	switch u.Scheme {
	case "http", "https":
		if u.Host == "" {
			return fmt.Errorf("%q has no host", raw)
		}
	case "mailto":
	default:
		return fmt.Errorf("%q: scheme must be http, https or mailto", raw)
	}
	return nil
}
