package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"showcase.dev/internal/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const minimalSite = `
page:
  title: Portfolio
featured:
  - title: X
    description: featured one
    link: https://example.com/x
projects:
  - title: X
    description: featured one
    link: https://example.com/x
  - title: Y
    description: plain one
    link: https://example.com/y
    badges:
      - {text: Go, color: "#00ADD8"}
sidebar:
  caption: Someone
  links: [https://github.com/someone]
  email: someone@example.com
`

func TestDefaultSite(t *testing.T) {
	site, err := DefaultSite()
	require.NoError(t, err)

	assert.Equal(t, "My Projects", site.Page.Title)
	assert.Len(t, site.Featured, 2)
	assert.Len(t, site.Projects, 4)
	assert.Equal(t, 2, site.Layout.FeaturedColumns)
	assert.Equal(t, 2, site.Layout.ProjectColumns)
	assert.Equal(t, "More Projects", site.Layout.ProjectsTitle())
	assert.Equal(t, "Aayush Agarwal", site.Sidebar.Caption)
	assert.Len(t, site.Sidebar.Links, 3)

	agentic := site.Featured[1]
	assert.Equal(t, "Agentic RAG", agentic.Title)
	require.Len(t, agentic.Badges, 5)
	assert.Equal(t, models.Badge{Text: "Vector DB", Color: "#FF8C00"}, agentic.Badges[4])
}

func TestParseSiteAppliesDefaults(t *testing.T) {
	site, err := ParseSite([]byte(minimalSite))
	require.NoError(t, err)

	assert.Equal(t, "Portfolio", site.Page.Title)
	assert.Equal(t, "🚀", site.Page.Icon)
	assert.Equal(t, models.DefaultFeaturedColumns, site.Layout.FeaturedColumns)
	assert.Equal(t, models.DefaultProjectColumns, site.Layout.ProjectColumns)
	assert.Equal(t, models.DefaultProjectsHeading, site.Layout.ProjectsTitle())
	assert.Equal(t, "About Me", site.Sidebar.Heading)
	assert.Equal(t, "#e0e0e0", site.Theme.Border)
	assert.Empty(t, site.Projects[0].Badges)
}

func TestParseSiteEmptyProjectsHeading(t *testing.T) {
	site, err := ParseSite([]byte(minimalSite + "layout:\n  projects_heading: \"\"\n  project_columns: 3\n"))
	require.NoError(t, err)

	assert.Equal(t, "", site.Layout.ProjectsTitle())
	assert.Equal(t, 3, site.Layout.ProjectColumns)
}

func TestParseSiteRejectsUnknownFields(t *testing.T) {
	_, err := ParseSite([]byte("page:\n  tittle: typo\n"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidContent)
}

func TestParseSiteRejectsEmpty(t *testing.T) {
	_, err := ParseSite(nil)

	assert.ErrorIs(t, err, ErrInvalidContent)
}

func TestValidate(t *testing.T) {
	valid := func() *models.Site {
		site, err := ParseSite([]byte(minimalSite))
		require.NoError(t, err)
		return site
	}

	tests := []struct {
		name    string
		mutate  func(*models.Site)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*models.Site) {},
		},
		{
			name: "duplicate title in one list",
			mutate: func(s *models.Site) {
				s.Projects = append(s.Projects, s.Projects[1])
			},
			wantErr: `title "Y" already used by projects[1]`,
		},
		{
			name: "duplicate id in one list",
			mutate: func(s *models.Site) {
				s.Projects[0].ID = "same"
				s.Projects[1].ID = "same"
			},
			wantErr: `id "same" already used by projects[0]`,
		},
		{
			name: "missing title",
			mutate: func(s *models.Site) {
				s.Projects[1].Title = ""
			},
			wantErr: "projects[1]: title is required",
		},
		{
			name: "javascript link",
			mutate: func(s *models.Site) {
				s.Projects[1].Link = "javascript:alert(1)"
			},
			wantErr: "scheme must be http, https or mailto",
		},
		{
			name: "link without host",
			mutate: func(s *models.Site) {
				s.Projects[1].Link = "https:///path"
			},
			wantErr: "has no host",
		},
		{
			name: "non-ascii link",
			mutate: func(s *models.Site) {
				s.Projects[1].Link = "https://example.com/café"
			},
			wantErr: "must be percent-encoded",
		},
		{
			name: "link with space",
			mutate: func(s *models.Site) {
				s.Projects[1].Link = "https://example.com/a?q=a b"
			},
			wantErr: "must be percent-encoded",
		},
		{
			name: "link with parentheses",
			mutate: func(s *models.Site) {
				s.Featured[0].Link = "https://en.wikipedia.org/wiki/Go_(language)"
			},
			wantErr: "featured[0].link",
		},
		{
			name: "encoded link",
			mutate: func(s *models.Site) {
				s.Projects[1].Link = "https://example.com/caf%C3%A9?q=a+b&r=%20#top"
			},
		},
		{
			name: "featured title reused under an id",
			mutate: func(s *models.Site) {
				s.Featured[0].ID = "x-featured"
			},
		},
		{
			name: "bad badge color",
			mutate: func(s *models.Site) {
				s.Projects[1].Badges[0].Color = "red;background:url(x)"
			},
			wantErr: "projects[1].badges[0]: invalid color",
		},
		{
			name: "too many columns",
			mutate: func(s *models.Site) {
				s.Layout.ProjectColumns = 7
			},
			wantErr: "layout.project_columns must be between 1 and 6",
		},
		{
			name: "negative columns",
			mutate: func(s *models.Site) {
				s.Layout.FeaturedColumns = -1
			},
			wantErr: "layout.featured_columns",
		},
		{
			name: "title edited in one list only",
			mutate: func(s *models.Site) {
				s.Projects[0].Title = "x"
			},
			wantErr: `share the identifier "x"`,
		},
		{
			name: "bad email",
			mutate: func(s *models.Site) {
				s.Sidebar.Email = "not-an-email"
			},
			wantErr: "sidebar.email",
		},
		{
			name: "bad sidebar link",
			mutate: func(s *models.Site) {
				s.Sidebar.Links = append(s.Sidebar.Links, "ftp://example.com")
			},
			wantErr: "sidebar.links[1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			site := valid()
			tt.mutate(site)

			err := Validate(site)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidContent)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	site := &models.Site{
		Projects: []models.Project{
			{Title: "", Description: "", Link: ""},
		},
	}

	err := Validate(site)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")
	assert.Contains(t, err.Error(), "description is required")
	assert.Contains(t, err.Error(), "link is required")
}

func TestLoadSiteMissingFile(t *testing.T) {
	_, err := LoadSite(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadFallsBackToDefault(t *testing.T) {
	t.Setenv("DATA_PATH", t.TempDir())
	t.Setenv("CONTENT_FILE", "")
	t.Setenv("SERVER_ADDR", "")
	t.Setenv("RATE_LIMIT_RPM", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Empty(t, cfg.ContentFile)
	assert.Equal(t, 600, cfg.RateLimitRPM)
	assert.Len(t, cfg.Site.Featured, 2)
}

func TestLoadFromContentFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalSite), 0o644))

	t.Setenv("DATA_PATH", dir)
	t.Setenv("CONTENT_FILE", "")
	t.Setenv("SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("RATE_LIMIT_RPM", "30")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.ServerAddr)
	assert.Equal(t, path, cfg.ContentFile)
	assert.Equal(t, filepath.Join(dir, "assets"), cfg.AssetsDir)
	assert.Equal(t, 30, cfg.RateLimitRPM)
	assert.Equal(t, "Portfolio", cfg.Site.Page.Title)
}

func TestLoadRejectsInvalidContent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "site.yaml"), []byte("projects:\n  - title: only\n"), 0o644))
	t.Setenv("DATA_PATH", dir)
	t.Setenv("CONTENT_FILE", "")

	_, err := Load()

	assert.ErrorIs(t, err, ErrInvalidContent)
}

func TestLoadRejectsBadRateLimit(t *testing.T) {
	t.Setenv("DATA_PATH", t.TempDir())
	t.Setenv("RATE_LIMIT_RPM", "lots")

	_, err := Load()

	assert.ErrorContains(t, err, "RATE_LIMIT_RPM")
}
