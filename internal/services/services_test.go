package services

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"showcase.dev/internal/models"
	"showcase.dev/internal/render"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testSite() *models.Site {
	x := models.Project{Title: "Agentic RAG", Description: "rag", Link: "https://example.com/rag"}
	return &models.Site{
		Page:     models.PageMeta{Title: "Test Projects"},
		Featured: []models.Project{x},
		Projects: []models.Project{
			x,
			{ID: "pg", Title: "Pytorch Playground", Description: "pg", Link: "https://example.com/pg"},
			{Title: "Some Good News", Description: "news", Link: "https://example.com/news"},
		},
	}
}

// swappable is a SiteSource whose content and version can be changed
type swappable struct {
	site    *models.Site
	version uint64
}

func (s *swappable) Current() *models.Site { return s.site }
func (s *swappable) Version() uint64       { return s.version }

func TestProjectServiceGetAll(t *testing.T) {
	svc := NewProjectService(StaticSource{Site: testSite()})

	list := svc.GetAll()

	require.Len(t, list.Featured, 1)
	assert.Equal(t, "Agentic RAG", list.Featured[0].Title)
	var titles []string
	for _, p := range list.Projects {
		titles = append(titles, p.Title)
	}
	assert.Equal(t, []string{"Pytorch Playground", "Some Good News"}, titles)
}

func TestProjectServiceGetAllFeaturedIDOnly(t *testing.T) {
	site := testSite()
	site.Featured[0].ID = "rag"
	svc := NewProjectService(StaticSource{Site: site})

	list := svc.GetAll()

	for _, p := range list.Projects {
		assert.NotEqual(t, "Agentic RAG", p.Title)
	}
	assert.Len(t, list.Projects, 2)
}

func TestProjectServiceGetAllEmpty(t *testing.T) {
	svc := NewProjectService(StaticSource{Site: &models.Site{}})

	list := svc.GetAll()

	assert.NotNil(t, list.Featured)
	assert.NotNil(t, list.Projects)
	assert.Empty(t, list.Featured)
}

func TestProjectServiceGetByID(t *testing.T) {
	svc := NewProjectService(StaticSource{Site: testSite()})

	tests := []struct {
		id    string
		title string
	}{
		{id: "Agentic RAG", title: "Agentic RAG"},
		{id: "agentic-rag", title: "Agentic RAG"},
		{id: "pg", title: "Pytorch Playground"},
		{id: "some-good-news", title: "Some Good News"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			p, err := svc.GetByID(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.title, p.Title)
		})
	}
}

func TestProjectServiceGetByIDNotFound(t *testing.T) {
	svc := NewProjectService(StaticSource{Site: testSite()})

	_, err := svc.GetByID("missing")

	assert.True(t, errors.Is(err, ErrProjectNotFound))
}

func TestProjectServiceGetByIDReturnsCopy(t *testing.T) {
	site := testSite()
	svc := NewProjectService(StaticSource{Site: site})

	p, err := svc.GetByID("pg")
	require.NoError(t, err)
	p.Title = "changed"

	assert.Equal(t, "Pytorch Playground", site.Projects[1].Title)
}

func TestPageServiceRender(t *testing.T) {
	r, err := render.New()
	require.NoError(t, err)
	svc := NewPageService(StaticSource{Site: testSite()}, r)

	doc, err := svc.Render()
	require.NoError(t, err)

	out := string(doc)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Test Projects</title>")
	assert.Equal(t, 1, strings.Count(out, `id="project-agentic-rag"`))
	assert.Contains(t, out, `id="project-pg"`)
}

func TestPageServiceCachesByVersion(t *testing.T) {
	r, err := render.New()
	require.NoError(t, err)
	src := &swappable{site: testSite(), version: 1}
	svc := NewPageService(src, r)

	first, err := svc.Render()
	require.NoError(t, err)

	changed := testSite()
	changed.Page.Title = "Changed"
	src.site = changed

	cached, err := svc.Render()
	require.NoError(t, err)
	assert.Equal(t, first, cached, "same version serves the cached document")

	src.version = 2
	fresh, err := svc.Render()
	require.NoError(t, err)
	assert.Contains(t, string(fresh), "<title>Changed</title>")
}

func TestPageServiceWriteTo(t *testing.T) {
	r, err := render.New()
	require.NoError(t, err)
	svc := NewPageService(StaticSource{Site: testSite()}, r)

	var buf bytes.Buffer
	n, err := svc.WriteTo(&buf)

	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Contains(t, buf.String(), "View Project")
}
