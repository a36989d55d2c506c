package services

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"showcase.dev/internal/render"
)

var (
	pageRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "showcase_page_renders_total",
		Help: "Page render requests by result (rendered, cached, error)",
	}, []string{"result"})

	pageRenderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "showcase_page_render_duration_seconds",
		Help:    "Time spent executing the page template",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
	})
)

type versioned interface {
	Version() uint64
}

// PageService renders the portfolio page for the current content. The
// rendered document is reused until the content version changes.
type PageService struct {
	source   SiteSource
	renderer *render.Renderer

	mu      sync.Mutex
	version uint64
	cached  []byte
}

// NewPageService creates a new PageService
func NewPageService(source SiteSource, renderer *render.Renderer) *PageService {
	return &PageService{source: source, renderer: renderer}
}

// Render returns the full HTML document
func (s *PageService) Render() ([]byte, error) {
	var version uint64
	if v, ok := s.source.(versioned); ok {
		version = v.Version()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if version != 0 && version == s.version && s.cached != nil {
		pageRenders.WithLabelValues("cached").Inc()
		return s.cached, nil
	}

	start := time.Now()
	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, render.PageFromSite(s.source.Current())); err != nil {
		pageRenders.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("render page: %w", err)
	}
	pageRenderDuration.Observe(time.Since(start).Seconds())
	pageRenders.WithLabelValues("rendered").Inc()

	s.version = version
	s.cached = buf.Bytes()
	return s.cached, nil
}

// WriteTo renders the page into w
func (s *PageService) WriteTo(w io.Writer) (int64, error) {
	doc, err := s.Render()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(doc)
	return int64(n), err
}
