package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	xlog "showcase.dev/internal/log"
	"showcase.dev/internal/models"
)

const reloadDebounce = 500 * time.Millisecond

// Holder keeps the current site content and swaps it atomically on reload.
// A reload that fails to parse or validate leaves the current content in place.
type Holder struct {
	mu      sync.RWMutex
	current *models.Site
	version atomic.Uint64

	path     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	done     chan struct{}
	logger   zerolog.Logger

	// reloadMu serializes watcher reloads with shutdown; once stopped is set
	// no further reload starts.
	reloadMu sync.Mutex
	stopped  bool
}

// NewHolder creates a holder with initial content. path may be empty when the
// content did not come from a file.
func NewHolder(initial *models.Site, path string) *Holder {
	if path != "" {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}
	h := &Holder{
		current:  initial,
		path:     path,
		debounce: reloadDebounce,
		logger:   xlog.WithComponent("content"),
	}
	h.version.Store(1)
	return h
}

// Current returns the current content. Callers must not modify it.
func (h *Holder) Current() *models.Site {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Version increases every time new content is applied.
func (h *Holder) Version() uint64 {
	return h.version.Load()
}

// Reload re-reads the content file.
func (h *Holder) Reload(_ context.Context) error {
	if h.path == "" {
		return nil
	}
	h.logger.Info().Str("event", "content.reload_start").Str("path", h.path).Msg("reloading content")

	site, err := LoadSite(h.path)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("event", "content.reload_failed").
			Msg("keeping previous content")
		return fmt.Errorf("reload content: %w", err)
	}

	h.mu.Lock()
	old := h.current
	h.current = site
	v := h.version.Add(1)
	h.mu.Unlock()

	h.logger.Info().
		Str("event", "content.reload_success").
		Uint64("version", v).
		Int("featured_before", len(old.Featured)).
		Int("featured_after", len(site.Featured)).
		Int("projects_before", len(old.Projects)).
		Int("projects_after", len(site.Projects)).
		Msg("content reloaded")
	return nil
}

// StartWatcher reloads content whenever the file changes. It watches the
// parent directory so editors that replace the file by rename are seen too.
// A holder without a path is a no-op.
func (h *Holder) StartWatcher(ctx context.Context) error {
	if h.path == "" {
		h.logger.Info().
			Str("event", "content.watcher_disabled").
			Msg("no content file, serving embedded content")
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(h.path)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch content dir: %w", err)
	}

	h.watcher = watcher
	h.done = make(chan struct{})

	h.logger.Info().
		Str("event", "content.watcher_started").
		Str("path", h.path).
		Msg("watching content file for changes")

	go h.watchLoop(ctx)
	return nil
}

func (h *Holder) watchLoop(ctx context.Context) {
	defer close(h.done)

	target := filepath.Clean(h.path)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
		_ = h.watcher.Close()

		// waits for a reload already started by a fired timer
		h.reloadMu.Lock()
		h.stopped = true
		h.reloadMu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			h.logger.Info().Str("event", "content.watcher_stopped").Msg("content watcher stopped")
			return

		case event, ok := <-h.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			h.logger.Debug().
				Str("event", "content.file_changed").
				Str("op", event.Op.String()).
				Msg("content file changed")

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(h.debounce, func() {
				h.reloadFromWatcher(ctx)
			})

		case err, ok := <-h.watcher.Errors:
			if !ok {
				return
			}
			h.logger.Error().
				Err(err).
				Str("event", "content.watcher_error").
				Msg("content watcher error")
		}
	}
}

func (h *Holder) reloadFromWatcher(ctx context.Context) {
	h.reloadMu.Lock()
	defer h.reloadMu.Unlock()
	if h.stopped || ctx.Err() != nil {
		return
	}
	_ = h.Reload(ctx)
}

// Stop closes the watcher and waits for its loop to exit. No reload runs
// once Stop has returned.
func (h *Holder) Stop() {
	if h.watcher == nil {
		return
	}
	_ = h.watcher.Close()
	<-h.done
}
