package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"showcase.dev/internal/models"
)

//go:embed default_site.yaml
var defaultSite []byte

// DefaultSite returns the content compiled into the binary
func DefaultSite() (*models.Site, error) {
	site, err := ParseSite(defaultSite)
	if err != nil {
		return nil, fmt.Errorf("embedded default site: %w", err)
	}
	return site, nil
}

// LoadSite reads a YAML content file, applies defaults and validates it.
// A missing file is reported with an error wrapping fs.ErrNotExist.
func LoadSite(path string) (*models.Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	site, err := ParseSite(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return site, nil
}

// ParseSite decodes YAML content, applies defaults and validates it.
// Unknown keys are rejected.
func ParseSite(data []byte) (*models.Site, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var site models.Site
	if err := dec.Decode(&site); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: content is empty", ErrInvalidContent)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidContent, err)
	}

	site = site.WithDefaults()
	if err := Validate(&site); err != nil {
		return nil, err
	}
	return &site, nil
}
