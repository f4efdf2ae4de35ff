package sources

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Package sources contains the wiki source registry (YAML/JSON) helpers.
// A source names the set of Wikidot base URLs whose articles a run retrieves.

type Source struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	BaseURLs []string `json:"base_urls" yaml:"base_urls"`
}

// Registry is the set of configured sources, indexed by id.
type Registry struct {
	sources []Source
	byID    map[string]Source
}

type registryFile struct {
	Sources []Source `json:"sources" yaml:"sources"`
}

// LoadRegistry loads the source registry from a YAML or JSON file.
func LoadRegistry(path string) (*Registry, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sources file path is empty")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources file: %w", err)
	}

	reg, err := parseRegistry(raw, filepath.Ext(path))
	if err != nil {
		return nil, err
	}

	if len(reg.Sources) == 0 {
		return nil, errors.New("sources file contains no source entries")
	}

	byID := make(map[string]Source, len(reg.Sources))
	for i := range reg.Sources {
		s := sanitizeSource(reg.Sources[i])
		if err := validateSource(s); err != nil {
			return nil, fmt.Errorf("source[%d]: %w", i, err)
		}
		if _, exists := byID[s.ID]; exists {
			return nil, fmt.Errorf("duplicate source id %q", s.ID)
		}
		reg.Sources[i] = s
		byID[s.ID] = s
	}

	return &Registry{sources: reg.Sources, byID: byID}, nil
}

func parseRegistry(data []byte, ext string) (registryFile, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))

	decoders := []struct {
		name string
		ext  string
		fn   func([]byte, any) error
	}{
		{name: "yaml", ext: ".yaml", fn: func(b []byte, v any) error { return yaml.Unmarshal(b, v) }},
		{name: "yaml", ext: ".yml", fn: func(b []byte, v any) error { return yaml.Unmarshal(b, v) }},
		{name: "json", ext: ".json", fn: json.Unmarshal},
	}

	for _, d := range decoders {
		if ext != "" && ext != d.ext {
			continue
		}
		var reg registryFile
		if err := d.fn(data, &reg); err != nil {
			return registryFile{}, fmt.Errorf("decode %s sources: %w", d.name, err)
		}
		return reg, nil
	}

	return registryFile{}, errors.New("sources file format not recognized (expected YAML or JSON)")
}

func sanitizeSource(s Source) Source {
	s.ID = strings.TrimSpace(s.ID)
	s.Name = strings.TrimSpace(s.Name)

	urls := make([]string, 0, len(s.BaseURLs))
	for _, u := range s.BaseURLs {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}
	s.BaseURLs = urls

	return s
}

func validateSource(s Source) error {
	if s.ID == "" {
		return errors.New("id is required")
	}
	if s.Name == "" {
		return fmt.Errorf("name is required for source %q", s.ID)
	}
	if len(s.BaseURLs) == 0 {
		return fmt.Errorf("base_urls is required for source %q", s.ID)
	}
	return nil
}

// All returns a copy of the loaded sources.
func (r *Registry) All() []Source {
	if r == nil || len(r.sources) == 0 {
		return nil
	}
	out := make([]Source, len(r.sources))
	copy(out, r.sources)
	return out
}

// ByID returns the source entry for the given id, if loaded.
func (r *Registry) ByID(id string) (Source, bool) {
	if r == nil || r.byID == nil {
		return Source{}, false
	}
	s, ok := r.byID[strings.TrimSpace(id)]
	return s, ok
}
