package feeding

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"puppy-growth/internal/dosage"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed static_guides.yaml
var defaultStaticGuides []byte

type staticFile struct {
	Guides []staticGuide `yaml:"guides"`
}

type staticGuide struct {
	Name    string                     `yaml:"name"`
	Brand   string                     `yaml:"brand"`
	Notes   string                     `yaml:"notes"`
	Entries []dosage.FeedingGuideEntry `yaml:"entries"`
}

// StaticGuideID es estable por nombre, así re-sembrar no duplica guías.
func StaticGuideID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("puppy-growth:static-guide:"+strings.TrimSpace(name))).String()
}

// ParseStaticGuides lee guías en YAML y valida cada tabla.
func ParseStaticGuides(r io.Reader) ([]Guide, error) {
	var f staticFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode static guides: %w", err)
	}

	out := make([]Guide, 0, len(f.Guides))
	for _, g := range f.Guides {
		name := strings.TrimSpace(g.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: static guide without name", ErrInvalidInput)
		}
		if err := dosage.ValidateGuide(g.Entries); err != nil {
			return nil, fmt.Errorf("static guide %q: %w", name, err)
		}
		out = append(out, Guide{
			ID:      StaticGuideID(name),
			Name:    name,
			Brand:   strings.TrimSpace(g.Brand),
			Notes:   strings.TrimSpace(g.Notes),
			Source:  SourceStatic,
			Entries: g.Entries,
		})
	}
	return out, nil
}

// LoadStaticGuides usa path si viene; si no, las guías embebidas.
func LoadStaticGuides(path string) ([]Guide, error) {
	if strings.TrimSpace(path) == "" {
		return ParseStaticGuides(bytes.NewReader(defaultStaticGuides))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open static guides: %w", err)
	}
	defer f.Close()

	return ParseStaticGuides(f)
}
