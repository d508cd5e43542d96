package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/learnhub/internal/domain/catalog"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type file struct {
	Subjects []catalog.Subject `yaml:"subjects"`
}

// Default returns the built-in catalog.
func Default() ([]catalog.Subject, error) {
	return Parse(bytes.NewReader(defaultCatalog))
}

// Load reads a catalog seed from path, or the built-in one when path is empty.
func Load(path string) ([]catalog.Subject, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog seed: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a seed document and checks it: names unique and non-empty,
// levels known.
func Parse(r io.Reader) ([]catalog.Subject, error) {
	var doc file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog seed: %w", err)
	}
	seen := make(map[string]struct{}, len(doc.Subjects))
	for i := range doc.Subjects {
		s := &doc.Subjects[i]
		s.Name = strings.TrimSpace(s.Name)
		if s.Name == "" {
			return nil, fmt.Errorf("catalog seed: subject %d has no name", i)
		}
		if _, dup := seen[s.Name]; dup {
			return nil, fmt.Errorf("catalog seed: duplicate subject %q", s.Name)
		}
		seen[s.Name] = struct{}{}
		for j, l := range s.Levels {
			lv, ok := catalog.ParseLevel(string(l))
			if !ok {
				return nil, fmt.Errorf("catalog seed: subject %q has unknown level %q", s.Name, l)
			}
			s.Levels[j] = lv
		}
	}
	return doc.Subjects, nil
}
