package catalog

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ImportDoc is the YAML document format for bulk import:
//
//	entries:
//	  - name: bakery
//	    expression: "Mo-Sa 07:00-13:00"
//	    note: closes early on market days
type ImportDoc struct {
	Entries []ImportEntry `yaml:"entries"`
}

// ImportEntry is one entry of an import document.
type ImportEntry struct {
	Name       string `yaml:"name"`
	Expression string `yaml:"expression"`
	Note       string `yaml:"note,omitempty"`
}

// ImportYAML reads an import document and adds every entry. The import is
// fail-fast: the first invalid entry stops it, leaving earlier entries in
// place. Returns the number of entries added.
func (s *Store) ImportYAML(r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("failed to read import document: %w", err)
	}

	var doc ImportDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return 0, fmt.Errorf("failed to parse import document: %w", err)
	}
	if len(doc.Entries) == 0 {
		return 0, fmt.Errorf("import document has no entries")
	}

	for i, entry := range doc.Entries {
		if entry.Name == "" {
			return i, fmt.Errorf("entry %d has no name", i)
		}
		if _, err := s.Add(entry.Name, entry.Expression, entry.Note); err != nil {
			return i, err
		}
	}
	s.log.Debugw("import finished", "entries", len(doc.Entries))
	return len(doc.Entries), nil
}
