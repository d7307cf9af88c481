package catalog

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/load"
)

// LoadCUEDir seeds the catalog from a directory of CUE definition files.
// Definitions live under a top-level "catalog" struct, one field per
// entry:
//
//	catalog: {
//		bakery: {
//			expression: "Mo-Sa 07:00-13:00"
//			note:       "market days excluded"
//		}
//	}
//
// Like ImportYAML, loading is fail-fast and returns the number of entries
// added before any failure.
func (s *Store) LoadCUEDir(dir string) (int, error) {
	files, err := findCUEFiles(dir)
	if err != nil {
		return 0, err
	}
	if len(files) == 0 {
		return 0, fmt.Errorf("no CUE files found in %s", dir)
	}

	ctx := cuecontext.New()
	added := 0
	for _, inst := range load.Instances(files, &load.Config{Dir: dir}) {
		if inst.Err != nil {
			return added, fmt.Errorf("failed to load CUE files: %s", cueerrors.Details(inst.Err, nil))
		}
		v := ctx.BuildInstance(inst)
		if err := v.Err(); err != nil {
			return added, fmt.Errorf("failed to build CUE value: %s", cueerrors.Details(err, nil))
		}

		cat := v.LookupPath(cue.ParsePath("catalog"))
		if !cat.Exists() {
			return added, fmt.Errorf(`CUE files in %s define no top-level "catalog" struct`, dir)
		}

		fields, err := cat.Fields()
		if err != nil {
			return added, fmt.Errorf("catalog is not a struct: %w", err)
		}
		for fields.Next() {
			name := fields.Label()
			expr, err := fields.Value().LookupPath(cue.ParsePath("expression")).String()
			if err != nil {
				return added, fmt.Errorf("entry %q has no expression: %w", name, err)
			}
			note := ""
			if noteVal := fields.Value().LookupPath(cue.ParsePath("note")); noteVal.Exists() {
				if note, err = noteVal.String(); err != nil {
					return added, fmt.Errorf("entry %q has a non-string note: %w", name, err)
				}
			}
			if _, err := s.Add(name, expr, note); err != nil {
				return added, err
			}
			added++
		}
	}
	s.log.Debugw("CUE load finished", "dir", dir, "entries", added)
	return added, nil
}

func findCUEFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".cue") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	return files, nil
}
