package conformance

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Load reads every .yaml file below dir, in lexical path order.
func Load(fs afero.Fs, dir string) ([]Suite, error) {
	var paths []string
	err := afero.Walk(fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	sort.Strings(paths)

	suites := make([]Suite, 0, len(paths))
	for _, path := range paths {
		suite, err := LoadFile(fs, path)
		if err != nil {
			return nil, err
		}
		suites = append(suites, suite)
	}
	return suites, nil
}

// LoadFile reads a single case file. Unknown fields are rejected. A suite
// without a name is named after its file.
func LoadFile(fs afero.Fs, path string) (Suite, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Suite{}, fmt.Errorf("read %s: %w", path, err)
	}

	var suite Suite
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&suite); err != nil {
		return Suite{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if suite.Name == "" {
		base := filepath.Base(path)
		suite.Name = base[:len(base)-len(filepath.Ext(base))]
	}
	return suite, nil
}
