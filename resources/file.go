package resources

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Ensure File implements Resources
var _ Resources = (*File)(nil)

// Bundle is the on-disk layout of a resource file:
//
//	packages:
//	  com.example.app:
//	    string:
//	      mapzen_api_key: mapzen-XXXXXXX
type Bundle struct {
	Packages map[string]map[string]map[string]string `yaml:"packages" json:"packages"`
}

// File serves resources from a YAML bundle on disk.
type File struct {
	path   string
	mu     sync.RWMutex
	bundle Bundle
}

// LoadFile reads and parses the bundle at path
func LoadFile(path string) (*File, error) {
	f := &File{path: path}
	if err := f.Reload(); err != nil {
		return nil, err
	}
	return f, nil
}

// ParseBundle decodes a YAML resource bundle
func ParseBundle(data []byte) (Bundle, error) {
	var b Bundle
	if err := yaml.Unmarshal(data, &b); err != nil {
		return Bundle{}, fmt.Errorf("failed to parse resource bundle: %w", err)
	}
	return b, nil
}

// Reload re-reads the bundle from disk. On failure the previous
// contents are kept.
func (f *File) Reload() error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return fmt.Errorf("failed to read resource file: %w", err)
	}

	b, err := ParseBundle(data)
	if err != nil {
		return err
	}

	f.mu.Lock()
	f.bundle = b
	f.mu.Unlock()
	return nil
}

// Path returns the file the bundle was loaded from
func (f *File) Path() string {
	return f.path
}

func (f *File) Lookup(name, resType, pkg string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	types, ok := f.bundle.Packages[pkg]
	if !ok {
		return "", false
	}
	values, ok := types[resType]
	if !ok {
		return "", false
	}
	v, ok := values[name]
	return v, ok
}
