package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// UnifiedFileName is the master catalog produced by the unifier.
const UnifiedFileName = "influencers.json"

// FileStore reads and writes catalog JSON files under one directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir. The directory is created
// lazily on the first save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Path returns the absolute location of a catalog file.
func (s *FileStore) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Load reads a catalog file. A missing file is not an error; it returns
// nil so first runs start from an empty catalog.
func (s *FileStore) Load(name string) (*Catalog, error) {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read catalog %s: %w", name, err)
	}
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", name, err)
	}
	return &c, nil
}

// ReadRaw returns the persisted bytes of a catalog file, for consumers
// that mirror the file verbatim. A missing file is an error here.
func (s *FileStore) ReadRaw(name string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", name, err)
	}
	return data, nil
}

// LoadIndex reads a catalog file into a mapping keyed by identity key.
// A missing file yields an empty map.
func (s *FileStore) LoadIndex(name string) (map[string]Influencer, error) {
	c, err := s.Load(name)
	if err != nil {
		return nil, err
	}
	index := make(map[string]Influencer)
	if c == nil {
		return index, nil
	}
	for _, inf := range c.Influencers {
		index[inf.Key()] = inf
	}
	return index, nil
}

// Save persists a catalog atomically: the JSON is written to a temp file
// in the same directory and renamed into place, so a crash mid-write
// leaves any previous file intact.
func (s *FileStore) Save(name string, c *Catalog) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create catalog dir: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp catalog: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp catalog: %w", err)
	}
	if err := os.Rename(tmpName, s.Path(name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace catalog %s: %w", name, err)
	}
	return nil
}
