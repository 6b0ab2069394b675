// Package models implements the domain model for the ledger backend: the
// category store and the transactions of the current session.
package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// DefaultCategory is the category every transaction starts out with. It
// always exists, holds no keywords and is never evaluated for matching.
const DefaultCategory = "Uncategorised"

// Category is a user-defined label with the keywords that match it.
type Category struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// CategoryStore is the ordered mapping from category names to their
// keywords. The order of the Categories slice is the insertion order, which
// is also the evaluation order of the categorization engine and the order
// the store is persisted in.
type CategoryStore struct {
	Categories []Category `json:"categories"`

	path string
}

// NewCategoryStore returns a store containing only the default category.
// The store persists to the file at path.
func NewCategoryStore(path string) *CategoryStore {
	return &CategoryStore{
		Categories: []Category{{Name: DefaultCategory, Keywords: []string{}}},
		path:       path,
	}
}

// NormalizeKeyword normalizes a keyword for storage and matching.
func NormalizeKeyword(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Load replaces the in-memory store with the persisted one. A store file
// that does not exist is not an error, the store keeps its default state.
// A store file that cannot be parsed is an error the caller has to handle.
func (s *CategoryStore) Load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("path", s.path).Msg("no persisted category store, starting with defaults")
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not read category store: %w", err)
	}

	var loaded CategoryStore
	if err := json.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("could not parse category store %s: %w", s.path, err)
	}

	s.Categories = loaded.Categories

	// The default category has to exist even if the file was edited by hand
	if _, ok := s.Get(DefaultCategory); !ok {
		s.Categories = append([]Category{{Name: DefaultCategory, Keywords: []string{}}}, s.Categories...)
	}

	return nil
}

// Get returns the category with the exact name.
func (s *CategoryStore) Get(name string) (*Category, bool) {
	for i := range s.Categories {
		if s.Categories[i].Name == name {
			return &s.Categories[i], true
		}
	}

	return nil, false
}

// Exists reports whether a category with the exact name exists. Name
// comparison is exact, a case or whitespace variant is a different category.
func (s *CategoryStore) Exists(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// Names returns the category names in insertion order.
func (s *CategoryStore) Names() []string {
	names := make([]string, 0, len(s.Categories))
	for _, category := range s.Categories {
		names = append(names, category.Name)
	}

	return names
}

// AddCategory appends a new category with an empty keyword set and persists
// the store. Adding a name that already exists is rejected without a
// persist.
func (s *CategoryStore) AddCategory(name string) error {
	if s.Exists(name) {
		return ErrCategoryExists
	}

	s.Categories = append(s.Categories, Category{Name: name, Keywords: []string{}})
	return s.Persist()
}

// AddKeyword normalizes the keyword and appends it to the category,
// persisting the store. Empty keywords, unknown categories and duplicate
// keywords are rejected without a persist.
func (s *CategoryStore) AddKeyword(name, keyword string) error {
	keyword = NormalizeKeyword(keyword)
	if keyword == "" {
		return ErrKeywordEmpty
	}

	category, ok := s.Get(name)
	if !ok {
		return ErrCategoryNotFound
	}

	for _, existing := range category.Keywords {
		if existing == keyword {
			return ErrKeywordExists
		}
	}

	category.Keywords = append(category.Keywords, keyword)
	return s.Persist()
}

// Persist writes the whole store to its file. The write goes to a temporary
// file first which is then renamed, so a crash mid-write does not corrupt
// the store for the next load.
func (s *CategoryStore) Persist() error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %s", ErrPersist, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".categories-*.json")
	if err != nil {
		return fmt.Errorf("%w: %s", ErrPersist, err)
	}

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Close()
	} else {
		tmp.Close()
	}
	if err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %s", ErrPersist, err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %s", ErrPersist, err)
	}

	return nil
}

// Check verifies that the store can be persisted to its location.
func (s *CategoryStore) Check() error {
	info, err := os.Stat(filepath.Dir(s.path))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrPersist, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrPersist, filepath.Dir(s.path))
	}

	return nil
}
