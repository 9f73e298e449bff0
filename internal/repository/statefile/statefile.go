// Package statefile stores the box set of a deck as a YAML document.
//
// The document lists the ten boxes in order and ends with the total pair
// count, so a file cut short anywhere fails to decode instead of yielding a
// partially filled box set.
package statefile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"leitner/internal/domain"
	"leitner/internal/repository"

	"gopkg.in/yaml.v3"
)

const formatVersion = 1

type document struct {
	Version int                 `yaml:"version"`
	Boxes   [][]domain.WordPair `yaml:"boxes"`
	Total   *int                `yaml:"total"`
}

// Encode writes the box set to w
func Encode(w io.Writer, boxes *domain.BoxSet) error {
	doc := document{
		Version: formatVersion,
		Boxes:   make([][]domain.WordPair, domain.BoxCount),
	}
	total := 0
	for b := 0; b < domain.BoxCount; b++ {
		doc.Boxes[b] = boxes.BoxContents(b)
		total += len(doc.Boxes[b])
	}
	doc.Total = &total

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("encode box state: %w", err)
	}
	return enc.Close()
}

// Decode reads a box set written by Encode.
// Any malformed input yields an error wrapping repository.ErrCorruptState.
func Decode(r io.Reader) (*domain.BoxSet, error) {
	var doc document

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", repository.ErrCorruptState)
		}
		return nil, fmt.Errorf("%w: %v", repository.ErrCorruptState, err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after the document", repository.ErrCorruptState)
	}

	if doc.Version != formatVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", repository.ErrCorruptState, doc.Version)
	}
	if len(doc.Boxes) != domain.BoxCount {
		return nil, fmt.Errorf("%w: expected %d boxes, got %d", repository.ErrCorruptState, domain.BoxCount, len(doc.Boxes))
	}
	if doc.Total == nil {
		return nil, fmt.Errorf("%w: missing total", repository.ErrCorruptState)
	}

	boxes := domain.NewBoxSet()
	for b, pairs := range doc.Boxes {
		for i, pair := range pairs {
			if !pair.Valid() {
				return nil, fmt.Errorf("%w: box %d entry %d has an empty field", repository.ErrCorruptState, b, i)
			}
			boxes.AddWord(pair, b)
		}
	}

	if boxes.Len() != *doc.Total {
		return nil, fmt.Errorf("%w: total %d does not match %d pairs", repository.ErrCorruptState, *doc.Total, boxes.Len())
	}

	return boxes, nil
}

// Store implements repository.StateRepository on a single file
type Store struct {
	path string
}

// NewStore creates a new file state store
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the state file location
func (s *Store) Path() string {
	return s.path
}

// Exists checks whether the state file is present
func (s *Store) Exists(_ context.Context) (bool, error) {
	_, err := os.Stat(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Load reads the box set from the state file
func (s *Store) Load(_ context.Context) (*domain.BoxSet, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", repository.ErrStateNotFound, s.path)
	}
	if err != nil {
		return nil, fmt.Errorf("open state file: %w", err)
	}
	defer f.Close()

	boxes, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.path, err)
	}
	return boxes, nil
}

// Save replaces the state file. The new content is written to a temporary
// file in the same directory and renamed over the old one.
func (s *Store) Save(_ context.Context, boxes *domain.BoxSet) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, boxes); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp state file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}
