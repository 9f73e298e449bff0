package statefile

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"leitner/internal/domain"
	"leitner/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBoxes() *domain.BoxSet {
	boxes := domain.NewBoxSet()
	boxes.AddWord(domain.WordPair{Term: "cat", Translation: "gato"}, 0)
	boxes.AddWord(domain.WordPair{Term: "dog", Translation: "perro"}, 0)
	boxes.AddWord(domain.WordPair{Term: "cat", Translation: "gato"}, 3)
	boxes.AddWord(domain.WordPair{Term: "hello", Translation: "привет"}, 9)
	boxes.AddWord(domain.WordPair{Term: "a: b", Translation: "- quoted #"}, 9)
	return boxes
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		boxes *domain.BoxSet
	}{
		{name: "empty set", boxes: domain.NewBoxSet()},
		{name: "populated set", boxes: sampleBoxes()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, tt.boxes))

			decoded, err := Decode(&buf)

			require.NoError(t, err)
			assert.True(t, tt.boxes.Equal(decoded))
			for b := 0; b < domain.BoxCount; b++ {
				assert.Equal(t, tt.boxes.BoxContents(b), decoded.BoxContents(b), "box %d", b)
			}
		})
	}
}

func TestDecode_Truncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleBoxes()))
	data := buf.Bytes()

	// The last byte is the trailing newline; dropping it leaves a complete document.
	for cut := 0; cut < len(data)-1; cut++ {
		_, err := Decode(bytes.NewReader(data[:cut]))
		assert.ErrorIs(t, err, repository.ErrCorruptState, "cut at %d: %q", cut, data[:cut])
	}
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "not yaml",
			input: "\x00\x01{{{",
		},
		{
			name:  "wrong version",
			input: "version: 2\nboxes: [[], [], [], [], [], [], [], [], [], []]\ntotal: 0\n",
		},
		{
			name:  "too few boxes",
			input: "version: 1\nboxes: [[], []]\ntotal: 0\n",
		},
		{
			name:  "too many boxes",
			input: "version: 1\nboxes: [[], [], [], [], [], [], [], [], [], [], []]\ntotal: 0\n",
		},
		{
			name:  "empty translation",
			input: "version: 1\nboxes: [[{term: cat, translation: ''}], [], [], [], [], [], [], [], [], []]\ntotal: 1\n",
		},
		{
			name:  "unknown field",
			input: "version: 1\nboxes: [[{term: cat, translation: gato, box: 3}], [], [], [], [], [], [], [], [], []]\ntotal: 1\n",
		},
		{
			name:  "total mismatch",
			input: "version: 1\nboxes: [[{term: cat, translation: gato}], [], [], [], [], [], [], [], [], []]\ntotal: 2\n",
		},
		{
			name:  "missing total",
			input: "version: 1\nboxes: [[{term: cat, translation: gato}], [], [], [], [], [], [], [], [], []]\n",
		},
		{
			name:  "garbage after document",
			input: "version: 1\nboxes: [[], [], [], [], [], [], [], [], [], []]\ntotal: 0\n---\n{{{ garbage\n",
		},
		{
			name:  "second document",
			input: "version: 1\nboxes: [[], [], [], [], [], [], [], [], [], []]\ntotal: 0\n---\nversion: 1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			boxes, err := Decode(strings.NewReader(tt.input))

			assert.ErrorIs(t, err, repository.ErrCorruptState)
			assert.Nil(t, boxes)
		})
	}
}

func TestStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	store := NewStore(filepath.Join(t.TempDir(), "words.txt.state"))

	exists, err := store.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.Save(ctx, sampleBoxes()))

	exists, err = store.Exists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, sampleBoxes().Equal(loaded))

	// Saving again replaces the previous content
	require.NoError(t, store.Save(ctx, domain.NewBoxSet()))
	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.Len())

	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStore_LoadMissing(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.state"))

	boxes, err := store.Load(context.Background())

	assert.ErrorIs(t, err, repository.ErrStateNotFound)
	assert.Nil(t, boxes)
}

func TestStore_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt.state")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\nboxes:\n  - - term: cat\n"), 0o644))

	boxes, err := NewStore(path).Load(context.Background())

	assert.ErrorIs(t, err, repository.ErrCorruptState)
	assert.Nil(t, boxes)
}
