package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetKeysSorted(t *testing.T) {
	m := map[string]int{"b": 1, "c": 2, "a": 3}
	assert.Equal(t, []string{"a", "b", "c"}, GetKeys(m))
}

func TestUniqueKeepsFirstSeenOrder(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{"E", "G", "C"}, Unique([]string{"E", "G", "E", "C", "G"}))
	assert.Equal([]int{}, Unique([]int{}))
}

func TestGatherAllMidiPaths(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	for _, name := range []string{"a.mid", "b.MIDI", "c.txt", "sub/d.mid"} {
		path := filepath.Join(dir, name)
		assert.NoError(os.MkdirAll(filepath.Dir(path), 0o755))
		assert.NoError(os.WriteFile(path, []byte{}, 0o644))
	}

	paths, err := GatherAllMidiPaths(dir, 0)
	assert.NoError(err)
	assert.Len(paths, 3)

	paths, err = GatherAllMidiPaths(dir, 2)
	assert.NoError(err)
	assert.Len(paths, 2)

	_, err = GatherAllMidiPaths(filepath.Join(dir, "missing"), 0)
	assert.Error(err)
}
