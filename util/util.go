package util

import (
	"io/fs"
	"path/filepath"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// GatherAllMidiPaths walks path for .mid/.midi files, stopping at maxNum
// when it is not 0.
func GatherAllMidiPaths(path string, maxNum int) ([]string, error) {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			lower := strings.ToLower(s)
			if strings.HasSuffix(lower, ".mid") || strings.HasSuffix(lower, ".midi") {
				if maxNum == 0 || len(res) < maxNum {
					res = append(res, s)
				}
			}
		}
		return nil
	}
	if err := filepath.WalkDir(path, walk); err != nil {
		return nil, err
	}
	return res, nil
}

// GetKeys returns the keys of m in ascending order.
func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Unique keeps the first occurrence of every value, in order.
func Unique[A comparable](values []A) []A {
	seen := make(map[A]bool, len(values))
	res := make([]A, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		res = append(res, v)
	}
	return res
}
