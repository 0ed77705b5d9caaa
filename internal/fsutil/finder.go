// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindFilesByExtension returns the files under the given paths ending with
// extension. A path may be a single file or a directory, which is walked
// recursively. Missing paths are skipped. The result is sorted and free of
// duplicates so that later files override earlier ones deterministically.
func FindFilesByExtension(extension string, paths ...string) ([]string, error) {
	if extension == "" {
		return nil, errors.New("fsutil: extension must not be empty")
	}

	seen := make(map[string]struct{})
	var files []string
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		files = append(files, p)
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		if !info.IsDir() {
			if strings.HasSuffix(root, extension) {
				add(filepath.Clean(root))
			}
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}
