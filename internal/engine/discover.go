package engine

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
)

// DefaultGlob matches the decoder's structured replay documents.
const DefaultGlob = "*.slp.json"

// discoverReplays walks folder recursively and returns every file whose
// base name matches the glob, sorted for a deterministic processing order.
// An unreadable folder is a corpus-level failure.
func discoverReplays(folder, glob string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(folder, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		matched, err := filepath.Match(glob, d.Name())
		if err != nil {
			return fmt.Errorf("bad replay glob %q: %w", glob, err)
		}
		if matched {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan folder %s: %w", folder, err)
	}
	sort.Strings(files)
	return files, nil
}
