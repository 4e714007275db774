package cmd

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// enumerateSwiftFiles walks the tree and returns all *.swift files, skipping
// hidden directories; in particular .git and .build. WalkDir is in lexical
// order per its docs, so the output is stable.
func enumerateSwiftFiles(fsys fs.FS) ([]string, error) {
	var files []string
	err := fs.WalkDir(fsys, ".",
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if strings.HasPrefix(path, ".") && path != "." || strings.Contains(path, "/.") {
				if d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() || filepath.Ext(path) != ".swift" {
				return nil
			}
			files = append(files, path)
			return nil
		})
	return files, err
}

// resolveTargets turns command arguments into the list of files to process;
// no arguments means every Swift file under the --directory tree.
func resolveTargets(args []string) ([]string, error) {
	if len(args) != 0 {
		return args, nil
	}
	files, err := enumerateSwiftFiles(os.DirFS(directory))
	if err != nil {
		return nil, err
	}
	joined := make([]string, 0, len(files))
	for _, f := range files {
		joined = append(joined, filepath.Join(directory, f))
	}
	return joined, nil
}
