package tree

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.scnd.dev/open/rpcgen/package/span"
)

var ErrInvalidPath = errors.New("invalid root path")

func New(root string) (*Directory, error) {
	// * validate root
	info, err := os.Stat(root)
	if err != nil {
		return nil, span.NewError(nil, fmt.Sprintf("unable to access root %s", root), errors.Join(ErrInvalidPath, err))
	}
	if !info.IsDir() {
		return nil, span.NewError(nil, fmt.Sprintf("root %s is not a directory", root), ErrInvalidPath)
	}

	// * read root entries
	directory := &Directory{
		Path:        root,
		Directories: []*Directory{},
		Files:       []string{},
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, span.NewError(nil, fmt.Sprintf("unable to read root %s", root), err)
	}
	directory.expand(entries)

	return directory, nil
}

func (r *Directory) expand(entries []os.DirEntry) {
	for _, entry := range entries {
		path := filepath.Join(r.Path, entry.Name())

		// * follow symlinks, drop entries that cannot be resolved
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		if !info.IsDir() {
			r.Files = append(r.Files, path)
			continue
		}

		children, err := os.ReadDir(path)
		if err != nil {
			continue
		}
		child := &Directory{
			Path:        path,
			Directories: []*Directory{},
			Files:       []string{},
		}
		child.expand(children)
		r.Directories = append(r.Directories, child)
	}
}

// Walk visits every file depth-first, files of a directory before its subdirectories.
func (r *Directory) Walk(fn func(path string) error) error {
	for _, file := range r.Files {
		if err := fn(file); err != nil {
			return err
		}
	}
	for _, directory := range r.Directories {
		if err := directory.Walk(fn); err != nil {
			return err
		}
	}

	return nil
}

// Paths lists every directory of the tree, the root included.
func (r *Directory) Paths() []string {
	paths := []string{r.Path}
	for _, directory := range r.Directories {
		paths = append(paths, directory.Paths()...)
	}

	return paths
}
