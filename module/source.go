package module

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spf13/afero"
)

// Source enumerates module descriptors in a directory.
type Source interface {
	List(ctx context.Context, dir string) ([]Descriptor, error)
}

type fsSource struct {
	fs  afero.Fs
	ext string
}

// NewSource creates a Source that lists files with extension ext directly
// under a directory of fs. Subdirectories, dot files and ext test files
// (fire_test.go for ".go") are skipped.
func NewSource(fs afero.Fs, ext string) Source {
	return &fsSource{fs: fs, ext: ext}
}

// List returns descriptors in the order the directory read yields them,
// which need not be sorted.
func (s *fsSource) List(_ context.Context, dir string) ([]Descriptor, error) {
	isDir, err := afero.IsDir(s.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDiscovery, dir, err)
	}
	if !isDir {
		return nil, fmt.Errorf("%w: %s: not a directory", ErrDiscovery, dir)
	}

	f, err := s.fs.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDiscovery, dir, err)
	}
	defer f.Close()

	infos, err := f.Readdir(-1)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDiscovery, dir, err)
	}

	var descriptors []Descriptor
	for _, info := range infos {
		name := info.Name()
		if !info.Mode().IsRegular() || strings.HasPrefix(name, ".") {
			continue
		}
		if !strings.HasSuffix(name, s.ext) || strings.HasSuffix(name, "_test"+s.ext) {
			continue
		}

		descriptors = append(descriptors, Descriptor{
			SourcePath: filepath.Join(dir, name),
			Name:       DeriveName(strings.TrimSuffix(name, s.ext)),
		})
	}

	return descriptors, nil
}

// DeriveName upper-cases the first rune of base and leaves the rest as is:
// "fire" becomes "Fire", "windSpirit" becomes "WindSpirit", and
// "wind_spirit" becomes "Wind_spirit". Module files must therefore be named
// after the catalog name with only the first letter lowered.
func DeriveName(base string) string {
	r, size := utf8.DecodeRuneInString(base)
	if r == utf8.RuneError {
		return base
	}
	return string(unicode.ToUpper(r)) + base[size:]
}
