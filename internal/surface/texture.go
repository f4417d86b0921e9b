// Package surface carries everything a downstream renderer needs to shade
// a generated log: the texture set library, material descriptions built
// from a shape parameter record, and the unwrap policy. It describes
// surfacing, it never computes shading.
package surface

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

// Files every texture set directory must hold.
const (
	colorFile        = "Color.jpg"
	normalFile       = "Normal.jpg"
	roughnessFile    = "Roughness.jpg"
	displacementFile = "Displacement.jpg"
	crossSectionFile = "CS.png"
)

// ErrNoTextureSets means the library root held no usable numbered sets.
var ErrNoTextureSets = errors.New("no texture sets found")

// ErrBadSelector means a texture selector was neither "random" nor a
// positive set number.
var ErrBadSelector = errors.New("bad texture selector")

// ExternalResourceError reports a texture file or output location that
// could not be used.
type ExternalResourceError struct {
	Path string
	Err  error
}

func (e *ExternalResourceError) Error() string {
	return fmt.Sprintf("external resource %s: %v", e.Path, e.Err)
}

func (e *ExternalResourceError) Unwrap() error {
	return e.Err
}

// TextureSet is one numbered directory of bark maps plus the cut-face
// image. Paths are absolute once scanned.
type TextureSet struct {
	Name         string
	Color        string
	Normal       string
	Roughness    string
	Displacement string
	CrossSection string
}

// Library is the scanned texture root.
type Library struct {
	Root string
	Sets []TextureSet
}

// ScanLibrary probes the texture root for numbered set directories and
// verifies every required file. Non-numeric entries are ignored. A missing
// root, an incomplete set or an empty library all fail with a
// *ExternalResourceError.
func ScanLibrary(root string) (*Library, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, &ExternalResourceError{Path: root, Err: err}
	}

	type numbered struct {
		n   int
		set TextureSet
	}
	var found []numbered
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		n, err := strconv.Atoi(entry.Name())
		if err != nil || n < 1 {
			continue
		}
		set, err := loadSet(filepath.Join(root, entry.Name()))
		if err != nil {
			return nil, err
		}
		found = append(found, numbered{n: n, set: set})
	}
	if len(found) == 0 {
		return nil, &ExternalResourceError{Path: root, Err: ErrNoTextureSets}
	}

	sort.Slice(found, func(i, j int) bool { return found[i].n < found[j].n })
	lib := &Library{Root: root, Sets: make([]TextureSet, len(found))}
	for i, f := range found {
		lib.Sets[i] = f.set
	}
	return lib, nil
}

// loadSet resolves one set directory, checking each file exists.
func loadSet(dir string) (TextureSet, error) {
	set := TextureSet{Name: filepath.Base(dir)}
	for _, bind := range []struct {
		file string
		dst  *string
	}{
		{colorFile, &set.Color},
		{normalFile, &set.Normal},
		{roughnessFile, &set.Roughness},
		{displacementFile, &set.Displacement},
		{crossSectionFile, &set.CrossSection},
	} {
		path := filepath.Join(dir, bind.file)
		if _, err := os.Stat(path); err != nil {
			return TextureSet{}, &ExternalResourceError{Path: path, Err: err}
		}
		*bind.dst = path
	}
	return set, nil
}

// Set returns the texture set with the given 1-based number.
func (l *Library) Set(n int) (TextureSet, error) {
	name := strconv.Itoa(n)
	for _, s := range l.Sets {
		if s.Name == name {
			return s, nil
		}
	}
	return TextureSet{}, &ExternalResourceError{
		Path: filepath.Join(l.Root, name),
		Err:  fs.ErrNotExist,
	}
}

// Selection names which texture set a log wants, either a fixed set or a
// random draw.
type Selection struct {
	Random bool
	Index  int
}

// ParseSelection interprets a record's texture field.
func ParseSelection(s string) (Selection, error) {
	if s == "random" {
		return Selection{Random: true}, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return Selection{}, fmt.Errorf("%w: %q", ErrBadSelector, s)
	}
	return Selection{Index: n}, nil
}

// Resolve picks the concrete texture set from the library. Random
// selections draw from rng and may differ run to run; explicit ones must
// name a scanned set. A nil rng draws from the shared source.
func (s Selection) Resolve(lib *Library, rng *rand.Rand) (TextureSet, error) {
	if !s.Random {
		return lib.Set(s.Index)
	}
	if rng == nil {
		return lib.Sets[rand.Intn(len(lib.Sets))], nil
	}
	return lib.Sets[rng.Intn(len(lib.Sets))], nil
}
