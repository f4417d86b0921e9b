package surface

import (
	"errors"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// writeLibrary lays out a texture root with n complete numbered sets.
func writeLibrary(t *testing.T, n int) string {
	t.Helper()
	root := t.TempDir()
	for i := 1; i <= n; i++ {
		dir := filepath.Join(root, strconv.Itoa(i))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		for _, name := range []string{colorFile, normalFile, roughnessFile, displacementFile, crossSectionFile} {
			if err := os.WriteFile(filepath.Join(dir, name), []byte("img"), 0o644); err != nil {
				t.Fatal(err)
			}
		}
	}
	return root
}

func TestScanLibrary(t *testing.T) {
	root := writeLibrary(t, 6)

	lib, err := ScanLibrary(root)
	if err != nil {
		t.Fatalf("ScanLibrary() error = %v", err)
	}
	if len(lib.Sets) != 6 {
		t.Fatalf("got %d sets, want 6", len(lib.Sets))
	}
	for i, set := range lib.Sets {
		if want := strconv.Itoa(i + 1); set.Name != want {
			t.Errorf("set %d name = %q, want %q", i, set.Name, want)
		}
		if !strings.HasSuffix(set.CrossSection, crossSectionFile) {
			t.Errorf("set %d cross-section = %q", i, set.CrossSection)
		}
		if _, err := os.Stat(set.Color); err != nil {
			t.Errorf("set %d color map unreadable: %v", i, err)
		}
	}
}

func TestScanLibrary_IgnoresStrayEntries(t *testing.T) {
	root := writeLibrary(t, 2)
	if err := os.MkdirAll(filepath.Join(root, "preview_renders"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "README.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	lib, err := ScanLibrary(root)
	if err != nil {
		t.Fatalf("ScanLibrary() error = %v", err)
	}
	if len(lib.Sets) != 2 {
		t.Errorf("got %d sets, want 2", len(lib.Sets))
	}
}

func TestScanLibrary_MissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "absent")

	_, err := ScanLibrary(root)
	var rerr *ExternalResourceError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected *ExternalResourceError, got %v", err)
	}
	if rerr.Path != root {
		t.Errorf("Path = %q, want %q", rerr.Path, root)
	}
}

func TestScanLibrary_EmptyRoot(t *testing.T) {
	_, err := ScanLibrary(t.TempDir())
	if !errors.Is(err, ErrNoTextureSets) {
		t.Fatalf("expected ErrNoTextureSets, got %v", err)
	}
}

func TestScanLibrary_IncompleteSet(t *testing.T) {
	root := writeLibrary(t, 3)
	missing := filepath.Join(root, "2", normalFile)
	if err := os.Remove(missing); err != nil {
		t.Fatal(err)
	}

	_, err := ScanLibrary(root)
	var rerr *ExternalResourceError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected *ExternalResourceError, got %v", err)
	}
	if rerr.Path != missing {
		t.Errorf("Path = %q, want %q", rerr.Path, missing)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error should wrap fs.ErrNotExist, got %v", err)
	}
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		in      string
		want    Selection
		wantErr bool
	}{
		{"random", Selection{Random: true}, false},
		{"1", Selection{Index: 1}, false},
		{"6", Selection{Index: 6}, false},
		{"0", Selection{}, true},
		{"-2", Selection{}, true},
		{"bark", Selection{}, true},
		{"", Selection{}, true},
	}

	for _, tt := range tests {
		got, err := ParseSelection(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrBadSelector) {
				t.Errorf("ParseSelection(%q) error = %v, want ErrBadSelector", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSelection(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSelection(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestSelection_ResolveExplicit(t *testing.T) {
	lib, err := ScanLibrary(writeLibrary(t, 6))
	if err != nil {
		t.Fatal(err)
	}

	set, err := Selection{Index: 3}.Resolve(lib, nil)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if set.Name != "3" {
		t.Errorf("set name = %q, want %q", set.Name, "3")
	}
}

func TestSelection_ResolveExplicitOutOfRange(t *testing.T) {
	lib, err := ScanLibrary(writeLibrary(t, 6))
	if err != nil {
		t.Fatal(err)
	}

	_, err = Selection{Index: 9}.Resolve(lib, nil)
	var rerr *ExternalResourceError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected *ExternalResourceError, got %v", err)
	}
}

func TestSelection_ResolveRandom(t *testing.T) {
	lib, err := ScanLibrary(writeLibrary(t, 4))
	if err != nil {
		t.Fatal(err)
	}

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 20; i++ {
		set, err := Selection{Random: true}.Resolve(lib, rng)
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		n, err := strconv.Atoi(set.Name)
		if err != nil || n < 1 || n > 4 {
			t.Fatalf("random pick %q is not a library set", set.Name)
		}
	}
}

func TestSelection_ResolveRandomRepeatable(t *testing.T) {
	lib, err := ScanLibrary(writeLibrary(t, 6))
	if err != nil {
		t.Fatal(err)
	}

	a, _ := Selection{Random: true}.Resolve(lib, rand.New(rand.NewSource(5)))
	b, _ := Selection{Random: true}.Resolve(lib, rand.New(rand.NewSource(5)))
	if a.Name != b.Name {
		t.Errorf("same source picked %q then %q", a.Name, b.Name)
	}
}
