package normalizer

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/mydehq/gcdir/internal/types"
	"github.com/spf13/afero"
)

// writeImage creates a fake disc image whose header starts with id
func writeImage(t *testing.T, path, id string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	data := append([]byte(id), []byte("\x00\x00rest-of-disc")...)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

// tree lists every path under root, relative and slash-separated, sorted
func tree(t *testing.T, root string) []string {
	t.Helper()
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, _ := filepath.Rel(root, path)
		if d.IsDir() {
			rel += "/"
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		t.Fatalf("WalkDir: %v", err)
	}
	slices.Sort(paths)
	return paths
}

func assertTree(t *testing.T, root string, want []string) {
	t.Helper()
	got := tree(t, root)
	slices.Sort(want)
	if !slices.Equal(got, want) {
		t.Errorf("Tree mismatch:\nGot:  %q\nWant: %q", got, want)
	}
}

func readHeader(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	return string(data[:6])
}

// newOsNormalizer returns a Normalizer on the real filesystem and the slice its events land in
func newOsNormalizer() (*Normalizer, *[]types.Event) {
	var events []types.Event
	n := New(afero.NewOsFs(), WithEvents(func(e types.Event) {
		events = append(events, e)
	}))
	return n, &events
}

func opKinds(ops []Operation) []OpKind {
	kinds := make([]OpKind, len(ops))
	for i, op := range ops {
		kinds[i] = op.Kind
	}
	return kinds
}
