package file

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestReadList(t *testing.T) {
	t.Parallel()

	p := filepath.Join(t.TempDir(), "manifest.txt")
	content := "# exports to validate\n\nexports/a.csv\n  exports/b.csv  \n# trailing comment\nexports/c.csv\n"
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	got, err := ReadList(p)
	if err != nil {
		t.Fatalf("ReadList error: %v", err)
	}
	want := []string{"exports/a.csv", "exports/b.csv", "exports/c.csv"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ReadList = %v, want %v", got, want)
	}
}

func TestReadList_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := ReadList(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected error for missing manifest, got nil")
	}
}
