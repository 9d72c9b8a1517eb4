package vectorize

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMapStoreTypes(t *testing.T) {
	s := NewMapStore(map[string]any{
		"int":   3,
		"int64": int64(4),
		"float": 0.5,
		"bool":  true,
	})
	if v, ok := s.TryGetInt("int64"); !ok || v != 4 {
		t.Errorf("TryGetInt(int64) = %v, %t", v, ok)
	}
	if v, ok := s.TryGetFloat("int"); !ok || v != 3 {
		t.Errorf("TryGetFloat(int) = %v, %t", v, ok)
	}
	if _, ok := s.TryGetInt("float"); ok {
		t.Error("TryGetInt accepted a float")
	}
	if _, ok := s.TryGetBool("int"); ok {
		t.Error("TryGetBool accepted an int")
	}
	if _, ok := s.TryGetFloat("missing"); ok {
		t.Error("TryGetFloat found a missing key")
	}
	if _, ok := s.TryGetInt("bool"); ok || !s.Has("bool") {
		t.Error("wrong-typed key reported as absent")
	}
	if s.Has("missing") {
		t.Error("Has found a missing key")
	}
	s.Delete("bool")
	diff(t, []string{"float", "int", "int64"}, s.Keys())
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "settings.toml")

	fs, err := OpenFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if keys := fs.Keys(); len(keys) != 0 {
		t.Fatalf("new store has keys %v", keys)
	}

	p := DefaultParams()
	p.SetTurdSize(12)
	p.SetAlphaMax(0.75)
	p.SetIncludeBorder(false)
	p.Save(fs)
	if err := fs.Flush(); err != nil {
		t.Fatal(err)
	}

	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if mode := fi.Mode().Perm(); mode != 0o600 {
		t.Errorf("got file mode %v, want %v", mode, os.FileMode(0o600))
	}

	fs2, err := OpenFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	q := DefaultParams()
	q.Load(fs2)
	if q != p {
		t.Errorf("got %v, want %v", q, p)
	}
}

func TestFileStoreHandEdited(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	const data = "Threshold = 1\nTurdSize = 5\nIncludeBorder = \"no\"\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	fs, err := OpenFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	p := DefaultParams()
	p.Load(fs)
	if p.Threshold() != 1 || p.TurdSize() != 5 || !p.IncludeBorder() {
		t.Errorf("got %v", p)
	}
}

func TestFileStoreMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := os.WriteFile(path, []byte("Threshold = = 1"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := OpenFileStore(path)
	if err == nil || !strings.Contains(err.Error(), path) {
		t.Errorf("got error %v, want one naming %s", err, path)
	}
}
