package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFixedLocations(t *testing.T) {
	root := filepath.Join("proj", "root")
	if got, want := Source(root), filepath.Join(root, "snapdeck_logo.png"); got != want {
		t.Errorf("Source(%q) = %q, want %q", root, got, want)
	}
	if got, want := OutDir(root), filepath.Join(root, "icons"); got != want {
		t.Errorf("OutDir(%q) = %q, want %q", root, got, want)
	}
}

func TestRel(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "proj")
	tests := []struct {
		target, want string
	}{
		{filepath.Join(root, "icons", "icon-192.png"), "icons/icon-192.png"},
		{filepath.Join(root, "snapdeck_logo.png"), "snapdeck_logo.png"},
		{root, "."},
	}
	for _, tt := range tests {
		if got := Rel(root, tt.target); got != tt.want {
			t.Errorf("Rel(%q, %q) = %q, want %q", root, tt.target, got, tt.want)
		}
	}
}

func TestAtomicWriteCreatesParentAndOverwrites(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a", "b", "out.png")

	if err := AtomicWrite(p, []byte("first")); err != nil {
		t.Fatal(err)
	}
	if err := AtomicWrite(p, []byte("second")); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want %q", data, "second")
	}
	if _, err := os.Stat(p + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind: %v", err)
	}
}

func TestDataDirUsesAPPDATA(t *testing.T) {
	orig := os.Getenv("APPDATA")
	t.Cleanup(func() { os.Setenv("APPDATA", orig) })

	os.Setenv("APPDATA", "/fake/appdata")
	got := DataDir()
	want := filepath.Join("/fake/appdata", AppDirName)
	if got != want {
		t.Errorf("DataDir() = %q, want %q", got, want)
	}
	if HistoryPath() != filepath.Join(want, HistoryFileName) {
		t.Errorf("HistoryPath() = %q", HistoryPath())
	}
}

func TestDataDirFallsBackWithoutAPPDATA(t *testing.T) {
	orig := os.Getenv("APPDATA")
	t.Cleanup(func() { os.Setenv("APPDATA", orig) })

	os.Unsetenv("APPDATA")
	got := DataDir()

	if filepath.Base(got) != AppDirName {
		t.Errorf("DataDir() = %q, expected base dir %q", got, AppDirName)
	}
}
