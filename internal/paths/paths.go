package paths

import (
	"os"
	"path/filepath"
)

const (
	AppDirName      = "genicons"
	SourceFileName  = "snapdeck_logo.png"
	OutDirName      = "icons"
	HistoryFileName = "history.db"
	DirPerm         = 0755
	FilePerm        = 0644
)

// Source returns the fixed source logo path under root.
func Source(root string) string {
	return filepath.Join(root, SourceFileName)
}

// OutDir returns the fixed output directory under root.
func OutDir(root string) string {
	return filepath.Join(root, OutDirName)
}

// Rel returns target relative to root using forward slashes. If target
// is not under root it is returned unchanged.
func Rel(root, target string) string {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return filepath.ToSlash(target)
	}
	return filepath.ToSlash(rel)
}

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. The parent directory is created if needed.
func AtomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// DataDir returns the platform-specific data directory for genicons:
//   - Windows: %APPDATA%\genicons
//   - Unix:    ~/.config/genicons
//
// Falls back to os.TempDir()/genicons if neither is available.
func DataDir() string {
	if appdata := os.Getenv("APPDATA"); appdata != "" {
		return filepath.Join(appdata, AppDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), AppDirName)
	}
	return filepath.Join(home, ".config", AppDirName)
}

// HistoryPath returns the location of the run history database.
func HistoryPath() string {
	return filepath.Join(DataDir(), HistoryFileName)
}
