// Where: internal/infra/fileops/file_ops.go
// What: Shared filesystem operations for rendered build files.
// Why: Keep directory creation and overwrite behavior consistent across commands.
package fileops

import (
	"os"
	"path/filepath"
)

const (
	dirMode  os.FileMode = 0o755
	fileMode os.FileMode = 0o644
)

func EnsureDir(path string) error {
	return os.MkdirAll(path, dirMode)
}

// WriteFile writes content to path, creating parent directories and
// truncating an existing file. A directory at path is an error.
func WriteFile(path, content string) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), fileMode)
}

func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
