package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"voiceover-app/internal/domain/audio"
)

// FileStore saves downloaded audio to a local directory (default ".").
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = "."
	}
	return &FileStore{Dir: dir}
}

// Save writes a to {dir}/{fileName} and returns the path. An existing file is overwritten.
func (fs *FileStore) Save(a *audio.Audio, fileName string) (string, error) {
	if a == nil {
		return "", errors.New("no audio to save")
	}
	if err := os.MkdirAll(fs.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(fs.Dir, fileName)
	if err := os.WriteFile(path, a.Data, 0o644); err != nil {
		return "", fmt.Errorf("write audio: %w", err)
	}
	return path, nil
}
