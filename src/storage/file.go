package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// FileStore stores snapshot blobs as JSON files in a directory
type FileStore struct {
	dir    string
	logger *logrus.Logger
}

// NewFileStore creates a file-backed snapshot store
func NewFileStore(dir string, logger *logrus.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("データディレクトリの作成に失敗: %w", err)
	}
	return &FileStore{dir: dir, logger: logger}, nil
}

// Load reads the blob for the key; ErrNotFound when the file is missing
func (f *FileStore) Load(key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("スナップショットの読み込みに失敗: %w", err)
	}
	return data, nil
}

// Save writes the blob atomically (一時ファイルに書いてからrename)
func (f *FileStore) Save(key string, data []byte) error {
	path := f.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("スナップショットの書き込みに失敗: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("スナップショットの置き換えに失敗: %w", err)
	}
	f.logger.WithFields(logrus.Fields{
		"key":  key,
		"size": len(data),
	}).Debug("スナップショットを保存しました")
	return nil
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}
