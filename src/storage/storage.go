package storage

import "errors"

// 外部ストアに保存されるブロブのキー
const (
	NotesKey  = "keep-notes"
	LabelsKey = "keep-labels"
)

// ErrNotFound 指定キーのブロブが存在しない
var ErrNotFound = errors.New("snapshot not found")

// SnapshotStore is the external key-value blob store the core persists into.
// ブロブの中身はコアにとって不透明で、そのまま往復させる
type SnapshotStore interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}
