// Package persistence bridges the in-memory store to the external blob store.
// 書き戻しは非同期で、ミューテーション呼び出し側は完了を待たない
package persistence

import (
	"encoding/json"
	"errors"
	"sync"

	"keep-app/src/domain"
	"keep-app/src/idgen"
	"keep-app/src/storage"
	"keep-app/src/store"

	"github.com/sirupsen/logrus"
)

// Bridge observes store snapshots and serializes them into the blob store
type Bridge struct {
	blobs     storage.SnapshotStore
	logger    *logrus.Logger
	ch        chan store.Snapshot
	quit      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
}

// NewBridge creates the bridge and starts its single writer goroutine
func NewBridge(blobs storage.SnapshotStore, logger *logrus.Logger) *Bridge {
	b := &Bridge{
		blobs:   blobs,
		logger:  logger,
		ch:      make(chan store.Snapshot, 1),
		quit:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go b.writer()
	return b
}

// Load reads the initial collections from the blob store.
// 読み込み失敗は致命的エラーにせず、警告を出してフォールバックする
func (b *Bridge) Load() ([]domain.Note, []domain.Label) {
	return b.loadNotes(), b.loadLabels()
}

// Attach subscribes the bridge to the store's snapshot-changed events
func (b *Bridge) Attach(s *store.Store) {
	s.Subscribe(b.enqueue)
}

// Close flushes any pending snapshot and stops the writer
func (b *Bridge) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
		<-b.stopped
	})
}

func (b *Bridge) loadNotes() []domain.Note {
	data, err := b.blobs.Load(storage.NotesKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			b.logger.Info("保存されたノートがないため、デモノートで開始します")
		} else {
			b.logger.WithError(err).Warn("ノートの読み込みに失敗。デモノートで開始します")
		}
		return DemoNotes()
	}

	var notes []domain.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		b.logger.WithError(err).Warn("ノートのスナップショットが壊れています。デモノートで開始します")
		return DemoNotes()
	}

	// demoマーカー付きIDが既に含まれていれば再シードしない
	for _, n := range notes {
		if idgen.IsDemoID(n.ID) {
			return notes
		}
	}
	return append(notes, DemoNotes()...)
}

func (b *Bridge) loadLabels() []domain.Label {
	data, err := b.blobs.Load(storage.LabelsKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			b.logger.WithError(err).Warn("ラベルの読み込みに失敗。空のコレクションで開始します")
		}
		return []domain.Label{}
	}

	var labels []domain.Label
	if err := json.Unmarshal(data, &labels); err != nil {
		b.logger.WithError(err).Warn("ラベルのスナップショットが壊れています。空のコレクションで開始します")
		return []domain.Label{}
	}
	return labels
}

// enqueue hands the snapshot to the writer; 最新のスナップショットを優先する
func (b *Bridge) enqueue(snap store.Snapshot) {
	for {
		select {
		case b.ch <- snap:
			return
		default:
			select {
			case <-b.ch:
			default:
			}
		}
	}
}

func (b *Bridge) writer() {
	for {
		select {
		case snap := <-b.ch:
			b.save(snap)
		case <-b.quit:
			// 終了前に未書き込みのスナップショットをフラッシュ
			select {
			case snap := <-b.ch:
				b.save(snap)
			default:
			}
			close(b.stopped)
			return
		}
	}
}

func (b *Bridge) save(snap store.Snapshot) {
	if data, err := json.Marshal(snap.Notes); err != nil {
		b.logger.WithError(err).Error("ノートのシリアライズに失敗")
	} else if err := b.blobs.Save(storage.NotesKey, data); err != nil {
		b.logger.WithError(err).Warn("ノートの書き戻しに失敗")
	}

	if data, err := json.Marshal(snap.Labels); err != nil {
		b.logger.WithError(err).Error("ラベルのシリアライズに失敗")
	} else if err := b.blobs.Save(storage.LabelsKey, data); err != nil {
		b.logger.WithError(err).Warn("ラベルの書き戻しに失敗")
	}
}
