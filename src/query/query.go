// Package query derives filtered views from a note snapshot.
// 全関数は純粋関数で、毎回最新のスナップショットに対して再評価する
// （ミューテーションをまたいだキャッシュはしない）
package query

import (
	"strings"

	"keep-app/src/domain"
)

// Active returns notes that are neither archived nor trashed
func Active(notes []domain.Note) []domain.Note {
	out := []domain.Note{}
	for _, n := range notes {
		if !n.Archived && !n.Trashed {
			out = append(out, n)
		}
	}
	return out
}

// Archived returns archived notes that are not trashed
func Archived(notes []domain.Note) []domain.Note {
	out := []domain.Note{}
	for _, n := range notes {
		if n.Archived && !n.Trashed {
			out = append(out, n)
		}
	}
	return out
}

// Trashed returns trashed notes
func Trashed(notes []domain.Note) []domain.Note {
	out := []domain.Note{}
	for _, n := range notes {
		if n.Trashed {
			out = append(out, n)
		}
	}
	return out
}

// WithReminders returns reminder-bearing notes that are not trashed.
// アーカイブ済みでもリマインダーがあれば含める
func WithReminders(notes []domain.Note) []domain.Note {
	out := []domain.Note{}
	for _, n := range notes {
		if n.Reminder != nil && !n.Trashed {
			out = append(out, n)
		}
	}
	return out
}

// Search returns active notes whose title or content contains the query,
// case-insensitively. A blank query is identical to Active.
// チェックリストのテキストとラベル名は検索対象外
func Search(notes []domain.Note, q string) []domain.Note {
	if strings.TrimSpace(q) == "" {
		return Active(notes)
	}
	lower := strings.ToLower(q)
	out := []domain.Note{}
	for _, n := range Active(notes) {
		if strings.Contains(strings.ToLower(n.Title), lower) ||
			strings.Contains(strings.ToLower(n.Content), lower) {
			out = append(out, n)
		}
	}
	return out
}

// ByLabel returns active notes carrying the given label id.
// 存在しないラベルIDは単に何にもマッチしない
func ByLabel(notes []domain.Note, labelID string) []domain.Note {
	out := []domain.Note{}
	for _, n := range notes {
		if n.HasLabel(labelID) && !n.Archived && !n.Trashed {
			out = append(out, n)
		}
	}
	return out
}

// Partition splits notes into pinned and others, preserving order.
// 表示側のグルーピング規則
func Partition(notes []domain.Note) (pinned, others []domain.Note) {
	pinned = []domain.Note{}
	others = []domain.Note{}
	for _, n := range notes {
		if n.Pinned {
			pinned = append(pinned, n)
		} else {
			others = append(others, n)
		}
	}
	return pinned, others
}
