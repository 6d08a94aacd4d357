package domain

// Label represents a user-defined tag attachable to multiple notes.
// 名前の一意性は強制しない（呼び出し側の責務）
type Label struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
