package model

type NoteType string

const (
	NoteText  NoteType = "text"
	NoteVideo NoteType = "video"
)

// NoteScopeKind 笔记归属：话题页或论文工作台，两个独立作用域互不共享
type NoteScopeKind string

const (
	ScopeTopic    NoteScopeKind = "topic"
	ScopeResearch NoteScopeKind = "research"
)

// NoteScope 标识一条笔记挂在哪个上下文
type NoteScope struct {
	Kind  NoteScopeKind
	RefID string
}

func (s NoteScope) Key() string {
	return string(s.Kind) + ":" + s.RefID
}

// swagger:model Note
type Note struct {
	UUIDBase
	ScopeKey string   `gorm:"size:191;index" json:"-"`
	Content  string   `gorm:"type:text" json:"content"`
	Type     NoteType `gorm:"type:enum('text','video');default:'text'" json:"type"`
	VideoID  string   `gorm:"size:20" json:"videoId,omitempty"`
}

func (Note) TableName() string {
	return "notes"
}
