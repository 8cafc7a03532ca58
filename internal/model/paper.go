package model

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Paper 研究论文条目。内置文献和用户个人上传共用一张表。
// swagger:model Paper
type Paper struct {
	ID         string          `gorm:"primaryKey;type:varchar(191)" json:"id"` // 由标题派生的 slug
	Title      string          `gorm:"size:255;not null" json:"title"`
	Authors    string          `gorm:"size:255" json:"authors"`
	Year       int             `json:"year"`
	Tags       json.RawMessage `gorm:"type:json" json:"tags"`
	Abstract   string          `gorm:"type:text" json:"abstract"`
	PDFURL     string          `gorm:"size:512" json:"pdfUrl,omitempty"`
	IsPersonal bool            `gorm:"default:false" json:"isPersonal"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Paper) TableName() string {
	return "papers"
}
