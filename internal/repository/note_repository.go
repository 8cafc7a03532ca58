package repository

import (
	"mdsml_gateway/internal/model"

	"gorm.io/gorm"
)

type NoteRepository struct {
	DB *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{DB: db}
}

func (r *NoteRepository) Create(note *model.Note) error {
	return r.DB.Create(note).Error
}

// Delete 按作用域删除，id 不存在时静默成功
func (r *NoteRepository) Delete(scopeKey, id string) error {
	return r.DB.Where("scope_key = ? AND id = ?", scopeKey, id).Delete(&model.Note{}).Error
}

func (r *NoteRepository) FindByScope(scopeKey string, newestFirst bool) ([]model.Note, error) {
	order := "created_at ASC, id ASC"
	if newestFirst {
		order = "created_at DESC, id DESC"
	}

	var notes []model.Note
	err := r.DB.Where("scope_key = ?", scopeKey).Order(order).Find(&notes).Error
	return notes, err
}
