package repository

import (
	"errors"
	"mdsml_gateway/internal/model"
	"mdsml_gateway/internal/util"

	"gorm.io/gorm"
)

type PaperRepository struct {
	DB *gorm.DB
}

func NewPaperRepository(db *gorm.DB) *PaperRepository {
	return &PaperRepository{DB: db}
}

func (r *PaperRepository) Create(paper *model.Paper) error {
	return r.DB.Create(paper).Error
}

func (r *PaperRepository) FindByID(id string) (*model.Paper, error) {
	var paper model.Paper
	err := r.DB.First(&paper, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrPaperNotFound
	}
	if err != nil {
		return nil, err
	}
	return &paper, nil
}

func (r *PaperRepository) FindAll() ([]model.Paper, error) {
	var papers []model.Paper
	err := r.DB.Order("created_at ASC").Find(&papers).Error
	return papers, err
}

func (r *PaperRepository) Update(paper *model.Paper) error {
	return r.DB.Save(paper).Error
}
