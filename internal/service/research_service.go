package service

import (
	"context"
	"encoding/json"
	"io"
	"mdsml_gateway/internal/model"
	"mdsml_gateway/internal/util"
	"regexp"
	"strings"
)

var slugRegex = regexp.MustCompile(`[^a-z0-9]+`)

// PaperStore 论文条目的持久化接口，gorm 仓储实现它
type PaperStore interface {
	Create(paper *model.Paper) error
	FindByID(id string) (*model.Paper, error)
	FindAll() ([]model.Paper, error)
	Update(paper *model.Paper) error
}

// AddPaperRequest 新增个人论文
type AddPaperRequest struct {
	Title    string   `json:"title" binding:"required"`
	Authors  string   `json:"authors"`
	Year     int      `json:"year"`
	Abstract string   `json:"abstract"`
	Tags     []string `json:"tags"`
	PDFURL   string   `json:"pdfUrl"`
}

// ResearchService 研究文献库：内置文献 + 用户个人条目，
// 以及论文 PDF 的对象存储。PDF 的渲染不在这层职责内。
type ResearchService struct {
	Store   PaperStore
	Storage StorageProvider
}

func NewResearchService(store PaperStore, storage StorageProvider) *ResearchService {
	return &ResearchService{Store: store, Storage: storage}
}

// ListPapers 按插入顺序返回文献，query 同时匹配标题和标签。
func (s *ResearchService) ListPapers(query string) ([]model.Paper, error) {
	papers, err := s.Store.FindAll()
	if err != nil {
		return nil, err
	}
	if query == "" {
		return papers, nil
	}

	q := strings.ToLower(query)
	var out []model.Paper
	for _, p := range papers {
		if strings.Contains(strings.ToLower(p.Title), q) || matchesTag(p.Tags, q) {
			out = append(out, p)
		}
	}
	return out, nil
}

func matchesTag(raw json.RawMessage, q string) bool {
	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return false
	}
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

// GetPaper 按 slug 取单篇论文
func (s *ResearchService) GetPaper(id string) (*model.Paper, error) {
	return s.Store.FindByID(id)
}

// AddPaper 新增个人论文，ID 由标题派生
func (s *ResearchService) AddPaper(req AddPaperRequest) (*model.Paper, error) {
	id := Slugify(req.Title)
	if id == "" {
		return nil, util.ErrEmptyContent
	}
	if existing, err := s.Store.FindByID(id); err == nil && existing != nil {
		return nil, util.ErrPaperExists
	}

	authors := req.Authors
	if authors == "" {
		authors = "Unknown Author"
	}
	abstract := req.Abstract
	if abstract == "" {
		abstract = "No abstract provided."
	}

	tags, _ := json.Marshal(req.Tags)
	paper := &model.Paper{
		ID:         id,
		Title:      req.Title,
		Authors:    authors,
		Year:       req.Year,
		Abstract:   abstract,
		Tags:       tags,
		PDFURL:     req.PDFURL,
		IsPersonal: true,
	}

	if err := s.Store.Create(paper); err != nil {
		return nil, err
	}
	return paper, nil
}

// AttachPDF 上传论文 PDF 并把访问地址写回条目
func (s *ResearchService) AttachPDF(ctx context.Context, paperID string, reader io.Reader, size int64) (*model.Paper, error) {
	paper, err := s.Store.FindByID(paperID)
	if err != nil {
		return nil, err
	}

	url, err := s.Storage.Upload(ctx, "papers/"+paperID+".pdf", reader, size, util.MimePDF)
	if err != nil {
		return nil, err
	}

	paper.PDFURL = url
	if err := s.Store.Update(paper); err != nil {
		return nil, err
	}
	return paper, nil
}

// Slugify 由标题派生论文 slug ID
func Slugify(title string) string {
	slug := slugRegex.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}
