package service

import (
	"context"
	"encoding/json"
	"errors"
	"mdsml_gateway/internal/config"
	"mdsml_gateway/internal/model"
	"mdsml_gateway/internal/util"
	"strings"
	"testing"
)

func localStorageConfig(t *testing.T) *config.StorageConfig {
	t.Helper()
	return &config.StorageConfig{Type: "local", LocalPath: t.TempDir()}
}

type fakePaperStore struct {
	papers []model.Paper
}

func (f *fakePaperStore) Create(paper *model.Paper) error {
	f.papers = append(f.papers, *paper)
	return nil
}

func (f *fakePaperStore) FindByID(id string) (*model.Paper, error) {
	for i := range f.papers {
		if f.papers[i].ID == id {
			p := f.papers[i]
			return &p, nil
		}
	}
	return nil, util.ErrPaperNotFound
}

func (f *fakePaperStore) FindAll() ([]model.Paper, error) {
	out := make([]model.Paper, len(f.papers))
	copy(out, f.papers)
	return out, nil
}

func (f *fakePaperStore) Update(paper *model.Paper) error {
	for i := range f.papers {
		if f.papers[i].ID == paper.ID {
			f.papers[i] = *paper
			return nil
		}
	}
	return util.ErrPaperNotFound
}

func seededStore() *fakePaperStore {
	tags, _ := json.Marshal([]string{"Transformer", "NLP"})
	return &fakePaperStore{papers: []model.Paper{
		{ID: "attention-is-all-you-need", Title: "Attention Is All You Need", Authors: "Vaswani et al.", Year: 2017, Tags: tags},
	}}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Attention Is All You Need", "attention-is-all-you-need"},
		{"LoRA: Low-Rank Adaptation", "lora-low-rank-adaptation"},
		{"  !!  ", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.title); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestAddPaper(t *testing.T) {
	svc := NewResearchService(seededStore(), nil)

	paper, err := svc.AddPaper(AddPaperRequest{Title: "My Reading Notes", Year: 2026})
	if err != nil {
		t.Fatalf("AddPaper() error = %v", err)
	}
	if paper.ID != "my-reading-notes" {
		t.Errorf("ID = %q", paper.ID)
	}
	if !paper.IsPersonal {
		t.Error("user-added papers must be personal")
	}
	if paper.Authors != "Unknown Author" || paper.Abstract != "No abstract provided." {
		t.Errorf("defaults not applied: %q / %q", paper.Authors, paper.Abstract)
	}
}

func TestAddPaper_DuplicateSlug(t *testing.T) {
	svc := NewResearchService(seededStore(), nil)

	_, err := svc.AddPaper(AddPaperRequest{Title: "Attention Is All You Need"})
	if !errors.Is(err, util.ErrPaperExists) {
		t.Errorf("AddPaper(duplicate) error = %v, want ErrPaperExists", err)
	}
}

func TestListPapers_SearchTitleAndTags(t *testing.T) {
	svc := NewResearchService(seededStore(), nil)
	svc.AddPaper(AddPaperRequest{Title: "Survey of Ranking Models", Tags: []string{"IR"}})

	tests := []struct {
		query string
		want  int
	}{
		{"", 2},
		{"attention", 1},
		{"nlp", 1},
		{"ir", 1},
		{"quantum", 0},
	}
	for _, tt := range tests {
		papers, err := svc.ListPapers(tt.query)
		if err != nil {
			t.Fatalf("ListPapers(%q) error = %v", tt.query, err)
		}
		if len(papers) != tt.want {
			t.Errorf("ListPapers(%q) = %d papers, want %d", tt.query, len(papers), tt.want)
		}
	}
}

func TestListPapers_KeepsInsertionOrder(t *testing.T) {
	svc := NewResearchService(seededStore(), nil)
	svc.AddPaper(AddPaperRequest{Title: "Added Later"})

	papers, _ := svc.ListPapers("")
	if papers[0].ID != "attention-is-all-you-need" || papers[1].ID != "added-later" {
		t.Errorf("papers out of order: %s, %s", papers[0].ID, papers[1].ID)
	}
}

func TestAttachPDF(t *testing.T) {
	store := seededStore()
	svc := NewResearchService(store, &LocalStorageProvider{Config: localStorageConfig(t)})

	paper, err := svc.AttachPDF(context.Background(), "attention-is-all-you-need", strings.NewReader("%PDF-1.4"), 8)
	if err != nil {
		t.Fatalf("AttachPDF() error = %v", err)
	}
	if paper.PDFURL == "" {
		t.Error("PDFURL should be set after upload")
	}

	stored, _ := store.FindByID("attention-is-all-you-need")
	if stored.PDFURL != paper.PDFURL {
		t.Error("PDFURL not persisted")
	}
}

func TestAttachPDF_UnknownPaper(t *testing.T) {
	svc := NewResearchService(seededStore(), nil)

	_, err := svc.AttachPDF(context.Background(), "missing", strings.NewReader("x"), 1)
	if !errors.Is(err, util.ErrPaperNotFound) {
		t.Errorf("AttachPDF(missing) error = %v, want ErrPaperNotFound", err)
	}
}
