package service

import (
	"errors"
	"mdsml_gateway/internal/model"
	"mdsml_gateway/internal/util"
	"strconv"
	"testing"
)

// fakeNoteStore 按插入顺序保存笔记，替代 gorm 仓储
type fakeNoteStore struct {
	notes []model.Note
	seq   int
}

func (f *fakeNoteStore) Create(note *model.Note) error {
	f.seq++
	note.ID = "note-" + strconv.Itoa(f.seq)
	f.notes = append(f.notes, *note)
	return nil
}

func (f *fakeNoteStore) Delete(scopeKey, id string) error {
	for i, n := range f.notes {
		if n.ScopeKey == scopeKey && n.ID == id {
			f.notes = append(f.notes[:i], f.notes[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeNoteStore) FindByScope(scopeKey string, newestFirst bool) ([]model.Note, error) {
	var out []model.Note
	for _, n := range f.notes {
		if n.ScopeKey == scopeKey {
			out = append(out, n)
		}
	}
	if newestFirst {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out, nil
}

func topicScope(id string) model.NoteScope {
	return model.NoteScope{Kind: model.ScopeTopic, RefID: id}
}

func researchScope(id string) model.NoteScope {
	return model.NoteScope{Kind: model.ScopeResearch, RefID: id}
}

func TestAddNote_RejectsEmptyContent(t *testing.T) {
	svc := NewNoteService(&fakeNoteStore{})

	for _, content := range []string{"", "   ", "\n\t "} {
		if _, err := svc.AddNote(topicScope("limits-intro"), content); !errors.Is(err, util.ErrEmptyContent) {
			t.Errorf("AddNote(%q) error = %v, want ErrEmptyContent", content, err)
		}
	}

	notes, _ := svc.ListNotes(topicScope("limits-intro"))
	if len(notes) != 0 {
		t.Errorf("store has %d notes, want 0", len(notes))
	}
}

func TestAddNote_VideoLinkDetection(t *testing.T) {
	svc := NewNoteService(&fakeNoteStore{})

	tests := []struct {
		name        string
		content     string
		wantType    model.NoteType
		wantVideoID string
	}{
		{"short domain", "https://youtu.be/dQw4w9WgXcQ", model.NoteVideo, "dQw4w9WgXcQ"},
		{"watch url", "check https://www.youtube.com/watch?v=PFDu9oVAE-g out", model.NoteVideo, "PFDu9oVAE-g"},
		{"embed url", "https://www.youtube.com/embed/dQw4w9WgXcQ", model.NoteVideo, "dQw4w9WgXcQ"},
		{"plain text", "just some thoughts", model.NoteText, ""},
		{"malformed link", "https://youtu.be/short", model.NoteText, ""},
		{"other platform", "https://vimeo.com/123456789", model.NoteText, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note, err := svc.AddNote(topicScope("limits-intro"), tt.content)
			if err != nil {
				t.Fatalf("AddNote() error = %v", err)
			}
			if note.Type != tt.wantType {
				t.Errorf("Type = %s, want %s", note.Type, tt.wantType)
			}
			if note.VideoID != tt.wantVideoID {
				t.Errorf("VideoID = %q, want %q", note.VideoID, tt.wantVideoID)
			}
			if note.Content != tt.content {
				t.Errorf("Content = %q, want raw content preserved", note.Content)
			}
		})
	}
}

func TestListNotes_TopicScopeNewestFirst(t *testing.T) {
	svc := NewNoteService(&fakeNoteStore{})
	scope := topicScope("limits-intro")

	svc.AddNote(scope, "first")
	svc.AddNote(scope, "second")
	svc.AddNote(scope, "third")

	notes, err := svc.ListNotes(scope)
	if err != nil {
		t.Fatalf("ListNotes() error = %v", err)
	}
	if len(notes) != 3 {
		t.Fatalf("got %d notes, want 3", len(notes))
	}
	if notes[0].Content != "third" || notes[2].Content != "first" {
		t.Errorf("topic notes should be newest-first, got [%s %s %s]", notes[0].Content, notes[1].Content, notes[2].Content)
	}
}

func TestListNotes_ResearchScopeInsertionOrder(t *testing.T) {
	svc := NewNoteService(&fakeNoteStore{})
	scope := researchScope("lora")

	svc.AddNote(scope, "first")
	svc.AddNote(scope, "second")

	notes, err := svc.ListNotes(scope)
	if err != nil {
		t.Fatalf("ListNotes() error = %v", err)
	}
	if notes[0].Content != "first" || notes[1].Content != "second" {
		t.Errorf("research notes should keep insertion order, got [%s %s]", notes[0].Content, notes[1].Content)
	}
}

func TestListNotes_ScopesAreIsolated(t *testing.T) {
	svc := NewNoteService(&fakeNoteStore{})

	svc.AddNote(topicScope("limits-intro"), "topic note")
	svc.AddNote(researchScope("lora"), "paper note")

	notes, _ := svc.ListNotes(topicScope("limits-intro"))
	if len(notes) != 1 || notes[0].Content != "topic note" {
		t.Errorf("topic scope leaked: %v", notes)
	}
}

func TestDeleteNote(t *testing.T) {
	svc := NewNoteService(&fakeNoteStore{})
	scope := topicScope("limits-intro")

	note, err := svc.AddNote(scope, "to delete")
	if err != nil {
		t.Fatalf("AddNote() error = %v", err)
	}

	if err := svc.DeleteNote(scope, note.ID); err != nil {
		t.Fatalf("DeleteNote() error = %v", err)
	}
	notes, _ := svc.ListNotes(scope)
	if len(notes) != 0 {
		t.Errorf("got %d notes after delete, want 0", len(notes))
	}

	// 重复删除不是错误
	if err := svc.DeleteNote(scope, note.ID); err != nil {
		t.Errorf("DeleteNote() on missing id error = %v, want nil", err)
	}
}
