package service

import (
	"mdsml_gateway/internal/model"
	"mdsml_gateway/internal/util"
	"regexp"
	"strings"
)

// youtubeRegex 识别常见的 YouTube 链接形态（watch?v=、youtu.be、embed），
// 捕获 11 位视频标识。识别失败的内容按纯文本处理，不报错。
var youtubeRegex = regexp.MustCompile(`(?:youtube\.com/(?:[^/]+/.+/|(?:v|e(?:mbed)?)/|.*[?&]v=)|youtu\.be/)([^"&?/\s]{11})`)

// NoteStore 笔记的持久化接口，gorm 仓储实现它
type NoteStore interface {
	Create(note *model.Note) error
	Delete(scopeKey, id string) error
	FindByScope(scopeKey string, newestFirst bool) ([]model.Note, error)
}

// NoteService 维护按作用域隔离的笔记集合。
// 排序契约按调用方固定：话题页最新在前，论文工作台按插入顺序。
type NoteService struct {
	Store NoteStore
}

func NewNoteService(store NoteStore) *NoteService {
	return &NoteService{Store: store}
}

// AddNote 创建一条笔记。空白内容直接拒绝，不落库。
func (s *NoteService) AddNote(scope model.NoteScope, content string) (*model.Note, error) {
	if strings.TrimSpace(content) == "" {
		return nil, util.ErrEmptyContent
	}

	note := &model.Note{
		ScopeKey: scope.Key(),
		Content:  content,
		Type:     model.NoteText,
	}

	if m := youtubeRegex.FindStringSubmatch(content); m != nil {
		note.Type = model.NoteVideo
		note.VideoID = m[1]
	}

	if err := s.Store.Create(note); err != nil {
		return nil, err
	}
	return note, nil
}

// DeleteNote 删除指定笔记。id 不存在时安全返回，不报错。
func (s *NoteService) DeleteNote(scope model.NoteScope, id string) error {
	return s.Store.Delete(scope.Key(), id)
}

// ListNotes 返回作用域内的全部笔记。
func (s *NoteService) ListNotes(scope model.NoteScope) ([]model.Note, error) {
	return s.Store.FindByScope(scope.Key(), scope.Kind == model.ScopeTopic)
}
