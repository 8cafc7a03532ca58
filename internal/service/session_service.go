package service

import (
	"mdsml_gateway/internal/model"
	"mdsml_gateway/internal/util"
	"sync"
)

// ActivityProgress 话题页的进度指示
type ActivityProgress struct {
	CompletedTabs []model.ActivityTab `json:"completedTabs"`
	Completed     int                 `json:"completed"`
	Total         int                 `json:"total"`
}

// SessionService 话题页的活动完成状态，按 用户+话题 隔离。
// 会话态不落库：视图挂载时创建，离开后由调用方重置或丢弃。
type SessionService struct {
	mu   sync.Mutex
	tabs map[string]map[model.ActivityTab]bool
}

func NewSessionService() *SessionService {
	return &SessionService{
		tabs: make(map[string]map[model.ActivityTab]bool),
	}
}

func sessionKey(userID, topicID string) string {
	return userID + "|" + topicID
}

// CompleteTab 标记某个活动标签完成。集合语义：重复标记是无操作。
func (s *SessionService) CompleteTab(userID, topicID string, tab model.ActivityTab) (ActivityProgress, error) {
	if !tab.Valid() {
		return ActivityProgress{}, util.ErrInvalidTab
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := sessionKey(userID, topicID)
	done := s.tabs[key]
	if done == nil {
		done = make(map[model.ActivityTab]bool)
		s.tabs[key] = done
	}
	done[tab] = true

	return s.progressLocked(key), nil
}

// Progress 返回当前进度（completed / total）。
func (s *SessionService) Progress(userID, topicID string) ActivityProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progressLocked(sessionKey(userID, topicID))
}

// Reset 丢弃某个话题的会话态（离开话题页时调用）。
func (s *SessionService) Reset(userID, topicID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tabs, sessionKey(userID, topicID))
}

func (s *SessionService) progressLocked(key string) ActivityProgress {
	done := s.tabs[key]
	progress := ActivityProgress{
		CompletedTabs: []model.ActivityTab{},
		Total:         len(model.ActivityTabs),
	}
	// 按固定标签顺序输出，避免 map 迭代顺序抖动
	for _, tab := range model.ActivityTabs {
		if done[tab] {
			progress.CompletedTabs = append(progress.CompletedTabs, tab)
		}
	}
	progress.Completed = len(progress.CompletedTabs)
	return progress
}
