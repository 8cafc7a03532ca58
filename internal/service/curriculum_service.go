package service

import (
	"fmt"
	"mdsml_gateway/internal/model"
	"mdsml_gateway/internal/util"
	"sync"
)

// TierView 在阶段数据上附加派生的考试入口标志
type TierView struct {
	model.Tier
	GatekeeperEligible bool `json:"gatekeeperEligible"`
}

// CurriculumView 返回给前端的课程视图
type CurriculumView struct {
	Subject     string     `json:"subject"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Tiers       []TierView `json:"tiers"`
}

// CurriculumService 持有学科目录和每个用户的进度会话。
// 目录是静态配置；会话在首次访问某学科时从目录克隆，
// 此后所有状态转移都经由 ProgressionService 的纯函数。
type CurriculumService struct {
	Progression *ProgressionService

	mu       sync.Mutex
	catalog  []model.Curriculum
	sessions map[string][]model.Tier // userID|subject -> 会话内的阶段状态
	contents map[string]model.TopicContent
}

func NewCurriculumService(progression *ProgressionService) (*CurriculumService, error) {
	svc := &CurriculumService{
		Progression: progression,
		sessions:    make(map[string][]model.Tier),
		contents:    seedTopicContents(),
	}

	for _, cur := range seedCurricula() {
		tiers, err := progression.NewCurriculumTiers(cur.Tiers)
		if err != nil {
			// 静态配置坏了属于编程错误，启动时就暴露出来
			return nil, fmt.Errorf("invalid curriculum seed %q: %w", cur.Subject, err)
		}
		cur.Tiers = tiers
		svc.catalog = append(svc.catalog, cur)
	}

	return svc, nil
}

// ListSubjects 学科目录概览
func (s *CurriculumService) ListSubjects() []model.Curriculum {
	out := make([]model.Curriculum, len(s.catalog))
	for i, cur := range s.catalog {
		out[i] = cur
		out[i].Tiers = nil
	}
	return out
}

// GetCurriculum 返回某用户视角下的课程视图，必要时创建会话。
func (s *CurriculumService) GetCurriculum(userID, subject string) (*CurriculumView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, tiers, err := s.sessionTiersLocked(userID, subject)
	if err != nil {
		return nil, err
	}
	return s.viewLocked(cur, tiers), nil
}

// UnlockNextTier 完成某阶段后推进会话状态
func (s *CurriculumService) UnlockNextTier(userID, subject string, completedTierID int) (*CurriculumView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, tiers, err := s.sessionTiersLocked(userID, subject)
	if err != nil {
		return nil, err
	}

	next, err := s.Progression.UnlockNextTier(tiers, completedTierID)
	if err != nil {
		return nil, err
	}
	s.sessions[userID+"|"+subject] = next
	return s.viewLocked(cur, next), nil
}

// SubmitGatekeeper 判定守门考试并在通过时解锁下一阶段
func (s *CurriculumService) SubmitGatekeeper(userID, subject string, tierID, score int) (ExamResult, *CurriculumView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, tiers, err := s.sessionTiersLocked(userID, subject)
	if err != nil {
		return ExamResult{}, nil, err
	}

	result, next, err := s.Progression.SubmitExam(tiers, tierID, score)
	if err != nil {
		return ExamResult{}, nil, err
	}
	s.sessions[userID+"|"+subject] = next
	return result, s.viewLocked(cur, next), nil
}

// CompleteTopic 五个活动标签全部完成后把话题标成 completed
func (s *CurriculumService) CompleteTopic(userID, subject, topicID string) (*CurriculumView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, tiers, err := s.sessionTiersLocked(userID, subject)
	if err != nil {
		return nil, err
	}

	next, err := s.Progression.CompleteTopic(tiers, topicID)
	if err != nil {
		return nil, err
	}
	s.sessions[userID+"|"+subject] = next
	return s.viewLocked(cur, next), nil
}

// TopicContent 话题页静态内容，未收录的话题返回兜底内容
func (s *CurriculumService) TopicContent(topicID string) model.TopicContent {
	if content, ok := s.contents[topicID]; ok {
		return content
	}
	return fallbackTopicContent(topicID)
}

func (s *CurriculumService) findCurriculum(subject string) (*model.Curriculum, error) {
	for i := range s.catalog {
		if s.catalog[i].Subject == subject {
			return &s.catalog[i], nil
		}
	}
	return nil, util.ErrCurriculumNotFound
}

func (s *CurriculumService) sessionTiersLocked(userID, subject string) (*model.Curriculum, []model.Tier, error) {
	cur, err := s.findCurriculum(subject)
	if err != nil {
		return nil, nil, err
	}

	key := userID + "|" + subject
	tiers, ok := s.sessions[key]
	if !ok {
		tiers = model.CloneTiers(cur.Tiers)
		s.sessions[key] = tiers
	}
	return cur, tiers, nil
}

func (s *CurriculumService) viewLocked(cur *model.Curriculum, tiers []model.Tier) *CurriculumView {
	view := &CurriculumView{
		Subject:     cur.Subject,
		Title:       cur.Title,
		Description: cur.Description,
		Tiers:       make([]TierView, len(tiers)),
	}
	for i, tier := range model.CloneTiers(tiers) {
		view.Tiers[i] = TierView{
			Tier:               tier,
			GatekeeperEligible: s.Progression.IsGatekeeperEligible(tiers, tier.ID),
		}
	}
	return view
}
