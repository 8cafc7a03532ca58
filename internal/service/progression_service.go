package service

import (
	"fmt"
	"mdsml_gateway/internal/model"
	"mdsml_gateway/internal/util"
)

// ProgressionService 课程阶段解锁的状态机。
// 所有方法都是 (当前阶段序列, 事件) -> 新阶段序列 的纯函数，
// 不持有任何隐藏状态，入参切片不会被修改。
type ProgressionService struct{}

func NewProgressionService() *ProgressionService {
	return &ProgressionService{}
}

// NewCurriculumTiers 从静态配置构造阶段序列并校验不变量：
// 阶段ID必须是 1..N 的连续序列，第 1 阶段始终解锁，其余按配置。
func (s *ProgressionService) NewCurriculumTiers(seed []model.Tier) ([]model.Tier, error) {
	if len(seed) == 0 {
		return nil, fmt.Errorf("curriculum has no tiers")
	}

	tiers := model.CloneTiers(seed)
	for i := range tiers {
		if tiers[i].ID != i+1 {
			return nil, fmt.Errorf("tier IDs must be dense 1..N: got %d at position %d", tiers[i].ID, i)
		}
		if exam := tiers[i].GatekeeperExam; exam != nil {
			if exam.PassingScore < 0 || exam.PassingScore > 100 {
				return nil, fmt.Errorf("tier %d: passing score %d out of range", tiers[i].ID, exam.PassingScore)
			}
		}
	}

	tiers[0].IsLocked = false
	return tiers, nil
}

// UnlockNextTier 完成 completedTierID 阶段后解锁它的下一阶段。
// 幂等；下一阶段不存在时为无操作；completedTierID 不存在则报错。
// 解锁只会从 locked 变为 unlocked，永不反向。
func (s *ProgressionService) UnlockNextTier(tiers []model.Tier, completedTierID int) ([]model.Tier, error) {
	if !s.tierExists(tiers, completedTierID) {
		return nil, util.ErrTierNotFound
	}

	next := model.CloneTiers(tiers)
	nextTierID := completedTierID + 1
	for i := range next {
		if next[i].ID == nextTierID {
			next[i].IsLocked = false
			break
		}
	}
	return next, nil
}

// IsGatekeeperEligible 判断某阶段当前是否该展示守门考试入口：
// 本阶段已解锁、存在下一阶段且下一阶段仍锁定。
// 这是派生视图，每次状态变化后重新计算，不单独存储。
func (s *ProgressionService) IsGatekeeperEligible(tiers []model.Tier, tierID int) bool {
	var tier, next *model.Tier
	for i := range tiers {
		if tiers[i].ID == tierID {
			tier = &tiers[i]
		}
		if tiers[i].ID == tierID+1 {
			next = &tiers[i]
		}
	}

	if tier == nil || next == nil {
		// 最后一个阶段（或未知阶段）没有守门考试入口
		return false
	}
	return !tier.IsLocked && next.IsLocked
}

// ExamResult 守门考试判定结果
type ExamResult struct {
	Passed         bool `json:"passed"`
	Score          int  `json:"score"`
	PassingScore   int  `json:"passingScore"`
	UnlockedTierID int  `json:"unlockedTierId,omitempty"`
}

// SubmitExam 按分数判定守门考试，通过时解锁下一阶段。
// 不通过不是状态转移：阶段序列原样返回。
func (s *ProgressionService) SubmitExam(tiers []model.Tier, tierID int, score int) (ExamResult, []model.Tier, error) {
	if score < 0 || score > 100 {
		return ExamResult{}, nil, util.ErrInvalidScore
	}

	var tier *model.Tier
	for i := range tiers {
		if tiers[i].ID == tierID {
			tier = &tiers[i]
			break
		}
	}
	if tier == nil {
		return ExamResult{}, nil, util.ErrTierNotFound
	}
	if tier.IsLocked {
		return ExamResult{}, nil, util.ErrTierLocked
	}
	if tier.GatekeeperExam == nil {
		return ExamResult{}, nil, util.ErrNoGatekeeperExam
	}

	result := ExamResult{
		Score:        score,
		PassingScore: tier.GatekeeperExam.PassingScore,
	}

	if score < tier.GatekeeperExam.PassingScore {
		return result, model.CloneTiers(tiers), nil
	}

	next, err := s.UnlockNextTier(tiers, tierID)
	if err != nil {
		return ExamResult{}, nil, err
	}

	result.Passed = true
	if s.tierExists(tiers, tierID+1) {
		result.UnlockedTierID = tierID + 1
	}
	return result, next, nil
}

// CompleteTopic 将指定话题标记为已完成（由五个活动标签全部完成驱动）。
// 状态只会前进：completed 不会退回 active。
func (s *ProgressionService) CompleteTopic(tiers []model.Tier, topicID string) ([]model.Tier, error) {
	next := model.CloneTiers(tiers)
	for i := range next {
		for j := range next[i].Topics {
			if next[i].Topics[j].ID == topicID {
				next[i].Topics[j].Status = model.TopicCompleted
				return next, nil
			}
		}
	}
	return nil, util.ErrTopicNotFound
}

func (s *ProgressionService) tierExists(tiers []model.Tier, id int) bool {
	for i := range tiers {
		if tiers[i].ID == id {
			return true
		}
	}
	return false
}
