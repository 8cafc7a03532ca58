package service

import (
	"errors"
	"mdsml_gateway/internal/model"
	"mdsml_gateway/internal/util"
	"testing"
)

func twoTierSeed() []model.Tier {
	return []model.Tier{
		{
			ID: 1, Title: "Limits & Continuity", IsLocked: false,
			Topics: []model.Topic{
				{ID: "limits-intro", Title: "Introduction to Limits", Status: model.TopicActive, Points: 100},
				{ID: "continuity", Title: "Continuity", Status: model.TopicLocked, Points: 100},
			},
			GatekeeperExam: &model.GatekeeperExam{Title: "Limits Mastery", PassingScore: 80, Questions: 10},
		},
		{
			ID: 2, Title: "Derivatives", IsLocked: true,
			Topics: []model.Topic{
				{ID: "power-rule", Title: "Power Rule", Status: model.TopicLocked, Points: 100},
			},
		},
	}
}

func TestNewCurriculumTiers_FirstTierUnlocked(t *testing.T) {
	svc := NewProgressionService()

	seed := twoTierSeed()
	seed[0].IsLocked = true // 即使配置写错，构造后第 1 阶段也必须解锁

	tiers, err := svc.NewCurriculumTiers(seed)
	if err != nil {
		t.Fatalf("NewCurriculumTiers() error = %v", err)
	}
	if tiers[0].IsLocked {
		t.Error("tier 1 should be unlocked after construction")
	}
	if !tiers[1].IsLocked {
		t.Error("tier 2 should stay locked after construction")
	}
}

func TestNewCurriculumTiers_RejectsGappedIDs(t *testing.T) {
	svc := NewProgressionService()

	seed := twoTierSeed()
	seed[1].ID = 3

	if _, err := svc.NewCurriculumTiers(seed); err == nil {
		t.Error("NewCurriculumTiers() should reject gapped tier IDs")
	}
}

func TestNewCurriculumTiers_RejectsBadPassingScore(t *testing.T) {
	svc := NewProgressionService()

	seed := twoTierSeed()
	seed[0].GatekeeperExam.PassingScore = 120

	if _, err := svc.NewCurriculumTiers(seed); err == nil {
		t.Error("NewCurriculumTiers() should reject passing score > 100")
	}
}

func TestUnlockNextTier(t *testing.T) {
	svc := NewProgressionService()
	tiers := twoTierSeed()

	next, err := svc.UnlockNextTier(tiers, 1)
	if err != nil {
		t.Fatalf("UnlockNextTier(1) error = %v", err)
	}
	if next[1].IsLocked {
		t.Error("tier 2 should be unlocked after completing tier 1")
	}
	if tiers[1].IsLocked != true {
		t.Error("input tiers must not be mutated")
	}
}

func TestUnlockNextTier_Idempotent(t *testing.T) {
	svc := NewProgressionService()

	once, err := svc.UnlockNextTier(twoTierSeed(), 1)
	if err != nil {
		t.Fatalf("UnlockNextTier() error = %v", err)
	}
	twice, err := svc.UnlockNextTier(once, 1)
	if err != nil {
		t.Fatalf("UnlockNextTier() second call error = %v", err)
	}

	for i := range twice {
		if twice[i].IsLocked != once[i].IsLocked {
			t.Errorf("tier %d lock state changed on repeated unlock", twice[i].ID)
		}
	}
}

func TestUnlockNextTier_PastTheEndIsNoop(t *testing.T) {
	svc := NewProgressionService()
	tiers := twoTierSeed()

	// 完成最后一个阶段：第 3 阶段不存在，调用退化为无操作
	next, err := svc.UnlockNextTier(tiers, 2)
	if err != nil {
		t.Fatalf("UnlockNextTier(2) error = %v", err)
	}
	for i := range next {
		if next[i].IsLocked != tiers[i].IsLocked {
			t.Errorf("tier %d lock state changed", next[i].ID)
		}
	}
}

func TestUnlockNextTier_UnknownTier(t *testing.T) {
	svc := NewProgressionService()

	_, err := svc.UnlockNextTier(twoTierSeed(), 7)
	if !errors.Is(err, util.ErrTierNotFound) {
		t.Errorf("UnlockNextTier(7) error = %v, want ErrTierNotFound", err)
	}
}

func TestUnlockNextTier_NeverRelocks(t *testing.T) {
	svc := NewProgressionService()

	tiers, err := svc.UnlockNextTier(twoTierSeed(), 1)
	if err != nil {
		t.Fatalf("UnlockNextTier() error = %v", err)
	}

	// 再完成第 1、第 2 阶段各一次，任何已解锁的阶段都不能重新上锁
	for _, id := range []int{1, 2} {
		tiers, err = svc.UnlockNextTier(tiers, id)
		if err != nil {
			t.Fatalf("UnlockNextTier(%d) error = %v", id, err)
		}
		for i := range tiers {
			if tiers[i].IsLocked && i < 2 {
				t.Errorf("tier %d re-locked", tiers[i].ID)
			}
		}
	}
}

func TestIsGatekeeperEligible(t *testing.T) {
	svc := NewProgressionService()
	tiers := twoTierSeed()

	tests := []struct {
		name   string
		tiers  []model.Tier
		tierID int
		want   bool
	}{
		{"unlocked tier with locked next", tiers, 1, true},
		{"final tier never eligible", tiers, 2, false},
		{"unknown tier", tiers, 9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.IsGatekeeperEligible(tt.tiers, tt.tierID); got != tt.want {
				t.Errorf("IsGatekeeperEligible(%d) = %v, want %v", tt.tierID, got, tt.want)
			}
		})
	}
}

func TestIsGatekeeperEligible_GoneAfterUnlock(t *testing.T) {
	svc := NewProgressionService()

	tiers, err := svc.UnlockNextTier(twoTierSeed(), 1)
	if err != nil {
		t.Fatalf("UnlockNextTier() error = %v", err)
	}
	if svc.IsGatekeeperEligible(tiers, 1) {
		t.Error("tier 1 should not be eligible once tier 2 is unlocked")
	}
}

func TestSubmitExam_PassUnlocksNext(t *testing.T) {
	svc := NewProgressionService()

	result, tiers, err := svc.SubmitExam(twoTierSeed(), 1, 85)
	if err != nil {
		t.Fatalf("SubmitExam() error = %v", err)
	}
	if !result.Passed {
		t.Error("score 85 against passing score 80 should pass")
	}
	if result.UnlockedTierID != 2 {
		t.Errorf("UnlockedTierID = %d, want 2", result.UnlockedTierID)
	}
	if tiers[1].IsLocked {
		t.Error("tier 2 should be unlocked after passing the gatekeeper")
	}
}

func TestSubmitExam_FailDoesNotUnlock(t *testing.T) {
	svc := NewProgressionService()

	result, tiers, err := svc.SubmitExam(twoTierSeed(), 1, 60)
	if err != nil {
		t.Fatalf("SubmitExam() error = %v", err)
	}
	if result.Passed {
		t.Error("score 60 against passing score 80 should fail")
	}
	if !tiers[1].IsLocked {
		t.Error("failed exam must not unlock the next tier")
	}
}

func TestSubmitExam_Errors(t *testing.T) {
	svc := NewProgressionService()
	tiers := twoTierSeed()

	tests := []struct {
		name    string
		tierID  int
		score   int
		wantErr error
	}{
		{"unknown tier", 5, 80, util.ErrTierNotFound},
		{"locked tier", 2, 80, util.ErrTierLocked},
		{"score out of range", 1, 101, util.ErrInvalidScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.SubmitExam(tiers, tt.tierID, tt.score)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("SubmitExam(%d, %d) error = %v, want %v", tt.tierID, tt.score, err, tt.wantErr)
			}
		})
	}
}

func TestSubmitExam_NoExamOnTier(t *testing.T) {
	svc := NewProgressionService()

	tiers, err := svc.UnlockNextTier(twoTierSeed(), 1)
	if err != nil {
		t.Fatalf("UnlockNextTier() error = %v", err)
	}
	_, _, err = svc.SubmitExam(tiers, 2, 90)
	if !errors.Is(err, util.ErrNoGatekeeperExam) {
		t.Errorf("SubmitExam on examless tier error = %v, want ErrNoGatekeeperExam", err)
	}
}

func TestCompleteTopic(t *testing.T) {
	svc := NewProgressionService()

	tiers, err := svc.CompleteTopic(twoTierSeed(), "limits-intro")
	if err != nil {
		t.Fatalf("CompleteTopic() error = %v", err)
	}
	if tiers[0].Topics[0].Status != model.TopicCompleted {
		t.Errorf("topic status = %s, want completed", tiers[0].Topics[0].Status)
	}

	if _, err := svc.CompleteTopic(tiers, "no-such-topic"); !errors.Is(err, util.ErrTopicNotFound) {
		t.Errorf("CompleteTopic(no-such-topic) error = %v, want ErrTopicNotFound", err)
	}
}
