package service

import (
	"errors"
	"mdsml_gateway/internal/util"
	"testing"
)

func newCurriculumService(t *testing.T) *CurriculumService {
	t.Helper()
	svc, err := NewCurriculumService(NewProgressionService())
	if err != nil {
		t.Fatalf("NewCurriculumService() error = %v", err)
	}
	return svc
}

func TestGetCurriculum_InitialLockState(t *testing.T) {
	svc := newCurriculumService(t)

	view, err := svc.GetCurriculum("u1", "calculus")
	if err != nil {
		t.Fatalf("GetCurriculum() error = %v", err)
	}

	if view.Tiers[0].IsLocked {
		t.Error("tier 1 should be unlocked immediately after construction")
	}
	for _, tier := range view.Tiers[1:] {
		if !tier.IsLocked {
			t.Errorf("tier %d should start locked", tier.ID)
		}
	}
	if !view.Tiers[0].GatekeeperEligible {
		t.Error("tier 1 should show the gatekeeper affordance while tier 2 is locked")
	}
}

func TestGetCurriculum_UnknownSubject(t *testing.T) {
	svc := newCurriculumService(t)

	_, err := svc.GetCurriculum("u1", "alchemy")
	if !errors.Is(err, util.ErrCurriculumNotFound) {
		t.Errorf("GetCurriculum(alchemy) error = %v, want ErrCurriculumNotFound", err)
	}
}

func TestSubmitGatekeeper_SessionIsolation(t *testing.T) {
	svc := newCurriculumService(t)

	result, view, err := svc.SubmitGatekeeper("u1", "calculus", 1, 90)
	if err != nil {
		t.Fatalf("SubmitGatekeeper() error = %v", err)
	}
	if !result.Passed {
		t.Fatal("score 90 should pass")
	}
	if view.Tiers[1].IsLocked {
		t.Error("u1's tier 2 should be unlocked")
	}

	// 其他用户的会话不受影响
	other, err := svc.GetCurriculum("u2", "calculus")
	if err != nil {
		t.Fatalf("GetCurriculum(u2) error = %v", err)
	}
	if !other.Tiers[1].IsLocked {
		t.Error("u2's tier 2 should still be locked")
	}
}

func TestSubmitGatekeeper_FailKeepsLock(t *testing.T) {
	svc := newCurriculumService(t)

	result, view, err := svc.SubmitGatekeeper("u1", "calculus", 1, 40)
	if err != nil {
		t.Fatalf("SubmitGatekeeper() error = %v", err)
	}
	if result.Passed {
		t.Error("score 40 should fail")
	}
	if !view.Tiers[1].IsLocked {
		t.Error("tier 2 must stay locked after a failed exam")
	}
	if !view.Tiers[0].GatekeeperEligible {
		t.Error("tier 1 should remain gatekeeper-eligible after a failed exam")
	}
}

func TestCompleteTopic_UpdatesStatus(t *testing.T) {
	svc := newCurriculumService(t)

	view, err := svc.CompleteTopic("u1", "calculus", "limits-intro")
	if err != nil {
		t.Fatalf("CompleteTopic() error = %v", err)
	}
	if view.Tiers[0].Topics[0].Status != "completed" {
		t.Errorf("topic status = %s, want completed", view.Tiers[0].Topics[0].Status)
	}
}

func TestListSubjects(t *testing.T) {
	svc := newCurriculumService(t)

	subjects := svc.ListSubjects()
	if len(subjects) == 0 {
		t.Fatal("ListSubjects() returned empty")
	}
	for _, cur := range subjects {
		if cur.Tiers != nil {
			t.Errorf("subject %s overview should not embed tiers", cur.Subject)
		}
	}
}

func TestTopicContent_Fallback(t *testing.T) {
	svc := newCurriculumService(t)

	content := svc.TopicContent("limits-intro")
	if content.Title != "Introduction to Limits" {
		t.Errorf("Title = %q", content.Title)
	}

	missing := svc.TopicContent("no-such-topic")
	if missing.ID != "no-such-topic" || missing.Title != "Topic Not Found" {
		t.Errorf("fallback content = %+v", missing)
	}
}
