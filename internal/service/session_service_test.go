package service

import (
	"errors"
	"mdsml_gateway/internal/model"
	"mdsml_gateway/internal/util"
	"testing"
)

func TestCompleteTab_SetSemantics(t *testing.T) {
	svc := NewSessionService()

	// concept、video、再次 concept：集合里应当只有 2 个成员
	svc.CompleteTab("u1", "limits-intro", model.TabConcept)
	svc.CompleteTab("u1", "limits-intro", model.TabVideo)
	progress, err := svc.CompleteTab("u1", "limits-intro", model.TabConcept)
	if err != nil {
		t.Fatalf("CompleteTab() error = %v", err)
	}

	if progress.Completed != 2 {
		t.Errorf("Completed = %d, want 2", progress.Completed)
	}
	if progress.Total != 5 {
		t.Errorf("Total = %d, want 5", progress.Total)
	}
}

func TestCompleteTab_InvalidTab(t *testing.T) {
	svc := NewSessionService()

	_, err := svc.CompleteTab("u1", "limits-intro", model.ActivityTab("quiz"))
	if !errors.Is(err, util.ErrInvalidTab) {
		t.Errorf("CompleteTab(quiz) error = %v, want ErrInvalidTab", err)
	}
}

func TestProgress_IsolatedPerUserAndTopic(t *testing.T) {
	svc := NewSessionService()

	svc.CompleteTab("u1", "limits-intro", model.TabConcept)

	if p := svc.Progress("u2", "limits-intro"); p.Completed != 0 {
		t.Errorf("u2 progress = %d, want 0", p.Completed)
	}
	if p := svc.Progress("u1", "continuity"); p.Completed != 0 {
		t.Errorf("other topic progress = %d, want 0", p.Completed)
	}
}

func TestReset(t *testing.T) {
	svc := NewSessionService()

	svc.CompleteTab("u1", "limits-intro", model.TabConcept)
	svc.Reset("u1", "limits-intro")

	if p := svc.Progress("u1", "limits-intro"); p.Completed != 0 {
		t.Errorf("progress after reset = %d, want 0", p.Completed)
	}
}

func TestProgress_AllTabsComplete(t *testing.T) {
	svc := NewSessionService()

	var progress ActivityProgress
	for _, tab := range model.ActivityTabs {
		progress, _ = svc.CompleteTab("u1", "limits-intro", tab)
	}
	if progress.Completed != progress.Total {
		t.Errorf("Completed = %d, Total = %d, want equal", progress.Completed, progress.Total)
	}
}
