package services

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"projecthub/model"
)

var reviewBase = time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

func logAt(minutes int, newStatus, description string, remark string) model.ChangeLog {
	rec := model.ChangeLog{
		LogID:       minutes + 1,
		Description: description,
		NewStatus:   newStatus,
		UserID:      7,
		TaskID:      1,
		CreateAt:    reviewBase.Add(time.Duration(minutes) * time.Minute),
	}
	if remark != "" {
		rec.Remark = &remark
	}
	return rec
}

func TestDeriveTaskReviewEmpty(t *testing.T) {
	info := DeriveTaskReview(nil)
	if info.Status != ReviewPending || !info.NeedsReview {
		t.Fatalf("empty log: got %+v", info)
	}
	if len(info.History) != 0 {
		t.Fatalf("empty log must yield empty history, got %d entries", len(info.History))
	}
}

func TestDeriveTaskReviewRequestChanges(t *testing.T) {
	info := DeriveTaskReview([]model.ChangeLog{
		logAt(0, "Request Changes", "Changes requested", "fix spacing"),
	})
	if info.Status != ReviewChangesRequested {
		t.Fatalf("expected changes_requested, got %q", info.Status)
	}
	if info.LastAction != ActionRequestChanges || !info.NeedsReview {
		t.Fatalf("unexpected derivation: %+v", info)
	}
	if info.LatestNotes != "fix spacing" {
		t.Fatalf("expected notes %q, got %q", "fix spacing", info.LatestNotes)
	}
}

func TestDeriveTaskReviewOnHold(t *testing.T) {
	info := DeriveTaskReview([]model.ChangeLog{
		logAt(0, "On Hold", "Held for discussion", "needs a design call"),
	})
	if info.Status != ReviewOnHold || info.LastAction != ActionHoldDiscussion || !info.NeedsReview {
		t.Fatalf("unexpected derivation: %+v", info)
	}
}

func TestDeriveTaskReviewPlainCompletionIsNotApproval(t *testing.T) {
	info := DeriveTaskReview([]model.ChangeLog{
		logAt(0, "Done", "Status changed from In Progress to Done", ""),
	})
	if info.Status != ReviewPending || !info.NeedsReview {
		t.Fatalf("plain completion must stay pending: %+v", info)
	}
}

// The scenario from the review workflow: a change request followed by an
// explicit approval.
func TestDeriveTaskReviewApprovalScenario(t *testing.T) {
	records := []model.ChangeLog{
		logAt(0, "Request Changes", "Changes requested", "fix spacing"),
		logAt(5, "Completed", "Review approved: looks good", ""),
	}
	info := DeriveTaskReview(records)
	if info.Status != ReviewApproved {
		t.Fatalf("expected approved, got %q", info.Status)
	}
	if info.NeedsReview {
		t.Fatal("approved task must not need review")
	}
	if info.LastAction != ActionApprove {
		t.Fatalf("expected approve, got %q", info.LastAction)
	}
	if info.LatestNotes != "looks good" {
		t.Fatalf("expected latest notes %q, got %q", "looks good", info.LatestNotes)
	}
	if len(info.History) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(info.History))
	}
	if info.History[0].Action != ActionRequestChanges || info.History[0].Notes != "fix spacing" {
		t.Fatalf("unexpected first history entry: %+v", info.History[0])
	}
}

func TestDeriveTaskReviewIsOrderInsensitive(t *testing.T) {
	records := []model.ChangeLog{
		logAt(0, "Request Changes", "Changes requested", "fix spacing"),
		logAt(3, "On Hold", "Held for discussion", "defer"),
		logAt(6, "Done", "Status changed from In Progress to Done", ""),
		logAt(9, "Completed", "Review approved: ship it", ""),
	}
	want := DeriveTaskReview(records)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]model.ChangeLog, len(records))
		copy(shuffled, records)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		got := DeriveTaskReview(shuffled)
		if !reflect.DeepEqual(want, got) {
			t.Fatalf("derivation depends on input order:\nwant %+v\ngot  %+v", want, got)
		}
	}
}

func TestDeriveTaskReviewTieBrokenByInsertionOrder(t *testing.T) {
	// Same timestamp: the later-appended record wins.
	records := []model.ChangeLog{
		logAt(0, "Request Changes", "Changes requested", "fix spacing"),
		logAt(0, "Completed", "Review approved: fine", ""),
	}
	info := DeriveTaskReview(records)
	if info.Status != ReviewApproved {
		t.Fatalf("expected insertion order to break the tie, got %q", info.Status)
	}
}

func TestDeriveTaskReviewToleratesGarbage(t *testing.T) {
	records := []model.ChangeLog{
		logAt(0, "???", "", ""),
		logAt(2, "", "mystery entry", ""),
		logAt(4, "sTaTuS-42", "{broken json", "{also broken"),
	}
	info := DeriveTaskReview(records)
	if info.Status != ReviewPending || !info.NeedsReview {
		t.Fatalf("garbage must degrade to pending: %+v", info)
	}
	for _, entry := range info.History {
		if entry.Action != ActionApprove {
			t.Fatalf("unclassifiable entries default to approve, got %q", entry.Action)
		}
	}
}

func TestDeriveTaskReviewCaseInsensitiveClassification(t *testing.T) {
	info := DeriveTaskReview([]model.ChangeLog{
		logAt(0, "  REQUEST CHANGES  ", "", ""),
	})
	if info.Status != ReviewChangesRequested {
		t.Fatalf("classification must trim and lowercase, got %q", info.Status)
	}

	info = DeriveTaskReview([]model.ChangeLog{
		logAt(0, "completed", "review approved by the team", ""),
	})
	if info.Status != ReviewApproved {
		t.Fatalf("lowercase completed with signal must approve, got %q", info.Status)
	}
}

func TestDeriveTaskReviewStructuredApprovalNotes(t *testing.T) {
	remark := EncodeRemark("solid work", "")
	records := []model.ChangeLog{
		{
			LogID:       1,
			Description: "Review approved: solid work",
			NewStatus:   "Completed",
			Remark:      &remark,
			UserID:      7,
			TaskID:      1,
			CreateAt:    reviewBase,
		},
	}
	info := DeriveTaskReview(records)
	if info.Status != ReviewApproved || info.LatestNotes != "solid work" {
		t.Fatalf("structured approval: got %+v", info)
	}
}

func TestDeriveTaskReviewDoesNotMutateInput(t *testing.T) {
	records := []model.ChangeLog{
		logAt(5, "Completed", "Review approved: ok", ""),
		logAt(0, "Request Changes", "Changes requested", "x"),
	}
	DeriveTaskReview(records)
	if !records[0].CreateAt.After(records[1].CreateAt) {
		t.Fatal("derivation must not reorder the caller's slice")
	}
}
