package services

import (
	"sort"
	"strings"
	"time"

	"projecthub/model"
)

// ReviewEntry is one annotated changelog record in a task's review
// history, in chronological order.
type ReviewEntry struct {
	LogID         int          `json:"logId"`
	Action        ReviewAction `json:"action"`
	Notes         string       `json:"notes"`
	ChangeDetails string       `json:"changeDetails,omitempty"`
	OldStatus     string       `json:"oldStatus"`
	NewStatus     string       `json:"newStatus"`
	UserID        int          `json:"userId"`
	CreateAt      time.Time    `json:"createdAt"`
}

// ReviewInfo is the derived review state of a single task.
type ReviewInfo struct {
	Status      ReviewStatus  `json:"reviewStatus"`
	LastAction  ReviewAction  `json:"lastAction,omitempty"`
	NeedsReview bool          `json:"needsReview"`
	LatestNotes string        `json:"latestNotes"`
	History     []ReviewEntry `json:"history"`
}

// DeriveTaskReview replays a task's changelog records and computes its
// current review state. It is a pure function of the input set: records
// are sorted by CreateAt with a stable tie-break on input order, so
// callers may pass them unsorted. Malformed or unknown historical data
// degrades to pending/approve defaults instead of failing.
func DeriveTaskReview(records []model.ChangeLog) ReviewInfo {
	if len(records) == 0 {
		return ReviewInfo{Status: ReviewPending, NeedsReview: true, History: []ReviewEntry{}}
	}

	ordered := make([]model.ChangeLog, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreateAt.Before(ordered[j].CreateAt)
	})

	history := make([]ReviewEntry, 0, len(ordered))
	for _, rec := range ordered {
		history = append(history, annotate(rec))
	}

	latest := ordered[len(ordered)-1]
	status, action, needsReview := classify(latest.NewStatus, latest.Description)

	return ReviewInfo{
		Status:      status,
		LastAction:  action,
		NeedsReview: needsReview,
		LatestNotes: history[len(history)-1].Notes,
		History:     history,
	}
}

// classify maps a record's free-text status snapshot to review state.
// This is the single place the string-matching policy lives.
func classify(newStatus, description string) (ReviewStatus, ReviewAction, bool) {
	ns := strings.ToLower(strings.TrimSpace(newStatus))
	switch {
	case strings.Contains(ns, "request"):
		return ReviewChangesRequested, ActionRequestChanges, true
	case strings.Contains(ns, "hold"):
		return ReviewOnHold, ActionHoldDiscussion, true
	case ns == "completed" || ns == "done":
		if hasApprovalSignal(description) {
			return ReviewApproved, ActionApprove, false
		}
		// A plain completion is not a review decision.
		return ReviewPending, ActionApprove, true
	default:
		return ReviewPending, ActionApprove, true
	}
}

func annotate(rec model.ChangeLog) ReviewEntry {
	_, action, _ := classify(rec.NewStatus, rec.Description)

	remark := ""
	if rec.Remark != nil {
		remark = *rec.Remark
	}
	details := ParseRemark(remark, rec.Description)
	if action == ActionApprove && hasApprovalSignal(rec.Description) {
		details.Notes = stripApprovalPrefix(details.Notes)
	}

	return ReviewEntry{
		LogID:         rec.LogID,
		Action:        action,
		Notes:         details.Notes,
		ChangeDetails: details.ChangeDetails,
		OldStatus:     rec.OldStatus,
		NewStatus:     rec.NewStatus,
		UserID:        rec.UserID,
		CreateAt:      rec.CreateAt,
	}
}

func hasApprovalSignal(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "review approved") || strings.Contains(lower, "approved:")
}

// stripApprovalPrefix drops the "Review approved:" style prefix from a
// legacy approval record so only the reviewer's words remain.
func stripApprovalPrefix(notes string) string {
	lower := strings.ToLower(notes)
	const marker = "approved:"
	if idx := strings.Index(lower, marker); idx >= 0 {
		return strings.TrimSpace(notes[idx+len(marker):])
	}
	return notes
}
