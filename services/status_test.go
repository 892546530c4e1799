package services

import (
	"testing"
)

func TestCanTransitionTable(t *testing.T) {
	cases := []struct {
		from    TaskStatus
		to      TaskStatus
		allowed bool
	}{
		{TaskStatusTodo, TaskStatusInProgress, true},
		{TaskStatusTodo, TaskStatusDone, false},
		{TaskStatusInProgress, TaskStatusDone, true},
		{TaskStatusInProgress, TaskStatusTodo, true},
		{TaskStatusDone, TaskStatusTodo, true},
		{TaskStatusDone, TaskStatusInProgress, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.allowed {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestCanTransitionSelfIsNotListed(t *testing.T) {
	for _, s := range []TaskStatus{TaskStatusTodo, TaskStatusInProgress, TaskStatusDone} {
		if CanTransition(s, s) {
			t.Errorf("self transition %q should not be in the table", s)
		}
	}
}

func TestValidTaskStatus(t *testing.T) {
	for _, s := range []string{"Todo", "In Progress", "Done"} {
		if !ValidTaskStatus(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range []string{"", "todo", "Completed", "Archived"} {
		if ValidTaskStatus(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestValidReviewAction(t *testing.T) {
	for _, s := range []string{"approve", "request_changes", "hold_discussion"} {
		if !ValidReviewAction(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	if ValidReviewAction("reject") {
		t.Error("expected \"reject\" to be invalid")
	}
}
