package services

// TaskStatus values match the enum stored in the tasks table.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "Todo"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusDone       TaskStatus = "Done"
)

type ProjectStatus string

const (
	ProjectStatusTodo       ProjectStatus = "Todo"
	ProjectStatusInProgress ProjectStatus = "In Progress"
	ProjectStatusCompleted  ProjectStatus = "Completed"
	ProjectStatusOnHold     ProjectStatus = "On Hold"
	ProjectStatusArchived   ProjectStatus = "Archived"
)

type TaskPriority string

const (
	PriorityLow      TaskPriority = "Low"
	PriorityMedium   TaskPriority = "Medium"
	PriorityHigh     TaskPriority = "High"
	PriorityCritical TaskPriority = "Critical"
)

// ReviewStatus is the derived per-task review state. It is never stored;
// DeriveTaskReview recomputes it from changelog records.
type ReviewStatus string

const (
	ReviewPending          ReviewStatus = "pending"
	ReviewApproved         ReviewStatus = "approved"
	ReviewChangesRequested ReviewStatus = "changes_requested"
	ReviewOnHold           ReviewStatus = "on_hold"
)

type ReviewAction string

const (
	ActionApprove        ReviewAction = "approve"
	ActionRequestChanges ReviewAction = "request_changes"
	ActionHoldDiscussion ReviewAction = "hold_discussion"
)

// taskTransitions is the directed status transition table. Done can only
// be reached through In Progress, and reopening goes back to Todo.
var taskTransitions = map[TaskStatus][]TaskStatus{
	TaskStatusTodo:       {TaskStatusInProgress},
	TaskStatusInProgress: {TaskStatusDone, TaskStatusTodo},
	TaskStatusDone:       {TaskStatusTodo},
}

// CanTransition reports whether the table allows from -> to. It returns
// false for a self-transition; ChangeTaskStatus treats that as a no-op.
func CanTransition(from, to TaskStatus) bool {
	for _, allowed := range taskTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func ValidTaskStatus(s string) bool {
	switch TaskStatus(s) {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

func ValidPriority(s string) bool {
	switch TaskPriority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

func ValidReviewAction(s string) bool {
	switch ReviewAction(s) {
	case ActionApprove, ActionRequestChanges, ActionHoldDiscussion:
		return true
	}
	return false
}
