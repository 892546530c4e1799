package dto

type CreateTaskRequest struct {
	ProjectID int    `json:"project_id" binding:"required"`
	TaskName  string `json:"task_name" binding:"required"`
	Contents  string `json:"contents"`
	Assignee  string `json:"assignee"`
	Priority  string `json:"priority"`
	DueDate   string `json:"due_date"`
}

type UpdateTaskRequest struct {
	TaskName *string `json:"task_name"`
	Contents *string `json:"contents"`
	Assignee *string `json:"assignee"`
	Priority *string `json:"priority"`
	DueDate  *string `json:"due_date"`
}

type TaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type TaskProgressRequest struct {
	Progress *int `json:"progress" binding:"required"`
}
