package dto

type ReviewFeedbackRequest struct {
	Action        string `json:"action" binding:"required"`
	Notes         string `json:"notes"`
	ChangeDetails string `json:"change_details"`
}
