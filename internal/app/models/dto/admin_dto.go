package dto

import "time"

// RejectRequest is the body of an admin rejection
type RejectRequest struct {
	Reason string `json:"reason" binding:"required" example:"late payment"`
}

// GradeRequest is the body of an admin grade insert
type GradeRequest struct {
	Course string  `json:"course" binding:"required" example:"Mathematics"`
	Term   string  `json:"term" example:"2025-FALL"`
	// Score has no required binding; a zero score is a legal value.
	Score float64 `json:"score" binding:"min=0,max=100" example:"87.5"`
}

// AbsenceRequest is the body of an admin absence insert
type AbsenceRequest struct {
	AbsenceDate time.Time `json:"absenceDate" example:"2025-11-03T00:00:00Z"`
	Lesson      string    `json:"lesson" binding:"required" example:"Physics"`
	Excused     bool      `json:"excused" example:"false"`
}

// NotificationRequest is the body of an admin notification insert
type NotificationRequest struct {
	Title string `json:"title" binding:"required" example:"Parent meeting"`
	Body  string `json:"body" example:"The parent meeting is on Friday at 17:00."`
}
