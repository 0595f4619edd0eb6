package models

import "time"

// Notification defines an announcement addressed to a student.
// Notifications are visible regardless of the access request status.
type Notification struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	StudentID int64     `json:"studentId" db:"student_id" example:"1"`
	Title     string    `json:"title" db:"title" example:"Parent meeting"`
	Body      string    `json:"body" db:"body" example:"The parent meeting is on Friday at 17:00."`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
