package models

import "time"

// Grade defines a single graded result for a student.
// Grades are the only data gated on an APPROVED access request.
type Grade struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	StudentID int64     `json:"studentId" db:"student_id" example:"1"`
	Course    string    `json:"course" db:"course" example:"Mathematics"`
	Term      string    `json:"term" db:"term" example:"2025-FALL"`
	Score     float64   `json:"score" db:"score" example:"87.5"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
