package models

import "time"

// Absence defines a recorded absence for a student.
// Absences are visible regardless of the access request status.
type Absence struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	StudentID   int64     `json:"studentId" db:"student_id" example:"1"`
	AbsenceDate time.Time `json:"absenceDate" db:"absence_date"`
	Lesson      string    `json:"lesson" db:"lesson" example:"Physics"`
	Excused     bool      `json:"excused" db:"excused" example:"false"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
