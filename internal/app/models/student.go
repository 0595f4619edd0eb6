package models

import "time"

// Student defines the student model based on the 'students' table.
// Records are created by the roster import and never mutated afterwards;
// the access code is the external-facing login credential.
type Student struct {
	ID        int64     `json:"id" db:"id" example:"1"`                      // Unique identifier for the student record
	FullName  string    `json:"fullName" db:"full_name" example:"Ayşe Kaya"` // Student's full name as imported from the roster
	Code      string    `json:"code" db:"code" example:"K7TQ2M9A"`           // Unique access code issued at import time
	CreatedAt time.Time `json:"createdAt" db:"created_at"`                   // Roster import timestamp
}
