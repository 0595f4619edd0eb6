package models

import "time"

// RequestStatus represents the admin-decided state of an access request
type RequestStatus string

const (
	// StatusPending is the state of a freshly created binding awaiting an admin decision
	StatusPending RequestStatus = "PENDING"
	// StatusApproved unlocks the full student view (grades included)
	StatusApproved RequestStatus = "APPROVED"
	// StatusRejected locks the view and carries a rejection message
	StatusRejected RequestStatus = "REJECTED"
)

// IsValid reports whether s is one of the known statuses
func (s RequestStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// AccessRequest tracks the device binding and visibility status for a single
// student. There is at most one row per student (student_id is the primary
// key); the absence of a row means the student never attempted a login.
type AccessRequest struct {
	StudentID   int64         `json:"studentId" db:"student_id" example:"1"`
	DeviceID    string        `json:"deviceId" db:"device_id" example:"a3f1c2d4-phone"` // First device that logged in; never overwritten by later logins
	Status      RequestStatus `json:"status" db:"status" example:"PENDING"`
	Message     *string       `json:"message,omitempty" db:"message"` // Rejection reason, only meaningful when status is REJECTED
	RequestDate time.Time     `json:"requestDate" db:"request_date"`
}

// AccessRequestInfo is an access request joined with the owning student,
// as listed on the admin screen.
type AccessRequestInfo struct {
	StudentID   int64         `json:"studentId" db:"student_id"`
	FullName    string        `json:"fullName" db:"full_name"`
	Code        string        `json:"code" db:"code"`
	DeviceID    string        `json:"deviceId" db:"device_id"`
	Status      RequestStatus `json:"status" db:"status"`
	Message     *string       `json:"message,omitempty" db:"message"`
	RequestDate time.Time     `json:"requestDate" db:"request_date"`
}
