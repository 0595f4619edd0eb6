package dto

import (
	"github.com/baris/okulport/internal/app/models"
	"github.com/baris/okulport/internal/app/services"
)

// StudentViewResponse is the visibility-gated data set for one student.
// Grades are empty while the view is locked; absences and notifications are
// always populated.
type StudentViewResponse struct {
	StudentID     int64                  `json:"studentId" example:"1"`
	FullName      string                 `json:"fullName" example:"Ayşe Kaya"`
	Locked        bool                   `json:"locked" example:"true"`
	Rejected      bool                   `json:"rejected" example:"false"`
	RejectReason  string                 `json:"rejectReason,omitempty" example:"late payment"`
	Notifications []*models.Notification `json:"notifications"`
	Absences      []*models.Absence      `json:"absences"`
	Grades        []*models.Grade        `json:"grades"`
}

// NewStudentViewResponse maps a service view to the response shape
func NewStudentViewResponse(view *services.StudentView) *StudentViewResponse {
	resp := &StudentViewResponse{
		StudentID:     view.Student.ID,
		FullName:      view.Student.FullName,
		Locked:        view.Locked,
		Rejected:      view.Rejected,
		RejectReason:  view.RejectReason,
		Notifications: view.Notifications,
		Absences:      view.Absences,
		Grades:        view.Grades,
	}
	// Keep the lists as [] instead of null in JSON.
	if resp.Notifications == nil {
		resp.Notifications = []*models.Notification{}
	}
	if resp.Absences == nil {
		resp.Absences = []*models.Absence{}
	}
	if resp.Grades == nil {
		resp.Grades = []*models.Grade{}
	}
	return resp
}
