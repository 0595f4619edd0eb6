package services

import (
	"context"

	"github.com/baris/okulport/internal/app/models"
	"github.com/baris/okulport/internal/app/repositories"
)

// RecordStore bundles the three per-student record repositories behind the
// read and write contracts the services consume.
type RecordStore struct {
	grades        *repositories.GradeRepository
	absences      *repositories.AbsenceRepository
	notifications *repositories.NotificationRepository
}

// NewRecordStore creates a RecordStore over the record repositories
func NewRecordStore(
	grades *repositories.GradeRepository,
	absences *repositories.AbsenceRepository,
	notifications *repositories.NotificationRepository,
) *RecordStore {
	return &RecordStore{
		grades:        grades,
		absences:      absences,
		notifications: notifications,
	}
}

// GradesByStudentID retrieves all grades for a student
func (s *RecordStore) GradesByStudentID(ctx context.Context, studentID int64) ([]*models.Grade, error) {
	return s.grades.GetByStudentID(ctx, studentID)
}

// AbsencesByStudentID retrieves all absences for a student
func (s *RecordStore) AbsencesByStudentID(ctx context.Context, studentID int64) ([]*models.Absence, error) {
	return s.absences.GetByStudentID(ctx, studentID)
}

// NotificationsByStudentID retrieves all notifications for a student
func (s *RecordStore) NotificationsByStudentID(ctx context.Context, studentID int64) ([]*models.Notification, error) {
	return s.notifications.GetByStudentID(ctx, studentID)
}

// CreateGrade inserts a grade
func (s *RecordStore) CreateGrade(ctx context.Context, grade *models.Grade) error {
	return s.grades.Create(ctx, grade)
}

// CreateAbsence inserts an absence
func (s *RecordStore) CreateAbsence(ctx context.Context, absence *models.Absence) error {
	return s.absences.Create(ctx, absence)
}

// CreateNotification inserts a notification
func (s *RecordStore) CreateNotification(ctx context.Context, notification *models.Notification) error {
	return s.notifications.Create(ctx, notification)
}
