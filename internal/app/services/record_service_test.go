package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baris/okulport/internal/app/models"
	"github.com/baris/okulport/internal/pkg/apperrors"
)

type fakeRecordWriter struct {
	grades        []*models.Grade
	absences      []*models.Absence
	notifications []*models.Notification
}

func (w *fakeRecordWriter) CreateGrade(_ context.Context, grade *models.Grade) error {
	w.grades = append(w.grades, grade)
	return nil
}

func (w *fakeRecordWriter) CreateAbsence(_ context.Context, absence *models.Absence) error {
	w.absences = append(w.absences, absence)
	return nil
}

func (w *fakeRecordWriter) CreateNotification(_ context.Context, notification *models.Notification) error {
	w.notifications = append(w.notifications, notification)
	return nil
}

func TestAddGrade(t *testing.T) {
	writer := &fakeRecordWriter{}
	svc := NewRecordService(newFakeStudentStore(testStudent()), writer)
	ctx := context.Background()

	err := svc.AddGrade(ctx, &models.Grade{StudentID: 1, Course: "Mathematics", Term: "2025-FALL", Score: 87.5})
	require.NoError(t, err)
	assert.Len(t, writer.grades, 1)

	tests := []struct {
		name  string
		grade *models.Grade
		want  error
	}{
		{"missing course", &models.Grade{StudentID: 1, Score: 50}, apperrors.ErrValidationFailed},
		{"score below range", &models.Grade{StudentID: 1, Course: "Math", Score: -1}, apperrors.ErrValidationFailed},
		{"score above range", &models.Grade{StudentID: 1, Course: "Math", Score: 101}, apperrors.ErrValidationFailed},
		{"unknown student", &models.Grade{StudentID: 42, Course: "Math", Score: 50}, apperrors.ErrStudentNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, svc.AddGrade(ctx, tt.grade), tt.want)
		})
	}
	assert.Len(t, writer.grades, 1)
}

func TestAddAbsence(t *testing.T) {
	writer := &fakeRecordWriter{}
	svc := NewRecordService(newFakeStudentStore(testStudent()), writer)
	ctx := context.Background()

	err := svc.AddAbsence(ctx, &models.Absence{StudentID: 1, Lesson: "Physics"})
	require.NoError(t, err)
	require.Len(t, writer.absences, 1)
	assert.False(t, writer.absences[0].AbsenceDate.IsZero(), "missing date defaults to now")

	assert.ErrorIs(t, svc.AddAbsence(ctx, &models.Absence{StudentID: 1}), apperrors.ErrValidationFailed)
	assert.ErrorIs(t, svc.AddAbsence(ctx, &models.Absence{StudentID: 42, Lesson: "Physics"}), apperrors.ErrStudentNotFound)
}

func TestAddNotification(t *testing.T) {
	writer := &fakeRecordWriter{}
	svc := NewRecordService(newFakeStudentStore(testStudent()), writer)
	ctx := context.Background()

	err := svc.AddNotification(ctx, &models.Notification{StudentID: 1, Title: "Parent meeting", Body: "Friday 17:00"})
	require.NoError(t, err)
	assert.Len(t, writer.notifications, 1)

	assert.ErrorIs(t, svc.AddNotification(ctx, &models.Notification{StudentID: 1}), apperrors.ErrValidationFailed)
	assert.ErrorIs(t, svc.AddNotification(ctx, &models.Notification{StudentID: 42, Title: "x"}), apperrors.ErrStudentNotFound)
}
