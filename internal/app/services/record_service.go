package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/baris/okulport/internal/app/models"
	"github.com/baris/okulport/internal/pkg/apperrors"
)

// RecordWriter is the persistence contract for per-student record inserts
type RecordWriter interface {
	CreateGrade(ctx context.Context, grade *models.Grade) error
	CreateAbsence(ctx context.Context, absence *models.Absence) error
	CreateNotification(ctx context.Context, notification *models.Notification) error
}

// RecordService records grades, absences and notifications for students.
// These are plain inserts with no state logic; visibility is decided
// elsewhere by the access service.
type RecordService interface {
	AddGrade(ctx context.Context, grade *models.Grade) error
	AddAbsence(ctx context.Context, absence *models.Absence) error
	AddNotification(ctx context.Context, notification *models.Notification) error
}

// recordServiceImpl implements the RecordService interface
type recordServiceImpl struct {
	students StudentStore
	writer   RecordWriter
}

// NewRecordService creates a new record service instance
func NewRecordService(students StudentStore, writer RecordWriter) RecordService {
	return &recordServiceImpl{
		students: students,
		writer:   writer,
	}
}

// AddGrade records a grade for an existing student
func (s *recordServiceImpl) AddGrade(ctx context.Context, grade *models.Grade) error {
	if grade == nil {
		return fmt.Errorf("%w: grade is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(grade.Course) == "" {
		return fmt.Errorf("%w: course is required", apperrors.ErrValidationFailed)
	}
	if grade.Score < 0 || grade.Score > 100 {
		return fmt.Errorf("%w: score must be between 0 and 100", apperrors.ErrValidationFailed)
	}

	if err := s.ensureStudent(ctx, grade.StudentID); err != nil {
		return err
	}

	if err := s.writer.CreateGrade(ctx, grade); err != nil {
		return fmt.Errorf("error recording grade: %w", err)
	}
	return nil
}

// AddAbsence records an absence for an existing student
func (s *recordServiceImpl) AddAbsence(ctx context.Context, absence *models.Absence) error {
	if absence == nil {
		return fmt.Errorf("%w: absence is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(absence.Lesson) == "" {
		return fmt.Errorf("%w: lesson is required", apperrors.ErrValidationFailed)
	}
	if absence.AbsenceDate.IsZero() {
		absence.AbsenceDate = time.Now()
	}

	if err := s.ensureStudent(ctx, absence.StudentID); err != nil {
		return err
	}

	if err := s.writer.CreateAbsence(ctx, absence); err != nil {
		return fmt.Errorf("error recording absence: %w", err)
	}
	return nil
}

// AddNotification records a notification for an existing student
func (s *recordServiceImpl) AddNotification(ctx context.Context, notification *models.Notification) error {
	if notification == nil {
		return fmt.Errorf("%w: notification is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(notification.Title) == "" {
		return fmt.Errorf("%w: title is required", apperrors.ErrValidationFailed)
	}

	if err := s.ensureStudent(ctx, notification.StudentID); err != nil {
		return err
	}

	if err := s.writer.CreateNotification(ctx, notification); err != nil {
		return fmt.Errorf("error recording notification: %w", err)
	}
	return nil
}

func (s *recordServiceImpl) ensureStudent(ctx context.Context, studentID int64) error {
	if studentID <= 0 {
		return fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error retrieving student: %w", err)
	}

	return nil
}
