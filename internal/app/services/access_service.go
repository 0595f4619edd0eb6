package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/baris/okulport/internal/app/models"
	"github.com/baris/okulport/internal/pkg/apperrors"
	"github.com/baris/okulport/internal/pkg/validation"
)

// StudentStore is the subset of student persistence the access service needs
type StudentStore interface {
	GetByCode(ctx context.Context, code string) (*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
}

// AccessRequestStore is the persistence contract for access requests.
// Create must be atomic: when a row already exists for the student it must
// fail with apperrors.ErrRequestExists instead of overwriting the binding.
type AccessRequestStore interface {
	Create(ctx context.Context, request *models.AccessRequest) error
	GetByStudentID(ctx context.Context, studentID int64) (*models.AccessRequest, error)
	UpdateStatus(ctx context.Context, studentID int64, status models.RequestStatus, message *string) error
	Delete(ctx context.Context, studentID int64) error
	List(ctx context.Context, status models.RequestStatus) ([]*models.AccessRequestInfo, error)
}

// StudentDataStore supplies the data shown in the student view
type StudentDataStore interface {
	GradesByStudentID(ctx context.Context, studentID int64) ([]*models.Grade, error)
	AbsencesByStudentID(ctx context.Context, studentID int64) ([]*models.Absence, error)
	NotificationsByStudentID(ctx context.Context, studentID int64) ([]*models.Notification, error)
}

// LoginResult is the outcome of a successful login attempt
type LoginResult struct {
	Student *models.Student
	Status  models.RequestStatus
	Message *string // rejection reason, set only when Status is REJECTED
}

// StudentView is the visibility-gated data set for one student. Absences and
// notifications are always included; grades only when the access request is
// APPROVED. That asymmetry is a product decision, not an accident.
type StudentView struct {
	Student       *models.Student
	Locked        bool
	Rejected      bool
	RejectReason  string
	Grades        []*models.Grade
	Absences      []*models.Absence
	Notifications []*models.Notification
}

// AccessService owns the lifecycle of the per-student access request:
// login decisions, the visibility gate, and admin transitions.
type AccessService interface {
	AttemptLogin(ctx context.Context, code, deviceID string) (*LoginResult, error)
	GetStudentView(ctx context.Context, studentID int64) (*StudentView, error)
	ListRequests(ctx context.Context, status models.RequestStatus) ([]*models.AccessRequestInfo, error)
	Approve(ctx context.Context, studentID int64) error
	Reject(ctx context.Context, studentID int64, reason string) error
	Reset(ctx context.Context, studentID int64) error
}

// accessServiceImpl implements the AccessService interface
type accessServiceImpl struct {
	students StudentStore
	requests AccessRequestStore
	data     StudentDataStore
	logger   zerolog.Logger
}

// NewAccessService creates a new access service instance
func NewAccessService(students StudentStore, requests AccessRequestStore, data StudentDataStore, logger zerolog.Logger) AccessService {
	return &accessServiceImpl{
		students: students,
		requests: requests,
		data:     data,
		logger:   logger,
	}
}

// AttemptLogin resolves a code to a student and evaluates the device binding:
//   - no request row yet: bind this device, status PENDING
//   - row exists, same device: report the current standing verbatim
//   - row exists, other device: ErrDeviceMismatch, nothing mutated
func (s *accessServiceImpl) AttemptLogin(ctx context.Context, code, deviceID string) (*LoginResult, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: code is required", apperrors.ErrValidationFailed)
	}
	if !validation.IsValidDeviceID(deviceID) {
		return nil, fmt.Errorf("%w: device id is required and must not exceed %d characters",
			apperrors.ErrValidationFailed, validation.DeviceIDMaxLength)
	}

	student, err := s.students.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCode) {
			return nil, apperrors.ErrInvalidCode
		}
		return nil, fmt.Errorf("error resolving code: %w", err)
	}

	request, err := s.requests.GetByStudentID(ctx, student.ID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrRequestNotFound) {
			return nil, fmt.Errorf("error loading access request: %w", err)
		}

		// First contact: bind the requesting device. The store insert is the
		// race arbiter; losing it means another device registered between our
		// read and write, so fall through and re-evaluate against that row.
		fresh := &models.AccessRequest{
			StudentID: student.ID,
			DeviceID:  deviceID,
			Status:    models.StatusPending,
		}
		err = s.requests.Create(ctx, fresh)
		if err == nil {
			s.logger.Info().
				Int64("studentID", student.ID).
				Str("deviceID", deviceID).
				Msg("New device binding created")
			return &LoginResult{Student: student, Status: models.StatusPending}, nil
		}
		if !errors.Is(err, apperrors.ErrRequestExists) {
			return nil, fmt.Errorf("error creating access request: %w", err)
		}

		request, err = s.requests.GetByStudentID(ctx, student.ID)
		if err != nil {
			return nil, fmt.Errorf("error reloading access request: %w", err)
		}
	}

	if request.DeviceID != deviceID {
		return nil, apperrors.ErrDeviceMismatch
	}

	return &LoginResult{Student: student, Status: request.Status, Message: request.Message}, nil
}

// GetStudentView builds the visibility-gated view for a student. The caller
// is trusted to have passed the login check; this gate depends only on the
// request status, not on device identity.
func (s *accessServiceImpl) GetStudentView(ctx context.Context, studentID int64) (*StudentView, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	view := &StudentView{
		Student: student,
		Locked:  true,
	}

	request, err := s.requests.GetByStudentID(ctx, studentID)
	if err != nil && !errors.Is(err, apperrors.ErrRequestNotFound) {
		return nil, fmt.Errorf("error loading access request: %w", err)
	}
	// A missing request means the student never logged in: locked, not rejected.
	if request != nil {
		switch request.Status {
		case models.StatusApproved:
			view.Locked = false
		case models.StatusRejected:
			view.Rejected = true
			if request.Message != nil {
				view.RejectReason = *request.Message
			}
		}
	}

	view.Absences, err = s.data.AbsencesByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving absences: %w", err)
	}

	view.Notifications, err = s.data.NotificationsByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving notifications: %w", err)
	}

	if !view.Locked {
		view.Grades, err = s.data.GradesByStudentID(ctx, studentID)
		if err != nil {
			return nil, fmt.Errorf("error retrieving grades: %w", err)
		}
	}

	return view, nil
}

// ListRequests retrieves access requests for the admin screen, most recent
// first. A zero status lists all of them.
func (s *accessServiceImpl) ListRequests(ctx context.Context, status models.RequestStatus) ([]*models.AccessRequestInfo, error) {
	if status != "" && !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidationFailed, status)
	}

	requests, err := s.requests.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("error listing access requests: %w", err)
	}
	return requests, nil
}

// Approve sets the request to APPROVED and clears any rejection message.
// Safe to call repeatedly. Approving a student who never logged in is an
// error: there is no binding to approve yet.
func (s *accessServiceImpl) Approve(ctx context.Context, studentID int64) error {
	if err := s.ensureStudent(ctx, studentID); err != nil {
		return err
	}

	err := s.requests.UpdateStatus(ctx, studentID, models.StatusApproved, nil)
	if err != nil {
		if errors.Is(err, apperrors.ErrRequestNotFound) {
			return apperrors.ErrRequestNotFound
		}
		return fmt.Errorf("error approving access request: %w", err)
	}

	s.logger.Info().Int64("studentID", studentID).Msg("Access request approved")
	return nil
}

// Reject sets the request to REJECTED with the given reason, overwriting any
// prior status, including a previous APPROVED.
func (s *accessServiceImpl) Reject(ctx context.Context, studentID int64, reason string) error {
	if err := s.ensureStudent(ctx, studentID); err != nil {
		return err
	}
	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("%w: rejection reason is required", apperrors.ErrValidationFailed)
	}

	err := s.requests.UpdateStatus(ctx, studentID, models.StatusRejected, &reason)
	if err != nil {
		if errors.Is(err, apperrors.ErrRequestNotFound) {
			return apperrors.ErrRequestNotFound
		}
		return fmt.Errorf("error rejecting access request: %w", err)
	}

	s.logger.Info().Int64("studentID", studentID).Str("reason", reason).Msg("Access request rejected")
	return nil
}

// Reset deletes the request row entirely, returning the student to the
// never-attempted state. This is the only way to rebind a code to a new
// device; the next login wins a fresh binding. Idempotent.
func (s *accessServiceImpl) Reset(ctx context.Context, studentID int64) error {
	if err := s.ensureStudent(ctx, studentID); err != nil {
		return err
	}

	if err := s.requests.Delete(ctx, studentID); err != nil {
		return fmt.Errorf("error resetting access request: %w", err)
	}

	s.logger.Info().Int64("studentID", studentID).Msg("Device binding released")
	return nil
}

// ensureStudent verifies the admin target exists as a student identity
func (s *accessServiceImpl) ensureStudent(ctx context.Context, studentID int64) error {
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
