package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baris/okulport/internal/app/models"
	"github.com/baris/okulport/internal/pkg/apperrors"
	"github.com/baris/okulport/internal/pkg/dberrors"
)

// AccessRequestRepository handles database operations for access requests.
// The table holds at most one row per student; student_id is the primary key.
type AccessRequestRepository struct {
	db *pgxpool.Pool
}

// NewAccessRequestRepository creates a new access request repository
func NewAccessRequestRepository(db *pgxpool.Pool) *AccessRequestRepository {
	return &AccessRequestRepository{
		db: db,
	}
}

// Create inserts a fresh PENDING request binding the student to a device.
// When a row already exists for the student the primary key rejects the
// insert and apperrors.ErrRequestExists is returned; the caller must
// re-evaluate against the winning row. This is the arbiter for concurrent
// first logins: the database decides, not the application.
func (r *AccessRequestRepository) Create(ctx context.Context, request *models.AccessRequest) error {
	query := `
		INSERT INTO access_requests (student_id, device_id, status)
		VALUES ($1, $2, $3)
		RETURNING request_date
	`

	err := r.db.QueryRow(ctx, query, request.StudentID, request.DeviceID, request.Status).Scan(&request.RequestDate)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "access_requests_pkey") {
			return apperrors.ErrRequestExists
		}
		return fmt.Errorf("error creating access request: %w", err)
	}

	return nil
}

// GetByStudentID retrieves the access request for a student
func (r *AccessRequestRepository) GetByStudentID(ctx context.Context, studentID int64) (*models.AccessRequest, error) {
	query := `
		SELECT student_id, device_id, status, message, request_date
		FROM access_requests
		WHERE student_id = $1
	`

	var request models.AccessRequest
	err := r.db.QueryRow(ctx, query, studentID).Scan(
		&request.StudentID,
		&request.DeviceID,
		&request.Status,
		&request.Message,
		&request.RequestDate,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, fmt.Errorf("error retrieving access request: %w", err)
	}

	return &request, nil
}

// UpdateStatus overwrites the status of an existing request. The message is
// set for rejections and cleared for every other status. Returns
// apperrors.ErrRequestNotFound when the student has no request row.
func (r *AccessRequestRepository) UpdateStatus(ctx context.Context, studentID int64, status models.RequestStatus, message *string) error {
	if status != models.StatusRejected {
		message = nil
	}

	query := `
		UPDATE access_requests
		SET status = $1, message = $2
		WHERE student_id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, status, message, studentID)
	if err != nil {
		return fmt.Errorf("error updating access request status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRequestNotFound
	}

	return nil
}

// Delete removes the request row, releasing the device binding. Deleting a
// missing row is not an error; reset is idempotent.
func (r *AccessRequestRepository) Delete(ctx context.Context, studentID int64) error {
	query := `DELETE FROM access_requests WHERE student_id = $1`

	if _, err := r.db.Exec(ctx, query, studentID); err != nil {
		return fmt.Errorf("error deleting access request: %w", err)
	}

	return nil
}

// List retrieves access requests joined with student name and code, most
// recent first. An empty status lists everything.
func (r *AccessRequestRepository) List(ctx context.Context, status models.RequestStatus) ([]*models.AccessRequestInfo, error) {
	query := `
		SELECT ar.student_id, s.full_name, s.code, ar.device_id, ar.status, ar.message, ar.request_date
		FROM access_requests ar
		JOIN students s ON s.id = ar.student_id
		WHERE $1 = '' OR ar.status = $1
		ORDER BY ar.request_date DESC
	`

	rows, err := r.db.Query(ctx, query, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*models.AccessRequestInfo
	for rows.Next() {
		var info models.AccessRequestInfo
		if err := rows.Scan(
			&info.StudentID,
			&info.FullName,
			&info.Code,
			&info.DeviceID,
			&info.Status,
			&info.Message,
			&info.RequestDate,
		); err != nil {
			return nil, err
		}
		requests = append(requests, &info)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
