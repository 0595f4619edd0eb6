package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baris/okulport/internal/app/models"
)

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{
		db: db,
	}
}

// Create inserts a new notification
func (r *NotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	query := `
		INSERT INTO notifications (student_id, title, body)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, notification.StudentID, notification.Title, notification.Body).Scan(
		&notification.ID,
		&notification.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error creating notification: %w", err)
	}

	return nil
}

// GetByStudentID retrieves all notifications for a student
func (r *NotificationRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Notification, error) {
	query := `
		SELECT id, student_id, title, body, created_at
		FROM notifications
		WHERE student_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		var notification models.Notification
		if err := rows.Scan(
			&notification.ID,
			&notification.StudentID,
			&notification.Title,
			&notification.Body,
			&notification.CreatedAt,
		); err != nil {
			return nil, err
		}
		notifications = append(notifications, &notification)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
