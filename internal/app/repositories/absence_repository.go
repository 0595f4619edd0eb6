package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baris/okulport/internal/app/models"
)

// AbsenceRepository handles database operations for absences
type AbsenceRepository struct {
	db *pgxpool.Pool
}

// NewAbsenceRepository creates a new absence repository
func NewAbsenceRepository(db *pgxpool.Pool) *AbsenceRepository {
	return &AbsenceRepository{
		db: db,
	}
}

// Create inserts a new absence
func (r *AbsenceRepository) Create(ctx context.Context, absence *models.Absence) error {
	query := `
		INSERT INTO absences (student_id, absence_date, lesson, excused)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, absence.StudentID, absence.AbsenceDate, absence.Lesson, absence.Excused).Scan(
		&absence.ID,
		&absence.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error creating absence: %w", err)
	}

	return nil
}

// GetByStudentID retrieves all absences for a student
func (r *AbsenceRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Absence, error) {
	query := `
		SELECT id, student_id, absence_date, lesson, excused, created_at
		FROM absences
		WHERE student_id = $1
		ORDER BY absence_date DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var absences []*models.Absence
	for rows.Next() {
		var absence models.Absence
		if err := rows.Scan(
			&absence.ID,
			&absence.StudentID,
			&absence.AbsenceDate,
			&absence.Lesson,
			&absence.Excused,
			&absence.CreatedAt,
		); err != nil {
			return nil, err
		}
		absences = append(absences, &absence)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return absences, nil
}
