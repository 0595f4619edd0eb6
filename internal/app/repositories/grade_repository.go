package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baris/okulport/internal/app/models"
)

// GradeRepository handles database operations for grades
type GradeRepository struct {
	db *pgxpool.Pool
}

// NewGradeRepository creates a new grade repository
func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{
		db: db,
	}
}

// Create inserts a new grade
func (r *GradeRepository) Create(ctx context.Context, grade *models.Grade) error {
	query := `
		INSERT INTO grades (student_id, course, term, score)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, grade.StudentID, grade.Course, grade.Term, grade.Score).Scan(
		&grade.ID,
		&grade.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error creating grade: %w", err)
	}

	return nil
}

// GetByStudentID retrieves all grades for a student
func (r *GradeRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Grade, error) {
	query := `
		SELECT id, student_id, course, term, score, created_at
		FROM grades
		WHERE student_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []*models.Grade
	for rows.Next() {
		var grade models.Grade
		if err := rows.Scan(
			&grade.ID,
			&grade.StudentID,
			&grade.Course,
			&grade.Term,
			&grade.Score,
			&grade.CreatedAt,
		); err != nil {
			return nil, err
		}
		grades = append(grades, &grade)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return grades, nil
}
