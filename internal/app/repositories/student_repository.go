package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/baris/okulport/internal/app/models"
	"github.com/baris/okulport/internal/db"
	"github.com/baris/okulport/internal/pkg/apperrors"
	"github.com/baris/okulport/internal/pkg/dberrors"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	database *db.PostgresDB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(database *db.PostgresDB) *StudentRepository {
	return &StudentRepository{
		database: database,
	}
}

// GetByCode retrieves a student by access code
func (r *StudentRepository) GetByCode(ctx context.Context, code string) (*models.Student, error) {
	query := `
		SELECT id, full_name, code, created_at
		FROM students
		WHERE code = $1
	`

	var student models.Student
	err := r.database.Pool.QueryRow(ctx, query, code).Scan(
		&student.ID,
		&student.FullName,
		&student.Code,
		&student.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInvalidCode
		}
		return nil, fmt.Errorf("error retrieving student by code: %w", err)
	}

	return &student, nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT id, full_name, code, created_at
		FROM students
		WHERE id = $1
	`

	var student models.Student
	err := r.database.Pool.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.FullName,
		&student.Code,
		&student.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// GetAll retrieves all students ordered by name
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT id, full_name, code, created_at
		FROM students
		ORDER BY full_name
	`

	rows, err := r.database.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.FullName,
			&student.Code,
			&student.CreatedAt,
		); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// CodeExists checks if an access code is already issued
func (r *StudentRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.database.Pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE code = $1)`,
		code).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking code existence: %w", err)
	}

	return exists, nil
}

// CreateBatch inserts all students in a single transaction. Either the whole
// roster lands or none of it does.
func (r *StudentRepository) CreateBatch(ctx context.Context, students []*models.Student) error {
	return r.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO students (full_name, code)
			VALUES ($1, $2)
			RETURNING id, created_at
		`

		for _, student := range students {
			err := tx.QueryRow(ctx, query, student.FullName, student.Code).Scan(
				&student.ID,
				&student.CreatedAt,
			)
			if err != nil {
				if dberrors.IsDuplicateConstraintError(err, "students_code_key") {
					return fmt.Errorf("%w: %s", apperrors.ErrCodeExists, student.Code)
				}
				return fmt.Errorf("error inserting student %q: %w", student.FullName, err)
			}
		}

		return nil
	})
}
