package seed

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	appModels "github.com/baris/okulport/internal/app/models"
	appRepos "github.com/baris/okulport/internal/app/repositories"
	"github.com/baris/okulport/internal/db"
)

// demoRoster is the development roster created on an empty database.
// Fixed codes keep local testing predictable.
var demoRoster = []struct {
	name string
	code string
}{
	{"Ayşe Kaya", "DEMO2A4K"},
	{"Mehmet Demir", "DEMO3B7M"},
	{"Elif Şahin", "DEMO5C9E"},
}

// CreateDefaultData seeds a small demo roster when no students exist yet.
// Intended for development mode only; errors are collected, not fatal.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	studentRepo := appRepos.NewStudentRepository(database)
	gradeRepo := appRepos.NewGradeRepository(database.Pool)
	absenceRepo := appRepos.NewAbsenceRepository(database.Pool)

	lgr.Info().Msg("Checking/Creating default data (demo roster)...")

	existing, err := studentRepo.GetAll(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking existing students")
		return err
	}
	if len(existing) > 0 {
		lgr.Info().Msg("Students already exist, skipping demo roster")
		return nil
	}

	students := make([]*appModels.Student, 0, len(demoRoster))
	for _, entry := range demoRoster {
		students = append(students, &appModels.Student{
			FullName: entry.name,
			Code:     entry.code,
		})
	}

	if err := studentRepo.CreateBatch(ctx, students); err != nil {
		lgr.Error().Err(err).Msg("Error creating demo roster")
		return err
	}

	var finalErr error // Collect record errors without stopping the process

	for _, student := range students {
		grade := &appModels.Grade{
			StudentID: student.ID,
			Course:    "Mathematics",
			Term:      "2025-FALL",
			Score:     85,
		}
		if err := gradeRepo.Create(ctx, grade); err != nil {
			lgr.Error().Err(err).Int64("studentID", student.ID).Msg("Error creating demo grade")
			finalErr = errors.Join(finalErr, err)
		}

		absence := &appModels.Absence{
			StudentID:   student.ID,
			AbsenceDate: time.Now().AddDate(0, 0, -3),
			Lesson:      "Physics",
		}
		if err := absenceRepo.Create(ctx, absence); err != nil {
			lgr.Error().Err(err).Int64("studentID", student.ID).Msg("Error creating demo absence")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Int("students", len(students)).Msg("Demo roster created")
	return finalErr
}
