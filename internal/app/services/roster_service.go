package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/baris/okulport/internal/app/models"
	"github.com/baris/okulport/internal/pkg/apperrors"
	"github.com/baris/okulport/internal/pkg/codes"
	"github.com/baris/okulport/internal/pkg/validation"
)

// codeGenerationAttempts bounds retries when a generated code collides with
// an already issued one.
const codeGenerationAttempts = 5

// RosterStore is the persistence contract for roster imports
type RosterStore interface {
	CreateBatch(ctx context.Context, students []*models.Student) error
	CodeExists(ctx context.Context, code string) (bool, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
}

// ImportResult summarizes one roster import batch
type ImportResult struct {
	BatchID  string            `json:"batchId"`
	Imported int               `json:"imported"`
	Students []*models.Student `json:"students"`
}

// RosterService imports student rosters from spreadsheet files and lists the
// resulting identities. Each imported student gets a generated access code.
type RosterService interface {
	ImportRoster(ctx context.Context, file io.Reader) (*ImportResult, error)
	ListStudents(ctx context.Context) ([]*models.Student, error)
}

// rosterServiceImpl implements the RosterService interface
type rosterServiceImpl struct {
	store  RosterStore
	logger zerolog.Logger
}

// NewRosterService creates a new roster service instance
func NewRosterService(store RosterStore, logger zerolog.Logger) RosterService {
	return &rosterServiceImpl{
		store:  store,
		logger: logger,
	}
}

// ImportRoster reads student names from the first sheet of an .xlsx file and
// inserts them as one batch. The batch is transactional: a failure on any row
// leaves the roster untouched.
func (s *rosterServiceImpl) ImportRoster(ctx context.Context, file io.Reader) (*ImportResult, error) {
	names, err := readRosterNames(file)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, apperrors.ErrEmptyRoster
	}

	students := make([]*models.Student, 0, len(names))
	for _, name := range names {
		code, err := s.issueCode(ctx)
		if err != nil {
			return nil, err
		}
		students = append(students, &models.Student{
			FullName: name,
			Code:     code,
		})
	}

	if err := s.store.CreateBatch(ctx, students); err != nil {
		return nil, fmt.Errorf("error importing roster: %w", err)
	}

	batchID := uuid.NewString()
	s.logger.Info().
		Str("batchID", batchID).
		Int("imported", len(students)).
		Msg("Roster import completed")

	return &ImportResult{
		BatchID:  batchID,
		Imported: len(students),
		Students: students,
	}, nil
}

// ListStudents retrieves the full roster
func (s *rosterServiceImpl) ListStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	return students, nil
}

// issueCode generates an access code not yet present in the store
func (s *rosterServiceImpl) issueCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < codeGenerationAttempts; attempt++ {
		code, err := codes.Generate(codes.DefaultLength)
		if err != nil {
			return "", err
		}

		exists, err := s.store.CodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("error checking code uniqueness: %w", err)
		}
		if !exists {
			return code, nil
		}
	}

	return "", fmt.Errorf("could not issue a unique access code after %d attempts", codeGenerationAttempts)
}

// readRosterNames extracts student names from the first column of the first
// sheet. A leading header row is skipped; blank rows and too-short names are
// ignored.
func readRosterNames(file io.Reader) ([]string, error) {
	workbook, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnsupportedRoster, err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.ErrEmptyRoster
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("error reading roster sheet: %w", err)
	}

	var names []string
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		name := strings.TrimSpace(row[0])
		if i == 0 && isHeaderCell(name) {
			continue
		}
		if !validation.IsValidName(name) {
			continue
		}
		names = append(names, name)
	}

	return names, nil
}

// isHeaderCell recognizes common header labels in the name column
func isHeaderCell(value string) bool {
	switch strings.ToLower(value) {
	case "name", "full name", "student", "ad soyad", "öğrenci":
		return true
	}
	return false
}
