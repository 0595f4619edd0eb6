package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/baris/okulport/internal/app/models"
	"github.com/baris/okulport/internal/pkg/apperrors"
	"github.com/baris/okulport/internal/pkg/validation"
)

type fakeRosterStore struct {
	students []*models.Student
	issued   map[string]bool
	batchErr error
}

func newFakeRosterStore() *fakeRosterStore {
	return &fakeRosterStore{issued: make(map[string]bool)}
}

func (s *fakeRosterStore) CreateBatch(_ context.Context, students []*models.Student) error {
	if s.batchErr != nil {
		return s.batchErr
	}
	for i, st := range students {
		st.ID = int64(len(s.students) + i + 1)
	}
	s.students = append(s.students, students...)
	return nil
}

func (s *fakeRosterStore) CodeExists(_ context.Context, code string) (bool, error) {
	return s.issued[code], nil
}

func (s *fakeRosterStore) GetAll(_ context.Context) ([]*models.Student, error) {
	return s.students, nil
}

// rosterFile builds an in-memory .xlsx with the given first-column values.
func rosterFile(t *testing.T, cells ...string) io.Reader {
	t.Helper()

	workbook := excelize.NewFile()
	sheet := workbook.GetSheetName(0)
	for i, value := range cells {
		require.NoError(t, workbook.SetCellValue(sheet, fmt.Sprintf("A%d", i+1), value))
	}

	var buf bytes.Buffer
	require.NoError(t, workbook.Write(&buf))
	return &buf
}

func TestImportRoster_CreatesStudentsWithCodes(t *testing.T) {
	store := newFakeRosterStore()
	svc := NewRosterService(store, zerolog.Nop())

	result, err := svc.ImportRoster(context.Background(), rosterFile(t, "Ayşe Kaya", "Mehmet Demir", "Zeynep Çelik"))
	require.NoError(t, err)

	assert.NotEmpty(t, result.BatchID)
	assert.Equal(t, 3, result.Imported)
	require.Len(t, result.Students, 3)
	assert.Equal(t, "Ayşe Kaya", result.Students[0].FullName)

	seen := make(map[string]bool)
	for _, st := range result.Students {
		assert.True(t, validation.IsValidCode(st.Code), "code %q must match the access code format", st.Code)
		assert.False(t, seen[st.Code], "codes within a batch must be unique")
		seen[st.Code] = true
	}
}

func TestImportRoster_SkipsHeaderAndBlankRows(t *testing.T) {
	store := newFakeRosterStore()
	svc := NewRosterService(store, zerolog.Nop())

	result, err := svc.ImportRoster(context.Background(), rosterFile(t, "Ad Soyad", "Ayşe Kaya", "", "  ", "Mehmet Demir"))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, "Ayşe Kaya", result.Students[0].FullName)
	assert.Equal(t, "Mehmet Demir", result.Students[1].FullName)
}

func TestImportRoster_EmptyFile(t *testing.T) {
	svc := NewRosterService(newFakeRosterStore(), zerolog.Nop())

	_, err := svc.ImportRoster(context.Background(), rosterFile(t, "name"))
	assert.ErrorIs(t, err, apperrors.ErrEmptyRoster)
}

func TestImportRoster_NotASpreadsheet(t *testing.T) {
	svc := NewRosterService(newFakeRosterStore(), zerolog.Nop())

	_, err := svc.ImportRoster(context.Background(), strings.NewReader("name\nAyşe Kaya\n"))
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedRoster)
}

func TestImportRoster_BatchFailurePropagates(t *testing.T) {
	store := newFakeRosterStore()
	store.batchErr = apperrors.ErrCodeExists
	svc := NewRosterService(store, zerolog.Nop())

	_, err := svc.ImportRoster(context.Background(), rosterFile(t, "Ayşe Kaya"))
	assert.ErrorIs(t, err, apperrors.ErrCodeExists)
	assert.Empty(t, store.students)
}

func TestListStudents(t *testing.T) {
	store := newFakeRosterStore()
	store.students = []*models.Student{
		{ID: 1, FullName: "Ayşe Kaya", Code: "K7TQ2M9A"},
	}
	svc := NewRosterService(store, zerolog.Nop())

	students, err := svc.ListStudents(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "K7TQ2M9A", students[0].Code)
}
