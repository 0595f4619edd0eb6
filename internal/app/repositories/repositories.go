package repositories

import (
	"github.com/baris/okulport/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository       *StudentRepository
	AccessRequestRepository *AccessRequestRepository
	GradeRepository         *GradeRepository
	AbsenceRepository       *AbsenceRepository
	NotificationRepository  *NotificationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		StudentRepository:       NewStudentRepository(database),
		AccessRequestRepository: NewAccessRequestRepository(database.Pool),
		GradeRepository:         NewGradeRepository(database.Pool),
		AbsenceRepository:       NewAbsenceRepository(database.Pool),
		NotificationRepository:  NewNotificationRepository(database.Pool),
	}
}
