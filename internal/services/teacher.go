package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/mergington/school-gobackend/internal/models"
	"github.com/mergington/school-gobackend/internal/store"
)

// TeacherService exposes the staff directory. The same store backs the
// announcement service's authorization check.
type TeacherService struct {
	teachers store.TeacherStore
}

func NewTeacherService(teachers store.TeacherStore) *TeacherService {
	return &TeacherService{teachers: teachers}
}

var ErrTeacherNotFound = &APIError{Status: http.StatusNotFound, Detail: "Teacher not found"}

// GetTeacher returns a single teacher record by username.
func (s *TeacherService) GetTeacher(ctx context.Context, username string) (*models.Teacher, error) {
	teacher, err := s.teachers.FindByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrTeacherNotFound
	}
	if err != nil {
		return nil, err
	}
	// Never serialize credentials, even hashed ones.
	teacher.HPassword = ""
	return teacher, nil
}

// TeacherList returns the staff roster with the password field
// projected out.
func (s *TeacherService) TeacherList(ctx context.Context) ([]models.Teacher, error) {
	teachers, err := s.teachers.List(ctx)
	if err != nil {
		return nil, err
	}
	if teachers == nil {
		teachers = []models.Teacher{}
	}
	return teachers, nil
}
