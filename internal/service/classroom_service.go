package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"classroom-service/internal/models"
	"classroom-service/internal/qr"
)

// ClassroomService covers creating, reading and editing classrooms plus
// the registration QR link.
type ClassroomService struct {
	classrooms ClassroomStore
	baseURL    string
}

func NewClassroomService(classrooms ClassroomStore, baseURL string) *ClassroomService {
	return &ClassroomService{classrooms: classrooms, baseURL: baseURL}
}

func (s *ClassroomService) Create(ctx context.Context, ownerID string, info models.ClassroomInfo) (*models.Classroom, error) {
	classroom, err := models.NewClassroom(uuid.NewString(), ownerID, info)
	if err != nil {
		return nil, err
	}
	if err := s.classrooms.Create(ctx, classroom); err != nil {
		return nil, err
	}
	return classroom, nil
}

func (s *ClassroomService) Get(ctx context.Context, id string) (*models.Classroom, error) {
	classroom, err := s.classrooms.FindByID(ctx, id)
	if err != nil {
		if notFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return classroom, nil
}

// GetOwned loads a classroom only for its owner.
func (s *ClassroomService) GetOwned(ctx context.Context, id, callerID string) (*models.Classroom, error) {
	return requireOwner(ctx, s.classrooms, id, callerID)
}

func (s *ClassroomService) ListOwned(ctx context.Context, ownerID string) ([]models.Classroom, error) {
	return s.classrooms.FindByOwner(ctx, ownerID)
}

func (s *ClassroomService) UpdateInfo(ctx context.Context, id, callerID string, info models.ClassroomInfo) (*models.Classroom, error) {
	if _, err := requireOwner(ctx, s.classrooms, id, callerID); err != nil {
		return nil, err
	}
	if info.Code == "" || info.Name == "" {
		return nil, errors.New("classroom code and name are required")
	}
	if err := s.classrooms.UpdateInfo(ctx, id, info); err != nil {
		if notFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Get(ctx, id)
}

// RegisterLink is the URL embedded in the classroom registration QR code.
func (s *ClassroomService) RegisterLink(classroomID string) string {
	return qr.BuildRegisterURL(s.baseURL, classroomID)
}
