package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"classroom-service/internal/models"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrNotOwner         = errors.New("caller does not own this classroom")
	ErrEmailTaken       = errors.New("email is already registered")
	ErrBadCredentials   = errors.New("invalid email or password")
	ErrAlreadyCheckedIn = errors.New("already checked in")
	ErrQuestionHidden   = errors.New("question is not open for answers")
)

func notFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

// ClassroomStore is the classroom persistence surface shared by the
// services that need ownership checks.
type ClassroomStore interface {
	Create(ctx context.Context, classroom *models.Classroom) error
	FindByID(ctx context.Context, id string) (*models.Classroom, error)
	FindByOwner(ctx context.Context, ownerID string) ([]models.Classroom, error)
	UpdateInfo(ctx context.Context, id string, info models.ClassroomInfo) error
}

// requireOwner loads a classroom and verifies the caller owns it.
func requireOwner(ctx context.Context, classrooms ClassroomStore, classroomID, callerID string) (*models.Classroom, error) {
	classroom, err := classrooms.FindByID(ctx, classroomID)
	if err != nil {
		if notFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if classroom.Owner != callerID {
		return nil, ErrNotOwner
	}
	return classroom, nil
}
