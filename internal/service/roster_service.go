package service

import (
	"context"

	"classroom-service/internal/models"
	"classroom-service/internal/qr"
)

type RosterStore interface {
	AddOnce(ctx context.Context, entry *models.RosterEntry) (bool, error)
	FindByClassroom(ctx context.Context, classroomID string) ([]models.RosterEntry, error)
	FindByStudent(ctx context.Context, studentID string) ([]models.RosterEntry, error)
	FindOne(ctx context.Context, classroomID, studentID string) (*models.RosterEntry, error)
	Confirm(ctx context.Context, classroomID, studentID string) (bool, error)
}

// RosterService handles student self-registration and the instructor's
// roster view.
type RosterService struct {
	roster     RosterStore
	classrooms ClassroomStore
}

func NewRosterService(roster RosterStore, classrooms ClassroomStore) *RosterService {
	return &RosterService{roster: roster, classrooms: classrooms}
}

// RegisterByPayload registers a student from a scanned registration QR.
// The bool result reports whether a new entry was created; a repeat scan
// returns the classroom with created=false and changes nothing.
func (s *RosterService) RegisterByPayload(ctx context.Context, payload, studentID, studentName string) (*models.Classroom, bool, error) {
	parsed, err := qr.ParseRegister(payload)
	if err != nil {
		return nil, false, err
	}
	return s.RegisterByID(ctx, parsed.ClassroomID, studentID, studentName)
}

// RegisterByID registers a student into a classroom by its id. The new
// entry starts pending until the instructor confirms it.
func (s *RosterService) RegisterByID(ctx context.Context, classroomID, studentID, studentName string) (*models.Classroom, bool, error) {
	classroom, err := s.classrooms.FindByID(ctx, classroomID)
	if err != nil {
		if notFound(err) {
			return nil, false, ErrNotFound
		}
		return nil, false, err
	}
	entry, err := models.NewRosterEntry(classroomID, studentID, studentName)
	if err != nil {
		return nil, false, err
	}
	created, err := s.roster.AddOnce(ctx, entry)
	if err != nil {
		return nil, false, err
	}
	return classroom, created, nil
}

// List returns the roster of a classroom for its owner.
func (s *RosterService) List(ctx context.Context, classroomID, callerID string) ([]models.RosterEntry, error) {
	if _, err := requireOwner(ctx, s.classrooms, classroomID, callerID); err != nil {
		return nil, err
	}
	return s.roster.FindByClassroom(ctx, classroomID)
}

// Confirm moves a registration from pending to confirmed. Owner only.
func (s *RosterService) Confirm(ctx context.Context, classroomID, studentID, callerID string) error {
	if _, err := requireOwner(ctx, s.classrooms, classroomID, callerID); err != nil {
		return err
	}
	matched, err := s.roster.Confirm(ctx, classroomID, studentID)
	if err != nil {
		return err
	}
	if !matched {
		return ErrNotFound
	}
	return nil
}

// Registration reports one student's entry in a classroom.
func (s *RosterService) Registration(ctx context.Context, classroomID, studentID string) (*models.RosterEntry, error) {
	entry, err := s.roster.FindOne(ctx, classroomID, studentID)
	if err != nil {
		if notFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return entry, nil
}

// ClassroomsFor lists the classrooms a student is registered in, backing
// the student dashboard. Registrations pointing at classrooms that no
// longer resolve are skipped.
func (s *RosterService) ClassroomsFor(ctx context.Context, studentID string) ([]models.Classroom, error) {
	entries, err := s.roster.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	classrooms := make([]models.Classroom, 0, len(entries))
	for _, entry := range entries {
		classroom, err := s.classrooms.FindByID(ctx, entry.ClassroomID)
		if err != nil {
			if notFound(err) {
				continue
			}
			return nil, err
		}
		classrooms = append(classrooms, *classroom)
	}
	return classrooms, nil
}
