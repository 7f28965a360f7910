package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"classroom-service/internal/models"
	"classroom-service/internal/qr"
)

type CheckinStore interface {
	Create(ctx context.Context, checkin *models.Checkin) error
	FindByID(ctx context.Context, classroomID, checkinID string) (*models.Checkin, error)
	FindByClassroom(ctx context.Context, classroomID string) ([]models.Checkin, error)
	UpdateStatus(ctx context.Context, classroomID, checkinID string, status models.CheckinStatus) error
}

type PresenceStore interface {
	RecordOnce(ctx context.Context, presence *models.Presence) (bool, error)
	FindByCheckin(ctx context.Context, classroomID, checkinID string) ([]models.Presence, error)
}

type ScoreStore interface {
	EnsureRecord(ctx context.Context, record *models.ScoreRecord) error
	SetScore(ctx context.Context, classroomID, checkinID, studentID string, questionNo int, score float64) error
	FindByCheckin(ctx context.Context, classroomID, checkinID string) ([]models.ScoreRecord, error)
}

// CheckinService drives the attendance flow: instructors create and close
// check-in sessions, students scan their QR codes.
type CheckinService struct {
	checkins   CheckinStore
	presence   PresenceStore
	scores     ScoreStore
	classrooms ClassroomStore
	baseURL    string
}

func NewCheckinService(checkins CheckinStore, presence PresenceStore, scores ScoreStore, classrooms ClassroomStore, baseURL string) *CheckinService {
	return &CheckinService{
		checkins:   checkins,
		presence:   presence,
		scores:     scores,
		classrooms: classrooms,
		baseURL:    baseURL,
	}
}

// Create opens a new check-in session for a classroom. New sessions start
// active so students can scan immediately.
func (s *CheckinService) Create(ctx context.Context, classroomID, callerID, date string) (*models.Checkin, error) {
	if _, err := requireOwner(ctx, s.classrooms, classroomID, callerID); err != nil {
		return nil, err
	}
	id := uuid.NewString()
	code := strings.ToUpper(strings.ReplaceAll(id, "-", "")[:6])
	checkin, err := models.NewCheckin(id, classroomID, date, code)
	if err != nil {
		return nil, err
	}
	if err := s.checkins.Create(ctx, checkin); err != nil {
		return nil, err
	}
	return checkin, nil
}

func (s *CheckinService) List(ctx context.Context, classroomID, callerID string) ([]models.Checkin, error) {
	if _, err := requireOwner(ctx, s.classrooms, classroomID, callerID); err != nil {
		return nil, err
	}
	return s.checkins.FindByClassroom(ctx, classroomID)
}

func (s *CheckinService) Get(ctx context.Context, classroomID, checkinID string) (*models.Checkin, error) {
	checkin, err := s.checkins.FindByID(ctx, classroomID, checkinID)
	if err != nil {
		if notFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return checkin, nil
}

// SetStatus is the instructor transition: open, close or disable a
// check-in session.
func (s *CheckinService) SetStatus(ctx context.Context, classroomID, checkinID, callerID string, status models.CheckinStatus) (*models.Checkin, error) {
	if _, err := requireOwner(ctx, s.classrooms, classroomID, callerID); err != nil {
		return nil, err
	}
	switch status {
	case models.CheckinDisabled, models.CheckinActive, models.CheckinFinished:
	default:
		return nil, errors.New("invalid check-in status")
	}
	if err := s.checkins.UpdateStatus(ctx, classroomID, checkinID, status); err != nil {
		if notFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Get(ctx, classroomID, checkinID)
}

// QRLink is the URL embedded in a check-in QR code.
func (s *CheckinService) QRLink(classroomID, checkinID string) string {
	return qr.BuildCheckinURL(s.baseURL, classroomID, checkinID)
}

// Scan records a student's presence from a scanned QR payload. The write
// is conditional: a student who already checked in gets
// ErrAlreadyCheckedIn and the stored timestamp is untouched. A matching
// scores record is created as the grading mirror.
func (s *CheckinService) Scan(ctx context.Context, payload, studentID, studentName string) (*models.Presence, error) {
	parsed, err := qr.ParseCheckin(payload)
	if err != nil {
		return nil, err
	}
	checkin, err := s.Get(ctx, parsed.ClassroomID, parsed.CheckinID)
	if err != nil {
		return nil, err
	}
	if err := checkin.Status.GateScan(); err != nil {
		return nil, err
	}

	presence, err := models.NewPresence(parsed.ClassroomID, parsed.CheckinID, studentID, studentName)
	if err != nil {
		return nil, err
	}
	created, err := s.presence.RecordOnce(ctx, presence)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, ErrAlreadyCheckedIn
	}

	mirror := &models.ScoreRecord{
		ClassroomID: presence.ClassroomID,
		CheckinID:   presence.CheckinID,
		StudentID:   presence.StudentID,
		Name:        presence.Name,
		CheckedInAt: presence.CheckedInAt,
	}
	if err := s.scores.EnsureRecord(ctx, mirror); err != nil {
		return nil, err
	}
	return presence, nil
}

// Attendance lists the presence records of a check-in for its owner.
func (s *CheckinService) Attendance(ctx context.Context, classroomID, checkinID, callerID string) ([]models.Presence, error) {
	if _, err := requireOwner(ctx, s.classrooms, classroomID, callerID); err != nil {
		return nil, err
	}
	return s.presence.FindByCheckin(ctx, classroomID, checkinID)
}

// Scores lists the grading mirror records of a check-in for its owner.
func (s *CheckinService) Scores(ctx context.Context, classroomID, checkinID, callerID string) ([]models.ScoreRecord, error) {
	if _, err := requireOwner(ctx, s.classrooms, classroomID, callerID); err != nil {
		return nil, err
	}
	return s.scores.FindByCheckin(ctx, classroomID, checkinID)
}
