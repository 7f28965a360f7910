package models

import (
	"errors"
	"time"
)

// CheckinStatus is the lifecycle of one attendance session. The numeric
// values are stored in the documents; only CheckinActive accepts scans.
type CheckinStatus int

const (
	CheckinDisabled CheckinStatus = 0
	CheckinActive   CheckinStatus = 1
	CheckinFinished CheckinStatus = 2
)

func (s CheckinStatus) String() string {
	switch s {
	case CheckinDisabled:
		return "disabled"
	case CheckinActive:
		return "active"
	case CheckinFinished:
		return "finished"
	default:
		return "unknown"
	}
}

var (
	ErrCheckinDisabled = errors.New("check-in is not open yet")
	ErrCheckinFinished = errors.New("check-in has already finished")
)

// GateScan reports whether a scan may be recorded for this status. The
// returned error carries the status-specific message shown to the student.
func (s CheckinStatus) GateScan() error {
	switch s {
	case CheckinActive:
		return nil
	case CheckinFinished:
		return ErrCheckinFinished
	default:
		return ErrCheckinDisabled
	}
}

type Checkin struct {
	ID          string        `bson:"checkin_id" json:"id"`
	ClassroomID string        `bson:"classroom_id" json:"classroom_id"`
	Date        string        `bson:"date" json:"date"`
	Status      CheckinStatus `bson:"status" json:"status"`
	Code        string        `bson:"code" json:"code"`
	CreatedAt   time.Time     `bson:"created_at" json:"created_at"`
}

func NewCheckin(id, classroomID, date, code string) (*Checkin, error) {
	if id == "" {
		return nil, errors.New("checkin id is required")
	}
	if classroomID == "" {
		return nil, errors.New("checkin classroom id is required")
	}
	if date == "" {
		return nil, errors.New("checkin date is required")
	}
	return &Checkin{
		ID:          id,
		ClassroomID: classroomID,
		Date:        date,
		Status:      CheckinActive,
		Code:        code,
		CreatedAt:   time.Now(),
	}, nil
}

// Presence is the record of one student scanning one check-in.
type Presence struct {
	ClassroomID string    `bson:"classroom_id" json:"classroom_id"`
	CheckinID   string    `bson:"checkin_id" json:"checkin_id"`
	StudentID   string    `bson:"student_id" json:"student_id"`
	Name        string    `bson:"name" json:"name"`
	CheckedInAt time.Time `bson:"checked_in_at" json:"checked_in_at"`
}

func NewPresence(classroomID, checkinID, studentID, name string) (*Presence, error) {
	if classroomID == "" || checkinID == "" || studentID == "" {
		return nil, errors.New("presence requires classroom, checkin and student ids")
	}
	return &Presence{
		ClassroomID: classroomID,
		CheckinID:   checkinID,
		StudentID:   studentID,
		Name:        name,
		CheckedInAt: time.Now(),
	}, nil
}

// ScoreRecord mirrors a presence record and accumulates per-question scores
// as the instructor grades. Keys of Questions are decimal question numbers.
type ScoreRecord struct {
	ClassroomID string             `bson:"classroom_id" json:"classroom_id"`
	CheckinID   string             `bson:"checkin_id" json:"checkin_id"`
	StudentID   string             `bson:"student_id" json:"student_id"`
	Name        string             `bson:"name" json:"name"`
	Questions   map[string]float64 `bson:"questions" json:"questions"`
	CheckedInAt time.Time          `bson:"checked_in_at" json:"checked_in_at"`
}

// Total sums the graded questions for this student.
func (r *ScoreRecord) Total() float64 {
	var total float64
	for _, v := range r.Questions {
		total += v
	}
	return total
}
