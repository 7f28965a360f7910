package models

import (
	"errors"
	"time"
)

// ClassroomInfo is the editable block of a classroom. Updates overwrite the
// whole block, matching how the edit form submits it.
type ClassroomInfo struct {
	Code  string `bson:"code" json:"code"`
	Name  string `bson:"name" json:"name"`
	Room  string `bson:"room" json:"room"`
	Photo string `bson:"photo" json:"photo"`
}

type Classroom struct {
	ID        string        `bson:"_id" json:"id"`
	Owner     string        `bson:"owner" json:"owner"`
	Info      ClassroomInfo `bson:"info" json:"info"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
}

func NewClassroom(id, owner string, info ClassroomInfo) (*Classroom, error) {
	if id == "" {
		return nil, errors.New("classroom id is required")
	}
	if owner == "" {
		return nil, errors.New("classroom owner is required")
	}
	if info.Code == "" {
		return nil, errors.New("classroom code is required")
	}
	if info.Name == "" {
		return nil, errors.New("classroom name is required")
	}
	return &Classroom{
		ID:        id,
		Owner:     owner,
		Info:      info,
		CreatedAt: time.Now(),
	}, nil
}

// RosterStatus tracks a student registration inside a classroom.
type RosterStatus int

const (
	RosterPending   RosterStatus = 0
	RosterConfirmed RosterStatus = 1
)

func (s RosterStatus) String() string {
	switch s {
	case RosterPending:
		return "pending"
	case RosterConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

type RosterEntry struct {
	ClassroomID  string       `bson:"classroom_id" json:"classroom_id"`
	StudentID    string       `bson:"student_id" json:"student_id"`
	Name         string       `bson:"name" json:"name"`
	Status       RosterStatus `bson:"status" json:"status"`
	RegisteredAt time.Time    `bson:"registered_at" json:"registered_at"`
}

func NewRosterEntry(classroomID, studentID, name string) (*RosterEntry, error) {
	if classroomID == "" {
		return nil, errors.New("roster classroom id is required")
	}
	if studentID == "" {
		return nil, errors.New("roster student id is required")
	}
	if name == "" {
		return nil, errors.New("roster student name is required")
	}
	return &RosterEntry{
		ClassroomID:  classroomID,
		StudentID:    studentID,
		Name:         name,
		Status:       RosterPending,
		RegisteredAt: time.Now(),
	}, nil
}
