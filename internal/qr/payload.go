// Package qr builds and parses the URL payloads embedded in classroom QR
// codes, and renders them as PNG images.
package qr

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const (
	registerSegment = "register-classroom"
	checkinSegment  = "student-checkin"
)

var ErrBadPayload = errors.New("unrecognized QR payload")

// RegisterPayload holds the classroom id extracted from a registration QR.
type RegisterPayload struct {
	ClassroomID string
}

// CheckinPayload holds the ids extracted from a check-in QR.
type CheckinPayload struct {
	ClassroomID string
	CheckinID   string
}

// BuildRegisterURL produces the registration link for a classroom.
func BuildRegisterURL(baseURL, classroomID string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(baseURL, "/"), registerSegment, classroomID)
}

// BuildCheckinURL produces the check-in link for a classroom session.
func BuildCheckinURL(baseURL, classroomID, checkinID string) string {
	return fmt.Sprintf("%s/%s/%s/%s", strings.TrimRight(baseURL, "/"), checkinSegment, classroomID, checkinID)
}

// ParseRegister extracts the classroom id from a registration payload URL.
// The payload must end with register-classroom/{classroomId}; anything else
// fails with ErrBadPayload rather than a partial match.
func ParseRegister(payload string) (RegisterPayload, error) {
	segments, err := pathSegments(payload)
	if err != nil {
		return RegisterPayload{}, err
	}
	if len(segments) < 2 {
		return RegisterPayload{}, ErrBadPayload
	}
	marker, id := segments[len(segments)-2], segments[len(segments)-1]
	if marker != registerSegment || id == "" {
		return RegisterPayload{}, ErrBadPayload
	}
	return RegisterPayload{ClassroomID: id}, nil
}

// ParseCheckin extracts classroom and check-in ids from a check-in payload
// URL of the shape student-checkin/{classroomId}/{checkinId}.
func ParseCheckin(payload string) (CheckinPayload, error) {
	segments, err := pathSegments(payload)
	if err != nil {
		return CheckinPayload{}, err
	}
	if len(segments) < 3 {
		return CheckinPayload{}, ErrBadPayload
	}
	marker := segments[len(segments)-3]
	classroomID := segments[len(segments)-2]
	checkinID := segments[len(segments)-1]
	if marker != checkinSegment || classroomID == "" || checkinID == "" {
		return CheckinPayload{}, ErrBadPayload
	}
	return CheckinPayload{ClassroomID: classroomID, CheckinID: checkinID}, nil
}

func pathSegments(payload string) ([]string, error) {
	u, err := url.Parse(payload)
	if err != nil {
		return nil, ErrBadPayload
	}
	trimmed := strings.Trim(u.Path, "/")
	if trimmed == "" {
		return nil, ErrBadPayload
	}
	return strings.Split(trimmed, "/"), nil
}
