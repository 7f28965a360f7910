package models

import (
	"errors"
	"time"
)

// StudentAnswer is one student's submission for one question. Score stays
// nil until the instructor grades it.
type StudentAnswer struct {
	Answer string    `bson:"answer" json:"answer"`
	Time   time.Time `bson:"time" json:"time"`
	Score  *float64  `bson:"score,omitempty" json:"score,omitempty"`
}

// AnswerSheet collects all submissions for one question of a check-in,
// keyed by student id. Text carries a copy of the question text so the
// grading screen can render without a second lookup.
type AnswerSheet struct {
	ClassroomID string                   `bson:"classroom_id" json:"classroom_id"`
	CheckinID   string                   `bson:"checkin_id" json:"checkin_id"`
	QuestionNo  int                      `bson:"question_no" json:"question_no"`
	Text        string                   `bson:"text" json:"text"`
	Students    map[string]StudentAnswer `bson:"students" json:"students"`
}

func NewStudentAnswer(answer string) (*StudentAnswer, error) {
	if answer == "" {
		return nil, errors.New("answer text is required")
	}
	return &StudentAnswer{Answer: answer, Time: time.Now()}, nil
}

// GradedAnswer is the grading view row: a submission joined with the
// student's roster display name.
type GradedAnswer struct {
	StudentID string    `json:"student_id"`
	Name      string    `json:"name"`
	Answer    string    `json:"answer"`
	Time      time.Time `json:"time"`
	Score     *float64  `json:"score,omitempty"`
}
