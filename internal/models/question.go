package models

import (
	"errors"
	"sort"
)

type QuestionType string

const (
	QuestionSubjective QuestionType = "subjective"
	QuestionObjective  QuestionType = "objective"
)

func (t QuestionType) Valid() bool {
	return t == QuestionSubjective || t == QuestionObjective
}

type Question struct {
	ClassroomID string       `bson:"classroom_id" json:"classroom_id"`
	CheckinID   string       `bson:"checkin_id" json:"checkin_id"`
	Number      int          `bson:"question_no" json:"question_no"`
	Text        string       `bson:"question_text" json:"question_text"`
	Show        bool         `bson:"question_show" json:"question_show"`
	Type        QuestionType `bson:"question_type" json:"question_type"`
	Choices     []string     `bson:"choices,omitempty" json:"choices,omitempty"`
}

func NewQuestion(classroomID, checkinID string, number int, text string, qType QuestionType, choices []string) (*Question, error) {
	if classroomID == "" || checkinID == "" {
		return nil, errors.New("question requires classroom and checkin ids")
	}
	if number < 1 {
		return nil, errors.New("question number must be positive")
	}
	if text == "" {
		return nil, errors.New("question text is required")
	}
	if !qType.Valid() {
		return nil, errors.New("question type must be subjective or objective")
	}
	if qType == QuestionObjective && len(choices) < 2 {
		return nil, errors.New("objective question needs at least two choices")
	}
	if qType == QuestionSubjective {
		choices = nil
	}
	return &Question{
		ClassroomID: classroomID,
		CheckinID:   checkinID,
		Number:      number,
		Text:        text,
		Type:        qType,
		Choices:     choices,
	}, nil
}

// NextQuestionNumber suggests the number for a new question: one past the
// highest existing number, or 1 for an empty set. Advisory only, the
// instructor may still override it.
func NextQuestionNumber(questions []Question) int {
	max := 0
	for _, q := range questions {
		if q.Number > max {
			max = q.Number
		}
	}
	return max + 1
}

// VisibleQuestions filters to the questions flagged visible and sorts them
// ascending by number, which is the student-facing ordering.
func VisibleQuestions(questions []Question) []Question {
	visible := make([]Question, 0, len(questions))
	for _, q := range questions {
		if q.Show {
			visible = append(visible, q)
		}
	}
	sort.Slice(visible, func(i, j int) bool { return visible[i].Number < visible[j].Number })
	return visible
}
