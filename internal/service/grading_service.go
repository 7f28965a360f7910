package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"classroom-service/internal/models"
)

type AnswerStore interface {
	Submit(ctx context.Context, classroomID, checkinID string, questionNo int, questionText, studentID string, answer models.StudentAnswer) error
	FindByQuestion(ctx context.Context, classroomID, checkinID string, questionNo int) (*models.AnswerSheet, error)
	SetScores(ctx context.Context, classroomID, checkinID string, questionNo int, scores map[string]float64) error
}

// GradingService handles answer submission and the instructor's grading
// view.
type GradingService struct {
	answers    AnswerStore
	questions  QuestionStore
	roster     RosterStore
	scores     ScoreStore
	classrooms ClassroomStore
}

func NewGradingService(answers AnswerStore, questions QuestionStore, roster RosterStore, scores ScoreStore, classrooms ClassroomStore) *GradingService {
	return &GradingService{
		answers:    answers,
		questions:  questions,
		roster:     roster,
		scores:     scores,
		classrooms: classrooms,
	}
}

// SubmitAnswer records a student's answer to a visible question. A second
// submission replaces the student's previous one.
func (s *GradingService) SubmitAnswer(ctx context.Context, classroomID, checkinID string, questionNo int, studentID, answerText string) error {
	question, err := s.questions.FindByNumber(ctx, classroomID, checkinID, questionNo)
	if err != nil {
		if notFound(err) {
			return ErrNotFound
		}
		return err
	}
	if !question.Show {
		return ErrQuestionHidden
	}
	answer, err := models.NewStudentAnswer(answerText)
	if err != nil {
		return err
	}
	return s.answers.Submit(ctx, classroomID, checkinID, questionNo, question.Text, studentID, *answer)
}

// Answers returns the grading view of a question: submissions joined with
// roster display names, ordered by name for a stable table.
func (s *GradingService) Answers(ctx context.Context, classroomID, checkinID string, questionNo int, callerID string) ([]models.GradedAnswer, error) {
	if _, err := requireOwner(ctx, s.classrooms, classroomID, callerID); err != nil {
		return nil, err
	}
	sheet, err := s.answers.FindByQuestion(ctx, classroomID, checkinID, questionNo)
	if err != nil {
		if notFound(err) {
			return []models.GradedAnswer{}, nil
		}
		return nil, err
	}
	entries, err := s.roster.FindByClassroom(ctx, classroomID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(entries))
	for _, entry := range entries {
		names[entry.StudentID] = entry.Name
	}

	graded := make([]models.GradedAnswer, 0, len(sheet.Students))
	for studentID, answer := range sheet.Students {
		name := names[studentID]
		if name == "" {
			name = studentID
		}
		graded = append(graded, models.GradedAnswer{
			StudentID: studentID,
			Name:      name,
			Answer:    answer.Answer,
			Time:      answer.Time,
			Score:     answer.Score,
		})
	}
	sort.Slice(graded, func(i, j int) bool { return graded[i].Name < graded[j].Name })
	return graded, nil
}

// SaveScores writes the instructor's grades for one question, both on the
// answer sheet and on each student's score mirror. Every graded id must
// have a submission on the sheet, otherwise the nested write would leave
// a score with no answer behind it.
func (s *GradingService) SaveScores(ctx context.Context, classroomID, checkinID string, questionNo int, callerID string, scores map[string]float64) error {
	if _, err := requireOwner(ctx, s.classrooms, classroomID, callerID); err != nil {
		return err
	}
	if len(scores) == 0 {
		return errors.New("no scores to save")
	}
	sheet, err := s.answers.FindByQuestion(ctx, classroomID, checkinID, questionNo)
	if err != nil {
		if notFound(err) {
			return ErrNotFound
		}
		return err
	}
	for studentID, score := range scores {
		if score < 0 {
			return errors.New("scores must not be negative")
		}
		if _, submitted := sheet.Students[studentID]; !submitted {
			return fmt.Errorf("no submission from student %s", studentID)
		}
	}
	if err := s.answers.SetScores(ctx, classroomID, checkinID, questionNo, scores); err != nil {
		if notFound(err) {
			return ErrNotFound
		}
		return err
	}
	for studentID, score := range scores {
		if err := s.scores.SetScore(ctx, classroomID, checkinID, studentID, questionNo, score); err != nil {
			return err
		}
	}
	return nil
}
