package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"classroom-service/internal/models"
)

type QuestionStore interface {
	Create(ctx context.Context, question *models.Question) error
	FindByCheckin(ctx context.Context, classroomID, checkinID string) ([]models.Question, error)
	FindByNumber(ctx context.Context, classroomID, checkinID string, number int) (*models.Question, error)
	UpdateByNumber(ctx context.Context, classroomID, checkinID string, number int, update bson.M) error
	DeleteByNumber(ctx context.Context, classroomID, checkinID string, number int) error
}

// QuestionInput carries the editable fields of a question. A zero Number
// on create means "assign the next free number".
type QuestionInput struct {
	Number  int                 `json:"question_no"`
	Text    string              `json:"question_text"`
	Show    bool                `json:"question_show"`
	Type    models.QuestionType `json:"question_type"`
	Choices []string            `json:"choices"`
}

// QuestionService covers quiz authoring for instructors and the visible
// question list for students.
type QuestionService struct {
	questions  QuestionStore
	classrooms ClassroomStore
}

func NewQuestionService(questions QuestionStore, classrooms ClassroomStore) *QuestionService {
	return &QuestionService{questions: questions, classrooms: classrooms}
}

func (s *QuestionService) Create(ctx context.Context, classroomID, checkinID, callerID string, input QuestionInput) (*models.Question, error) {
	if _, err := requireOwner(ctx, s.classrooms, classroomID, callerID); err != nil {
		return nil, err
	}
	number := input.Number
	if number == 0 {
		next, err := s.NextNumber(ctx, classroomID, checkinID)
		if err != nil {
			return nil, err
		}
		number = next
	}
	question, err := models.NewQuestion(classroomID, checkinID, number, input.Text, input.Type, input.Choices)
	if err != nil {
		return nil, err
	}
	question.Show = input.Show
	if err := s.questions.Create(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

// NextNumber suggests the next question number for the authoring form.
func (s *QuestionService) NextNumber(ctx context.Context, classroomID, checkinID string) (int, error) {
	questions, err := s.questions.FindByCheckin(ctx, classroomID, checkinID)
	if err != nil {
		return 0, err
	}
	return models.NextQuestionNumber(questions), nil
}

// ListAll returns every question of a check-in for its owner, hidden ones
// included.
func (s *QuestionService) ListAll(ctx context.Context, classroomID, checkinID, callerID string) ([]models.Question, error) {
	if _, err := requireOwner(ctx, s.classrooms, classroomID, callerID); err != nil {
		return nil, err
	}
	return s.questions.FindByCheckin(ctx, classroomID, checkinID)
}

// ListVisible is the student view: flagged-visible questions in ascending
// number order.
func (s *QuestionService) ListVisible(ctx context.Context, classroomID, checkinID string) ([]models.Question, error) {
	questions, err := s.questions.FindByCheckin(ctx, classroomID, checkinID)
	if err != nil {
		return nil, err
	}
	return models.VisibleQuestions(questions), nil
}

func (s *QuestionService) Get(ctx context.Context, classroomID, checkinID string, number int) (*models.Question, error) {
	question, err := s.questions.FindByNumber(ctx, classroomID, checkinID, number)
	if err != nil {
		if notFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) Update(ctx context.Context, classroomID, checkinID, callerID string, number int, input QuestionInput) (*models.Question, error) {
	if _, err := requireOwner(ctx, s.classrooms, classroomID, callerID); err != nil {
		return nil, err
	}
	validated, err := models.NewQuestion(classroomID, checkinID, numberOr(input.Number, number), input.Text, input.Type, input.Choices)
	if err != nil {
		return nil, err
	}
	update := bson.M{
		"question_no":   validated.Number,
		"question_text": validated.Text,
		"question_show": input.Show,
		"question_type": validated.Type,
		"choices":       validated.Choices,
	}
	if err := s.questions.UpdateByNumber(ctx, classroomID, checkinID, number, update); err != nil {
		if notFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Get(ctx, classroomID, checkinID, validated.Number)
}

func (s *QuestionService) Delete(ctx context.Context, classroomID, checkinID, callerID string, number int) error {
	if _, err := requireOwner(ctx, s.classrooms, classroomID, callerID); err != nil {
		return err
	}
	if err := s.questions.DeleteByNumber(ctx, classroomID, checkinID, number); err != nil {
		if notFound(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func numberOr(value, fallback int) int {
	if value > 0 {
		return value
	}
	return fallback
}
