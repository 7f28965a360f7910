package service

import (
	"context"
	"sort"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"classroom-service/internal/models"
)

// In-memory stores backing the service tests.

type fakeClassroomStore struct {
	classrooms map[string]models.Classroom
}

func newFakeClassroomStore() *fakeClassroomStore {
	return &fakeClassroomStore{classrooms: make(map[string]models.Classroom)}
}

func (f *fakeClassroomStore) Create(_ context.Context, classroom *models.Classroom) error {
	f.classrooms[classroom.ID] = *classroom
	return nil
}

func (f *fakeClassroomStore) FindByID(_ context.Context, id string) (*models.Classroom, error) {
	classroom, ok := f.classrooms[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &classroom, nil
}

func (f *fakeClassroomStore) FindByOwner(_ context.Context, ownerID string) ([]models.Classroom, error) {
	var out []models.Classroom
	for _, c := range f.classrooms {
		if c.Owner == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeClassroomStore) UpdateInfo(_ context.Context, id string, info models.ClassroomInfo) error {
	classroom, ok := f.classrooms[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	classroom.Info = info
	f.classrooms[id] = classroom
	return nil
}

type fakeCheckinStore struct {
	checkins map[string]models.Checkin
}

func newFakeCheckinStore() *fakeCheckinStore {
	return &fakeCheckinStore{checkins: make(map[string]models.Checkin)}
}

func (f *fakeCheckinStore) key(classroomID, checkinID string) string {
	return classroomID + "/" + checkinID
}

func (f *fakeCheckinStore) Create(_ context.Context, checkin *models.Checkin) error {
	f.checkins[f.key(checkin.ClassroomID, checkin.ID)] = *checkin
	return nil
}

func (f *fakeCheckinStore) FindByID(_ context.Context, classroomID, checkinID string) (*models.Checkin, error) {
	checkin, ok := f.checkins[f.key(classroomID, checkinID)]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &checkin, nil
}

func (f *fakeCheckinStore) FindByClassroom(_ context.Context, classroomID string) ([]models.Checkin, error) {
	var out []models.Checkin
	for _, c := range f.checkins {
		if c.ClassroomID == classroomID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCheckinStore) UpdateStatus(_ context.Context, classroomID, checkinID string, status models.CheckinStatus) error {
	key := f.key(classroomID, checkinID)
	checkin, ok := f.checkins[key]
	if !ok {
		return mongo.ErrNoDocuments
	}
	checkin.Status = status
	f.checkins[key] = checkin
	return nil
}

type fakePresenceStore struct {
	records map[string]models.Presence
}

func newFakePresenceStore() *fakePresenceStore {
	return &fakePresenceStore{records: make(map[string]models.Presence)}
}

func (f *fakePresenceStore) RecordOnce(_ context.Context, presence *models.Presence) (bool, error) {
	key := presence.ClassroomID + "/" + presence.CheckinID + "/" + presence.StudentID
	if _, exists := f.records[key]; exists {
		return false, nil
	}
	f.records[key] = *presence
	return true, nil
}

func (f *fakePresenceStore) FindByCheckin(_ context.Context, classroomID, checkinID string) ([]models.Presence, error) {
	var out []models.Presence
	for _, p := range f.records {
		if p.ClassroomID == classroomID && p.CheckinID == checkinID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeScoreStore struct {
	records map[string]models.ScoreRecord
}

func newFakeScoreStore() *fakeScoreStore {
	return &fakeScoreStore{records: make(map[string]models.ScoreRecord)}
}

func (f *fakeScoreStore) key(classroomID, checkinID, studentID string) string {
	return classroomID + "/" + checkinID + "/" + studentID
}

func (f *fakeScoreStore) EnsureRecord(_ context.Context, record *models.ScoreRecord) error {
	key := f.key(record.ClassroomID, record.CheckinID, record.StudentID)
	if _, exists := f.records[key]; exists {
		return nil
	}
	copied := *record
	copied.Questions = make(map[string]float64)
	f.records[key] = copied
	return nil
}

func (f *fakeScoreStore) SetScore(_ context.Context, classroomID, checkinID, studentID string, questionNo int, score float64) error {
	key := f.key(classroomID, checkinID, studentID)
	record, ok := f.records[key]
	if !ok {
		return nil
	}
	record.Questions[strconv.Itoa(questionNo)] = score
	f.records[key] = record
	return nil
}

func (f *fakeScoreStore) FindByCheckin(_ context.Context, classroomID, checkinID string) ([]models.ScoreRecord, error) {
	var out []models.ScoreRecord
	for _, r := range f.records {
		if r.ClassroomID == classroomID && r.CheckinID == checkinID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeRosterStore struct {
	entries map[string]models.RosterEntry
}

func newFakeRosterStore() *fakeRosterStore {
	return &fakeRosterStore{entries: make(map[string]models.RosterEntry)}
}

func (f *fakeRosterStore) key(classroomID, studentID string) string {
	return classroomID + "/" + studentID
}

func (f *fakeRosterStore) AddOnce(_ context.Context, entry *models.RosterEntry) (bool, error) {
	key := f.key(entry.ClassroomID, entry.StudentID)
	if _, exists := f.entries[key]; exists {
		return false, nil
	}
	f.entries[key] = *entry
	return true, nil
}

func (f *fakeRosterStore) FindByClassroom(_ context.Context, classroomID string) ([]models.RosterEntry, error) {
	var out []models.RosterEntry
	for _, e := range f.entries {
		if e.ClassroomID == classroomID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeRosterStore) FindByStudent(_ context.Context, studentID string) ([]models.RosterEntry, error) {
	var out []models.RosterEntry
	for _, e := range f.entries {
		if e.StudentID == studentID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeRosterStore) FindOne(_ context.Context, classroomID, studentID string) (*models.RosterEntry, error) {
	entry, ok := f.entries[f.key(classroomID, studentID)]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &entry, nil
}

func (f *fakeRosterStore) Confirm(_ context.Context, classroomID, studentID string) (bool, error) {
	key := f.key(classroomID, studentID)
	entry, ok := f.entries[key]
	if !ok {
		return false, nil
	}
	entry.Status = models.RosterConfirmed
	f.entries[key] = entry
	return true, nil
}

type fakeQuestionStore struct {
	questions []models.Question
}

func (f *fakeQuestionStore) Create(_ context.Context, question *models.Question) error {
	f.questions = append(f.questions, *question)
	return nil
}

func (f *fakeQuestionStore) FindByCheckin(_ context.Context, classroomID, checkinID string) ([]models.Question, error) {
	var out []models.Question
	for _, q := range f.questions {
		if q.ClassroomID == classroomID && q.CheckinID == checkinID {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (f *fakeQuestionStore) FindByNumber(_ context.Context, classroomID, checkinID string, number int) (*models.Question, error) {
	for _, q := range f.questions {
		if q.ClassroomID == classroomID && q.CheckinID == checkinID && q.Number == number {
			question := q
			return &question, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeQuestionStore) UpdateByNumber(_ context.Context, classroomID, checkinID string, number int, update bson.M) error {
	for i, q := range f.questions {
		if q.ClassroomID == classroomID && q.CheckinID == checkinID && q.Number == number {
			if v, ok := update["question_no"].(int); ok {
				f.questions[i].Number = v
			}
			if v, ok := update["question_text"].(string); ok {
				f.questions[i].Text = v
			}
			if v, ok := update["question_show"].(bool); ok {
				f.questions[i].Show = v
			}
			if v, ok := update["question_type"].(models.QuestionType); ok {
				f.questions[i].Type = v
			}
			if v, ok := update["choices"].([]string); ok {
				f.questions[i].Choices = v
			}
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeQuestionStore) DeleteByNumber(_ context.Context, classroomID, checkinID string, number int) error {
	for i, q := range f.questions {
		if q.ClassroomID == classroomID && q.CheckinID == checkinID && q.Number == number {
			f.questions = append(f.questions[:i], f.questions[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

type fakeAnswerStore struct {
	sheets map[string]*models.AnswerSheet
}

func newFakeAnswerStore() *fakeAnswerStore {
	return &fakeAnswerStore{sheets: make(map[string]*models.AnswerSheet)}
}

func (f *fakeAnswerStore) key(classroomID, checkinID string, questionNo int) string {
	return classroomID + "/" + checkinID + "/" + strconv.Itoa(questionNo)
}

func (f *fakeAnswerStore) Submit(_ context.Context, classroomID, checkinID string, questionNo int, questionText, studentID string, answer models.StudentAnswer) error {
	key := f.key(classroomID, checkinID, questionNo)
	sheet, ok := f.sheets[key]
	if !ok {
		sheet = &models.AnswerSheet{
			ClassroomID: classroomID,
			CheckinID:   checkinID,
			QuestionNo:  questionNo,
			Text:        questionText,
			Students:    make(map[string]models.StudentAnswer),
		}
		f.sheets[key] = sheet
	}
	sheet.Students[studentID] = answer
	return nil
}

func (f *fakeAnswerStore) FindByQuestion(_ context.Context, classroomID, checkinID string, questionNo int) (*models.AnswerSheet, error) {
	sheet, ok := f.sheets[f.key(classroomID, checkinID, questionNo)]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return sheet, nil
}

func (f *fakeAnswerStore) SetScores(_ context.Context, classroomID, checkinID string, questionNo int, scores map[string]float64) error {
	sheet, ok := f.sheets[f.key(classroomID, checkinID, questionNo)]
	if !ok {
		return mongo.ErrNoDocuments
	}
	// Mirrors the nested $set: an unknown student id gets a partial entry
	// with only the score populated.
	for studentID, score := range scores {
		answer := sheet.Students[studentID]
		value := score
		answer.Score = &value
		sheet.Students[studentID] = answer
	}
	return nil
}
