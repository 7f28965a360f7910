package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"classroom-service/internal/models"
)

type AnswerRepository struct {
	Col *mongo.Collection
}

func NewAnswerRepository(db *mongo.Database) *AnswerRepository {
	return &AnswerRepository{Col: db.Collection("answers")}
}

// Submit stores one student's answer on the question's sheet, creating the
// sheet on first submission. Re-submitting overwrites only that student's
// entry.
func (r *AnswerRepository) Submit(ctx context.Context, classroomID, checkinID string, questionNo int, questionText, studentID string, answer models.StudentAnswer) error {
	filter := bson.M{
		"classroom_id": classroomID,
		"checkin_id":   checkinID,
		"question_no":  questionNo,
	}
	update := bson.M{
		"$set": bson.M{"students." + studentID: answer},
		"$setOnInsert": bson.M{
			"classroom_id": classroomID,
			"checkin_id":   checkinID,
			"question_no":  questionNo,
			"text":         questionText,
		},
	}
	_, err := r.Col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *AnswerRepository) FindByQuestion(ctx context.Context, classroomID, checkinID string, questionNo int) (*models.AnswerSheet, error) {
	var sheet models.AnswerSheet
	err := r.Col.FindOne(ctx, bson.M{
		"classroom_id": classroomID,
		"checkin_id":   checkinID,
		"question_no":  questionNo,
	}).Decode(&sheet)
	if err != nil {
		return nil, err
	}
	return &sheet, nil
}

// SetScores writes graded scores for several students in one update.
func (r *AnswerRepository) SetScores(ctx context.Context, classroomID, checkinID string, questionNo int, scores map[string]float64) error {
	if len(scores) == 0 {
		return nil
	}
	set := bson.M{}
	for studentID, score := range scores {
		set["students."+studentID+".score"] = score
	}
	result, err := r.Col.UpdateOne(ctx, bson.M{
		"classroom_id": classroomID,
		"checkin_id":   checkinID,
		"question_no":  questionNo,
	}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
