package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"classroom-service/internal/models"
)

type QuestionRepository struct {
	Col *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{Col: db.Collection("questions")}
}

func (r *QuestionRepository) Create(ctx context.Context, question *models.Question) error {
	_, err := r.Col.InsertOne(ctx, question)
	return err
}

func (r *QuestionRepository) FindByCheckin(ctx context.Context, classroomID, checkinID string) ([]models.Question, error) {
	opts := options.Find().SetSort(bson.D{{Key: "question_no", Value: 1}})
	cur, err := r.Col.Find(ctx, bson.M{
		"classroom_id": classroomID,
		"checkin_id":   checkinID,
	}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var questions []models.Question
	for cur.Next(ctx) {
		var q models.Question
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, cur.Err()
}

func (r *QuestionRepository) FindByNumber(ctx context.Context, classroomID, checkinID string, number int) (*models.Question, error) {
	var question models.Question
	err := r.Col.FindOne(ctx, bson.M{
		"classroom_id": classroomID,
		"checkin_id":   checkinID,
		"question_no":  number,
	}).Decode(&question)
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *QuestionRepository) UpdateByNumber(ctx context.Context, classroomID, checkinID string, number int, update bson.M) error {
	result, err := r.Col.UpdateOne(ctx, bson.M{
		"classroom_id": classroomID,
		"checkin_id":   checkinID,
		"question_no":  number,
	}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *QuestionRepository) DeleteByNumber(ctx context.Context, classroomID, checkinID string, number int) error {
	result, err := r.Col.DeleteOne(ctx, bson.M{
		"classroom_id": classroomID,
		"checkin_id":   checkinID,
		"question_no":  number,
	})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
