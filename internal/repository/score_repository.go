package repository

import (
	"context"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"classroom-service/internal/models"
)

type ScoreRepository struct {
	Col *mongo.Collection
}

func NewScoreRepository(db *mongo.Database) *ScoreRepository {
	return &ScoreRepository{Col: db.Collection("scores")}
}

// EnsureRecord creates the grading mirror for a student's check-in if it
// does not exist yet.
func (r *ScoreRepository) EnsureRecord(ctx context.Context, record *models.ScoreRecord) error {
	filter := bson.M{
		"classroom_id": record.ClassroomID,
		"checkin_id":   record.CheckinID,
		"student_id":   record.StudentID,
	}
	update := bson.M{"$setOnInsert": bson.M{
		"classroom_id":  record.ClassroomID,
		"checkin_id":    record.CheckinID,
		"student_id":    record.StudentID,
		"name":          record.Name,
		"questions":     bson.M{},
		"checked_in_at": record.CheckedInAt,
	}}
	_, err := r.Col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// SetScore records the grade of one question for one student. Setting the
// same question again overwrites instead of accumulating, so re-grading is
// safe.
func (r *ScoreRepository) SetScore(ctx context.Context, classroomID, checkinID, studentID string, questionNo int, score float64) error {
	field := "questions." + strconv.Itoa(questionNo)
	_, err := r.Col.UpdateOne(ctx,
		bson.M{"classroom_id": classroomID, "checkin_id": checkinID, "student_id": studentID},
		bson.M{"$set": bson.M{field: score}})
	return err
}

func (r *ScoreRepository) FindByCheckin(ctx context.Context, classroomID, checkinID string) ([]models.ScoreRecord, error) {
	cur, err := r.Col.Find(ctx, bson.M{
		"classroom_id": classroomID,
		"checkin_id":   checkinID,
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var records []models.ScoreRecord
	for cur.Next(ctx) {
		var rec models.ScoreRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, cur.Err()
}
