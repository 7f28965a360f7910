package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"classroom-service/internal/models"
)

type PresenceRepository struct {
	Col *mongo.Collection
}

func NewPresenceRepository(db *mongo.Database) *PresenceRepository {
	return &PresenceRepository{Col: db.Collection("presence")}
}

// RecordOnce writes a presence record unless one already exists for the
// same (classroom, checkin, student). The conditional upsert closes the
// read-then-write race of scanning the same QR twice: the second scan
// matches the existing document and changes nothing.
func (r *PresenceRepository) RecordOnce(ctx context.Context, presence *models.Presence) (bool, error) {
	filter := bson.M{
		"classroom_id": presence.ClassroomID,
		"checkin_id":   presence.CheckinID,
		"student_id":   presence.StudentID,
	}
	update := bson.M{"$setOnInsert": bson.M{
		"classroom_id":  presence.ClassroomID,
		"checkin_id":    presence.CheckinID,
		"student_id":    presence.StudentID,
		"name":          presence.Name,
		"checked_in_at": presence.CheckedInAt,
	}}
	result, err := r.Col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, err
	}
	return result.UpsertedCount > 0, nil
}

func (r *PresenceRepository) FindByCheckin(ctx context.Context, classroomID, checkinID string) ([]models.Presence, error) {
	cur, err := r.Col.Find(ctx, bson.M{
		"classroom_id": classroomID,
		"checkin_id":   checkinID,
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var records []models.Presence
	for cur.Next(ctx) {
		var p models.Presence
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	return records, cur.Err()
}
