package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"classroom-service/internal/models"
)

type CheckinRepository struct {
	Col *mongo.Collection
}

func NewCheckinRepository(db *mongo.Database) *CheckinRepository {
	return &CheckinRepository{Col: db.Collection("checkins")}
}

func (r *CheckinRepository) Create(ctx context.Context, checkin *models.Checkin) error {
	_, err := r.Col.InsertOne(ctx, checkin)
	return err
}

func (r *CheckinRepository) FindByID(ctx context.Context, classroomID, checkinID string) (*models.Checkin, error) {
	var checkin models.Checkin
	err := r.Col.FindOne(ctx, bson.M{
		"classroom_id": classroomID,
		"checkin_id":   checkinID,
	}).Decode(&checkin)
	if err != nil {
		return nil, err
	}
	return &checkin, nil
}

func (r *CheckinRepository) FindByClassroom(ctx context.Context, classroomID string) ([]models.Checkin, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.Col.Find(ctx, bson.M{"classroom_id": classroomID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var checkins []models.Checkin
	for cur.Next(ctx) {
		var c models.Checkin
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		checkins = append(checkins, c)
	}
	return checkins, cur.Err()
}

func (r *CheckinRepository) UpdateStatus(ctx context.Context, classroomID, checkinID string, status models.CheckinStatus) error {
	result, err := r.Col.UpdateOne(ctx,
		bson.M{"classroom_id": classroomID, "checkin_id": checkinID},
		bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
