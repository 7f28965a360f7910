package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"classroom-service/internal/models"
)

type ClassroomRepository struct {
	Col *mongo.Collection
}

func NewClassroomRepository(db *mongo.Database) *ClassroomRepository {
	return &ClassroomRepository{Col: db.Collection("classrooms")}
}

func (r *ClassroomRepository) Create(ctx context.Context, classroom *models.Classroom) error {
	_, err := r.Col.InsertOne(ctx, classroom)
	return err
}

func (r *ClassroomRepository) FindByID(ctx context.Context, id string) (*models.Classroom, error) {
	var classroom models.Classroom
	if err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&classroom); err != nil {
		return nil, err
	}
	return &classroom, nil
}

func (r *ClassroomRepository) FindByOwner(ctx context.Context, ownerID string) ([]models.Classroom, error) {
	cur, err := r.Col.Find(ctx, bson.M{"owner": ownerID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var classrooms []models.Classroom
	for cur.Next(ctx) {
		var c models.Classroom
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		classrooms = append(classrooms, c)
	}
	return classrooms, cur.Err()
}

// UpdateInfo overwrites the whole info block, matching the edit form.
func (r *ClassroomRepository) UpdateInfo(ctx context.Context, id string, info models.ClassroomInfo) error {
	result, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"info": info}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
