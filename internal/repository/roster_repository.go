package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"classroom-service/internal/models"
)

type RosterRepository struct {
	Col *mongo.Collection
}

func NewRosterRepository(db *mongo.Database) *RosterRepository {
	return &RosterRepository{Col: db.Collection("roster")}
}

// AddOnce registers a student into a classroom unless an entry already
// exists. The upsert makes re-registration a no-op instead of resetting a
// confirmed status back to pending.
func (r *RosterRepository) AddOnce(ctx context.Context, entry *models.RosterEntry) (bool, error) {
	filter := bson.M{
		"classroom_id": entry.ClassroomID,
		"student_id":   entry.StudentID,
	}
	update := bson.M{"$setOnInsert": bson.M{
		"classroom_id":  entry.ClassroomID,
		"student_id":    entry.StudentID,
		"name":          entry.Name,
		"status":        entry.Status,
		"registered_at": entry.RegisteredAt,
	}}
	result, err := r.Col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, err
	}
	return result.UpsertedCount > 0, nil
}

func (r *RosterRepository) FindByClassroom(ctx context.Context, classroomID string) ([]models.RosterEntry, error) {
	cur, err := r.Col.Find(ctx, bson.M{"classroom_id": classroomID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var entries []models.RosterEntry
	for cur.Next(ctx) {
		var e models.RosterEntry
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, cur.Err()
}

// FindByStudent lists every registration for one student across all
// classrooms, backing the student dashboard.
func (r *RosterRepository) FindByStudent(ctx context.Context, studentID string) ([]models.RosterEntry, error) {
	cur, err := r.Col.Find(ctx, bson.M{"student_id": studentID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var entries []models.RosterEntry
	for cur.Next(ctx) {
		var e models.RosterEntry
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, cur.Err()
}

func (r *RosterRepository) FindOne(ctx context.Context, classroomID, studentID string) (*models.RosterEntry, error) {
	var entry models.RosterEntry
	err := r.Col.FindOne(ctx, bson.M{
		"classroom_id": classroomID,
		"student_id":   studentID,
	}).Decode(&entry)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Confirm flips a pending registration to confirmed. Reports false when no
// matching entry exists.
func (r *RosterRepository) Confirm(ctx context.Context, classroomID, studentID string) (bool, error) {
	result, err := r.Col.UpdateOne(ctx,
		bson.M{"classroom_id": classroomID, "student_id": studentID},
		bson.M{"$set": bson.M{"status": models.RosterConfirmed}})
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}
