package volunteerRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shelterhub/database"
	"shelterhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoVolunteerRepo implements VolunteerRepository using MongoDB.
type MongoVolunteerRepo struct {
	coll *mongo.Collection
}

// NewMongoVolunteerRepo creates a new instance of VolunteerRepository using MongoDB.
func NewMongoVolunteerRepo() VolunteerRepository {
	coll := database.MongoClient.Database("shelterhub").Collection("volunteers")
	repo := &MongoVolunteerRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoVolunteerRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "organizationId", Value: 1}, {Key: "active", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoVolunteerRepo) Create(ctx context.Context, volunteer *models.Volunteer) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, volunteer); err != nil {
		return fmt.Errorf("failed to create volunteer: %w", err)
	}
	return nil
}

func (r *MongoVolunteerRepo) GetByID(ctx context.Context, orgID, id string) (*models.Volunteer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var volunteer models.Volunteer
	filter := bson.M{"id": id, "organizationId": orgID}
	if err := r.coll.FindOne(ctx, filter).Decode(&volunteer); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch volunteer with id %s: %w", id, err)
	}
	return &volunteer, nil
}

func (r *MongoVolunteerRepo) GetByIDs(ctx context.Context, orgID string, ids []string) ([]models.Volunteer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	filter := bson.M{
		"id":             bson.M{"$in": ids},
		"organizationId": orgID,
		"active":         true,
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch volunteers: %w", err)
	}
	defer cursor.Close(ctx)
	var volunteers []models.Volunteer
	for cursor.Next(ctx) {
		var v models.Volunteer
		if err := cursor.Decode(&v); err != nil {
			return nil, fmt.Errorf("failed to decode volunteer: %w", err)
		}
		volunteers = append(volunteers, v)
	}
	return volunteers, nil
}

func (r *MongoVolunteerRepo) ListByOrganization(ctx context.Context, orgID string) ([]models.Volunteer, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.M{"name": 1})
	cursor, err := r.coll.Find(ctx, bson.M{"organizationId": orgID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list volunteers: %w", err)
	}
	defer cursor.Close(ctx)
	var volunteers []models.Volunteer
	for cursor.Next(ctx) {
		var v models.Volunteer
		if err := cursor.Decode(&v); err != nil {
			return nil, fmt.Errorf("failed to decode volunteer: %w", err)
		}
		volunteers = append(volunteers, v)
	}
	return volunteers, nil
}

func (r *MongoVolunteerRepo) Update(ctx context.Context, volunteer *models.Volunteer) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	volunteer.UpdatedAt = time.Now().UTC()
	filter := bson.M{"id": volunteer.ID, "organizationId": volunteer.OrganizationID}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": volunteer})
	if err != nil {
		return fmt.Errorf("failed to update volunteer with id %s: %w", volunteer.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("volunteer with id %s not found", volunteer.ID)
	}
	return nil
}

func (r *MongoVolunteerRepo) Deactivate(ctx context.Context, orgID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	filter := bson.M{"id": id, "organizationId": orgID}
	update := bson.M{"$set": bson.M{"active": false, "updatedAt": time.Now().UTC()}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to deactivate volunteer with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("volunteer with id %s not found", id)
	}
	return nil
}

func (r *MongoVolunteerRepo) ReplaceWorkSchedule(ctx context.Context, orgID, id string, entries []models.WorkScheduleEntry) (*models.Volunteer, error) {
	update := bson.M{"$set": bson.M{"workSchedule": entries, "updatedAt": time.Now().UTC()}}
	return r.findOneAndUpdate(ctx, orgID, id, update)
}

func (r *MongoVolunteerRepo) AddScheduleException(ctx context.Context, orgID, id string, exc models.ScheduleException) (*models.Volunteer, error) {
	update := bson.M{
		"$push": bson.M{"scheduleExceptions": exc},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	return r.findOneAndUpdate(ctx, orgID, id, update)
}

func (r *MongoVolunteerRepo) RemoveScheduleException(ctx context.Context, orgID, id, date string) (*models.Volunteer, error) {
	update := bson.M{
		"$pull": bson.M{"scheduleExceptions": bson.M{"date": date}},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	return r.findOneAndUpdate(ctx, orgID, id, update)
}

func (r *MongoVolunteerRepo) findOneAndUpdate(ctx context.Context, orgID, id string, update bson.M) (*models.Volunteer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	filter := bson.M{"id": id, "organizationId": orgID}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var volunteer models.Volunteer
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&volunteer); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update volunteer with id %s: %w", id, err)
	}
	return &volunteer, nil
}
