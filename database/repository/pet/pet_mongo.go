package petRepo

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

// MongoPetRepo implements PetRepository using MongoDB.
type MongoPetRepo struct {
	coll *mongo.Collection
}

// NewMongoPetRepo creates a new instance of PetRepository using MongoDB.
func NewMongoPetRepo() PetRepository {
	coll := database.MongoClient.Database("shelterhub").Collection("pets")
	return &MongoPetRepo{coll: coll}
}

func (r *MongoPetRepo) Create(ctx context.Context, pet *models.Pet) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, pet); err != nil {
		return fmt.Errorf("failed to create pet: %w", err)
	}
	return nil
}

func (r *MongoPetRepo) GetByID(ctx context.Context, orgID, id string) (*models.Pet, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var pet models.Pet
	filter := bson.M{"id": id, "organizationId": orgID}
	if err := r.coll.FindOne(ctx, filter).Decode(&pet); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch pet with id %s: %w", id, err)
	}
	return &pet, nil
}

func (r *MongoPetRepo) ListByOrganization(ctx context.Context, orgID string) ([]models.Pet, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.M{"name": 1})
	cursor, err := r.coll.Find(ctx, bson.M{"organizationId": orgID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}
	defer cursor.Close(ctx)
	var pets []models.Pet
	for cursor.Next(ctx) {
		var p models.Pet
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode pet: %w", err)
		}
		pets = append(pets, p)
	}
	return pets, nil
}

func (r *MongoPetRepo) Update(ctx context.Context, pet *models.Pet) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	pet.UpdatedAt = time.Now().UTC()
	filter := bson.M{"id": pet.ID, "organizationId": pet.OrganizationID}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": pet})
	if err != nil {
		return fmt.Errorf("failed to update pet with id %s: %w", pet.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("pet with id %s not found", pet.ID)
	}
	return nil
}

func (r *MongoPetRepo) SetEligibleVolunteers(ctx context.Context, orgID, id string, volunteerIDs []string) (*models.Pet, error) {
	update := bson.M{"$set": bson.M{
		"eligibleVolunteerIds": volunteerIDs,
		"updatedAt":            time.Now().UTC(),
	}}
	return r.findOneAndUpdate(ctx, orgID, id, update)
}

func (r *MongoPetRepo) AddException(ctx context.Context, orgID, id string, exc models.PetException) (*models.Pet, error) {
	update := bson.M{
		"$push": bson.M{"exceptions": exc},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	return r.findOneAndUpdate(ctx, orgID, id, update)
}

func (r *MongoPetRepo) findOneAndUpdate(ctx context.Context, orgID, id string, update bson.M) (*models.Pet, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	filter := bson.M{"id": id, "organizationId": orgID}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var pet models.Pet
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&pet); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update pet with id %s: %w", id, err)
	}
	return &pet, nil
}
