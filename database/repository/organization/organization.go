package orgRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shelterhub/database"
	"shelterhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// OrganizationRepository resolves shelter organization records.
type OrganizationRepository interface {
	// GetByID returns nil without error when no organization exists.
	GetByID(ctx context.Context, id string) (*models.Organization, error)
}

// MongoOrganizationRepo implements OrganizationRepository using MongoDB.
type MongoOrganizationRepo struct {
	coll *mongo.Collection
}

// NewMongoOrganizationRepo creates a new instance of OrganizationRepository using MongoDB.
func NewMongoOrganizationRepo() OrganizationRepository {
	coll := database.MongoClient.Database("shelterhub").Collection("organizations")
	return &MongoOrganizationRepo{coll: coll}
}

func (r *MongoOrganizationRepo) GetByID(ctx context.Context, id string) (*models.Organization, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var org models.Organization
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&org); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch organization %s: %w", id, err)
	}
	return &org, nil
}
