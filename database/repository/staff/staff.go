package staffRepo

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

// StaffRepository resolves staff accounts for request authentication.
type StaffRepository interface {
	// GetByID returns nil without error when no account exists.
	GetByID(ctx context.Context, id string) (*models.StaffAccount, error)
}

// MongoStaffRepo implements StaffRepository using MongoDB.
type MongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo creates a new instance of StaffRepository using MongoDB.
func NewMongoStaffRepo() StaffRepository {
	coll := database.MongoClient.Database("shelterhub").Collection("staff")
	return &MongoStaffRepo{coll: coll}
}

func (r *MongoStaffRepo) GetByID(ctx context.Context, id string) (*models.StaffAccount, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var staff models.StaffAccount
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&staff); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch staff account %s: %w", id, err)
	}
	return &staff, nil
}
