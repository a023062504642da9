package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"ministry_backend/internals/features/admin/model"
)

// AdminRepository is the store-access boundary for admin credentials.
type AdminRepository interface {
	// FindByUserName returns nil when no credential record has that name.
	FindByUserName(ctx context.Context, username string) (*model.AdminModel, error)
}

type mongoAdminRepository struct {
	db *mongo.Database
}

func NewAdminRepository(db *mongo.Database) AdminRepository {
	return &mongoAdminRepository{db: db}
}

func (r *mongoAdminRepository) FindByUserName(ctx context.Context, username string) (*model.AdminModel, error) {
	coll := r.db.Collection(model.AdminModel{}.CollectionName())

	var admin model.AdminModel
	err := coll.FindOne(ctx, bson.M{"userName": username}).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
