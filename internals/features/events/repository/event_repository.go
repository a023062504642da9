package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ministry_backend/internals/features/events/model"
)

// EventRepository is the store-access boundary for events. Ids are opaque
// store-assigned identifiers; a malformed or unknown id behaves the same way
// (nil / false), which controllers map to 404.
type EventRepository interface {
	FindAll(ctx context.Context) ([]model.EventModel, error)
	Create(ctx context.Context, event model.EventModel) (model.EventModel, error)
	// ReplaceByID writes all five mutable fields and returns the post-update
	// record, or nil when no record has that id.
	ReplaceByID(ctx context.Context, id string, event model.EventModel) (*model.EventModel, error)
	// DeleteByID reports whether a record was actually removed.
	DeleteByID(ctx context.Context, id string) (bool, error)
}

type mongoEventRepository struct {
	db *mongo.Database
}

func NewEventRepository(db *mongo.Database) EventRepository {
	return &mongoEventRepository{db: db}
}

func (r *mongoEventRepository) collection() *mongo.Collection {
	return r.db.Collection(model.EventModel{}.CollectionName())
}

func (r *mongoEventRepository) FindAll(ctx context.Context) ([]model.EventModel, error) {
	cur, err := r.collection().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	events := []model.EventModel{}
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *mongoEventRepository) Create(ctx context.Context, event model.EventModel) (model.EventModel, error) {
	res, err := r.collection().InsertOne(ctx, event)
	if err != nil {
		return model.EventModel{}, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		event.ID = oid
	}
	return event, nil
}

func (r *mongoEventRepository) ReplaceByID(ctx context.Context, id string, event model.EventModel) (*model.EventModel, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	update := bson.M{"$set": bson.M{
		"title":       event.Title,
		"date":        event.Date,
		"time":        event.Time,
		"description": event.Description,
		"location":    event.Location,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated model.EventModel
	err = r.collection().FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *mongoEventRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := r.collection().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
