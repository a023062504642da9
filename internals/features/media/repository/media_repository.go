package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ministry_backend/internals/features/media/model"
)

// MediaRepository is the store-access boundary for pastor images and videos.
// Controllers depend on this interface; the Mongo implementation below is the
// only one used in production.
type MediaRepository interface {
	// FindImageURLsByCountry returns the url field of every image whose
	// country.en equals the given value ignoring case. Empty slice when
	// nothing matches.
	FindImageURLsByCountry(ctx context.Context, country string) ([]string, error)
	// FindFirstVideo returns the first video in store order, or nil when the
	// collection is empty.
	FindFirstVideo(ctx context.Context) (*model.PastorVideoModel, error)
}

type mongoMediaRepository struct {
	db *mongo.Database
}

func NewMediaRepository(db *mongo.Database) MediaRepository {
	return &mongoMediaRepository{db: db}
}

// Case-insensitive exact match is done with a collation, not a regex built
// from user input, so query metacharacters in the country value are inert.
var ciCollation = options.Collation{Locale: "en", Strength: 2}

func (r *mongoMediaRepository) FindImageURLsByCountry(ctx context.Context, country string) ([]string, error) {
	coll := r.db.Collection(model.PastorImageModel{}.CollectionName())

	opts := options.Find().
		SetProjection(bson.M{"url": 1, "_id": 0}).
		SetCollation(&ciCollation)

	cur, err := coll.Find(ctx, bson.M{"country.en": country}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []struct {
		URL string `bson:"url"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(docs))
	for _, d := range docs {
		urls = append(urls, d.URL)
	}
	return urls, nil
}

func (r *mongoMediaRepository) FindFirstVideo(ctx context.Context) (*model.PastorVideoModel, error) {
	coll := r.db.Collection(model.PastorVideoModel{}.CollectionName())

	var video model.PastorVideoModel
	err := coll.FindOne(ctx, bson.M{}).Decode(&video)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &video, nil
}
