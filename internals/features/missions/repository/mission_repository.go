package repository

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ministry_backend/internals/features/missions/model"
)

// langCodeRe whitelists the language codes that may be interpolated into a
// projection field path. Anything else is queried as if the language simply
// had no description.
var langCodeRe = regexp.MustCompile(`^[a-zA-Z]{2,3}$`)

// MissionRepository is the store-access boundary for mission descriptions.
type MissionRepository interface {
	// FindByCountry returns the record for the given country with the full
	// descriptions projection, or nil when no record matches. An empty
	// country matches nothing.
	FindByCountry(ctx context.Context, country string) (*model.MissionDescriptionModel, error)
	// FindDescriptionByCountryLang returns the description in the requested
	// language. found reports whether a record for the country exists at all;
	// the text is empty when the record lacks that language.
	FindDescriptionByCountryLang(ctx context.Context, country, lng string) (text string, found bool, err error)
}

type mongoMissionRepository struct {
	db *mongo.Database
}

func NewMissionRepository(db *mongo.Database) MissionRepository {
	return &mongoMissionRepository{db: db}
}

func (r *mongoMissionRepository) collection() *mongo.Collection {
	return r.db.Collection(model.MissionDescriptionModel{}.CollectionName())
}

func (r *mongoMissionRepository) FindByCountry(ctx context.Context, country string) (*model.MissionDescriptionModel, error) {
	opts := options.FindOne().SetProjection(bson.M{"descriptions": 1})

	var desc model.MissionDescriptionModel
	err := r.collection().FindOne(ctx, bson.M{"country": country}, opts).Decode(&desc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &desc, nil
}

func (r *mongoMissionRepository) FindDescriptionByCountryLang(ctx context.Context, country, lng string) (string, bool, error) {
	projection := bson.M{"country": 1, "_id": 0}
	if langCodeRe.MatchString(lng) {
		projection["descriptions."+lng] = 1
	}
	opts := options.FindOne().SetProjection(projection)

	var doc struct {
		Country      string            `bson:"country"`
		Descriptions map[string]string `bson:"descriptions"`
	}
	err := r.collection().FindOne(ctx, bson.M{"country": country}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return doc.Descriptions[lng], true, nil
}
