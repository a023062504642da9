package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// LocalizedText holds the mission description in both site languages.
type LocalizedText struct {
	En string `bson:"en,omitempty" json:"en,omitempty"`
	Fa string `bson:"fa,omitempty" json:"fa,omitempty"`
}

// MissionDescriptionModel has at most one record per country.
type MissionDescriptionModel struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Country      string             `bson:"country,omitempty" json:"country,omitempty"`
	Descriptions LocalizedText      `bson:"descriptions" json:"descriptions"`
}

// CollectionName sets the name of the collection
func (MissionDescriptionModel) CollectionName() string {
	return "missionCountryDescription"
}
