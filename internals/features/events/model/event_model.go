package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Date        time.Time          `bson:"date" json:"date"`
	Time        string             `bson:"time" json:"time"`
	Description string             `bson:"description" json:"description"`
	Location    string             `bson:"location" json:"location"`
}

// CollectionName sets the name of the collection
func (EventModel) CollectionName() string {
	return "pastorEvent"
}
