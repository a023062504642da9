package model

// LocalizedCountry holds the country name in both site languages.
type LocalizedCountry struct {
	En string `bson:"en" json:"en"`
	Fa string `bson:"fa" json:"fa"`
}

type PastorImageModel struct {
	Name    string           `bson:"name" json:"name"`
	URL     string           `bson:"url" json:"url"`
	Country LocalizedCountry `bson:"country" json:"country"`
}

// CollectionName sets the name of the collection
func (PastorImageModel) CollectionName() string {
	return "pastorImgs"
}

// PastorVideoModel is effectively singleton data: the API always serves the
// first document in the collection.
type PastorVideoModel struct {
	Name string `bson:"name" json:"name"`
	URL  string `bson:"url" json:"url"`
}

// CollectionName sets the name of the collection
func (PastorVideoModel) CollectionName() string {
	return "pastorVid"
}
