package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// AdminModel is read-only for the API; credentials are provisioned by the
// seeder. The stored field names keep the camel-cased casing the collection
// has always used, which differs from the login body's lowercase fields.
type AdminModel struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserName string             `bson:"userName" json:"userName"`
	PassWord string             `bson:"passWord" json:"-"` // bcrypt hash
}

// CollectionName sets the name of the collection
func (AdminModel) CollectionName() string {
	return "pastorLogin"
}
