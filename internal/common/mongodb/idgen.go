package mongodb

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ObjectIDGenerator issues hex ObjectIDs so records created through the
// service keep Mongo's native _id shape.
type ObjectIDGenerator struct{}

func NewObjectIDGenerator() *ObjectIDGenerator {
	return &ObjectIDGenerator{}
}

func (ObjectIDGenerator) NewID() (string, error) {
	return primitive.NewObjectID().Hex(), nil
}

// ParseID converts a hex id into an ObjectID. ok is false for malformed input.
func ParseID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}
