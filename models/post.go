package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Post is a sport meetup listing in the "sportsInfo" collection, keyed
// by its author's email. The descriptive fields are free-form; the
// client constrains sport to its category list, the store does not.
type Post struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Email        string             `bson:"email" json:"email"`
	UserName     string             `bson:"userName" json:"userName"`
	MobileNumber string             `bson:"mobileNumber" json:"mobileNumber"`
	Sport        string             `bson:"sport" json:"sport"`
	Location     string             `bson:"location" json:"location"`
	Date         string             `bson:"date" json:"date"`
}

// SameFields reports whether two posts carry identical stored fields,
// ignoring the document ID. This is what MongoDB's ModifiedCount sees:
// a $set that changes nothing counts as zero modifications.
func (p Post) SameFields(other Post) bool {
	return p.Email == other.Email &&
		p.UserName == other.UserName &&
		p.MobileNumber == other.MobileNumber &&
		p.Sport == other.Sport &&
		p.Location == other.Location &&
		p.Date == other.Date
}
