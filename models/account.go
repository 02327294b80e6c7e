package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Account is a registered user in the "users" collection. Email is the
// identity key: unique under case-insensitive comparison, enforced at
// registration time. Passwords are stored as supplied; see
// handlers.CredentialVerifier for the comparison seam.
type Account struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserName string             `bson:"userName" json:"userName"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"password"`
	Mobile   *int64             `bson:"mobile" json:"mobile"`
}

// AccountSummary is the sanitized projection returned by listing and
// registration responses. The password never leaves through these.
type AccountSummary struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
}

// Summary projects the account down to its public fields.
func (a Account) Summary() AccountSummary {
	return AccountSummary{UserName: a.UserName, Email: a.Email}
}
