package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Announcement represents an announcement document in the MongoDB database.
// Date fields hold the ISO-8601 strings the client supplied; the server
// never normalizes them (see dates.go for the comparison rules).
type Announcement struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Message        string             `bson:"message" json:"message"`
	ExpirationDate string             `bson:"expiration_date" json:"expiration_date"`
	StartDate      *string            `bson:"start_date" json:"start_date"`
	CreatedBy      string             `bson:"created_by" json:"created_by"`
	CreatedAt      string             `bson:"created_at" json:"created_at"`
	UpdatedBy      string             `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
	UpdatedAt      string             `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// AnnouncementUpdate is the replacement set written by an update. Message
// and both dates are overwritten unconditionally, start date included even
// when nil.
type AnnouncementUpdate struct {
	Message        string
	ExpirationDate string
	StartDate      *string
	UpdatedBy      string
	UpdatedAt      string
}
