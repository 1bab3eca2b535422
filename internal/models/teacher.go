package models

// Teacher represents a staff credential document. The collection keys
// these by username (the Mongo _id), so a username lookup is an _id
// lookup.
type Teacher struct {
	Username    string `bson:"_id" json:"username"`
	DisplayName string `bson:"display_name" json:"display_name"`
	Role        string `bson:"role,omitempty" json:"role,omitempty"`
	HPassword   string `bson:"password,omitempty" json:"-"`
}
