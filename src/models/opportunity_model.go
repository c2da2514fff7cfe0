package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Opportunity is a mentorship or job posting shown on the mentorship board.
type Opportunity struct {
	Id          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Type        string             `json:"type" bson:"type"`
	Tags        []string           `json:"tags" bson:"tags"`
	Description string             `json:"description" bson:"description"`
	PosterName  string             `json:"posterName" bson:"posterName"`
	PosterRole  string             `json:"posterRole" bson:"posterRole"`
	PosterPic   string             `json:"posterPic" bson:"posterPic"`
}
