package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Post struct {
	Id        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Author    string             `json:"author" bson:"author"`
	AuthorPic string             `json:"authorPic" bson:"authorPic"`
	Role      string             `json:"role" bson:"role"`
	Content   string             `json:"content" bson:"content"`
	Image     string             `json:"image" bson:"image"`
	Timestamp string             `json:"timestamp" bson:"timestamp"`
	Likes     int                `json:"likes" bson:"likes"`
	Comments  []Comment          `json:"comments" bson:"comments"`
}

type Comment struct {
	Author    string `json:"author" bson:"author"`
	Text      string `json:"text" bson:"text"`
	Timestamp string `json:"timestamp" bson:"timestamp"`
}
